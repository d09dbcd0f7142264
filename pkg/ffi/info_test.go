package ffi

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Prowler1000/go-camctl/pkg/controls"
)

func testInfoMap() *controls.ControlInfoMap {
	return controls.NewControlInfoMap(controls.Controls, map[uint32]*controls.ControlInfo{
		uint32(controls.Brightness): controls.FloatInfo(-1, 1, 0),
		uint32(controls.AfMode): controls.EnumInfo(controls.AfModeManual,
			controls.AfModeManual, controls.AfModeAuto, controls.AfModeContinuous),
		uint32(controls.Lux): controls.NewControlInfo(controls.NewFloat(0), nil, controls.NewFloat(400)),
	})
}

func TestInfo_StandaloneLifecycle(t *testing.T) {
	before := Live()

	info := NewInfo()
	if info == 0 {
		t.Fatal("expected a handle")
	}

	// A fresh descriptor has none facets; minimum still reads as an owned
	// none value, maximum reports the missing facet.
	min := InfoMin(info.Ref())
	if min == 0 {
		t.Fatal("expected an owned minimum")
	}
	if !ValueIsNone(min.Ref()) {
		t.Errorf("expected none minimum")
	}
	if _, err := InfoMax(info.Ref()); !errors.Is(err, controls.ErrNoMaximum) {
		t.Errorf("expected ErrNoMaximum, got %v", err)
	}

	if err := ValueDestroy(min); err != nil {
		t.Fatal(err)
	}
	if err := InfoDestroy(info); err != nil {
		t.Fatal(err)
	}
	if err := InfoDestroy(info); !errors.Is(err, ErrBadHandle) {
		t.Errorf("expected ErrBadHandle on double destroy, got %v", err)
	}
	if after := Live(); after != before {
		t.Errorf("handles leaked: %+v vs %+v", after, before)
	}
}

func TestInfo_BorrowedHandleRejectsDestroy(t *testing.T) {
	m := RegisterInfoMap(testInfoMap())
	defer UnregisterInfoMap(m)

	ref := MapGet(m, uint32(controls.Brightness))
	if err := InfoDestroy(Info(ref)); !errors.Is(err, ErrBorrowed) {
		t.Fatalf("expected ErrBorrowed, got %v", err)
	}
	// The descriptor must still resolve afterwards.
	min := InfoMin(ref)
	if min == 0 {
		t.Fatal("borrowed descriptor vanished after rejected destroy")
	}
	ValueDestroy(min)
}

func TestInfoMap_RegisterAndGet(t *testing.T) {
	m := RegisterInfoMap(testInfoMap())
	defer UnregisterInfoMap(m)

	if MapLen(m) != 3 {
		t.Fatalf("expected 3 entries, got %d", MapLen(m))
	}
	if MapGet(m, uint32(controls.Saturation)) != 0 {
		t.Errorf("expected zero handle for unmapped control")
	}
	info := MapGet(m, uint32(controls.Brightness))
	if info == 0 {
		t.Fatalf("expected descriptor handle")
	}
	if again := MapGet(m, uint32(controls.Brightness)); again != info {
		t.Errorf("expected repeated lookups to share a handle: %d vs %d", info, again)
	}
}

func TestInfo_FacetsAreOwnedCopies(t *testing.T) {
	m := RegisterInfoMap(testInfoMap())
	defer UnregisterInfoMap(m)
	info := MapGet(m, uint32(controls.Brightness))

	min := InfoMin(info)
	if min == 0 {
		t.Fatalf("expected minimum facet")
	}
	defer ValueDestroy(min)

	// Mutating the returned copy must not touch the descriptor.
	if err := ValueSetRaw(min, controls.ControlTypeBool, []byte{1}, false, 1); err != nil {
		t.Fatalf("expected facet copy to be owned: %v", err)
	}
	again := InfoMin(info)
	defer ValueDestroy(again)
	if ValueType(again.Ref()) != controls.ControlTypeFloat {
		t.Errorf("descriptor facet changed under an owned copy: %s", ValueType(again.Ref()))
	}
}

func TestInfo_MaxPresent(t *testing.T) {
	m := RegisterInfoMap(testInfoMap())
	defer UnregisterInfoMap(m)
	info := MapGet(m, uint32(controls.Brightness))

	max, err := InfoMax(info)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ValueDestroy(max)
	if ValueType(max.Ref()) != controls.ControlTypeFloat {
		t.Errorf("unexpected maximum type: %s", ValueType(max.Ref()))
	}
}

func TestInfo_MaxMissing(t *testing.T) {
	m := RegisterInfoMap(testInfoMap())
	defer UnregisterInfoMap(m)
	info := MapGet(m, uint32(controls.Lux))

	max, err := InfoMax(info)
	if !errors.Is(err, controls.ErrNoMaximum) {
		t.Fatalf("expected ErrNoMaximum, got %v", err)
	}
	if max != 0 {
		t.Errorf("expected zero handle on failure, got %d", max)
	}
}

func TestInfo_MaxMissingEmitsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	m := RegisterInfoMap(testInfoMap())
	defer UnregisterInfoMap(m)
	InfoMax(MapGet(m, uint32(controls.Lux)))

	if !strings.Contains(buf.String(), "maximum") {
		t.Errorf("expected diagnostic in log output, got %q", buf.String())
	}
}

func TestInfo_Values(t *testing.T) {
	m := RegisterInfoMap(testInfoMap())
	defer UnregisterInfoMap(m)
	info := MapGet(m, uint32(controls.AfMode))

	vs, err := InfoValues(info)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 3 {
		t.Fatalf("expected 3 values, got %d", len(vs))
	}
	for i, want := range []int32{controls.AfModeManual, controls.AfModeAuto, controls.AfModeContinuous} {
		data := ValueData(vs[i].Ref())
		v := &controls.ControlValue{}
		v.SetRaw(controls.ControlTypeInteger32, data, false, 1)
		got, err := v.Int32()
		if err != nil || got != want {
			t.Errorf("value %d: got %v %v, want %d", i, got, err, want)
		}
		if err := ValueDestroy(vs[i]); err != nil {
			t.Errorf("expected returned values to be owned: %v", err)
		}
	}
}

func TestInfo_ValuesEmptyForRangeDescriptor(t *testing.T) {
	m := RegisterInfoMap(testInfoMap())
	defer UnregisterInfoMap(m)
	info := MapGet(m, uint32(controls.Brightness))
	vs, err := InfoValues(info)
	if err != nil {
		t.Fatal(err)
	}
	if vs != nil {
		t.Errorf("expected no enumerated values, got %d", len(vs))
	}
}

func TestInfo_ValuesUnknownHandle(t *testing.T) {
	if _, err := InfoValues(InfoRef(0xbad)); !errors.Is(err, ErrBadHandle) {
		t.Fatalf("expected ErrBadHandle, got %v", err)
	}
}

func TestInfoMap_UnregisterReapsDescriptors(t *testing.T) {
	before := Live()

	m := RegisterInfoMap(testInfoMap())
	MapGet(m, uint32(controls.Brightness))
	MapGet(m, uint32(controls.AfMode))
	if err := UnregisterInfoMap(m); err != nil {
		t.Fatalf("failed to unregister: %v", err)
	}

	if after := Live(); after != before {
		t.Errorf("descriptor handles leaked: %+v -> %+v", before, after)
	}
}

func TestInfoMap_UnknownHandle(t *testing.T) {
	if MapLen(InfoMap(0xdead)) != 0 {
		t.Errorf("expected 0 length for unknown map")
	}
	if MapGet(InfoMap(0xdead), 1) != 0 {
		t.Errorf("expected zero handle for unknown map")
	}
	if err := UnregisterInfoMap(InfoMap(0xdead)); !errors.Is(err, ErrBadHandle) {
		t.Errorf("expected ErrBadHandle, got %v", err)
	}
	if _, err := InfoMax(InfoRef(0xdead)); !errors.Is(err, ErrBadHandle) {
		t.Errorf("expected ErrBadHandle, got %v", err)
	}
	if InfoMin(InfoRef(0xdead)) != 0 {
		t.Errorf("expected zero handle from unknown descriptor")
	}
}
