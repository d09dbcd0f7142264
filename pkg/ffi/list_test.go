package ffi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/Prowler1000/go-camctl/pkg/controls"
)

func setInt32(t *testing.T, l List, id uint32, n int32) {
	t.Helper()
	v := NewValue()
	defer ValueDestroy(v)
	raw := make([]byte, 4)
	binary.NativeEndian.PutUint32(raw, uint32(n))
	if err := ValueSetRaw(v, controls.ControlTypeInteger32, raw, false, 1); err != nil {
		t.Fatalf("failed to build value: %v", err)
	}
	if err := ListSet(l, id, v.Ref()); err != nil {
		t.Fatalf("failed to set list entry: %v", err)
	}
}

func TestList_SetAndGet(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)

	if ListContains(l, uint32(controls.ExposureTime)) {
		t.Errorf("expected empty list")
	}
	if ListGet(l, uint32(controls.ExposureTime)) != 0 {
		t.Errorf("expected zero handle for absent entry")
	}

	setInt32(t, l, uint32(controls.ExposureTime), 10000)

	if !ListContains(l, uint32(controls.ExposureTime)) || ListLen(l) != 1 {
		t.Fatalf("entry not stored")
	}
	ref := ListGet(l, uint32(controls.ExposureTime))
	if ref == 0 {
		t.Fatalf("expected borrowed handle")
	}
	want := make([]byte, 4)
	binary.NativeEndian.PutUint32(want, 10000)
	if !bytes.Equal(ValueData(ref), want) {
		t.Errorf("data mismatch: got %x, want %x", ValueData(ref), want)
	}
}

func TestList_SetCopiesSource(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)

	setInt32(t, l, uint32(controls.ExposureTime), 10000)

	// The source handle was already destroyed inside the helper; the list
	// entry must still read back.
	ref := ListGet(l, uint32(controls.ExposureTime))
	if ValueType(ref) != controls.ControlTypeInteger32 {
		t.Errorf("unexpected type: %s", ValueType(ref))
	}
}

func TestList_RepeatedGetSharesHandle(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)
	setInt32(t, l, uint32(controls.Contrast), 1)

	before := Live().Values
	a := ListGet(l, uint32(controls.Contrast))
	b := ListGet(l, uint32(controls.Contrast))
	if a != b {
		t.Errorf("expected repeated gets to share a handle: %d vs %d", a, b)
	}
	if Live().Values != before+1 {
		t.Errorf("expected exactly one borrowed handle, delta %d", Live().Values-before)
	}
}

func TestList_BackingExposesTheList(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)
	setInt32(t, l, uint32(controls.ExposureTime), 10000)

	backing := ListBacking(l)
	if backing == nil {
		t.Fatal("expected the backing list")
	}
	if i, err := backing.Get(uint32(controls.ExposureTime)).Int32(); err != nil || i != 10000 {
		t.Errorf("backing list does not see the entry: %v %v", i, err)
	}
	if ListBacking(List(0xbad)) != nil {
		t.Errorf("expected nil backing for an unknown handle")
	}
}

func TestList_RefsEnumeratesIssuedHandles(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)
	setInt32(t, l, uint32(controls.Contrast), 1)
	setInt32(t, l, uint32(controls.Saturation), 1)

	if refs := ListRefs(l); len(refs) != 0 {
		t.Fatalf("expected no issued handles yet, got %v", refs)
	}
	a := ListGet(l, uint32(controls.Contrast))
	b := ListGet(l, uint32(controls.Saturation))
	refs := ListRefs(l)
	if len(refs) != 2 {
		t.Fatalf("expected 2 issued handles, got %v", refs)
	}
	seen := map[ValueRef]bool{refs[0]: true, refs[1]: true}
	if !seen[a] || !seen[b] {
		t.Errorf("issued handles missing from refs: %v", refs)
	}
}

func TestList_BorrowedHandleFollowsOverwrite(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)
	setInt32(t, l, uint32(controls.Contrast), 1)

	ref := ListGet(l, uint32(controls.Contrast))
	setInt32(t, l, uint32(controls.Contrast), 2)

	want := make([]byte, 4)
	binary.NativeEndian.PutUint32(want, 2)
	if !bytes.Equal(ValueData(ref), want) {
		t.Errorf("expected borrowed handle to read the new entry, got %x", ValueData(ref))
	}
}

func TestList_DestroyReapsBorrowedHandles(t *testing.T) {
	before := Live()

	l := NewList()
	setInt32(t, l, uint32(controls.Brightness), 1)
	setInt32(t, l, uint32(controls.Contrast), 2)
	ListGet(l, uint32(controls.Brightness))
	ListGet(l, uint32(controls.Contrast))

	if err := ListDestroy(l); err != nil {
		t.Fatalf("failed to destroy list: %v", err)
	}
	if after := Live(); after != before {
		t.Errorf("borrowed handles leaked: %+v -> %+v", before, after)
	}
}

func TestList_SetFromUnknownValue(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)
	if err := ListSet(l, uint32(controls.AeEnable), ValueRef(0xdead)); !errors.Is(err, ErrBadHandle) {
		t.Errorf("expected ErrBadHandle, got %v", err)
	}
	if ListContains(l, uint32(controls.AeEnable)) {
		t.Errorf("failed set must not create an entry")
	}
}

func TestList_UnknownHandle(t *testing.T) {
	const bogus = List(0xdead)
	if ListContains(bogus, 1) {
		t.Errorf("expected false for unknown list")
	}
	if ListLen(bogus) != 0 {
		t.Errorf("expected 0 length for unknown list")
	}
	if ListGet(bogus, 1) != 0 {
		t.Errorf("expected zero handle for unknown list")
	}
	if ListIterate(bogus) != 0 {
		t.Errorf("expected zero iter for unknown list")
	}
}

func TestListIter_AscendingOrder(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)

	// Insert out of identifier order.
	setInt32(t, l, uint32(controls.Saturation), 3)
	setInt32(t, l, uint32(controls.ExposureTime), 1)
	setInt32(t, l, uint32(controls.Contrast), 2)

	it := ListIterate(l)
	defer IterDestroy(it)

	want := []uint32{uint32(controls.ExposureTime), uint32(controls.Contrast), uint32(controls.Saturation)}
	var got []uint32
	for !IterIsEnd(it) {
		if IterValue(it) == 0 {
			t.Fatalf("expected borrowed value at id %d", IterID(it))
		}
		got = append(got, IterID(it))
		IterNext(it)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got id %d, want %d", i, got[i], want[i])
		}
	}
}

func TestListIter_PastEnd(t *testing.T) {
	l := NewList()
	defer ListDestroy(l)
	it := ListIterate(l)
	defer IterDestroy(it)

	if !IterIsEnd(it) {
		t.Fatalf("expected empty iteration to start at end")
	}
	if IterID(it) != 0 || IterValue(it) != 0 {
		t.Errorf("expected zero id and handle past the end")
	}
	IterNext(it) // no-op
	if !IterIsEnd(it) {
		t.Errorf("expected iterator to stay at end")
	}
}

func TestListIter_IndependentOfListHandleLifetime(t *testing.T) {
	l := NewList()
	setInt32(t, l, uint32(controls.Contrast), 1)
	it := ListIterate(l)
	ListDestroy(l)
	defer IterDestroy(it)

	// The cursor still walks its snapshot but can no longer mint borrowed
	// handles from the dead list.
	if IterIsEnd(it) {
		t.Fatalf("expected snapshot to survive list destroy")
	}
	if IterValue(it) != 0 {
		t.Errorf("expected zero handle after owner destroy")
	}
}
