package controls

import (
	"testing"
)

func TestControls_Lookup(t *testing.T) {
	def := Controls.Lookup(uint32(ExposureTime))
	if def == nil {
		t.Fatalf("expected definition for ExposureTime")
	}
	if def.Name != "ExposureTime" || def.Type != ControlTypeInteger32 {
		t.Errorf("unexpected definition: %+v", def)
	}
	if Controls.Name(uint32(ColourGains)) != "ColourGains" {
		t.Errorf("unexpected name: %q", Controls.Name(uint32(ColourGains)))
	}
	if Controls.TypeOf(uint32(ScalerCrop)) != ControlTypeRectangle {
		t.Errorf("unexpected type: %s", Controls.TypeOf(uint32(ScalerCrop)))
	}
}

func TestControls_LookupUnknown(t *testing.T) {
	const bogus = 0xdeadbeef
	if Controls.Lookup(bogus) != nil {
		t.Errorf("expected nil definition for unknown id")
	}
	if Controls.Name(bogus) != "" {
		t.Errorf("expected empty name for unknown id")
	}
	if Controls.TypeOf(bogus) != ControlTypeNone {
		t.Errorf("expected none type for unknown id")
	}
}

func TestControls_RepeatedLookupsStable(t *testing.T) {
	if Controls.Lookup(uint32(AfMode)) != Controls.Lookup(uint32(AfMode)) {
		t.Errorf("expected repeated lookups to return the same definition")
	}
}

func TestProperties_Lookup(t *testing.T) {
	def := Properties.Lookup(uint32(Model))
	if def == nil || def.Type != ControlTypeString {
		t.Fatalf("unexpected definition for Model: %+v", def)
	}
	if Properties.TypeOf(uint32(PixelArraySize)) != ControlTypeSize {
		t.Errorf("unexpected type: %s", Properties.TypeOf(uint32(PixelArraySize)))
	}
	if Properties.Lookup(uint32(AeEnable)) == nil {
		// Location shares id 1 with AeEnable; the registries are separate
		// namespaces and both resolve it.
		t.Errorf("expected property registry to resolve id 1")
	}
	if Properties.Name(uint32(Location)) != "Location" {
		t.Errorf("unexpected name: %q", Properties.Name(uint32(Location)))
	}
}

func TestRegistry_IDsSorted(t *testing.T) {
	ids := Controls.IDs()
	if len(ids) != Controls.Len() {
		t.Fatalf("IDs length %d does not match Len %d", len(ids), Controls.Len())
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not ascending: %v", ids)
		}
	}
}

func TestRegistry_CoreTablesResolve(t *testing.T) {
	for _, tc := range []struct {
		label string
		reg   *Registry
	}{
		{"controls", Controls},
		{"properties", Properties},
	} {
		ids := tc.reg.IDs()
		if len(ids) == 0 {
			t.Fatalf("%s: expected a populated registry", tc.label)
		}
		for i, id := range ids {
			if i > 0 && ids[i-1] >= id {
				t.Fatalf("%s: ids not strictly ascending: %v", tc.label, ids)
			}
			def := tc.reg.Lookup(id)
			if def == nil {
				t.Fatalf("%s: no definition for id %d", tc.label, id)
			}
			if def.ID != id {
				t.Errorf("%s: definition for id %d carries id %d", tc.label, id, def.ID)
			}
			if def.Name == "" {
				t.Errorf("%s: empty name for id %d", tc.label, id)
			}
			if def.Type == ControlTypeNone {
				t.Errorf("%s: %s has no value type", tc.label, def.Name)
			}
			if tc.reg.Name(id) != def.Name || tc.reg.TypeOf(id) != def.Type {
				t.Errorf("%s: lookup mismatch for %s", tc.label, def.Name)
			}
		}
	}
}

func TestRegistry_Extend(t *testing.T) {
	const vendorID = 0x10001
	ext := Controls.Extend(ControlDef{
		ID:   vendorID,
		Name: "TestPatternMode",
		Type: ControlTypeInteger32,
	})
	if ext.Lookup(vendorID) == nil {
		t.Fatalf("expected vendor control in extended registry")
	}
	if ext.Name(vendorID) != "TestPatternMode" {
		t.Errorf("unexpected vendor name: %q", ext.Name(vendorID))
	}
	if ext.Lookup(uint32(Brightness)) == nil {
		t.Errorf("expected core controls to carry over")
	}
	// The base registry stays untouched.
	if Controls.Lookup(vendorID) != nil {
		t.Errorf("extend leaked into the base registry")
	}
	ids := ext.IDs()
	if ids[len(ids)-1] != vendorID {
		t.Errorf("expected vendor id last in ascending order, got %v", ids[len(ids)-1])
	}
}

func TestRegistry_EnumName(t *testing.T) {
	if got := Controls.EnumName(uint32(AfMode), AfModeContinuous); got != "AfModeContinuous" {
		t.Errorf("unexpected enum name: %q", got)
	}
	if got := Controls.EnumName(uint32(AfMode), 99); got != "" {
		t.Errorf("expected empty name for unknown enum value, got %q", got)
	}
	if got := Controls.EnumName(uint32(Brightness), 0); got != "" {
		t.Errorf("expected empty name for non-enum control, got %q", got)
	}
}

func TestNewRegistry_LaterDefinitionWins(t *testing.T) {
	r := NewRegistry("test", []ControlDef{
		{ID: 1, Name: "First", Type: ControlTypeBool},
		{ID: 1, Name: "Second", Type: ControlTypeInteger32},
	})
	if r.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", r.Len())
	}
	if r.Name(1) != "Second" || r.TypeOf(1) != ControlTypeInteger32 {
		t.Errorf("expected later definition to win: %q %s", r.Name(1), r.TypeOf(1))
	}
}
