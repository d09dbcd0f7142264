package controls

import (
	"errors"
	"testing"
	"time"
)

func TestColourGainsControl_RoundTrip(t *testing.T) {
	var v ControlValue
	in := ColourGainsControl{Red: 1.8, Blue: 1.2}
	if err := in.MarshalControlValue(&v); err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if v.Type() != ControlTypeFloat || !v.IsArray() || v.NumElements() != 2 {
		t.Fatalf("unexpected shape: %s array=%v n=%d", v.Type(), v.IsArray(), v.NumElements())
	}
	var out ColourGainsControl
	if err := out.UnmarshalControlValue(&v); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestColourGainsControl_RejectsWrongArity(t *testing.T) {
	v := NewFloats([]float32{1, 2, 3})
	var c ColourGainsControl
	if err := c.UnmarshalControlValue(v); !errors.Is(err, ErrValueType) {
		t.Errorf("expected ErrValueType, got %v", err)
	}
}

func TestFrameDurationLimitsControl_RoundTrip(t *testing.T) {
	var v ControlValue
	in := FrameDurationLimitsControl{Min: 16667 * time.Microsecond, Max: 33333 * time.Microsecond}
	if err := in.MarshalControlValue(&v); err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	us, err := v.Int64s()
	if err != nil {
		t.Fatalf("unexpected storage: %v", err)
	}
	if us[0] != 16667 || us[1] != 33333 {
		t.Errorf("unexpected microsecond values: %v", us)
	}
	var out FrameDurationLimitsControl
	if err := out.UnmarshalControlValue(&v); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestScalerCropControl_RoundTrip(t *testing.T) {
	var v ControlValue
	in := ScalerCropControl{Crop: Rectangle{X: 100, Y: 50, Width: 1920, Height: 1080}}
	if err := in.MarshalControlValue(&v); err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	var out ScalerCropControl
	if err := out.UnmarshalControlValue(&v); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if out.Crop != in.Crop {
		t.Errorf("round trip mismatch: got %+v, want %+v", out.Crop, in.Crop)
	}
}

func TestEntry_TypeMismatchSurfaces(t *testing.T) {
	v := NewInt32(5)
	var c BrightnessControl
	if err := c.UnmarshalControlValue(v); !errors.Is(err, ErrValueType) {
		t.Errorf("expected ErrValueType, got %v", err)
	}
}

func TestModelProperty_RoundTrip(t *testing.T) {
	var v ControlValue
	in := ModelProperty{Model: "imx708"}
	if err := in.MarshalControlValue(&v); err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if v.Type() != ControlTypeString {
		t.Fatalf("unexpected type: %s", v.Type())
	}
	var out ModelProperty
	if err := out.UnmarshalControlValue(&v); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if out.Model != "imx708" {
		t.Errorf("unexpected model: %q", out.Model)
	}
}
