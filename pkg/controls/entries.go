package controls

import (
	"fmt"
	"time"
)

// Typed views over the raw control values. Each entry couples one control
// identifier with a Go-native payload so callers can move between the two
// without touching packed storage themselves.

type ValueMarshaler interface {
	MarshalControlValue(v *ControlValue) error
}

type ValueUnmarshaler interface {
	UnmarshalControlValue(v *ControlValue) error
}

// ControlEntry is a typed value bound to a fixed control identifier.
type ControlEntry interface {
	ControlID() ControlID
	ValueMarshaler
	ValueUnmarshaler
}

// PropertyEntry is a typed value bound to a fixed property identifier.
type PropertyEntry interface {
	PropertyID() PropertyID
	ValueMarshaler
	ValueUnmarshaler
}

// AeEnableControl toggles the auto exposure algorithm.
type AeEnableControl struct {
	Enabled bool
}

func (c *AeEnableControl) ControlID() ControlID { return AeEnable }

func (c *AeEnableControl) MarshalControlValue(v *ControlValue) error {
	v.SetBool(c.Enabled)
	return nil
}

func (c *AeEnableControl) UnmarshalControlValue(v *ControlValue) error {
	b, err := v.Bool()
	if err != nil {
		return err
	}
	c.Enabled = b
	return nil
}

// ExposureTimeControl fixes the exposure time, honoured when auto exposure
// is disabled. The value is carried as integer microseconds.
type ExposureTimeControl struct {
	Duration time.Duration
}

func (c *ExposureTimeControl) ControlID() ControlID { return ExposureTime }

func (c *ExposureTimeControl) MarshalControlValue(v *ControlValue) error {
	v.SetInt32(int32(c.Duration.Microseconds()))
	return nil
}

func (c *ExposureTimeControl) UnmarshalControlValue(v *ControlValue) error {
	us, err := v.Int32()
	if err != nil {
		return err
	}
	c.Duration = time.Duration(us) * time.Microsecond
	return nil
}

// AnalogueGainControl fixes the sensor analogue gain.
type AnalogueGainControl struct {
	Gain float32
}

func (c *AnalogueGainControl) ControlID() ControlID { return AnalogueGain }

func (c *AnalogueGainControl) MarshalControlValue(v *ControlValue) error {
	v.SetFloat(c.Gain)
	return nil
}

func (c *AnalogueGainControl) UnmarshalControlValue(v *ControlValue) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	c.Gain = f
	return nil
}

// BrightnessControl adjusts image brightness, -1 (darkest) to 1 (brightest).
type BrightnessControl struct {
	Brightness float32
}

func (c *BrightnessControl) ControlID() ControlID { return Brightness }

func (c *BrightnessControl) MarshalControlValue(v *ControlValue) error {
	v.SetFloat(c.Brightness)
	return nil
}

func (c *BrightnessControl) UnmarshalControlValue(v *ControlValue) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	c.Brightness = f
	return nil
}

// ContrastControl adjusts image contrast, 0 (flat) upwards with 1 as the
// nominal response.
type ContrastControl struct {
	Contrast float32
}

func (c *ContrastControl) ControlID() ControlID { return Contrast }

func (c *ContrastControl) MarshalControlValue(v *ControlValue) error {
	v.SetFloat(c.Contrast)
	return nil
}

func (c *ContrastControl) UnmarshalControlValue(v *ControlValue) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	c.Contrast = f
	return nil
}

type SaturationControl struct {
	Saturation float32
}

func (c *SaturationControl) ControlID() ControlID { return Saturation }

func (c *SaturationControl) MarshalControlValue(v *ControlValue) error {
	v.SetFloat(c.Saturation)
	return nil
}

func (c *SaturationControl) UnmarshalControlValue(v *ControlValue) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	c.Saturation = f
	return nil
}

type SharpnessControl struct {
	Sharpness float32
}

func (c *SharpnessControl) ControlID() ControlID { return Sharpness }

func (c *SharpnessControl) MarshalControlValue(v *ControlValue) error {
	v.SetFloat(c.Sharpness)
	return nil
}

func (c *SharpnessControl) UnmarshalControlValue(v *ControlValue) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	c.Sharpness = f
	return nil
}

// ColourGainsControl fixes the white balance gain pair applied to the red
// and blue channels. Carried as a two-element float array.
type ColourGainsControl struct {
	Red  float32
	Blue float32
}

func (c *ColourGainsControl) ControlID() ControlID { return ColourGains }

func (c *ColourGainsControl) MarshalControlValue(v *ControlValue) error {
	v.SetFloats([]float32{c.Red, c.Blue})
	return nil
}

func (c *ColourGainsControl) UnmarshalControlValue(v *ControlValue) error {
	gains, err := v.Floats()
	if err != nil {
		return err
	}
	if len(gains) != 2 {
		return fmt.Errorf("%w: want 2 gains, have %d", ErrValueType, len(gains))
	}
	c.Red, c.Blue = gains[0], gains[1]
	return nil
}

type ColourTemperatureControl struct {
	Kelvin int32
}

func (c *ColourTemperatureControl) ControlID() ControlID { return ColourTemperature }

func (c *ColourTemperatureControl) MarshalControlValue(v *ControlValue) error {
	v.SetInt32(c.Kelvin)
	return nil
}

func (c *ColourTemperatureControl) UnmarshalControlValue(v *ControlValue) error {
	k, err := v.Int32()
	if err != nil {
		return err
	}
	c.Kelvin = k
	return nil
}

type ColourCorrectionMatrixControl struct {
	Matrix Matrix3x3
}

func (c *ColourCorrectionMatrixControl) ControlID() ControlID { return ColourCorrectionMatrix }

func (c *ColourCorrectionMatrixControl) MarshalControlValue(v *ControlValue) error {
	v.SetMatrix(c.Matrix)
	return nil
}

func (c *ColourCorrectionMatrixControl) UnmarshalControlValue(v *ControlValue) error {
	m, err := v.Matrix()
	if err != nil {
		return err
	}
	c.Matrix = m
	return nil
}

// ScalerCropControl selects the sensor region cropped into the output.
type ScalerCropControl struct {
	Crop Rectangle
}

func (c *ScalerCropControl) ControlID() ControlID { return ScalerCrop }

func (c *ScalerCropControl) MarshalControlValue(v *ControlValue) error {
	v.SetRectangle(c.Crop)
	return nil
}

func (c *ScalerCropControl) UnmarshalControlValue(v *ControlValue) error {
	r, err := v.Rectangle()
	if err != nil {
		return err
	}
	c.Crop = r
	return nil
}

// FrameDurationLimitsControl bounds the per-frame duration. Carried as a
// two-element int64 array of microseconds, minimum first.
type FrameDurationLimitsControl struct {
	Min time.Duration
	Max time.Duration
}

func (c *FrameDurationLimitsControl) ControlID() ControlID { return FrameDurationLimits }

func (c *FrameDurationLimitsControl) MarshalControlValue(v *ControlValue) error {
	v.SetInt64s([]int64{c.Min.Microseconds(), c.Max.Microseconds()})
	return nil
}

func (c *FrameDurationLimitsControl) UnmarshalControlValue(v *ControlValue) error {
	us, err := v.Int64s()
	if err != nil {
		return err
	}
	if len(us) != 2 {
		return fmt.Errorf("%w: want 2 durations, have %d", ErrValueType, len(us))
	}
	c.Min = time.Duration(us[0]) * time.Microsecond
	c.Max = time.Duration(us[1]) * time.Microsecond
	return nil
}

type AwbEnableControl struct {
	Enabled bool
}

func (c *AwbEnableControl) ControlID() ControlID { return AwbEnable }

func (c *AwbEnableControl) MarshalControlValue(v *ControlValue) error {
	v.SetBool(c.Enabled)
	return nil
}

func (c *AwbEnableControl) UnmarshalControlValue(v *ControlValue) error {
	b, err := v.Bool()
	if err != nil {
		return err
	}
	c.Enabled = b
	return nil
}

// AwbModeControl selects the white balance algorithm mode, one of the
// AwbMode values.
type AwbModeControl struct {
	Mode int32
}

func (c *AwbModeControl) ControlID() ControlID { return AwbMode }

func (c *AwbModeControl) MarshalControlValue(v *ControlValue) error {
	v.SetInt32(c.Mode)
	return nil
}

func (c *AwbModeControl) UnmarshalControlValue(v *ControlValue) error {
	m, err := v.Int32()
	if err != nil {
		return err
	}
	c.Mode = m
	return nil
}

// AfModeControl selects the autofocus mode, one of the AfMode values.
type AfModeControl struct {
	Mode int32
}

func (c *AfModeControl) ControlID() ControlID { return AfMode }

func (c *AfModeControl) MarshalControlValue(v *ControlValue) error {
	v.SetInt32(c.Mode)
	return nil
}

func (c *AfModeControl) UnmarshalControlValue(v *ControlValue) error {
	m, err := v.Int32()
	if err != nil {
		return err
	}
	c.Mode = m
	return nil
}

// LensPositionControl moves the lens in manual focus mode, in dioptres.
type LensPositionControl struct {
	Dioptres float32
}

func (c *LensPositionControl) ControlID() ControlID { return LensPosition }

func (c *LensPositionControl) MarshalControlValue(v *ControlValue) error {
	v.SetFloat(c.Dioptres)
	return nil
}

func (c *LensPositionControl) UnmarshalControlValue(v *ControlValue) error {
	d, err := v.Float()
	if err != nil {
		return err
	}
	c.Dioptres = d
	return nil
}

// ModelProperty carries the camera's model name.
type ModelProperty struct {
	Model string
}

func (p *ModelProperty) PropertyID() PropertyID { return Model }

func (p *ModelProperty) MarshalControlValue(v *ControlValue) error {
	v.SetString(p.Model)
	return nil
}

func (p *ModelProperty) UnmarshalControlValue(v *ControlValue) error {
	s, err := v.StringValue()
	if err != nil {
		return err
	}
	p.Model = s
	return nil
}

// LocationProperty carries the camera's mounting location, one of the
// Location values.
type LocationProperty struct {
	Location int32
}

func (p *LocationProperty) PropertyID() PropertyID { return Location }

func (p *LocationProperty) MarshalControlValue(v *ControlValue) error {
	v.SetInt32(p.Location)
	return nil
}

func (p *LocationProperty) UnmarshalControlValue(v *ControlValue) error {
	l, err := v.Int32()
	if err != nil {
		return err
	}
	p.Location = l
	return nil
}

// RotationProperty carries the sensor mounting rotation in degrees.
type RotationProperty struct {
	Degrees int32
}

func (p *RotationProperty) PropertyID() PropertyID { return Rotation }

func (p *RotationProperty) MarshalControlValue(v *ControlValue) error {
	v.SetInt32(p.Degrees)
	return nil
}

func (p *RotationProperty) UnmarshalControlValue(v *ControlValue) error {
	d, err := v.Int32()
	if err != nil {
		return err
	}
	p.Degrees = d
	return nil
}

// PixelArraySizeProperty carries the full sensor pixel array size.
type PixelArraySizeProperty struct {
	Size Size
}

func (p *PixelArraySizeProperty) PropertyID() PropertyID { return PixelArraySize }

func (p *PixelArraySizeProperty) MarshalControlValue(v *ControlValue) error {
	v.SetSize(p.Size)
	return nil
}

func (p *PixelArraySizeProperty) UnmarshalControlValue(v *ControlValue) error {
	s, err := v.Size()
	if err != nil {
		return err
	}
	p.Size = s
	return nil
}

// ScalerCropMaximumProperty carries the largest scaler crop the camera can
// deliver.
type ScalerCropMaximumProperty struct {
	Crop Rectangle
}

func (p *ScalerCropMaximumProperty) PropertyID() PropertyID { return ScalerCropMaximum }

func (p *ScalerCropMaximumProperty) MarshalControlValue(v *ControlValue) error {
	v.SetRectangle(p.Crop)
	return nil
}

func (p *ScalerCropMaximumProperty) UnmarshalControlValue(v *ControlValue) error {
	r, err := v.Rectangle()
	if err != nil {
		return err
	}
	p.Crop = r
	return nil
}
