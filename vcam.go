package camctl

import (
	"github.com/Prowler1000/go-camctl/pkg/controls"
)

// VirtualConfig describes a virtual camera.
type VirtualConfig struct {
	Model    string
	Location int32
	Rotation int32

	// Size is the synthesized frame size.
	Size controls.Size

	// PixelArraySize is the advertised sensor size. Zero takes the
	// default, not Size, so a camera can expose a sensor larger than its
	// output.
	PixelArraySize controls.Size

	// Infos is the camera's control info map. Nil takes the default
	// control set.
	Infos map[uint32]*controls.ControlInfo

	// Vendor holds registry definitions for any non-core identifiers used
	// in Infos.
	Vendor []controls.ControlDef
}

func (cfg *VirtualConfig) fillDefaults() {
	def := DefaultVirtualConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Size == (controls.Size{}) {
		cfg.Size = def.Size
	}
	if cfg.PixelArraySize == (controls.Size{}) {
		cfg.PixelArraySize = def.PixelArraySize
	}
	if cfg.Infos == nil {
		cfg.Infos = def.Infos
		if cfg.Vendor == nil {
			cfg.Vendor = def.Vendor
		}
	}
}

// DefaultVirtualConfig returns the stock virtual camera: a 640x480 external
// camera with the usual processing controls and the vendor test pattern
// control.
func DefaultVirtualConfig() VirtualConfig {
	return VirtualConfig{
		Model:          "virtual-pinhole",
		Location:       controls.CameraLocationExternal,
		Rotation:       0,
		Size:           controls.Size{Width: 640, Height: 480},
		PixelArraySize: controls.Size{Width: 1280, Height: 960},
		Vendor: []controls.ControlDef{{
			ID:   TestPatternModeID,
			Name: "TestPatternMode",
			Type: controls.ControlTypeInteger32,
			Enum: map[int32]string{
				int32(TestPatternColourBars): "ColourBars",
				int32(TestPatternGradient):   "Gradient",
				int32(TestPatternCheckers):   "Checkers",
				int32(TestPatternSolid):      "Solid",
			},
		}},
		Infos: map[uint32]*controls.ControlInfo{
			uint32(controls.AeEnable):     controls.BoolInfo(true),
			uint32(controls.ExposureTime): controls.Int32Info(100, 66666, 10000),
			uint32(controls.AnalogueGain): controls.FloatInfo(1, 16, 1),
			uint32(controls.Brightness):   controls.FloatInfo(-1, 1, 0),
			uint32(controls.Contrast):     controls.FloatInfo(0, 2, 1),
			uint32(controls.Saturation):   controls.FloatInfo(0, 2, 1),
			uint32(controls.Sharpness):    controls.FloatInfo(0, 4, 1),
			uint32(controls.AwbEnable):    controls.BoolInfo(true),
			uint32(controls.AwbMode): controls.EnumInfo(controls.AwbAuto,
				controls.AwbAuto, controls.AwbTungsten, controls.AwbDaylight, controls.AwbCloudy),
			uint32(controls.ColourGains): controls.NewControlInfo(
				controls.NewFloat(0), controls.NewFloat(32), controls.NewFloats([]float32{1, 1})),
			uint32(controls.ColourCorrectionMatrix): controls.NewControlInfo(
				controls.NewFloat(-16), controls.NewFloat(16), controls.NewMatrix(controls.Identity())),
			uint32(controls.ScalerCrop): controls.RectangleInfo(
				controls.Rectangle{Width: 64, Height: 48},
				controls.Rectangle{Width: 1280, Height: 960},
				controls.Rectangle{Width: 1280, Height: 960}),
			uint32(controls.FrameDurationLimits): controls.NewControlInfo(
				controls.NewInt64(15000), controls.NewInt64(1000000),
				controls.NewInt64s([]int64{33333, 33333})),
			uint32(controls.AfMode): controls.EnumInfo(controls.AfModeManual,
				controls.AfModeManual, controls.AfModeAuto, controls.AfModeContinuous),
			uint32(controls.LensPosition): controls.FloatInfo(0, 32, 1),
			TestPatternModeID: controls.EnumInfo(int32(TestPatternColourBars),
				int32(TestPatternColourBars), int32(TestPatternGradient),
				int32(TestPatternCheckers), int32(TestPatternSolid)),
		},
	}
}

func buildProperties(cfg VirtualConfig) (*controls.ControlList, error) {
	props := controls.NewControlList()
	entries := []controls.PropertyEntry{
		&controls.ModelProperty{Model: cfg.Model},
		&controls.LocationProperty{Location: cfg.Location},
		&controls.RotationProperty{Degrees: cfg.Rotation},
		&controls.PixelArraySizeProperty{Size: cfg.PixelArraySize},
		&controls.ScalerCropMaximumProperty{Crop: controls.Rectangle{
			Width:  cfg.PixelArraySize.Width,
			Height: cfg.PixelArraySize.Height,
		}},
	}
	for _, e := range entries {
		if err := props.SetProperty(e); err != nil {
			return nil, err
		}
	}
	// 1.4um unit cells, reported in nanometres
	props.Set(uint32(controls.UnitCellSize), controls.NewSize(controls.Size{Width: 1400, Height: 1400}))
	// the whole pixel array is active
	props.Set(uint32(controls.PixelArrayActiveAreas), controls.NewRectangles([]controls.Rectangle{{
		Width:  cfg.PixelArraySize.Width,
		Height: cfg.PixelArraySize.Height,
	}}))
	return props, nil
}
