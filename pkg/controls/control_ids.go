package controls

// Core camera control identifiers, following the libcamera core control
// set. The numeric values are stable for this module and resolved through
// the Controls registry; vendor controls extend the registry at runtime
// rather than extending this table.

type ControlID uint32

const (
	AeEnable               ControlID = 1
	AeLocked               ControlID = 2
	AeMeteringMode         ControlID = 3
	AeConstraintMode       ControlID = 4
	AeExposureMode         ControlID = 5
	ExposureValue          ControlID = 6
	ExposureTime           ControlID = 7
	AnalogueGain           ControlID = 8
	AeFlickerMode          ControlID = 9
	AeFlickerPeriod        ControlID = 10
	AeFlickerDetected      ControlID = 11
	Brightness             ControlID = 12
	Contrast               ControlID = 13
	Lux                    ControlID = 14
	AwbEnable              ControlID = 15
	AwbMode                ControlID = 16
	AwbLocked              ControlID = 17
	ColourGains            ControlID = 18
	ColourTemperature      ControlID = 19
	Saturation             ControlID = 20
	SensorBlackLevels      ControlID = 21
	Sharpness              ControlID = 22
	FocusFoM               ControlID = 23
	ColourCorrectionMatrix ControlID = 24
	ScalerCrop             ControlID = 25
	DigitalGain            ControlID = 26
	FrameDuration          ControlID = 27
	FrameDurationLimits    ControlID = 28
	SensorTemperature      ControlID = 29
	SensorTimestamp        ControlID = 30
	AfMode                 ControlID = 31
	AfRange                ControlID = 32
	AfSpeed                ControlID = 33
	AfMetering             ControlID = 34
	AfWindows              ControlID = 35
	AfTrigger              ControlID = 36
	AfPause                ControlID = 37
	LensPosition           ControlID = 38
	AfState                ControlID = 39
	AfPauseState           ControlID = 40
)

// AeMeteringMode values.
const (
	MeteringCentreWeighted int32 = 0
	MeteringSpot           int32 = 1
	MeteringMatrix         int32 = 2
	MeteringCustom         int32 = 3
)

// AeConstraintMode values.
const (
	ConstraintNormal    int32 = 0
	ConstraintHighlight int32 = 1
	ConstraintShadows   int32 = 2
	ConstraintCustom    int32 = 3
)

// AeExposureMode values.
const (
	ExposureNormal int32 = 0
	ExposureShort  int32 = 1
	ExposureLong   int32 = 2
	ExposureCustom int32 = 3
)

// AeFlickerMode values.
const (
	FlickerOff    int32 = 0
	FlickerManual int32 = 1
	FlickerAuto   int32 = 2
)

// AwbMode values.
const (
	AwbAuto         int32 = 0
	AwbIncandescent int32 = 1
	AwbTungsten     int32 = 2
	AwbFluorescent  int32 = 3
	AwbIndoor       int32 = 4
	AwbDaylight     int32 = 5
	AwbCloudy       int32 = 6
	AwbCustom       int32 = 7
)

// AfMode values.
const (
	AfModeManual     int32 = 0
	AfModeAuto       int32 = 1
	AfModeContinuous int32 = 2
)

// AfRange values.
const (
	AfRangeNormal int32 = 0
	AfRangeMacro  int32 = 1
	AfRangeFull   int32 = 2
)

// AfSpeed values.
const (
	AfSpeedNormal int32 = 0
	AfSpeedFast   int32 = 1
)

// AfMetering values.
const (
	AfMeteringAuto    int32 = 0
	AfMeteringWindows int32 = 1
)

// AfTrigger values.
const (
	AfTriggerStart  int32 = 0
	AfTriggerCancel int32 = 1
)

// AfPause values.
const (
	AfPauseImmediate int32 = 0
	AfPauseDeferred  int32 = 1
	AfPauseResume    int32 = 2
)

// AfState values.
const (
	AfStateIdle     int32 = 0
	AfStateScanning int32 = 1
	AfStateFocused  int32 = 2
	AfStateFailed   int32 = 3
)

// AfPauseState values.
const (
	AfPauseStateRunning int32 = 0
	AfPauseStatePaused  int32 = 1
)

var controlDefs = []ControlDef{
	{ID: uint32(AeEnable), Name: "AeEnable", Type: ControlTypeBool},
	{ID: uint32(AeLocked), Name: "AeLocked", Type: ControlTypeBool},
	{ID: uint32(AeMeteringMode), Name: "AeMeteringMode", Type: ControlTypeInteger32, Enum: map[int32]string{
		MeteringCentreWeighted: "MeteringCentreWeighted",
		MeteringSpot:           "MeteringSpot",
		MeteringMatrix:         "MeteringMatrix",
		MeteringCustom:         "MeteringCustom",
	}},
	{ID: uint32(AeConstraintMode), Name: "AeConstraintMode", Type: ControlTypeInteger32, Enum: map[int32]string{
		ConstraintNormal:    "ConstraintNormal",
		ConstraintHighlight: "ConstraintHighlight",
		ConstraintShadows:   "ConstraintShadows",
		ConstraintCustom:    "ConstraintCustom",
	}},
	{ID: uint32(AeExposureMode), Name: "AeExposureMode", Type: ControlTypeInteger32, Enum: map[int32]string{
		ExposureNormal: "ExposureNormal",
		ExposureShort:  "ExposureShort",
		ExposureLong:   "ExposureLong",
		ExposureCustom: "ExposureCustom",
	}},
	{ID: uint32(ExposureValue), Name: "ExposureValue", Type: ControlTypeFloat},
	{ID: uint32(ExposureTime), Name: "ExposureTime", Type: ControlTypeInteger32},
	{ID: uint32(AnalogueGain), Name: "AnalogueGain", Type: ControlTypeFloat},
	{ID: uint32(AeFlickerMode), Name: "AeFlickerMode", Type: ControlTypeInteger32, Enum: map[int32]string{
		FlickerOff:    "FlickerOff",
		FlickerManual: "FlickerManual",
		FlickerAuto:   "FlickerAuto",
	}},
	{ID: uint32(AeFlickerPeriod), Name: "AeFlickerPeriod", Type: ControlTypeInteger32},
	{ID: uint32(AeFlickerDetected), Name: "AeFlickerDetected", Type: ControlTypeInteger32},
	{ID: uint32(Brightness), Name: "Brightness", Type: ControlTypeFloat},
	{ID: uint32(Contrast), Name: "Contrast", Type: ControlTypeFloat},
	{ID: uint32(Lux), Name: "Lux", Type: ControlTypeFloat},
	{ID: uint32(AwbEnable), Name: "AwbEnable", Type: ControlTypeBool},
	{ID: uint32(AwbMode), Name: "AwbMode", Type: ControlTypeInteger32, Enum: map[int32]string{
		AwbAuto:         "AwbAuto",
		AwbIncandescent: "AwbIncandescent",
		AwbTungsten:     "AwbTungsten",
		AwbFluorescent:  "AwbFluorescent",
		AwbIndoor:       "AwbIndoor",
		AwbDaylight:     "AwbDaylight",
		AwbCloudy:       "AwbCloudy",
		AwbCustom:       "AwbCustom",
	}},
	{ID: uint32(AwbLocked), Name: "AwbLocked", Type: ControlTypeBool},
	{ID: uint32(ColourGains), Name: "ColourGains", Type: ControlTypeFloat, Array: true},
	{ID: uint32(ColourTemperature), Name: "ColourTemperature", Type: ControlTypeInteger32},
	{ID: uint32(Saturation), Name: "Saturation", Type: ControlTypeFloat},
	{ID: uint32(SensorBlackLevels), Name: "SensorBlackLevels", Type: ControlTypeInteger32, Array: true},
	{ID: uint32(Sharpness), Name: "Sharpness", Type: ControlTypeFloat},
	{ID: uint32(FocusFoM), Name: "FocusFoM", Type: ControlTypeInteger32},
	{ID: uint32(ColourCorrectionMatrix), Name: "ColourCorrectionMatrix", Type: ControlTypeMatrix3x3},
	{ID: uint32(ScalerCrop), Name: "ScalerCrop", Type: ControlTypeRectangle},
	{ID: uint32(DigitalGain), Name: "DigitalGain", Type: ControlTypeFloat},
	{ID: uint32(FrameDuration), Name: "FrameDuration", Type: ControlTypeInteger64},
	{ID: uint32(FrameDurationLimits), Name: "FrameDurationLimits", Type: ControlTypeInteger64, Array: true},
	{ID: uint32(SensorTemperature), Name: "SensorTemperature", Type: ControlTypeFloat},
	{ID: uint32(SensorTimestamp), Name: "SensorTimestamp", Type: ControlTypeInteger64},
	{ID: uint32(AfMode), Name: "AfMode", Type: ControlTypeInteger32, Enum: map[int32]string{
		AfModeManual:     "AfModeManual",
		AfModeAuto:       "AfModeAuto",
		AfModeContinuous: "AfModeContinuous",
	}},
	{ID: uint32(AfRange), Name: "AfRange", Type: ControlTypeInteger32, Enum: map[int32]string{
		AfRangeNormal: "AfRangeNormal",
		AfRangeMacro:  "AfRangeMacro",
		AfRangeFull:   "AfRangeFull",
	}},
	{ID: uint32(AfSpeed), Name: "AfSpeed", Type: ControlTypeInteger32, Enum: map[int32]string{
		AfSpeedNormal: "AfSpeedNormal",
		AfSpeedFast:   "AfSpeedFast",
	}},
	{ID: uint32(AfMetering), Name: "AfMetering", Type: ControlTypeInteger32, Enum: map[int32]string{
		AfMeteringAuto:    "AfMeteringAuto",
		AfMeteringWindows: "AfMeteringWindows",
	}},
	{ID: uint32(AfWindows), Name: "AfWindows", Type: ControlTypeRectangle, Array: true},
	{ID: uint32(AfTrigger), Name: "AfTrigger", Type: ControlTypeInteger32, Enum: map[int32]string{
		AfTriggerStart:  "AfTriggerStart",
		AfTriggerCancel: "AfTriggerCancel",
	}},
	{ID: uint32(AfPause), Name: "AfPause", Type: ControlTypeInteger32, Enum: map[int32]string{
		AfPauseImmediate: "AfPauseImmediate",
		AfPauseDeferred:  "AfPauseDeferred",
		AfPauseResume:    "AfPauseResume",
	}},
	{ID: uint32(LensPosition), Name: "LensPosition", Type: ControlTypeFloat},
	{ID: uint32(AfState), Name: "AfState", Type: ControlTypeInteger32, Enum: map[int32]string{
		AfStateIdle:     "AfStateIdle",
		AfStateScanning: "AfStateScanning",
		AfStateFocused:  "AfStateFocused",
		AfStateFailed:   "AfStateFailed",
	}},
	{ID: uint32(AfPauseState), Name: "AfPauseState", Type: ControlTypeInteger32, Enum: map[int32]string{
		AfPauseStateRunning: "AfPauseStateRunning",
		AfPauseStatePaused:  "AfPauseStatePaused",
	}},
}

// Controls is the registry of core camera control identifiers.
var Controls = NewRegistry("controls", controlDefs)
