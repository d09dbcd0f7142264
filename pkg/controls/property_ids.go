package controls

// Core camera property identifiers, following the libcamera core property
// set. Properties describe the static characteristics of a camera and are
// resolved through the Properties registry.

type PropertyID uint32

const (
	Location                         PropertyID = 1
	Rotation                         PropertyID = 2
	Model                            PropertyID = 3
	UnitCellSize                     PropertyID = 4
	PixelArraySize                   PropertyID = 5
	PixelArrayOpticalBlackRectangles PropertyID = 6
	PixelArrayActiveAreas            PropertyID = 7
	ScalerCropMaximum                PropertyID = 8
	SensorSensitivity                PropertyID = 9
	SystemDevices                    PropertyID = 10
)

// Location values.
const (
	CameraLocationFront    int32 = 0
	CameraLocationBack     int32 = 1
	CameraLocationExternal int32 = 2
)

var propertyDefs = []ControlDef{
	{ID: uint32(Location), Name: "Location", Type: ControlTypeInteger32, Enum: map[int32]string{
		CameraLocationFront:    "CameraLocationFront",
		CameraLocationBack:     "CameraLocationBack",
		CameraLocationExternal: "CameraLocationExternal",
	}},
	{ID: uint32(Rotation), Name: "Rotation", Type: ControlTypeInteger32},
	{ID: uint32(Model), Name: "Model", Type: ControlTypeString},
	{ID: uint32(UnitCellSize), Name: "UnitCellSize", Type: ControlTypeSize},
	{ID: uint32(PixelArraySize), Name: "PixelArraySize", Type: ControlTypeSize},
	{ID: uint32(PixelArrayOpticalBlackRectangles), Name: "PixelArrayOpticalBlackRectangles", Type: ControlTypeRectangle, Array: true},
	{ID: uint32(PixelArrayActiveAreas), Name: "PixelArrayActiveAreas", Type: ControlTypeRectangle, Array: true},
	{ID: uint32(ScalerCropMaximum), Name: "ScalerCropMaximum", Type: ControlTypeRectangle},
	{ID: uint32(SensorSensitivity), Name: "SensorSensitivity", Type: ControlTypeFloat},
	{ID: uint32(SystemDevices), Name: "SystemDevices", Type: ControlTypeInteger64, Array: true},
}

// Properties is the registry of core camera property identifiers.
var Properties = NewRegistry("properties", propertyDefs)
