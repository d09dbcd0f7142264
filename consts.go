package camctl

// TestPatternModeID is the vendor control selecting the pattern the virtual
// camera synthesizes. It lives outside the core control range and is
// registered per camera.
const TestPatternModeID uint32 = 0x10001

type TestPatternMode int32

const (
	TestPatternColourBars TestPatternMode = 0
	TestPatternGradient   TestPatternMode = 1
	TestPatternCheckers   TestPatternMode = 2
	TestPatternSolid      TestPatternMode = 3
)
