package camctl

import (
	"errors"
	"image"
	"testing"

	"github.com/Prowler1000/go-camctl/pkg/controls"
)

func setPattern(t *testing.T, cam *Camera, mode TestPatternMode) {
	t.Helper()
	list := controls.NewControlList()
	list.Set(TestPatternModeID, controls.NewInt32(int32(mode)))
	if err := cam.Apply(list); err != nil {
		t.Fatal(err)
	}
}

func TestCamera_FrameGeometry(t *testing.T) {
	cam := newTestCamera(t)

	frame, err := cam.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(0, 0, 640, 480); frame.Image.Bounds() != want {
		t.Errorf("unexpected bounds: %v", frame.Image.Bounds())
	}
	if frame.Sequence != 0 {
		t.Errorf("expected first sequence 0, got %d", frame.Sequence)
	}

	second, err := cam.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if second.Sequence != 1 {
		t.Errorf("expected sequence 1, got %d", second.Sequence)
	}
}

func TestCamera_FrameMetadata(t *testing.T) {
	cam := newTestCamera(t)

	frame, err := cam.Frame()
	if err != nil {
		t.Fatal(err)
	}

	ts := frame.Metadata.Get(uint32(controls.SensorTimestamp))
	if ts == nil {
		t.Fatal("missing SensorTimestamp")
	}
	if ns, err := ts.Int64(); err != nil || ns <= 0 {
		t.Errorf("bad SensorTimestamp: %v %v", ns, err)
	}

	dur := frame.Metadata.Get(uint32(controls.FrameDuration))
	if dur == nil {
		t.Fatal("missing FrameDuration")
	}
	if us, err := dur.Int64(); err != nil || us != 33333 {
		t.Errorf("expected frame duration 33333us, got %v %v", us, err)
	}

	// The metadata also reports the control values that produced the
	// frame.
	if frame.Metadata.Get(uint32(controls.Brightness)) == nil {
		t.Errorf("missing producing control values")
	}
}

func TestCamera_FrameSolidPattern(t *testing.T) {
	cam := newTestCamera(t)
	setPattern(t, cam, TestPatternSolid)

	frame, err := cam.Frame()
	if err != nil {
		t.Fatal(err)
	}
	first := frame.Image.RGBAAt(0, 0)
	if first.R != 128 || first.G != 128 || first.B != 128 {
		t.Fatalf("unexpected solid grey: %v", first)
	}
	if got := frame.Image.RGBAAt(320, 240); got != first {
		t.Errorf("solid frame is not uniform: %v vs %v", got, first)
	}
}

func TestCamera_FrameBrightness(t *testing.T) {
	cam := newTestCamera(t)
	setPattern(t, cam, TestPatternSolid)

	if err := cam.SetControl(&controls.BrightnessControl{Brightness: 0.25}); err != nil {
		t.Fatal(err)
	}
	frame, err := cam.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if got := frame.Image.RGBAAt(0, 0).R; got != 191 {
		t.Errorf("expected 0.75 grey after brightness lift, got %d", got)
	}
}

func TestCamera_FrameColourGains(t *testing.T) {
	cam := newTestCamera(t)
	setPattern(t, cam, TestPatternSolid)

	if err := cam.SetControl(&controls.ColourGainsControl{Red: 2, Blue: 1}); err != nil {
		t.Fatal(err)
	}
	frame, err := cam.Frame()
	if err != nil {
		t.Fatal(err)
	}
	px := frame.Image.RGBAAt(10, 10)
	if px.R <= px.B {
		t.Errorf("expected red gain to lift the red channel: %v", px)
	}
}

func TestCamera_FrameCheckersAdvance(t *testing.T) {
	cam := newTestCamera(t)
	setPattern(t, cam, TestPatternCheckers)

	first, err := cam.Frame()
	if err != nil {
		t.Fatal(err)
	}
	second, err := cam.Frame()
	if err != nil {
		t.Fatal(err)
	}
	// The checker parity flips every frame.
	if first.Image.RGBAAt(0, 0) == second.Image.RGBAAt(0, 0) {
		t.Errorf("pattern did not advance between frames")
	}
}

func TestCamera_FrameAfterClose(t *testing.T) {
	cam := newTestCamera(t)
	if err := cam.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := cam.Frame(); !errors.Is(err, ErrCameraClosed) {
		t.Fatalf("expected ErrCameraClosed, got %v", err)
	}
}
