package camctl

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Prowler1000/go-camctl/pkg/controls"
)

func newTestManager(t *testing.T) *CameraManager {
	t.Helper()
	m := NewCameraManager()
	m.SetLogger(zerolog.Nop())
	t.Cleanup(func() { m.Close() })
	return m
}

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	cam, err := newTestManager(t).AddVirtual(DefaultVirtualConfig())
	if err != nil {
		t.Fatal(err)
	}
	return cam
}

func TestCameraManager_AddVirtual(t *testing.T) {
	m := newTestManager(t)

	cam, err := m.AddVirtual(DefaultVirtualConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(cam.ID(), "virtual:") {
		t.Errorf("unexpected identifier: %q", cam.ID())
	}
	if cam.Model() != "virtual-pinhole" {
		t.Errorf("unexpected model: %q", cam.Model())
	}

	got, err := m.Get(cam.ID())
	if err != nil {
		t.Fatal(err)
	}
	if got != cam {
		t.Errorf("Get returned a different camera")
	}
}

func TestCameraManager_DeterministicIDs(t *testing.T) {
	a := newTestManager(t)
	b := newTestManager(t)

	camA, err := a.AddVirtual(DefaultVirtualConfig())
	if err != nil {
		t.Fatal(err)
	}
	camB, err := b.AddVirtual(DefaultVirtualConfig())
	if err != nil {
		t.Fatal(err)
	}
	if camA.ID() != camB.ID() {
		t.Errorf("same configuration produced different identifiers: %q vs %q", camA.ID(), camB.ID())
	}

	camB2, err := b.AddVirtual(DefaultVirtualConfig())
	if err != nil {
		t.Fatal(err)
	}
	if camB2.ID() == camB.ID() {
		t.Errorf("second camera reused the first identifier %q", camB.ID())
	}
}

func TestCameraManager_GetUnknown(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Get("virtual:nope"); !errors.Is(err, ErrCameraNotFound) {
		t.Fatalf("expected ErrCameraNotFound, got %v", err)
	}
}

func TestCameraManager_Cameras(t *testing.T) {
	m := newTestManager(t)

	first, err := m.AddVirtual(DefaultVirtualConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultVirtualConfig()
	cfg.Model = "virtual-wideangle"
	second, err := m.AddVirtual(cfg)
	if err != nil {
		t.Fatal(err)
	}

	cams := m.Cameras()
	if len(cams) != 2 || cams[0] != first || cams[1] != second {
		t.Fatalf("unexpected camera list: %v", cams)
	}
}

func TestCameraManager_Close(t *testing.T) {
	m := newTestManager(t)
	cam, err := m.AddVirtual(DefaultVirtualConfig())
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second close should be a no-op, got %v", err)
	}

	if _, err := m.AddVirtual(DefaultVirtualConfig()); !errors.Is(err, ErrManagerClosed) {
		t.Errorf("expected ErrManagerClosed, got %v", err)
	}
	if err := cam.SetControl(&controls.BrightnessControl{}); !errors.Is(err, ErrCameraClosed) {
		t.Errorf("expected manager close to close the camera, got %v", err)
	}
}

func TestCameraManager_RejectsUnregisteredInfo(t *testing.T) {
	m := newTestManager(t)

	cfg := DefaultVirtualConfig()
	cfg.Infos[0xdeadbeef] = controls.Int32Info(0, 10, 5)
	if _, err := m.AddVirtual(cfg); err == nil {
		t.Fatal("expected an error for an info entry without a registry definition")
	}
}
