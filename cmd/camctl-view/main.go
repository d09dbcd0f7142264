package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	camctl "github.com/Prowler1000/go-camctl"
	"github.com/Prowler1000/go-camctl/pkg/controls"
)

type Viewer struct {
	cam     *camctl.Camera
	width   int
	height  int
	pattern camctl.TestPatternMode
	frame   *ebiten.Image
	held    map[ebiten.Key]bool
	saved   int
}

// pressed reports a key transition from up to down, so one keypress fires
// once even when Update runs every tick.
func (v *Viewer) pressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := v.held[k]
	v.held[k] = down
	return down && !was
}

func (v *Viewer) Update() error {
	if v.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// held keys ramp the processing controls, the camera clamps
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.adjustBrightness(0.01)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.adjustBrightness(-0.01)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.adjustContrast(0.01)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.adjustContrast(-0.01)
	}

	if v.pressed(ebiten.KeySpace) {
		v.pattern = (v.pattern + 1) % 4
		list := controls.NewControlList()
		list.Set(camctl.TestPatternModeID, controls.NewInt32(int32(v.pattern)))
		if err := v.cam.Apply(list); err != nil {
			log.Printf("Pattern change failed: %v", err)
		}
	}

	frame, err := v.cam.Frame()
	if err != nil {
		return err
	}
	v.frame = ebiten.NewImageFromImage(frame.Image)

	if v.pressed(ebiten.KeyP) {
		v.savePNG(frame)
	}
	return nil
}

func (v *Viewer) adjustBrightness(delta float32) {
	c := &controls.BrightnessControl{}
	if err := v.cam.GetControl(c); err != nil {
		return
	}
	c.Brightness += delta
	v.cam.SetControl(c)
}

func (v *Viewer) adjustContrast(delta float32) {
	c := &controls.ContrastControl{}
	if err := v.cam.GetControl(c); err != nil {
		return
	}
	c.Contrast += delta
	v.cam.SetControl(c)
}

func (v *Viewer) savePNG(frame *camctl.Frame) {
	name := fmt.Sprintf("frame_%d.png", v.saved)
	f, err := os.Create(name)
	if err != nil {
		log.Printf("Failed to create %s: %v", name, err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, frame.Image); err != nil {
		log.Printf("Failed to encode %s: %v", name, err)
		return
	}
	v.saved++
	log.Printf("Saved %s (sequence %d)", name, frame.Sequence)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.frame != nil {
		screen.DrawImage(v.frame, &ebiten.DrawImageOptions{})
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func main() {
	width := flag.Int("width", 640, "video width")
	height := flag.Int("height", 480, "video height")
	flag.Parse()

	manager := camctl.NewCameraManager()
	defer manager.Close()

	cfg := camctl.DefaultVirtualConfig()
	cfg.Size = controls.Size{Width: uint32(*width), Height: uint32(*height)}
	cam, err := manager.AddVirtual(cfg)
	if err != nil {
		log.Fatalf("Failed to add virtual camera: %v", err)
	}

	log.Println("Arrows adjust brightness/contrast, space cycles the pattern, p saves a frame")

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(cam.Model())
	v := &Viewer{cam: cam, width: *width, height: *height, held: make(map[ebiten.Key]bool)}
	if err := ebiten.RunGame(v); err != nil {
		log.Fatalf("Viewer exited: %v", err)
	}
}
