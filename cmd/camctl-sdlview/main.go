package main

import (
	"flag"
	"log"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	camctl "github.com/Prowler1000/go-camctl"
	"github.com/Prowler1000/go-camctl/pkg/controls"
)

func main() {
	runtime.LockOSThread() // SDL requires main thread

	width := flag.Int("width", 640, "video width")
	height := flag.Int("height", 480, "video height")
	fps := flag.Int("fps", 30, "capture rate")
	flag.Parse()

	// Initialize SDL
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("Failed to init SDL: %v", err)
	}
	defer sdl.Quit()

	manager := camctl.NewCameraManager()
	defer manager.Close()

	cfg := camctl.DefaultVirtualConfig()
	cfg.Size = controls.Size{Width: uint32(*width), Height: uint32(*height)}
	cam, err := manager.AddVirtual(cfg)
	if err != nil {
		log.Fatalf("Failed to add virtual camera: %v", err)
	}

	window, err := sdl.CreateWindow(cam.Model(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(*width), int32(*height), sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	// ABGR8888 matches the byte order of image.RGBA pixels
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, int32(*width), int32(*height))
	if err != nil {
		log.Fatalf("Failed to create texture: %v", err)
	}
	defer texture.Destroy()

	frameChan := make(chan *camctl.Frame, 2)

	// Capture goroutine
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(*fps))
		defer ticker.Stop()
		for range ticker.C {
			frame, err := cam.Frame()
			if err != nil {
				return
			}
			select {
			case frameChan <- frame:
			default:
			}
		}
	}()

	var mu sync.Mutex
	var latest *camctl.Frame

	go func() {
		for f := range frameChan {
			mu.Lock()
			latest = f
			mu.Unlock()
		}
	}()

	pattern := camctl.TestPatternColourBars
	var displayCount int
	var lastFPS time.Time

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					running = false
				case sdl.K_SPACE:
					pattern = (pattern + 1) % 4
					list := controls.NewControlList()
					list.Set(camctl.TestPatternModeID, controls.NewInt32(int32(pattern)))
					if err := cam.Apply(list); err != nil {
						log.Printf("Pattern change failed: %v", err)
					}
				case sdl.K_UP:
					adjustBrightness(cam, 0.05)
				case sdl.K_DOWN:
					adjustBrightness(cam, -0.05)
				case sdl.K_RIGHT:
					adjustContrast(cam, 0.05)
				case sdl.K_LEFT:
					adjustContrast(cam, -0.05)
				}
			}
		}

		mu.Lock()
		frame := latest
		latest = nil
		mu.Unlock()

		if frame != nil {
			texture.Update(nil, unsafe.Pointer(&frame.Image.Pix[0]), frame.Image.Stride)
			displayCount++
		}

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		if time.Since(lastFPS) >= time.Second {
			log.Printf("Display FPS: %d", displayCount)
			displayCount = 0
			lastFPS = time.Now()
		}

		sdl.Delay(1)
	}
}

func adjustBrightness(cam *camctl.Camera, delta float32) {
	c := &controls.BrightnessControl{}
	if err := cam.GetControl(c); err != nil {
		log.Printf("Read brightness failed: %v", err)
		return
	}
	c.Brightness += delta
	if err := cam.SetControl(c); err != nil {
		log.Printf("Set brightness failed: %v", err)
		return
	}
	cam.GetControl(c)
	log.Printf("Brightness: %.2f", c.Brightness)
}

func adjustContrast(cam *camctl.Camera, delta float32) {
	c := &controls.ContrastControl{}
	if err := cam.GetControl(c); err != nil {
		log.Printf("Read contrast failed: %v", err)
		return
	}
	c.Contrast += delta
	if err := cam.SetControl(c); err != nil {
		log.Printf("Set contrast failed: %v", err)
		return
	}
	cam.GetControl(c)
	log.Printf("Contrast: %.2f", c.Contrast)
}
