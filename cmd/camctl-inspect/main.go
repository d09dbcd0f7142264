package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	camctl "github.com/Prowler1000/go-camctl"
	"github.com/Prowler1000/go-camctl/pkg/controls"
)

func main() {
	preview := flag.Bool("preview", true, "render a live preview of the selected camera")
	flag.Parse()

	manager := camctl.NewCameraManager()
	defer manager.Close()

	app := tview.NewApplication()

	cameras := tview.NewList()
	cameras.SetBorder(true).SetTitle("Cameras")

	properties := tview.NewList().ShowSecondaryText(false)
	properties.SetBorder(true).SetTitle("Properties")

	controlList := tview.NewList()
	controlList.SetBorder(true).SetTitle("Controls")

	previewImage := tview.NewImage()
	previewImage.SetColors(256).SetDithering(tview.DitheringNone).SetBorder(true).SetTitle("Preview")

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")

	log.SetOutput(logText)
	manager.SetLogger(zerolog.New(logText))

	controlColumn := tview.NewFlex().SetDirection(tview.FlexRow).AddItem(controlList, 0, 1, false)

	wide := camctl.DefaultVirtualConfig()
	wide.Model = "virtual-wideangle"
	wide.Location = controls.CameraLocationFront
	for _, cfg := range []camctl.VirtualConfig{camctl.DefaultVirtualConfig(), wide} {
		if _, err := manager.AddVirtual(cfg); err != nil {
			log.Fatalf("Failed to add virtual camera: %v", err)
		}
	}

	selected := &atomic.Pointer[camctl.Camera]{}

	for _, cam := range manager.Cameras() {
		cameras.AddItem(cam.Model(), cam.ID(), 0, func() {
			selected.Store(cam)
			showProperties(properties, cam)
			showControls(app, controlColumn, controlList, cam)
			app.SetFocus(controlList)
		})
	}

	// Preview loop, one frame per tick for whichever camera is selected.
	if *preview {
		go func() {
			for range time.Tick(100 * time.Millisecond) {
				cam := selected.Load()
				if cam == nil {
					continue
				}
				frame, err := cam.Frame()
				if err != nil {
					return
				}
				w := 64
				h := frame.Image.Bounds().Dy() * w / frame.Image.Bounds().Dx()
				previewImage.SetImage(resize(frame.Image, w, h))
				app.ForceDraw()
			}
		}()
	}

	// Create the layout.

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(cameras, 0, 1, true).
		AddItem(properties, 0, 2, false)

	flex := tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(controlColumn, 0, 2, false)

	if *preview {
		flex.AddItem(previewImage, 0, 2, false)
	}

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(flex, 0, 1, true).
		AddItem(logText, 10, 0, false)

	if err := app.SetRoot(root, true).Run(); err != nil {
		panic(err)
	}
}

func showProperties(list *tview.List, cam *camctl.Camera) {
	list.Clear()
	props := cam.Properties()
	for it := props.Iterate(); !it.End(); it.Next() {
		name := controls.Properties.Name(it.ID())
		if name == "" {
			name = fmt.Sprintf("0x%08x", it.ID())
		}
		list.AddItem(fmt.Sprintf("%s: %s", name, it.Value()), "", 0, nil)
	}
}

func showControls(app *tview.Application, column *tview.Flex, list *tview.List, cam *camctl.Camera) {
	list.Clear()
	reg := cam.Registry()
	for _, id := range cam.SupportedControls() {
		info := cam.ControlInfo().Get(id)
		title := fmt.Sprintf("%s (%s)", reg.Name(id), reg.TypeOf(id))
		list.AddItem(title, controlSubtitle(cam, id, info), 0, func() {
			editControl(app, column, list, cam, id)
		})
	}
}

func controlSubtitle(cam *camctl.Camera, id uint32, info *controls.ControlInfo) string {
	current := "unset"
	if v := cam.Controls().Get(id); v != nil {
		current = v.String()
	}
	return fmt.Sprintf("%s, current %s", info, current)
}

func editControl(app *tview.Application, column *tview.Flex, list *tview.List, cam *camctl.Camera, id uint32) {
	def := cam.Registry().Lookup(id)
	if def == nil || def.Array {
		log.Printf("Control %s is not editable here", cam.Registry().Name(id))
		return
	}

	input := tview.NewInputField()
	input.SetLabel(fmt.Sprintf("Set %s: ", def.Name)).SetFieldWidth(16)
	switch def.Type {
	case controls.ControlTypeInteger32, controls.ControlTypeInteger64:
		input.SetAcceptanceFunc(tview.InputFieldInteger)
	case controls.ControlTypeFloat:
		input.SetAcceptanceFunc(tview.InputFieldFloat)
	case controls.ControlTypeBool:
	default:
		log.Printf("Control type %s is not editable here", def.Type)
		return
	}

	input.SetDoneFunc(func(key tcell.Key) {
		defer func() {
			column.RemoveItem(input)
			showControls(app, column, list, cam)
			app.SetFocus(list)
		}()
		if key != tcell.KeyEnter {
			return
		}
		v, err := parseValue(def.Type, input.GetText())
		if err != nil {
			log.Printf("Failed parsing value: %v", err)
			return
		}
		changes := controls.NewControlList()
		changes.Set(id, v)
		if err := cam.Apply(changes); err != nil {
			log.Printf("Apply failed: %v", err)
		}
	})
	column.AddItem(input, 1, 0, false)
	app.SetFocus(input)
}

func parseValue(t controls.ControlType, s string) (*controls.ControlValue, error) {
	switch t {
	case controls.ControlTypeBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return controls.NewBool(b), nil
	case controls.ControlTypeInteger32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, err
		}
		return controls.NewInt32(int32(n)), nil
	case controls.ControlTypeInteger64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return controls.NewInt64(n), nil
	case controls.ControlTypeFloat:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		return controls.NewFloat(float32(f)), nil
	default:
		return nil, fmt.Errorf("no editor for type %s", t)
	}
}

func resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
