package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rs/zerolog"

	camctl "github.com/Prowler1000/go-camctl"
	"github.com/Prowler1000/go-camctl/pkg/controls"
)

func main() {
	model := flag.String("model", "", "override the virtual camera model name")
	width := flag.Int("width", 0, "override the frame width")
	height := flag.Int("height", 0, "override the frame height")
	flag.Parse()

	manager := camctl.NewCameraManager()
	manager.SetLogger(zerolog.Nop())
	defer manager.Close()

	cfg := camctl.DefaultVirtualConfig()
	if *model != "" {
		cfg.Model = *model
	}
	if *width > 0 && *height > 0 {
		cfg.Size = controls.Size{Width: uint32(*width), Height: uint32(*height)}
	}

	cam, err := manager.AddVirtual(cfg)
	if err != nil {
		log.Fatalf("Failed to add virtual camera: %v", err)
	}

	fmt.Printf("=== Camera %s ===\n", cam.ID())

	fmt.Println("\nProperties:")
	props := cam.Properties()
	for it := props.Iterate(); !it.End(); it.Next() {
		name := controls.Properties.Name(it.ID())
		if name == "" {
			name = fmt.Sprintf("0x%08x", it.ID())
		}
		fmt.Printf("  %s: %s\n", name, it.Value())
	}

	fmt.Println("\nControls:")
	reg := cam.Registry()
	for _, id := range cam.SupportedControls() {
		info := cam.ControlInfo().Get(id)
		fmt.Printf("  %s (%s): %s\n", reg.Name(id), reg.TypeOf(id), info)

		if values := info.Values(); len(values) != 0 {
			fmt.Printf("    Allowed:")
			for i := range values {
				if n, err := values[i].Int32(); err == nil {
					if name := reg.EnumName(id, n); name != "" {
						fmt.Printf(" %s(%d)", name, n)
						continue
					}
				}
				fmt.Printf(" %s", &values[i])
			}
			fmt.Println()
		}
	}

	fmt.Println("\nCurrent values:")
	current := cam.Controls()
	for it := current.Iterate(); !it.End(); it.Next() {
		fmt.Printf("  %s: %s\n", reg.Name(it.ID()), it.Value())
	}
}
