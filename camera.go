package camctl

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Prowler1000/go-camctl/pkg/controls"
)

// Camera models a single camera: its static properties, the control info
// map describing the value space of every supported control, and the
// current control values. All mutation goes through Apply or SetControl so
// values are always validated against the info map.
type Camera struct {
	id  string
	cfg VirtualConfig
	log zerolog.Logger

	registry *controls.Registry
	infoMap  *controls.ControlInfoMap
	props    *controls.ControlList

	mu      sync.Mutex
	current *controls.ControlList
	seq     uint64
	closed  bool
}

func newCamera(id string, cfg VirtualConfig, log zerolog.Logger) (*Camera, error) {
	registry := controls.Controls
	if len(cfg.Vendor) > 0 {
		registry = registry.Extend(cfg.Vendor...)
	}
	for cid := range cfg.Infos {
		if registry.TypeOf(cid) == controls.ControlTypeNone {
			return nil, fmt.Errorf("control %#x has an info entry but no registry definition", cid)
		}
	}

	props, err := buildProperties(cfg)
	if err != nil {
		return nil, err
	}

	cam := &Camera{
		id:       id,
		cfg:      cfg,
		log:      log.With().Str("camera", id).Logger(),
		registry: registry,
		infoMap:  controls.NewControlInfoMap(registry, cfg.Infos),
		props:    props,
		current:  controls.NewControlList(),
	}

	// seed the current values from the default facets
	for _, cid := range cam.infoMap.IDs() {
		def := cam.infoMap.Get(cid).Def()
		if !def.IsNone() {
			cam.current.Set(cid, def)
		}
	}
	return cam, nil
}

func (c *Camera) ID() string { return c.id }

func (c *Camera) Model() string { return c.cfg.Model }

// Registry returns the identifier registry for this camera, the core set
// extended with the camera's vendor controls.
func (c *Camera) Registry() *controls.Registry { return c.registry }

// Properties returns the camera's static property list. The list is owned
// by the camera and must not be modified.
func (c *Camera) Properties() *controls.ControlList { return c.props }

// ControlInfo returns the camera's control info map.
func (c *Camera) ControlInfo() *controls.ControlInfoMap { return c.infoMap }

// Controls returns a copy of the current control values.
func (c *Camera) Controls() *controls.ControlList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Clone()
}

func (c *Camera) Supports(id uint32) bool {
	return c.infoMap.Get(id) != nil
}

// SupportedControls returns the supported control identifiers in ascending
// order.
func (c *Camera) SupportedControls() []uint32 {
	return c.infoMap.IDs()
}

// Apply validates the listed values against the info map and stores them as
// the current control values. Unsupported controls are logged and skipped,
// out of range values are clamped, and enumerated controls fall back to
// their default when the value is not in the set. A value of the wrong type
// fails the whole apply.
func (c *Camera) Apply(list *controls.ControlList) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyLocked(list)
}

func (c *Camera) applyLocked(list *controls.ControlList) error {
	if c.closed {
		return ErrCameraClosed
	}
	for it := list.Iterate(); !it.End(); it.Next() {
		id, v := it.ID(), it.Value()
		info := c.infoMap.Get(id)
		if info == nil {
			c.log.Warn().Uint32("id", id).Str("name", c.registry.Name(id)).Msg("ignoring unsupported control")
			continue
		}
		def := c.registry.Lookup(id)
		if v.Type() != def.Type {
			return fmt.Errorf("control %s: %w: have %s, want %s",
				def.Name, controls.ErrValueType, v.Type(), def.Type)
		}
		if def.Type != controls.ControlTypeString && v.IsArray() != def.Array {
			return fmt.Errorf("control %s: %w: array mismatch", def.Name, controls.ErrValueType)
		}
		c.current.Set(id, c.clamp(def.Name, v, info))
	}
	return nil
}

// clamp coerces v into the descriptor's value space: enumerated controls
// snap to their default when the value is not listed, scalar numeric
// controls clamp to [min, max]. A descriptor without a maximum leaves the
// value open ended above.
func (c *Camera) clamp(name string, v *controls.ControlValue, info *controls.ControlInfo) *controls.ControlValue {
	if vals := info.Values(); len(vals) > 0 {
		for i := range vals {
			if vals[i].Equal(v) {
				return v
			}
		}
		c.log.Warn().Str("control", name).Str("value", v.String()).Msg("value not in enumerated set, using default")
		return info.Def()
	}
	if v.IsArray() {
		return v
	}
	switch v.Type() {
	case controls.ControlTypeInteger32:
		n, err := v.Int32()
		if err != nil {
			return v
		}
		clamped := n
		if min := info.Min(); !min.IsNone() {
			if lo, err := min.Int32(); err == nil && clamped < lo {
				clamped = lo
			}
		}
		if max, err := info.Max(); err == nil {
			if hi, err := max.Int32(); err == nil && clamped > hi {
				clamped = hi
			}
		}
		if clamped != n {
			c.log.Debug().Str("control", name).Int32("from", n).Int32("to", clamped).Msg("clamped control value")
			return controls.NewInt32(clamped)
		}
	case controls.ControlTypeInteger64:
		n, err := v.Int64()
		if err != nil {
			return v
		}
		clamped := n
		if min := info.Min(); !min.IsNone() {
			if lo, err := min.Int64(); err == nil && clamped < lo {
				clamped = lo
			}
		}
		if max, err := info.Max(); err == nil {
			if hi, err := max.Int64(); err == nil && clamped > hi {
				clamped = hi
			}
		}
		if clamped != n {
			c.log.Debug().Str("control", name).Int64("from", n).Int64("to", clamped).Msg("clamped control value")
			return controls.NewInt64(clamped)
		}
	case controls.ControlTypeFloat:
		f, err := v.Float()
		if err != nil {
			return v
		}
		clamped := f
		if min := info.Min(); !min.IsNone() {
			if lo, err := min.Float(); err == nil && clamped < lo {
				clamped = lo
			}
		}
		if max, err := info.Max(); err == nil {
			if hi, err := max.Float(); err == nil && clamped > hi {
				clamped = hi
			}
		}
		if clamped != f {
			c.log.Debug().Str("control", name).Float32("from", f).Float32("to", clamped).Msg("clamped control value")
			return controls.NewFloat(clamped)
		}
	}
	return v
}

// SetControl applies a single typed control. Unlike Apply, setting an
// unsupported control is an error rather than a skip.
func (c *Camera) SetControl(e controls.ControlEntry) error {
	id := uint32(e.ControlID())
	if !c.Supports(id) {
		return fmt.Errorf("control %s: %w", c.registry.Name(id), ErrControlUnsupported)
	}
	list := controls.NewControlList()
	if err := list.SetEntry(e); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyLocked(list)
}

// GetControl reads the current value of a typed control.
func (c *Camera) GetControl(e controls.ControlEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrCameraClosed
	}
	id := uint32(e.ControlID())
	v := c.current.Get(id)
	if v == nil {
		if c.infoMap.Get(id) == nil {
			return fmt.Errorf("control %s: %w", c.registry.Name(id), ErrControlUnsupported)
		}
		return fmt.Errorf("control %s: %w", c.registry.Name(id), controls.ErrNotPresent)
	}
	return e.UnmarshalControlValue(v)
}

// GetProperty reads a typed property from the camera's property list.
func (c *Camera) GetProperty(e controls.PropertyEntry) error {
	return c.props.GetProperty(e)
}

func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.log.Info().Msg("camera closed")
	return nil
}
