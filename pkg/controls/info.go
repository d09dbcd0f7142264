package controls

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoMaximum is returned by ControlInfo.Max for controls that do not
// define a maximum. Any other error from Max indicates a fault in the
// backing descriptor.
var ErrNoMaximum = errors.New("control has no maximum")

// ControlInfo describes the value space of one control: minimum, maximum
// and default facets, plus an optional enumeration of the exact values the
// control accepts. Facets that do not apply hold the none state.
type ControlInfo struct {
	min    ControlValue
	max    ControlValue
	def    ControlValue
	values []ControlValue
}

// NewControlInfo builds a descriptor from its facets. Nil facets are stored
// as the none state.
func NewControlInfo(min, max, def *ControlValue) *ControlInfo {
	info := &ControlInfo{}
	if min != nil {
		info.min = *min.Clone()
	}
	if max != nil {
		info.max = *max.Clone()
	}
	if def != nil {
		info.def = *def.Clone()
	}
	return info
}

// NewControlInfoValues builds a descriptor for a control restricted to an
// explicit value set. The minimum and maximum facets are taken from the
// first and last listed value.
func NewControlInfoValues(values []ControlValue, def *ControlValue) *ControlInfo {
	info := &ControlInfo{}
	if len(values) > 0 {
		info.values = make([]ControlValue, len(values))
		for i := range values {
			info.values[i] = *values[i].Clone()
		}
		info.min = *values[0].Clone()
		info.max = *values[len(values)-1].Clone()
	}
	if def != nil {
		info.def = *def.Clone()
	}
	return info
}

// Min returns a copy of the minimum facet.
func (i *ControlInfo) Min() *ControlValue { return i.min.Clone() }

// Def returns a copy of the default facet.
func (i *ControlInfo) Def() *ControlValue { return i.def.Clone() }

// Max returns a copy of the maximum facet. It fails with ErrNoMaximum when
// the control defines no maximum; callers that only want a best-effort
// bound can treat that case as open-ended.
func (i *ControlInfo) Max() (*ControlValue, error) {
	if i.max.IsNone() {
		return nil, ErrNoMaximum
	}
	return i.max.Clone(), nil
}

// Values returns copies of the enumerated value set, or nil when the
// control is not enumerated.
func (i *ControlInfo) Values() []ControlValue {
	if len(i.values) == 0 {
		return nil
	}
	out := make([]ControlValue, len(i.values))
	for n := range i.values {
		out[n] = *i.values[n].Clone()
	}
	return out
}

func (i *ControlInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s..%s]", &i.min, &i.max)
	if !i.def.IsNone() {
		fmt.Fprintf(&b, " (default %s)", &i.def)
	}
	return b.String()
}

// Facet builders for the common descriptor shapes.

func BoolInfo(def bool) *ControlInfo {
	return NewControlInfo(NewBool(false), NewBool(true), NewBool(def))
}

func Int32Info(min, max, def int32) *ControlInfo {
	return NewControlInfo(NewInt32(min), NewInt32(max), NewInt32(def))
}

func Int64Info(min, max, def int64) *ControlInfo {
	return NewControlInfo(NewInt64(min), NewInt64(max), NewInt64(def))
}

func FloatInfo(min, max, def float32) *ControlInfo {
	return NewControlInfo(NewFloat(min), NewFloat(max), NewFloat(def))
}

func RectangleInfo(min, max, def Rectangle) *ControlInfo {
	return NewControlInfo(NewRectangle(min), NewRectangle(max), NewRectangle(def))
}

// EnumInfo builds a descriptor for an int32 control restricted to the given
// values, with def as the default.
func EnumInfo(def int32, values ...int32) *ControlInfo {
	vs := make([]ControlValue, len(values))
	for i, n := range values {
		vs[i].SetInt32(n)
	}
	return NewControlInfoValues(vs, NewInt32(def))
}

// ControlInfoMap is a read-only mapping from control identifier to its
// constraint descriptor, built once by whatever owns the camera. Lookups
// return map-owned descriptors and never allocate.
type ControlInfoMap struct {
	reg   *Registry
	infos map[uint32]*ControlInfo
}

// NewControlInfoMap copies entries into a new map resolved against reg.
// Descriptors are shared with the caller, not copied; they are immutable by
// contract.
func NewControlInfoMap(reg *Registry, entries map[uint32]*ControlInfo) *ControlInfoMap {
	infos := make(map[uint32]*ControlInfo, len(entries))
	for id, info := range entries {
		infos[id] = info
	}
	return &ControlInfoMap{reg: reg, infos: infos}
}

func (m *ControlInfoMap) Len() int { return len(m.infos) }

// Registry returns the identifier registry the map's controls resolve
// against.
func (m *ControlInfoMap) Registry() *Registry { return m.reg }

// Get returns the map-owned descriptor for id, or nil when the map has no
// entry for it. The descriptor stays valid for the lifetime of the map.
func (m *ControlInfoMap) Get(id uint32) *ControlInfo {
	return m.infos[id]
}

// IDs returns the mapped identifiers in ascending order.
func (m *ControlInfoMap) IDs() []uint32 {
	ids := make([]uint32, 0, len(m.infos))
	for id := range m.infos {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
