package controls

import (
	"slices"
)

// ControlDef is one registry entry: a numeric identifier together with its
// display name and the value type it carries. For enumerated int32 controls
// Enum maps each accepted value to its display name.
type ControlDef struct {
	ID    uint32
	Name  string
	Type  ControlType
	Array bool
	Enum  map[int32]string
}

// Registry resolves numeric control or property identifiers to their
// definitions. Registries are immutable after construction; the package
// builds the Controls and Properties registries for the core identifier
// sets, and backends derive extended registries with Extend to add vendor
// identifiers.
type Registry struct {
	name string
	defs map[uint32]*ControlDef
	ids  []uint32
}

// NewRegistry copies defs into a fresh registry. Later definitions replace
// earlier ones with the same identifier.
func NewRegistry(name string, defs []ControlDef) *Registry {
	r := &Registry{name: name, defs: make(map[uint32]*ControlDef, len(defs))}
	for i := range defs {
		def := defs[i]
		if _, ok := r.defs[def.ID]; !ok {
			r.ids = append(r.ids, def.ID)
		}
		r.defs[def.ID] = &def
	}
	slices.Sort(r.ids)
	return r
}

// Extend returns a new registry holding this registry's definitions plus
// the given ones. The receiver is left untouched.
func (r *Registry) Extend(defs ...ControlDef) *Registry {
	merged := make([]ControlDef, 0, len(r.ids)+len(defs))
	for _, id := range r.ids {
		merged = append(merged, *r.defs[id])
	}
	merged = append(merged, defs...)
	return NewRegistry(r.name, merged)
}

// Lookup returns the registry-owned definition for id, or nil when the
// identifier is not registered. Callers must not modify the result.
func (r *Registry) Lookup(id uint32) *ControlDef {
	return r.defs[id]
}

// Name returns the display name for id, or the empty string when the
// identifier is not registered.
func (r *Registry) Name(id uint32) string {
	if def := r.defs[id]; def != nil {
		return def.Name
	}
	return ""
}

// TypeOf returns the value type for id, or ControlTypeNone when the
// identifier is not registered.
func (r *Registry) TypeOf(id uint32) ControlType {
	if def := r.defs[id]; def != nil {
		return def.Type
	}
	return ControlTypeNone
}

// Len reports the number of registered identifiers.
func (r *Registry) Len() int { return len(r.ids) }

// IDs returns the registered identifiers in ascending order.
func (r *Registry) IDs() []uint32 {
	return slices.Clone(r.ids)
}

// EnumName resolves an enumerated control's value to its display name, or
// the empty string when either the identifier or the value is unknown.
func (r *Registry) EnumName(id uint32, value int32) string {
	if def := r.defs[id]; def != nil {
		return def.Enum[value]
	}
	return ""
}
