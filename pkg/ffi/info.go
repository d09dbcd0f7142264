package ffi

import (
	"github.com/Prowler1000/go-camctl/pkg/controls"
)

// Info is a handle to a standalone constraint descriptor owned by the
// foreign caller. It is created with NewInfo and released with InfoDestroy.
type Info uintptr

// InfoRef is a handle to a constraint descriptor owned by somebody else,
// usually its info map. It stays valid until the owner withdraws it.
type InfoRef uintptr

// Ref narrows an owned handle to a read-only one.
func (h Info) Ref() InfoRef { return InfoRef(h) }

// InfoMap is a handle to a camera's control info map, issued when a backend
// registers the map and withdrawn with UnregisterInfoMap.
type InfoMap uintptr

type infoObject struct {
	info  *controls.ControlInfo
	owned bool
}

type mapObject struct {
	m    *controls.ControlInfoMap
	refs map[uint32]uintptr // id to spawned descriptor handle
}

func resolveInfo(h InfoRef) *infoObject {
	obj, ok := infoRefs.get(uintptr(h))
	if !ok {
		return nil
	}
	return obj.(*infoObject)
}

func resolveMap(h InfoMap) *mapObject {
	obj, ok := infoMaps.get(uintptr(h))
	if !ok {
		return nil
	}
	return obj.(*mapObject)
}

// NewInfo creates an owned descriptor with every facet in the none state.
func NewInfo() Info {
	h := infoRefs.put(&infoObject{info: controls.NewControlInfo(nil, nil, nil), owned: true})
	return Info(h)
}

// InfoDestroy releases an owned descriptor. Destroying a borrowed or unknown
// handle fails and leaves the handle alone.
func InfoDestroy(h Info) error {
	o := resolveInfo(InfoRef(h))
	if o == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("info destroy on unknown handle")
		return ErrBadHandle
	}
	if !o.owned {
		log().Warn().Uint64("handle", uint64(h)).Msg("info destroy on borrowed handle")
		return ErrBorrowed
	}
	infoRefs.del(uintptr(h))
	return nil
}

// RegisterInfoMap issues a handle for a Go-owned info map. The map itself
// stays owned by the backend that built it.
func RegisterInfoMap(m *controls.ControlInfoMap) InfoMap {
	if m == nil {
		return 0
	}
	h := infoMaps.put(&mapObject{m: m, refs: make(map[uint32]uintptr)})
	return InfoMap(h)
}

// UnregisterInfoMap withdraws a map handle and every descriptor handle it
// has issued.
func UnregisterInfoMap(h InfoMap) error {
	o := resolveMap(h)
	if o == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("info map unregister on unknown handle")
		return ErrBadHandle
	}
	for _, ref := range o.refs {
		infoRefs.del(ref)
	}
	infoMaps.del(uintptr(h))
	return nil
}

// MapLen returns the number of mapped controls, 0 for an unknown handle.
func MapLen(h InfoMap) int {
	o := resolveMap(h)
	if o == nil {
		return 0
	}
	return o.m.Len()
}

// MapGet returns a borrowed handle for the descriptor of id, or 0 when the
// map has no entry for it. Repeated lookups of the same id share a handle.
func MapGet(h InfoMap, id uint32) InfoRef {
	o := resolveMap(h)
	if o == nil {
		return 0
	}
	info := o.m.Get(id)
	if info == nil {
		return 0
	}
	if ref, ok := o.refs[id]; ok {
		return InfoRef(ref)
	}
	ref := infoRefs.put(&infoObject{info: info})
	o.refs[id] = ref
	return InfoRef(ref)
}

// InfoMin returns an owned copy of the descriptor's minimum facet. The
// caller destroys the returned value.
func InfoMin(h InfoRef) Value {
	o := resolveInfo(h)
	if o == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("info min on unknown handle")
		return 0
	}
	return exportValue(o.info.Min())
}

// InfoDef returns an owned copy of the descriptor's default facet. The
// caller destroys the returned value.
func InfoDef(h InfoRef) Value {
	o := resolveInfo(h)
	if o == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("info def on unknown handle")
		return 0
	}
	return exportValue(o.info.Def())
}

// InfoMax returns an owned copy of the descriptor's maximum facet. A
// descriptor without a maximum fails with ErrNoMaximum; the failure is
// logged so callers that only check for the zero handle still get a
// diagnostic.
func InfoMax(h InfoRef) (Value, error) {
	o := resolveInfo(h)
	if o == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("info max on unknown handle")
		return 0, ErrBadHandle
	}
	v, err := o.info.Max()
	if err != nil {
		log().Warn().Err(err).Msg("failed to read maximum facet")
		return 0, err
	}
	return exportValue(v), nil
}

// InfoValues returns owned copies of the descriptor's enumerated values, in
// declaration order. The caller destroys each returned value. A descriptor
// without an enumerated set returns no handles and no error.
func InfoValues(h InfoRef) ([]Value, error) {
	o := resolveInfo(h)
	if o == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("info values on unknown handle")
		return nil, ErrBadHandle
	}
	vs := o.info.Values()
	if len(vs) == 0 {
		return nil, nil
	}
	out := make([]Value, len(vs))
	for i := range vs {
		out[i] = exportValue(&vs[i])
	}
	return out, nil
}
