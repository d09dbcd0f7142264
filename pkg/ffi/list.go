package ffi

import (
	"github.com/Prowler1000/go-camctl/pkg/controls"
)

// List is a handle to a control list. Lists created through NewList are
// owned by the foreign caller; lists registered on behalf of a camera
// backend are unregistered by the same backend. Both go through
// ListDestroy.
type List uintptr

// ListIter is a handle to a forward cursor over a list, created by
// ListIterate and released with IterDestroy.
type ListIter uintptr

type listObject struct {
	list *controls.ControlList
	refs map[uint32]uintptr // id to spawned borrowed value handle
	dead bool
}

func resolveList(h List) *listObject {
	obj, ok := lists.get(uintptr(h))
	if !ok {
		return nil
	}
	return obj.(*listObject)
}

// refHandle returns the borrowed handle for the list entry id, issuing one
// on first use. Repeated reads of the same entry share a handle, which the
// list reclaims when it is destroyed.
func (l *listObject) refHandle(id uint32) ValueRef {
	if l.dead {
		return 0
	}
	v := l.list.Get(id)
	if v == nil {
		return 0
	}
	if h, ok := l.refs[id]; ok {
		if e := resolveValue(h); e != nil {
			e.val = v
			return ValueRef(h)
		}
	}
	h := values.put(&valueEntry{val: v})
	l.refs[id] = h
	return ValueRef(h)
}

// NewList creates an empty control list.
func NewList() List {
	h := lists.put(&listObject{list: controls.NewControlList(), refs: make(map[uint32]uintptr)})
	return List(h)
}

// RegisterList issues a handle for a Go-owned list so it can be handed
// across the foreign boundary. The caller keeps ownership of the list
// itself; ListDestroy on the handle only withdraws it.
func RegisterList(list *controls.ControlList) List {
	if list == nil {
		return 0
	}
	h := lists.put(&listObject{list: list, refs: make(map[uint32]uintptr)})
	return List(h)
}

// ListDestroy withdraws a list handle and every borrowed value handle it
// has issued.
func ListDestroy(h List) error {
	l := resolveList(h)
	if l == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("list destroy on unknown handle")
		return ErrBadHandle
	}
	l.dead = true
	for _, ref := range l.refs {
		values.del(ref)
	}
	lists.del(uintptr(h))
	return nil
}

// ListBacking returns the list behind a handle, nil for an unknown handle.
// It is for embedders that need to move a foreign-built list back into Go
// APIs, such as a backend applying caller-assembled control values.
func ListBacking(h List) *controls.ControlList {
	l := resolveList(h)
	if l == nil {
		return nil
	}
	return l.list
}

// ListRefs returns the borrowed value handles the list has issued so far.
// Embedders that keep per-handle state, such as exported data mirrors, use
// it to release that state before destroying the list.
func ListRefs(h List) []ValueRef {
	l := resolveList(h)
	if l == nil {
		return nil
	}
	out := make([]ValueRef, 0, len(l.refs))
	for _, ref := range l.refs {
		out = append(out, ValueRef(ref))
	}
	return out
}

// ListContains reports whether the list has an entry for id.
func ListContains(h List, id uint32) bool {
	l := resolveList(h)
	if l == nil {
		return false
	}
	return l.list.Contains(id)
}

// ListLen returns the number of entries, 0 for an unknown handle.
func ListLen(h List) int {
	l := resolveList(h)
	if l == nil {
		return 0
	}
	return l.list.Len()
}

// ListGet returns a borrowed handle for the entry id, or 0 when the list
// has no such entry. The handle stays owned by the list.
func ListGet(h List, id uint32) ValueRef {
	l := resolveList(h)
	if l == nil {
		return 0
	}
	return l.refHandle(id)
}

// ListSet copies the source value into the list under id, replacing any
// previous entry. Borrowed handles already issued for id follow the entry
// and read the new value afterwards.
func ListSet(h List, id uint32, src ValueRef) error {
	l := resolveList(h)
	if l == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("list set on unknown handle")
		return ErrBadHandle
	}
	v := valueOf(src)
	if v == nil {
		log().Warn().Uint64("handle", uint64(src)).Uint32("id", id).Msg("list set from unknown value handle")
		return ErrBadHandle
	}
	l.list.Set(id, v)
	if ref, ok := l.refs[id]; ok {
		if e := resolveValue(ref); e != nil {
			e.val = l.list.Get(id)
		}
	}
	return nil
}

// ListIterate creates a cursor positioned on the list's first entry in
// ascending identifier order.
func ListIterate(h List) ListIter {
	l := resolveList(h)
	if l == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("list iterate on unknown handle")
		return 0
	}
	it := iters.put(&iterObject{owner: l, it: l.list.Iterate()})
	return ListIter(it)
}

type iterObject struct {
	owner *listObject
	it    *controls.ControlListIterator
}

func resolveIter(h ListIter) *iterObject {
	obj, ok := iters.get(uintptr(h))
	if !ok {
		return nil
	}
	return obj.(*iterObject)
}

// IterDestroy releases a cursor. Borrowed value handles it returned stay
// with the list.
func IterDestroy(h ListIter) error {
	if !iters.del(uintptr(h)) {
		log().Warn().Uint64("handle", uint64(h)).Msg("iter destroy on unknown handle")
		return ErrBadHandle
	}
	return nil
}

// IterIsEnd reports whether the cursor is past the last entry. An unknown
// handle reads as ended.
func IterIsEnd(h ListIter) bool {
	o := resolveIter(h)
	if o == nil {
		return true
	}
	return o.it.End()
}

// IterNext advances the cursor by one entry.
func IterNext(h ListIter) {
	o := resolveIter(h)
	if o == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("iter next on unknown handle")
		return
	}
	o.it.Next()
}

// IterID returns the identifier at the cursor, 0 past the end.
func IterID(h ListIter) uint32 {
	o := resolveIter(h)
	if o == nil {
		return 0
	}
	return o.it.ID()
}

// IterValue returns a borrowed handle for the entry at the cursor, 0 past
// the end.
func IterValue(h ListIter) ValueRef {
	o := resolveIter(h)
	if o == nil {
		return 0
	}
	if o.it.End() {
		return 0
	}
	return o.owner.refHandle(o.it.ID())
}
