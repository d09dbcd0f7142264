package ffi

import (
	"github.com/Prowler1000/go-camctl/pkg/controls"
)

// Value is a handle to a control value owned by the foreign caller. It is
// created by NewValue or returned by descriptor reads, and must be released
// with ValueDestroy.
type Value uintptr

// ValueRef is a handle to a control value owned by somebody else, read from
// a list or an iterator. It stays valid until its owner mutates or destroys
// the entry and must not be destroyed itself.
type ValueRef uintptr

// Ref narrows an owned handle to a read-only one.
func (v Value) Ref() ValueRef { return ValueRef(v) }

type valueEntry struct {
	val   *controls.ControlValue
	owned bool
}

func resolveValue(h uintptr) *valueEntry {
	obj, ok := values.get(h)
	if !ok {
		return nil
	}
	return obj.(*valueEntry)
}

// NewValue creates an owned value holding the none state.
func NewValue() Value {
	h := values.put(&valueEntry{val: &controls.ControlValue{}, owned: true})
	return Value(h)
}

// ValueDestroy releases an owned value. Destroying a borrowed or unknown
// handle is logged and rejected.
func ValueDestroy(h Value) error {
	e := resolveValue(uintptr(h))
	if e == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("value destroy on unknown handle")
		return ErrBadHandle
	}
	if !e.owned {
		log().Warn().Uint64("handle", uint64(h)).Msg("value destroy on borrowed handle")
		return ErrBorrowed
	}
	values.del(uintptr(h))
	return nil
}

// ValueType returns the value's type tag, or ControlTypeNone for an unknown
// handle.
func ValueType(h ValueRef) controls.ControlType {
	e := resolveValue(uintptr(h))
	if e == nil {
		return controls.ControlTypeNone
	}
	return e.val.Type()
}

// ValueIsNone reports whether the value holds the none state. An unknown
// handle reads as none.
func ValueIsNone(h ValueRef) bool {
	e := resolveValue(uintptr(h))
	if e == nil {
		return true
	}
	return e.val.IsNone()
}

// ValueIsArray reports whether the value holds an array.
func ValueIsArray(h ValueRef) bool {
	e := resolveValue(uintptr(h))
	if e == nil {
		return false
	}
	return e.val.IsArray()
}

// ValueNumElements returns the element count, 0 for an unknown handle.
func ValueNumElements(h ValueRef) int {
	e := resolveValue(uintptr(h))
	if e == nil {
		return 0
	}
	return e.val.NumElements()
}

// ValueData exposes the value's packed storage. The slice aliases the
// value's current storage and is invalidated by the next ValueSetRaw on the
// same handle.
func ValueData(h ValueRef) []byte {
	e := resolveValue(uintptr(h))
	if e == nil {
		return nil
	}
	return e.val.Data()
}

// ValueSetRaw retags an owned value and fills it from packed element bytes,
// exactly data[:t.Size()*n] for arrays and one element otherwise. Mutation
// through a borrowed handle is logged and rejected.
func ValueSetRaw(h Value, t controls.ControlType, data []byte, isArray bool, num int) error {
	e := resolveValue(uintptr(h))
	if e == nil {
		log().Warn().Uint64("handle", uint64(h)).Msg("value set on unknown handle")
		return ErrBadHandle
	}
	if !e.owned {
		log().Warn().Uint64("handle", uint64(h)).Msg("value set on borrowed handle")
		return ErrBorrowed
	}
	e.val.SetRaw(t, data, isArray, num)
	return nil
}

// ValueString renders the value for diagnostics, "<bad handle>" for an
// unknown handle.
func ValueString(h ValueRef) string {
	e := resolveValue(uintptr(h))
	if e == nil {
		return "<bad handle>"
	}
	return e.val.String()
}

// valueOf returns the backing value for read access, nil for an unknown
// handle.
func valueOf(h ValueRef) *controls.ControlValue {
	e := resolveValue(uintptr(h))
	if e == nil {
		return nil
	}
	return e.val
}

// exportValue wraps an already-owned value object in a fresh owned handle.
func exportValue(v *controls.ControlValue) Value {
	return Value(values.put(&valueEntry{val: v, owned: true}))
}
