package controls

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotPresent is returned by typed lookups on a list that has no entry
// for the requested identifier.
var ErrNotPresent = errors.New("not present in list")

// ControlList is an associative collection of control or property values
// keyed by numeric identifier. A list holds either controls or properties;
// the identifier spaces are disjoint by convention, not by type.
type ControlList struct {
	values map[uint32]*ControlValue
}

func NewControlList() *ControlList {
	return &ControlList{values: make(map[uint32]*ControlValue)}
}

func (l *ControlList) Len() int { return len(l.values) }

func (l *ControlList) Contains(id uint32) bool {
	_, ok := l.values[id]
	return ok
}

// Get returns the stored value for id, or nil when the list has no entry
// for it. The returned value is owned by the list and stays valid until the
// entry is overwritten by a later Set.
func (l *ControlList) Get(id uint32) *ControlValue {
	return l.values[id]
}

// Set stores a copy of v under id, replacing any previous entry. A nil or
// none value stores the none state, which still counts as an entry.
func (l *ControlList) Set(id uint32, v *ControlValue) {
	if l.values == nil {
		l.values = make(map[uint32]*ControlValue)
	}
	if v == nil {
		l.values[id] = &ControlValue{}
		return
	}
	l.values[id] = v.Clone()
}

// Clone returns a deep copy of the list.
func (l *ControlList) Clone() *ControlList {
	out := NewControlList()
	for id, v := range l.values {
		out.values[id] = v.Clone()
	}
	return out
}

// IDs returns the identifiers present in the list in ascending order.
func (l *ControlList) IDs() []uint32 {
	ids := make([]uint32, 0, len(l.values))
	for id := range l.values {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Iterate returns a cursor positioned on the list's first entry in
// ascending identifier order. The cursor walks a snapshot of the
// identifiers taken here; mutating the list while a cursor is live leaves
// the cursor's remaining traversal undefined.
func (l *ControlList) Iterate() *ControlListIterator {
	return &ControlListIterator{list: l, ids: l.IDs()}
}

// GetEntry looks up the entry's control identifier and unmarshals the
// stored value into it.
func (l *ControlList) GetEntry(e ControlEntry) error {
	v := l.Get(uint32(e.ControlID()))
	if v == nil {
		return fmt.Errorf("control %s: %w", Controls.Name(uint32(e.ControlID())), ErrNotPresent)
	}
	return e.UnmarshalControlValue(v)
}

// SetEntry marshals the entry into a value and stores it under the entry's
// control identifier.
func (l *ControlList) SetEntry(e ControlEntry) error {
	var v ControlValue
	if err := e.MarshalControlValue(&v); err != nil {
		return err
	}
	l.Set(uint32(e.ControlID()), &v)
	return nil
}

// GetProperty is GetEntry for property entries.
func (l *ControlList) GetProperty(e PropertyEntry) error {
	v := l.Get(uint32(e.PropertyID()))
	if v == nil {
		return fmt.Errorf("property %s: %w", Properties.Name(uint32(e.PropertyID())), ErrNotPresent)
	}
	return e.UnmarshalControlValue(v)
}

// SetProperty is SetEntry for property entries.
func (l *ControlList) SetProperty(e PropertyEntry) error {
	var v ControlValue
	if err := e.MarshalControlValue(&v); err != nil {
		return err
	}
	l.Set(uint32(e.PropertyID()), &v)
	return nil
}

// String renders the list with identifiers resolved through the static
// registries, control names first.
func (l *ControlList) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, id := range l.IDs() {
		if i > 0 {
			b.WriteString(", ")
		}
		name := Controls.Name(id)
		if name == "" {
			name = Properties.Name(id)
		}
		if name == "" {
			name = fmt.Sprintf("0x%08x", id)
		}
		fmt.Fprintf(&b, "%s: %s", name, l.values[id])
	}
	b.WriteString("}")
	return b.String()
}

// ControlListIterator is a forward-only cursor over a list in ascending
// identifier order.
type ControlListIterator struct {
	list *ControlList
	ids  []uint32
	pos  int
}

// End reports whether the cursor has moved past the last entry.
func (it *ControlListIterator) End() bool {
	return it.pos >= len(it.ids)
}

// Next advances the cursor by one entry. Advancing past the end is a no-op.
func (it *ControlListIterator) Next() {
	if it.pos < len(it.ids) {
		it.pos++
	}
}

// ID returns the identifier at the cursor, or 0 past the end.
func (it *ControlListIterator) ID() uint32 {
	if it.End() {
		return 0
	}
	return it.ids[it.pos]
}

// Value returns the list-owned value at the cursor, or nil past the end.
func (it *ControlListIterator) Value() *ControlValue {
	if it.End() {
		return nil
	}
	return it.list.Get(it.ids[it.pos])
}
