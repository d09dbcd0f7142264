// Package controls implements the camera control object model used across
// the module: dynamically typed control values, ordered control lists,
// per-control constraint metadata and the static control/property identifier
// registries. Types, identifiers and byte layouts follow the libcamera
// control model so that values can be exchanged unmodified with a native
// camera stack.
package controls

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrValueType is returned by typed accessors when the value does not hold
// the requested type and shape.
var ErrValueType = errors.New("control value type mismatch")

type ControlType uint32

const (
	ControlTypeNone      ControlType = 0
	ControlTypeBool      ControlType = 1
	ControlTypeByte      ControlType = 2
	ControlTypeInteger32 ControlType = 3
	ControlTypeInteger64 ControlType = 4
	ControlTypeFloat     ControlType = 5
	ControlTypeString    ControlType = 6
	ControlTypeRectangle ControlType = 7
	ControlTypeSize      ControlType = 8
	ControlTypePoint     ControlType = 9
	ControlTypeMatrix3x3 ControlType = 10
)

// Size returns the packed byte size of a single element of this type,
// matching the storage layout libcamera uses for control values.
func (t ControlType) Size() int {
	switch t {
	case ControlTypeBool, ControlTypeByte, ControlTypeString:
		return 1
	case ControlTypeInteger32, ControlTypeFloat:
		return 4
	case ControlTypeInteger64:
		return 8
	case ControlTypeRectangle:
		return 16
	case ControlTypeSize, ControlTypePoint:
		return 8
	case ControlTypeMatrix3x3:
		return 36
	default:
		return 0
	}
}

func (t ControlType) String() string {
	switch t {
	case ControlTypeNone:
		return "none"
	case ControlTypeBool:
		return "bool"
	case ControlTypeByte:
		return "byte"
	case ControlTypeInteger32:
		return "int32"
	case ControlTypeInteger64:
		return "int64"
	case ControlTypeFloat:
		return "float"
	case ControlTypeString:
		return "string"
	case ControlTypeRectangle:
		return "rectangle"
	case ControlTypeSize:
		return "size"
	case ControlTypePoint:
		return "point"
	case ControlTypeMatrix3x3:
		return "matrix3x3"
	default:
		return fmt.Sprintf("invalid(%d)", uint32(t))
	}
}

// ControlValue holds one dynamically typed control value: the none state, a
// single scalar, or a packed array of scalars. The zero value is the none
// state.
//
// Storage is always exactly Type().Size() * NumElements() bytes of packed
// native-endian element data. Data and SetRaw expose that storage for
// transfer across a foreign boundary; in-process callers should prefer the
// typed accessors.
type ControlValue struct {
	typ     ControlType
	isArray bool
	num     int
	data    []byte
}

func (v *ControlValue) Type() ControlType { return v.typ }

func (v *ControlValue) IsNone() bool { return v.typ == ControlTypeNone }

func (v *ControlValue) IsArray() bool { return v.isArray }

// NumElements reports the number of packed elements: 0 for the none state,
// 1 for scalars, the array length otherwise.
func (v *ControlValue) NumElements() int { return v.num }

// Data exposes the value's packed element storage. The slice aliases the
// value: treat it as read-only and do not retain it across a Reserve or
// SetRaw, which reallocate.
func (v *ControlValue) Data() []byte { return v.data }

// Reserve retags the value and allocates storage sized exactly for n
// elements of type t, discarding any prior contents. A non-array value
// always holds a single element; ControlTypeNone resets to the none state.
func (v *ControlValue) Reserve(t ControlType, isArray bool, n int) {
	if t == ControlTypeNone {
		*v = ControlValue{}
		return
	}
	if !isArray {
		n = 1
	} else if n < 0 {
		n = 0
	}
	v.typ = t
	v.isArray = isArray
	v.num = n
	v.data = make([]byte, t.Size()*n)
}

// SetRaw reinitializes the value to n elements of type t and copies the
// packed element bytes in from data. data must hold at least
// t.Size() * NumElements() bytes; the copy never writes beyond the freshly
// reserved storage.
func (v *ControlValue) SetRaw(t ControlType, data []byte, isArray bool, n int) {
	v.Reserve(t, isArray, n)
	copy(v.data, data)
}

// Clone returns a value with its own copy of the storage.
func (v *ControlValue) Clone() *ControlValue {
	c := &ControlValue{typ: v.typ, isArray: v.isArray, num: v.num}
	if v.data != nil {
		c.data = make([]byte, len(v.data))
		copy(c.data, v.data)
	}
	return c
}

// Equal reports whether two values hold the same type, shape and bytes.
func (v *ControlValue) Equal(o *ControlValue) bool {
	if o == nil {
		return false
	}
	return v.typ == o.typ && v.isArray == o.isArray && v.num == o.num &&
		bytes.Equal(v.data, o.data)
}

func (v *ControlValue) String() string {
	switch {
	case v.typ == ControlTypeNone:
		return "none"
	case v.typ == ControlTypeString:
		s, err := v.StringValue()
		if err != nil {
			return "invalid"
		}
		return strconv.Quote(s)
	}
	elems := make([]string, 0, v.num)
	for i := 0; i < v.num; i++ {
		elems = append(elems, v.elementString(i))
	}
	if !v.isArray {
		if len(elems) == 0 {
			return "invalid"
		}
		return elems[0]
	}
	return "[ " + strings.Join(elems, ", ") + " ]"
}

func (v *ControlValue) elementString(i int) string {
	size := v.typ.Size()
	if size == 0 || (i+1)*size > len(v.data) {
		return "invalid"
	}
	el := v.data[i*size : (i+1)*size]
	switch v.typ {
	case ControlTypeBool:
		return strconv.FormatBool(el[0] != 0)
	case ControlTypeByte:
		return strconv.FormatUint(uint64(el[0]), 10)
	case ControlTypeInteger32:
		return strconv.FormatInt(int64(int32(binary.NativeEndian.Uint32(el))), 10)
	case ControlTypeInteger64:
		return strconv.FormatInt(int64(binary.NativeEndian.Uint64(el)), 10)
	case ControlTypeFloat:
		f := math.Float32frombits(binary.NativeEndian.Uint32(el))
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case ControlTypeRectangle:
		var r Rectangle
		if err := r.UnmarshalBinary(el); err != nil {
			return "invalid"
		}
		return r.String()
	case ControlTypeSize:
		var s Size
		if err := s.UnmarshalBinary(el); err != nil {
			return "invalid"
		}
		return s.String()
	case ControlTypePoint:
		var p Point
		if err := p.UnmarshalBinary(el); err != nil {
			return "invalid"
		}
		return p.String()
	case ControlTypeMatrix3x3:
		var m Matrix3x3
		if err := m.UnmarshalBinary(el); err != nil {
			return "invalid"
		}
		return m.String()
	default:
		return "invalid"
	}
}
