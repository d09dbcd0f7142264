package controls

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Typed accessors over ControlValue storage. Getters fail with ErrValueType
// when the value holds a different type or shape; setters retag the value
// unconditionally.

func (v *ControlValue) describe() string {
	if v.isArray {
		return fmt.Sprintf("%s array[%d]", v.typ, v.num)
	}
	return v.typ.String()
}

func (v *ControlValue) scalar(t ControlType) ([]byte, error) {
	if v.typ != t || v.isArray {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrValueType, v.describe(), t)
	}
	return v.data, nil
}

func (v *ControlValue) array(t ControlType) ([]byte, error) {
	if v.typ != t || !v.isArray {
		return nil, fmt.Errorf("%w: have %s, want %s array", ErrValueType, v.describe(), t)
	}
	return v.data, nil
}

func (v *ControlValue) Bool() (bool, error) {
	el, err := v.scalar(ControlTypeBool)
	if err != nil {
		return false, err
	}
	return el[0] != 0, nil
}

func (v *ControlValue) SetBool(b bool) {
	v.Reserve(ControlTypeBool, false, 1)
	if b {
		v.data[0] = 1
	}
}

func (v *ControlValue) Byte() (byte, error) {
	el, err := v.scalar(ControlTypeByte)
	if err != nil {
		return 0, err
	}
	return el[0], nil
}

func (v *ControlValue) SetByte(b byte) {
	v.Reserve(ControlTypeByte, false, 1)
	v.data[0] = b
}

func (v *ControlValue) Int32() (int32, error) {
	el, err := v.scalar(ControlTypeInteger32)
	if err != nil {
		return 0, err
	}
	return int32(binary.NativeEndian.Uint32(el)), nil
}

func (v *ControlValue) SetInt32(i int32) {
	v.Reserve(ControlTypeInteger32, false, 1)
	binary.NativeEndian.PutUint32(v.data, uint32(i))
}

func (v *ControlValue) Int64() (int64, error) {
	el, err := v.scalar(ControlTypeInteger64)
	if err != nil {
		return 0, err
	}
	return int64(binary.NativeEndian.Uint64(el)), nil
}

func (v *ControlValue) SetInt64(i int64) {
	v.Reserve(ControlTypeInteger64, false, 1)
	binary.NativeEndian.PutUint64(v.data, uint64(i))
}

func (v *ControlValue) Float() (float32, error) {
	el, err := v.scalar(ControlTypeFloat)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.NativeEndian.Uint32(el)), nil
}

func (v *ControlValue) SetFloat(f float32) {
	v.Reserve(ControlTypeFloat, false, 1)
	binary.NativeEndian.PutUint32(v.data, math.Float32bits(f))
}

// StringValue returns the value as a string. Strings are stored as arrays
// of single-byte elements, one per byte of the string.
func (v *ControlValue) StringValue() (string, error) {
	if v.typ != ControlTypeString {
		return "", fmt.Errorf("%w: have %s, want string", ErrValueType, v.describe())
	}
	return string(v.data), nil
}

func (v *ControlValue) SetString(s string) {
	v.Reserve(ControlTypeString, true, len(s))
	copy(v.data, s)
}

func (v *ControlValue) Rectangle() (Rectangle, error) {
	var r Rectangle
	el, err := v.scalar(ControlTypeRectangle)
	if err != nil {
		return r, err
	}
	return r, r.UnmarshalBinary(el)
}

func (v *ControlValue) SetRectangle(r Rectangle) {
	v.Reserve(ControlTypeRectangle, false, 1)
	r.MarshalInto(v.data)
}

func (v *ControlValue) Size() (Size, error) {
	var s Size
	el, err := v.scalar(ControlTypeSize)
	if err != nil {
		return s, err
	}
	return s, s.UnmarshalBinary(el)
}

func (v *ControlValue) SetSize(s Size) {
	v.Reserve(ControlTypeSize, false, 1)
	s.MarshalInto(v.data)
}

func (v *ControlValue) Point() (Point, error) {
	var p Point
	el, err := v.scalar(ControlTypePoint)
	if err != nil {
		return p, err
	}
	return p, p.UnmarshalBinary(el)
}

func (v *ControlValue) SetPoint(p Point) {
	v.Reserve(ControlTypePoint, false, 1)
	p.MarshalInto(v.data)
}

func (v *ControlValue) Matrix() (Matrix3x3, error) {
	var m Matrix3x3
	el, err := v.scalar(ControlTypeMatrix3x3)
	if err != nil {
		return m, err
	}
	return m, m.UnmarshalBinary(el)
}

func (v *ControlValue) SetMatrix(m Matrix3x3) {
	v.Reserve(ControlTypeMatrix3x3, false, 1)
	m.MarshalInto(v.data)
}

func (v *ControlValue) Bools() ([]bool, error) {
	el, err := v.array(ControlTypeBool)
	if err != nil {
		return nil, err
	}
	out := make([]bool, v.num)
	for i := range out {
		out[i] = el[i] != 0
	}
	return out, nil
}

func (v *ControlValue) SetBools(bs []bool) {
	v.Reserve(ControlTypeBool, true, len(bs))
	for i, b := range bs {
		if b {
			v.data[i] = 1
		}
	}
}

func (v *ControlValue) Bytes() ([]byte, error) {
	el, err := v.array(ControlTypeByte)
	if err != nil {
		return nil, err
	}
	out := make([]byte, v.num)
	copy(out, el)
	return out, nil
}

func (v *ControlValue) SetBytes(bs []byte) {
	v.SetRaw(ControlTypeByte, bs, true, len(bs))
}

func (v *ControlValue) Int32s() ([]int32, error) {
	el, err := v.array(ControlTypeInteger32)
	if err != nil {
		return nil, err
	}
	out := make([]int32, v.num)
	for i := range out {
		out[i] = int32(binary.NativeEndian.Uint32(el[i*4 : i*4+4]))
	}
	return out, nil
}

func (v *ControlValue) SetInt32s(is []int32) {
	v.Reserve(ControlTypeInteger32, true, len(is))
	for i, n := range is {
		binary.NativeEndian.PutUint32(v.data[i*4:i*4+4], uint32(n))
	}
}

func (v *ControlValue) Int64s() ([]int64, error) {
	el, err := v.array(ControlTypeInteger64)
	if err != nil {
		return nil, err
	}
	out := make([]int64, v.num)
	for i := range out {
		out[i] = int64(binary.NativeEndian.Uint64(el[i*8 : i*8+8]))
	}
	return out, nil
}

func (v *ControlValue) SetInt64s(is []int64) {
	v.Reserve(ControlTypeInteger64, true, len(is))
	for i, n := range is {
		binary.NativeEndian.PutUint64(v.data[i*8:i*8+8], uint64(n))
	}
}

func (v *ControlValue) Floats() ([]float32, error) {
	el, err := v.array(ControlTypeFloat)
	if err != nil {
		return nil, err
	}
	out := make([]float32, v.num)
	for i := range out {
		out[i] = math.Float32frombits(binary.NativeEndian.Uint32(el[i*4 : i*4+4]))
	}
	return out, nil
}

func (v *ControlValue) SetFloats(fs []float32) {
	v.Reserve(ControlTypeFloat, true, len(fs))
	for i, f := range fs {
		binary.NativeEndian.PutUint32(v.data[i*4:i*4+4], math.Float32bits(f))
	}
}

func (v *ControlValue) Rectangles() ([]Rectangle, error) {
	el, err := v.array(ControlTypeRectangle)
	if err != nil {
		return nil, err
	}
	out := make([]Rectangle, v.num)
	for i := range out {
		if err := out[i].UnmarshalBinary(el[i*16 : i*16+16]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (v *ControlValue) SetRectangles(rs []Rectangle) {
	v.Reserve(ControlTypeRectangle, true, len(rs))
	for i := range rs {
		rs[i].MarshalInto(v.data[i*16 : i*16+16])
	}
}

func (v *ControlValue) Sizes() ([]Size, error) {
	el, err := v.array(ControlTypeSize)
	if err != nil {
		return nil, err
	}
	out := make([]Size, v.num)
	for i := range out {
		if err := out[i].UnmarshalBinary(el[i*8 : i*8+8]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (v *ControlValue) SetSizes(ss []Size) {
	v.Reserve(ControlTypeSize, true, len(ss))
	for i := range ss {
		ss[i].MarshalInto(v.data[i*8 : i*8+8])
	}
}

func (v *ControlValue) Points() ([]Point, error) {
	el, err := v.array(ControlTypePoint)
	if err != nil {
		return nil, err
	}
	out := make([]Point, v.num)
	for i := range out {
		if err := out[i].UnmarshalBinary(el[i*8 : i*8+8]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (v *ControlValue) SetPoints(ps []Point) {
	v.Reserve(ControlTypePoint, true, len(ps))
	for i := range ps {
		ps[i].MarshalInto(v.data[i*8 : i*8+8])
	}
}

// Constructors for the common case of building a value in one expression.

func NewBool(b bool) *ControlValue {
	v := &ControlValue{}
	v.SetBool(b)
	return v
}

func NewByte(b byte) *ControlValue {
	v := &ControlValue{}
	v.SetByte(b)
	return v
}

func NewInt32(i int32) *ControlValue {
	v := &ControlValue{}
	v.SetInt32(i)
	return v
}

func NewInt64(i int64) *ControlValue {
	v := &ControlValue{}
	v.SetInt64(i)
	return v
}

func NewFloat(f float32) *ControlValue {
	v := &ControlValue{}
	v.SetFloat(f)
	return v
}

func NewString(s string) *ControlValue {
	v := &ControlValue{}
	v.SetString(s)
	return v
}

func NewRectangle(r Rectangle) *ControlValue {
	v := &ControlValue{}
	v.SetRectangle(r)
	return v
}

func NewSize(s Size) *ControlValue {
	v := &ControlValue{}
	v.SetSize(s)
	return v
}

func NewPoint(p Point) *ControlValue {
	v := &ControlValue{}
	v.SetPoint(p)
	return v
}

func NewMatrix(m Matrix3x3) *ControlValue {
	v := &ControlValue{}
	v.SetMatrix(m)
	return v
}

func NewInt32s(is []int32) *ControlValue {
	v := &ControlValue{}
	v.SetInt32s(is)
	return v
}

func NewInt64s(is []int64) *ControlValue {
	v := &ControlValue{}
	v.SetInt64s(is)
	return v
}

func NewFloats(fs []float32) *ControlValue {
	v := &ControlValue{}
	v.SetFloats(fs)
	return v
}

func NewRectangles(rs []Rectangle) *ControlValue {
	v := &ControlValue{}
	v.SetRectangles(rs)
	return v
}
