package controls

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Geometry payload types carried by control values. Field order and widths
// match libcamera's Rectangle, Size and Point classes so the packed forms
// are interchangeable with the native stack.

// Rectangle is a pixel rectangle given by its signed top-left corner and an
// unsigned extent. Packed form is 16 bytes.
type Rectangle struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

func (r *Rectangle) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 16)
	if err := r.MarshalInto(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (r *Rectangle) MarshalInto(buf []byte) error {
	if len(buf) < 16 {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(r.X))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(r.Y))
	binary.NativeEndian.PutUint32(buf[8:12], r.Width)
	binary.NativeEndian.PutUint32(buf[12:16], r.Height)
	return nil
}

func (r *Rectangle) UnmarshalBinary(buf []byte) error {
	if len(buf) < 16 {
		return io.ErrShortBuffer
	}
	r.X = int32(binary.NativeEndian.Uint32(buf[0:4]))
	r.Y = int32(binary.NativeEndian.Uint32(buf[4:8]))
	r.Width = binary.NativeEndian.Uint32(buf[8:12])
	r.Height = binary.NativeEndian.Uint32(buf[12:16])
	return nil
}

// Contains reports whether the point lies within the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y &&
		int64(p.X) < int64(r.X)+int64(r.Width) &&
		int64(p.Y) < int64(r.Y)+int64(r.Height)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d, %d)/%dx%d", r.X, r.Y, r.Width, r.Height)
}

// Size is an unsigned width and height pair. Packed form is 8 bytes.
type Size struct {
	Width  uint32
	Height uint32
}

func (s *Size) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	if err := s.MarshalInto(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Size) MarshalInto(buf []byte) error {
	if len(buf) < 8 {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], s.Width)
	binary.NativeEndian.PutUint32(buf[4:8], s.Height)
	return nil
}

func (s *Size) UnmarshalBinary(buf []byte) error {
	if len(buf) < 8 {
		return io.ErrShortBuffer
	}
	s.Width = binary.NativeEndian.Uint32(buf[0:4])
	s.Height = binary.NativeEndian.Uint32(buf[4:8])
	return nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point is a signed pixel coordinate. Packed form is 8 bytes.
type Point struct {
	X int32
	Y int32
}

func (p *Point) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	if err := p.MarshalInto(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *Point) MarshalInto(buf []byte) error {
	if len(buf) < 8 {
		return io.ErrShortBuffer
	}
	binary.NativeEndian.PutUint32(buf[0:4], uint32(p.X))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(p.Y))
	return nil
}

func (p *Point) UnmarshalBinary(buf []byte) error {
	if len(buf) < 8 {
		return io.ErrShortBuffer
	}
	p.X = int32(binary.NativeEndian.Uint32(buf[0:4]))
	p.Y = int32(binary.NativeEndian.Uint32(buf[4:8]))
	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Matrix3x3 is a row-major 3x3 float matrix, as carried by the colour
// correction matrix control. Packed form is 36 bytes.
type Matrix3x3 [9]float32

// Identity returns the identity matrix.
func Identity() Matrix3x3 {
	return Matrix3x3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func (m *Matrix3x3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 36)
	if err := m.MarshalInto(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (m *Matrix3x3) MarshalInto(buf []byte) error {
	if len(buf) < 36 {
		return io.ErrShortBuffer
	}
	for i, f := range m {
		binary.NativeEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(f))
	}
	return nil
}

func (m *Matrix3x3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 36 {
		return io.ErrShortBuffer
	}
	for i := range m {
		m[i] = math.Float32frombits(binary.NativeEndian.Uint32(buf[i*4 : i*4+4]))
	}
	return nil
}

func (m Matrix3x3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
