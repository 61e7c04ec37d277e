// SPDX-License-Identifier: MIT

package layout

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/katalvlaran/lvjet/errors"
)

// DType identifies the element type of a Leaf.
type DType uint8

const (
	Float64 DType = iota + 1
	Float32
	Int64
	Int32
	Uint8
)

// Size returns the element width in bytes, or 0 for an unknown dtype.
func (d DType) Size() int {
	switch d {
	case Float64, Int64:
		return 8
	case Float32, Int32:
		return 4
	case Uint8:
		return 1
	default:
		return 0
	}
}

// IsFloat reports whether d is a floating point type.
func (d DType) IsFloat() bool { return d == Float64 || d == Float32 }

func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// Leaf is a terminal numeric column. Its bytes are kept exactly as supplied,
// in the declared byte order; the typed accessors always decode to native
// values.
type Leaf struct {
	dtype DType
	order binary.ByteOrder
	data  []byte
}

// NewLeafBytes wraps raw column bytes. A nil order means native order.
// The slice is retained, not copied.
func NewLeafBytes(dtype DType, order binary.ByteOrder, data []byte) (*Leaf, error) {
	size := dtype.Size()
	if size == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidStructure, "layout: unknown dtype %d", dtype)
	}
	if len(data)%size != 0 {
		return nil, errors.Wrapf(errors.ErrInvalidStructure,
			"layout: %d bytes is not a multiple of %s width %d", len(data), dtype, size)
	}
	if order == nil {
		order = binary.NativeEndian
	}
	return &Leaf{dtype: dtype, order: order, data: data}, nil
}

// NewFloat64Leaf encodes v in native order.
func NewFloat64Leaf(v []float64) *Leaf {
	buf := make([]byte, 8*len(v))
	for i, x := range v {
		binary.NativeEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}
	return &Leaf{dtype: Float64, order: binary.NativeEndian, data: buf}
}

// NewFloat32Leaf encodes v in native order.
func NewFloat32Leaf(v []float32) *Leaf {
	buf := make([]byte, 4*len(v))
	for i, x := range v {
		binary.NativeEndian.PutUint32(buf[4*i:], math.Float32bits(x))
	}
	return &Leaf{dtype: Float32, order: binary.NativeEndian, data: buf}
}

// NewInt64Leaf encodes v in native order.
func NewInt64Leaf(v []int64) *Leaf {
	buf := make([]byte, 8*len(v))
	for i, x := range v {
		binary.NativeEndian.PutUint64(buf[8*i:], uint64(x))
	}
	return &Leaf{dtype: Int64, order: binary.NativeEndian, data: buf}
}

// NewInt32Leaf encodes v in native order.
func NewInt32Leaf(v []int32) *Leaf {
	buf := make([]byte, 4*len(v))
	for i, x := range v {
		binary.NativeEndian.PutUint32(buf[4*i:], uint32(x))
	}
	return &Leaf{dtype: Int32, order: binary.NativeEndian, data: buf}
}

// NewUint8Leaf copies v.
func NewUint8Leaf(v []uint8) *Leaf {
	buf := make([]byte, len(v))
	copy(buf, v)
	return &Leaf{dtype: Uint8, order: binary.NativeEndian, data: buf}
}

// NewBoolLeaf stores v as a uint8 column of 0/1.
func NewBoolLeaf(v []bool) *Leaf {
	buf := make([]byte, len(v))
	for i, b := range v {
		if b {
			buf[i] = 1
		}
	}
	return &Leaf{dtype: Uint8, order: binary.NativeEndian, data: buf}
}

func (l *Leaf) Kind() Kind  { return KindLeaf }
func (l *Leaf) layoutNode() {}

// Len is the element count; a Leaf without a known dtype has none.
func (l *Leaf) Len() int {
	size := l.dtype.Size()
	if size == 0 {
		return 0
	}
	return len(l.data) / size
}

// DType returns the element type.
func (l *Leaf) DType() DType { return l.dtype }

// ByteOrder returns the declared byte order of the raw bytes.
func (l *Leaf) ByteOrder() binary.ByteOrder { return l.order }

// Bytes returns the raw column bytes. Callers must not modify them.
func (l *Leaf) Bytes() []byte { return l.data }

// Native reports whether the raw bytes are already in native order.
func (l *Leaf) Native() bool { return IsNativeOrder(l.order) }

// Float64At decodes element i as float64.
func (l *Leaf) Float64At(i int) float64 {
	switch l.dtype {
	case Float64:
		return math.Float64frombits(l.order.Uint64(l.data[8*i:]))
	case Float32:
		return float64(math.Float32frombits(l.order.Uint32(l.data[4*i:])))
	case Int64:
		return float64(int64(l.order.Uint64(l.data[8*i:])))
	case Int32:
		return float64(int32(l.order.Uint32(l.data[4*i:])))
	default:
		return float64(l.data[i])
	}
}

// Int64At decodes element i as int64; floats are truncated.
func (l *Leaf) Int64At(i int) int64 {
	switch l.dtype {
	case Int64:
		return int64(l.order.Uint64(l.data[8*i:]))
	case Int32:
		return int64(int32(l.order.Uint32(l.data[4*i:])))
	case Uint8:
		return int64(l.data[i])
	default:
		return int64(l.Float64At(i))
	}
}

// Float64s decodes the whole column into a fresh native slice.
func (l *Leaf) Float64s() []float64 {
	out := make([]float64, l.Len())
	for i := range out {
		out[i] = l.Float64At(i)
	}
	return out
}

// Int64s decodes the whole column into a fresh native slice.
func (l *Leaf) Int64s() []int64 {
	out := make([]int64, l.Len())
	for i := range out {
		out[i] = l.Int64At(i)
	}
	return out
}

// IsNativeOrder reports whether order encodes like the host byte order.
func IsNativeOrder(order binary.ByteOrder) bool {
	if order == nil {
		return true
	}
	var a, b [2]byte
	order.PutUint16(a[:], 0x0102)
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	return bytes.Equal(a[:], b[:])
}
