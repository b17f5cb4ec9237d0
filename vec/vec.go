// Copyright 2026 go-vec128 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import (
	"encoding/binary"
	"fmt"
)

// Lanes is the set of unsigned integer lane widths a 128-bit vector
// can be viewed as: 16x8, 8x16, 4x32 or 2x64 bits.
type Lanes interface {
	uint8 | uint16 | uint32 | uint64
}

// Vec is a 128-bit vector viewed as lanes of type T. The backing bytes
// are stored in memory order; lane values are read and written in the
// host's native byte order, matching what a hardware vector register
// holds after a native load. Reinterpreting a Vec between lane widths
// never changes the backing bytes.
//
// Vec is a plain value; it is never heap-managed by this package and
// is safe to use concurrently as long as callers do not share a *Vec.
type Vec[T Lanes] struct {
	b [16]byte
}

// laneSize returns the byte width of lane type T.
func laneSize[T Lanes]() int {
	var z T
	switch any(z).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// NumLanes returns the number of T-sized lanes in a 128-bit vector.
func NumLanes[T Lanes]() int {
	return 16 / laneSize[T]()
}

// Zero returns the all-zero vector.
func Zero[T Lanes]() Vec[T] {
	var v Vec[T]
	return v
}

// Splat returns a vector with every lane set to x.
func Splat[T Lanes](x T) Vec[T] {
	var v Vec[T]
	for i := 0; i < NumLanes[T](); i++ {
		v.SetLane(i, x)
	}
	return v
}

// FromBytes returns a vector whose backing bytes are b, in memory order.
func FromBytes[T Lanes](b [16]byte) Vec[T] {
	return Vec[T]{b: b}
}

// Bytes returns the vector's backing bytes in memory order.
func (v Vec[T]) Bytes() [16]byte {
	return v.b
}

// Lane returns lane i, interpreted in host byte order.
func (v Vec[T]) Lane(i int) T {
	var z T
	switch any(z).(type) {
	case uint8:
		return T(v.b[i])
	case uint16:
		return T(binary.NativeEndian.Uint16(v.b[i*2:]))
	case uint32:
		return T(binary.NativeEndian.Uint32(v.b[i*4:]))
	default:
		return T(binary.NativeEndian.Uint64(v.b[i*8:]))
	}
}

// SetLane sets lane i to x, in host byte order.
func (v *Vec[T]) SetLane(i int, x T) {
	switch any(x).(type) {
	case uint8:
		v.b[i] = byte(x)
	case uint16:
		binary.NativeEndian.PutUint16(v.b[i*2:], uint16(x))
	case uint32:
		binary.NativeEndian.PutUint32(v.b[i*4:], uint32(x))
	default:
		binary.NativeEndian.PutUint64(v.b[i*8:], uint64(x))
	}
}

// Reinterpret views the 128 bits of v as lanes of type U. This is a
// reinterpretation, not a conversion: the backing bytes are unchanged.
func Reinterpret[U, T Lanes](v Vec[T]) Vec[U] {
	return Vec[U]{b: v.b}
}

// Equal reports whether all 128 bits of the two vectors match. The
// operands may carry different lane views.
func Equal[T1, T2 Lanes](a Vec[T1], b Vec[T2]) bool {
	return a.b == b.b
}

// NotEqual reports whether any of the 128 bits differ.
func NotEqual[T1, T2 Lanes](a Vec[T1], b Vec[T2]) bool {
	return a.b != b.b
}

func (v Vec[T]) String() string {
	return fmt.Sprintf("%x", v.b)
}
