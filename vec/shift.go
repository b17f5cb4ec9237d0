package vec

import "math/bits"

// The octet shifts and rotates treat the vector as a big-endian byte
// stream: byte index 0 is the most significant position, and a left
// shift moves content toward index 0. Callers always reason in those
// terms regardless of host byte order; the representation used here
// makes the compensation the hardware intrinsics need a no-op, which
// the endianness round-trip tests pin down.

// ShiftLeftOctet shifts v left by c bytes, filling with zeros. c of 0
// returns v unchanged; c >= 16 returns the zero vector.
func ShiftLeftOctet[T Lanes](v Vec[T], c uint) Vec[T] {
	if c == 0 {
		return v
	}
	var r Vec[T]
	if c >= 16 {
		return r
	}
	copy(r.b[:16-c], v.b[c:])
	return r
}

// ShiftRightOctet shifts v right by c bytes, filling with zeros. c of
// 0 returns v unchanged; c >= 16 returns the zero vector.
func ShiftRightOctet[T Lanes](v Vec[T], c uint) Vec[T] {
	if c == 0 {
		return v
	}
	var r Vec[T]
	if c >= 16 {
		return r
	}
	copy(r.b[c:], v.b[:16-c])
	return r
}

// RotateLeftOctet rotates v left by c bytes. The count is reduced
// modulo 16; there is no zero fill.
func RotateLeftOctet[T Lanes](v Vec[T], c uint) Vec[T] {
	c &= 15
	var r Vec[T]
	for i := range r.b {
		r.b[i] = v.b[(uint(i)+c)&15]
	}
	return r
}

// RotateRightOctet rotates v right by c bytes, reduced modulo 16.
func RotateRightOctet[T Lanes](v Vec[T], c uint) Vec[T] {
	return RotateLeftOctet(v, (16-(c&15))&15)
}

// SwapWords exchanges the high and low 8-byte halves of v.
func SwapWords[T Lanes](v Vec[T]) Vec[T] {
	return RotateLeftOctet(v, 8)
}

// RotateLeftBits rotates each 32-bit lane left by c bits.
func RotateLeftBits(v Vec[uint32], c uint) Vec[uint32] {
	var r Vec[uint32]
	for i := 0; i < 4; i++ {
		r.SetLane(i, bits.RotateLeft32(v.Lane(i), int(c&31)))
	}
	return r
}

// RotateRightBits rotates each 32-bit lane right by c bits. There is
// no right-rotate primitive on the modeled hardware; it is a left
// rotate by the complementary amount.
func RotateRightBits(v Vec[uint32], c uint) Vec[uint32] {
	return RotateLeftBits(v, (32-(c&31))&31)
}
