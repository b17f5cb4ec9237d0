package vec

// And returns the bitwise AND of the two vectors. The second operand
// may carry a different lane view; it is reinterpreted to the first
// operand's view, which never changes its bits.
func And[T1, T2 Lanes](a Vec[T1], b Vec[T2]) Vec[T1] {
	var r Vec[T1]
	for i := range r.b {
		r.b[i] = a.b[i] & b.b[i]
	}
	return r
}

// Or returns the bitwise OR of the two vectors.
func Or[T1, T2 Lanes](a Vec[T1], b Vec[T2]) Vec[T1] {
	var r Vec[T1]
	for i := range r.b {
		r.b[i] = a.b[i] | b.b[i]
	}
	return r
}

// Xor returns the bitwise XOR of the two vectors.
func Xor[T1, T2 Lanes](a Vec[T1], b Vec[T2]) Vec[T1] {
	var r Vec[T1]
	for i := range r.b {
		r.b[i] = a.b[i] ^ b.b[i]
	}
	return r
}

// Add returns the lane-wise sum of a and b, wrapping modulo the lane
// width of T.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := 0; i < NumLanes[T](); i++ {
		r.SetLane(i, a.Lane(i)+b.Lane(i))
	}
	return r
}

// Sub returns the lane-wise difference of a and b, wrapping modulo
// the lane width of T.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for i := 0; i < NumLanes[T](); i++ {
		r.SetLane(i, a.Lane(i)-b.Lane(i))
	}
	return r
}

// Add64 adds vec1 and vec2 as two 64-bit lanes with full 64-bit
// wraparound. On the extended tier this is a native 64-bit lane add.
// On the baseline tier it is emulated with 32-bit lane adds plus a
// carry-mask permute; both paths are bit-identical.
func Add64(vec1, vec2 Vec[uint32]) Vec[uint32] {
	if hasExtended {
		a := Reinterpret[uint64](vec1)
		b := Reinterpret[uint64](vec2)
		var r Vec[uint64]
		r.SetLane(0, a.Lane(0)+b.Lane(0))
		r.SetLane(1, a.Lane(1)+b.Lane(1))
		return Reinterpret[uint32](r)
	}
	return add64Carry(vec1, vec2)
}

// add64Carry is the baseline emulation: a 32-bit lane add-with-carry,
// then a permute that keeps only the carries out of each 64-bit lane's
// low word and slides them under the corresponding high word. Carries
// out of the high words fall off the 64-bit lane boundary and are
// discarded, as 64-bit wraparound requires.
func add64Carry(vec1, vec2 Vec[uint32]) Vec[uint32] {
	// The mask positions depend on which 32-bit lane holds each
	// 64-bit lane's low word.
	var cmask Vec[uint8]
	if hostBigEndian {
		cmask = FromBytes[uint8]([16]byte{4, 5, 6, 7, 16, 16, 16, 16, 12, 13, 14, 15, 16, 16, 16, 16})
	} else {
		cmask = FromBytes[uint8]([16]byte{16, 16, 16, 16, 0, 1, 2, 3, 16, 16, 16, 16, 8, 9, 10, 11})
	}

	var cy Vec[uint32]
	for i := 0; i < 4; i++ {
		s := uint64(vec1.Lane(i)) + uint64(vec2.Lane(i))
		cy.SetLane(i, uint32(s>>32))
	}
	cy = Permute2(cy, Zero[uint32](), cmask)
	return Add(Add(vec1, vec2), cy)
}
