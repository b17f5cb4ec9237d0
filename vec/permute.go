package vec

// ReverseBytes returns the 16 bytes of v in fully reversed order.
// It is an involution: ReverseBytes(ReverseBytes(v)) == v.
func ReverseBytes[T Lanes](v Vec[T]) Vec[T] {
	var r Vec[T]
	for i := range r.b {
		r.b[i] = v.b[15-i]
	}
	return r
}

// Permute gathers bytes of v per a 16-entry index mask. Output byte i
// is v's byte mask[i] & 0xF; the mask may carry any lane view.
func Permute[T1, T2 Lanes](v Vec[T1], mask Vec[T2]) Vec[T1] {
	return Permute2(v, v, mask)
}

// Permute2 gathers bytes from the 32-byte concatenation of a and b.
// Output byte i is source byte mask[i] & 0x1F, where indices 16..31
// select from b. Pass Zero for b to make high indices read as zero.
func Permute2[T1, T2 Lanes](a, b Vec[T1], mask Vec[T2]) Vec[T1] {
	var r Vec[T1]
	for i := range r.b {
		idx := mask.b[i] & 0x1f
		if idx < 16 {
			r.b[i] = a.b[idx]
		} else {
			r.b[i] = b.b[idx-16]
		}
	}
	return r
}

// GetLow extracts the low 8-byte half of v, zero-extended. The low
// half occupies bytes 8..15 when the vector is read as a big-endian
// byte stream. Defined entirely in terms of the octet shifts.
func GetLow[T Lanes](v Vec[T]) Vec[T] {
	return ShiftRightOctet(ShiftLeftOctet(v, 8), 8)
}

// GetHigh extracts the high 8-byte half of v, zero-extended into the
// low half's position.
func GetHigh[T Lanes](v Vec[T]) Vec[T] {
	return ShiftRightOctet(v, 8)
}
