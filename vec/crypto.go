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

import "math/bits"

// Single-round AES and SHA sigma primitives with the semantics of the
// POWER8 crypto unit (vcipher, vncipher, vshasigmaw, vshasigmad).
// Note the decrypt rounds mix the key in before InvMixColumns, unlike
// AES-NI's equivalent-inverse form; a full decryption therefore uses
// the encryption key schedule in reverse order with no key transform.
//
// These primitives require the crypto capability. Calling them without
// it is a configuration error and panics; any software fallback policy
// belongs to the calling cipher, not to this layer.

func requireCrypto(op string) {
	if !hasCrypto {
		panic("vec: " + op + " requires AES/SHA round instructions (dispatch level " + currentName + ")")
	}
}

// EncryptRound performs one middle round of AES encryption on state
// with round key key: SubBytes, ShiftRows, MixColumns, then the key
// XOR.
func EncryptRound[T1, T2 Lanes](state Vec[T1], key Vec[T2]) Vec[T1] {
	requireCrypto("EncryptRound")
	s := state.b
	for i := range s {
		s[i] = aesSbox[s[i]]
	}
	s = aesShiftRows(s)
	s = aesMixColumns(s)
	for i := range s {
		s[i] ^= key.b[i]
	}
	return Vec[T1]{b: s}
}

// EncryptFinalRound performs the last round of AES encryption, which
// omits MixColumns.
func EncryptFinalRound[T1, T2 Lanes](state Vec[T1], key Vec[T2]) Vec[T1] {
	requireCrypto("EncryptFinalRound")
	s := state.b
	for i := range s {
		s[i] = aesSbox[s[i]]
	}
	s = aesShiftRows(s)
	for i := range s {
		s[i] ^= key.b[i]
	}
	return Vec[T1]{b: s}
}

// DecryptRound performs one middle round of AES decryption:
// InvShiftRows, InvSubBytes, the key XOR, then InvMixColumns.
func DecryptRound[T1, T2 Lanes](state Vec[T1], key Vec[T2]) Vec[T1] {
	requireCrypto("DecryptRound")
	s := aesInvShiftRows(state.b)
	for i := range s {
		s[i] = aesInvSbox[s[i]]
	}
	for i := range s {
		s[i] ^= key.b[i]
	}
	s = aesInvMixColumns(s)
	return Vec[T1]{b: s}
}

// DecryptFinalRound performs the last round of AES decryption, which
// omits InvMixColumns.
func DecryptFinalRound[T1, T2 Lanes](state Vec[T1], key Vec[T2]) Vec[T1] {
	requireCrypto("DecryptFinalRound")
	s := aesInvShiftRows(state.b)
	for i := range s {
		s[i] = aesInvSbox[s[i]]
	}
	for i := range s {
		s[i] ^= key.b[i]
	}
	return Vec[T1]{b: s}
}

// Sha256Sigma applies one of the four SHA-256 sigma functions to every
// 32-bit lane of v. fn selects lower-case sigma (0) or upper-case
// Sigma (1); sub selects the 0- or 1-indexed variant.
func Sha256Sigma(v Vec[uint32], fn, sub int) Vec[uint32] {
	requireCrypto("Sha256Sigma")
	var r Vec[uint32]
	for i := 0; i < 4; i++ {
		x := v.Lane(i)
		var y uint32
		switch {
		case fn == 0 && sub == 0:
			y = bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
		case fn == 0:
			y = bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
		case sub == 0:
			y = bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
		default:
			y = bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
		}
		r.SetLane(i, y)
	}
	return r
}

// Sha512Sigma applies one of the four SHA-512 sigma functions to every
// 64-bit lane of v, with the same fn/sub selection as Sha256Sigma.
func Sha512Sigma(v Vec[uint64], fn, sub int) Vec[uint64] {
	requireCrypto("Sha512Sigma")
	var r Vec[uint64]
	for i := 0; i < 2; i++ {
		x := v.Lane(i)
		var y uint64
		switch {
		case fn == 0 && sub == 0:
			y = bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
		case fn == 0:
			y = bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
		case sub == 0:
			y = bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
		default:
			y = bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
		}
		r.SetLane(i, y)
	}
	return r
}
