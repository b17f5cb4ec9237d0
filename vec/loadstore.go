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
	"unsafe"
)

// Load reads the 16 bytes at src[off:off+16] and returns them as a
// vector in native lane order. The address may have any alignment: on
// unaligned-capable tiers the load is direct; on the aligned-only tier
// it goes through an aligned block load, or through a two-block permute
// window when the effective address is misaligned. All paths yield the
// same bits; the tiers exist to mirror the instruction selection of
// the hardware they model.
func Load(src []byte, off int) Vec[uint32] {
	if hasUnaligned {
		return loadDirect(src, off)
	}
	return loadAlignedPath(src, off)
}

// LoadBigEndian is Load with the vector normalized to big-endian
// byte order: on little-endian hosts all 16 bytes are reversed.
func LoadBigEndian(src []byte, off int) Vec[uint32] {
	v := Load(src, off)
	if hostBigEndian {
		return v
	}
	return ReverseBytes(v)
}

// LoadWords loads four 32-bit words starting at src[off]. The result
// is bit-identical to loading the words' in-memory bytes with Load.
func LoadWords(src []uint32, off int) Vec[uint32] {
	var v Vec[uint32]
	for i := 0; i < 4; i++ {
		binary.NativeEndian.PutUint32(v.b[i*4:], src[off+i])
	}
	return v
}

// Store writes the 16 bytes of v to dst[off:off+16] and nothing else,
// with the same tier dispatch as Load.
func Store[T Lanes](v Vec[T], dst []byte, off int) {
	if hasUnaligned {
		copy(dst[off:off+16], v.b[:])
		return
	}
	storeAlignedPath(v.b, dst, off)
}

// StoreBigEndian stores v in big-endian byte order: on little-endian
// hosts all 16 bytes are reversed before the store. A buffer written
// by StoreBigEndian reads back identically through LoadBigEndian.
func StoreBigEndian[T Lanes](v Vec[T], dst []byte, off int) {
	if !hostBigEndian {
		v = ReverseBytes(v)
	}
	Store(v, dst, off)
}

// StoreWords writes the vector's four 32-bit lanes to dst[off:off+4].
func StoreWords[T Lanes](v Vec[T], dst []uint32, off int) {
	w := Reinterpret[uint32](v)
	for i := 0; i < 4; i++ {
		dst[off+i] = w.Lane(i)
	}
}

func loadDirect(src []byte, off int) Vec[uint32] {
	var v Vec[uint32]
	copy(v.b[:], src[off:off+16])
	return v
}

// loadAlignedPath models lvx-class loads, which mask the low four
// address bits. An aligned effective address is a single block load.
// A misaligned one loads the two aligned blocks covering the window
// and gathers it with a permute, the lvsl trick. When those blocks
// would reach outside the caller's slice the hardware would still read
// them; Go cannot, so the window is assembled directly. The result is
// identical either way.
func loadAlignedPath(src []byte, off int) Vec[uint32] {
	align := int(uintptr(unsafe.Pointer(&src[off])) & 15)
	if align == 0 {
		return loadDirect(src, off)
	}
	lo := off - align
	if lo >= 0 && lo+32 <= len(src) {
		low := loadDirect(src, lo)
		high := loadDirect(src, lo+16)
		return Permute2(low, high, windowMask(align))
	}
	return loadDirect(src, off)
}

// windowMask is the lvsl-style gather mask selecting the 16-byte
// window that starts align bytes into a 32-byte pair of blocks.
func windowMask(align int) Vec[uint8] {
	var m Vec[uint8]
	for i := range m.b {
		m.b[i] = byte(align + i)
	}
	return m
}

// storeAlignedPath models stvx/stvebx-class stores. Aligned addresses
// take a single block store. Misaligned ones emit the 16 bytes through
// byte, halfword and word sub-stores: leading granules up to the next
// word boundary, whole words across the middle, trailing granules for
// the remainder. Exactly dst[off:off+16] is written.
func storeAlignedPath(b [16]byte, dst []byte, off int) {
	align := int(uintptr(unsafe.Pointer(&dst[off])) & 15)
	if align == 0 {
		copy(dst[off:off+16], b[:])
		return
	}
	_ = dst[off+15]
	i := 0
	if (align+i)&1 != 0 {
		dst[off+i] = b[i]
		i++
	}
	if (align+i)&3 != 0 {
		copy(dst[off+i:off+i+2], b[i:i+2])
		i += 2
	}
	for ; i+4 <= 16; i += 4 {
		copy(dst[off+i:off+i+4], b[i:i+4])
	}
	if i+2 <= 16 {
		copy(dst[off+i:off+i+2], b[i:i+2])
		i += 2
	}
	if i < 16 {
		dst[off+i] = b[i]
	}
}
