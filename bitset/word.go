// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// This is similar to github.com/willf/bitset , but with some extraneous
// abstraction removed.  Bulk operations live in ops.go and go through
// github.com/grailbio/base/simd.

package bitset

import (
	"unsafe"
)

const (
	// BitsPerWord is the number of bits in a machine word.
	BitsPerWord = 32 << (^uintptr(0) >> 63)
	// BytesPerWord is the number of bytes in a machine word.
	BytesPerWord = BitsPerWord / 8
)

// WordIndex returns the index of the word containing the given bit.
func WordIndex(bitIdx int) int {
	// Unsigned division by a power-of-2 constant compiles to a right-shift,
	// while signed does not due to negative nastiness.
	return int(uint(bitIdx) / BitsPerWord)
}

// BitOffset returns the position of the given bit within its word.
func BitOffset(bitIdx int) uint {
	return uint(bitIdx) % BitsPerWord
}

// Mask returns the single-bit mask selecting the given bit within its word.
func Mask(bitIdx int) uintptr {
	return 1 << BitOffset(bitIdx)
}

// NumWords returns the number of words needed to hold nBits bits.
func NumWords(nBits int) int {
	nWord := nBits / BitsPerWord
	if nBits%BitsPerWord != 0 {
		nWord++
	}
	return nWord
}

// Set sets the given bit in a []uintptr bitset.
func Set(data []uintptr, bitIdx int) {
	data[uint(bitIdx)/BitsPerWord] |= 1 << (uint(bitIdx) % BitsPerWord)
}

// Clear clears the given bit in a []uintptr bitset.
func Clear(data []uintptr, bitIdx int) {
	wordIdx := uint(bitIdx) / BitsPerWord
	data[wordIdx] = data[wordIdx] &^ (1 << (uint(bitIdx) % BitsPerWord))
}

// Flip toggles the given bit in a []uintptr bitset.
func Flip(data []uintptr, bitIdx int) {
	data[uint(bitIdx)/BitsPerWord] ^= 1 << (uint(bitIdx) % BitsPerWord)
}

// Test returns true iff the given bit is set.
func Test(data []uintptr, bitIdx int) bool {
	return (data[uint(bitIdx)/BitsPerWord] & (1 << (uint(bitIdx) % BitsPerWord))) != 0
}

// wordBytes returns a byte view of data, sharing its memory.  Byte order is
// irrelevant to every caller: they only perform bytewise boolean operations
// and population counts.
func wordBytes(data []uintptr) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*BytesPerWord)
}
