// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"io"
	"math/bits"
	"strings"

	"github.com/grailbio/base/log"
)

// Dense is a fixed-capacity bitset backed by an owned []uintptr.  Its
// capacity, Len(), is always WordCount()*BitsPerWord.
//
// Every bit-indexed method checks its index; an index outside [0, Len())
// yields an error satisfying IsOutOfRange and leaves the set unchanged.
type Dense struct {
	words []uintptr
}

// New returns a zeroed Dense with room for at least nBits bits.  The capacity
// is rounded up to the next multiple of BitsPerWord.  nBits may be zero.
func New(nBits int) *Dense {
	return NewFilled(nBits, 0)
}

// NewFilled is New, but initializes every word to word instead of zero.
// NewFilled(n, ^uintptr(0)) returns a set with all bits set, including the
// padding bits past n.
func NewFilled(nBits int, word uintptr) *Dense {
	if nBits < 0 {
		log.Panicf("bitset.New: negative capacity %d", nBits)
	}
	words := make([]uintptr, NumWords(nBits))
	if word != 0 {
		for i := range words {
			words[i] = word
		}
	}
	return &Dense{words: words}
}

// FromWord returns a single-word set initialized to word.
func FromWord(word uintptr) *Dense {
	return &Dense{words: []uintptr{word}}
}

// FromWords returns a set backed by words.  The set takes ownership of the
// slice; the caller must not use it afterwards.
func FromWords(words []uintptr) *Dense {
	return &Dense{words: words}
}

// Words returns a copy of the words backing the set.
func (d *Dense) Words() []uintptr {
	return append([]uintptr(nil), d.words...)
}

// Len returns the number of bits the set can hold.
func (d *Dense) Len() int {
	return len(d.words) * BitsPerWord
}

// WordCount returns the number of words backing the set.
func (d *Dense) WordCount() int {
	return len(d.words)
}

func (d *Dense) check(op string, bitIdx int) error {
	if uint(bitIdx) >= uint(d.Len()) {
		return errOutOfRange(op, bitIdx, d.Len())
	}
	return nil
}

// Test returns whether the given bit is set.
func (d *Dense) Test(bitIdx int) (bool, error) {
	if err := d.check("Test", bitIdx); err != nil {
		return false, err
	}
	return Test(d.words, bitIdx), nil
}

// Set sets the given bit.  It returns true iff the bit was previously clear.
func (d *Dense) Set(bitIdx int) (bool, error) {
	if err := d.check("Set", bitIdx); err != nil {
		return false, err
	}
	word := &d.words[WordIndex(bitIdx)]
	mask := Mask(bitIdx)
	prior := *word
	*word = prior | mask
	return prior&mask == 0, nil
}

// Clear clears the given bit.  It returns true iff the bit was previously set.
func (d *Dense) Clear(bitIdx int) (bool, error) {
	if err := d.check("Clear", bitIdx); err != nil {
		return false, err
	}
	word := &d.words[WordIndex(bitIdx)]
	mask := Mask(bitIdx)
	prior := *word
	*word = prior &^ mask
	return prior&mask != 0, nil
}

// Flip toggles the given bit.
func (d *Dense) Flip(bitIdx int) error {
	if err := d.check("Flip", bitIdx); err != nil {
		return err
	}
	Flip(d.words, bitIdx)
	return nil
}

// ClearAll clears every bit, padding included.
func (d *Dense) ClearAll() {
	for i := range d.words {
		d.words[i] = 0
	}
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	words := make([]uintptr, len(d.words))
	copy(words, d.words)
	return &Dense{words: words}
}

// Equal tells whether d and other hold identical words.  Sets of different
// capacity are never equal.
func (d *Dense) Equal(other *Dense) bool {
	if other == nil || len(d.words) != len(other.words) {
		return false
	}
	for i, word := range d.words {
		if word != other.words[i] {
			return false
		}
	}
	return true
}

// Any tells whether at least one bit is set.
func (d *Dense) Any() bool {
	for _, word := range d.words {
		if word != 0 {
			return true
		}
	}
	return false
}

// None tells whether no bit is set.
func (d *Dense) None() bool {
	return !d.Any()
}

// NextSet returns the position of the first set bit at or after from, and
// true; or -1 and false if there is none.  A negative from starts the search
// at 0.  Unlike the accessors, NextSet does not treat from >= Len() as an
// error: there is simply nothing to find.
func (d *Dense) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= d.Len() {
		return -1, false
	}
	wordIdx := WordIndex(from)
	if bitWord := d.words[wordIdx] >> BitOffset(from); bitWord != 0 {
		return from + bits.TrailingZeros64(uint64(bitWord)), true
	}
	for wordIdx++; wordIdx < len(d.words); wordIdx++ {
		if bitWord := d.words[wordIdx]; bitWord != 0 {
			return wordIdx*BitsPerWord + bits.TrailingZeros64(uint64(bitWord)), true
		}
	}
	return -1, false
}

// String renders the set as Len() characters, '1' for each set bit and '0'
// for each clear one, starting with bit 0.
func (d *Dense) String() string {
	var b strings.Builder
	b.Grow(d.Len())
	for _, word := range d.words {
		for j := 0; j < BitsPerWord; j++ {
			if word&(1<<uint(j)) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// WriteTo writes the String rendering of d to w.
func (d *Dense) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
