// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// Iterator walks every bit position of a Dense in ascending order.  Typical
// usage:
//
//	for it := set.Iterator(); it.Scan(); {
//		if it.Value() {
//			...
//		}
//	}
//
// The iterator does not snapshot the set: Value reads the live words, so
// mutations made during iteration are visible at positions not yet visited
// (and at the current one).
type Iterator struct {
	set *Dense
	// pos is the current bit position; -1 before the first Scan.
	pos int
}

// Iterator returns an Iterator positioned before bit 0.
func (d *Dense) Iterator() *Iterator {
	return &Iterator{set: d, pos: -1}
}

// Scan advances to the next bit position.  It returns false once every
// position has been visited.
func (it *Iterator) Scan() bool {
	if it.pos+1 >= it.set.Len() {
		it.pos = it.set.Len()
		return false
	}
	it.pos++
	return true
}

// Index returns the current bit position.
func (it *Iterator) Index() int {
	return it.pos
}

// Value returns whether the bit at the current position is set.  It must only
// be called after Scan has returned true.
func (it *Iterator) Value() bool {
	return Test(it.set.words, it.pos)
}

// Len returns the total number of positions the iterator visits, which is the
// set's Len.
func (it *Iterator) Len() int {
	return it.set.Len()
}

// Reset rewinds the iterator to before bit 0.
func (it *Iterator) Reset() {
	it.pos = -1
}

// Bools returns the bits of d as a []bool of length d.Len().
func (d *Dense) Bools() []bool {
	out := make([]bool, 0, d.Len())
	for it := d.Iterator(); it.Scan(); {
		out = append(out, it.Value())
	}
	return out
}
