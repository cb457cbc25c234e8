// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"github.com/grailbio/base/simd"
)

// The whole-set operations view the words as bytes so that simd's vectorized
// loops can be used.  simd's safe functions require main and arg to have the
// same length, which apply guarantees before touching either operand.

// apply runs the bytewise in-place operation f with d as main and other as
// arg, after verifying that the operands have the same word count.
func (d *Dense) apply(op string, other *Dense, f func(main, arg []byte)) error {
	if len(d.words) != len(other.words) {
		return errSizeMismatch(op, len(d.words), len(other.words))
	}
	if len(d.words) == 0 {
		return nil
	}
	f(wordBytes(d.words), wordBytes(other.words))
	return nil
}

// Not complements every bit in place.  This includes the padding bits past
// the bit count originally passed to New; callers that rely on those being
// clear must clear them again.
func (d *Dense) Not() {
	if len(d.words) == 0 {
		return
	}
	simd.XorConst8Inplace(wordBytes(d.words), 0xff)
}

// AndInPlace sets d to d & other.  other is not modified.  If the word counts
// differ, an error satisfying IsSizeMismatch is returned and neither set is
// modified.
func (d *Dense) AndInPlace(other *Dense) error {
	return d.apply("AndInPlace", other, simd.AndInplace)
}

// OrInPlace sets d to d | other; see AndInPlace.
func (d *Dense) OrInPlace(other *Dense) error {
	return d.apply("OrInPlace", other, simd.OrInplace)
}

// XorInPlace sets d to d ^ other; see AndInPlace.
func (d *Dense) XorInPlace(other *Dense) error {
	return d.apply("XorInPlace", other, simd.XorInplace)
}

// AndNotInPlace sets d to d &^ other, i.e. removes other's members from d;
// see AndInPlace.
func (d *Dense) AndNotInPlace(other *Dense) error {
	return d.apply("AndNotInPlace", other, simd.InvmaskInplace)
}

// combine returns a copy of d with the in-place operation f applied to it.
func (d *Dense) combine(op string, other *Dense, f func(main, arg []byte)) (*Dense, error) {
	if len(d.words) != len(other.words) {
		return nil, errSizeMismatch(op, len(d.words), len(other.words))
	}
	result := d.Clone()
	if err := result.apply(op, other, f); err != nil {
		return nil, err
	}
	return result, nil
}

// And returns a new set holding d & other.  Neither operand is modified.
func (d *Dense) And(other *Dense) (*Dense, error) {
	return d.combine("And", other, simd.AndInplace)
}

// Or returns a new set holding d | other.
func (d *Dense) Or(other *Dense) (*Dense, error) {
	return d.combine("Or", other, simd.OrInplace)
}

// Xor returns a new set holding d ^ other.
func (d *Dense) Xor(other *Dense) (*Dense, error) {
	return d.combine("Xor", other, simd.XorInplace)
}

// AndNot returns a new set holding d &^ other.
func (d *Dense) AndNot(other *Dense) (*Dense, error) {
	return d.combine("AndNot", other, simd.InvmaskInplace)
}

// Count returns the number of set bits.
func (d *Dense) Count() int {
	if len(d.words) == 0 {
		return 0
	}
	return simd.Popcnt(wordBytes(d.words))
}
