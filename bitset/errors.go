// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Dense reports bad indexes with kind errors.Invalid and mismatched operands
// with kind errors.Precondition; these are the only kinds it produces.

func errOutOfRange(op string, bitIdx, nBits int) error {
	return errors.E(errors.Invalid, fmt.Sprintf("bitset.%s: index %d out of range [0, %d)", op, bitIdx, nBits))
}

func errSizeMismatch(op string, nWord, otherNWord int) error {
	return errors.E(errors.Precondition, fmt.Sprintf("bitset.%s: word count mismatch: %d vs %d", op, nWord, otherNWord))
}

// IsOutOfRange tells whether err was returned for a bit index outside of a
// set's capacity.
func IsOutOfRange(err error) bool {
	return errors.Is(errors.Invalid, err)
}

// IsSizeMismatch tells whether err was returned for a combination of two sets
// with different word counts.
func IsSizeMismatch(err error) bool {
	return errors.Is(errors.Precondition, err)
}
