// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitset provides fixed-capacity bitsets packed into machine words.
//
// Two layers are exported.  The package-level functions (Set, Clear, Test,
// Flip) treat a caller-owned []uintptr as a bitset and perform no bounds
// checking beyond Go's own slice checks; they are intended for inner loops
// where the caller has already validated its indexes.  Dense wraps an owned
// []uintptr and checks every index, returning errors that satisfy
// IsOutOfRange or IsSizeMismatch instead of crashing.
//
// A Dense set's capacity is always a multiple of BitsPerWord: requesting 100
// bits on a 64-bit platform yields a 128-bit set.  Bit j of word k represents
// logical bit k*BitsPerWord+j.  Whole-set operations (And, Or, Xor, AndNot,
// Not) run over the words with github.com/grailbio/base/simd.
//
// Dense is not safe for concurrent mutation.
package bitset
