// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"math/bits"
	"math/rand"
	"testing"

	gbitset "github.com/grailbio/bitsets/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willf/bitset"
)

func TestWordWidth(t *testing.T) {
	assert.Equal(t, bits.UintSize, gbitset.BitsPerWord)
	assert.Equal(t, gbitset.BitsPerWord, 8*gbitset.BytesPerWord)
}

func TestAddressing(t *testing.T) {
	for _, c := range []struct {
		bitIdx, wordIdx int
		offset          uint
	}{
		{0, 0, 0},
		{1, 0, 1},
		{gbitset.BitsPerWord - 1, 0, gbitset.BitsPerWord - 1},
		{gbitset.BitsPerWord, 1, 0},
		{2*gbitset.BitsPerWord + 5, 2, 5},
	} {
		assert.Equal(t, c.wordIdx, gbitset.WordIndex(c.bitIdx), "bit %d", c.bitIdx)
		assert.Equal(t, c.offset, gbitset.BitOffset(c.bitIdx), "bit %d", c.bitIdx)
		assert.Equal(t, uintptr(1)<<c.offset, gbitset.Mask(c.bitIdx), "bit %d", c.bitIdx)
	}
}

func TestNumWords(t *testing.T) {
	assert.Equal(t, 0, gbitset.NumWords(0))
	assert.Equal(t, 1, gbitset.NumWords(1))
	assert.Equal(t, 1, gbitset.NumWords(gbitset.BitsPerWord))
	assert.Equal(t, 2, gbitset.NumWords(gbitset.BitsPerWord+1))
}

// TestRawOps drives the package-level functions and github.com/willf/bitset
// with the same random operations and checks that they agree.
func TestRawOps(t *testing.T) {
	const (
		nWord = 7
		nIter = 2000
	)
	nBits := nWord * gbitset.BitsPerWord
	data := make([]uintptr, nWord)
	ref := bitset.New(uint(nBits))
	for iter := 0; iter < nIter; iter++ {
		bitIdx := rand.Intn(nBits)
		switch rand.Intn(3) {
		case 0:
			gbitset.Set(data, bitIdx)
			ref.Set(uint(bitIdx))
		case 1:
			gbitset.Clear(data, bitIdx)
			ref.Clear(uint(bitIdx))
		case 2:
			gbitset.Flip(data, bitIdx)
			ref.Flip(uint(bitIdx))
		}
	}
	for i := 0; i < nBits; i++ {
		require.Equal(t, ref.Test(uint(i)), gbitset.Test(data, i), "bit %d", i)
	}
}

func TestRawOpsPanicOutOfBounds(t *testing.T) {
	data := make([]uintptr, 1)
	assert.Panics(t, func() { gbitset.Set(data, gbitset.BitsPerWord) })
	assert.Panics(t, func() { gbitset.Test(data, gbitset.BitsPerWord) })
}

func benchmarkRandomSet(b *testing.B, set func(bitIdx int)) {
	const nBits = 1 << 16
	idx := make([]int, 4096)
	for i := range idx {
		idx[i] = rand.Intn(nBits)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, bitIdx := range idx {
			set(bitIdx)
		}
	}
}

func Benchmark_RawSet(b *testing.B) {
	data := make([]uintptr, gbitset.NumWords(1<<16))
	benchmarkRandomSet(b, func(bitIdx int) { gbitset.Set(data, bitIdx) })
}

func Benchmark_DenseSet(b *testing.B) {
	d := gbitset.New(1 << 16)
	benchmarkRandomSet(b, func(bitIdx int) { _, _ = d.Set(bitIdx) })
}

func Benchmark_WillfSet(b *testing.B) {
	ref := bitset.New(1 << 16)
	benchmarkRandomSet(b, func(bitIdx int) { ref.Set(uint(bitIdx)) })
}
