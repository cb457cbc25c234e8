// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bitsets/bitset"
)

var operators = map[string]func(d, other *bitset.Dense) error{
	"and":    (*bitset.Dense).AndInPlace,
	"or":     (*bitset.Dense).OrInPlace,
	"xor":    (*bitset.Dense).XorInPlace,
	"andnot": (*bitset.Dense).AndNotInPlace,
}

// eval evaluates the expression in args from left to right. Each operand is
// a set of nWord words, each holding the operand's literal.
func eval(args []string, nWord int) (*bitset.Dense, error) {
	result, rest, err := operand(args, nWord)
	if err != nil {
		return nil, err
	}
	for len(rest) > 0 {
		name := rest[0]
		op, ok := operators[name]
		if !ok {
			return nil, errors.E(errors.Invalid, "unknown operator", strconv.Quote(name))
		}
		var arg *bitset.Dense
		if arg, rest, err = operand(rest[1:], nWord); err != nil {
			return nil, errors.E("operand of", name, err)
		}
		if err := op(result, arg); err != nil {
			return nil, err
		}
		log.Debug.Printf("%s %s: %d bits set", name, arg, result.Count())
	}
	return result, nil
}

// operand parses one operand, with any number of "not" prefixes, from the
// front of args and returns it along with the remaining arguments.
func operand(args []string, nWord int) (*bitset.Dense, []string, error) {
	negate := false
	for len(args) > 0 && args[0] == "not" {
		negate = !negate
		args = args[1:]
	}
	if len(args) == 0 {
		return nil, nil, errors.E(errors.Invalid, "missing operand")
	}
	word, err := strconv.ParseUint(args[0], 0, bitset.BitsPerWord)
	if err != nil {
		return nil, nil, errors.E(errors.Invalid, "parsing operand", err)
	}
	d := bitset.NewFilled(nWord*bitset.BitsPerWord, uintptr(word))
	if negate {
		d.Not()
	}
	return d, args[1:], nil
}

// report writes the rendering, population count and words of d to w.
func report(w io.Writer, d *bitset.Dense) error {
	if _, err := d.WriteTo(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\ncount: %d\n", d.Count()); err != nil {
		return err
	}
	for i, word := range d.Words() {
		if _, err := fmt.Fprintf(w, "word %d: 0x%0*x\n", i, 2*bitset.BytesPerWord, word); err != nil {
			return err
		}
	}
	return nil
}
