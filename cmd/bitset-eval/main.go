// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/must"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bitset-eval: ")
	log.AddFlags()
	nWord := flag.Int("words", 1, "number of words in each operand; every word is set to the operand's literal")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: bitset-eval [-words N] [-log level] operand [op operand]...

Bitset-eval evaluates a bitset expression left to right and prints the
result, one character per bit starting with bit 0, followed by its
population count and its words. Operands are unsigned integer literals
(0b, 0o and 0x prefixes are accepted), optionally preceded by "not".
Operators are and, or, xor and andnot. For example:

	bitset-eval 0b1000110001 or 0b0010000100
`)
		os.Exit(2)
	}
	flag.Parse()
	must.True(*nWord > 0, "-words must be positive")
	if flag.NArg() == 0 {
		flag.Usage()
	}
	result, err := eval(flag.Args(), *nWord)
	if err != nil {
		log.Fatal(err)
	}
	must.Nil(report(os.Stdout, result), "writing result")
}
