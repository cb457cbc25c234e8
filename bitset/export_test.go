// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// BackingWords exposes the backing words of d to tests.
func BackingWords(d *Dense) []uintptr {
	return d.words
}
