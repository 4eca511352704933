// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feruca

// Ordering is the result of a comparison: one of Less, Equal, or Greater,
// per spec.md §1's "returns one of {LESS, EQUAL, GREATER}".
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// fromCompare converts the sign of a three-way byte comparison (as
// returned by bytes.Compare) into an Ordering.
func fromCompare(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
