// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key implements the sort-key builder, stage 4 of the collation
// pipeline (spec.md §4.4): it reduces a collation-element sequence into
// three or four level-byte streams and concatenates them with a
// two-byte-zero separator.
package key

import (
	"encoding/binary"

	"github.com/theodore-s-beers/feruca/internal/colltab"
)

// Shifting selects the variable-weight strategy of spec.md §4.4.
type Shifting int

const (
	// NonIgnorable treats variable CEs like any other; there is no
	// quaternary level.
	NonIgnorable Shifting = iota
	// Shifted moves variable CEs' contribution to a quaternary level.
	Shifted
)

const sep = 0 // the 16-bit zero level separator

// Build reduces ces into the concatenated, level-separated sort key
// described by spec.md §4.4's table. variableTop classifies a CE as
// "variable": non-zero primary at or below variableTop.
func Build(ces []colltab.Elem, variableTop uint32, shifting Shifting) []byte {
	var l1, l2, l3, l4 []byte
	afterVariable := false

	appendWeight := func(dst []byte, w int) []byte {
		if w == 0 {
			return dst
		}
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], uint16(w))
		return append(dst, buf[:]...)
	}

	isVariable := func(e colltab.Elem) bool {
		p := e.Primary()
		return p != 0 && uint32(p) <= variableTop
	}

	for _, e := range ces {
		switch {
		case e.Ignorable():
			// Completely ignorable: contributes nothing at any level, and
			// does not disturb the after-variable state (spec.md §4.4).
			continue

		case isVariable(e):
			afterVariable = true
			if shifting == Shifted {
				l4 = appendWeight(l4, e.Primary())
				continue
			}
			l1 = appendWeight(l1, e.Primary())
			l2 = appendWeight(l2, e.Secondary())
			l3 = appendWeight(l3, e.Tertiary())

		case e.PrimaryIgnorable() && afterVariable:
			// A primary-ignorable CE (e.g. a combining mark) immediately
			// following a variable one inherits its suppression under
			// Shifted, rather than contributing an "accent on punctuation"
			// byte that would outlive the variable's own suppression.
			if shifting == Shifted {
				// Suppressed: contributes nothing to any level, same as
				// an omitted zero weight would.
				continue
			}
			l2 = appendWeight(l2, e.Secondary())
			l3 = appendWeight(l3, e.Tertiary())

		default:
			afterVariable = false
			l1 = appendWeight(l1, e.Primary())
			l2 = appendWeight(l2, e.Secondary())
			l3 = appendWeight(l3, e.Tertiary())
			if shifting == Shifted {
				l4 = appendWeight(l4, 0xFFFF)
			}
		}
	}

	out := make([]byte, 0, len(l1)+len(l2)+len(l3)+len(l4)+8)
	out = append(out, l1...)
	out = append(out, sep, sep)
	out = append(out, l2...)
	out = append(out, sep, sep)
	out = append(out, l3...)
	if shifting == Shifted {
		out = append(out, sep, sep)
		out = append(out, l4...)
	}
	return out
}
