// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colltab holds the low-level representation of collation elements,
// the weight table, contraction matching and collation-element generation
// used by the feruca package.
package colltab

import "fmt"

// Level identifies a collation comparison level. The primary level
// corresponds to the basic sorting of text, secondary to accents, tertiary
// to case and related concepts, and quaternary is derived from the other
// levels by the variable-weighting strategy.
type Level int

const (
	Primary Level = iota
	Secondary
	Tertiary
	Quaternary

	NumLevels
)

// Default weights assigned to collation elements that do not carry an
// explicit secondary or tertiary weight of their own (e.g. a plain letter
// without diacritics or case distinction).
const (
	DefaultSecondary = 0x0020
	DefaultTertiary  = 0x0002
)

// Elem is a single collation element: a triple of 16-bit weights. The
// combining-class bookkeeping discontiguous-contraction matching needs is
// tracked by the generator directly off the decomposed rune sequence (see
// contract.go's use of norm.CCC), not carried on Elem itself: a CE can
// outlive the single code point it came from (a contraction spans several),
// so there is no one CCC that would always be the right one to attach here.
//
// Unlike the teacher's bit-packed encoding (which exists to keep static
// DUCET tables small), Elem here is a plain struct: packaging the data
// tables compactly is explicitly out of scope for this core, so there is
// nothing to trade the clarity of a struct away for.
type Elem struct {
	primary   uint16
	secondary uint16
	tertiary  uint16
}

// Ignore is the completely-ignorable collation element.
var Ignore = Elem{}

// MakeElem returns an Elem for the given weights. It returns an error if any
// weight overflows its 16-bit field.
func MakeElem(primary, secondary, tertiary int) (Elem, error) {
	if primary < 0 || primary > 0xFFFF {
		return Elem{}, fmt.Errorf("colltab: primary weight out of bounds: %#x", primary)
	}
	if secondary < 0 || secondary > 0xFFFF {
		return Elem{}, fmt.Errorf("colltab: secondary weight out of bounds: %#x", secondary)
	}
	if tertiary < 0 || tertiary > 0xFFFF {
		return Elem{}, fmt.Errorf("colltab: tertiary weight out of bounds: %#x", tertiary)
	}
	return Elem{
		primary:   uint16(primary),
		secondary: uint16(secondary),
		tertiary:  uint16(tertiary),
	}, nil
}

// Primary returns the primary collation weight.
func (e Elem) Primary() int { return int(e.primary) }

// Secondary returns the secondary collation weight.
func (e Elem) Secondary() int { return int(e.secondary) }

// Tertiary returns the tertiary collation weight.
func (e Elem) Tertiary() int { return int(e.tertiary) }

// PrimaryIgnorable reports whether e contributes nothing at the primary
// level.
func (e Elem) PrimaryIgnorable() bool { return e.primary == 0 }

// Ignorable reports whether e is completely ignorable: it contributes
// nothing at any level.
func (e Elem) Ignorable() bool {
	return e.primary == 0 && e.secondary == 0 && e.tertiary == 0
}
