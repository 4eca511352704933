// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

// Implicit weights give every code point absent from a WeightTable a
// deterministic, total-order-respecting primary weight, per UTS #10
// §10.1.3. A code point C in block B is represented, as in the DUCET
// itself, by a pair of collation elements:
//
//	[.BASE(B)+(C>>15) . 0020 . 0002 .][.( C&7FFF )|8000 . 0000 . 0000 .]
//
// where BASE(B) is a base primary assigned per block class. The high part
// carries the default secondary/tertiary weights so an implicit rune still
// sorts as a (lowercase, uncased) letter relative to explicit entries at
// those levels; the low part carries none, since it exists purely to make
// the pair unique per code point.
//
// Block bases are chosen in the same relative order as real UCA: assigned
// CJK ideographs (common, then compatibility) sort before the rarer
// historical scripts, which in turn sort before code points with no block
// classification at all ("unassigned").
const (
	baseHanUnified      = 0xFB40
	baseHanCompat       = 0xFB80
	baseTangut          = 0xFBC0
	baseNushu           = 0xFC00
	baseKhitan          = 0xFC40
	baseUnassigned      = 0xFFC0
	implicitLowSentinel = 0x8000
)

// blockBase classifies r into one of the implicit-weight blocks and returns
// its base primary.
func blockBase(r rune) int {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF, r >= 0x3400 && r <= 0x4DBF,
		r >= 0x20000 && r <= 0x2A6DF, r >= 0x2A700 && r <= 0x2EBEF:
		return baseHanUnified
	case r >= 0xF900 && r <= 0xFAFF, r >= 0x2F800 && r <= 0x2FA1F:
		return baseHanCompat
	case r >= 0x17000 && r <= 0x187FF, r >= 0x18D00 && r <= 0x18D8F:
		return baseTangut
	case r >= 0x1B170 && r <= 0x1B2FF:
		return baseNushu
	case r >= 0x18B00 && r <= 0x18CFF:
		return baseKhitan
	default:
		return baseUnassigned
	}
}

// ImplicitWeight computes the collation elements for a code point that is
// absent from the active WeightTable.
func ImplicitWeight(r rune) []Elem {
	base := blockBase(r)
	hi := base + int(uint32(r)>>15)
	lo := (int(r) & 0x7FFF) | implicitLowSentinel

	ce1, _ := MakeElem(hi, DefaultSecondary, DefaultTertiary)
	ce2, _ := MakeElem(lo, 0, 0)
	return []Elem{ce1, ce2}
}
