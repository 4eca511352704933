// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// ArabicLetters lists the canonical Persian/Arabic alphabet in its
// conventional order, per spec.md's Glossary entry ("Arabic canonical
// letters (interleaved tailoring)"). It includes the four Persian additions
// to the 28-letter Arabic abjad (پ, چ, ژ, گ) in their usual position, since
// the interleaved tailoring (§4.5) is specified over exactly this set.
var ArabicLetters = []rune{
	0x0627, // ا alef
	0x0628, // ب beh
	0x067E, // پ peh
	0x062A, // ت teh
	0x062B, // ث theh
	0x062C, // ج jeem
	0x0686, // چ cheh
	0x062D, // ح hah
	0x062E, // خ khah
	0x062F, // د dal
	0x0630, // ذ thal
	0x0631, // ر reh
	0x0632, // ز zain
	0x0698, // ژ jeh
	0x0633, // س seen
	0x0634, // ش sheen
	0x0635, // ص sad
	0x0636, // ض dad
	0x0637, // ط tah
	0x0638, // ظ zah
	0x0639, // ع ain
	0x063A, // غ ghain
	0x0641, // ف feh
	0x0642, // ق qaf
	0x06A9, // ک kaf
	0x06AF, // گ gaf
	0x0644, // ل lam
	0x0645, // م meem
	0x0646, // ن noon
	0x0648, // و waw
	0x0647, // ه heh
	0x06CC, // ی yeh
}

// arabicPrimaryBase and arabicPrimaryStep assign each letter in
// ArabicLetters a primary weight, in order, within a block that sorts
// after every Latin primary assigned by latinPrimary below (real CLDR root
// order puts Arabic well after Latin). The step leaves room for the
// tailoring rewrites (§4.5) to shift by a sub-step amount without
// colliding with the next letter.
const (
	arabicPrimaryBase = 0x2000
	arabicPrimaryStep = 0x0010
)

// arabicPrimary holds the primary weight (arabicPrimaryBase plus the
// letter's 1-based position in ArabicLetters times arabicPrimaryStep) for
// every canonical Arabic letter, so ArabicPrimary and the tailoring rewrite
// can agree on ordering without recomputing a linear scan per lookup.
var arabicPrimary = func() map[rune]int {
	m := make(map[rune]int, len(ArabicLetters))
	for i, r := range ArabicLetters {
		m[r] = arabicPrimaryBase + (i+1)*arabicPrimaryStep
	}
	return m
}()

// ArabicPrimary returns the root-order primary weight for an Arabic letter,
// and whether r is one of the canonical letters at all.
func ArabicPrimary(r rune) (int, bool) {
	p, ok := arabicPrimary[r]
	return p, ok
}

// ArabicPrimaryRange reports the inclusive bounds of the primary range
// occupied by the canonical Arabic letters, for the ArabicScriptFirst
// tailoring's "falls in the Arabic-script primary range" test.
func ArabicPrimaryRange() (lo, hi int) {
	return arabicPrimaryBase + arabicPrimaryStep, arabicPrimaryBase + len(ArabicLetters)*arabicPrimaryStep
}

// latinLetters is the 26-letter basic Latin alphabet, in order, used both
// to assign Latin primaries (latinPrimary) and as the interleave target
// for ArabicInterleavedWithLatin.
var latinLetters = []rune("abcdefghijklmnopqrstuvwxyz")

const (
	latinPrimaryBase = 0x1000
	latinPrimaryStep = 0x0010
)

// latinPrimaryOf holds the primary weight assigned to each lowercase basic
// Latin letter; uppercase shares the same primary (case is a tertiary-level
// distinction per UCA) and non-letters are not part of this table.
var latinPrimaryOf = func() map[rune]int {
	m := make(map[rune]int, len(latinLetters))
	for i, r := range latinLetters {
		m[r] = latinPrimaryBase + (i+1)*latinPrimaryStep
	}
	return m
}()

// LatinPrimary returns the primary weight assigned to a basic Latin
// letter (case-folded), and whether r is one.
func LatinPrimary(r rune) (int, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	p, ok := latinPrimaryOf[r]
	return p, ok
}

// LatinLetters exposes latinLetters for the tailoring package's interleave
// computation.
func LatinLetters() []rune { return latinLetters }

// LatinLetterPrimaries returns the ordered list of primaries assigned to
// LatinLetters(), in the same order, for building the interleave slots.
func LatinLetterPrimaries() []int {
	out := make([]int, len(latinLetters))
	for i, r := range latinLetters {
		out[i] = latinPrimaryOf[r]
	}
	return out
}
