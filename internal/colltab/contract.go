// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import "github.com/theodore-s-beers/feruca/unicode/norm"

// matchResult describes a contraction match found by matchContraction.
type matchResult struct {
	elems      []Elem
	skipped    []rune // runes within the span that were NOT part of the match
	span       int    // number of runes after the starter consumed by this match
	contiguous bool
}

// matchContraction implements UTS #10 S2.1's contraction lookup, including
// the discontiguous-match rule, for the contraction rooted at dec[pos].
// Candidates are tried longest-suffix-first (per entries' stored order —
// see Table.finalize); for each candidate in turn, a contiguous match is
// tried before a discontiguous one, and the first candidate to match either
// way wins. This ordering matters: a longer candidate reachable only via a
// discontiguous match must still beat a shorter candidate that matches
// contiguously, per spec.md §4.3 step 3.
func matchContraction(dec []rune, pos int, entries []ContractionEntry) (matchResult, bool) {
	for _, e := range entries {
		if r, ok := matchContiguous(dec, pos, e); ok {
			return r, true
		}
		if r, ok := matchDiscontiguous(dec, pos, e); ok {
			return r, true
		}
	}
	return matchResult{}, false
}

func matchContiguous(dec []rune, pos int, e ContractionEntry) (matchResult, bool) {
	n := len(e.Suffix)
	if pos+1+n > len(dec) {
		return matchResult{}, false
	}
	for i, c := range e.Suffix {
		if dec[pos+1+i] != c {
			return matchResult{}, false
		}
	}
	return matchResult{elems: e.Elems, span: n, contiguous: true}, true
}

// matchDiscontiguous implements §4.3(b): the continuation may be matched
// across intervening combining marks that are "blocked from the base" —
// i.e. marks whose CCC is strictly lower than the CCC of the continuation
// element being sought, so they do not interact with it. Matching stops at
// the end of the maximal run of combining marks following the starter
// (a CCC-0 code point always ends the search), since a contraction can only
// reach into the combining marks attached to its own base.
func matchDiscontiguous(dec []rune, pos int, e ContractionEntry) (matchResult, bool) {
	if len(e.Suffix) == 0 {
		return matchResult{}, false
	}
	for _, c := range e.Suffix {
		if norm.CCC(c) == 0 {
			// A discontiguous match is only defined over combining marks;
			// a continuation containing a starter can never qualify.
			return matchResult{}, false
		}
	}
	runEnd := pos + 1
	for runEnd < len(dec) && norm.CCC(dec[runEnd]) != 0 {
		runEnd++
	}

	matchedAt := make([]int, 0, len(e.Suffix))
	contIdx := 0
	prevCCC, havePrev, prevMatched := uint8(0), false, false
	for k := pos + 1; k < runEnd && contIdx < len(e.Suffix); k++ {
		cc := norm.CCC(dec[k])
		isMatch := dec[k] == e.Suffix[contIdx]

		// Condition (iv): two consecutive code points in the window may not
		// share a CCC unless both belong to the match itself.
		if havePrev && cc == prevCCC && !(isMatch && prevMatched) {
			return matchResult{}, false
		}

		if isMatch {
			matchedAt = append(matchedAt, k)
			contIdx++
			prevCCC, havePrev, prevMatched = cc, true, true
			continue
		}
		// Condition (iii): any mark skipped while hunting for the next
		// continuation element — including before the first one is found —
		// must be strictly lower in CCC than that element, or it blocks the
		// base from combining with it and the candidate fails.
		if cc >= norm.CCC(e.Suffix[contIdx]) {
			return matchResult{}, false
		}
		prevCCC, havePrev, prevMatched = cc, true, false
	}
	if contIdx != len(e.Suffix) {
		return matchResult{}, false
	}

	last := matchedAt[len(matchedAt)-1]
	skipped := make([]rune, 0, last-pos-len(matchedAt))
	mi := 0
	for k := pos + 1; k <= last; k++ {
		if mi < len(matchedAt) && k == matchedAt[mi] {
			mi++
			continue
		}
		skipped = append(skipped, dec[k])
	}
	return matchResult{
		elems:   e.Elems,
		skipped: skipped,
		span:    last - pos,
	}, true
}
