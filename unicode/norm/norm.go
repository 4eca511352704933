// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm implements the normalization stage of the collation
// pipeline: canonical decomposition (NFD) and canonical reordering of
// combining marks by combining class.
//
// The teacher's own unicode/norm package is a general streaming Form
// (NFC/NFD/NFKC/NFKD) implementation built around a quick-span/reorder-
// buffer pair so it can normalize arbitrarily large byte streams with few
// allocations. This core only ever needs NFD over a single, already
// in-memory code point sequence (collation is not a streaming operation —
// see spec.md §1's non-goals), so it keeps the teacher's two ideas —
// decompose, then reorder a run of combining marks by CCC — and drops the
// streaming machinery around them.
package norm

// CCC returns the Canonical Combining Class of r. Starters (the vast
// majority of code points) have CCC 0.
func CCC(r rune) uint8 {
	return combiningClass[r]
}

// IsStarter reports whether r has CCC 0.
func IsStarter(r rune) bool {
	return CCC(r) == 0
}

// hasDecomposition reports whether r expands to more than one code point
// under canonical decomposition.
func hasDecomposition(r rune) bool {
	if r >= hangulSBase && r < hangulSBase+hangulSCount {
		return true
	}
	_, ok := decompositions[r]
	return ok
}

// decomposeHangul returns the jamo decomposition of a Hangul syllable, or
// nil if r is not in the syllable block.
func decomposeHangul(r rune) []rune {
	if r < hangulSBase || r >= hangulSBase+hangulSCount {
		return nil
	}
	sIndex := int(r) - hangulSBase
	l := hangulLBase + sIndex/hangulNCount
	v := hangulVBase + (sIndex%hangulNCount)/hangulTCount
	t := hangulTBase + sIndex%hangulTCount
	if t == hangulTBase {
		return []rune{rune(l), rune(v)}
	}
	return []rune{rune(l), rune(v), rune(t)}
}

// appendDecomposed appends the full (recursively applied) canonical
// decomposition of r to dst.
func appendDecomposed(dst []rune, r rune) []rune {
	if jamo := decomposeHangul(r); jamo != nil {
		return append(dst, jamo...)
	}
	if d, ok := decompositions[r]; ok {
		for _, c := range d {
			dst = appendDecomposed(dst, c)
		}
		return dst
	}
	return append(dst, r)
}

// reorder performs canonical ordering, in place, on s. It is a stable
// insertion sort by CCC; a starter (CCC 0) is never moved past, which is
// exactly the "maximal run of code points with CCC > 0" boundary rule in
// spec.md §4.2, so the run does not need to be located up front.
func reorder(s []rune) {
	for i := 1; i < len(s); i++ {
		cc := CCC(s[i])
		if cc == 0 {
			continue
		}
		j := i
		for j > 0 && CCC(s[j-1]) > cc {
			s[j-1], s[j] = s[j], s[j-1]
			j--
		}
	}
}

// NFD returns the fully decomposed, canonically ordered form of s.
func NFD(s []rune) []rune {
	return AppendNFD(make([]rune, 0, len(s)), s)
}

// AppendNFD appends NFD(s) to dst and returns the extended slice.
func AppendNFD(dst []rune, s []rune) []rune {
	start := len(dst)
	for _, r := range s {
		dst = appendDecomposed(dst, r)
	}
	reorder(dst[start:])
	return dst
}

// NFDString is a convenience wrapper for callers that start from a string.
func NFDString(s string) []rune {
	return NFD([]rune(s))
}

// IsNFD reports whether s is already in NFD form, i.e. normalizing it would
// be a no-op. The collation pipeline does not call it: buildKey always
// runs NFD, so there is no fast path that skips normalization.
func IsNFD(s []rune) bool {
	prevCCC := uint8(0)
	for _, r := range s {
		if hasDecomposition(r) {
			return false
		}
		cc := CCC(r)
		if cc == 0 {
			prevCCC = 0
			continue
		}
		if cc < prevCCC {
			return false
		}
		prevCCC = cc
	}
	return true
}
