// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

// Generate walks a fully normalized (NFD, canonically ordered) code point
// sequence and produces the ordered collation element list for it, per
// spec.md §4.3: at each cursor position, prefer the longest contraction
// match (contiguous, then discontiguous) rooted there; fall back to a
// single-code-point table lookup; fall back to the implicit weight rule.
func Generate(dec []rune, table *Table) []Elem {
	// work is a private, mutable copy: a discontiguous contraction match
	// re-splices the combining marks it skipped back in immediately after
	// the cursor, so the underlying slice must be ours to rewrite.
	work := make([]rune, len(dec))
	copy(work, dec)

	var ces []Elem
	cursor := 0
	for cursor < len(work) {
		r := work[cursor]

		if entries, ok := table.Contractions[r]; ok {
			if m, ok := matchContraction(work, cursor, entries); ok {
				ces = append(ces, m.elems...)
				if m.contiguous {
					work = append(work[:cursor+1], work[cursor+1+m.span:]...)
					cursor++
				} else {
					tail := append([]rune{}, work[cursor+1+m.span:]...)
					work = append(work[:cursor+1], append(append([]rune{}, m.skipped...), tail...)...)
					cursor++
				}
				continue
			}
		}

		if elems, ok := table.lookup(r); ok {
			ces = append(ces, elems...)
			cursor++
			continue
		}

		ces = append(ces, ImplicitWeight(r)...)
		cursor++
	}
	return ces
}
