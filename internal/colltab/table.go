// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import "sort"

// ContractionEntry maps the continuation of runes that follow a contraction
// starter to the collation elements for the whole contraction.
type ContractionEntry struct {
	Suffix []rune
	Elems  []Elem
}

// Table holds all collation data for a given table variant (DUCET or the
// CLDR root collation). It is built once, at package init or on first use,
// and is read-only thereafter: any number of goroutines may look entries up
// concurrently.
type Table struct {
	// Name identifies the variant, e.g. "DUCET" or "CLDR".
	Name string

	// Weights maps a single code point to its collation elements. Most
	// entries have exactly one Elem; a handful (expansions) have more.
	Weights map[rune][]Elem

	// Contractions maps a starter code point to the contractions rooted at
	// it, sorted by descending suffix length so the longest-match rule in
	// UTS #10 S2.1 can be implemented by a linear scan.
	Contractions map[rune][]ContractionEntry

	// MaxContractionLen is the length, in runes, of the longest contraction
	// suffix in the table (the starter itself is not counted).
	MaxContractionLen int

	// VariableTop is the largest primary weight considered variable. A
	// non-zero primary weight p is variable iff p <= VariableTop.
	VariableTop uint32
}

// AddContraction registers a contraction starting at the given runes. It is
// meant to be called while a table is being assembled, before Finalize.
func (t *Table) AddContraction(runes []rune, elems []Elem) {
	if t.Contractions == nil {
		t.Contractions = make(map[rune][]ContractionEntry)
	}
	starter := runes[0]
	suffix := append([]rune(nil), runes[1:]...)
	t.Contractions[starter] = append(t.Contractions[starter], ContractionEntry{
		Suffix: suffix,
		Elems:  elems,
	})
	if len(suffix) > t.MaxContractionLen {
		t.MaxContractionLen = len(suffix)
	}
}

// addContraction is the unexported alias used by this package's own tests,
// which build tables without going through the table package.
func (t *Table) addContraction(runes []rune, elems []Elem) { t.AddContraction(runes, elems) }

// Finalize sorts each starter's contraction list by descending suffix
// length, so that lookup can select the longest match by taking the first
// entry that fits. Must be called once after all contractions have been
// added and before the table is used for lookups.
func (t *Table) Finalize() {
	for _, entries := range t.Contractions {
		sort.SliceStable(entries, func(i, j int) bool {
			return len(entries[i].Suffix) > len(entries[j].Suffix)
		})
	}
}

// finalize is the unexported alias used by this package's own tests.
func (t *Table) finalize() { t.Finalize() }

// lookup returns the collation elements registered for a single code point,
// and whether it was found at all (as opposed to being absent from the
// table, which leaves weight assignment to the implicit-weight rule).
func (t *Table) lookup(r rune) ([]Elem, bool) {
	w, ok := t.Weights[r]
	return w, ok
}

// IsVariable reports whether a primary weight is variable under this
// table's VariableTop.
func (t *Table) IsVariable(primary int) bool {
	return primary != 0 && uint32(primary) <= t.VariableTop
}
