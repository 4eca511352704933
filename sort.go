// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feruca

import "sort"

// Interface is the sort-integration contract named in spec.md §4.7: an
// ordered collection whose elements can be retrieved as strings for
// pairwise comparison, grounded on the teacher's collate/sort_test.go
// sorter type.
type Interface interface {
	sort.Interface
	// String returns the collatable representation of the element at i.
	String(i int) string
}

// listSorter adapts an Interface into a sort.Interface by calling Collate
// pairwise; it owns no scratch state of its own beyond what the Collator
// it wraps already owns, per spec.md §4.7.
type listSorter struct {
	c   *Collator
	lst Interface
}

func (s listSorter) Len() int      { return s.lst.Len() }
func (s listSorter) Swap(i, j int) { s.lst.Swap(i, j) }
func (s listSorter) Less(i, j int) bool {
	return s.c.Collate(s.lst.String(i), s.lst.String(j)) == Less
}

// Sort sorts lst in place using c's comparator, making c "suitable for use
// as a comparator in a general-purpose sort" per spec.md §1.
func (c *Collator) Sort(lst Interface) {
	sort.Stable(listSorter{c: c, lst: lst})
}

// stringSlice adapts a []string to Interface.
type stringSlice []string

func (s stringSlice) Len() int            { return len(s) }
func (s stringSlice) Swap(i, j int)       { s[i], s[j] = s[j], s[i] }
func (s stringSlice) String(i int) string { return s[i] }

// SortStrings is the common case of Sort: sorting a []string in place.
func (c *Collator) SortStrings(strs []string) {
	c.Sort(stringSlice(strs))
}
