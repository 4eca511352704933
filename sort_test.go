// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feruca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortStrings(t *testing.T) {
	c := New(DefaultOptions())
	strs := []string{"bcd", "abc", "ddd"}
	c.SortStrings(strs)
	assert.Equal(t, []string{"abc", "bcd", "ddd"}, strs)
}

// record is a minimal Interface implementation over a non-string
// collection, exercising Sort directly rather than through SortStrings.
type record struct{ key, payload string }

type records []record

func (r records) Len() int            { return len(r) }
func (r records) Swap(i, j int)       { r[i], r[j] = r[j], r[i] }
func (r records) String(i int) string { return r[i].key }

func TestSortArbitraryCollection(t *testing.T) {
	c := New(DefaultOptions())
	recs := records{
		{"bcd", "second"},
		{"abc", "first"},
		{"ddd", "third"},
	}
	c.Sort(recs)
	assert.Equal(t, "first", recs[0].payload)
	assert.Equal(t, "second", recs[1].payload)
	assert.Equal(t, "third", recs[2].payload)
}
