// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"sync"

	"github.com/theodore-s-beers/feruca/internal/colltab"
)

var ducetOnce sync.Once
var ducetTable *colltab.Table

// BuildDUCET returns the plain Default Unicode Collation Element Table
// variant: the same base letter, mark, digit, variable, and Arabic-letter
// weights as BuildCLDR, but without the Slovak "ch" contraction — that
// digraph treatment is a CLDR-root adjustment over DUCET, not part of
// DUCET itself (spec.md §3's Glossary: "CLDR root ... a variant of DUCET
// with adjustments judged more suitable"). Per spec.md §4.5, the Arabic
// tailorings are defined only over CLDR, so DUCET is otherwise just the
// untailored baseline.
func BuildDUCET() *colltab.Table {
	ducetOnce.Do(func() {
		t := &colltab.Table{
			Name:        "DUCET",
			Weights:     baseLetterEntries(nil),
			VariableTop: variableTop,
		}
		t.Finalize()
		ducetTable = t
	})
	return ducetTable
}
