// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCLDRIsCached(t *testing.T) {
	a := BuildCLDR()
	b := BuildCLDR()
	assert.Same(t, a, b)
	assert.Equal(t, "CLDR", a.Name)
}

func TestLetterOrderIsAlphabetic(t *testing.T) {
	tbl := BuildCLDR()
	aPrim := tbl.Weights['a'][0].Primary()
	bPrim := tbl.Weights['b'][0].Primary()
	zPrim := tbl.Weights['z'][0].Primary()
	assert.Less(t, aPrim, bPrim)
	assert.Less(t, bPrim, zPrim)
}

func TestCaseDiffersOnlyAtTertiary(t *testing.T) {
	tbl := BuildCLDR()
	lower := tbl.Weights['a'][0]
	upper := tbl.Weights['A'][0]
	assert.Equal(t, lower.Primary(), upper.Primary())
	assert.Equal(t, lower.Secondary(), upper.Secondary())
	assert.Less(t, lower.Tertiary(), upper.Tertiary())
}

func TestSharpSIsAnExpansion(t *testing.T) {
	tbl := BuildCLDR()
	ces, ok := tbl.Weights[0x00DF]
	require.True(t, ok)
	require.Len(t, ces, 2)
	sPrim, _ := LatinPrimary('s')
	assert.Equal(t, sPrim, ces[0].Primary())
	assert.Equal(t, sPrim, ces[1].Primary())
}

func TestCLDRHasSlovakChContractionDUCETDoesNot(t *testing.T) {
	cldr := BuildCLDR()
	entries, ok := cldr.Contractions['c']
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, []rune{'h'}, entries[0].Suffix)

	ducet := BuildDUCET()
	assert.Empty(t, ducet.Contractions)
}

func TestArabicSortsAfterLatin(t *testing.T) {
	tbl := BuildCLDR()
	zPrim := tbl.Weights['z'][0].Primary()
	alefPrim := tbl.Weights[ArabicLetters[0]][0].Primary()
	assert.Greater(t, alefPrim, zPrim)
}

func TestVariableWeightsBelowVariableTop(t *testing.T) {
	tbl := BuildCLDR()
	hyphen := tbl.Weights['-'][0]
	assert.True(t, tbl.IsVariable(hyphen.Primary()))

	letter := tbl.Weights['a'][0]
	assert.False(t, tbl.IsVariable(letter.Primary()))
}
