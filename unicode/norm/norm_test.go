// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFDPrecomposed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []rune
	}{
		{"acute e", "é", []rune{'e', 0x0301}},
		{"e acute already decomposed", "é", []rune{'e', 0x0301}},
		{"diaeresis o", "ö", []rune{'o', 0x0308}},
		{"plain ascii", "melissa", []rune("melissa")},
		{"empty", "", []rune{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NFDString(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNFDHangul(t *testing.T) {
	// 가 (U+AC00) is the first Hangul syllable: L=0x1100, V=0x1161, no T.
	got := NFDString("가")
	require.Len(t, got, 2)
	assert.Equal(t, rune(0x1100), got[0])
	assert.Equal(t, rune(0x1161), got[1])
}

func TestReorderStableByCCC(t *testing.T) {
	// Two marks with the same CCC must retain their relative order: CCC
	// ordering is stable, not a total order on its own.
	same := []rune{'a', 0x0308, 0x0301} // diaeresis (230) then acute (230)
	reorder(same)
	assert.Equal(t, []rune{'a', 0x0308, 0x0301}, same)

	s := []rune{'a', 0x0327, 0x0301} // cedilla (202) then acute (230)
	reorder(s)
	assert.Equal(t, []rune{'a', 0x0327, 0x0301}, s)

	s2 := []rune{'a', 0x0301, 0x0327} // acute (230) then cedilla (202): must swap
	reorder(s2)
	assert.Equal(t, []rune{'a', 0x0327, 0x0301}, s2)
}

func TestIsNFD(t *testing.T) {
	assert.True(t, IsNFD([]rune("melissa")))
	assert.True(t, IsNFD([]rune{'e', 0x0301}))
	assert.False(t, IsNFD([]rune("é")))
}
