// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feruca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeStringASCII(t *testing.T) {
	got := decodeString(nil, "abc")
	assert.Equal(t, []rune{'a', 'b', 'c'}, got)
}

func TestDecodeBytesReplacesIllFormed(t *testing.T) {
	// 0xFF is never valid in UTF-8 at any position.
	got := decodeBytes(nil, []byte{'a', 0xFF, 'b'})
	assert.Equal(t, []rune{'a', 0xFFFD, 'b'}, got)
}

func TestDecodeBytesReplacesOverlongEncoding(t *testing.T) {
	// 0xC0 0x80 is an overlong (invalid) encoding of NUL. 0xC0 can never
	// start a valid UTF-8 sequence, so under the maximal-subpart rule each
	// byte is its own ill-formed subpart and replaced independently.
	got := decodeBytes(nil, []byte{0xC0, 0x80})
	assert.Equal(t, []rune{0xFFFD, 0xFFFD}, got)
}

func TestDecodeAppendsIntoProvidedBuffer(t *testing.T) {
	dst := make([]rune, 0, 8)
	got := decodeString(dst, "hi")
	assert.Equal(t, []rune{'h', 'i'}, got)
}
