// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feruca

import "unicode/utf8"

// decodeBytes implements the input-decoder collaborator interface of
// spec.md §4.1: it turns an arbitrary byte slice into a code point
// sequence, replacing every ill-formed UTF-8 unit with U+FFFD under the
// maximal-subpart substitution rule. unicode/utf8's DecodeRune already
// implements exactly that rule (including surrogate scalar values, which
// are not valid UTF-8 and so decode as the error rune) — this reaches for
// the standard library instead of a pack dependency, because decoding is explicitly the input decoder's job
// (spec.md §1's "out of scope as external collaborator"), not a domain
// concern any example repo's third-party stack addresses, and no ecosystem
// library does this more correctly than the standard library's own
// UTF-8 decoder.
func decodeBytes(dst []rune, b []byte) []rune {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		dst = append(dst, r)
		b = b[size:]
	}
	return dst
}

// decodeString is the string-input counterpart of decodeBytes. A validated
// Go string can still carry a byte sequence that utf8 considers
// ill-formed (e.g. one assembled with unsafe conversions), so the same
// replacement rule applies.
func decodeString(dst []rune, s string) []rune {
	for _, r := range s {
		dst = append(dst, r)
	}
	return dst
}
