// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// decompositions holds the canonical (single-step) decomposition for every
// precomposed code point this core recognizes. Applying it repeatedly
// (recursively, in case of runes whose decomposition is itself composed of
// more than one level — none of the entries below require more than one
// step, but the algorithm in norm.go does not assume that) yields the full
// canonical decomposition.
//
// This is a curated subset of the Unicode Character Database's
// UnicodeData.txt decomposition field — the Latin-1 Supplement and a sample
// of Latin Extended-A — not the full table. Packaging the complete
// decomposition data set is explicitly out of scope for this core (see
// spec.md §1); a production deployment would load the full table as an
// opaque blob the same way it loads the weight tables.
var decompositions = map[rune][]rune{
	0x00C0: {'A', 0x0300}, // À
	0x00C1: {'A', 0x0301}, // Á
	0x00C2: {'A', 0x0302}, // Â
	0x00C3: {'A', 0x0303}, // Ã
	0x00C4: {'A', 0x0308}, // Ä
	0x00C5: {'A', 0x030A}, // Å
	0x00C7: {'C', 0x0327}, // Ç
	0x00C8: {'E', 0x0300}, // È
	0x00C9: {'E', 0x0301}, // É
	0x00CA: {'E', 0x0302}, // Ê
	0x00CB: {'E', 0x0308}, // Ë
	0x00CC: {'I', 0x0300}, // Ì
	0x00CD: {'I', 0x0301}, // Í
	0x00CE: {'I', 0x0302}, // Î
	0x00CF: {'I', 0x0308}, // Ï
	0x00D1: {'N', 0x0303}, // Ñ
	0x00D2: {'O', 0x0300}, // Ò
	0x00D3: {'O', 0x0301}, // Ó
	0x00D4: {'O', 0x0302}, // Ô
	0x00D5: {'O', 0x0303}, // Õ
	0x00D6: {'O', 0x0308}, // Ö
	0x00D9: {'U', 0x0300}, // Ù
	0x00DA: {'U', 0x0301}, // Ú
	0x00DB: {'U', 0x0302}, // Û
	0x00DC: {'U', 0x0308}, // Ü
	0x00DD: {'Y', 0x0301}, // Ý

	0x00E0: {'a', 0x0300}, // à
	0x00E1: {'a', 0x0301}, // á
	0x00E2: {'a', 0x0302}, // â
	0x00E3: {'a', 0x0303}, // ã
	0x00E4: {'a', 0x0308}, // ä
	0x00E5: {'a', 0x030A}, // å
	0x00E7: {'c', 0x0327}, // ç
	0x00E8: {'e', 0x0300}, // è
	0x00E9: {'e', 0x0301}, // é
	0x00EA: {'e', 0x0302}, // ê
	0x00EB: {'e', 0x0308}, // ë
	0x00EC: {'i', 0x0300}, // ì
	0x00ED: {'i', 0x0301}, // í
	0x00EE: {'i', 0x0302}, // î
	0x00EF: {'i', 0x0308}, // ï
	0x00F1: {'n', 0x0303}, // ñ
	0x00F2: {'o', 0x0300}, // ò
	0x00F3: {'o', 0x0301}, // ó
	0x00F4: {'o', 0x0302}, // ô
	0x00F5: {'o', 0x0303}, // õ
	0x00F6: {'o', 0x0308}, // ö
	0x00F9: {'u', 0x0300}, // ù
	0x00FA: {'u', 0x0301}, // ú
	0x00FB: {'u', 0x0302}, // û
	0x00FC: {'u', 0x0308}, // ü
	0x00FD: {'y', 0x0301}, // ý
	0x00FF: {'y', 0x0308}, // ÿ

	// Latin Extended-A, sampled: A/a with macron and the Czech/Slovak
	// caron letters.
	0x0100: {'A', 0x0304}, // Ā
	0x0101: {'a', 0x0304}, // ā
	0x010C: {'C', 0x030C}, // Č
	0x010D: {'c', 0x030C}, // č
	0x0147: {'N', 0x030C}, // Ň
	0x0148: {'n', 0x030C}, // ň
	0x0158: {'R', 0x030C}, // Ř
	0x0159: {'r', 0x030C}, // ř
	0x0160: {'S', 0x030C}, // Š
	0x0161: {'s', 0x030C}, // š
	0x017D: {'Z', 0x030C}, // Ž
	0x017E: {'z', 0x030C}, // ž
}

// combiningClass gives the canonical combining class for combining marks
// this core recognizes. Any rune absent from this map is treated as CCC 0
// (a starter), which is correct for the overwhelming majority of Unicode.
var combiningClass = map[rune]uint8{
	0x0300: 230, // COMBINING GRAVE ACCENT
	0x0301: 230, // COMBINING ACUTE ACCENT
	0x0302: 230, // COMBINING CIRCUMFLEX ACCENT
	0x0303: 230, // COMBINING TILDE
	0x0304: 230, // COMBINING MACRON
	0x0306: 230, // COMBINING BREVE
	0x0307: 230, // COMBINING DOT ABOVE
	0x0308: 230, // COMBINING DIAERESIS
	0x030A: 230, // COMBINING RING ABOVE
	0x030B: 230, // COMBINING DOUBLE ACUTE ACCENT
	0x030C: 230, // COMBINING CARON
	0x0327: 202, // COMBINING CEDILLA
	0x0328: 202, // COMBINING OGONEK
	0x0323: 220, // COMBINING DOT BELOW
	0x0324: 220, // COMBINING DIAERESIS BELOW
	0x0325: 220, // COMBINING RING BELOW
	0x032D: 220, // COMBINING CIRCUMFLEX ACCENT BELOW
	0x0333: 220, // COMBINING DOUBLE LOW LINE
	0x093C: 7,   // DEVANAGARI SIGN NUKTA
}

// Hangul algorithmic decomposition constants, per the formula in UTS #10 /
// UAX #15, used to generate the decomposition up front instead of inline
// during lookup.
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)
