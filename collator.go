// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feruca implements the core comparison pipeline of the Unicode
// Collation Algorithm (UTS #10), current to Unicode 16 / CLDR 46.1, per
// spec.md: input cleansing, NFD decomposition and canonical reordering,
// collation-element generation (including contractions), multi-level
// sort-key construction, locale tailoring, and level-by-level comparison
// with a byte-value tiebreaker.
package feruca

import (
	"bytes"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theodore-s-beers/feruca/internal/colltab"
	"github.com/theodore-s-beers/feruca/internal/key"
	"github.com/theodore-s-beers/feruca/internal/table"
	"github.com/theodore-s-beers/feruca/internal/tailor"
	"github.com/theodore-s-beers/feruca/unicode/norm"
)

// Collator is a stateful handle owning an Options record and reusable
// scratch buffers, per spec.md §3/§5. It is NOT safe for concurrent use by
// multiple goroutines; callers wanting parallel sorts construct one
// Collator per goroutine. Sequential reuse of a single Collator produces
// identical results to constructing a fresh one for every call — every
// Collate starts from a clean logical state, even though the decoded rune
// slices are reused for their backing arrays.
type Collator struct {
	Opts Options
	id   uuid.UUID
	log  *zap.Logger

	table *colltab.Table

	// decA and decB are scratch buffers, reused across calls purely for
	// allocation amortization (spec.md §5: "a performance contract, not a
	// correctness one"). keyA and keyB hold the most recent pair of keys;
	// they are not reused, since every call replaces them with freshly
	// built keys, and the normalized sequence and CE list are likewise
	// allocated anew per call.
	decA, decB []rune
	keyA, keyB []byte
}

// New constructs a Collator from opts. opts is assumed already valid
// (either the zero value, DefaultOptions(), or the result of NewOptions/
// LoadOptions, all of which validate the DUCET+tailoring combination); New
// itself does not re-validate, since spec.md §7 places that check at
// options-construction time, not at Collator construction.
func New(opts Options) *Collator {
	c := &Collator{
		Opts: opts,
		id:   uuid.New(),
		log:  zap.NewNop(),
	}
	c.loadTable()
	return c
}

// SetLogger attaches a structured logger and logs c's configuration to it.
// Nothing else logs through it: the table is loaded by New, before any
// logger can be attached, so New's table-load line goes to the no-op
// logger, and Collate never logs, preserving the "total, I/O-free per
// call" contract of spec.md §5/§7. A nil logger is treated as a no-op
// logger.
func (c *Collator) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.log = l
	c.log.Debug("collator configured",
		zap.String("id", c.id.String()),
		zap.String("table", c.Opts.Table.String()),
		zap.String("shifting", c.Opts.Shifting.String()),
		zap.String("tailoring", c.Opts.Tailoring.String()),
		zap.Bool("tiebreaker", c.Opts.Tiebreaker),
	)
}

func (c *Collator) loadTable() {
	switch c.Opts.Table {
	case DUCET:
		c.table = table.BuildDUCET()
	default:
		c.table = table.BuildCLDR()
	}
	c.log.Debug("loaded weight table",
		zap.String("id", c.id.String()),
		zap.String("table", c.table.Name),
		zap.String("entries", humanize.Comma(int64(len(c.table.Weights)))),
	)
}

// shifting translates Options.Shifting into the internal key package's
// enum.
func (c *Collator) shifting() key.Shifting {
	if c.Opts.Shifting == NonIgnorable {
		return key.NonIgnorable
	}
	return key.Shifted
}

// tailoringKind translates Options.Tailoring into the internal tailor
// package's enum.
func (c *Collator) tailoringKind() tailor.Kind {
	switch c.Opts.Tailoring {
	case ArabicScriptFirst:
		return tailor.ArabicScriptFirst
	case ArabicInterleavedWithLatin:
		return tailor.ArabicInterleavedWithLatin
	default:
		return tailor.None
	}
}

// buildKey runs stages 2-4 of the pipeline (normalize, generate CEs,
// tailor, build key) over dec.
func (c *Collator) buildKey(dec []rune) []byte {
	decomposed := norm.NFD(dec)
	ces := colltab.Generate(decomposed, c.table)
	ces = tailor.Rewrite(ces, c.tailoringKind())
	return key.Build(ces, c.table.VariableTop, c.shifting())
}

// Collate runs the full five-stage pipeline over a and b and returns their
// order, per spec.md §4.6. It is the primary entry point named in spec.md
// §6.
func (c *Collator) Collate(a, b string) Ordering {
	c.decA = decodeString(c.decA[:0], a)
	c.decB = decodeString(c.decB[:0], b)
	return c.collate([]byte(a), []byte(b))
}

// CollateBytes is the []byte counterpart of Collate, for callers who have
// not (or cannot) decode their input into a string first.
func (c *Collator) CollateBytes(a, b []byte) Ordering {
	c.decA = decodeBytes(c.decA[:0], a)
	c.decB = decodeBytes(c.decB[:0], b)
	return c.collate(a, b)
}

// CompareString is an alias for Collate matching the naming convention the
// teacher's own collate package uses for its comparison entry point.
func (c *Collator) CompareString(a, b string) Ordering {
	return c.Collate(a, b)
}

func (c *Collator) collate(rawA, rawB []byte) Ordering {
	c.keyA = c.buildKey(c.decA)
	c.keyB = c.buildKey(c.decB)

	if cmp := bytes.Compare(c.keyA, c.keyB); cmp != 0 {
		return fromCompare(cmp)
	}
	if c.Opts.Tiebreaker {
		// Per spec.md §9's Open Question, the tiebreaker deliberately
		// compares the ORIGINAL input bytes, not the normalized sequence:
		// two byte-distinct strings that normalize identically may still
		// receive a non-Equal tiebreaker result. This is preserved as
		// specified.
		return fromCompare(bytes.Compare(rawA, rawB))
	}
	return Equal
}

// Key returns the sort key feruca would build for s under c's Options —
// useful for callers embedding the key in an external index rather than
// calling Collate directly (mirroring the teacher's own
// KeyFromString/Buffer-based entry point, simplified since this core keeps
// no cross-call buffer pool beyond the Collator itself).
func (c *Collator) Key(s string) []byte {
	return c.buildKey(decodeString(nil, s))
}
