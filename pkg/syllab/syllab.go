// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package syllab defines the public interface for go-syllab, a sonority-based
// syllabifier for French word corpora.
package syllab

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/petar-djukic/go-syllab/internal/report"
	"github.com/petar-djukic/go-syllab/internal/stats"
	"github.com/petar-djukic/go-syllab/pkg/types"
)

// Error types for the Syllabifier API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrTableLoad     = errors.New("failed to load classification tables")
	ErrInputFailure  = errors.New("failed to read corpus")
)

// Config configures a Syllabifier instance.
type Config struct {
	Letters   string       // Orthographic table file (empty = embedded French table)
	Phonemes  string       // Phonetic table file (empty = embedded French table)
	Sonority  string       // Sonority scale file (empty = embedded default scale)
	Workers   int          // Concurrent words (default 1)
	TopN      int          // Rows per ranking (default 15)
	OnUnknown string       // "skip" (default) or "abort"
	Format    string       // Report format, "text" (default) or "yaml"
	Logger    *slog.Logger // nil discards log output
}

// Skip describes a word left out of the output.
type Skip struct {
	Line  int    // Corpus line number
	Word  string // Orthographic form
	Error string // Why the word failed
}

// Result holds the outcome of a Syllabifier call.
type Result struct {
	Records []types.WordRecord // Processed words, in input order
	Skipped []Skip             // Words dropped under the skip policy
	Words   int                // Words counted in the rankings
	Stats   bool               // True if rankings were computed

	stats  *stats.Result
	format report.Format
}

// Ranking returns the top shapes of one representation, or nil if no
// rankings were computed.
func (r *Result) Ranking(kind types.ShapeKind) []types.ShapeCount {
	if r.stats == nil {
		return nil
	}
	if rk := r.stats.Ranking(kind); rk != nil {
		return rk.Top
	}
	return nil
}

// Totals returns the syllable count and distinct shape count of one
// representation.
func (r *Result) Totals(kind types.ShapeKind) (total, distinct int) {
	if r.stats == nil {
		return 0, 0
	}
	if rk := r.stats.Ranking(kind); rk != nil {
		return rk.Total, rk.Distinct
	}
	return 0, 0
}

// WriteReport renders the rankings to w in the configured format.
func (r *Result) WriteReport(w io.Writer) error {
	if r.stats == nil {
		return errors.New("no rankings computed")
	}
	return report.Write(w, r.stats, r.format)
}

// Syllabifier processes corpora against one set of classification tables.
type Syllabifier interface {
	// Transcribe reads an input corpus ("word phonetic" per line) and writes
	// the six-field processed corpus to w.
	Transcribe(ctx context.Context, in io.Reader, out io.Writer) (*Result, error)

	// Stats reads a processed corpus and ranks its syllable shapes.
	Stats(ctx context.Context, in io.Reader) (*Result, error)

	// Run transcribes an input corpus to out and ranks the syllable shapes
	// of the words it wrote.
	Run(ctx context.Context, in io.Reader, out io.Writer) (*Result, error)

	// Symbols lists the table entries of one alphabet.
	Symbols(alphabet types.Alphabet) []types.Symbol
}
