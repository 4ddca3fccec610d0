// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syllab

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/petar-djukic/go-syllab/internal/corpus"
	"github.com/petar-djukic/go-syllab/internal/pipeline"
	"github.com/petar-djukic/go-syllab/internal/report"
	"github.com/petar-djukic/go-syllab/internal/stats"
	"github.com/petar-djukic/go-syllab/internal/table"
	"github.com/petar-djukic/go-syllab/pkg/types"
)

const (
	defaultWorkers = 1
	defaultTopN    = 15
)

// New validates the config, loads the classification tables and returns a
// ready-to-use Syllabifier. Corpora are only read by its methods.
func New(cfg Config) (Syllabifier, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	tbl, err := table.LoadFiles(table.Paths{
		Letters:  cfg.Letters,
		Phonemes: cfg.Phonemes,
		Scale:    cfg.Sonority,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTableLoad, err)
	}

	// Both were checked by validateConfig.
	policy, _ := pipeline.ParsePolicy(cfg.OnUnknown)
	format, _ := report.ParseFormat(cfg.Format)

	cfg.Logger.Debug("tables loaded",
		slog.Int("letters", tbl.Len(types.Orthographic)),
		slog.Int("phonemes", tbl.Len(types.Phonetic)),
	)

	return &syllabifier{
		table: tbl,
		runner: pipeline.NewRunner(pipeline.Deps{
			Table:   tbl,
			Workers: cfg.Workers,
			Policy:  policy,
			Logger:  cfg.Logger,
		}),
		analyzer: &stats.Analyzer{TopN: cfg.TopN, Workers: cfg.Workers},
		format:   format,
		logger:   cfg.Logger,
	}, nil
}

// syllabifier adapts the internal pipeline and analyzer to the public
// Syllabifier interface.
type syllabifier struct {
	table    *table.Table
	runner   *pipeline.Runner
	analyzer *stats.Analyzer
	format   report.Format
	logger   *slog.Logger
}

func (s *syllabifier) Transcribe(ctx context.Context, in io.Reader, out io.Writer) (*Result, error) {
	entries, err := corpus.Read(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputFailure, err)
	}

	run, err := s.runner.Run(ctx, entries)
	if err != nil {
		return nil, err
	}
	if err := corpus.Write(out, run.Records); err != nil {
		return nil, fmt.Errorf("writing corpus: %w", err)
	}
	return s.result(run), nil
}

func (s *syllabifier) Stats(ctx context.Context, in io.Reader) (*Result, error) {
	entries, err := corpus.ReadProcessed(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputFailure, err)
	}

	run, err := s.runner.Rebuild(ctx, entries)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, s.result(run))
}

func (s *syllabifier) Run(ctx context.Context, in io.Reader, out io.Writer) (*Result, error) {
	res, err := s.Transcribe(ctx, in, out)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, res)
}

func (s *syllabifier) Symbols(alphabet types.Alphabet) []types.Symbol {
	return s.table.Symbols(alphabet)
}

func (s *syllabifier) result(run *pipeline.RunResult) *Result {
	res := &Result{Records: run.Records, format: s.format}
	for _, f := range run.Skipped {
		res.Skipped = append(res.Skipped, Skip{Line: f.Line, Word: f.Word, Error: f.Err.Error()})
	}
	return res
}

func (s *syllabifier) analyze(ctx context.Context, res *Result) (*Result, error) {
	sr, err := s.analyzer.Analyze(ctx, res.Records)
	if err != nil {
		return nil, err
	}
	res.stats = sr
	res.Words = sr.Words
	res.Stats = true

	s.logger.Info("syllable shapes ranked",
		slog.Int("words", sr.Words),
		slog.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

// validateConfig checks numeric bounds and option names.
func validateConfig(cfg Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("Workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.TopN < 0 {
		return fmt.Errorf("TopN must not be negative, got %d", cfg.TopN)
	}
	if _, err := pipeline.ParsePolicy(cfg.OnUnknown); err != nil {
		return fmt.Errorf("OnUnknown: %w", err)
	}
	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("Format: %w", err)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.TopN == 0 {
		cfg.TopN = defaultTopN
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}
