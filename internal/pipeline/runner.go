// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/go-syllab/internal/corpus"
	"github.com/petar-djukic/go-syllab/internal/table"
	"github.com/petar-djukic/go-syllab/pkg/types"
)

// Policy decides what happens to a word that cannot be processed.
type Policy string

const (
	// PolicySkip drops the word from the output corpus and the tallies,
	// logs it and records it in RunResult.Skipped.
	PolicySkip Policy = "skip"
	// PolicyAbort stops the run at the first failing word in input order.
	PolicyAbort Policy = "abort"
)

// ParsePolicy validates a policy name. The empty string selects PolicySkip.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicySkip:
		return PolicySkip, nil
	case PolicyAbort:
		return PolicyAbort, nil
	default:
		return "", fmt.Errorf("unknown policy %q (want %q or %q)", s, PolicySkip, PolicyAbort)
	}
}

// Failure describes a word that was skipped.
type Failure struct {
	Line int    // Corpus line number
	Word string // Orthographic form
	Err  error  // Why processing failed
}

// RunResult holds the records of a run, in input order.
type RunResult struct {
	Records []types.WordRecord
	Skipped []Failure
}

// Deps holds injected dependencies for the runner.
type Deps struct {
	Table   *table.Table
	Workers int          // Concurrent words (default 1)
	Policy  Policy       // Failure policy (default PolicySkip)
	Logger  *slog.Logger // nil discards log output
}

// Runner processes whole corpora.
type Runner struct {
	deps Deps
	proc *Processor
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Workers < 1 {
		deps.Workers = 1
	}
	if deps.Policy == "" {
		deps.Policy = PolicySkip
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{deps: deps, proc: NewProcessor(deps.Table)}
}

// Run processes every input entry.
func (r *Runner) Run(ctx context.Context, entries []corpus.Entry) (*RunResult, error) {
	return r.each(ctx, len(entries),
		func(i int) (int, string) { return entries[i].Line, entries[i].Word },
		func(i int) (*types.WordRecord, error) {
			return r.proc.Process(entries[i].Word, entries[i].Phonetic)
		})
}

// Rebuild turns processed-corpus lines back into records.
func (r *Runner) Rebuild(ctx context.Context, entries []corpus.ProcessedEntry) (*RunResult, error) {
	return r.each(ctx, len(entries),
		func(i int) (int, string) { return entries[i].Line, entries[i].Word },
		func(i int) (*types.WordRecord, error) {
			return r.proc.FromProcessed(entries[i])
		})
}

// each evaluates build for indices [0, n) on the worker pool. Per-word
// failures are collected rather than returned from the goroutines, so the
// abort policy always reports the first failure in input order.
func (r *Runner) each(ctx context.Context, n int, describe func(int) (int, string), build func(int) (*types.WordRecord, error)) (*RunResult, error) {
	records := make([]*types.WordRecord, n)
	errs := make([]error, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.deps.Workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i], errs[i] = build(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &RunResult{Records: make([]types.WordRecord, 0, n)}
	syllables := 0
	for i := 0; i < n; i++ {
		if errs[i] == nil {
			result.Records = append(result.Records, *records[i])
			syllables += records[i].SyllableCount()
			continue
		}

		line, word := describe(i)
		if r.deps.Policy == PolicyAbort {
			return nil, fmt.Errorf("line %d (%s): %w", line, word, errs[i])
		}
		r.deps.Logger.Warn("skipping word",
			slog.Int("line", line),
			slog.String("word", word),
			slog.String("error", errs[i].Error()),
		)
		result.Skipped = append(result.Skipped, Failure{Line: line, Word: word, Err: errs[i]})
	}

	r.deps.Logger.Debug("corpus processed",
		slog.Int("words", len(result.Records)),
		slog.Int("syllables", syllables),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("workers", r.deps.Workers),
	)
	return result, nil
}
