// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stats tallies syllable shapes over a processed corpus and ranks
// the most frequent ones under three representations: C/V string,
// macro-class string and raw phonetic constituents.
package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

const (
	defaultTopN = 15

	// minChunk keeps small corpora on a single pass.
	minChunk = 512
)

// Ranking is the top of one tally.
type Ranking struct {
	Kind     types.ShapeKind    `yaml:"-"`
	Total    int                `yaml:"total"`    // Syllables counted
	Distinct int                `yaml:"distinct"` // Distinct shapes
	Top      []types.ShapeCount `yaml:"top"`
}

// Result holds one ranking per shape kind, in types.ShapeKinds order.
type Result struct {
	Words    int       // Records analyzed
	Rankings []Ranking // CV, class, phonetic
}

// Ranking returns the ranking for kind, or nil if absent.
func (r *Result) Ranking(kind types.ShapeKind) *Ranking {
	for i := range r.Rankings {
		if r.Rankings[i].Kind == kind {
			return &r.Rankings[i]
		}
	}
	return nil
}

// Analyzer computes frequency rankings.
type Analyzer struct {
	TopN    int // Rows per ranking (default 15)
	Workers int // Parallel chunks; <= 1 analyzes sequentially
}

// Analyze tallies every syllable of every pronunciation of every record.
// Ties in count are ranked by first appearance in records order.
func (a *Analyzer) Analyze(ctx context.Context, records []types.WordRecord) (*Result, error) {
	topN := a.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	tallies, err := a.tally(ctx, records)
	if err != nil {
		return nil, err
	}

	result := &Result{Words: len(records)}
	for _, kind := range types.ShapeKinds() {
		t := tallies[kind]
		result.Rankings = append(result.Rankings, Ranking{
			Kind:     kind,
			Total:    t.Total(),
			Distinct: t.Distinct(),
			Top:      t.Top(topN),
		})
	}
	return result, nil
}

// tally counts records either in one pass or in contiguous chunks whose
// partial tallies are merged in chunk order.
func (a *Analyzer) tally(ctx context.Context, records []types.WordRecord) (map[types.ShapeKind]*Tally, error) {
	chunks := a.Workers
	if limit := len(records) / minChunk; chunks > limit {
		chunks = limit
	}
	if chunks <= 1 {
		return tallyChunk(records), nil
	}

	size := (len(records) + chunks - 1) / chunks
	partials := make([]map[types.ShapeKind]*Tally, chunks)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < chunks; i++ {
		start := min(i*size, len(records))
		end := min(start+size, len(records))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[i] = tallyChunk(records[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := newTallies()
	for _, p := range partials {
		for kind, t := range p {
			merged[kind].Merge(t)
		}
	}
	return merged, nil
}

func tallyChunk(records []types.WordRecord) map[types.ShapeKind]*Tally {
	tallies := newTallies()
	for i := range records {
		for _, p := range records[i].Pronunciations {
			for _, syl := range p.Syllables {
				for kind, t := range tallies {
					t.Add(types.ShapeKey(syl, kind))
				}
			}
		}
	}
	return tallies
}

func newTallies() map[types.ShapeKind]*Tally {
	tallies := make(map[types.ShapeKind]*Tally, 3)
	for _, kind := range types.ShapeKinds() {
		tallies[kind] = NewTally()
	}
	return tallies
}
