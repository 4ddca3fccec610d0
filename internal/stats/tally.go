// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

// Tally counts occurrences of keys and remembers the order in which each
// key was first seen. It is not safe for concurrent use; concurrent callers
// keep one Tally each and Merge them.
type Tally struct {
	counts map[string]int
	order  []string
	total  int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add counts one occurrence of key.
func (t *Tally) Add(key string) {
	t.addN(key, 1)
}

func (t *Tally) addN(key string, n int) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key] += n
	t.total += n
}

// Merge adds every count of other into t. Keys new to t are appended in
// other's first-seen order, so merging partial tallies of consecutive
// corpus chunks in chunk order gives the same order as one sequential pass.
func (t *Tally) Merge(other *Tally) {
	for _, key := range other.order {
		t.addN(key, other.counts[key])
	}
}

// Count returns the number of occurrences of key.
func (t *Tally) Count(key string) int {
	return t.counts[key]
}

// Total returns the number of occurrences of all keys.
func (t *Tally) Total() int {
	return t.total
}

// Distinct returns the number of distinct keys.
func (t *Tally) Distinct() int {
	return len(t.order)
}

// Top returns at most n keys by descending count. Equal counts keep
// first-seen order. n <= 0 returns every key.
func (t *Tally) Top(n int) []types.ShapeCount {
	ranked := make([]types.ShapeCount, len(t.order))
	for i, key := range t.order {
		ranked[i] = types.ShapeCount{Shape: key, Count: t.counts[key]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
