// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"slices"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

// ErrInvalidScale is returned when a sonority scale is incomplete or not
// ordered consistently.
var ErrInvalidScale = errors.New("invalid sonority scale")

// Scale maps each phonetic macro-class to its sonority rank.
type Scale map[types.MacroClass]int

// Validate checks that every macro-class has a rank, that obstruents rank no
// higher than nasals, nasals no higher than liquids, liquids no higher than
// semi-vowels, and that vowels rank strictly above every consonant class.
func (s Scale) Validate() error {
	for _, c := range types.MacroClasses() {
		if _, ok := s[c]; !ok {
			return fmt.Errorf("%w: no rank for %s", ErrInvalidScale, c)
		}
	}

	var obstruents []int
	for _, c := range types.MacroClasses() {
		if c.IsObstruent() {
			obstruents = append(obstruents, s[c])
		}
	}
	maxObstruent := slices.Max(obstruents)

	tiers := []struct {
		name string
		rank int
	}{
		{"obstruent", maxObstruent},
		{types.Nasal.String(), s[types.Nasal]},
		{types.Liquid.String(), s[types.Liquid]},
		{types.SemiVowel.String(), s[types.SemiVowel]},
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].rank < tiers[i-1].rank {
			return fmt.Errorf("%w: %s (%d) ranks below %s (%d)",
				ErrInvalidScale, tiers[i].name, tiers[i].rank, tiers[i-1].name, tiers[i-1].rank)
		}
	}

	vowel := s[types.VowelClass]
	for _, c := range types.MacroClasses() {
		if c != types.VowelClass && s[c] >= vowel {
			return fmt.Errorf("%w: %s (%d) is not below vowel (%d)", ErrInvalidScale, c, s[c], vowel)
		}
	}
	return nil
}

// Rank returns the rank of a macro-class.
func (s Scale) Rank(c types.MacroClass) int {
	return s[c]
}

// clone returns an independent copy so callers cannot mutate a table's scale.
func (s Scale) clone() Scale {
	out := make(Scale, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
