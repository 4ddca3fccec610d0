// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "strings"

// ShapeKind selects one of the three syllable-shape representations.
type ShapeKind int

const (
	ShapeCV    ShapeKind = iota // C/V string, e.g. "CVC"
	ShapeClass                  // Macro-class codes, e.g. "BVF"
	ShapePhon                   // Raw phonetic symbols, e.g. "bEs"
)

// ShapeKinds returns the representations in report order.
func ShapeKinds() []ShapeKind {
	return []ShapeKind{ShapeCV, ShapeClass, ShapePhon}
}

func (k ShapeKind) String() string {
	switch k {
	case ShapeCV:
		return "cv"
	case ShapeClass:
		return "class"
	case ShapePhon:
		return "phonetic"
	default:
		return "unknown"
	}
}

// Title returns the heading used in rendered reports.
func (k ShapeKind) Title() string {
	switch k {
	case ShapeCV:
		return "CV forms"
	case ShapeClass:
		return "Phonetic classes"
	case ShapePhon:
		return "Phonetic constituents"
	default:
		return "Unknown"
	}
}

// ShapeKey returns the key of a syllable under the given representation.
func ShapeKey(syllable []Symbol, kind ShapeKind) string {
	var b strings.Builder
	for _, s := range syllable {
		switch kind {
		case ShapeCV:
			b.WriteString(s.VC())
		case ShapeClass:
			b.WriteString(s.Class.Code())
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// ShapeCount is one row of a frequency ranking.
type ShapeCount struct {
	Shape string `yaml:"shape"`
	Count int    `yaml:"count"`
}
