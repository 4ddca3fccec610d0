// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across go-syllab packages.
package types

import "strings"

// Kind identifies whether a symbol is a consonant, a vowel, or a literal
// that transcribes to itself.
type Kind int

const (
	Consonant Kind = iota // Transcribed as C
	Vowel                 // Transcribed as V; syllable nucleus
	Literal               // Non-letter; transcribed as its own text
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Consonant:
		return "Consonant"
	case Vowel:
		return "Vowel"
	case Literal:
		return "Literal"
	default:
		return "Unknown"
	}
}

// MacroClass is the coarse phonetic category of a phonetic symbol.
type MacroClass int

const (
	NoClass MacroClass = iota // Orthographic letters and literals
	StopUnvoiced
	StopVoiced
	FricativeUnvoiced
	FricativeVoiced
	Nasal
	Liquid
	SemiVowel
	VowelClass
)

var macroClassNames = map[MacroClass]string{
	StopUnvoiced:      "stopUnvoiced",
	StopVoiced:        "stopVoiced",
	FricativeUnvoiced: "fricativeUnvoiced",
	FricativeVoiced:   "fricativeVoiced",
	Nasal:             "nasal",
	Liquid:            "liquid",
	SemiVowel:         "semiVowel",
	VowelClass:        "vowel",
}

var macroClassCodes = map[MacroClass]string{
	StopUnvoiced:      "P",
	StopVoiced:        "B",
	FricativeUnvoiced: "F",
	FricativeVoiced:   "Z",
	Nasal:             "N",
	Liquid:            "L",
	SemiVowel:         "J",
	VowelClass:        "V",
}

// MacroClasses returns every phonetic macro-class in ascending conventional
// sonority order.
func MacroClasses() []MacroClass {
	return []MacroClass{
		StopUnvoiced, StopVoiced,
		FricativeUnvoiced, FricativeVoiced,
		Nasal, Liquid, SemiVowel, VowelClass,
	}
}

// String returns the camelCase name used in table files.
func (c MacroClass) String() string {
	if name, ok := macroClassNames[c]; ok {
		return name
	}
	return "none"
}

// Code returns the one-letter code used in macro-class shape strings.
func (c MacroClass) Code() string {
	if code, ok := macroClassCodes[c]; ok {
		return code
	}
	return "?"
}

// IsObstruent reports whether the class is a stop or a fricative.
func (c MacroClass) IsObstruent() bool {
	return c >= StopUnvoiced && c <= FricativeVoiced
}

// ParseMacroClass resolves a class name. Matching ignores case and
// underscores, so "fricative_voiced" and "fricativeVoiced" are the same.
func ParseMacroClass(name string) (MacroClass, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	for c, n := range macroClassNames {
		if strings.ToLower(n) == key {
			return c, true
		}
	}
	return NoClass, false
}

// Alphabet selects which classification mapping a symbol is looked up in.
type Alphabet int

const (
	Orthographic Alphabet = iota // Written letters
	Phonetic                     // Phonetic transcription symbols
)

func (a Alphabet) String() string {
	switch a {
	case Orthographic:
		return "orthographic"
	case Phonetic:
		return "phonetic"
	default:
		return "unknown"
	}
}

// Symbol is a classified letter or phonetic character. Class and Rank are
// only meaningful for phonetic symbols.
type Symbol struct {
	Text  string     // Symbol as written (NFC, one base rune plus marks)
	Kind  Kind       // Consonant, Vowel or Literal
	Class MacroClass // Phonetic macro-class (NoClass for letters)
	Rank  int        // Sonority rank; lower is less sonorous
}

// IsVowel reports whether the symbol is a syllable nucleus.
func (s Symbol) IsVowel() bool {
	return s.Kind == Vowel
}

// VC returns the symbol's C/V transcription: "C", "V", or the literal
// text itself.
func (s Symbol) VC() string {
	switch s.Kind {
	case Consonant:
		return "C"
	case Vowel:
		return "V"
	default:
		return s.Text
	}
}

// Texts concatenates the raw text of a symbol sequence.
func Texts(symbols []Symbol) string {
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s.Text)
	}
	return b.String()
}
