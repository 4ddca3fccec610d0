// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders syllable-shape rankings as a text table or YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-syllab/internal/stats"
)

// Format selects the report rendering.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want %q or %q)", s, FormatText, FormatYAML)
	}
}

// Render produces the report for result in the given format.
func Render(result *stats.Result, format Format) (string, error) {
	switch format {
	case "", FormatText:
		return renderText(result), nil
	case FormatYAML:
		return renderYAML(result)
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

// Write renders result to w.
func Write(w io.Writer, result *stats.Result, format Format) error {
	out, err := Render(result, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// renderText lays out one section per ranking: a title, the corpus totals
// and the ranked rows with counts right-aligned.
func renderText(result *stats.Result) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Syllable shapes (%d words)\n", result.Words)

	for _, r := range result.Rankings {
		buf.WriteString("\n")
		buf.WriteString(r.Kind.Title() + "\n")
		fmt.Fprintf(&buf, "(total forms: %d, total different forms: %d)\n", r.Total, r.Distinct)

		width := 0
		for _, row := range r.Top {
			width = max(width, len([]rune(row.Shape)))
		}
		for i, row := range r.Top {
			pad := strings.Repeat(" ", width-len([]rune(row.Shape)))
			fmt.Fprintf(&buf, "%3d. %s%s  %d\n", i+1, row.Shape, pad, row.Count)
		}
	}
	return buf.String()
}

type yamlReport struct {
	Words    int                      `yaml:"words"`
	Rankings map[string]stats.Ranking `yaml:"rankings"`
}

func renderYAML(result *stats.Result) (string, error) {
	doc := yamlReport{
		Words:    result.Words,
		Rankings: make(map[string]stats.Ranking, len(result.Rankings)),
	}
	for _, r := range result.Rankings {
		doc.Rankings[r.Kind.String()] = r
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	return string(out), nil
}
