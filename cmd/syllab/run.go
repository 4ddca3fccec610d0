// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-syllab/pkg/syllab"
	"github.com/petar-djukic/go-syllab/pkg/types"
)

// newTranscribeCmd creates the "transcribe" command.
func newTranscribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcribe",
		Short: "Syllabify an input corpus",
		Long:  "Transcribe reads \"word phonetic\" lines and writes, per word, the letters, their C/V form, the phonetic form, its C/V form, the syllabified form and its C/V form.",
		RunE:  runTranscribe,
	}
	cmd.Flags().StringP("input", "i", "-", "Input corpus (- for stdin)")
	cmd.Flags().StringP("output", "o", "-", "Processed corpus (- for stdout)")
	return cmd
}

// newStatsCmd creates the "stats" command.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Rank syllable shapes of a processed corpus",
		Long:  "Stats reads a processed corpus written by transcribe and reports the most frequent syllable shapes as C/V forms, phonetic classes and phonetic constituents.",
		RunE:  runStats,
	}
	cmd.Flags().StringP("input", "i", "-", "Processed corpus (- for stdin)")
	cmd.Flags().StringP("report", "r", "-", "Stats report (- for stdout)")
	return cmd
}

// newRunCmd creates the "run" command.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Syllabify a corpus and rank its syllable shapes",
		Long:  "Run is transcribe followed by stats on the words it wrote.",
		RunE:  runAll,
	}
	cmd.Flags().StringP("input", "i", "-", "Input corpus (- for stdin)")
	cmd.Flags().StringP("output", "o", "", "Processed corpus (required)")
	cmd.Flags().StringP("report", "r", "-", "Stats report (- for stdout)")
	cmd.MarkFlagRequired("output")
	return cmd
}

// newTablesCmd creates the "tables" command.
func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "tables [letters|phonemes]",
		Short:     "List the active classification tables",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"letters", "phonemes"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSyllabifier()
			if err != nil {
				return err
			}

			alphabets := []types.Alphabet{types.Orthographic, types.Phonetic}
			if len(args) == 1 && args[0] == "letters" {
				alphabets = alphabets[:1]
			} else if len(args) == 1 {
				alphabets = alphabets[1:]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, a := range alphabets {
				fmt.Fprintf(w, "# %s\n", a)
				for _, sym := range s.Symbols(a) {
					if a == types.Orthographic {
						fmt.Fprintf(w, "%s\t%s\n", sym.Text, sym.Kind)
						continue
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", sym.Text, sym.Kind, sym.Class, sym.Rank)
				}
			}
			return w.Flush()
		},
	}
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	return withCorpus(cmd, func(ctx context.Context, s syllab.Syllabifier, in io.Reader) error {
		out, closeOut, err := createOutput(cmd, "output")
		if err != nil {
			return err
		}
		if _, err := s.Transcribe(ctx, in, out); err != nil {
			closeOut()
			return err
		}
		return closeOut()
	})
}

func runStats(cmd *cobra.Command, args []string) error {
	return withCorpus(cmd, func(ctx context.Context, s syllab.Syllabifier, in io.Reader) error {
		result, err := s.Stats(ctx, in)
		if err != nil {
			return err
		}
		return writeReport(cmd, result)
	})
}

func runAll(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	reportPath, _ := cmd.Flags().GetString("report")
	if isStdout(output) && isStdout(reportPath) {
		return errors.New("--output and --report cannot both be stdout")
	}

	return withCorpus(cmd, func(ctx context.Context, s syllab.Syllabifier, in io.Reader) error {
		out, closeOut, err := createOutput(cmd, "output")
		if err != nil {
			return err
		}
		result, err := s.Run(ctx, in, out)
		if err != nil {
			closeOut()
			return err
		}
		if err := closeOut(); err != nil {
			return err
		}
		return writeReport(cmd, result)
	})
}

// withCorpus builds the syllabifier, opens the --input corpus and runs fn
// under a context canceled by an interrupt.
func withCorpus(cmd *cobra.Command, fn func(ctx context.Context, s syllab.Syllabifier, in io.Reader) error) error {
	s, logger, err := newSyllabifier()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("input")
	in := cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", syllab.ErrInputFailure, err)
		}
		defer f.Close()
		in = f
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	if err := fn(ctx, s, in); err != nil {
		logger.Error("syllab failed", slog.String("command", cmd.Name()), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// newSyllabifier builds a Syllabifier from the viper settings.
func newSyllabifier() (syllab.Syllabifier, *slog.Logger, error) {
	logger := newLogger(viper.GetString("log-level"), os.Stderr)

	s, err := syllab.New(syllab.Config{
		Letters:   viper.GetString("letters"),
		Phonemes:  viper.GetString("phonemes"),
		Sonority:  viper.GetString("sonority"),
		Workers:   viper.GetInt("workers"),
		TopN:      viper.GetInt("top"),
		OnUnknown: viper.GetString("on-unknown"),
		Format:    viper.GetString("format"),
		Logger:    logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initialization failed: %w", err)
	}
	return s, logger, nil
}

// createOutput opens the file named by flag, or the command's stdout for "-".
// The returned close function flushes and closes the file.
func createOutput(cmd *cobra.Command, flag string) (io.Writer, func() error, error) {
	path, _ := cmd.Flags().GetString(flag)
	if isStdout(path) {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, f.Close, nil
}

func isStdout(path string) bool {
	return path == "-" || path == ""
}

func writeReport(cmd *cobra.Command, result *syllab.Result) error {
	w, closeReport, err := createOutput(cmd, "report")
	if err != nil {
		return err
	}
	if err := result.WriteReport(w); err != nil {
		closeReport()
		return err
	}
	return closeReport()
}
