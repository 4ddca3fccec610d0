// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command syllab syllabifies French word corpora and ranks syllable shapes.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags to viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "syllab",
		Short:        "Sonority-based syllabifier for French corpora",
		Long:         "syllab transcribes French words to consonant/vowel form, splits their phonetic transcription into syllables and ranks the most frequent syllable shapes.",
		SilenceUsage: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("letters", "", "Orthographic table file (default: embedded French table)")
	rootCmd.PersistentFlags().String("phonemes", "", "Phonetic table file (default: embedded French table)")
	rootCmd.PersistentFlags().String("sonority", "", "Sonority scale file (default: embedded scale)")
	rootCmd.PersistentFlags().Int("workers", 1, "Words processed concurrently")
	rootCmd.PersistentFlags().Int("top", 15, "Rows per ranking")
	rootCmd.PersistentFlags().String("on-unknown", "skip", "Unknown symbol policy: skip or abort")
	rootCmd.PersistentFlags().String("format", "text", "Report format: text or yaml")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	// Bind flags to viper.
	for _, key := range []string{"letters", "phonemes", "sonority", "workers", "top", "on-unknown", "format", "log-level"} {
		viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	// Env vars: SYLLAB_WORKERS, SYLLAB_ON_UNKNOWN, etc.
	viper.SetEnvPrefix("SYLLAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".syllab")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newTranscribeCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print syllab version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "syllab %s\n", version)
		},
	}
}
