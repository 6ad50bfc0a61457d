// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for soundport.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"soundport-cli/internal/config"
	"soundport-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "soundport",
		Short: "Convert Java Edition resource-pack sounds to Bedrock",
		Long: TitleStyle.Render("soundport") + SubtitleStyle.Render(" - Java → Bedrock sound-pack converter") + `

soundport reads a Java Edition resource pack, resolves every declared
sound event to its audio file, transcodes the audio to Ogg Vorbis with
ffmpeg, and emits a Bedrock resource pack with the matching
sound_definitions.json and manifest.

` + SubtitleStyle.Render("Examples:") + `
  soundport convert MyPack.zip        Convert an archived pack
  soundport convert ./mypack/         Convert an extracted pack directory
  soundport doctor                    Check external tooling and input metadata
  soundport config show               Show the effective configuration`,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(guideCmd)
}

// initLogging applies the verbosity level to the default logger before any
// command body runs. Config-file verbosity applies unless the flag was set.
func initLogging() {
	if !verbose {
		if cfg, err := config.Load(); err == nil && cfg.UI.Verbose {
			verbose = true
		}
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetReportTimestamp(false)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay renders an error for the user; ActionableErrors get
// their multi-line format, everything else its plain message.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
