// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"soundport-cli/internal/config"
	"soundport-cli/internal/convert"
	"soundport-cli/internal/javapack"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	convertOutput  string
	convertArchive bool
	convertName    string
	convertJobs    int

	convertCmd = &cobra.Command{
		Use:   "convert <pack.zip|pack.mcpack|directory>",
		Short: "Convert a Java resource pack's sounds to a Bedrock pack",
		Long: `Convert a Java Edition resource pack's sound subsystem into a Bedrock
Edition resource pack.

Every assets/<namespace>/sounds.json is scanned, each declared sound is
resolved to its audio file, the audio is transcoded to Ogg Vorbis, and
the result is written as a Bedrock pack with sound_definitions.json and
a generated manifest.`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
)

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output pack directory (default <input>_bedrock)")
	convertCmd.Flags().BoolVar(&convertArchive, "mcpack", false, "also package the output as an .mcpack archive")
	convertCmd.Flags().StringVar(&convertName, "name", "", "output pack name (default derived from the input)")
	convertCmd.Flags().IntVar(&convertJobs, "jobs", 0, "max concurrent transcodes (0 = twice the CPU count)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := config.Load()
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("%s", formatErrorForDisplay(err, verbose))}
	}

	baseName := deriveBaseName(input)

	outputDir := convertOutput
	if outputDir == "" {
		outputDir = baseName + "_bedrock"
	}
	packName := convertName
	if packName == "" {
		if cfg.Output.PackName != "" {
			packName = cfg.Output.PackName
		} else {
			packName = baseName
		}
	}
	jobs := convertJobs
	if jobs == 0 {
		jobs = cfg.Transcode.Jobs
	}
	archivePath := ""
	if convertArchive {
		archivePath = baseName + ".mcpack"
	}

	logger := log.Default()

	result, err := convert.Run(cmd.Context(), convert.Options{
		Input:            input,
		OutputDir:        outputDir,
		ArchivePath:      archivePath,
		PackName:         packName,
		TranscodeCommand: cfg.Transcode.Command,
		Jobs:             jobs,
		Logger:           logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ ")+fmt.Sprintf(
		"%d events from %d declarations → %s", result.Events, result.Declarations, result.OutputDir))
	if result.Skipped > 0 || result.TranscodeFailures > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), WarningStyle.Render(fmt.Sprintf(
			"  %d declarations skipped, %d transcodes failed (see warnings above)",
			result.Skipped, result.TranscodeFailures)))
	}
	if result.ArchivePath != "" {
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ ")+"packaged "+result.ArchivePath)
	}
	return nil
}

// deriveBaseName turns the input path into a clean pack base name: the file
// or directory name without an archive extension.
func deriveBaseName(input string) string {
	base := filepath.Base(filepath.Clean(input))
	if javapack.IsArchive(base) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if base == "." || base == string(filepath.Separator) {
		base = "pack"
	}
	return base
}
