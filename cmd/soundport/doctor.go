// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"soundport-cli/internal/config"
	"soundport-cli/internal/javapack"
	"soundport-cli/internal/transcode"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [pack-directory]",
	Short: "Check external tooling and, optionally, a pack's metadata",
	Long: `Run the preflight checks a conversion would run: the configured
transcoder must be on PATH, and when a pack directory is given, its
pack.mcmeta must exist and validate.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := false

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(out, ErrorStyle.Render("✗ config: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}
	fmt.Fprintln(out, SuccessStyle.Render("✓ ")+"configuration loads")

	tcmd, err := transcode.ParseCommand(cfg.Transcode.Command)
	if err != nil {
		fmt.Fprintln(out, ErrorStyle.Render("✗ transcode command: ")+formatErrorForDisplay(err, verbose))
		failed = true
	} else if err := transcode.CheckTool(tcmd); err != nil {
		fmt.Fprintln(out, ErrorStyle.Render("✗ transcoder: ")+formatErrorForDisplay(err, verbose))
		failed = true
	} else {
		fmt.Fprintln(out, SuccessStyle.Render("✓ ")+fmt.Sprintf("transcoder %q found on PATH", tcmd.Tool()))
	}

	if len(args) == 1 {
		metaPath := filepath.Join(args[0], javapack.MetaFileName)
		if meta, err := javapack.LoadMeta(metaPath); err != nil {
			fmt.Fprintln(out, ErrorStyle.Render("✗ pack metadata: ")+formatErrorForDisplay(err, verbose))
			failed = true
		} else {
			fmt.Fprintln(out, SuccessStyle.Render("✓ ")+fmt.Sprintf(
				"pack.mcmeta valid (pack_format %d)", meta.Pack.PackFormat))
		}
	}

	if failed {
		return &ExitError{Code: 1, Err: fmt.Errorf("preflight checks failed")}
	}
	return nil
}
