// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the conversion guide",
	Long:  "Render the built-in guide explaining how sound events are mapped from Java to Bedrock.",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			// Fall back to the raw markdown on terminals glamour
			// cannot probe.
			fmt.Fprintln(cmd.OutOrStdout(), guideMarkdown)
			return nil
		}
		out, err := r.Render(guideMarkdown)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), guideMarkdown)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
