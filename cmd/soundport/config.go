// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"soundport-cli/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage soundport configuration",
	Long: `Manage soundport configuration.

Configuration is stored in:
  - Linux: ~/.config/soundport/config.toml
  - macOS: ~/Library/Application Support/soundport/config.toml
  - Windows: %APPDATA%\soundport\config.toml

A config.toml in the current directory takes precedence, and any key can
be overridden with SOUNDPORT_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.LoadWithPath()
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("# built-in defaults (no config file found)"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("# "+path))
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteDefault()
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ ")+"wrote "+path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})
}
