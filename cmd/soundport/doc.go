// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for soundport.
//
// This package implements the Cobra command hierarchy for the soundport CLI:
// the root command, the convert pipeline entry point, preflight checks, and
// configuration management.
package cmd
