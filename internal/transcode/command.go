// SPDX-License-Identifier: MPL-2.0

// Package transcode shells out to an external audio transcoder (ffmpeg by
// default) to convert source audio to Ogg Vorbis, and bounds how many
// transcoder processes run at once.
package transcode

import (
	"fmt"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"soundport-cli/internal/issue"
)

const (
	// PlaceholderIn marks the source path in a command template.
	PlaceholderIn = "{in}"
	// PlaceholderOut marks the destination path in a command template.
	PlaceholderOut = "{out}"
)

// Command is a parsed transcoder command template. The template is split
// POSIX-shell-style once at construction; path placeholders are substituted
// per invocation, after splitting, so paths with spaces stay single
// arguments.
type Command struct {
	argv []string
}

// ParseCommand splits and validates a transcoder command template.
func ParseCommand(template string) (*Command, error) {
	fields, err := shell.Fields(template, nil)
	if err != nil {
		return nil, fmt.Errorf("splitting transcode command: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("transcode command is empty")
	}

	joined := strings.Join(fields, " ")
	for _, ph := range []string{PlaceholderIn, PlaceholderOut} {
		if !strings.Contains(joined, ph) {
			return nil, fmt.Errorf("transcode command is missing the %s placeholder", ph)
		}
	}
	return &Command{argv: fields}, nil
}

// Tool returns the executable name, the first field of the template.
func (c *Command) Tool() string {
	return c.argv[0]
}

// Build substitutes the source and destination paths into the template.
func (c *Command) Build(src, dst string) []string {
	out := make([]string, len(c.argv))
	for i, f := range c.argv {
		f = strings.ReplaceAll(f, PlaceholderIn, src)
		f = strings.ReplaceAll(f, PlaceholderOut, dst)
		out[i] = f
	}
	return out
}

// CheckTool verifies the transcoder executable is on PATH. Run before any
// resolution work so a missing tool fails the run up front rather than per
// asset.
func CheckTool(c *Command) error {
	if _, err := exec.LookPath(c.Tool()); err != nil {
		return issue.Wrap(err, "locate audio transcoder").
			WithResource(c.Tool()).
			WithSuggestion("Install ffmpeg and make sure it is on your PATH").
			WithSuggestion("Or point transcode.command in the config at another converter")
	}
	return nil
}
