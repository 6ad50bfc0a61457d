// SPDX-License-Identifier: MPL-2.0

package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// OutputExtension is the extension produced by transcoding. Bedrock loads
// Ogg Vorbis only.
const OutputExtension = ".ogg"

// Runner executes the transcoder for individual assets.
type Runner struct {
	cmd *Command
}

// NewRunner returns a Runner for the given command template.
func NewRunner(cmd *Command) *Runner {
	return &Runner{cmd: cmd}
}

// Transcode converts src into dst, creating dst's parent directory if
// absent. A failure affects only this asset; callers log it and continue
// with the rest of the run.
func (r *Runner) Transcode(ctx context.Context, src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", dst, err)
	}

	argv := r.cmd.Build(src, dst)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := lastLine(stderr.String())
		if detail != "" {
			return fmt.Errorf("transcoding %s: %w: %s", src, err, detail)
		}
		return fmt.Errorf("transcoding %s: %w", src, err)
	}
	return nil
}

// lastLine extracts the final non-empty stderr line; with ffmpeg that is
// where the actual failure reason lands.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
