// SPDX-License-Identifier: MPL-2.0

// Package convert orchestrates a full conversion run: open the input pack,
// scan declarations, resolve each to a source asset, transcode under bounded
// concurrency, aggregate the definitions document, and assemble the output
// pack.
package convert

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"soundport-cli/internal/bedrock"
	"soundport-cli/internal/definition"
	"soundport-cli/internal/issue"
	"soundport-cli/internal/javapack"
	"soundport-cli/internal/resolve"
	"soundport-cli/internal/scan"
	"soundport-cli/internal/transcode"
)

type (
	// Options configures one conversion run.
	Options struct {
		// Input is a Java resource pack directory or zip/mcpack archive.
		Input string
		// OutputDir is the output pack root.
		OutputDir string
		// ArchivePath, when set, additionally packages the output pack
		// into an .mcpack archive at that path.
		ArchivePath string
		// PackName names the output pack in its manifest.
		PackName string
		// TranscodeCommand is the transcoder command template.
		TranscodeCommand string
		// Jobs bounds concurrent transcodes; zero means 2x CPU count.
		Jobs int
		// Logger receives progress and warnings. Nil uses the default.
		Logger *log.Logger
	}

	// Result summarizes a completed run.
	Result struct {
		// Declarations is the number of scanned declaration entries.
		Declarations int
		// Resolved is how many declarations resolved to a source file.
		Resolved int
		// Skipped is how many declarations were dropped as unresolvable.
		Skipped int
		// TranscodeFailures is how many resolved assets failed to convert.
		TranscodeFailures int
		// Events is the number of unique event keys in the document.
		Events int
		// OutputDir is the assembled output pack root.
		OutputDir string
		// ArchivePath is the packaged .mcpack, when requested.
		ArchivePath string
	}
)

// Run executes a conversion. Per-item problems are logged and skipped; an
// error return means the run as a whole failed (bad input, missing tool, or
// nothing resolved at all).
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	// Preflight before any resolution work.
	cmd, err := transcode.ParseCommand(opts.TranscodeCommand)
	if err != nil {
		return nil, issue.Wrap(err, "parse transcode command").
			WithSuggestion("transcode.command must contain the {in} and {out} placeholders")
	}
	if err := transcode.CheckTool(cmd); err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp("", "soundport-*")
	if err != nil {
		return nil, fmt.Errorf("creating work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	pack, err := javapack.Open(opts.Input, workDir)
	if err != nil {
		return nil, err
	}
	logger.Info("opened input pack", "root", pack.Root, "pack_format", pack.Meta.Pack.PackFormat)

	writer, err := bedrock.NewWriter(opts.OutputDir)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: writer.Root()}

	scanner := scan.New(pack)
	resolver := resolve.NewResolver(pack)
	collector := definition.NewCollector()
	pool := transcode.NewPool(opts.Jobs)
	runner := transcode.NewRunner(cmd)

	var failures atomic.Int64
	for decl := range scanner.Declarations() {
		result.Declarations++

		asset, err := resolver.Resolve(decl)
		if err != nil {
			result.Skipped++
			logger.Warn("dropping unresolvable declaration", "key", decl.EventKey, "error", err)
			continue
		}

		event := resolve.BuildEvent(decl, asset)
		dst := writer.AssetFile(event.AssetPath)
		result.Resolved++
		logger.Info("converting", "key", event.Key, "src", asset.SourceFile, "dst", dst)

		src := asset.SourceFile
		pool.Submit(func() {
			if err := runner.Transcode(ctx, src, dst); err != nil {
				failures.Add(1)
				logger.Warn("transcode failed; asset not produced", "key", event.Key, "error", err)
				return
			}
			collector.Add(event)
		})
	}

	for _, d := range scanner.Diagnostics() {
		switch d.Severity {
		case scan.SeverityInfo:
			logger.Info(d.Message, "path", d.Path)
		default:
			logger.Warn(d.Message, "path", d.Path)
		}
	}

	// Aggregation needs the full (key, path) set; wait for every admitted
	// transcode before grouping.
	pool.Wait()
	result.TranscodeFailures = int(failures.Load())

	doc, err := collector.Aggregate()
	if err != nil {
		return nil, issue.Wrap(err, "aggregate sound definitions").
			WithResource(opts.Input).
			WithSuggestion("Check that the pack declares sounds under assets/<namespace>/sounds.json").
			WithSuggestion("Warnings above name every declaration that was dropped and why")
	}
	result.Events = len(doc.Definitions)

	if err := writer.WriteDefinitions(doc); err != nil {
		return nil, issue.Wrap(err, "emit sound definitions").WithResource(writer.Root())
	}
	if err := writer.WriteManifest(opts.PackName, pack.Meta.DescriptionText()); err != nil {
		return nil, issue.Wrap(err, "emit pack manifest").WithResource(writer.Root())
	}

	if opts.ArchivePath != "" {
		if err := writer.Package(opts.ArchivePath); err != nil {
			return nil, issue.Wrap(err, "package output archive").WithResource(opts.ArchivePath)
		}
		result.ArchivePath = opts.ArchivePath
	}

	logger.Info("conversion complete",
		"events", result.Events,
		"resolved", result.Resolved,
		"skipped", result.Skipped,
		"transcode_failures", result.TranscodeFailures)
	return result, nil
}
