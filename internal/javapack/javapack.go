// SPDX-License-Identifier: MPL-2.0

// Package javapack models the Java Edition resource pack used as conversion
// input: its directory layout, metadata document, and archive extraction.
package javapack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"soundport-cli/internal/issue"
)

const (
	// AssetsDir is the top-level directory holding per-namespace assets.
	AssetsDir = "assets"

	// SoundsDir is the per-namespace directory holding audio files.
	SoundsDir = "sounds"

	// VanillaNamespace is the reserved namespace owned by the game itself.
	// Declarations in it are never converted, and assets under it are
	// never renamespaced.
	VanillaNamespace = "minecraft"

	// MetaFileName is the pack metadata document at the pack root.
	MetaFileName = "pack.mcmeta"
)

// AudioExtensions are the recognized source audio extensions, in probe order.
var AudioExtensions = []string{".ogg", ".wav", ".mp3"}

// Pack is an opened, extracted Java resource pack.
type Pack struct {
	// Root is the absolute path of the extracted pack directory.
	Root string

	// Meta is the parsed pack.mcmeta.
	Meta *Meta
}

// Open prepares a pack for conversion. Input may be a directory or a
// zip/mcpack archive; archives are extracted into workDir. The pack metadata
// is loaded and validated before anything else touches the tree.
func Open(input, workDir string) (*Pack, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, issue.Wrap(err, "open input pack").
			WithResource(input).
			WithSuggestion("Pass a resource pack directory or a .zip/.mcpack archive")
	}

	root := input
	if !info.IsDir() {
		root = filepath.Join(workDir, "input")
		if err := extractArchive(input, root); err != nil {
			return nil, issue.Wrap(err, "extract input archive").
				WithResource(input).
				WithSuggestion("Check that the archive is a valid zip file")
		}
		// Some packs zip a single wrapping directory instead of the
		// pack root itself.
		root = descendToMeta(root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving pack root: %w", err)
	}

	meta, err := LoadMeta(filepath.Join(absRoot, MetaFileName))
	if err != nil {
		return nil, err
	}

	return &Pack{Root: absRoot, Meta: meta}, nil
}

// AssetsRoot returns the pack's assets directory.
func (p *Pack) AssetsRoot() string {
	return filepath.Join(p.Root, AssetsDir)
}

// SoundBase returns the sounds directory for a namespace, e.g.
// assets/<namespace>/sounds.
func (p *Pack) SoundBase(namespace string) string {
	return filepath.Join(p.AssetsRoot(), namespace, SoundsDir)
}

// descendToMeta returns the directory actually holding pack.mcmeta: dir
// itself, or its sole subdirectory when the archive wraps the pack root.
func descendToMeta(dir string) string {
	if fileExists(filepath.Join(dir, MetaFileName)) {
		return dir
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 || !entries[0].IsDir() {
		return dir
	}
	sub := filepath.Join(dir, entries[0].Name())
	if fileExists(filepath.Join(sub, MetaFileName)) {
		return sub
	}
	return dir
}

// IsArchive reports whether path looks like a pack archive by extension.
func IsArchive(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".mcpack":
		return true
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
