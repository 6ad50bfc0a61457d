// SPDX-License-Identifier: MPL-2.0

// Package bedrock assembles the output resource pack: the transcoded asset
// tree, the sound definitions document, the generated manifest, and the
// final .mcpack archive.
package bedrock

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"soundport-cli/internal/transcode"
	"soundport-cli/pkg/bedrockpack"
)

// manifestFormatVersion is the Bedrock manifest document revision.
const manifestFormatVersion = 2

// minEngineVersion is the oldest engine the emitted pack declares support
// for; 1.14 introduced the sound definitions format this tool emits.
var minEngineVersion = [3]int{1, 14, 0}

// Writer lays files out under the output pack root.
type Writer struct {
	root string
}

// NewWriter returns a Writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output root: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving output root: %w", err)
	}
	return &Writer{root: abs}, nil
}

// Root returns the output pack root directory.
func (w *Writer) Root() string {
	return w.root
}

// AssetFile maps a definition-document asset path (extensionless,
// slash-separated) to the file the transcoder writes.
func (w *Writer) AssetFile(assetPath string) string {
	return filepath.Join(w.root, filepath.FromSlash(assetPath)) + transcode.OutputExtension
}

// WriteDefinitions emits sounds/sound_definitions.json.
func (w *Writer) WriteDefinitions(doc *bedrockpack.SoundDefinitions) error {
	path := filepath.Join(w.root, filepath.FromSlash(bedrockpack.DefinitionsFileName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating sounds directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return doc.Write(f)
}

// WriteManifest emits manifest.json with fresh UUIDs for the pack header
// and its resources module.
func (w *Writer) WriteManifest(name, description string) error {
	m := &bedrockpack.Manifest{
		FormatVersion: manifestFormatVersion,
		Header: bedrockpack.ManifestHeader{
			Name:             name,
			Description:      description,
			UUID:             uuid.NewString(),
			Version:          [3]int{1, 0, 0},
			MinEngineVersion: minEngineVersion,
		},
		Modules: []bedrockpack.ManifestModule{{
			Type:        "resources",
			UUID:        uuid.NewString(),
			Version:     [3]int{1, 0, 0},
			Description: description,
		}},
	}

	path := filepath.Join(w.root, bedrockpack.ManifestFileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return m.Write(f)
}

// Package zips the output pack root into dest (conventionally a .mcpack).
// Entry names are slash-separated and relative to the root.
func (w *Writer) Package(dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", dest, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return err
		}
		entry, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("adding %s to archive: %w", rel, err)
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(entry, src)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("packaging %s: %w", dest, err)
	}
	return zw.Close()
}
