// SPDX-License-Identifier: MPL-2.0

// Package bedrockpack models the Bedrock Edition resource-pack documents this
// tool emits: sound_definitions.json and manifest.json.
package bedrockpack

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// DefinitionsFormatVersion is the fixed format_version of the emitted
	// sound_definitions.json document.
	DefinitionsFormatVersion = "1.14.0"

	// DefinitionsFileName is where the definitions document lives inside
	// the output pack.
	DefinitionsFileName = "sounds/sound_definitions.json"

	// ManifestFileName is the Bedrock pack manifest location.
	ManifestFileName = "manifest.json"

	// DefaultCategory is the sound category assigned to every converted
	// event. Java declarations carry no category this tool models.
	DefaultCategory = "master"
)

type (
	// SoundDefinitions is the top-level sound_definitions.json document.
	SoundDefinitions struct {
		FormatVersion string                     `json:"format_version"`
		Definitions   map[string]SoundDefinition `json:"sound_definitions"`
	}

	// SoundDefinition is one event's entry: its category plus the set of
	// playable asset paths (extensionless, relative to the pack root).
	SoundDefinition struct {
		Category string   `json:"category"`
		Sounds   []string `json:"sounds"`
	}

	// Manifest is the Bedrock pack manifest.
	Manifest struct {
		FormatVersion int              `json:"format_version"`
		Header        ManifestHeader   `json:"header"`
		Modules       []ManifestModule `json:"modules"`
	}

	// ManifestHeader identifies the pack.
	ManifestHeader struct {
		Name             string `json:"name"`
		Description      string `json:"description"`
		UUID             string `json:"uuid"`
		Version          [3]int `json:"version"`
		MinEngineVersion [3]int `json:"min_engine_version"`
	}

	// ManifestModule declares the pack's resources module.
	ManifestModule struct {
		Type        string `json:"type"`
		UUID        string `json:"uuid"`
		Version     [3]int `json:"version"`
		Description string `json:"description"`
	}
)

// NewSoundDefinitions wraps a definitions map with the fixed format version.
func NewSoundDefinitions(defs map[string]SoundDefinition) *SoundDefinitions {
	return &SoundDefinitions{
		FormatVersion: DefinitionsFormatVersion,
		Definitions:   defs,
	}
}

// EventKeys returns the defined event keys in sorted order.
func (d *SoundDefinitions) EventKeys() []string {
	keys := maps.Keys(d.Definitions)
	slices.Sort(keys)
	return keys
}

// Write serializes the document as indented JSON.
func (d *SoundDefinitions) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding sound definitions: %w", err)
	}
	return nil
}

// Write serializes the manifest as indented JSON.
func (m *Manifest) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return nil
}
