// SPDX-License-Identifier: MPL-2.0

package javapack

import (
	_ "embed"
	"fmt"
	"os"

	"soundport-cli/internal/cueschema"
	"soundport-cli/internal/issue"
)

//go:embed packmeta_schema.cue
var packMetaSchema []byte

type (
	// Meta is the validated pack.mcmeta content.
	Meta struct {
		Pack MetaPack `json:"pack"`
	}

	// MetaPack is the pack section of pack.mcmeta.
	MetaPack struct {
		PackFormat int `json:"pack_format"`
		// Description is a plain string or a Java rich-text component.
		Description any `json:"description"`
	}
)

// LoadMeta reads and schema-validates the pack.mcmeta at path. A missing or
// malformed metadata file gates the whole run, so errors here carry
// suggestions rather than being silently defaulted.
func LoadMeta(path string) (*Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.Wrap(err, "read pack metadata").
			WithResource(path).
			WithSuggestion("Every Java resource pack carries a pack.mcmeta at its root").
			WithSuggestion("If the input is an archive, check that it contains the pack root")
	}

	meta, err := cueschema.DecodeJSON[Meta](packMetaSchema, data, "#PackMeta", path)
	if err != nil {
		return nil, issue.Wrap(err, "validate pack metadata").
			WithResource(path).
			WithSuggestion("pack.mcmeta must carry a pack object with an integer pack_format")
	}
	return meta, nil
}

// DescriptionText flattens the description to plain text. Rich-text
// components reduce to their concatenated text fields; anything else
// stringifies.
func (m *Meta) DescriptionText() string {
	return flattenText(m.Pack.Description)
}

func flattenText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		out := ""
		for _, e := range t {
			out += flattenText(e)
		}
		return out
	case map[string]any:
		out := flattenText(t["text"])
		out += flattenText(t["extra"])
		return out
	default:
		return fmt.Sprint(t)
	}
}
