// SPDX-License-Identifier: MPL-2.0

// Package soundsjson models the Java Edition sounds.json declarations
// document: a top-level object mapping event keys to sound events, where
// each event carries a list of sound entries. An entry is either a bare
// string ("mob/wolf/bark") or an object whose "name" field carries the same
// reference plus playback metadata this tool does not model.
package soundsjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FileName is the fixed name of a declarations document inside a namespace
// directory (assets/<namespace>/sounds.json).
const FileName = "sounds.json"

type (
	// Document is a parsed sounds.json: event key → sound event.
	Document map[string]Event

	// Event is one declared sound event. Fields other than Sounds
	// (replace, subtitle, pitch, volume, stream) are intentionally not
	// modeled; they have no Bedrock equivalent in this conversion.
	Event struct {
		Sounds []Entry `json:"sounds"`
	}

	// Entry is one element of an event's sound list, normalized to the
	// declared sound reference string regardless of source form.
	Entry struct {
		// Name is the sound reference, optionally namespace-qualified
		// ("ns:path" or bare "path").
		Name string
	}
)

// UnmarshalJSON accepts both entry forms: a JSON string, or an object with a
// "name" field. Both normalize to the same reference string.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("sound entry must be a string or an object with a name field: %w", err)
	}
	if obj.Name == "" {
		return fmt.Errorf("sound entry object has no name field")
	}
	e.Name = obj.Name
	return nil
}

// Parse decodes a sounds.json document from r.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing sounds.json: %w", err)
	}
	return doc, nil
}

// ParseFile decodes the sounds.json document at path.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Keys returns the event keys of the document in sorted order, so callers
// iterating a parsed document produce deterministic output.
func (d Document) Keys() []string {
	keys := maps.Keys(d)
	slices.Sort(keys)
	return keys
}
