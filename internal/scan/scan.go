// SPDX-License-Identifier: MPL-2.0

// Package scan enumerates the sound-event declarations of a Java resource
// pack. It walks every assets/<namespace>/sounds.json document and flattens
// it into one Declaration per (namespace, event key, sound entry) triple,
// collecting structured diagnostics for everything it had to skip.
package scan

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sort"

	"soundport-cli/internal/javapack"
	"soundport-cli/pkg/soundsjson"
)

type (
	// Declaration is one declared sound entry, flattened from its
	// document: the triple the rest of the pipeline operates on.
	Declaration struct {
		// OriginNamespace owns the declarations document. Never empty;
		// vanilla-owned documents are filtered before emission.
		OriginNamespace string
		// EventKey is the declared event identifier, preserved
		// verbatim.
		EventKey string
		// SoundReference is the declared sound, optionally
		// namespace-qualified ("ns:path" or bare "path").
		SoundReference string
		// Document is the path of the declarations document, for
		// diagnostics.
		Document string
	}

	// Scanner produces the declaration sequence for one pack. A Scanner is
	// single-use: Declarations may be iterated once, and Diagnostics is
	// only complete after that iteration finishes.
	Scanner struct {
		pack        *javapack.Pack
		consumed    bool
		diagnostics []Diagnostic
	}
)

// New returns a Scanner over the given pack.
func New(p *javapack.Pack) *Scanner {
	return &Scanner{pack: p}
}

// Declarations returns the lazy declaration sequence. Documents are read one
// at a time as the sequence advances; each run needs a fresh Scanner.
func (s *Scanner) Declarations() iter.Seq[Declaration] {
	if s.consumed {
		s.diagnostics = append(s.diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeScanRestarted,
			Message:  "scan sequence iterated twice; declarations require a fresh scanner per run",
		})
		return func(yield func(Declaration) bool) {}
	}
	s.consumed = true

	return func(yield func(Declaration) bool) {
		for _, doc := range s.locateDocuments() {
			if doc.namespace == javapack.VanillaNamespace {
				s.note(SeverityInfo, CodeVanillaSkipped, doc.path,
					"skipping vanilla namespace declarations; vanilla sounds are not converted", nil)
				continue
			}
			if !s.emitDocument(doc, yield) {
				return
			}
		}
	}
}

// Diagnostics returns everything the scan skipped. Only complete once the
// Declarations sequence has been fully consumed.
func (s *Scanner) Diagnostics() []Diagnostic {
	return s.diagnostics
}

type document struct {
	namespace string
	path      string
}

// locateDocuments finds every sounds.json under the assets root, in sorted
// namespace order for deterministic output. A sounds.json sitting directly
// under assets has no owning namespace and is reported, not scanned.
func (s *Scanner) locateDocuments() []document {
	assets := s.pack.AssetsRoot()

	if stray := filepath.Join(assets, soundsjson.FileName); fileExists(stray) {
		s.note(SeverityWarning, CodeNamespaceUndetermined, stray,
			"declarations document has no owning namespace directory", nil)
	}

	entries, err := os.ReadDir(assets)
	if err != nil {
		s.note(SeverityWarning, CodeDocumentUnreadable, assets,
			"cannot read assets directory", err)
		return nil
	}

	var docs []document
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(assets, e.Name(), soundsjson.FileName)
		if fileExists(path) {
			docs = append(docs, document{namespace: e.Name(), path: path})
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].namespace < docs[j].namespace })
	return docs
}

// emitDocument parses one document and yields a Declaration per sound entry.
// Returns false when the consumer stopped the sequence.
func (s *Scanner) emitDocument(doc document, yield func(Declaration) bool) bool {
	parsed, err := soundsjson.ParseFile(doc.path)
	if err != nil {
		s.note(SeverityWarning, CodeDocumentUnreadable, doc.path,
			"skipping unreadable declarations document", err)
		return true
	}

	for _, key := range parsed.Keys() {
		for _, entry := range parsed[key].Sounds {
			d := Declaration{
				OriginNamespace: doc.namespace,
				EventKey:        key,
				SoundReference:  entry.Name,
				Document:        doc.path,
			}
			if !yield(d) {
				return false
			}
		}
	}
	return true
}

func (s *Scanner) note(sev Severity, code, path, msg string, cause error) {
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Path:     path,
		Cause:    cause,
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
