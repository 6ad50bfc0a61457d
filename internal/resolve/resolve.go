// SPDX-License-Identifier: MPL-2.0

// Package resolve locates the physical audio file behind each sound
// declaration and maps it to its Bedrock event key and output asset path.
// This is where Java's permissive namespace/path aliasing is normalized into
// Bedrock's strict keying: candidate namespaces are probed in order,
// redundant self-namespace prefixes are stripped, and deep custom sound
// trees get a disambiguating namespace suffix.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"soundport-cli/internal/javapack"
	"soundport-cli/internal/scan"
)

type (
	// Asset is the outcome of resolving a declaration to a file on disk.
	Asset struct {
		// SearchNamespace located the file: the reference's qualifier
		// when present, else the declaration's origin namespace.
		SearchNamespace string
		// RelativePath is the reference path below the namespace's
		// sounds directory, slash-separated, with any redundant
		// self-namespace prefix stripped.
		RelativePath string
		// SourceFile is the absolute path of the located audio file.
		SourceFile string
		// VanillaTree records that the file was found under the
		// vanilla namespace's sound tree. The suffix policy depends
		// on this, so it is tracked per asset rather than re-derived.
		VanillaTree bool
	}

	// NotFoundError reports a reference with no matching audio file under
	// either candidate namespace with any recognized extension.
	NotFoundError struct {
		EventKey  string
		Reference string
		Probed    []string
	}

	// EmptyReferenceError reports a reference that normalizes to an empty
	// relative path.
	EmptyReferenceError struct {
		EventKey  string
		Reference string
	}

	// Resolver probes a pack's asset tree for declared sounds.
	Resolver struct {
		pack *javapack.Pack
	}
)

// Error implements the error interface, naming both probed base paths and
// the originating key so a packaging mistake is diagnosable from the log.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no audio file for %q (reference %q); probed %s with extensions %s",
		e.EventKey, e.Reference, strings.Join(e.Probed, ", "), strings.Join(javapack.AudioExtensions, ", "))
}

// Error implements the error interface.
func (e *EmptyReferenceError) Error() string {
	return fmt.Sprintf("reference %q of %q normalizes to an empty path", e.Reference, e.EventKey)
}

// NewResolver returns a Resolver over the given pack.
func NewResolver(p *javapack.Pack) *Resolver {
	return &Resolver{pack: p}
}

// Resolve locates the audio file for one declaration. Failure to resolve is
// a normal outcome: the caller logs it and drops the declaration.
func (r *Resolver) Resolve(d scan.Declaration) (*Asset, error) {
	searchNamespace, relativePath := SplitReference(d.OriginNamespace, d.SoundReference)
	relativePath = StripSelfPrefix(searchNamespace, relativePath)
	if relativePath == "" {
		return nil, &EmptyReferenceError{EventKey: d.EventKey, Reference: d.SoundReference}
	}

	// The declared namespace's own tree wins; the vanilla tree is the
	// permitted fallback Java packs may reuse.
	bases := []struct {
		dir     string
		vanilla bool
	}{
		{r.pack.SoundBase(searchNamespace), searchNamespace == javapack.VanillaNamespace},
		{r.pack.SoundBase(javapack.VanillaNamespace), true},
	}

	probed := make([]string, 0, len(bases))
	for _, base := range bases {
		candidate := filepath.Join(base.dir, filepath.FromSlash(relativePath))
		probed = append(probed, candidate)
		for _, ext := range javapack.AudioExtensions {
			file := candidate + ext
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				return &Asset{
					SearchNamespace: searchNamespace,
					RelativePath:    relativePath,
					SourceFile:      file,
					VanillaTree:     base.vanilla,
				}, nil
			}
		}
	}

	return nil, &NotFoundError{EventKey: d.EventKey, Reference: d.SoundReference, Probed: probed}
}

// SplitReference separates an optional namespace qualifier from a sound
// reference. An unqualified reference searches the origin namespace.
func SplitReference(originNamespace, reference string) (searchNamespace, relativePath string) {
	if ns, rest, ok := strings.Cut(reference, ":"); ok {
		return ns, rest
	}
	return originNamespace, reference
}

// StripSelfPrefix removes a leading "<namespace>/" from a reference path.
// Java pack authors commonly duplicate the namespace inside the path; the
// duplicate carries no information once the search namespace is known.
// Vanilla references keep their path verbatim. The prefix is removed once
// per application, so an already-stripped path passes through unchanged.
func StripSelfPrefix(searchNamespace, relativePath string) string {
	if searchNamespace == javapack.VanillaNamespace {
		return relativePath
	}
	return strings.TrimPrefix(relativePath, searchNamespace+"/")
}
