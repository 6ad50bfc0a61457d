// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"path"
	"strings"

	"soundport-cli/internal/javapack"
	"soundport-cli/internal/scan"
)

// Event is the final Bedrock-side mapping of one declaration.
type Event struct {
	// Key is "<finalNamespace>:<eventKey>". The event identifier itself
	// passes through verbatim; only the namespace prefix is transformed.
	Key string

	// AssetPath is the extensionless, slash-separated path recorded in
	// the definition document ("sounds/<origin>/sounds/<relativePath>").
	AssetPath string
}

// BuildEvent combines a declaration and its resolved asset into the Bedrock
// event record.
//
// The key uses the suffixed namespace while the asset path keeps the
// unsuffixed origin namespace. The asymmetry is deliberate: multiple origin
// sub-namespaces can share one physical asset tree while still resolving to
// distinct event namespaces.
func BuildEvent(d scan.Declaration, a *Asset) Event {
	needs := NeedsSuffix(d.OriginNamespace, a.RelativePath, a.VanillaTree)
	namespace := ApplySuffix(d.OriginNamespace, needs)
	return Event{
		Key:       namespace + ":" + d.EventKey,
		AssetPath: path.Join(javapack.SoundsDir, d.OriginNamespace, javapack.SoundsDir, a.RelativePath),
	}
}

// SourceExtension returns the extension of the resolved source file,
// lowercased (".ogg", ".wav", ".mp3").
func (a *Asset) SourceExtension() string {
	return strings.ToLower(path.Ext(a.SourceFile))
}
