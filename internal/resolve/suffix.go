// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"strings"

	"soundport-cli/internal/javapack"
)

// NamespaceSuffix disambiguates collision-prone target namespaces.
const NamespaceSuffix = "_sounds"

// suffixDepthThreshold is the relative-path depth at which a custom sound
// tree is considered collision-prone. Shallow trees rarely collide across
// packs at the namespace level; deep nesting signals multiple sub-namespaces
// sharing one declarations-owning folder.
const suffixDepthThreshold = 3

// NeedsSuffix decides whether the target namespace must be suffixed. It is a
// pure function of its three inputs. Vanilla-owned declarations and assets
// physically resolved under the vanilla sound tree are never renamespaced.
func NeedsSuffix(originNamespace, relativePath string, vanillaAsset bool) bool {
	if originNamespace == javapack.VanillaNamespace || vanillaAsset {
		return false
	}
	return pathDepth(relativePath) >= suffixDepthThreshold
}

// ApplySuffix returns the final target namespace. Appending is idempotent:
// a namespace already carrying the suffix is returned unchanged.
func ApplySuffix(originNamespace string, needsSuffix bool) string {
	if !needsSuffix || strings.HasSuffix(originNamespace, NamespaceSuffix) {
		return originNamespace
	}
	return originNamespace + NamespaceSuffix
}

// pathDepth counts the slash-separated components of a relative path; a bare
// filename has depth 1.
func pathDepth(relativePath string) int {
	if relativePath == "" {
		return 0
	}
	return strings.Count(relativePath, "/") + 1
}
