// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soundport-cli/internal/javapack"
	"soundport-cli/internal/scan"
)

func buildPack(t *testing.T, files ...string) *javapack.Pack {
	t.Helper()
	root := t.TempDir()
	files = append(files, "pack.mcmeta")
	for _, name := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		content := "data"
		if name == "pack.mcmeta" {
			content = `{"pack": {"pack_format": 15}}`
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	p, err := javapack.Open(root, t.TempDir())
	if err != nil {
		t.Fatalf("opening fixture pack: %v", err)
	}
	return p
}

func decl(origin, key, ref string) scan.Declaration {
	return scan.Declaration{OriginNamespace: origin, EventKey: key, SoundReference: ref}
}

func TestResolve_QualifiedReference(t *testing.T) {
	t.Parallel()

	// Scenario: reference qualified with another namespace, deep path,
	// found under that namespace's own tree.
	p := buildPack(t, "assets/pet_1/sounds/samus/rpg_pet/lightning_static.ogg")
	r := NewResolver(p)

	a, err := r.Resolve(decl("rpg_pet", "ambient.lightning", "pet_1:samus/rpg_pet/lightning_static"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if a.SearchNamespace != "pet_1" {
		t.Errorf("SearchNamespace = %q, want pet_1", a.SearchNamespace)
	}
	// No stripping: the path starts with samus/, not pet_1/.
	if a.RelativePath != "samus/rpg_pet/lightning_static" {
		t.Errorf("RelativePath = %q, want samus/rpg_pet/lightning_static", a.RelativePath)
	}
	if a.VanillaTree {
		t.Error("VanillaTree = true, want false")
	}
}

func TestResolve_BareReferenceUsesOrigin(t *testing.T) {
	t.Parallel()

	p := buildPack(t, "assets/footsteps/sounds/walk.wav")
	r := NewResolver(p)

	a, err := r.Resolve(decl("footsteps", "step.walk", "walk"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if a.SearchNamespace != "footsteps" {
		t.Errorf("SearchNamespace = %q, want footsteps (origin)", a.SearchNamespace)
	}
	if !strings.HasSuffix(a.SourceFile, ".wav") {
		t.Errorf("SourceFile = %q, want the .wav hit", a.SourceFile)
	}
}

func TestResolve_StripsSelfPrefix(t *testing.T) {
	t.Parallel()

	p := buildPack(t, "assets/mymod/sounds/boom.ogg")
	r := NewResolver(p)

	a, err := r.Resolve(decl("mymod", "explode", "mymod/boom"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if a.RelativePath != "boom" {
		t.Errorf("RelativePath = %q, want boom (prefix stripped)", a.RelativePath)
	}
}

func TestResolve_ExtensionProbeOrder(t *testing.T) {
	t.Parallel()

	// Both .ogg and .wav exist; .ogg must win.
	p := buildPack(t,
		"assets/m/sounds/clip.ogg",
		"assets/m/sounds/clip.wav",
	)
	a, err := NewResolver(p).Resolve(decl("m", "k", "clip"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if !strings.HasSuffix(a.SourceFile, ".ogg") {
		t.Errorf("SourceFile = %q, want .ogg preferred over .wav", a.SourceFile)
	}
}

func TestResolve_VanillaFallback(t *testing.T) {
	t.Parallel()

	// Declared in a custom namespace but only present under the vanilla
	// tree. All own-namespace extensions are probed before any vanilla
	// candidate, so the .mp3 under m/ must still beat the vanilla .ogg.
	p := buildPack(t, "assets/minecraft/sounds/shared/hit.ogg")
	a, err := NewResolver(p).Resolve(decl("m", "k", "shared/hit"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if !a.VanillaTree {
		t.Error("VanillaTree = false, want true for a vanilla-tree hit")
	}

	p2 := buildPack(t,
		"assets/minecraft/sounds/shared/hit.ogg",
		"assets/m/sounds/shared/hit.mp3",
	)
	a2, err := NewResolver(p2).Resolve(decl("m", "k", "shared/hit"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if a2.VanillaTree || !strings.HasSuffix(a2.SourceFile, ".mp3") {
		t.Errorf("own-namespace .mp3 should win over vanilla .ogg, got %q (vanilla=%v)", a2.SourceFile, a2.VanillaTree)
	}
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()

	p := buildPack(t)
	_, err := NewResolver(p).Resolve(decl("m", "missing.key", "nowhere/clip"))

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if nf.EventKey != "missing.key" {
		t.Errorf("EventKey = %q, want missing.key", nf.EventKey)
	}
	if len(nf.Probed) != 2 {
		t.Fatalf("Probed = %v, want both candidate base paths", nf.Probed)
	}
	msg := nf.Error()
	for _, want := range []string{"missing.key", "nowhere/clip", ".ogg", ".wav", ".mp3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}
}

func TestResolve_EmptyReference(t *testing.T) {
	t.Parallel()

	p := buildPack(t)
	tests := []string{"m:", "m"}
	for _, ref := range tests {
		_, err := NewResolver(p).Resolve(decl("m", "k", ref))
		var empty *EmptyReferenceError
		if !errors.As(err, &empty) {
			t.Errorf("Resolve(ref=%q) error = %v, want *EmptyReferenceError", ref, err)
		}
	}
}

func TestSplitReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		origin   string
		ref      string
		wantNS   string
		wantPath string
	}{
		{"qualified", "origin", "other:a/b", "other", "a/b"},
		{"bare", "origin", "a/b", "origin", "a/b"},
		{"vanilla qualified", "origin", "minecraft:mob/wolf", "minecraft", "mob/wolf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ns, p := SplitReference(tt.origin, tt.ref)
			if ns != tt.wantNS || p != tt.wantPath {
				t.Errorf("SplitReference() = (%q, %q), want (%q, %q)", ns, p, tt.wantNS, tt.wantPath)
			}
		})
	}
}

func TestStripSelfPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ns   string
		path string
		want string
	}{
		{"strips prefix", "mymod", "mymod/boom", "boom"},
		{"no prefix", "mymod", "samus/boom", "samus/boom"},
		{"vanilla never stripped", "minecraft", "minecraft/mob", "minecraft/mob"},
		{"already stripped is no-op", "mymod", "boom", "boom"},
		{"similar but not prefix", "mymod", "mymods/boom", "mymods/boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripSelfPrefix(tt.ns, tt.path); got != tt.want {
				t.Errorf("StripSelfPrefix(%q, %q) = %q, want %q", tt.ns, tt.path, got, tt.want)
			}
		})
	}
}
