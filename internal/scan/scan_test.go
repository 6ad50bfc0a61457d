// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"soundport-cli/internal/javapack"
)

func buildPack(t *testing.T, files map[string]string) *javapack.Pack {
	t.Helper()
	root := t.TempDir()
	files["pack.mcmeta"] = `{"pack": {"pack_format": 15, "description": "t"}}`
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
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

func collect(s *Scanner) []Declaration {
	var out []Declaration
	for d := range s.Declarations() {
		out = append(out, d)
	}
	return out
}

func TestScanner_FlattensEntries(t *testing.T) {
	t.Parallel()

	p := buildPack(t, map[string]string{
		"assets/footsteps/sounds.json": `{
			"step.stone": {"sounds": ["walk", {"name": "walk_alt", "volume": 0.5}]},
			"step.grass": {"sounds": ["grass/soft"]}
		}`,
	})

	decls := collect(New(p))
	if len(decls) != 3 {
		t.Fatalf("got %d declarations, want 3", len(decls))
	}
	for _, d := range decls {
		if d.OriginNamespace != "footsteps" {
			t.Errorf("origin namespace = %q, want footsteps", d.OriginNamespace)
		}
	}

	var refs []string
	for _, d := range decls {
		refs = append(refs, d.SoundReference)
	}
	for _, want := range []string{"walk", "walk_alt", "grass/soft"} {
		if !slices.Contains(refs, want) {
			t.Errorf("missing reference %q in %v", want, refs)
		}
	}
}

func TestScanner_SkipsVanillaNamespace(t *testing.T) {
	t.Parallel()

	p := buildPack(t, map[string]string{
		"assets/minecraft/sounds.json": `{"ambient.cave": {"sounds": ["cave1"]}}`,
		"assets/custom/sounds.json":    `{"my.sound": {"sounds": ["a"]}}`,
	})

	s := New(p)
	decls := collect(s)
	if len(decls) != 1 || decls[0].OriginNamespace != "custom" {
		t.Fatalf("got %+v, want exactly the custom declaration", decls)
	}

	found := false
	for _, d := range s.Diagnostics() {
		if d.Code == CodeVanillaSkipped {
			if d.Severity != SeverityInfo {
				t.Errorf("vanilla skip severity = %q, want info", d.Severity)
			}
			found = true
		}
	}
	if !found {
		t.Error("expected a vanilla_document_skipped diagnostic")
	}
}

func TestScanner_WarnsOnStrayDocument(t *testing.T) {
	t.Parallel()

	p := buildPack(t, map[string]string{
		"assets/sounds.json":        `{"stray.sound": {"sounds": ["a"]}}`,
		"assets/custom/sounds.json": `{"kept.sound": {"sounds": ["b"]}}`,
	})

	s := New(p)
	decls := collect(s)
	if len(decls) != 1 || decls[0].EventKey != "kept.sound" {
		t.Fatalf("got %+v, want only kept.sound", decls)
	}

	found := false
	for _, d := range s.Diagnostics() {
		if d.Code == CodeNamespaceUndetermined && d.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Error("expected a namespace_undetermined warning")
	}
}

func TestScanner_SkipsUnparseableDocument(t *testing.T) {
	t.Parallel()

	p := buildPack(t, map[string]string{
		"assets/broken/sounds.json": `{not json`,
		"assets/good/sounds.json":   `{"ok": {"sounds": ["x"]}}`,
	})

	s := New(p)
	decls := collect(s)
	if len(decls) != 1 || decls[0].OriginNamespace != "good" {
		t.Fatalf("got %+v, want only the good namespace", decls)
	}

	found := false
	for _, d := range s.Diagnostics() {
		if d.Code == CodeDocumentUnreadable {
			found = true
		}
	}
	if !found {
		t.Error("expected a document_unreadable warning")
	}
}

func TestScanner_SingleUse(t *testing.T) {
	t.Parallel()

	p := buildPack(t, map[string]string{
		"assets/custom/sounds.json": `{"k": {"sounds": ["a"]}}`,
	})

	s := New(p)
	if got := len(collect(s)); got != 1 {
		t.Fatalf("first pass yielded %d declarations, want 1", got)
	}
	if got := len(collect(s)); got != 0 {
		t.Errorf("second pass yielded %d declarations, want 0", got)
	}

	found := false
	for _, d := range s.Diagnostics() {
		if d.Code == CodeScanRestarted {
			found = true
		}
	}
	if !found {
		t.Error("expected a scan_restarted diagnostic on reuse")
	}
}
