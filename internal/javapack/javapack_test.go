// SPDX-License-Identifier: MPL-2.0

package javapack

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		e, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := e.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

const validMeta = `{"pack": {"pack_format": 15, "description": "test pack"}}`

func TestOpen_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, MetaFileName), validMeta)

	p, err := Open(dir, t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if p.Meta.Pack.PackFormat != 15 {
		t.Errorf("pack_format = %d, want 15", p.Meta.Pack.PackFormat)
	}
	if got := p.SoundBase("foo"); got != filepath.Join(p.Root, "assets", "foo", "sounds") {
		t.Errorf("SoundBase = %q", got)
	}
}

func TestOpen_Archive(t *testing.T) {
	t.Parallel()

	archive := filepath.Join(t.TempDir(), "pack.zip")
	writeZip(t, archive, map[string]string{
		"pack.mcmeta":                  validMeta,
		"assets/foo/sounds.json":       `{}`,
		"assets/foo/sounds/a/clip.ogg": "oggdata",
	})

	p, err := Open(archive, t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(p.Root, "assets", "foo", "sounds", "a", "clip.ogg")); err != nil {
		t.Errorf("extracted asset missing: %v", err)
	}
}

func TestOpen_ArchiveWithWrapperDir(t *testing.T) {
	t.Parallel()

	archive := filepath.Join(t.TempDir(), "pack.zip")
	writeZip(t, archive, map[string]string{
		"MyPack/pack.mcmeta":            validMeta,
		"MyPack/assets/foo/sounds.json": `{}`,
	})

	p, err := Open(archive, t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(p.Root, MetaFileName)); err != nil {
		t.Errorf("Open should descend into the wrapper directory: %v", err)
	}
}

func TestOpen_ZipSlipRejected(t *testing.T) {
	t.Parallel()

	archive := filepath.Join(t.TempDir(), "evil.zip")
	writeZip(t, archive, map[string]string{
		"../escape.txt": "nope",
	})

	if _, err := Open(archive, t.TempDir()); err == nil {
		t.Error("Open should reject archive entries escaping the extraction dir")
	}
}

func TestLoadMeta_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing pack_format", `{"pack": {"description": "x"}}`},
		{"wrong type", `{"pack": {"pack_format": "high"}}`},
		{"not json", `{"pack"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), MetaFileName)
			writeFile(t, path, tt.content)
			if _, err := LoadMeta(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestMeta_DescriptionText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		desc any
		want string
	}{
		{"plain string", "hello", "hello"},
		{"rich component", map[string]any{"text": "a", "extra": []any{map[string]any{"text": "b"}}}, "ab"},
		{"list", []any{"x", map[string]any{"text": "y"}}, "xy"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := &Meta{Pack: MetaPack{Description: tt.desc}}
			if got := m.DescriptionText(); got != tt.want {
				t.Errorf("DescriptionText() = %q, want %q", got, tt.want)
			}
		})
	}
}
