// SPDX-License-Identifier: MPL-2.0

package soundsjson

import (
	"strings"
	"testing"
)

func TestParse_MixedEntryForms(t *testing.T) {
	t.Parallel()

	const input = `{
		"ambient.lightning": {
			"sounds": [
				"pet_1:samus/rpg_pet/lightning_static",
				{"name": "samus/rpg_pet/lightning_crack", "volume": 0.8}
			]
		},
		"block.door.open": {
			"sounds": ["door/open"]
		}
	}`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	ev, ok := doc["ambient.lightning"]
	if !ok {
		t.Fatal("missing event ambient.lightning")
	}
	if len(ev.Sounds) != 2 {
		t.Fatalf("ambient.lightning sounds = %d, want 2", len(ev.Sounds))
	}
	if got := ev.Sounds[0].Name; got != "pet_1:samus/rpg_pet/lightning_static" {
		t.Errorf("string entry = %q, want pet_1:samus/rpg_pet/lightning_static", got)
	}
	if got := ev.Sounds[1].Name; got != "samus/rpg_pet/lightning_crack" {
		t.Errorf("object entry = %q, want samus/rpg_pet/lightning_crack", got)
	}
}

func TestParse_InvalidEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"numeric entry", `{"k": {"sounds": [42]}}`},
		{"object without name", `{"k": {"sounds": [{"volume": 1.0}]}}`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestDocument_Keys_Sorted(t *testing.T) {
	t.Parallel()

	doc := Document{
		"zeta":  {},
		"alpha": {},
		"mid":   {},
	}
	keys := doc.Keys()
	want := []string{"alpha", "mid", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
