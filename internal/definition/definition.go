// SPDX-License-Identifier: MPL-2.0

// Package definition collects the (event key, asset path) pairs produced by
// resolution and aggregates them into the Bedrock sound_definitions.json
// document: grouped by key, deduplicated per key.
package definition

import (
	"errors"
	"sync"

	"golang.org/x/exp/slices"

	"soundport-cli/internal/resolve"
	"soundport-cli/pkg/bedrockpack"
)

// ErrNoSounds is returned when aggregation runs over an empty collection.
// A run that resolved nothing produced no pack worth emitting, so this is
// fatal to the run rather than yielding an empty document.
var ErrNoSounds = errors.New("no sounds were resolved from the input pack")

// Collector accumulates resolved events. Add is safe for concurrent use;
// resolution tasks append from many goroutines and Aggregate runs after the
// caller's join barrier.
type Collector struct {
	mu     sync.Mutex
	events []resolve.Event
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records one resolved event.
func (c *Collector) Add(ev resolve.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

// Len returns the number of recorded events.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// Aggregate groups the collected events by key, deduplicates asset paths
// within each group, and wraps the result as the definitions document.
// Paths are sorted per group so output is deterministic run to run.
func (c *Collector) Aggregate() (*bedrockpack.SoundDefinitions, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.events) == 0 {
		return nil, ErrNoSounds
	}

	grouped := make(map[string]map[string]struct{})
	for _, ev := range c.events {
		paths, ok := grouped[ev.Key]
		if !ok {
			paths = make(map[string]struct{})
			grouped[ev.Key] = paths
		}
		paths[ev.AssetPath] = struct{}{}
	}

	defs := make(map[string]bedrockpack.SoundDefinition, len(grouped))
	for key, paths := range grouped {
		sounds := make([]string, 0, len(paths))
		for p := range paths {
			sounds = append(sounds, p)
		}
		slices.Sort(sounds)
		defs[key] = bedrockpack.SoundDefinition{
			Category: bedrockpack.DefaultCategory,
			Sounds:   sounds,
		}
	}

	return bedrockpack.NewSoundDefinitions(defs), nil
}
