// Package favorites keeps the in-memory map of character id to favorite flag
// that is layered over remote and cached data.
//
// The map is copy-on-write: every Set publishes a new map, so the maps
// returned by Snapshot and Subscribe are never mutated and may be shared.
package favorites

import (
	"context"
	"maps"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/observable"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

type Overlay struct {
	v *observable.Value[map[string]bool]
}

func NewOverlay() *Overlay {
	return &Overlay{v: observable.NewValue(map[string]bool{})}
}

// Seed replaces the overlay with the flags of the given characters.
func (o *Overlay) Seed(items []models.Character) {
	m := make(map[string]bool, len(items))
	for _, c := range items {
		m[c.ID] = c.IsFavorite
	}
	o.v.Set(m)
}

// Get returns the flag for id and whether the overlay knows id.
func (o *Overlay) Get(id string) (bool, bool) {
	v, ok := o.v.Get()[id]
	return v, ok
}

func (o *Overlay) Set(id string, favorite bool) {
	o.v.Update(func(cur map[string]bool) map[string]bool {
		next := maps.Clone(cur)
		next[id] = favorite
		return next
	})
}

// Snapshot returns the current map. Callers must not modify it.
func (o *Overlay) Snapshot() map[string]bool {
	return o.v.Get()
}

// Subscribe streams the current map and every later version.
func (o *Overlay) Subscribe(ctx context.Context) <-chan map[string]bool {
	return o.v.Subscribe(ctx)
}

// Apply returns a copy of items where each known id carries the overlay flag.
func (o *Overlay) Apply(items []models.Character) []models.Character {
	m := o.v.Get()
	out := make([]models.Character, len(items))
	for i, c := range items {
		if fav, ok := m[c.ID]; ok {
			c.IsFavorite = fav
		}
		out[i] = c
	}
	return out
}
