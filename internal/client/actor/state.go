package actor

import "github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"

// SyncState is one of Loading, DataLoaded, EmptyLocalNoNetwork or Error.
type SyncState interface {
	isSyncState()
}

type Loading struct{}

// DataLoaded is the populated screen state. Slices and the map are never
// modified after publication.
type DataLoaded struct {
	Characters        []models.Character
	Starships         []models.Starship
	Planets           []models.Planet
	NetworkAvailable  bool
	Favorites         map[string]bool
	ShowOnlyFavorites bool
}

// VisibleCharacters applies the favorites-only filter.
func (d DataLoaded) VisibleCharacters() []models.Character {
	if !d.ShowOnlyFavorites {
		return d.Characters
	}
	out := make([]models.Character, 0, len(d.Characters))
	for _, c := range d.Characters {
		if c.IsFavorite {
			out = append(out, c)
		}
	}
	return out
}

// EmptyLocalNoNetwork means the cache is empty and the network is unavailable.
type EmptyLocalNoNetwork struct{}

// Error means loading the cache failed; Message describes the cause.
type Error struct {
	Message string
}

func (Loading) isSyncState()             {}
func (DataLoaded) isSyncState()          {}
func (EmptyLocalNoNetwork) isSyncState() {}
func (Error) isSyncState()               {}

// StateName returns a short label for s.
func StateName(s SyncState) string {
	switch s.(type) {
	case Loading:
		return "loading"
	case DataLoaded:
		return "loaded"
	case EmptyLocalNoNetwork:
		return "empty"
	case Error:
		return "error"
	}
	return "unknown"
}
