package actor

import "github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"

// Intent is a request processed by the actor's worker.
type Intent interface {
	isIntent()
}

// LoadData reads the cache and publishes it, refreshing first when the cache
// is empty and the network is available.
type LoadData struct{}

// RefreshData fetches the first page of every kind and reloads the cache.
type RefreshData struct{}

type ToggleFavorite struct {
	ID    string
	Value bool
}

// FetchDetail loads one record into the selected slot of Kind.
type FetchDetail struct {
	Kind models.Kind
	ID   string
}

// ToggleTheme flips dark mode.
type ToggleTheme struct{}

// UpdateDisplayPreferences replaces the non-empty fields.
type UpdateDisplayPreferences struct {
	Theme      string
	Typography string
}

type ToggleShowOnlyFavorites struct{}

func (LoadData) isIntent()                 {}
func (RefreshData) isIntent()              {}
func (ToggleFavorite) isIntent()           {}
func (FetchDetail) isIntent()              {}
func (ToggleTheme) isIntent()              {}
func (UpdateDisplayPreferences) isIntent() {}
func (ToggleShowOnlyFavorites) isIntent()  {}
