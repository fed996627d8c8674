package paging

import (
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/favorites"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/services"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

// NewCharacterPager overlays favorites on every page before it is persisted.
func NewCharacterPager(svc services.CatalogService, overlay *favorites.Overlay, opts Options) *Pager[models.Character] {
	src := Source[models.Character]{
		Fetch:   svc.CharactersPage,
		Local:   svc.LocalCharacters,
		Persist: svc.PersistCharacters,
	}
	return New(models.KindCharacter, src, overlay.Apply, opts)
}

func NewStarshipPager(svc services.CatalogService, opts Options) *Pager[models.Starship] {
	src := Source[models.Starship]{
		Fetch:   svc.StarshipsPage,
		Local:   svc.LocalStarships,
		Persist: svc.PersistStarships,
	}
	return New(models.KindStarship, src, nil, opts)
}

func NewPlanetPager(svc services.CatalogService, opts Options) *Pager[models.Planet] {
	src := Source[models.Planet]{
		Fetch:   svc.PlanetsPage,
		Local:   svc.LocalPlanets,
		Persist: svc.PersistPlanets,
	}
	return New(models.KindPlanet, src, nil, opts)
}
