// Package services contains application services for the catalog client.
// This file defines CatalogService, which unifies cache reads, remote page
// and detail fetches, and cache writes for the three entity kinds.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/client"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/logging"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"golang.org/x/sync/errgroup"
)

// DefaultRefreshPageSize is the page size used by RefreshAll when none is configured.
const DefaultRefreshPageSize = 10

// Snapshot is the full cached content of all three kinds.
type Snapshot struct {
	Characters []models.Character
	Starships  []models.Starship
	Planets    []models.Planet
}

// Empty reports whether no kind has any cached record.
func (s Snapshot) Empty() bool {
	return len(s.Characters) == 0 && len(s.Starships) == 0 && len(s.Planets) == 0
}

// CatalogService defines the data operations used by pagers and the actor.
//
// Contract:
//   - Local*: read the whole cache of one kind; storage errors are logged and
//     reported as an empty result.
//   - Snapshot: read all kinds, returning storage errors.
//   - *Page: fetch one remote page. On failure the page is the explicit empty
//     page and the error is returned alongside it.
//   - *Detail: fetch one record remotely; nil on failure or not-found.
//   - Persist*: upsert remote records by id. Characters keep the stored
//     favorite flag on conflict; other kinds replace every column.
//   - SetFavorite: store the favorite flag of one cached character.
//   - RefreshAll: fetch and persist the first page of every kind. Kinds are
//     independent; their failures are joined.
type CatalogService interface {
	LocalCharacters(ctx context.Context) []models.Character
	LocalStarships(ctx context.Context) []models.Starship
	LocalPlanets(ctx context.Context) []models.Planet
	Snapshot(ctx context.Context) (Snapshot, error)

	CharactersPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Character], error)
	StarshipsPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Starship], error)
	PlanetsPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Planet], error)

	CharacterDetail(ctx context.Context, id string) *models.Character
	StarshipDetail(ctx context.Context, id string) *models.Starship
	PlanetDetail(ctx context.Context, id string) *models.Planet

	PersistCharacters(ctx context.Context, items []models.Character) error
	PersistStarships(ctx context.Context, items []models.Starship) error
	PersistPlanets(ctx context.Context, items []models.Planet) error

	SetFavorite(ctx context.Context, id string, favorite bool) error
	RefreshAll(ctx context.Context) error
}

type catalogService struct {
	client          client.Client
	repos           *client.Repositories
	refreshPageSize int
	logger          logging.Logger
}

// NewCatalogService constructs a CatalogService bound to the given remote client and cache.
// A non-positive refreshPageSize selects DefaultRefreshPageSize.
func NewCatalogService(c client.Client, repos *client.Repositories, refreshPageSize int, l logging.Logger) CatalogService {
	if refreshPageSize <= 0 {
		refreshPageSize = DefaultRefreshPageSize
	}
	return &catalogService{client: c, repos: repos, refreshPageSize: refreshPageSize, logger: l.With("module", "catalog")}
}

func (s *catalogService) LocalCharacters(ctx context.Context) []models.Character {
	items, err := s.repos.Characters.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "error reading cached characters", "error", err)
		return []models.Character{}
	}
	return items
}

func (s *catalogService) LocalStarships(ctx context.Context) []models.Starship {
	items, err := s.repos.Starships.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "error reading cached starships", "error", err)
		return []models.Starship{}
	}
	return items
}

func (s *catalogService) LocalPlanets(ctx context.Context) []models.Planet {
	items, err := s.repos.Planets.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "error reading cached planets", "error", err)
		return []models.Planet{}
	}
	return items
}

func (s *catalogService) Snapshot(ctx context.Context) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Characters, err = s.repos.Characters.GetAll(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("error reading characters: %w", err)
	}
	if snap.Starships, err = s.repos.Starships.GetAll(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("error reading starships: %w", err)
	}
	if snap.Planets, err = s.repos.Planets.GetAll(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("error reading planets: %w", err)
	}
	return snap, nil
}

func (s *catalogService) CharactersPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Character], error) {
	page, err := s.client.Characters(ctx, cursor, pageSize)
	if err != nil {
		s.logger.Warn(ctx, "characters page fetch failed", "cursor", cursor, "error", err)
		return models.EmptyPage[models.Character](), fmt.Errorf("fetch characters: %w", err)
	}
	return page, nil
}

func (s *catalogService) StarshipsPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Starship], error) {
	page, err := s.client.Starships(ctx, cursor, pageSize)
	if err != nil {
		s.logger.Warn(ctx, "starships page fetch failed", "cursor", cursor, "error", err)
		return models.EmptyPage[models.Starship](), fmt.Errorf("fetch starships: %w", err)
	}
	return page, nil
}

func (s *catalogService) PlanetsPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Planet], error) {
	page, err := s.client.Planets(ctx, cursor, pageSize)
	if err != nil {
		s.logger.Warn(ctx, "planets page fetch failed", "cursor", cursor, "error", err)
		return models.EmptyPage[models.Planet](), fmt.Errorf("fetch planets: %w", err)
	}
	return page, nil
}

// CharacterDetail carries the cached favorite flag onto the remote record.
func (s *catalogService) CharacterDetail(ctx context.Context, id string) *models.Character {
	c, err := s.client.Character(ctx, id)
	if err != nil {
		s.logDetailError(ctx, models.KindCharacter, id, err)
		return nil
	}
	fav, found, err := s.repos.Characters.GetFavorite(ctx, id)
	if err != nil {
		s.logger.Warn(ctx, "error reading favorite", "id", id, "error", err)
	}
	if found {
		c.IsFavorite = fav
	}
	return c
}

func (s *catalogService) StarshipDetail(ctx context.Context, id string) *models.Starship {
	v, err := s.client.Starship(ctx, id)
	if err != nil {
		s.logDetailError(ctx, models.KindStarship, id, err)
		return nil
	}
	return v
}

func (s *catalogService) PlanetDetail(ctx context.Context, id string) *models.Planet {
	p, err := s.client.Planet(ctx, id)
	if err != nil {
		s.logDetailError(ctx, models.KindPlanet, id, err)
		return nil
	}
	return p
}

func (s *catalogService) logDetailError(ctx context.Context, kind models.Kind, id string, err error) {
	if errors.Is(err, client.ErrNotFound) {
		s.logger.Info(ctx, "detail not found", "kind", kind, "id", id)
		return
	}
	s.logger.Warn(ctx, "detail fetch failed", "kind", kind, "id", id, "error", err)
}

// PersistCharacters stores remote pages. New ids take the flag carried by the
// record; existing rows keep their stored flag, so a toggle that lands while
// a page is in flight is never rolled back.
func (s *catalogService) PersistCharacters(ctx context.Context, items []models.Character) error {
	if err := s.repos.Characters.UpsertRemote(ctx, items); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}
	return nil
}

func (s *catalogService) PersistStarships(ctx context.Context, items []models.Starship) error {
	if err := s.repos.Starships.UpsertMany(ctx, items); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}
	return nil
}

func (s *catalogService) PersistPlanets(ctx context.Context, items []models.Planet) error {
	if err := s.repos.Planets.UpsertMany(ctx, items); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}
	return nil
}

func (s *catalogService) SetFavorite(ctx context.Context, id string, favorite bool) error {
	if err := s.repos.Characters.SetFavorite(ctx, id, favorite); err != nil {
		return fmt.Errorf("error updating favorite: %w", err)
	}
	return nil
}

func (s *catalogService) RefreshAll(ctx context.Context) error {
	var (
		g    errgroup.Group
		errs [3]error
	)

	g.Go(func() error {
		page, err := s.client.Characters(ctx, "", s.refreshPageSize)
		if err == nil {
			err = s.repos.Characters.UpsertRemote(ctx, models.Dedup(page.Items))
		}
		errs[0] = s.refreshResult(ctx, models.KindCharacter, len(page.Items), err)
		return nil
	})
	g.Go(func() error {
		page, err := s.client.Starships(ctx, "", s.refreshPageSize)
		if err == nil {
			err = s.repos.Starships.UpsertMany(ctx, models.Dedup(page.Items))
		}
		errs[1] = s.refreshResult(ctx, models.KindStarship, len(page.Items), err)
		return nil
	})
	g.Go(func() error {
		page, err := s.client.Planets(ctx, "", s.refreshPageSize)
		if err == nil {
			err = s.repos.Planets.UpsertMany(ctx, models.Dedup(page.Items))
		}
		errs[2] = s.refreshResult(ctx, models.KindPlanet, len(page.Items), err)
		return nil
	})
	_ = g.Wait()

	return errors.Join(errs[:]...)
}

func (s *catalogService) refreshResult(ctx context.Context, kind models.Kind, n int, err error) error {
	if err != nil {
		s.logger.Warn(ctx, "refresh failed", "kind", kind, "error", err)
		return fmt.Errorf("refresh %s: %w", kind, err)
	}
	s.logger.Debug(ctx, "refreshed", "kind", kind, "items", n)
	return nil
}
