// Package services holds the catalog server's use cases on top of the repositories.
package services

import (
	"context"
	"fmt"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/common"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/dbx"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	sc "github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/server/config"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/server/repositories/catalog"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/server/repositories/repomanager"
)

// CatalogService validates requests and clamps page sizes to the configured maximum.
type CatalogService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewCatalogService(db dbx.DBTX, repomanager repomanager.RepositoryManager, config *sc.Config) *CatalogService {
	return &CatalogService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

func (s *CatalogService) repo() catalog.Repository {
	return s.repomanager.Catalog(s.db)
}

// limit rejects non-positive sizes and caps the rest at MaxPageSize.
func (s *CatalogService) limit(first int) (int, error) {
	if first <= 0 {
		return 0, fmt.Errorf("%w: first must be positive, got %d", common.ErrInvalidArgument, first)
	}
	if limit := s.config.MaxPageSize; limit > 0 && first > limit {
		return limit, nil
	}
	return first, nil
}

func (s *CatalogService) Characters(ctx context.Context, after string, first int) (models.Page[models.Character], error) {
	n, err := s.limit(first)
	if err != nil {
		return models.Page[models.Character]{}, err
	}
	return s.repo().Characters(ctx, after, n)
}

func (s *CatalogService) Starships(ctx context.Context, after string, first int) (models.Page[models.Starship], error) {
	n, err := s.limit(first)
	if err != nil {
		return models.Page[models.Starship]{}, err
	}
	return s.repo().Starships(ctx, after, n)
}

func (s *CatalogService) Planets(ctx context.Context, after string, first int) (models.Page[models.Planet], error) {
	n, err := s.limit(first)
	if err != nil {
		return models.Page[models.Planet]{}, err
	}
	return s.repo().Planets(ctx, after, n)
}

func (s *CatalogService) Character(ctx context.Context, id string) (*models.Character, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", common.ErrInvalidArgument)
	}
	return s.repo().Character(ctx, id)
}

func (s *CatalogService) Starship(ctx context.Context, id string) (*models.Starship, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", common.ErrInvalidArgument)
	}
	return s.repo().Starship(ctx, id)
}

func (s *CatalogService) Planet(ctx context.Context, id string) (*models.Planet, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", common.ErrInvalidArgument)
	}
	return s.repo().Planet(ctx, id)
}
