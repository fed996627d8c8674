package client

import (
	"context"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

// Client is the Remote Source: paged listings and single-record lookups of
// the catalog. Implementations return ErrUnavailable when the backend cannot
// be reached and ErrNotFound when a lookup has no record.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Characters(ctx context.Context, after string, first int) (models.Page[models.Character], error)
	Starships(ctx context.Context, after string, first int) (models.Page[models.Starship], error)
	Planets(ctx context.Context, after string, first int) (models.Page[models.Planet], error)
	Character(ctx context.Context, id string) (*models.Character, error)
	Starship(ctx context.Context, id string) (*models.Starship, error)
	Planet(ctx context.Context, id string) (*models.Planet, error)
}
