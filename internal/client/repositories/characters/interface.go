package characters

import (
	"context"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

// Repository describes the cached Character operations.
type Repository interface {
	// GetAll returns every cached character ordered by id.
	GetAll(ctx context.Context) ([]models.Character, error)

	// UpsertMany inserts or fully replaces the given records by id.
	UpsertMany(ctx context.Context, items []models.Character) error

	// UpsertRemote inserts or replaces the given records by id but keeps the
	// stored favorite flag of records that already exist.
	UpsertRemote(ctx context.Context, items []models.Character) error

	// SetFavorite updates the favorite flag of one record. It returns
	// common.ErrNotFound when the id is not cached.
	SetFavorite(ctx context.Context, id string, favorite bool) error

	// GetFavorite returns the stored flag and whether the record exists.
	GetFavorite(ctx context.Context, id string) (bool, bool, error)
}
