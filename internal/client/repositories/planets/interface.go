// Package planets provides the local cache of Planet records.
package planets

import (
	"context"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

// Repository describes the cached Planet operations.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Planet, error)
	UpsertMany(ctx context.Context, items []models.Planet) error
}
