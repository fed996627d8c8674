// Package starships provides the local cache of Starship records.
package starships

import (
	"context"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

// Repository describes the cached Starship operations.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Starship, error)
	UpsertMany(ctx context.Context, items []models.Starship) error
}
