// Package catalog reads characters, starships and planets from PostgreSQL.
//
// Listings use keyset pagination on the insertion position of each row. The
// cursor handed to clients is an opaque base64 token of that position.
package catalog

import (
	"context"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

// Repository is the read side of the catalog. Listing calls return at most
// limit records positioned after the cursor after ("" means from the start).
// Lookups return common.ErrNotFound for unknown ids.
type Repository interface {
	Characters(ctx context.Context, after string, limit int) (models.Page[models.Character], error)
	Starships(ctx context.Context, after string, limit int) (models.Page[models.Starship], error)
	Planets(ctx context.Context, after string, limit int) (models.Page[models.Planet], error)
	Character(ctx context.Context, id string) (*models.Character, error)
	Starship(ctx context.Context, id string) (*models.Starship, error)
	Planet(ctx context.Context, id string) (*models.Planet, error)
}
