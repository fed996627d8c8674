package client

import (
	"context"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

// Disconnected is the Client used when no server is configured. Every call
// fails with ErrUnavailable.
type Disconnected struct{}

func (Disconnected) Close() error                   { return nil }
func (Disconnected) Ping(ctx context.Context) error { return ErrUnavailable }

func (Disconnected) Characters(ctx context.Context, after string, first int) (models.Page[models.Character], error) {
	return models.EmptyPage[models.Character](), ErrUnavailable
}

func (Disconnected) Starships(ctx context.Context, after string, first int) (models.Page[models.Starship], error) {
	return models.EmptyPage[models.Starship](), ErrUnavailable
}

func (Disconnected) Planets(ctx context.Context, after string, first int) (models.Page[models.Planet], error) {
	return models.EmptyPage[models.Planet](), ErrUnavailable
}

func (Disconnected) Character(ctx context.Context, id string) (*models.Character, error) {
	return nil, ErrUnavailable
}

func (Disconnected) Starship(ctx context.Context, id string) (*models.Starship, error) {
	return nil, ErrUnavailable
}

func (Disconnected) Planet(ctx context.Context, id string) (*models.Planet, error) {
	return nil, ErrUnavailable
}
