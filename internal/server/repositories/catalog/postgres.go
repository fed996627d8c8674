package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/columns"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/common"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/dbx"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

const (
	characterColumns = `position, id, name, films_count, birth_year, eye_color, gender, hair_color, height, mass, skin_color, homeworld`
	starshipColumns  = `position, id, name, model, starship_class, manufacturers, length, crew, passengers, max_atmosphering_speed, hyperdrive_rating`
	planetColumns    = `position, id, name, climates, diameter, rotation_period, orbital_period, gravity, population, terrains, surface_water`
)

type rowScanner interface {
	Scan(dest ...any) error
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Characters(ctx context.Context, after string, limit int) (models.Page[models.Character], error) {
	return list(ctx, r.db, listQuery("characters", characterColumns), after, limit, scanCharacter)
}

func (r *PostgresRepository) Starships(ctx context.Context, after string, limit int) (models.Page[models.Starship], error) {
	return list(ctx, r.db, listQuery("starships", starshipColumns), after, limit, scanStarship)
}

func (r *PostgresRepository) Planets(ctx context.Context, after string, limit int) (models.Page[models.Planet], error) {
	return list(ctx, r.db, listQuery("planets", planetColumns), after, limit, scanPlanet)
}

func (r *PostgresRepository) Character(ctx context.Context, id string) (*models.Character, error) {
	return get(ctx, r.db, getQuery("characters", characterColumns), id, scanCharacter)
}

func (r *PostgresRepository) Starship(ctx context.Context, id string) (*models.Starship, error) {
	return get(ctx, r.db, getQuery("starships", starshipColumns), id, scanStarship)
}

func (r *PostgresRepository) Planet(ctx context.Context, id string) (*models.Planet, error) {
	return get(ctx, r.db, getQuery("planets", planetColumns), id, scanPlanet)
}

func listQuery(table, cols string) string {
	return "SELECT " + cols + " FROM " + table + " WHERE position > $1 ORDER BY position LIMIT $2"
}

func getQuery(table, cols string) string {
	return "SELECT " + cols + " FROM " + table + " WHERE id = $1"
}

// list fetches one row more than limit to learn whether another page exists.
func list[T any](ctx context.Context, db dbx.DBTX, query, after string, limit int,
	scan func(rowScanner) (T, int64, error)) (models.Page[T], error) {
	pos, err := DecodeCursor(after)
	if err != nil {
		return models.Page[T]{}, err
	}

	rows, err := db.QueryContext(ctx, query, pos, limit+1)
	if err != nil {
		return models.Page[T]{}, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]T, 0, limit)
	positions := make([]int64, 0, limit)
	for rows.Next() {
		item, p, err := scan(rows)
		if err != nil {
			return models.Page[T]{}, err
		}
		items = append(items, item)
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return models.Page[T]{}, fmt.Errorf("db error: %w", err)
	}

	page := models.Page[T]{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		page.HasMore = true
	}
	if n := len(page.Items); n > 0 {
		page.NextCursor = EncodeCursor(positions[n-1])
	}
	return page, nil
}

func get[T any](ctx context.Context, db dbx.DBTX, query, id string, scan func(rowScanner) (T, int64, error)) (*T, error) {
	item, _, err := scan(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func scanCharacter(r rowScanner) (models.Character, int64, error) {
	var (
		c         models.Character
		pos       int64
		homeworld sql.NullString
	)
	err := r.Scan(&pos, &c.ID, &c.Name, &c.FilmsCount, &c.BirthYear, &c.EyeColor, &c.Gender,
		&c.HairColor, &c.Height, &c.Mass, &c.SkinColor, &homeworld)
	if err != nil {
		return c, 0, fmt.Errorf("db error: %w", err)
	}
	if homeworld.Valid {
		c.Homeworld = &homeworld.String
	}
	return c, pos, nil
}

func scanStarship(r rowScanner) (models.Starship, int64, error) {
	var (
		s             models.Starship
		pos           int64
		manufacturers string
	)
	err := r.Scan(&pos, &s.ID, &s.Name, &s.Model, &s.StarshipClass, &manufacturers, &s.Length,
		&s.Crew, &s.Passengers, &s.MaxAtmospheringSpeed, &s.HyperdriveRating)
	if err != nil {
		return s, 0, fmt.Errorf("db error: %w", err)
	}
	if s.Manufacturers, err = columns.DecodeList(manufacturers); err != nil {
		return s, 0, err
	}
	return s, pos, nil
}

func scanPlanet(r rowScanner) (models.Planet, int64, error) {
	var (
		p                  models.Planet
		pos                int64
		climates, terrains string
	)
	err := r.Scan(&pos, &p.ID, &p.Name, &climates, &p.Diameter, &p.RotationPeriod, &p.OrbitalPeriod,
		&p.Gravity, &p.Population, &terrains, &p.SurfaceWater)
	if err != nil {
		return p, 0, fmt.Errorf("db error: %w", err)
	}
	if p.Climates, err = columns.DecodeList(climates); err != nil {
		return p, 0, err
	}
	if p.Terrains, err = columns.DecodeList(terrains); err != nil {
		return p, 0, err
	}
	return p, pos, nil
}
