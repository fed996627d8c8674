package planets

import (
	"context"
	"fmt"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/columns"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/dbx"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Planet, error) {
	query := `SELECT id, name, climates, diameter, rotation_period, orbital_period, gravity,
		population, terrains, surface_water FROM planets ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select planets: %w", err)
	}
	defer rows.Close()

	result := []models.Planet{}
	for rows.Next() {
		var (
			p                  models.Planet
			climates, terrains string
		)
		if err := rows.Scan(&p.ID, &p.Name, &climates, &p.Diameter, &p.RotationPeriod, &p.OrbitalPeriod,
			&p.Gravity, &p.Population, &terrains, &p.SurfaceWater); err != nil {
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		if p.Climates, err = columns.DecodeList(climates); err != nil {
			return nil, fmt.Errorf("planet %s: %w", p.ID, err)
		}
		if p.Terrains, err = columns.DecodeList(terrains); err != nil {
			return nil, fmt.Errorf("planet %s: %w", p.ID, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) UpsertMany(ctx context.Context, items []models.Planet) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO planets (id, name, climates, diameter, rotation_period, orbital_period,
			gravity, population, terrains, surface_water)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			climates = excluded.climates,
			diameter = excluded.diameter,
			rotation_period = excluded.rotation_period,
			orbital_period = excluded.orbital_period,
			gravity = excluded.gravity,
			population = excluded.population,
			terrains = excluded.terrains,
			surface_water = excluded.surface_water`

	return dbx.InTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for _, p := range items {
			climates, err := columns.EncodeList(p.Climates)
			if err != nil {
				return err
			}
			terrains, err := columns.EncodeList(p.Terrains)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, p.ID, p.Name, climates, p.Diameter, p.RotationPeriod,
				p.OrbitalPeriod, p.Gravity, p.Population, terrains, p.SurfaceWater); err != nil {
				return fmt.Errorf("failed to upsert planet %s: %w", p.ID, err)
			}
		}
		return nil
	})
}
