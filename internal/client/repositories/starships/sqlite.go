package starships

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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Starship, error) {
	query := `SELECT id, name, model, starship_class, manufacturers, length, crew, passengers,
		max_atmosphering_speed, hyperdrive_rating FROM starships ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select starships: %w", err)
	}
	defer rows.Close()

	result := []models.Starship{}
	for rows.Next() {
		var (
			s             models.Starship
			manufacturers string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Model, &s.StarshipClass, &manufacturers, &s.Length,
			&s.Crew, &s.Passengers, &s.MaxAtmospheringSpeed, &s.HyperdriveRating); err != nil {
			return nil, fmt.Errorf("failed to scan starship: %w", err)
		}
		if s.Manufacturers, err = columns.DecodeList(manufacturers); err != nil {
			return nil, fmt.Errorf("starship %s: %w", s.ID, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) UpsertMany(ctx context.Context, items []models.Starship) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO starships (id, name, model, starship_class, manufacturers, length, crew,
			passengers, max_atmosphering_speed, hyperdrive_rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			model = excluded.model,
			starship_class = excluded.starship_class,
			manufacturers = excluded.manufacturers,
			length = excluded.length,
			crew = excluded.crew,
			passengers = excluded.passengers,
			max_atmosphering_speed = excluded.max_atmosphering_speed,
			hyperdrive_rating = excluded.hyperdrive_rating`

	return dbx.InTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for _, s := range items {
			manufacturers, err := columns.EncodeList(s.Manufacturers)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, s.ID, s.Name, s.Model, s.StarshipClass, manufacturers,
				s.Length, s.Crew, s.Passengers, s.MaxAtmospheringSpeed, s.HyperdriveRating); err != nil {
				return fmt.Errorf("failed to upsert starship %s: %w", s.ID, err)
			}
		}
		return nil
	})
}
