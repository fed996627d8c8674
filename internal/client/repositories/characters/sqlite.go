package characters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/common"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/dbx"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

const insertColumns = `INSERT INTO characters (id, name, films_count, birth_year, eye_color, gender,
		hair_color, height, mass, skin_color, homeworld, is_favorite)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name = excluded.name,
		films_count = excluded.films_count,
		birth_year = excluded.birth_year,
		eye_color = excluded.eye_color,
		gender = excluded.gender,
		hair_color = excluded.hair_color,
		height = excluded.height,
		mass = excluded.mass,
		skin_color = excluded.skin_color,
		homeworld = excluded.homeworld`

const (
	upsertQuery       = insertColumns + `, is_favorite = excluded.is_favorite`
	upsertRemoteQuery = insertColumns
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Character, error) {
	query := `SELECT id, name, films_count, birth_year, eye_color, gender, hair_color,
		height, mass, skin_color, homeworld, is_favorite FROM characters ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select characters: %w", err)
	}
	defer rows.Close()

	result := []models.Character{}
	for rows.Next() {
		var (
			c         models.Character
			homeworld sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.FilmsCount, &c.BirthYear, &c.EyeColor, &c.Gender,
			&c.HairColor, &c.Height, &c.Mass, &c.SkinColor, &homeworld, &c.IsFavorite); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		if homeworld.Valid {
			c.Homeworld = &homeworld.String
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) UpsertMany(ctx context.Context, items []models.Character) error {
	return r.upsert(ctx, upsertQuery, items)
}

func (r *SQLiteRepository) UpsertRemote(ctx context.Context, items []models.Character) error {
	return r.upsert(ctx, upsertRemoteQuery, items)
}

func (r *SQLiteRepository) upsert(ctx context.Context, query string, items []models.Character) error {
	if len(items) == 0 {
		return nil
	}
	return dbx.InTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for _, c := range items {
			var homeworld sql.NullString
			if c.Homeworld != nil {
				homeworld = sql.NullString{String: *c.Homeworld, Valid: true}
			}
			_, err := tx.ExecContext(ctx, query,
				c.ID, c.Name, c.FilmsCount, c.BirthYear, c.EyeColor, c.Gender,
				c.HairColor, c.Height, c.Mass, c.SkinColor, homeworld, c.IsFavorite)
			if err != nil {
				return fmt.Errorf("failed to upsert character %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE characters SET is_favorite = ? WHERE id = ?`, favorite, id)
	if err != nil {
		return fmt.Errorf("failed to update favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("character %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepository) GetFavorite(ctx context.Context, id string) (bool, bool, error) {
	var favorite bool
	err := r.db.QueryRowContext(ctx, `SELECT is_favorite FROM characters WHERE id = ?`, id).Scan(&favorite)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to get favorite: %w", err)
	}
	return favorite, true, nil
}
