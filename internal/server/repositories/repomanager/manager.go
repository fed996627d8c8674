package repomanager

import (
	"context"
	"database/sql"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/dbx"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/server/repositories/catalog"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Catalog(db dbx.DBTX) catalog.Repository
}
