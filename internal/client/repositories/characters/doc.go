// Package characters provides the local cache of Character records.
//
// # Overview
//
// Repository is the Entity Store contract for characters: read everything,
// upsert a batch by id, and a single scalar update of the favorite flag.
// SQLiteRepository implements it over a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Favorites
//
// is_favorite is owned by the user. UpsertMany replaces every column,
// including the flag, so callers merging remote data must copy the current
// flag onto each record first. UpsertRemote leaves the stored flag untouched
// on conflict and is used for every remote page and refresh, so only
SetFavorite ever changes the flag of an existing row.
//
// Typical Usage
//
//	repo := characters.NewSQLiteRepository(db)
//	_ = repo.UpsertMany(ctx, list)
//	all, _ := repo.GetAll(ctx)
//	_ = repo.SetFavorite(ctx, "1", true)
//	fav, found, _ := repo.GetFavorite(ctx, "1")
package characters
