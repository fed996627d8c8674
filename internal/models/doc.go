// Package models defines the catalog entities shared by the client cache,
// the remote source client and the development catalog server.
//
// # Entities
//
//   - Character: a person of the saga; carries the user-owned IsFavorite flag.
//   - Starship: a vessel with its manufacturers and performance figures.
//   - Planet: a world with climates, terrains and population.
//
// Missing text attributes use the "Unknown" sentinel, missing numbers use 0.
//
// # Pages
//
// Page is the transient result of one cursor-paginated remote fetch. It is
// never persisted; the cache stores entities only.
package models
