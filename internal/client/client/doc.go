// Package client contains the client-side transport and storage bootstrap.
//
// # Overview
//
// The package provides:
//  1. The Remote Source contract (see the Client interface): paged listings
//     of characters, starships and planets, single-record lookups, and Ping.
//  2. A gRPC implementation (see GRPCClient) that stamps every call with an
//     x-request-id, bounds it with a per-call timeout, and maps gRPC status
//     codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations,
//     NewRepositories) that opens the SQLite cache and applies the embedded
//     goose migrations.
//
// # Error Handling
//
// Transport failures surface as ErrUnavailable, missing records as
// ErrNotFound; both match with errors.Is.
package client
