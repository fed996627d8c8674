// Package cli provides the interactive Star Wars catalog client.
//
// It wires configuration, the local cache, the remote catalog and the sync
// actor, then runs a REPL that turns commands into intents and prints state
// changes, notices and detail lookups as they arrive.
//
// Key features:
//   - Browse characters, starships and planets page by page (online or from cache)
//   - Mark favorite characters, optionally showing favorites only
//   - Look up a single record
//   - Refresh the cache and change display preferences
//
// Without a configured server the connectivity is driven manually with the
// offline and online commands.
//
// The REPL is started via App.Run(ctx, in), which blocks until the user exits.
package cli
