package cli

import (
	"bufio"
	"context"
	"strings"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

const helpText = `Available commands:
  status                          show sync state, network and preferences
  characters | starships | planets  first page of a fresh listing
  more                            next page of the current listing
  reload                          reload the current listing around the last page
  fav <id> [on|off]               mark or unmark a favorite character (toggles without a value)
  favonly                         show only favorite characters
  show <kind> <id>                look up one character, starship or planet
  load                            reload the state from the cache
  refresh                         fetch the first page of every kind from the server
  theme                           toggle dark mode
  prefs <theme> [typography]      change display preferences
  offline | online                force connectivity when no server is configured
  exit | quit                     leave the program`

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	Status(ctx context.Context) error
	List(ctx context.Context, kind models.Kind) error
	More(ctx context.Context) error
	Reload(ctx context.Context) error
	Favorite(ctx context.Context, args []string) error
	FavoritesOnly(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	Theme(ctx context.Context) error
	Prefs(ctx context.Context, args []string) error
	SetOnline(ctx context.Context, online bool) error
}

// runREPL reads one command per line from scanner and dispatches it to a.
// The prompt is printed only when statusFn is not nil. Handler errors are
// reported and the loop goes on. It returns on EOF, on exit or quit, and when
// ctx is done.
func runREPL(ctx context.Context, a execIface, con *console, statusFn func() string, scanner *bufio.Scanner) {
	for ctx.Err() == nil {
		if statusFn != nil {
			con.Printf("sw %s> ", statusFn())
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			con.Println(helpText)
		case "status":
			err = a.Status(ctx)
		case "characters", "starships", "planets":
			kind, _ := models.ParseKind(cmd)
			err = a.List(ctx, kind)
		case "more", "m":
			err = a.More(ctx)
		case "reload":
			err = a.Reload(ctx)
		case "fav":
			err = a.Favorite(ctx, args)
		case "favonly":
			err = a.FavoritesOnly(ctx)
		case "show":
			err = a.Show(ctx, args)
		case "load":
			err = a.Load(ctx)
		case "refresh":
			err = a.Refresh(ctx)
		case "theme":
			err = a.Theme(ctx)
		case "prefs":
			err = a.Prefs(ctx, args)
		case "offline":
			err = a.SetOnline(ctx, false)
		case "online":
			err = a.SetOnline(ctx, true)
		case "exit", "quit":
			con.Println("May the Force be with you!")
			return
		default:
			con.Println("Unknown command:", cmd)
		}
		if err != nil {
			con.Printf("error: %v\n", err)
		}
	}
}
