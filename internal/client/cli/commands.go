package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/actor"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

var errNoListing = errors.New("nothing listed yet; use characters, starships or planets")

// Status prints the sync state, the network availability and the preferences.
func (a *App) Status(ctx context.Context) error {
	s := a.actor.State().Get()
	p := a.actor.Preferences().Get()

	a.con.Println(summary(s))
	a.con.Printf("network: %s, loading details: %t\n", onlineLabel(a.actor.NetworkAvailable()), a.actor.Loading().Get())
	if dl, ok := s.(actor.DataLoaded); ok {
		a.con.Printf("favorites only: %t (%d favorites)\n", dl.ShowOnlyFavorites, countFavorites(dl.Favorites))
	}
	a.con.Printf("theme: %s, typography: %s, dark mode: %t\n", p.Theme, p.Typography, p.DarkMode)
	return nil
}

// List starts a fresh listing of kind and prints its first page.
func (a *App) List(ctx context.Context, kind models.Kind) error {
	v, ok := a.views[kind]
	if !ok {
		return fmt.Errorf("unknown kind %q", kind)
	}
	a.current = kind
	return v.first(ctx)
}

func (a *App) More(ctx context.Context) error {
	if a.current == "" {
		return errNoListing
	}
	return a.views[a.current].more(ctx)
}

func (a *App) Reload(ctx context.Context) error {
	if a.current == "" {
		return errNoListing
	}
	return a.views[a.current].reload(ctx)
}

// Favorite marks a character. Without an explicit value the current flag is flipped.
func (a *App) Favorite(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("usage: fav <id> [on|off]")
	}
	id := args[0]
	value := true
	if len(args) == 2 {
		v, err := parseOnOff(args[1])
		if err != nil {
			return err
		}
		value = v
	} else if cur, known := a.actor.Favorites().Get(id); known {
		value = !cur
	}
	return a.actor.Dispatch(ctx, actor.ToggleFavorite{ID: id, Value: value})
}

func (a *App) FavoritesOnly(ctx context.Context) error {
	return a.actor.Dispatch(ctx, actor.ToggleShowOnlyFavorites{})
}

// Show requests one record; it is printed once it arrives.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: show <character|starship|planet> <id>")
	}
	kind, err := models.ParseKind(args[0])
	if err != nil {
		return err
	}
	return a.actor.Dispatch(ctx, actor.FetchDetail{Kind: kind, ID: args[1]})
}

func (a *App) Load(ctx context.Context) error {
	return a.actor.Dispatch(ctx, actor.LoadData{})
}

func (a *App) Refresh(ctx context.Context) error {
	if !a.actor.NetworkAvailable() {
		return errors.New("no network connection")
	}
	return a.actor.Dispatch(ctx, actor.RefreshData{})
}

func (a *App) Theme(ctx context.Context) error {
	return a.actor.Dispatch(ctx, actor.ToggleTheme{})
}

func (a *App) Prefs(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("usage: prefs <theme> [typography]")
	}
	in := actor.UpdateDisplayPreferences{Theme: args[0]}
	if len(args) == 2 {
		in.Typography = args[1]
	}
	return a.actor.Dispatch(ctx, in)
}

// SetOnline forces the connectivity when no server is configured.
func (a *App) SetOnline(ctx context.Context, online bool) error {
	if a.manual == nil {
		return errors.New("connectivity is driven by the server")
	}
	a.manual.Set(online)
	a.con.Printf("Switched to %s mode\n", onlineLabel(online))
	return nil
}

func countFavorites(m map[string]bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}
