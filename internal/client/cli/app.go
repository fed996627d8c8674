package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/actor"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/client"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/config"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/connectivity"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/favorites"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/services"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/settings"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/logging"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"golang.org/x/sync/errgroup"
)

type App struct {
	actor  *actor.Actor
	con    *console
	logger logging.Logger

	// manual is set when no server is configured; pinger otherwise.
	manual *connectivity.Switch
	pinger  *connectivity.PingMonitor

	views   map[models.Kind]pageView
	current models.Kind
	closers []io.Closer
}

// NewApp opens the cache, connects to the catalog server (when one is
// configured) and builds the actor.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		l.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	closers := []io.Closer{db}

	var (
		remote  client.Client = client.Disconnected{}
		monitor connectivity.Monitor
		manual  *connectivity.Switch
		pinger   *connectivity.PingMonitor
	)
	if c.ServerEndpointAddr != "" {
		gc, err := client.NewCatalogClient(c.ServerEndpointAddr, c.RequestTimeout)
		if err == nil {
			err = gc.InitGRPCClient()
		}
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("catalog client: %w", err)
		}
		closers = append(closers, gc)
		remote = gc
		pinger = connectivity.NewPingMonitor(gc, c.OnlineCheckInterval, c.RequestTimeout, l)
		monitor = pinger
	} else {
		manual = connectivity.NewSwitch(false)
		monitor = manual
	}

	svc := services.NewCatalogService(remote, client.NewRepositories(db), c.RefreshPageSize, l)
	act := actor.New(svc, favorites.NewOverlay(), monitor, settings.NewTOMLStore(c.PreferencesPath),
		actor.Options{PageSize: c.PageSize}, l)

	app := newApp(act, manual, os.Stdout, l)
	app.pinger = pinger
	app.closers = closers
	return app, nil
}

func newApp(act *actor.Actor, manual *connectivity.Switch, w io.Writer, l logging.Logger) *App {
	con := &console{w: w}
	return &App{
		actor:  act,
		con:    con,
		logger: l.With("module", "cli"),
		manual: manual,
		views: map[models.Kind]pageView{
			models.KindCharacter: &pagerView[models.Character]{pager: act.Characters(), render: characterLine, con: con},
			models.KindStarship:  &pagerView[models.Starship]{pager: act.Starships(), render: starshipLine, con: con},
			models.KindPlanet:    &pagerView[models.Planet]{pager: act.Planets(), render: planetLine, con: con},
		},
	}
}

// Run starts the actor and the background watchers, loads the cache and
// reads commands from in until EOF or exit.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.pinger != nil {
		a.pinger.Check(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.actor.Run(gctx) })
	if a.pinger != nil {
		g.Go(func() error {
			a.pinger.Run(gctx)
			return nil
		})
	}
	g.Go(func() error {
		a.watch(gctx)
		return nil
	})

	if err := a.actor.Dispatch(ctx, actor.LoadData{}); err != nil {
		cancel()
		return errors.Join(err, g.Wait())
	}

	a.con.Println("Star Wars catalog (type 'help' for commands)")

	var statusFn func() string
	if interactive(in) {
		statusFn = a.promptStatus
	}
	runREPL(ctx, a, a.con, statusFn, bufio.NewScanner(in))

	cancel()
	return g.Wait()
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
}

// watch prints state changes, notices and looked-up records until ctx is done.
func (a *App) watch(ctx context.Context) {
	states := a.actor.State().Subscribe(ctx)
	characters := a.actor.SelectedCharacter().Subscribe(ctx)
	starships := a.actor.SelectedStarship().Subscribe(ctx)
	planets := a.actor.SelectedPlanet().Subscribe(ctx)

	var last string
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-a.actor.Notices():
			a.con.Println("!", n.Message)
		case s, ok := <-states:
			if !ok {
				return
			}
			if line := summary(s); line != last {
				last = line
				a.con.Println(line)
			}
		case c, ok := <-characters:
			if !ok {
				return
			}
			if c != nil {
				a.con.Println(characterDetail(*c))
			}
		case s, ok := <-starships:
			if !ok {
				return
			}
			if s != nil {
				a.con.Println(starshipDetail(*s))
			}
		case p, ok := <-planets:
			if !ok {
				return
			}
			if p != nil {
				a.con.Println(planetDetail(*p))
			}
		}
	}
}

func (a *App) promptStatus() string {
	mode := "offline"
	if a.actor.NetworkAvailable() {
		mode = "online"
	}
	if a.current != "" {
		return fmt.Sprintf("(%s %s)", mode, a.current)
	}
	return fmt.Sprintf("(%s)", mode)
}
