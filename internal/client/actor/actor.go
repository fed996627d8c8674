package actor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/connectivity"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/favorites"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/observable"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/paging"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/services"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/settings"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/logging"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"github.com/google/uuid"
)

var (
	ErrStopped        = errors.New("actor stopped")
	ErrAlreadyRunning = errors.New("actor already running")
)

const (
	intentBuffer = 64
	noticeBuffer = 16
)

// Options configures an Actor.
type Options struct {
	// PageSize is the remote page size of the three pagers.
	PageSize int
	// Now is used to stamp notices. Defaults to time.Now.
	Now func() time.Time
}

type detailResult struct {
	kind      models.Kind
	id        string
	token     uint64
	character *models.Character
	starship  *models.Starship
	planet    *models.Planet
}

func (r detailResult) found() bool {
	return r.character != nil || r.starship != nil || r.planet != nil
}

// Actor owns the catalog SyncState. Intents are handled one at a time by
// the goroutine running Run; every exposed stream is an observable value.
type Actor struct {
	svc      services.CatalogService
	overlay  *favorites.Overlay
	monitor  connectivity.Monitor
	settings settings.Store
	logger   logging.Logger
	now      func() time.Time

	online  atomic.Bool
	running atomic.Bool

	intents chan Intent
	results chan detailResult
	notices chan Notice
	done    chan struct{}

	state             *observable.Value[SyncState]
	loading           *observable.Value[bool]
	selectedCharacter *observable.Value[*models.Character]
	selectedStarship  *observable.Value[*models.Starship]
	selectedPlanet    *observable.Value[*models.Planet]
	prefs             *observable.Value[settings.Preferences]

	characters *paging.Pager[models.Character]
	starships  *paging.Pager[models.Starship]
	planets    *paging.Pager[models.Planet]

	// owned by the worker goroutine
	backlog           []Intent
	showOnlyFavorites bool
	detailTokens      map[models.Kind]uint64
	pendingDetails    map[models.Kind]uint64
	detailWG          sync.WaitGroup
}

func New(svc services.CatalogService, overlay *favorites.Overlay, monitor connectivity.Monitor,
	store settings.Store, opts Options, l logging.Logger) *Actor {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	a := &Actor{
		svc:      svc,
		overlay:  overlay,
		monitor:  monitor,
		settings: store,
		logger:   l.With("module", "actor"),
		now:      opts.Now,

		intents: make(chan Intent, intentBuffer),
		results: make(chan detailResult),
		notices: make(chan Notice, noticeBuffer),
		done:    make(chan struct{}),

		state:             observable.NewValue[SyncState](Loading{}),
		loading:           observable.NewValue(false),
		selectedCharacter: observable.NewValue[*models.Character](nil),
		selectedStarship:  observable.NewValue[*models.Starship](nil),
		selectedPlanet:    observable.NewValue[*models.Planet](nil),
		prefs:             observable.NewValue(settings.Defaults()),

		detailTokens:   make(map[models.Kind]uint64),
		pendingDetails: make(map[models.Kind]uint64),
	}

	pagerOpts := paging.Options{PageSize: opts.PageSize, Online: a.online.Load, Logger: l}
	a.characters = paging.NewCharacterPager(svc, overlay, pagerOpts)
	a.starships = paging.NewStarshipPager(svc, pagerOpts)
	a.planets = paging.NewPlanetPager(svc, pagerOpts)
	return a
}

func (a *Actor) State() *observable.Value[SyncState]                     { return a.state }
func (a *Actor) Loading() *observable.Value[bool]                        { return a.loading }
func (a *Actor) SelectedCharacter() *observable.Value[*models.Character] { return a.selectedCharacter }
func (a *Actor) SelectedStarship() *observable.Value[*models.Starship]   { return a.selectedStarship }
func (a *Actor) SelectedPlanet() *observable.Value[*models.Planet]       { return a.selectedPlanet }
func (a *Actor) Preferences() *observable.Value[settings.Preferences]    { return a.prefs }
func (a *Actor) Characters() *paging.Pager[models.Character]             { return a.characters }
func (a *Actor) Starships() *paging.Pager[models.Starship]               { return a.starships }
func (a *Actor) Planets() *paging.Pager[models.Planet]                   { return a.planets }
func (a *Actor) Favorites() *favorites.Overlay                           { return a.overlay }
func (a *Actor) Notices() <-chan Notice                                  { return a.notices }
func (a *Actor) NetworkAvailable() bool                                  { return a.online.Load() }

// Dispatch enqueues an intent. Intents dispatched before Run are buffered.
func (a *Actor) Dispatch(ctx context.Context, in Intent) error {
	select {
	case <-a.done:
		return ErrStopped
	default:
	}
	select {
	case a.intents <- in:
		return nil
	case <-a.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes intents until ctx is done. The first connectivity value is
// taken as the baseline and does not trigger a refresh.
func (a *Actor) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(a.done)

	conn := a.monitor.Subscribe(ctx)
	select {
	case v, ok := <-conn:
		if ok {
			a.online.Store(v)
		}
	case <-ctx.Done():
		return nil
	}

	if p, err := a.settings.Load(ctx); err != nil {
		a.logger.Warn(ctx, "failed to load preferences", "error", err)
	} else {
		a.prefs.Set(p)
	}
	a.overlay.Seed(a.svc.LocalCharacters(ctx))

	a.logger.Info(ctx, "Starting actor", "online", a.online.Load())
	defer a.detailWG.Wait()

	for {
		if ctx.Err() != nil {
			a.logger.Info(ctx, "Stopping actor...")
			return nil
		}
		if len(a.backlog) > 0 {
			in := a.backlog[0]
			a.backlog = a.backlog[1:]
			a.handle(ctx, in)
			continue
		}

		select {
		case <-ctx.Done():
		case v, ok := <-conn:
			if !ok {
				conn = nil
				continue
			}
			a.networkChanged(ctx, v)
		case r := <-a.results:
			a.applyDetail(ctx, r)
		case in := <-a.intents:
			a.handle(ctx, in)
		}
	}
}

func (a *Actor) handle(ctx context.Context, in Intent) {
	switch in := in.(type) {
	case LoadData:
		a.loadData(ctx)
	case RefreshData:
		a.refresh(ctx)
	case ToggleFavorite:
		a.toggleFavorite(ctx, in)
	case FetchDetail:
		a.fetchDetail(ctx, in)
	case ToggleTheme:
		a.updatePreferences(ctx, func(p settings.Preferences) settings.Preferences {
			p.DarkMode = !p.DarkMode
			return p
		})
	case UpdateDisplayPreferences:
		a.updatePreferences(ctx, func(p settings.Preferences) settings.Preferences {
			if in.Theme != "" {
				p.Theme = in.Theme
			}
			if in.Typography != "" {
				p.Typography = in.Typography
			}
			return p
		})
	case ToggleShowOnlyFavorites:
		a.showOnlyFavorites = !a.showOnlyFavorites
		if dl, ok := a.state.Get().(DataLoaded); ok {
			dl.ShowOnlyFavorites = a.showOnlyFavorites
			a.state.Set(dl)
		}
	default:
		a.logger.Warn(ctx, "unknown intent", "type", fmt.Sprintf("%T", in))
	}
}

func (a *Actor) networkChanged(ctx context.Context, online bool) {
	if a.online.Swap(online) == online {
		return
	}
	a.logger.Info(ctx, "network availability changed", "online", online)

	if dl, ok := a.state.Get().(DataLoaded); ok {
		dl.NetworkAvailable = online
		a.state.Set(dl)
	}
	if online {
		a.backlog = append(a.backlog, RefreshData{})
	}
}

func (a *Actor) loadData(ctx context.Context) {
	snap, err := a.svc.Snapshot(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if snap.Empty() {
		if a.online.Load() {
			a.refresh(ctx)
			return
		}
		a.publishEmpty(ctx)
		return
	}
	a.publishLoaded(snap)
}

func (a *Actor) refresh(ctx context.Context) {
	if _, ok := a.state.Get().(DataLoaded); !ok {
		a.state.Set(Loading{})
	}

	if err := a.svc.RefreshAll(ctx); err != nil {
		a.logger.Warn(ctx, "refresh failed", "error", err)
		a.notify(ctx, NoticeRefreshFailed, "Some data could not be refreshed")
	}
	a.characters.Invalidate()
	a.starships.Invalidate()
	a.planets.Invalidate()

	snap, err := a.svc.Snapshot(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if snap.Empty() {
		if a.online.Load() {
			a.publishLoaded(snap)
			a.notify(ctx, NoticeEmptyCatalog, "The catalog returned no data")
			return
		}
		a.publishEmpty(ctx)
		return
	}
	a.publishLoaded(snap)
}

func (a *Actor) fail(ctx context.Context, err error) {
	a.logger.Error(ctx, "failed to load data", "error", err)
	a.state.Set(Error{Message: fmt.Sprintf("failed to load data: %v", err)})
}

func (a *Actor) publishEmpty(ctx context.Context) {
	a.state.Set(EmptyLocalNoNetwork{})
	a.notify(ctx, NoticeNoData, "No cached data and no network connection")
}

func (a *Actor) publishLoaded(snap services.Snapshot) {
	a.state.Set(DataLoaded{
		Characters:        a.overlay.Apply(snap.Characters),
		Starships:         snap.Starships,
		Planets:           snap.Planets,
		NetworkAvailable:  a.online.Load(),
		Favorites:         a.overlay.Snapshot(),
		ShowOnlyFavorites: a.showOnlyFavorites,
	})
}

// toggleFavorite writes the cache first and updates the overlay only on success.
func (a *Actor) toggleFavorite(ctx context.Context, in ToggleFavorite) {
	if err := a.svc.SetFavorite(ctx, in.ID, in.Value); err != nil {
		a.logger.Warn(ctx, "failed to update favorite", "id", in.ID, "error", err)
		a.notify(ctx, NoticeFavoriteFailed, fmt.Sprintf("Could not update favorite for %s", in.ID))
		return
	}
	a.overlay.Set(in.ID, in.Value)

	if dl, ok := a.state.Get().(DataLoaded); ok {
		chars := make([]models.Character, len(dl.Characters))
		for i, c := range dl.Characters {
			if c.ID == in.ID {
				c.IsFavorite = in.Value
			}
			chars[i] = c
		}
		dl.Characters = chars
		dl.Favorites = a.overlay.Snapshot()
		a.state.Set(dl)
	}
	if sel := a.selectedCharacter.Get(); sel != nil && sel.ID == in.ID {
		c := *sel
		c.IsFavorite = in.Value
		a.selectedCharacter.Set(&c)
	}
	a.characters.Invalidate()
}

// fetchDetail runs the remote call off the worker; only the latest request
// per kind may publish its result.
func (a *Actor) fetchDetail(ctx context.Context, in FetchDetail) {
	switch in.Kind {
	case models.KindCharacter, models.KindStarship, models.KindPlanet:
	default:
		a.notify(ctx, NoticeNotFound, fmt.Sprintf("Unknown kind %q", in.Kind))
		return
	}

	token := a.detailTokens[in.Kind] + 1
	a.detailTokens[in.Kind] = token
	a.pendingDetails[in.Kind] = token
	a.loading.Set(true)

	a.detailWG.Add(1)
	go func() {
		defer a.detailWG.Done()
		r := detailResult{kind: in.Kind, id: in.ID, token: token}
		switch in.Kind {
		case models.KindCharacter:
			r.character = a.svc.CharacterDetail(ctx, in.ID)
		case models.KindStarship:
			r.starship = a.svc.StarshipDetail(ctx, in.ID)
		case models.KindPlanet:
			r.planet = a.svc.PlanetDetail(ctx, in.ID)
		}
		select {
		case a.results <- r:
		case <-ctx.Done():
		}
	}()
}

func (a *Actor) applyDetail(ctx context.Context, r detailResult) {
	if a.detailTokens[r.kind] != r.token {
		a.logger.Debug(ctx, "dropping stale detail", "kind", r.kind, "id", r.id)
		return
	}
	delete(a.pendingDetails, r.kind)

	switch r.kind {
	case models.KindCharacter:
		a.selectedCharacter.Set(r.character)
	case models.KindStarship:
		a.selectedStarship.Set(r.starship)
	case models.KindPlanet:
		a.selectedPlanet.Set(r.planet)
	}
	if !r.found() {
		a.notify(ctx, NoticeNotFound, fmt.Sprintf("No %s found with id %s", r.kind, r.id))
	}
	a.loading.Set(len(a.pendingDetails) > 0)
}

func (a *Actor) updatePreferences(ctx context.Context, fn func(settings.Preferences) settings.Preferences) {
	next := a.prefs.Update(fn)
	if err := a.settings.Save(ctx, next); err != nil {
		a.logger.Warn(ctx, "failed to save preferences", "error", err)
		a.notify(ctx, NoticeSettingsFailed, "Preferences could not be saved")
	}
}

// notify never blocks; notices are dropped when nobody drains them.
func (a *Actor) notify(ctx context.Context, kind NoticeKind, msg string) {
	n := Notice{ID: uuid.New(), Kind: kind, Message: msg, At: a.now()}
	select {
	case a.notices <- n:
	default:
		a.logger.Debug(ctx, "notice dropped", "kind", kind)
	}
}
