package actor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/services"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/settings"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/common"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

// fakeCatalog is an in-memory CatalogService. Remote data is served from the
// remote* fields; the cache lives in the local* fields.
type fakeCatalog struct {
	mu sync.Mutex

	localChars  []models.Character
	localShips  []models.Starship
	localPlanet []models.Planet

	remoteChars  []models.Character
	remoteShips  []models.Starship
	remotePlanet []models.Planet

	snapshotErr error
	refreshErr  error
	favoriteErr error

	details     map[string]*models.Character
	detailGates map[string]chan struct{}

	refreshCalls atomic.Int32
	detailsDone  atomic.Int32
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{details: map[string]*models.Character{}, detailGates: map[string]chan struct{}{}}
}

func (f *fakeCatalog) LocalCharacters(ctx context.Context) []models.Character {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Character{}, f.localChars...)
}

func (f *fakeCatalog) LocalStarships(ctx context.Context) []models.Starship {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Starship{}, f.localShips...)
}

func (f *fakeCatalog) LocalPlanets(ctx context.Context) []models.Planet {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Planet{}, f.localPlanet...)
}

func (f *fakeCatalog) Snapshot(ctx context.Context) (services.Snapshot, error) {
	f.mu.Lock()
	err := f.snapshotErr
	f.mu.Unlock()
	if err != nil {
		return services.Snapshot{}, err
	}
	return services.Snapshot{
		Characters: f.LocalCharacters(ctx),
		Starships:  f.LocalStarships(ctx),
		Planets:    f.LocalPlanets(ctx),
	}, nil
}

func (f *fakeCatalog) CharactersPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Character], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.Page[models.Character]{Items: append([]models.Character{}, f.remoteChars...)}, nil
}

func (f *fakeCatalog) StarshipsPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Starship], error) {
	return models.EmptyPage[models.Starship](), nil
}

func (f *fakeCatalog) PlanetsPage(ctx context.Context, cursor string, pageSize int) (models.Page[models.Planet], error) {
	return models.EmptyPage[models.Planet](), nil
}

func (f *fakeCatalog) CharacterDetail(ctx context.Context, id string) *models.Character {
	defer f.detailsDone.Add(1)
	f.mu.Lock()
	gate := f.detailGates[id]
	c := f.details[id]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return c
}

func (f *fakeCatalog) StarshipDetail(ctx context.Context, id string) *models.Starship {
	defer f.detailsDone.Add(1)
	return nil
}

func (f *fakeCatalog) PlanetDetail(ctx context.Context, id string) *models.Planet {
	defer f.detailsDone.Add(1)
	return &models.Planet{ID: id, Name: "Naboo"}
}

func (f *fakeCatalog) PersistCharacters(ctx context.Context, items []models.Character) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range items {
		f.upsertChar(it, false)
	}
	return nil
}

func (f *fakeCatalog) PersistStarships(ctx context.Context, items []models.Starship) error {
	return nil
}

func (f *fakeCatalog) PersistPlanets(ctx context.Context, items []models.Planet) error {
	return nil
}

// upsertChar must be called with mu held.
func (f *fakeCatalog) upsertChar(c models.Character, replaceFavorite bool) {
	for i := range f.localChars {
		if f.localChars[i].ID == c.ID {
			if !replaceFavorite {
				c.IsFavorite = f.localChars[i].IsFavorite
			}
			f.localChars[i] = c
			return
		}
	}
	f.localChars = append(f.localChars, c)
}

func (f *fakeCatalog) SetFavorite(ctx context.Context, id string, favorite bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.favoriteErr != nil {
		return f.favoriteErr
	}
	for i := range f.localChars {
		if f.localChars[i].ID == id {
			f.localChars[i].IsFavorite = favorite
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeCatalog) RefreshAll(ctx context.Context) error {
	f.refreshCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.remoteChars {
		f.upsertChar(c, false)
	}
	f.localShips = append(f.localShips, f.remoteShips...)
	f.localPlanet = append(f.localPlanet, f.remotePlanet...)
	return f.refreshErr
}

type fakeStore struct {
	mu      sync.Mutex
	prefs   settings.Preferences
	saved   []settings.Preferences
	saveErr error
}

func (s *fakeStore) Load(ctx context.Context) (settings.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prefs == (settings.Preferences{}) {
		return settings.Defaults(), nil
	}
	return s.prefs, nil
}

func (s *fakeStore) Save(ctx context.Context, p settings.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, p)
	return nil
}

func (s *fakeStore) lastSaved() (settings.Preferences, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return settings.Preferences{}, false
	}
	return s.saved[len(s.saved)-1], true
}

// rawMonitor forwards whatever is sent on ch, repeats included.
type rawMonitor struct {
	ch chan bool
}

func (m *rawMonitor) Subscribe(ctx context.Context) <-chan bool { return m.ch }
func (m *rawMonitor) Online() bool                               { return false }

var errStorage = errors.New("disk I/O error")
