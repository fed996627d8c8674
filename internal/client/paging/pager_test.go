package paging

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/favorites"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSource struct {
	mu        sync.Mutex
	pages     map[string]models.Page[models.Character]
	fails     map[string]int
	local     []models.Character
	persisted [][]models.Character
	fetches   atomic.Int32
	keys      []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{pages: map[string]models.Page[models.Character]{}, fails: map[string]int{}}
}

func (f *fakeSource) source() Source[models.Character] {
	return Source[models.Character]{
		Fetch: func(ctx context.Context, cursor string, pageSize int) (models.Page[models.Character], error) {
			f.fetches.Add(1)
			f.mu.Lock()
			defer f.mu.Unlock()
			f.keys = append(f.keys, cursor)
			if f.fails[cursor] > 0 {
				f.fails[cursor]--
				return models.EmptyPage[models.Character](), errors.New("transport down")
			}
			return f.pages[cursor], nil
		},
		Local: func(ctx context.Context) []models.Character {
			f.mu.Lock()
			defer f.mu.Unlock()
			return f.local
		},
		Persist: func(ctx context.Context, items []models.Character) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.persisted = append(f.persisted, items)
			return nil
		},
	}
}

func ids(items []models.Character) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func online(v bool) func() bool { return func() bool { return v } }

func TestSequence_RemotePagesWithBoundaryRepeat(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "A"}, {ID: "B"}}, NextCursor: "c2", HasMore: true}
	src.pages["c2"] = models.Page[models.Character]{Items: []models.Character{{ID: "B"}, {ID: "C"}}}

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(true)})
	seq := p.Pages()
	ctx := context.Background()

	first, ok := seq.Next(ctx)
	require.True(t, ok)
	require.NoError(t, first.Err)
	assert.Equal(t, []string{"A", "B"}, ids(first.Items))
	assert.Equal(t, "c2", first.NextKey)

	second, ok := seq.Next(ctx)
	require.True(t, ok)
	require.NoError(t, second.Err)
	assert.Equal(t, []string{"B", "C"}, ids(second.Items), "dedup is per page")
	assert.Empty(t, second.NextKey)
	assert.Equal(t, "c2", second.Key)

	_, ok = seq.Next(ctx)
	assert.False(t, ok)
	assert.True(t, seq.Done())
	assert.Equal(t, []string{"", "c2"}, src.keys)
}

func TestLoad_DedupsWithinPageAndPersists(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "1", Name: "first"}, {ID: "1", Name: "second"}, {ID: "2"}}}

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(true)})
	res := p.Load(context.Background(), "")

	require.NoError(t, res.Err)
	assert.Equal(t, []string{"1", "2"}, ids(res.Items))
	assert.Equal(t, "first", res.Items[0].Name)
	require.Len(t, src.persisted, 1)
	assert.Equal(t, []string{"1", "2"}, ids(src.persisted[0]))
}

func TestLoad_HasMoreFalseIgnoresCursor(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "1"}}, NextCursor: "dangling", HasMore: false}

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(true)})
	res := p.Load(context.Background(), "")

	assert.Empty(t, res.NextKey)
}

func TestSequence_OfflineServesWholeCacheOnce(t *testing.T) {
	src := newFakeSource()
	src.local = []models.Character{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(false), PageSize: 1})
	seq := p.Pages()

	res, ok := seq.Next(context.Background())
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(res.Items))
	assert.Empty(t, res.NextKey)

	_, ok = seq.Next(context.Background())
	assert.False(t, ok)
	assert.Zero(t, src.fetches.Load())
	assert.Empty(t, src.persisted)
}

func TestFavoriteOverlay_AppliedOnlineAndOffline(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "1"}, {ID: "2"}}}
	src.local = []models.Character{{ID: "1"}, {ID: "2", IsFavorite: true}}

	overlay := favorites.NewOverlay()
	overlay.Set("1", true)

	var isOnline atomic.Bool
	isOnline.Store(true)
	p := New(models.KindCharacter, src.source(), overlay.Apply, Options{Online: isOnline.Load})

	res := p.Pages()
	page, _ := res.Next(context.Background())
	require.NoError(t, page.Err)
	assert.True(t, page.Items[0].IsFavorite)
	assert.False(t, page.Items[1].IsFavorite)
	assert.True(t, src.persisted[0][0].IsFavorite, "overlay merged before persist")

	isOnline.Store(false)
	page, _ = p.Pages().Next(context.Background())
	assert.True(t, page.Items[0].IsFavorite)
	assert.True(t, page.Items[1].IsFavorite, "stored value kept when overlay has no entry")
}

func TestSequence_ErrorIsolatedAndRetryable(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "A"}}, NextCursor: "c2", HasMore: true}
	src.pages["c2"] = models.Page[models.Character]{Items: []models.Character{{ID: "B"}}}
	src.fails["c2"] = 1

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(true)})
	seq := p.Pages()
	ctx := context.Background()

	_, ok := seq.Next(ctx)
	require.True(t, ok)

	failed, ok := seq.Next(ctx)
	require.True(t, ok)
	require.Error(t, failed.Err)
	assert.Equal(t, "c2", failed.Key)
	assert.Empty(t, failed.Items)

	// An independent load on the same pager is unaffected.
	other := p.Load(ctx, "")
	require.NoError(t, other.Err)

	retried, ok := seq.Next(ctx)
	require.True(t, ok)
	require.NoError(t, retried.Err)
	assert.Equal(t, []string{"B"}, ids(retried.Items))
}

func TestLoad_PanicBecomesErrorMarker(t *testing.T) {
	src := Source[models.Character]{
		Fetch: func(ctx context.Context, cursor string, pageSize int) (models.Page[models.Character], error) {
			panic("decoder exploded")
		},
	}
	p := New(models.KindCharacter, src, nil, Options{Online: online(true)})

	res := p.Load(context.Background(), "")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "decoder exploded")
}

func TestInvalidate_RestartsCleanly(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "A"}}, NextCursor: "c2", HasMore: true}
	src.pages["c2"] = models.Page[models.Character]{Items: []models.Character{{ID: "B"}}}

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(true)})
	ctx := context.Background()

	old := p.Pages()
	_, _ = old.Next(ctx)

	p.Invalidate()

	res, ok := old.Next(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, res.Err, ErrInvalidated)
	assert.True(t, old.Done())

	fresh := p.Pages()
	res, ok = fresh.Next(ctx)
	require.True(t, ok)
	assert.Empty(t, res.Key)
	assert.Equal(t, []string{"A"}, ids(res.Items))
	assert.Equal(t, []string{"", ""}, src.keys, "first page fetched again after invalidation")
}

func TestSubscribe_YieldsFreshSequenceOnInvalidate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := newFakeSource()
	p := New(models.KindCharacter, src.source(), nil, Options{})
	ch := p.Subscribe(ctx)

	first := <-ch
	require.NotNil(t, first)

	p.Invalidate()

	select {
	case second := <-ch:
		assert.NotSame(t, first, second)
		assert.True(t, first.Done())
		assert.False(t, second.Done())
	case <-time.After(time.Second):
		t.Fatal("no sequence after invalidate")
	}
}

func TestLoad_ConcurrentSameKeyShareOneFetch(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	var calls atomic.Int32
	src := Source[models.Character]{
		Fetch: func(ctx context.Context, cursor string, pageSize int) (models.Page[models.Character], error) {
			calls.Add(1)
			entered <- struct{}{}
			<-release
			return models.Page[models.Character]{Items: []models.Character{{ID: "1"}}}, nil
		},
		Persist: func(context.Context, []models.Character) error { return nil },
	}
	p := New(models.KindCharacter, src, nil, Options{Online: online(true)})

	var wg sync.WaitGroup
	results := make([]LoadResult[models.Character], 4)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = p.Load(context.Background(), "")
	}()
	<-entered
	for i := 1; i < len(results); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Load(context.Background(), "")
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, []string{"1"}, ids(r.Items))
	}
}

func TestLoad_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	var calls atomic.Int32
	src := Source[models.Character]{
		Fetch: func(ctx context.Context, cursor string, pageSize int) (models.Page[models.Character], error) {
			calls.Add(1)
			entered <- struct{}{}
			select {
			case <-release:
			case <-ctx.Done():
				return models.EmptyPage[models.Character](), ctx.Err()
			}
			return models.Page[models.Character]{Items: []models.Character{{ID: "1"}}}, nil
		},
		Persist: func(context.Context, []models.Character) error { return nil },
	}
	p := New(models.KindCharacter, src, nil, Options{Online: online(true)})

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leader := make(chan LoadResult[models.Character], 1)
	go func() { leader <- p.Load(leaderCtx, "") }()
	<-entered

	follower := make(chan LoadResult[models.Character], 1)
	go func() { follower <- p.Load(context.Background(), "") }()
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	select {
	case res := <-leader:
		assert.ErrorIs(t, res.Err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(release)
	select {
	case res := <-follower:
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"1"}, ids(res.Items))
	case <-time.After(time.Second):
		t.Fatal("second caller did not receive the page")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestRefreshKey(t *testing.T) {
	tests := []struct {
		name string
		last LoadResult[models.Character]
		want string
	}{
		{name: "prev wins", last: LoadResult[models.Character]{PrevKey: "p", HasPrev: true, NextKey: "n"}, want: "p"},
		{name: "previous is the first page", last: LoadResult[models.Character]{HasPrev: true, NextKey: "n"}, want: ""},
		{name: "next when no prev", last: LoadResult[models.Character]{NextKey: "n"}, want: "n"},
		{name: "first page when neither", last: LoadResult[models.Character]{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RefreshKey(tt.last))
		})
	}
}

func TestSequence_PrevKeyTracksPreviousPage(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "A"}}, NextCursor: "c2", HasMore: true}
	src.pages["c2"] = models.Page[models.Character]{Items: []models.Character{{ID: "B"}}, NextCursor: "c3", HasMore: true}
	src.pages["c3"] = models.Page[models.Character]{Items: []models.Character{{ID: "C"}}}

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(true)})
	seq := p.Pages()
	ctx := context.Background()

	_, _ = seq.Next(ctx)
	_, _ = seq.Next(ctx)
	third, _ := seq.Next(ctx)

	assert.Equal(t, "c2", third.PrevKey)
	assert.Equal(t, "c2", RefreshKey(third))
}

func TestRefreshKey_SecondPageReloadsFirst(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "A"}}, NextCursor: "c2", HasMore: true}
	src.pages["c2"] = models.Page[models.Character]{Items: []models.Character{{ID: "B"}}, NextCursor: "c3", HasMore: true}

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(true)})
	seq := p.Pages()
	ctx := context.Background()

	first, _ := seq.Next(ctx)
	assert.False(t, first.HasPrev)
	assert.Equal(t, "c2", RefreshKey(first))

	second, _ := seq.Next(ctx)
	assert.True(t, second.HasPrev)
	assert.Equal(t, "", second.PrevKey)
	assert.Equal(t, "", RefreshKey(second))

	p.Invalidate()
	res, ok := p.PagesFrom(RefreshKey(second)).Next(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, ids(res.Items))
}

func TestPagesFrom_ResumesAtRefreshKey(t *testing.T) {
	src := newFakeSource()
	src.pages[""] = models.Page[models.Character]{Items: []models.Character{{ID: "A"}}, NextCursor: "c2", HasMore: true}
	src.pages["c2"] = models.Page[models.Character]{Items: []models.Character{{ID: "B"}}, NextCursor: "c3", HasMore: true}
	src.pages["c3"] = models.Page[models.Character]{Items: []models.Character{{ID: "C"}}}

	p := New(models.KindCharacter, src.source(), nil, Options{Online: online(true)})
	ctx := context.Background()

	seq := p.Pages()
	var last LoadResult[models.Character]
	for !seq.Done() {
		res, ok := seq.Next(ctx)
		require.True(t, ok)
		last = res
	}
	require.Equal(t, "c3", last.Key)

	p.Invalidate()
	resumed := p.PagesFrom(RefreshKey(last))

	res, ok := resumed.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"B"}, ids(res.Items))
	res, ok = resumed.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, ids(res.Items))
	assert.Equal(t, "c2", res.PrevKey)
	assert.True(t, resumed.Done())
}
