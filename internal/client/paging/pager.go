package paging

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/observable"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/logging"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"golang.org/x/sync/singleflight"
)

// DefaultPageSize is used when Options.PageSize is not positive.
const DefaultPageSize = 10

// ErrInvalidated ends a Sequence whose generation was replaced by Invalidate.
var ErrInvalidated = errors.New("pager invalidated")

// Source is the data access used by a Pager.
type Source[T any] struct {
	Fetch   func(ctx context.Context, cursor string, pageSize int) (models.Page[T], error)
	Local   func(ctx context.Context) []T
	Persist func(ctx context.Context, items []T) error
}

// Options configures a Pager.
type Options struct {
	// PageSize is the remote page size. DefaultPageSize when not positive.
	PageSize int
	// Online reports the latest known network availability. It must not block.
	Online func() bool
	Logger logging.Logger
}

// LoadResult is the outcome of one page request. An empty key means the
// first page; an empty NextKey means there is nothing after this page.
// HasPrev tells a previous page of the same sequence (whose key is PrevKey,
// possibly the empty first-page key) from no previous page at all.
type LoadResult[T any] struct {
	Key     string
	PrevKey string
	HasPrev bool
	NextKey string
	Items   []T
	Err     error
}

// Pager loads pages of one entity kind, from the remote source when online
// and from the cache otherwise. Concurrent loads of the same key in the same
// generation share one fetch.
type Pager[T models.Identifiable] struct {
	kind      models.Kind
	src       Source[T]
	transform func([]T) []T
	pageSize  int
	online    func() bool
	logger    logging.Logger

	group singleflight.Group
	gen   *observable.Value[uint64]
}

// New builds a Pager. transform may be nil.
func New[T models.Identifiable](kind models.Kind, src Source[T], transform func([]T) []T, opts Options) *Pager[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Online == nil {
		opts.Online = func() bool { return false }
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if transform == nil {
		transform = func(items []T) []T { return items }
	}
	return &Pager[T]{
		kind:      kind,
		src:       src,
		transform: transform,
		pageSize:  opts.PageSize,
		online:    opts.Online,
		logger:    opts.Logger.With("module", "pager", "kind", kind),
		gen:       observable.NewValue[uint64](0),
	}
}

func (p *Pager[T]) Kind() models.Kind { return p.kind }

// Load requests the page identified by key. The shared fetch is not bound
// to any single caller: a caller whose ctx ends gets ctx.Err() while the
// others still receive the page.
func (p *Pager[T]) Load(ctx context.Context, key string) LoadResult[T] {
	flightKey := strconv.FormatUint(p.gen.Get(), 10) + "/" + key
	shared := context.WithoutCancel(ctx)
	ch := p.group.DoChan(flightKey, func() (any, error) {
		return p.load(shared, key), nil
	})
	select {
	case r := <-ch:
		res := r.Val.(LoadResult[T])
		res.Items = slices.Clone(res.Items)
		return res
	case <-ctx.Done():
		return LoadResult[T]{Key: key, Err: ctx.Err()}
	}
}

func (p *Pager[T]) load(ctx context.Context, key string) (res LoadResult[T]) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error(ctx, "page load panicked", "key", key, "panic", r)
			res = LoadResult[T]{Key: key, Err: fmt.Errorf("page load panicked: %v", r)}
		}
	}()

	if !p.online() {
		items := models.Dedup(p.transform(p.src.Local(ctx)))
		p.logger.Debug(ctx, "served page from cache", "items", len(items))
		return LoadResult[T]{Key: key, Items: items}
	}

	page, err := p.src.Fetch(ctx, key, p.pageSize)
	if err != nil {
		return LoadResult[T]{Key: key, Err: err}
	}

	items := models.Dedup(p.transform(page.Items))
	if err := p.src.Persist(ctx, items); err != nil {
		p.logger.Warn(ctx, "failed to persist page", "key", key, "error", err)
		return LoadResult[T]{Key: key, Err: err}
	}

	res = LoadResult[T]{Key: key, Items: items}
	if page.HasMore {
		res.NextKey = page.NextCursor
	}
	return res
}

// Invalidate starts a new generation.
func (p *Pager[T]) Invalidate() {
	p.gen.Update(func(g uint64) uint64 { return g + 1 })
}

// Pages returns a sequence starting at the first page of the current generation.
func (p *Pager[T]) Pages() *Sequence[T] {
	return p.PagesFrom("")
}

// PagesFrom returns a sequence of the current generation starting at key,
// typically RefreshKey of the last page seen before an invalidation.
func (p *Pager[T]) PagesFrom(key string) *Sequence[T] {
	return &Sequence[T]{p: p, gen: p.gen.Get(), next: key}
}

// Subscribe yields a fresh Sequence now and after every Invalidate.
func (p *Pager[T]) Subscribe(ctx context.Context) <-chan *Sequence[T] {
	gens := p.gen.Subscribe(ctx)
	out := make(chan *Sequence[T], 1)
	go func() {
		defer close(out)
		for g := range gens {
			seq := &Sequence[T]{p: p, gen: g}
			select {
			case <-out:
			default:
			}
			select {
			case out <- seq:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// RefreshKey picks the key to reload after invalidation: the previous key of
// the last loaded page when it has one (the empty key when that previous page
// was the first), else its next key, else the first page.
func RefreshKey[T any](last LoadResult[T]) string {
	if last.HasPrev {
		return last.PrevKey
	}
	return last.NextKey
}

// Sequence is a cursor over the pages of one generation. It is safe for
// concurrent use; loads are serialized.
type Sequence[T models.Identifiable] struct {
	p   *Pager[T]
	gen uint64

	mu      sync.Mutex
	next    string
	prev    string
	hasPrev bool
	done    bool
}

// Next loads the following page. It returns false once the sequence is
// exhausted or invalidated. A failed load is returned with ok=true and does
// not advance, so the same key is retried by the next call.
func (s *Sequence[T]) Next(ctx context.Context) (LoadResult[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return LoadResult[T]{}, false
	}
	if s.p.gen.Get() != s.gen {
		s.done = true
		return LoadResult[T]{Key: s.next, Err: ErrInvalidated}, false
	}

	key := s.next
	res := s.p.Load(ctx, key)
	res.PrevKey = s.prev
	res.HasPrev = s.hasPrev

	if s.p.gen.Get() != s.gen {
		s.done = true
		return LoadResult[T]{Key: key, Err: ErrInvalidated}, false
	}
	if res.Err != nil {
		return res, true
	}

	s.prev = key
	s.hasPrev = true
	s.next = res.NextKey
	if res.NextKey == "" {
		s.done = true
	}
	return res, true
}

// Done reports whether no further page can be loaded.
func (s *Sequence[T]) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done || s.p.gen.Get() != s.gen
}
