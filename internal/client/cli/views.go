package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/paging"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

type pageView interface {
	first(ctx context.Context) error
	more(ctx context.Context) error
	reload(ctx context.Context) error
}

// pagerView walks one pager and remembers the last page shown.
type pagerView[T models.Identifiable] struct {
	pager  *paging.Pager[T]
	render func(T) string
	con    *console

	seq  *paging.Sequence[T]
	last paging.LoadResult[T]
}

func (v *pagerView[T]) first(ctx context.Context) error {
	v.seq = v.pager.Pages()
	v.last = paging.LoadResult[T]{}
	return v.next(ctx)
}

func (v *pagerView[T]) more(ctx context.Context) error {
	if v.seq == nil {
		return v.first(ctx)
	}
	return v.next(ctx)
}

// reload restarts the listing at the refresh key of the last page shown.
func (v *pagerView[T]) reload(ctx context.Context) error {
	v.seq = v.pager.PagesFrom(paging.RefreshKey(v.last))
	return v.next(ctx)
}

func (v *pagerView[T]) next(ctx context.Context) error {
	res, ok := v.seq.Next(ctx)
	if !ok {
		if errors.Is(res.Err, paging.ErrInvalidated) {
			return errors.New("the listing changed; use reload")
		}
		v.con.Println("No more items.")
		return nil
	}
	if res.Err != nil {
		return fmt.Errorf("load %s page: %w", v.pager.Kind(), res.Err)
	}
	v.last = res

	if len(res.Items) == 0 {
		v.con.Println("No items.")
	}
	for _, it := range res.Items {
		v.con.Println(v.render(it))
	}
	if !v.seq.Done() {
		v.con.Println("(more)")
	}
	return nil
}
