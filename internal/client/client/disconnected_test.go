package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisconnected_EveryCallUnavailable(t *testing.T) {
	var c Client = Disconnected{}
	ctx := context.Background()

	assert.ErrorIs(t, c.Ping(ctx), ErrUnavailable)

	page, err := c.Characters(ctx, "", 10)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, page.Items)
	assert.False(t, page.HasMore)

	_, err = c.Starships(ctx, "", 10)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = c.Planets(ctx, "", 10)
	assert.ErrorIs(t, err, ErrUnavailable)

	ch, err := c.Character(ctx, "1")
	assert.Nil(t, ch)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = c.Starship(ctx, "1")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = c.Planet(ctx, "1")
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.NoError(t, c.Close())
}
