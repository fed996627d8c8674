package connectivity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePinger struct {
	fail  atomic.Bool
	calls atomic.Int32
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls.Add(1)
	if f.fail.Load() {
		return errors.New("down")
	}
	return nil
}

func recv(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("no value received")
	}
	return false
}

func TestSwitch_DeliversCurrentThenChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSwitch(false)
	ch := s.Subscribe(ctx)

	assert.False(t, recv(t, ch))

	s.Set(true)
	assert.True(t, recv(t, ch))
	assert.True(t, s.Online())

	s.Set(false)
	assert.False(t, recv(t, ch))
}

func TestSwitch_RepeatedValueNotDelivered(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSwitch(true)
	ch := s.Subscribe(ctx)
	assert.True(t, recv(t, ch))

	s.Set(true)
	s.Set(true)

	select {
	case v := <-ch:
		t.Fatalf("unexpected value %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSwitch_RapidFlipsSettleOnLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSwitch(false)
	ch := s.Subscribe(ctx)
	assert.False(t, recv(t, ch))

	s.Set(true)
	s.Set(false)
	s.Set(true)

	var seen []bool
	timeout := time.After(200 * time.Millisecond)
drain:
	for {
		select {
		case v := <-ch:
			seen = append(seen, v)
		case <-timeout:
			break drain
		}
	}

	require.NotEmpty(t, seen)
	assert.LessOrEqual(t, len(seen), 3)
	assert.True(t, seen[len(seen)-1], "latest value is delivered last")
	assert.True(t, s.Online())
}

func TestSwitch_SubscriptionClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSwitch(true)
	ch := s.Subscribe(ctx)
	recv(t, ch)

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestPingMonitor_CheckFlipsState(t *testing.T) {
	p := &fakePinger{}
	m := NewPingMonitor(p, time.Hour, 100*time.Millisecond, logging.Nop())

	assert.False(t, m.Online())
	assert.True(t, m.Check(context.Background()))
	assert.True(t, m.Online())

	p.fail.Store(true)
	assert.False(t, m.Check(context.Background()))
	assert.False(t, m.Online())
}

func TestPingMonitor_RunPublishesTransitions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := &fakePinger{}
	p.fail.Store(true)
	m := NewPingMonitor(p, 10*time.Millisecond, 50*time.Millisecond, logging.Nop())
	ch := m.Subscribe(ctx)
	assert.False(t, recv(t, ch))

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	p.fail.Store(false)
	assert.True(t, recv(t, ch))

	p.fail.Store(true)
	assert.False(t, recv(t, ch))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.GreaterOrEqual(t, p.calls.Load(), int32(3))
}
