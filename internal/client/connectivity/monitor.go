package connectivity

import (
	"context"
	"time"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/observable"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/logging"
)

// Monitor reports network availability.
type Monitor interface {
	// Subscribe delivers the current availability and then every change.
	// Values are conflated: a slow subscriber receives the latest value, so a
	// flip that reverts before it is read (true, false, true) may never be
	// seen. Subscribers react to the latest state, not to every edge.
	// The channel is closed when ctx is done.
	Subscribe(ctx context.Context) <-chan bool
	// Online returns the latest known availability without blocking.
	Online() bool
}

// Switch is a Monitor whose value is set explicitly.
type Switch struct {
	v *observable.Value[bool]
}

func NewSwitch(initial bool) *Switch {
	return &Switch{v: observable.NewValue(initial)}
}

// Set publishes online when it differs from the current value.
func (s *Switch) Set(online bool) {
	if s.v.Get() != online {
		s.v.Set(online)
	}
}

func (s *Switch) Online() bool { return s.v.Get() }

func (s *Switch) Subscribe(ctx context.Context) <-chan bool {
	return distinct(ctx, s.v.Subscribe(ctx))
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingMonitor pings a Pinger every interval and reports availability.
type PingMonitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	logger   logging.Logger
	v        *observable.Value[bool]
}

func NewPingMonitor(p Pinger, interval, timeout time.Duration, l logging.Logger) *PingMonitor {
	return &PingMonitor{
		pinger:   p,
		interval: interval,
		timeout:  timeout,
		logger:   l.With("module", "connectivity"),
		v:        observable.NewValue(false),
	}
}

func (m *PingMonitor) Online() bool { return m.v.Get() }

func (m *PingMonitor) Subscribe(ctx context.Context) <-chan bool {
	return distinct(ctx, m.v.Subscribe(ctx))
}

// Check pings once and records the result.
func (m *PingMonitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.pinger.Ping(ctx)
	cancel()

	online := err == nil
	if prev := m.v.Get(); prev != online {
		if online {
			m.logger.Info(ctx, "Switched to online mode")
		} else {
			m.logger.Warn(ctx, "Switched to offline mode", "error", err)
		}
		m.v.Set(online)
	}
	return online
}

// Run checks immediately and then on every tick until ctx is done.
func (m *PingMonitor) Run(ctx context.Context) {
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// distinct forwards values from in, dropping repeats of the last forwarded one.
func distinct(ctx context.Context, in <-chan bool) <-chan bool {
	out := make(chan bool, 1)
	go func() {
		defer close(out)
		first := true
		var last bool
		for v := range in {
			if !first && v == last {
				continue
			}
			first, last = false, v
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
