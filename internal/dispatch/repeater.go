// Package dispatch turns gesture lifecycle events into a bounded stream of
// device commands: an immediate send on engage, periodic re-sends while the
// gesture is held, and exactly one teardown no matter how many disengage
// signals arrive.
package dispatch

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/hid"
)

// DefaultInterval is the repeat cadence while a gesture is held.
const DefaultInterval = 100 * time.Millisecond

// Repeater owns at most one active repeat session. Start and Stop are both
// idempotent: duplicate engage signals and redundant disengage signals are
// expected from the capture layer and must be harmless here.
type Repeater struct {
	interval  time.Duration
	clock     clock.Clock
	transport device.Transport
	log       *zerolog.Logger

	mu      sync.Mutex
	session *session
}

// session holds the state of one active repeat cycle. The ticker is owned
// exclusively by this session; closing done releases it.
type session struct {
	action hid.Action
	ticker *clock.Ticker
	done   chan struct{}
}

// NewRepeater builds a repeater sending through the given transport.
// A non-positive interval falls back to DefaultInterval; a nil clock falls
// back to the wall clock.
func NewRepeater(tr device.Transport, interval time.Duration, clk clock.Clock, logger *zerolog.Logger) *Repeater {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Repeater{
		interval:  interval,
		clock:     clk,
		transport: tr,
		log:       logger,
	}
}

// Start emits one command for the action immediately and arms the repeat
// ticker. When a session is already active the call is a no-op and returns
// false, which keeps duplicate engage signals from stacking timers.
func (r *Repeater) Start(action hid.Action) bool {
	r.mu.Lock()
	if r.session != nil {
		r.mu.Unlock()
		return false
	}
	s := &session{
		action: action,
		ticker: r.clock.Ticker(r.interval),
		done:   make(chan struct{}),
	}
	r.session = s
	r.mu.Unlock()

	cmd := hid.ActionCommand(action)
	r.emit(cmd)
	go r.run(s, cmd)
	return true
}

// Stop disarms the active session. Calling it while idle is a no-op and
// returns false; every redundant disengage channel funnels into this one
// entry point.
func (r *Repeater) Stop() bool {
	r.mu.Lock()
	s := r.session
	r.session = nil
	r.mu.Unlock()

	if s == nil {
		return false
	}
	close(s.done)
	return true
}

// Active reports whether a repeat session is currently armed.
func (r *Repeater) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session != nil
}

func (r *Repeater) run(s *session, cmd hid.Command) {
	defer s.ticker.Stop()
	for {
		select {
		case <-s.ticker.C:
			r.emit(cmd)
		case <-s.done:
			return
		}
	}
}

// emit is fire-and-forget: a delivery failure never changes repeater state,
// the next tick fires regardless.
func (r *Repeater) emit(cmd hid.Command) {
	if err := r.transport.Send(cmd); err != nil {
		r.log.Debug().Err(err).Str("action", string(cmd.Action)).Msg("command send failed")
	}
}
