package device

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/hid"
)

// queueSize caps the number of commands waiting to be written. Repeat ticks
// keep firing regardless of device latency, so once the queue is full new
// commands are dropped rather than blocking the dispatcher.
const queueSize = 64

var ErrClosed = errors.New("transport closed")

// Transport delivers commands toward the downstream HID emulator.
// Send must not block: delivery is best-effort and completion is never
// awaited by callers.
type Transport interface {
	Send(cmd hid.Command) error
	Health() Health
	Close() error
}

// Health is a point-in-time snapshot of transport liveness.
type Health struct {
	Endpoint   string    `json:"endpoint"`
	Sent       uint64    `json:"sent"`
	Dropped    uint64    `json:"dropped"`
	Failed     uint64    `json:"failed"`
	LastError  string    `json:"last_error,omitempty"`
	LastSendAt time.Time `json:"last_send_at,omitzero"`
}

// Degraded reports whether the most recent write failed.
func (h Health) Degraded() bool {
	return h.LastError != ""
}

// lineTransport frames commands onto a byte stream, one per line, from a
// single writer goroutine fed by a bounded queue.
type lineTransport struct {
	endpoint string
	w        io.WriteCloser
	log      *zerolog.Logger

	queue chan hid.Command
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup

	sent    atomic.Uint64
	dropped atomic.Uint64
	failed  atomic.Uint64

	mu       sync.Mutex
	lastErr  error
	lastSend time.Time
}

// NewWriter builds a transport over an arbitrary byte sink. Used by the
// serial constructor and directly by tests.
func NewWriter(endpoint string, w io.WriteCloser, logger *zerolog.Logger) Transport {
	t := &lineTransport{
		endpoint: endpoint,
		w:        w,
		log:      logger,
		queue:    make(chan hid.Command, queueSize),
		done:     make(chan struct{}),
	}
	t.wg.Add(1)
	go t.writeLoop()
	return t
}

func (t *lineTransport) Send(cmd hid.Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	select {
	case <-t.done:
		return ErrClosed
	default:
	}
	select {
	case t.queue <- cmd:
		return nil
	default:
		t.dropped.Add(1)
		t.log.Debug().Str("endpoint", t.endpoint).Msg("device queue full, command dropped")
		return nil
	}
}

func (t *lineTransport) writeLoop() {
	defer t.wg.Done()
	for {
		select {
		case cmd := <-t.queue:
			_, err := t.w.Write(cmd.Encode())
			t.mu.Lock()
			t.lastErr = err
			t.lastSend = time.Now()
			t.mu.Unlock()
			if err != nil {
				t.failed.Add(1)
				t.log.Warn().Err(err).Str("endpoint", t.endpoint).Msg("device write failed")
				continue
			}
			t.sent.Add(1)
		case <-t.done:
			return
		}
	}
}

func (t *lineTransport) Health() Health {
	t.mu.Lock()
	lastErr := t.lastErr
	lastSend := t.lastSend
	t.mu.Unlock()

	h := Health{
		Endpoint:   t.endpoint,
		Sent:       t.sent.Load(),
		Dropped:    t.dropped.Load(),
		Failed:     t.failed.Load(),
		LastSendAt: lastSend,
	}
	if lastErr != nil {
		h.LastError = lastErr.Error()
	}
	return h
}

func (t *lineTransport) Close() error {
	t.once.Do(func() {
		close(t.done)
	})
	t.wg.Wait()
	return t.w.Close()
}
