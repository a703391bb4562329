package http

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/config"
	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/hid"
	"github.com/vovakirdan/hidlink/internal/input"
	"github.com/vovakirdan/hidlink/internal/store/sqlite"
)

// recordTransport collects every command sent through it.
type recordTransport struct {
	mu       sync.Mutex
	commands []hid.Command
}

func (r *recordTransport) Send(cmd hid.Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	return nil
}

func (r *recordTransport) Health() device.Health {
	return device.Health{Endpoint: "test"}
}

func (r *recordTransport) Close() error { return nil }

func (r *recordTransport) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

func (r *recordTransport) last() hid.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commands) == 0 {
		return hid.Command{}
	}
	return r.commands[len(r.commands)-1]
}

func (r *recordTransport) waitForCount(t *testing.T, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r.count() >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d commands, got %d", want, r.count())
}

// startTestServer builds the full router over an in-memory store and a
// recording transport. The hour-long repeat interval keeps timer ticks out
// of the command counts.
func startTestServer(t *testing.T) (*httptest.Server, *recordTransport) {
	t.Helper()

	tr := &recordTransport{}
	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	logger := zerolog.Nop()
	cfg := config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
		RepeatInterval:    time.Hour,
	}

	server := NewServer(tr, input.DefaultRegistry(), st, cfg, &logger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, tr
}

func wsURL(ts *httptest.Server) string {
	return strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
}
