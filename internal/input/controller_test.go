package input

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/dispatch"
	"github.com/vovakirdan/hidlink/internal/hid"
)

type recordTransport struct {
	mu       sync.Mutex
	commands []hid.Command
}

func (r *recordTransport) Send(cmd hid.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	return nil
}

func (r *recordTransport) Health() device.Health { return device.Health{} }
func (r *recordTransport) Close() error          { return nil }

func (r *recordTransport) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// newTestController uses an hour-long interval so only the synchronous
// emission on gesture start is observable.
func newTestController(tr device.Transport) *Controller {
	logger := zerolog.Nop()
	return NewController(DefaultRegistry(), func() *dispatch.Repeater {
		return dispatch.NewRepeater(tr, time.Hour, nil, &logger)
	}, &logger)
}

func TestControllerPressStartsRepeat(t *testing.T) {
	tr := &recordTransport{}
	c := newTestController(tr)
	defer c.Close()

	if err := c.Handle(Signal{Kind: SignalPress, Control: "up"}); err != nil {
		t.Fatalf("press failed: %v", err)
	}

	if got := tr.count(); got != 1 {
		t.Fatalf("expected 1 command on press, got %d", got)
	}
	if active := c.Active(); len(active) != 1 || active[0] != "up" {
		t.Fatalf("unexpected active controls: %v", active)
	}
}

func TestControllerUnknownControl(t *testing.T) {
	tr := &recordTransport{}
	c := newTestController(tr)
	defer c.Close()

	err := c.Handle(Signal{Kind: SignalPress, Control: "warp"})
	var domainErr *hid.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != hid.ErrCodeInvalidBinding {
		t.Fatalf("expected invalid_binding, got %v", err)
	}
	if got := tr.count(); got != 0 {
		t.Fatalf("expected no commands, got %d", got)
	}
}

func TestControllerRedundantDisengageChannels(t *testing.T) {
	tr := &recordTransport{}
	c := newTestController(tr)
	defer c.Close()

	if err := c.Handle(Signal{Kind: SignalPress, Control: "left"}); err != nil {
		t.Fatalf("press failed: %v", err)
	}

	// The same gesture ends through several channels in succession; only
	// the first one tears anything down.
	for _, kind := range []SignalKind{SignalLeave, SignalRelease, SignalCancel, SignalSurfaceRelease} {
		if err := c.Handle(Signal{Kind: kind, Control: "left"}); err != nil {
			t.Fatalf("disengage failed: %v", err)
		}
	}

	if got := tr.count(); got != 1 {
		t.Fatalf("expected 1 command total, got %d", got)
	}
	if active := c.Active(); len(active) != 0 {
		t.Fatalf("expected no active controls, got %v", active)
	}

	// The control can engage again afterwards.
	if err := c.Handle(Signal{Kind: SignalPress, Control: "left"}); err != nil {
		t.Fatalf("re-press failed: %v", err)
	}
	if got := tr.count(); got != 2 {
		t.Fatalf("expected 2 commands after re-press, got %d", got)
	}
}

func TestControllerSurfaceReleaseStopsEverything(t *testing.T) {
	tr := &recordTransport{}
	c := newTestController(tr)
	defer c.Close()

	_ = c.Handle(Signal{Kind: SignalPress, Control: "up"})
	_ = c.Handle(Signal{Kind: SignalPress, Control: "right"})

	if active := c.Active(); len(active) != 2 {
		t.Fatalf("expected 2 active controls, got %v", active)
	}

	if err := c.Handle(Signal{Kind: SignalSurfaceRelease}); err != nil {
		t.Fatalf("surface release failed: %v", err)
	}
	if active := c.Active(); len(active) != 0 {
		t.Fatalf("expected no active controls, got %v", active)
	}
}

func TestControllerCloseStopsActiveGestures(t *testing.T) {
	tr := &recordTransport{}
	c := newTestController(tr)

	_ = c.Handle(Signal{Kind: SignalPress, Control: "down"})
	c.Close()

	if active := c.Active(); len(active) != 0 {
		t.Fatalf("expected no active controls after close, got %v", active)
	}
}
