package device

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/hid"
)

type chanWriter struct {
	frames chan string
}

func newChanWriter() *chanWriter {
	return &chanWriter{frames: make(chan string, 16)}
}

func (w *chanWriter) Write(p []byte) (int, error) {
	w.frames <- string(p)
	return len(p), nil
}

func (w *chanWriter) Close() error { return nil }

func (w *chanWriter) next(t *testing.T) string {
	t.Helper()
	select {
	case frame := <-w.frames:
		return frame
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
		return ""
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("device gone") }
func (failWriter) Close() error                { return nil }

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestTransportFraming(t *testing.T) {
	w := newChanWriter()
	tr := NewWriter("test", w, testLogger())
	defer tr.Close()

	tests := []struct {
		cmd  hid.Command
		want string
	}{
		{cmd: hid.ActionCommand(hid.ActionUp), want: "up\n"},
		{cmd: hid.ActionCommand(hid.ActionRightClick), want: "right_click\n"},
		{cmd: hid.ActionCommand(hid.ActionEnter), want: "CMD:ENTER\n"},
		{cmd: hid.TextCommand("hi there"), want: "TEXT:hi there\n"},
	}

	for _, tt := range tests {
		if err := tr.Send(tt.cmd); err != nil {
			t.Fatalf("send failed: %v", err)
		}
		if got := w.next(t); got != tt.want {
			t.Fatalf("expected frame %q, got %q", tt.want, got)
		}
	}

	h := tr.Health()
	if h.Sent != uint64(len(tests)) || h.Failed != 0 {
		t.Fatalf("unexpected health: %+v", h)
	}
}

func TestTransportRejectsInvalidCommand(t *testing.T) {
	w := newChanWriter()
	tr := NewWriter("test", w, testLogger())
	defer tr.Close()

	if err := tr.Send(hid.Command{}); err == nil {
		t.Fatal("expected validation error for empty command")
	}
	if err := tr.Send(hid.Command{Action: hid.ActionUp, Text: "x"}); err == nil {
		t.Fatal("expected validation error for double payload")
	}
}

func TestTransportSendAfterClose(t *testing.T) {
	w := newChanWriter()
	tr := NewWriter("test", w, testLogger())

	if err := tr.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := tr.Send(hid.ActionCommand(hid.ActionUp)); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestTransportTracksWriteFailures(t *testing.T) {
	tr := NewWriter("test", failWriter{}, testLogger())
	defer tr.Close()

	// Send must not surface the write failure to the caller.
	if err := tr.Send(hid.ActionCommand(hid.ActionUp)); err != nil {
		t.Fatalf("send must be fire-and-forget, got %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h := tr.Health()
		if h.Failed == 1 && h.Degraded() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("write failure not reflected in health: %+v", tr.Health())
}
