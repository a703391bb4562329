package dispatch

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/hid"
)

// TextBuffer is the non-repeating text path: text accumulates until an
// explicit flush, which emits exactly one command and clears the buffer.
type TextBuffer struct {
	transport device.Transport
	log       *zerolog.Logger

	mu    sync.Mutex
	value string
}

// NewTextBuffer builds an empty buffer sending through the given transport.
func NewTextBuffer(tr device.Transport, logger *zerolog.Logger) *TextBuffer {
	return &TextBuffer{transport: tr, log: logger}
}

// Set replaces the buffered text.
func (b *TextBuffer) Set(text string) {
	b.mu.Lock()
	b.value = text
	b.mu.Unlock()
}

// Value returns the current buffered text.
func (b *TextBuffer) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Flush emits one text command when the buffer is non-empty and reports
// whether a command was dispatched. The buffer is cleared once the send is
// dispatched, not on delivery confirmation. Flushing an empty buffer is a
// silent no-op.
func (b *TextBuffer) Flush() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.value == "" {
		return false
	}
	if err := b.transport.Send(hid.TextCommand(b.value)); err != nil {
		b.log.Debug().Err(err).Msg("text send failed")
	}
	b.value = ""
	return true
}
