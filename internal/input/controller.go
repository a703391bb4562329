package input

import (
	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/dispatch"
	"github.com/vovakirdan/hidlink/internal/hid"
)

// binding ties one control to its action and its own repeater. Each control
// owns a dedicated repeater so concurrent gestures on different controls
// never collide on a shared timer.
type binding struct {
	action   hid.Action
	repeater *dispatch.Repeater
}

// Controller routes raw signals for one session to the per-control
// repeaters. Every disengage kind funnels into the same idempotent Stop,
// so duplicate or overlapping disengage channels are harmless.
type Controller struct {
	log      *zerolog.Logger
	bindings map[string]*binding
}

// NewController binds every control in the registry, creating one repeater
// per control through newRepeater.
func NewController(reg *Registry, newRepeater func() *dispatch.Repeater, logger *zerolog.Logger) *Controller {
	c := &Controller{
		log:      logger,
		bindings: make(map[string]*binding, len(reg.Controls())),
	}
	for _, control := range reg.Controls() {
		action, _ := reg.Action(control)
		c.bindings[control] = &binding{
			action:   action,
			repeater: newRepeater(),
		}
	}
	return c
}

// Handle applies one raw signal. Press starts the control's repeater;
// release, cancel and leave all stop it; a surface release stops every
// binding. Signals for unbound controls fail with an invalid_binding error.
func (c *Controller) Handle(sig Signal) error {
	switch sig.Kind {
	case SignalPress:
		b, ok := c.bindings[sig.Control]
		if !ok {
			return hid.NewError(hid.ErrCodeInvalidBinding, "no action bound to control "+sig.Control)
		}
		if b.repeater.Start(b.action) {
			c.log.Debug().Str("control", sig.Control).Str("action", string(b.action)).Msg("gesture start")
		}
		return nil
	case SignalRelease, SignalCancel, SignalLeave:
		b, ok := c.bindings[sig.Control]
		if !ok {
			return hid.NewError(hid.ErrCodeInvalidBinding, "no action bound to control "+sig.Control)
		}
		if b.repeater.Stop() {
			c.log.Debug().Str("control", sig.Control).Msg("gesture end")
		}
		return nil
	case SignalSurfaceRelease:
		for control, b := range c.bindings {
			if b.repeater.Stop() {
				c.log.Debug().Str("control", control).Msg("gesture end via surface release")
			}
		}
		return nil
	default:
		return hid.NewError(hid.ErrCodeBadRequest, "unknown signal kind")
	}
}

// Active returns the controls with a repeat session currently armed.
func (c *Controller) Active() []string {
	var out []string
	for control, b := range c.bindings {
		if b.repeater.Active() {
			out = append(out, control)
		}
	}
	return out
}

// Close stops every armed repeater. Called when the session's connection
// goes away, which is itself one more disengage channel.
func (c *Controller) Close() {
	for _, b := range c.bindings {
		b.repeater.Stop()
	}
}
