package input

import (
	"github.com/vovakirdan/hidlink/internal/hid"
)

// Registry maps control handles to the action each one triggers. It is
// built once at startup and read-only afterwards.
type Registry struct {
	controls map[string]hid.Action
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{controls: make(map[string]hid.Action)}
}

// DefaultRegistry binds every known action to a control named after its
// token, which is how the panel page names its buttons.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, a := range hid.Actions() {
		// Register cannot fail for known actions.
		_ = r.Register(string(a), a)
	}
	return r
}

// Register binds one action to one control. It fails when the control
// handle is empty, the action is not a known token, or the control is
// already bound.
func (r *Registry) Register(control string, action hid.Action) error {
	if control == "" {
		return hid.NewError(hid.ErrCodeInvalidBinding, "control handle is empty")
	}
	if !action.Known() {
		return hid.NewError(hid.ErrCodeUnknownAction, "unknown action "+string(action))
	}
	if _, exists := r.controls[control]; exists {
		return hid.NewError(hid.ErrCodeInvalidBinding, "control "+control+" already bound")
	}
	r.controls[control] = action
	r.order = append(r.order, control)
	return nil
}

// Action returns the action bound to the control, if any.
func (r *Registry) Action(control string) (hid.Action, bool) {
	a, ok := r.controls[control]
	return a, ok
}

// Controls returns every bound control handle in registration order.
func (r *Registry) Controls() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
