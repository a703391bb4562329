// Package input normalizes raw gesture lifecycle signals from a control
// surface into start/stop calls on the repeater bound to each control.
package input

// SignalKind classifies a raw gesture lifecycle signal.
type SignalKind int

const (
	// SignalPress is the primary engage signal on a control.
	SignalPress SignalKind = iota
	// SignalRelease is an explicit disengage on the control.
	SignalRelease
	// SignalCancel is a cancellation of the input sequence.
	SignalCancel
	// SignalLeave fires when the pointer leaves the control while engaged.
	SignalLeave
	// SignalSurfaceRelease is a release observed anywhere on the enclosing
	// surface. It is the safety net for disengage signals the other
	// channels missed, and carries no control name.
	SignalSurfaceRelease
)

// Signal is one raw gesture lifecycle event as reported by the surface.
type Signal struct {
	Kind    SignalKind
	Control string
}
