package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the panel.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	ProtocolVersion = 1

	// Gesture lifecycle signals. Press engages a control; the other three
	// are independent disengage channels that all mean the same thing.
	InboundTypePress          = "press"
	InboundTypeRelease        = "release"
	InboundTypeCancel         = "cancel"
	InboundTypeLeave          = "leave"
	InboundTypeSurfaceRelease = "surface_release"

	// Text payload path.
	InboundTypeText   = "text"
	InboundTypeSubmit = "submit"

	OutboundTypeAck   = "ack"
	OutboundTypeError = "error"
)

// GestureData names the control a gesture signal belongs to. Surface
// release carries no control and sends an empty object.
type GestureData struct {
	Control string `json:"control"`
}

// TextData sets the session's text buffer.
type TextData struct {
	Value string `json:"value"`
}

// Outbound is the envelope for messages sent to the panel.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// AckData confirms a submit and reports whether a command was dispatched.
type AckData struct {
	Dispatched bool `json:"dispatched"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
