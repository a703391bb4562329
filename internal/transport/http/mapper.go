package http

import (
	"encoding/json"

	"github.com/vovakirdan/hidlink/internal/hid"
	"github.com/vovakirdan/hidlink/internal/input"
	"github.com/vovakirdan/hidlink/internal/proto"
)

var signalKinds = map[string]input.SignalKind{
	proto.InboundTypePress:   input.SignalPress,
	proto.InboundTypeRelease: input.SignalRelease,
	proto.InboundTypeCancel:  input.SignalCancel,
	proto.InboundTypeLeave:   input.SignalLeave,
}

// inboundToSignal maps a gesture envelope to a raw input signal. A protocol
// error is returned for malformed but decodable input; a non-nil error only
// for undecodable frames, which end the session.
func inboundToSignal(inbound proto.Inbound) (*input.Signal, *proto.Error, error) {
	if inbound.Type == proto.InboundTypeSurfaceRelease {
		// Carries no control: it applies to every binding.
		return &input.Signal{Kind: input.SignalSurfaceRelease}, nil, nil
	}

	kind, ok := signalKinds[inbound.Type]
	if !ok {
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}

	var gesture proto.GestureData
	if err := json.Unmarshal(inbound.Data, &gesture); err != nil {
		return nil, nil, err
	}
	if gesture.Control == "" {
		return nil, &proto.Error{Code: hid.ErrCodeBadRequest, Msg: "control is required"}, nil
	}

	return &input.Signal{Kind: kind, Control: gesture.Control}, nil, nil
}
