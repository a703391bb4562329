package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/config"
	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/dispatch"
	"github.com/vovakirdan/hidlink/internal/hid"
	"github.com/vovakirdan/hidlink/internal/input"
	"github.com/vovakirdan/hidlink/internal/proto"
)

// WSHandler upgrades HTTP connections and runs one gesture session per
// connection: a controller with per-control repeaters plus a text buffer.
type WSHandler struct {
	transport device.Transport
	registry  *input.Registry
	cfg       config.Config
	log       *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(tr device.Transport, reg *input.Registry, cfg config.Config, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{transport: tr, registry: reg, cfg: cfg, log: logger}
}

// wsSession is the per-connection state.
type wsSession struct {
	id         string
	controller *input.Controller
	buffer     *dispatch.TextBuffer
	out        chan proto.Outbound
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	sess := &wsSession{
		id: uuid.NewString(),
		controller: input.NewController(h.registry, func() *dispatch.Repeater {
			return dispatch.NewRepeater(h.transport, h.cfg.RepeatInterval, nil, h.log)
		}, h.log),
		buffer: dispatch.NewTextBuffer(h.transport, h.log),
		out:    make(chan proto.Outbound, 8),
	}
	// Connection loss is one more disengage channel: whatever ends the
	// session must disarm every repeater it started.
	defer sess.controller.Close()

	h.log.Info().Str("session_id", sess.id).Msg("gesture session opened")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, sess)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, sess)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("session_id", sess.id).Msg("ws connection closed with error")
		}
	}

	h.log.Info().Str("session_id", sess.id).Msg("gesture session closed")
	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, sess *wsSession) error {
	limiter := newRateLimiter(h.cfg.WSRateLimit)
	limiter.startReset(ctx.Done())

	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}

		if !limiter.allow() {
			if err := h.push(ctx, sess, proto.Outbound{
				Type:  proto.OutboundTypeError,
				Error: &proto.Error{Code: "rate_limited", Msg: "too many messages"},
			}); err != nil {
				return err
			}
			continue
		}

		switch inbound.Type {
		case proto.InboundTypeText:
			var data proto.TextData
			if err := json.Unmarshal(inbound.Data, &data); err != nil {
				h.log.Warn().Err(err).Str("session_id", sess.id).Msg("failed to decode text data")
				return err
			}
			sess.buffer.Set(data.Value)
		case proto.InboundTypeSubmit:
			dispatched := sess.buffer.Flush()
			if err := h.push(ctx, sess, proto.Outbound{
				Type:  proto.OutboundTypeAck,
				Event: proto.InboundTypeSubmit,
				Data:  proto.AckData{Dispatched: dispatched},
			}); err != nil {
				return err
			}
		default:
			sig, protoErr, err := inboundToSignal(inbound)
			if err != nil {
				h.log.Warn().Err(err).Str("session_id", sess.id).Msg("failed to map inbound")
				return err
			}
			if protoErr != nil {
				if err := h.push(ctx, sess, proto.Outbound{
					Type:  proto.OutboundTypeError,
					Error: protoErr,
				}); err != nil {
					return err
				}
				continue
			}
			if err := sess.controller.Handle(*sig); err != nil {
				if err := h.push(ctx, sess, outboundFromError(err)); err != nil {
					return err
				}
			}
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, sess *wsSession) error {
	for {
		select {
		case outbound := <-sess.out:
			if err := wsjson.Write(ctx, conn, outbound); err != nil {
				h.log.Error().Err(err).Str("session_id", sess.id).Msg("write ws outbound")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *WSHandler) push(ctx context.Context, sess *wsSession, outbound proto.Outbound) error {
	select {
	case sess.out <- outbound:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func outboundFromError(err error) proto.Outbound {
	var domainErr *hid.DomainError
	if errors.As(err, &domainErr) {
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: domainErr.Code, Msg: domainErr.Message},
		}
	}
	return proto.Outbound{
		Type:  proto.OutboundTypeError,
		Error: &proto.Error{Code: "internal", Msg: err.Error()},
	}
}
