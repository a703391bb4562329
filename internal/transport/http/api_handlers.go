package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/hid"
)

// APIHandlers provides HTTP handlers for the single-shot REST endpoints.
// These mirror the panel's WebSocket path but send exactly one command per
// request, for clients that do not hold a gesture connection.
type APIHandlers struct {
	transport device.Transport
	log       *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(tr device.Transport, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		transport: tr,
		log:       logger,
	}
}

// MouseRequest represents the mouse control request body.
type MouseRequest struct {
	HIDAction string `json:"hid_action" binding:"required"`
}

// KeyboardRequest represents the keyboard request body. Exactly one of the
// two fields is expected.
type KeyboardRequest struct {
	HIDKey  string  `json:"hid_key"`
	HIDText *string `json:"hid_text"`
}

// ControlRequest is the legacy single-shot request body.
type ControlRequest struct {
	Action string `json:"action" binding:"required"`
}

// StatusResponse reports the outcome of a single-shot send.
type StatusResponse struct {
	Status string `json:"status"`
	Action string `json:"action,omitempty"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports server and device transport liveness.
type HealthResponse struct {
	Status string        `json:"status"`
	Device device.Health `json:"device"`
}

// Mouse handles single-shot mouse actions.
// POST /api/mouse
func (h *APIHandlers) Mouse(c *gin.Context) {
	var req MouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid mouse request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	action := hid.Action(req.HIDAction)
	if !action.Known() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown action"})
		return
	}

	h.send(hid.ActionCommand(action))
	c.JSON(http.StatusOK, StatusResponse{Status: "ok", Action: string(action)})
}

// Keyboard handles single-shot key chords and text payloads.
// POST /api/keyboard
func (h *APIHandlers) Keyboard(c *gin.Context) {
	var req KeyboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid keyboard request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	switch {
	case req.HIDKey != "":
		action := hid.Action(req.HIDKey)
		if !action.IsKey() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown key"})
			return
		}
		h.send(hid.ActionCommand(action))
		c.JSON(http.StatusOK, StatusResponse{Status: "ok", Action: string(action)})
	case req.HIDText != nil:
		// An empty text payload is a silent no-op, not an error.
		if *req.HIDText != "" {
			h.send(hid.TextCommand(*req.HIDText))
		}
		c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "hid_key or hid_text is required"})
	}
}

// legacyAliases maps tokens older panel builds still send.
var legacyAliases = map[string]hid.Action{
	"click": hid.ActionLeftClick,
}

// LegacyControl handles the original panel's single-shot route.
// POST /control
func (h *APIHandlers) LegacyControl(c *gin.Context) {
	var req ControlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Status: "error"})
		return
	}

	action := hid.Action(req.Action)
	if alias, ok := legacyAliases[req.Action]; ok {
		action = alias
	}
	if !action.IsMouse() {
		c.JSON(http.StatusBadRequest, StatusResponse{Status: "error"})
		return
	}

	h.send(hid.ActionCommand(action))
	c.JSON(http.StatusOK, StatusResponse{Status: "ok", Action: req.Action})
}

// Health reports transport health.
// GET /health
func (h *APIHandlers) Health(c *gin.Context) {
	health := h.transport.Health()
	status := "ok"
	if health.Degraded() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, HealthResponse{Status: status, Device: health})
}

// send is fire-and-forget; a failed enqueue is only a diagnostic.
func (h *APIHandlers) send(cmd hid.Command) {
	if err := h.transport.Send(cmd); err != nil {
		h.log.Debug().Err(err).Msg("single-shot send failed")
	}
}
