package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/hid"
	"github.com/vovakirdan/hidlink/internal/store"
)

// ShortcutHandlers provides CRUD for user-defined panel shortcuts and a
// trigger endpoint that sends a stored shortcut to the device.
type ShortcutHandlers struct {
	store     store.Store
	transport device.Transport
	log       *zerolog.Logger
}

// NewShortcutHandlers creates a new shortcut handlers instance.
func NewShortcutHandlers(st store.Store, tr device.Transport, logger *zerolog.Logger) *ShortcutHandlers {
	return &ShortcutHandlers{
		store:     st,
		transport: tr,
		log:       logger,
	}
}

// CreateShortcutRequest represents the shortcut creation body. Exactly one
// of Action or Text must be set.
type CreateShortcutRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=64"`
	Action string `json:"action"`
	Text   string `json:"text"`
}

// ShortcutResponse represents one stored shortcut.
type ShortcutResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Action string `json:"action,omitempty"`
	Text   string `json:"text,omitempty"`
}

func shortcutResponse(sc *store.Shortcut) ShortcutResponse {
	return ShortcutResponse{
		ID:     sc.ID,
		Name:   sc.Name,
		Action: sc.Action,
		Text:   sc.Text,
	}
}

// List returns every stored shortcut.
// GET /api/shortcuts
func (h *ShortcutHandlers) List(c *gin.Context) {
	shortcuts, err := h.store.ListShortcuts(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list shortcuts")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	out := make([]ShortcutResponse, 0, len(shortcuts))
	for i := range shortcuts {
		out = append(out, shortcutResponse(&shortcuts[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create stores a new shortcut.
// POST /api/shortcuts
func (h *ShortcutHandlers) Create(c *gin.Context) {
	var req CreateShortcutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid shortcut request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if (req.Action == "") == (req.Text == "") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "exactly one of action or text is required"})
		return
	}
	if req.Action != "" && !hid.Action(req.Action).Known() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown action"})
		return
	}

	sc, err := h.store.CreateShortcut(c.Request.Context(), req.Name, req.Action, req.Text)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "shortcut already exists"})
			return
		}
		h.log.Error().Err(err).Str("name", req.Name).Msg("failed to create shortcut")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, shortcutResponse(sc))
}

// Delete removes a shortcut by id.
// DELETE /api/shortcuts/:id
func (h *ShortcutHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shortcut id"})
		return
	}

	if err := h.store.DeleteShortcut(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "shortcut not found"})
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("failed to delete shortcut")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Send dispatches a stored shortcut to the device.
// POST /api/shortcuts/:id/send
func (h *ShortcutHandlers) Send(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shortcut id"})
		return
	}

	sc, err := h.store.GetShortcut(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "shortcut not found"})
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("failed to load shortcut")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	var cmd hid.Command
	if sc.Action != "" {
		cmd = hid.ActionCommand(hid.Action(sc.Action))
	} else {
		cmd = hid.TextCommand(sc.Text)
	}
	if err := h.transport.Send(cmd); err != nil {
		h.log.Debug().Err(err).Int64("id", id).Msg("shortcut send failed")
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "ok", Action: sc.Action})
}
