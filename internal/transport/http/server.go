package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/config"
	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/input"
	"github.com/vovakirdan/hidlink/internal/store"
	"github.com/vovakirdan/hidlink/web"
)

// NewServer builds the HTTP server: panel page, REST API, shortcut CRUD
// and the WebSocket gesture endpoint.
func NewServer(tr device.Transport, reg *input.Registry, st store.Store, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	api := NewAPIHandlers(tr, logger)
	shortcuts := NewShortcutHandlers(st, tr, logger)

	router.GET("/", func(c *gin.Context) {
		c.Data(stdhttp.StatusOK, "text/html; charset=utf-8", web.Index())
	})
	router.GET("/health", api.Health)

	// Routes kept compatible with the original panel clients.
	router.POST("/api/mouse", api.Mouse)
	router.POST("/api/keyboard", api.Keyboard)
	router.POST("/control", api.LegacyControl)

	sc := router.Group("/api/shortcuts")
	{
		sc.GET("", shortcuts.List)
		sc.POST("", shortcuts.Create)
		sc.DELETE("/:id", shortcuts.Delete)
		sc.POST("/:id/send", shortcuts.Send)
	}

	router.GET("/ws", gin.WrapH(NewWSHandler(tr, reg, cfg, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
