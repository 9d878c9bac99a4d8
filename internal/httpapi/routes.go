package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/linguabingo/bingo-backend/internal/config"
	"github.com/linguabingo/bingo-backend/internal/hub"
	"github.com/linguabingo/bingo-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, ws.Options{
		OutboxSize: cfg.OutboxSize,
		ReadRate:   cfg.ReadRate,
		ReadBurst:  cfg.ReadBurst,
	}, log))

	// The built front-end, when present.
	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}
	return r
}
