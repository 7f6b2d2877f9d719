package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/breadbun407/WordScrawl/internal/roomapi"
	"github.com/breadbun407/WordScrawl/internal/websocket"
	"github.com/breadbun407/WordScrawl/pkg/logger"
)

type RouterConfig struct {
	WSHandler   *websocket.Handler
	RoomHandler *roomapi.Handler
	Log         *logger.Logger
}

func NewRouter(config RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware block
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(config.Log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/rooms", func(r chi.Router) {
			config.RoomHandler.RegisterRoutes(r)
		})
	})

	r.Route("/ws", func(r chi.Router) {
		config.WSHandler.RegisterRoutes(r)
	})

	return r
}
