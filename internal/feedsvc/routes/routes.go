package routes

import (
	"github.com/go-chi/chi"

	"github.com/lakshmanb-0/icantace-game/internal/feedsvc/handlers"
	"github.com/lakshmanb-0/icantace-game/internal/feedsvc/ws"
)

func SetRoutes(r *chi.Mux, s *ws.Ws) {
	h := handlers.NewHandler(s)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/ws", h.HandleWebSocket)
		r.Get("/health", h.HealthHandler)
	})
}
