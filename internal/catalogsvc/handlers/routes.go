package handlers

import (
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Get("/health", h.HealthHandler)

		r.Post("/users", h.RegisterHandler)
		r.Post("/users/login", h.LoginHandler)

		r.Get("/games", h.ListGamesHandler)
		r.Get("/games/{id}", h.GetGameHandler)
		r.Get("/games/{id}/review-stats", h.ReviewStatsHandler)
		r.Get("/games/{id}/list-stats", h.GameListStatsHandler)

		r.Get("/reviews", h.ListReviewsHandler)
		r.Get("/reviews/{id}", h.GetReviewHandler)

		r.Get("/lists", h.ListEntriesHandler)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Post("/game/upsert", h.UpsertGamesHandler)

			r.Get("/users", h.ListUsersHandler)
			r.Get("/users/{id}", h.GetUserHandler)
			r.Put("/users/{id}", h.UpdateUserHandler)
			r.Delete("/users/{id}", h.DeleteUserHandler)

			r.Post("/reviews", h.CreateReviewHandler)
			r.Put("/reviews/{id}", h.UpdateReviewHandler)
			r.Delete("/reviews/{id}", h.DeleteReviewHandler)
			r.Post("/reviews/{id}/helpful", h.MarkReviewHelpfulHandler)

			r.Post("/lists", h.AddListEntryHandler)
			r.Delete("/lists", h.RemoveListEntryByGameHandler)
			r.Delete("/lists/{id}", h.RemoveListEntryHandler)
			r.Get("/lists/status", h.UserGameStatusHandler)
		})
	})
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}
