package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

// UpsertGamesHandler triggers one synchronization run against the RAWG
// API. The observed configuration syncs a single game per invocation,
// page and page_size query params scale it up.
func (h *Handler) UpsertGamesHandler(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	summary, err := h.syncService.UpsertGames(r.Context(), page, pageSize)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Message: "games successfully upserted",
		Code:    http.StatusOK,
		Data:    summary,
	})
}

func (h *Handler) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: game})
}

func (h *Handler) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	search := r.URL.Query().Get("search")

	games, err := h.gameService.ListGames(r.Context(), page, limit, search)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: games})
}
