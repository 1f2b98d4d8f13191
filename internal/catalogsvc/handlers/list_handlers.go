package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/service"
)

type addListEntryRequest struct {
	GameID string              `json:"game_id"`
	Type   models.GameListType `json:"type"`
}

func (h *Handler) AddListEntryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "missing user identity"})
		return
	}

	var req addListEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}
	if req.GameID == "" || req.Type == "" {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "game_id and type are required"})
		return
	}

	entry, err := h.listService.AddEntry(r.Context(), userID, req.GameID, req.Type)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "entry added", Code: http.StatusCreated, Data: entry})
}

func (h *Handler) ListEntriesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	entries, err := h.listService.ListEntries(r.Context(), service.ListEntriesInput{
		UserID: q.Get("user_id"),
		GameID: q.Get("game_id"),
		Type:   models.GameListType(q.Get("type")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: entries})
}

func (h *Handler) RemoveListEntryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "missing user identity"})
		return
	}

	if err := h.listService.RemoveEntry(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "entry removed", Code: http.StatusOK})
}

// RemoveListEntryByGameHandler removes by (user, game, type) so the
// client does not need to know the entry id.
func (h *Handler) RemoveListEntryByGameHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "missing user identity"})
		return
	}

	q := r.URL.Query()
	gameID := q.Get("game_id")
	listType := models.GameListType(q.Get("type"))
	if gameID == "" || listType == "" {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "game_id and type are required"})
		return
	}

	if err := h.listService.RemoveByGameAndType(r.Context(), userID, gameID, listType); err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "entry removed", Code: http.StatusOK})
}

func (h *Handler) GameListStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.listService.GetGameStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: stats})
}

func (h *Handler) UserGameStatusHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "missing user identity"})
		return
	}

	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "game_id is required"})
		return
	}

	status, err := h.listService.GetUserGameStatus(r.Context(), userID, gameID)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: status})
}
