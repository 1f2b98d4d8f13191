package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/service"
)

func (h *Handler) CreateReviewHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "missing user identity"})
		return
	}

	var input service.CreateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}
	if input.GameID == "" || input.Content == "" {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "game_id and content are required"})
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), userID, input)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "review created", Code: http.StatusCreated, Data: review})
}

func (h *Handler) ListReviewsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	input := service.ListReviewsInput{
		GameID: q.Get("game_id"),
		UserID: q.Get("user_id"),
		Page:   page,
		Limit:  limit,
	}
	if raw := q.Get("is_recommended"); raw != "" {
		recommended := raw == "true"
		input.IsRecommended = &recommended
	}

	reviews, err := h.reviewService.ListReviews(r.Context(), input)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: reviews})
}

func (h *Handler) GetReviewHandler(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewService.GetReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: review})
}

func (h *Handler) UpdateReviewHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "missing user identity"})
		return
	}

	var input service.UpdateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	review, err := h.reviewService.UpdateReview(r.Context(), chi.URLParam(r, "id"), userID, input)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "review updated", Code: http.StatusOK, Data: review})
}

func (h *Handler) DeleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "missing user identity"})
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "review deleted", Code: http.StatusOK})
}

func (h *Handler) MarkReviewHelpfulHandler(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewService.MarkHelpful(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: review})
}

func (h *Handler) ReviewStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reviewService.GetGameStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: stats})
}
