package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "username, email and password are required"})
		return
	}

	user, err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "user created", Code: http.StatusCreated, Data: user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	expirationTime := time.Now().Add(7 * 24 * time.Hour).Unix()
	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"user_id": user.ID.Hex(),
		"exp":     expirationTime,
	})
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to create token"})
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]interface{}{"token": tokenString, "user": user},
	})
}

func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: user})
}

func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := h.userService.ListUsers(r.Context(), page, limit)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: users})
}

// UpdateUserHandler lets a user update only their own account.
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, ok := h.currentUserID(r)
	if !ok || userID != id {
		h.CreateResponse(w, Response{Code: http.StatusForbidden, Error: "you can only update your own account"})
		return
	}

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, input)
	if err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "user updated", Code: http.StatusOK, Data: user})
}

func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, ok := h.currentUserID(r)
	if !ok || userID != id {
		h.CreateResponse(w, Response{Code: http.StatusForbidden, Error: "you can only delete your own account"})
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		h.CreateErrorResponse(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "user deleted", Code: http.StatusOK})
}
