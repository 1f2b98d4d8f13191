package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/jwtauth"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/service"
)

type Handler struct {
	tokenAuth *jwtauth.JWTAuth

	syncService   *service.SyncService
	gameService   *service.GameService
	userService   *service.UserService
	reviewService *service.ReviewService
	listService   *service.GameListService
}

func NewHandler(syncService *service.SyncService, gameService *service.GameService,
	userService *service.UserService, reviewService *service.ReviewService,
	listService *service.GameListService) *Handler {
	return &Handler{
		syncService:   syncService,
		gameService:   gameService,
		userService:   userService,
		reviewService: reviewService,
		listService:   listService,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

// CreateErrorResponse maps the error taxonomy onto distinct status
// codes so raw storage or upstream errors never leak to clients.
func (h *Handler) CreateErrorResponse(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError

	var notFound *apperr.NotFoundError
	var conflict *apperr.ConflictError
	var forbidden *apperr.ForbiddenError
	var upstream *apperr.UpstreamFetchError

	switch {
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &conflict):
		code = http.StatusConflict
	case errors.As(err, &forbidden):
		code = http.StatusForbidden
	case errors.As(err, &upstream):
		code = http.StatusBadGateway
	}

	h.CreateResponse(w, Response{Code: code, Error: err.Error()})
}

// currentUserID pulls the authenticated user out of the JWT claims.
func (h *Handler) currentUserID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "catalog service is running at port " + os.Getenv("CATALOG_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}
