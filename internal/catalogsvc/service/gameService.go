package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/store"
)

type GameService struct {
	gameStore *store.GameStore
}

func NewGameService(gameStore *store.GameStore) *GameService {
	return &GameService{gameStore: gameStore}
}

func (s *GameService) GetGame(ctx context.Context, id string) (*models.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "game", ID: id}
	}
	return s.gameStore.FindByID(ctx, oid)
}

type GamePage struct {
	Games      []models.Game `json:"games"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int64         `json:"total_pages"`
}

func (s *GameService) ListGames(ctx context.Context, page, limit int, search string) (*GamePage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	games, total, err := s.gameStore.List(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}

	return &GamePage{
		Games:      games,
		Total:      total,
		Page:       page,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}
