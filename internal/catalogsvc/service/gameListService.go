package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/store"
)

type GameListService struct {
	listStore *store.GameListStore
}

func NewGameListService(listStore *store.GameListStore) *GameListService {
	return &GameListService{listStore: listStore}
}

func validListType(t models.GameListType) bool {
	switch t {
	case models.ListFavorite, models.ListWantToPlay, models.ListViewed:
		return true
	}
	return false
}

func (s *GameListService) AddEntry(ctx context.Context, userID, gameID string, listType models.GameListType) (*models.GameListEntry, error) {
	if !validListType(listType) {
		return nil, &apperr.ConflictError{Message: "unknown list type: " + string(listType)}
	}

	gid, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "game", ID: gameID}
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "user", ID: userID}
	}

	return s.listStore.Create(ctx, models.GameListEntry{
		GameID:    gid,
		CreatedBy: uid,
		Type:      listType,
	})
}

type GameListPage struct {
	Items      []models.GameListEntry `json:"items"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	TotalPages int64                  `json:"total_pages"`
}

type ListEntriesInput struct {
	UserID string
	GameID string
	Type   models.GameListType
	Page   int
	Limit  int
}

func (s *GameListService) ListEntries(ctx context.Context, input ListEntriesInput) (*GameListPage, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 10
	}

	filter := store.GameListFilter{Type: input.Type}
	if input.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil {
			return nil, &apperr.NotFoundError{Resource: "user", ID: input.UserID}
		}
		filter.CreatedBy = oid
	}
	if input.GameID != "" {
		oid, err := primitive.ObjectIDFromHex(input.GameID)
		if err != nil {
			return nil, &apperr.NotFoundError{Resource: "game", ID: input.GameID}
		}
		filter.GameID = oid
	}

	items, total, err := s.listStore.List(ctx, filter, input.Page, input.Limit)
	if err != nil {
		return nil, err
	}

	return &GameListPage{
		Items:      items,
		Total:      total,
		Page:       input.Page,
		TotalPages: (total + int64(input.Limit) - 1) / int64(input.Limit),
	}, nil
}

// RemoveEntry deletes an entry by id, owner only.
func (s *GameListService) RemoveEntry(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &apperr.NotFoundError{Resource: "list entry", ID: id}
	}

	entry, err := s.listStore.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if entry.CreatedBy.Hex() != userID {
		return &apperr.ForbiddenError{Message: "you can only remove your own list entries"}
	}

	return s.listStore.Delete(ctx, oid)
}

func (s *GameListService) RemoveByGameAndType(ctx context.Context, userID, gameID string, listType models.GameListType) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return &apperr.NotFoundError{Resource: "user", ID: userID}
	}
	gid, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		return &apperr.NotFoundError{Resource: "game", ID: gameID}
	}
	return s.listStore.DeleteByUserGameType(ctx, uid, gid, listType)
}

func (s *GameListService) GetGameStats(ctx context.Context, gameID string) (*models.GameListStats, error) {
	gid, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "game", ID: gameID}
	}

	views, err := s.listStore.Count(ctx, store.GameListFilter{GameID: gid, Type: models.ListViewed})
	if err != nil {
		return nil, err
	}
	favorites, err := s.listStore.Count(ctx, store.GameListFilter{GameID: gid, Type: models.ListFavorite})
	if err != nil {
		return nil, err
	}
	wantToPlay, err := s.listStore.Count(ctx, store.GameListFilter{GameID: gid, Type: models.ListWantToPlay})
	if err != nil {
		return nil, err
	}

	return &models.GameListStats{
		Views:      int(views),
		Favorites:  int(favorites),
		WantToPlay: int(wantToPlay),
	}, nil
}

// GetUserGameStatus reports which lists of one user contain a game.
func (s *GameListService) GetUserGameStatus(ctx context.Context, userID, gameID string) (*models.UserGameStatus, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "user", ID: userID}
	}
	gid, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "game", ID: gameID}
	}

	entries, err := s.listStore.FindByUserAndGame(ctx, uid, gid)
	if err != nil {
		return nil, err
	}

	status := &models.UserGameStatus{}
	for _, entry := range entries {
		switch entry.Type {
		case models.ListFavorite:
			status.IsFavorite = true
		case models.ListWantToPlay:
			status.IsWantToPlay = true
		case models.ListViewed:
			status.HasViewed = true
		}
	}

	return status, nil
}
