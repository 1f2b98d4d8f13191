package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
)

type GameListStore struct {
	col *mongo.Collection
}

func NewGameListStore(db *mongo.Database) *GameListStore {
	return &GameListStore{col: db.Collection("game_lists")}
}

type GameListFilter struct {
	GameID    primitive.ObjectID
	CreatedBy primitive.ObjectID
	Type      models.GameListType
}

func (f GameListFilter) query() bson.M {
	q := bson.M{}
	if !f.GameID.IsZero() {
		q["game_id"] = f.GameID
	}
	if !f.CreatedBy.IsZero() {
		q["created_by"] = f.CreatedBy
	}
	if f.Type != "" {
		q["type"] = f.Type
	}
	return q
}

func (s *GameListStore) Create(ctx context.Context, entry models.GameListEntry) (*models.GameListEntry, error) {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()
	entry.UpdatedAt = entry.CreatedAt

	if _, err := s.col.InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &apperr.ConflictError{Message: "this game is already in this list for this user"}
		}
		return nil, &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}

	return &entry, nil
}

func (s *GameListStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GameListEntry, error) {
	entry := &models.GameListEntry{}
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Resource: "list entry", ID: id.Hex()}
		}
		return nil, &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}
	return entry, nil
}

func (s *GameListStore) List(ctx context.Context, filter GameListFilter, page, limit int) ([]models.GameListEntry, int64, error) {
	q := filter.query()

	total, err := s.col.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.col.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}

	var entries []models.GameListEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}

	return entries, total, nil
}

func (s *GameListStore) FindByUserAndGame(ctx context.Context, userID, gameID primitive.ObjectID) ([]models.GameListEntry, error) {
	cur, err := s.col.Find(ctx, bson.M{"created_by": userID, "game_id": gameID})
	if err != nil {
		return nil, &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}

	var entries []models.GameListEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}

	return entries, nil
}

func (s *GameListStore) Count(ctx context.Context, filter GameListFilter) (int64, error) {
	total, err := s.col.CountDocuments(ctx, filter.query())
	if err != nil {
		return 0, &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}
	return total, nil
}

func (s *GameListStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}
	if result.DeletedCount == 0 {
		return &apperr.NotFoundError{Resource: "list entry", ID: id.Hex()}
	}
	return nil
}

func (s *GameListStore) DeleteByUserGameType(ctx context.Context, userID, gameID primitive.ObjectID, listType models.GameListType) error {
	result, err := s.col.DeleteOne(ctx, bson.M{
		"created_by": userID,
		"game_id":    gameID,
		"type":       listType,
	})
	if err != nil {
		return &apperr.PersistenceError{Collection: "game_lists", Err: err}
	}
	if result.DeletedCount == 0 {
		return &apperr.NotFoundError{Resource: string(listType) + " entry", ID: gameID.Hex()}
	}
	return nil
}
