package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
)

type GameStore struct {
	col *mongo.Collection
}

func NewGameStore(db *mongo.Database) *GameStore {
	return &GameStore{col: db.Collection("games")}
}

// UpsertMany writes the resolved game batch as one bulk operation,
// upserting by rawg_id. Returns the driver summary for the run result.
func (s *GameStore) UpsertMany(ctx context.Context, games []models.Game) (*mongo.BulkWriteResult, error) {
	if len(games) == 0 {
		return &mongo.BulkWriteResult{}, nil
	}

	writes := make([]mongo.WriteModel, 0, len(games))
	now := time.Now().UTC()

	for _, g := range games {
		if g.RawgID == 0 {
			return nil, &apperr.PersistenceError{
				Collection: "games",
				Err:        fmt.Errorf("game %q is missing its natural key", g.Name),
			}
		}

		g.ID = primitive.NilObjectID
		g.UpdatedAt = now
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"rawg_id": g.RawgID}).
			SetUpdate(bson.M{"$set": g}).
			SetUpsert(true))
	}

	result, err := s.col.BulkWrite(ctx, writes)
	if err != nil {
		return nil, &apperr.PersistenceError{Collection: "games", Err: err}
	}

	return result, nil
}

func (s *GameStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Game, error) {
	game := &models.Game{}
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(game)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Resource: "game", ID: id.Hex()}
		}
		return nil, &apperr.PersistenceError{Collection: "games", Err: err}
	}
	return game, nil
}

// List returns one page of the catalog, optionally filtered by a
// case-insensitive name search.
func (s *GameStore) List(ctx context.Context, page, limit int, search string) ([]models.Game, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "games", Err: err}
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "rating", Value: -1}})

	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "games", Err: err}
	}

	var games []models.Game
	if err := cur.All(ctx, &games); err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "games", Err: err}
	}

	return games, total, nil
}
