package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
)

type TrailerStore struct {
	col *mongo.Collection
}

func NewTrailerStore(db *mongo.Database) *TrailerStore {
	return &TrailerStore{col: db.Collection("trailers")}
}

// UpsertMany bulk-upserts by rawg_id and returns the persisted
// documents with the batch-local game id re-attached, the resolver
// needs it to group trailers under their game.
func (s *TrailerStore) UpsertMany(ctx context.Context, trailers []models.Trailer) ([]models.Trailer, error) {
	if len(trailers) == 0 {
		return nil, nil
	}

	writes := make([]mongo.WriteModel, 0, len(trailers))
	ids := make([]int, 0, len(trailers))
	gameByRawgID := make(map[int]int, len(trailers))
	now := time.Now().UTC()

	for _, t := range trailers {
		if t.RawgID == 0 {
			return nil, &apperr.PersistenceError{
				Collection: "trailers",
				Err:        fmt.Errorf("trailer %q is missing its natural key", t.Name),
			}
		}

		gameByRawgID[t.RawgID] = t.GameRawgID
		t.ID = primitive.NilObjectID
		t.UpdatedAt = now
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"rawg_id": t.RawgID}).
			SetUpdate(bson.M{"$set": t}).
			SetUpsert(true))
		ids = append(ids, t.RawgID)
	}

	if _, err := s.col.BulkWrite(ctx, writes); err != nil {
		return nil, &apperr.PersistenceError{Collection: "trailers", Err: err}
	}

	cur, err := s.col.Find(ctx, bson.M{"rawg_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, &apperr.PersistenceError{Collection: "trailers", Err: err}
	}

	var persisted []models.Trailer
	if err := cur.All(ctx, &persisted); err != nil {
		return nil, &apperr.PersistenceError{Collection: "trailers", Err: err}
	}

	for i := range persisted {
		persisted[i].GameRawgID = gameByRawgID[persisted[i].RawgID]
	}

	return persisted, nil
}
