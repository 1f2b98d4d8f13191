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

type ScreenshotStore struct {
	col *mongo.Collection
}

func NewScreenshotStore(db *mongo.Database) *ScreenshotStore {
	return &ScreenshotStore{col: db.Collection("screenshots")}
}

func (s *ScreenshotStore) UpsertMany(ctx context.Context, screenshots []models.Screenshot) ([]models.Screenshot, error) {
	if len(screenshots) == 0 {
		return nil, nil
	}

	writes := make([]mongo.WriteModel, 0, len(screenshots))
	ids := make([]int, 0, len(screenshots))
	gameByRawgID := make(map[int]int, len(screenshots))
	now := time.Now().UTC()

	for _, sc := range screenshots {
		if sc.RawgID == 0 {
			return nil, &apperr.PersistenceError{
				Collection: "screenshots",
				Err:        fmt.Errorf("screenshot %d is missing its natural key", sc.RawgID),
			}
		}

		gameByRawgID[sc.RawgID] = sc.GameRawgID
		sc.ID = primitive.NilObjectID
		sc.UpdatedAt = now
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"rawg_id": sc.RawgID}).
			SetUpdate(bson.M{"$set": sc}).
			SetUpsert(true))
		ids = append(ids, sc.RawgID)
	}

	if _, err := s.col.BulkWrite(ctx, writes); err != nil {
		return nil, &apperr.PersistenceError{Collection: "screenshots", Err: err}
	}

	cur, err := s.col.Find(ctx, bson.M{"rawg_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, &apperr.PersistenceError{Collection: "screenshots", Err: err}
	}

	var persisted []models.Screenshot
	if err := cur.All(ctx, &persisted); err != nil {
		return nil, &apperr.PersistenceError{Collection: "screenshots", Err: err}
	}

	for i := range persisted {
		persisted[i].GameRawgID = gameByRawgID[persisted[i].RawgID]
	}

	return persisted, nil
}
