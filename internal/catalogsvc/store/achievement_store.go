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

type AchievementStore struct {
	col *mongo.Collection
}

func NewAchievementStore(db *mongo.Database) *AchievementStore {
	return &AchievementStore{col: db.Collection("achievements")}
}

func (s *AchievementStore) UpsertMany(ctx context.Context, achievements []models.Achievement) ([]models.Achievement, error) {
	if len(achievements) == 0 {
		return nil, nil
	}

	writes := make([]mongo.WriteModel, 0, len(achievements))
	ids := make([]int, 0, len(achievements))
	gameByRawgID := make(map[int]int, len(achievements))
	now := time.Now().UTC()

	for _, a := range achievements {
		if a.RawgID == 0 {
			return nil, &apperr.PersistenceError{
				Collection: "achievements",
				Err:        fmt.Errorf("achievement %q is missing its natural key", a.Name),
			}
		}

		gameByRawgID[a.RawgID] = a.GameRawgID
		a.ID = primitive.NilObjectID
		a.UpdatedAt = now
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"rawg_id": a.RawgID}).
			SetUpdate(bson.M{"$set": a}).
			SetUpsert(true))
		ids = append(ids, a.RawgID)
	}

	if _, err := s.col.BulkWrite(ctx, writes); err != nil {
		return nil, &apperr.PersistenceError{Collection: "achievements", Err: err}
	}

	cur, err := s.col.Find(ctx, bson.M{"rawg_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, &apperr.PersistenceError{Collection: "achievements", Err: err}
	}

	var persisted []models.Achievement
	if err := cur.All(ctx, &persisted); err != nil {
		return nil, &apperr.PersistenceError{Collection: "achievements", Err: err}
	}

	for i := range persisted {
		persisted[i].GameRawgID = gameByRawgID[persisted[i].RawgID]
	}

	return persisted, nil
}
