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

type EntityStore struct {
	col *mongo.Collection
}

func NewEntityStore(db *mongo.Database) *EntityStore {
	return &EntityStore{col: db.Collection("entities")}
}

// UpsertMany writes the batch as one bulk operation, upserting by the
// compound natural key (rawg_id, type) with field-level $set semantics.
// It returns every persisted document matching an input key, internal
// ids included, not only the ones just written.
func (s *EntityStore) UpsertMany(ctx context.Context, entities []models.Entity) ([]models.Entity, error) {
	if len(entities) == 0 {
		return nil, nil
	}

	writes := make([]mongo.WriteModel, 0, len(entities))
	keys := make(bson.A, 0, len(entities))
	now := time.Now().UTC()

	for _, e := range entities {
		if e.RawgID == 0 || e.Type == "" {
			return nil, &apperr.PersistenceError{
				Collection: "entities",
				Err:        fmt.Errorf("entity %q is missing its natural key", e.Name),
			}
		}

		e.ID = primitive.NilObjectID
		e.UpdatedAt = now
		filter := bson.M{"rawg_id": e.RawgID, "type": e.Type}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$set": e}).
			SetUpsert(true))
		keys = append(keys, filter)
	}

	if _, err := s.col.BulkWrite(ctx, writes); err != nil {
		return nil, &apperr.PersistenceError{Collection: "entities", Err: err}
	}

	cur, err := s.col.Find(ctx, bson.M{"$or": keys})
	if err != nil {
		return nil, &apperr.PersistenceError{Collection: "entities", Err: err}
	}

	var persisted []models.Entity
	if err := cur.All(ctx, &persisted); err != nil {
		return nil, &apperr.PersistenceError{Collection: "entities", Err: err}
	}

	return persisted, nil
}
