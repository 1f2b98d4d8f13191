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

type ReviewStore struct {
	col *mongo.Collection
}

func NewReviewStore(db *mongo.Database) *ReviewStore {
	return &ReviewStore{col: db.Collection("reviews")}
}

// ReviewFilter narrows List. Zero values mean no constraint.
type ReviewFilter struct {
	GameID        primitive.ObjectID
	CreatedBy     primitive.ObjectID
	IsRecommended *bool
}

func (f ReviewFilter) query() bson.M {
	q := bson.M{}
	if !f.GameID.IsZero() {
		q["game_id"] = f.GameID
	}
	if !f.CreatedBy.IsZero() {
		q["created_by"] = f.CreatedBy
	}
	if f.IsRecommended != nil {
		q["is_recommended"] = *f.IsRecommended
	}
	return q
}

func (s *ReviewStore) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now().UTC()
	review.UpdatedAt = review.CreatedAt

	if _, err := s.col.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &apperr.ConflictError{Message: "you have already reviewed this game"}
		}
		return nil, &apperr.PersistenceError{Collection: "reviews", Err: err}
	}

	return &review, nil
}

func (s *ReviewStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	review := &models.Review{}
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Resource: "review", ID: id.Hex()}
		}
		return nil, &apperr.PersistenceError{Collection: "reviews", Err: err}
	}
	return review, nil
}

func (s *ReviewStore) List(ctx context.Context, filter ReviewFilter, page, limit int) ([]models.Review, int64, error) {
	q := filter.query()

	total, err := s.col.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "reviews", Err: err}
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.col.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "reviews", Err: err}
	}

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "reviews", Err: err}
	}

	return reviews, total, nil
}

func (s *ReviewStore) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Review, error) {
	fields["updated_at"] = time.Now().UTC()

	review := &models.Review{}
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Resource: "review", ID: id.Hex()}
		}
		return nil, &apperr.PersistenceError{Collection: "reviews", Err: err}
	}
	return review, nil
}

func (s *ReviewStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &apperr.PersistenceError{Collection: "reviews", Err: err}
	}
	if result.DeletedCount == 0 {
		return &apperr.NotFoundError{Resource: "review", ID: id.Hex()}
	}
	return nil
}

func (s *ReviewStore) Count(ctx context.Context, filter ReviewFilter) (int64, error) {
	total, err := s.col.CountDocuments(ctx, filter.query())
	if err != nil {
		return 0, &apperr.PersistenceError{Collection: "reviews", Err: err}
	}
	return total, nil
}
