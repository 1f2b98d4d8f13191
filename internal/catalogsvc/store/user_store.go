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

type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

func (s *UserStore) Create(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &apperr.ConflictError{Message: "email or username is already taken"}
		}
		return nil, &apperr.PersistenceError{Collection: "users", Err: err}
	}

	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user := &models.User{}
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
		}
		return nil, &apperr.PersistenceError{Collection: "users", Err: err}
	}
	return user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, &apperr.PersistenceError{Collection: "users", Err: err}
	}
	return user, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, &apperr.PersistenceError{Collection: "users", Err: err}
	}
	return user, nil
}

func (s *UserStore) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "users", Err: err}
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "users", Err: err}
	}

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, &apperr.PersistenceError{Collection: "users", Err: err}
	}

	return users, total, nil
}

func (s *UserStore) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	fields["updated_at"] = time.Now().UTC()

	user := &models.User{}
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, &apperr.ConflictError{Message: "email or username is already taken"}
		}
		return nil, &apperr.PersistenceError{Collection: "users", Err: err}
	}
	return user, nil
}

func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &apperr.PersistenceError{Collection: "users", Err: err}
	}
	if result.DeletedCount == 0 {
		return &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
	}
	return nil
}
