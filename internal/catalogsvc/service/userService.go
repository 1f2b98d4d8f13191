package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/store"
)

type UserService struct {
	userStore *store.UserStore
}

func NewUserService(userStore *store.UserStore) *UserService {
	return &UserService{userStore: userStore}
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if existing, err := s.userStore.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &apperr.ConflictError{Message: "user with this email already exists"}
	}

	if existing, err := s.userStore.FindByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &apperr.ConflictError{Message: "username is already taken"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.userStore.Create(ctx, models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	})
}

// Authenticate verifies credentials for login. A wrong email and a
// wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apperr.ForbiddenError{Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &apperr.ForbiddenError{Message: "invalid credentials"}
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "user", ID: id}
	}
	return s.userStore.FindByID(ctx, oid)
}

type UserPage struct {
	Users      []models.User `json:"users"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int64         `json:"total_pages"`
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*UserPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	users, total, err := s.userStore.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}

type UpdateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "user", ID: id}
	}

	fields := bson.M{}
	if input.Username != "" {
		if existing, err := s.userStore.FindByUsername(ctx, input.Username); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != oid {
			return nil, &apperr.ConflictError{Message: "username is already taken"}
		}
		fields["username"] = input.Username
	}
	if input.Email != "" {
		if existing, err := s.userStore.FindByEmail(ctx, input.Email); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != oid {
			return nil, &apperr.ConflictError{Message: "email is already taken"}
		}
		fields["email"] = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}

	return s.userStore.Update(ctx, oid, fields)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &apperr.NotFoundError{Resource: "user", ID: id}
	}
	return s.userStore.Delete(ctx, oid)
}
