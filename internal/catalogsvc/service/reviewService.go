package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/store"
)

type ReviewService struct {
	reviewStore *store.ReviewStore
}

func NewReviewService(reviewStore *store.ReviewStore) *ReviewService {
	return &ReviewService{reviewStore: reviewStore}
}

type CreateReviewInput struct {
	GameID        string `json:"game_id"`
	IsRecommended bool   `json:"is_recommended"`
	Content       string `json:"content"`
}

func (s *ReviewService) CreateReview(ctx context.Context, userID string, input CreateReviewInput) (*models.Review, error) {
	gameID, err := primitive.ObjectIDFromHex(input.GameID)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "game", ID: input.GameID}
	}
	createdBy, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "user", ID: userID}
	}

	return s.reviewStore.Create(ctx, models.Review{
		GameID:        gameID,
		CreatedBy:     createdBy,
		IsRecommended: input.IsRecommended,
		Content:       input.Content,
	})
}

type ReviewPage struct {
	Reviews    []models.Review `json:"reviews"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	TotalPages int64           `json:"total_pages"`
}

type ListReviewsInput struct {
	GameID        string
	UserID        string
	IsRecommended *bool
	Page          int
	Limit         int
}

func (s *ReviewService) ListReviews(ctx context.Context, input ListReviewsInput) (*ReviewPage, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 10
	}

	filter := store.ReviewFilter{IsRecommended: input.IsRecommended}
	if input.GameID != "" {
		oid, err := primitive.ObjectIDFromHex(input.GameID)
		if err != nil {
			return nil, &apperr.NotFoundError{Resource: "game", ID: input.GameID}
		}
		filter.GameID = oid
	}
	if input.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil {
			return nil, &apperr.NotFoundError{Resource: "user", ID: input.UserID}
		}
		filter.CreatedBy = oid
	}

	reviews, total, err := s.reviewStore.List(ctx, filter, input.Page, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ReviewPage{
		Reviews:    reviews,
		Total:      total,
		Page:       input.Page,
		TotalPages: (total + int64(input.Limit) - 1) / int64(input.Limit),
	}, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id string) (*models.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "review", ID: id}
	}
	return s.reviewStore.FindByID(ctx, oid)
}

type UpdateReviewInput struct {
	IsRecommended *bool   `json:"is_recommended"`
	Content       *string `json:"content"`
}

// UpdateReview only lets the author touch their own review.
func (s *ReviewService) UpdateReview(ctx context.Context, id, userID string, input UpdateReviewInput) (*models.Review, error) {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.CreatedBy.Hex() != userID {
		return nil, &apperr.ForbiddenError{Message: "you can only update your own reviews"}
	}

	fields := bson.M{}
	if input.IsRecommended != nil {
		fields["is_recommended"] = *input.IsRecommended
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}

	return s.reviewStore.Update(ctx, review.ID, fields)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id, userID string) error {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return err
	}

	if review.CreatedBy.Hex() != userID {
		return &apperr.ForbiddenError{Message: "you can only delete your own reviews"}
	}

	return s.reviewStore.Delete(ctx, review.ID)
}

// MarkHelpful toggles the helpful flag.
func (s *ReviewService) MarkHelpful(ctx context.Context, id string) (*models.Review, error) {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.reviewStore.Update(ctx, review.ID, bson.M{"is_helpful": !review.IsHelpful})
}

func (s *ReviewService) GetGameStats(ctx context.Context, gameID string) (*models.ReviewStats, error) {
	oid, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "game", ID: gameID}
	}

	yes, no := true, false
	total, err := s.reviewStore.Count(ctx, store.ReviewFilter{GameID: oid})
	if err != nil {
		return nil, err
	}
	recommended, err := s.reviewStore.Count(ctx, store.ReviewFilter{GameID: oid, IsRecommended: &yes})
	if err != nil {
		return nil, err
	}
	notRecommended, err := s.reviewStore.Count(ctx, store.ReviewFilter{GameID: oid, IsRecommended: &no})
	if err != nil {
		return nil, err
	}

	stats := &models.ReviewStats{
		Total:          int(total),
		Recommended:    int(recommended),
		NotRecommended: int(notRecommended),
	}
	if total > 0 {
		stats.RecommendationRate = int(float64(recommended) / float64(total) * 100)
	}

	return stats, nil
}
