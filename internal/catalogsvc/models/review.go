package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is unique per (game, user).
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	GameID        primitive.ObjectID `bson:"game_id" json:"game_id"`
	CreatedBy     primitive.ObjectID `bson:"created_by" json:"created_by"`
	IsRecommended bool               `bson:"is_recommended" json:"is_recommended"`
	IsHelpful     bool               `bson:"is_helpful" json:"is_helpful"`
	Content       string             `bson:"content" json:"content"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

type ReviewStats struct {
	Total              int `json:"total"`
	Recommended        int `json:"recommended"`
	NotRecommended     int `json:"not_recommended"`
	RecommendationRate int `json:"recommendation_rate"`
}
