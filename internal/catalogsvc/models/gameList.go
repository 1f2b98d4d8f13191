package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameListType string

const (
	ListFavorite   GameListType = "favorite"
	ListWantToPlay GameListType = "want_to_play"
	ListViewed     GameListType = "viewed"
)

// GameListEntry is unique per (user, game, list type).
type GameListEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	GameID    primitive.ObjectID `bson:"game_id" json:"game_id"`
	CreatedBy primitive.ObjectID `bson:"created_by" json:"created_by"`
	Type      GameListType       `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type GameListStats struct {
	Views      int `json:"views"`
	Favorites  int `json:"favorites"`
	WantToPlay int `json:"want_to_play"`
}

type UserGameStatus struct {
	IsFavorite   bool `json:"is_favorite"`
	IsWantToPlay bool `json:"is_want_to_play"`
	HasViewed    bool `json:"has_viewed"`
}
