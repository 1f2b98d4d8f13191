package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Screenshot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RawgID    int                `bson:"rawg_id" json:"id"`
	Image     string             `bson:"image" json:"image"`
	Width     int                `bson:"width" json:"width"`
	Height    int                `bson:"height" json:"height"`
	IsDeleted bool               `bson:"is_deleted" json:"is_deleted"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	GameRawgID int `bson:"-" json:"game_id"`
}
