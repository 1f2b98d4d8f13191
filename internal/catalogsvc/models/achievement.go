package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Achievement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RawgID      int                `bson:"rawg_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Percent     string             `bson:"percent" json:"percent"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`

	GameRawgID int `bson:"-" json:"game_id"`
}
