package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trailer is keyed by rawg_id alone. GameRawgID is only carried inside
// a sync batch so the resolver knows which game the trailer belongs
// to, the persisted join lives on Game.Trailers.
type Trailer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RawgID        int                `bson:"rawg_id" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Preview       string             `bson:"preview" json:"preview"`
	MinResolution string             `bson:"min_resolution" json:"min_resolution"`
	MaxResolution string             `bson:"max_resolution" json:"max_resolution"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`

	GameRawgID int `bson:"-" json:"game_id"`
}
