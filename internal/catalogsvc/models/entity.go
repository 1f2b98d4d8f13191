package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntityType is the category tag of a shared lookup entity. The same
// rawg id can exist once per type, identity is (rawg_id, type).
type EntityType string

const (
	EntityTag        EntityType = "tag"
	EntityGenre      EntityType = "genre"
	EntityPlatform   EntityType = "platform"
	EntityDeveloper  EntityType = "developer"
	EntityPublisher  EntityType = "publisher"
	EntityEsrbRating EntityType = "esrb_rating"
	EntityCreator    EntityType = "creator"
)

// Entity is a shared reference-data record: tag, genre, platform,
// developer, publisher, ESRB rating or creator.
type Entity struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RawgID          int                `bson:"rawg_id" json:"id"`
	Type            EntityType         `bson:"type" json:"type"`
	Name            string             `bson:"name" json:"name"`
	Slug            string             `bson:"slug" json:"slug"`
	GamesCount      int                `bson:"games_count,omitempty" json:"games_count,omitempty"`
	ImageBackground string             `bson:"image_background,omitempty" json:"image_background,omitempty"`
	Positions       []string           `bson:"positions,omitempty" json:"positions,omitempty"` // creator only
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// Key is the dedup key used by the normalizer, rawgId-type.
func (e Entity) Key() string {
	return EntityKey(e.RawgID, e.Type)
}

func EntityKey(rawgID int, t EntityType) string {
	return strconv.Itoa(rawgID) + "-" + string(t)
}

// RefKey is the lookup key used by the reference resolver, type-rawgId.
func RefKey(t EntityType, rawgID int) string {
	return string(t) + "-" + strconv.Itoa(rawgID)
}
