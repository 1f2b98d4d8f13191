package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingBucket struct {
	Title   string  `bson:"title" json:"title"`
	Count   int     `bson:"count" json:"count"`
	Percent float64 `bson:"percent" json:"percent"`
}

// Game is the catalog document mirrored from RAWG. Reference fields
// hold internal ObjectIDs into the entities, trailers, achievements
// and screenshots collections, resolved during the sync run.
type Game struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RawgID                    int                `bson:"rawg_id" json:"id"`
	Slug                      string             `bson:"slug" json:"slug"`
	Name                      string             `bson:"name" json:"name"`
	NameOriginal              string             `bson:"name_original,omitempty" json:"name_original,omitempty"`
	DescriptionRaw            string             `bson:"description_raw,omitempty" json:"description_raw,omitempty"`
	Metacritic                int                `bson:"metacritic,omitempty" json:"metacritic,omitempty"`
	Released                  string             `bson:"released,omitempty" json:"released,omitempty"`
	TBA                       bool               `bson:"tba" json:"tba"`
	Updated                   string             `bson:"updated,omitempty" json:"updated,omitempty"`
	BackgroundImage           string             `bson:"background_image,omitempty" json:"background_image,omitempty"`
	BackgroundImageAdditional string             `bson:"background_image_additional,omitempty" json:"background_image_additional,omitempty"`
	Rating                    float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	RatingTop                 int                `bson:"rating_top,omitempty" json:"rating_top,omitempty"`
	Ratings                   []RatingBucket     `bson:"ratings,omitempty" json:"ratings,omitempty"`
	Added                     int                `bson:"added,omitempty" json:"added,omitempty"`
	Playtime                  int                `bson:"playtime,omitempty" json:"playtime,omitempty"`
	ScreenshotsCount          int                `bson:"screenshots_count,omitempty" json:"screenshots_count,omitempty"`
	MoviesCount               int                `bson:"movies_count,omitempty" json:"movies_count,omitempty"`
	CreatorsCount             int                `bson:"creators_count,omitempty" json:"creators_count,omitempty"`
	AchievementsCount         int                `bson:"achievements_count,omitempty" json:"achievements_count,omitempty"`
	RatingsCount              int                `bson:"ratings_count,omitempty" json:"ratings_count,omitempty"`
	SuggestionsCount          int                `bson:"suggestions_count,omitempty" json:"suggestions_count,omitempty"`
	ReviewsCount              int                `bson:"reviews_count,omitempty" json:"reviews_count,omitempty"`
	AlternativeNames          []string           `bson:"alternative_names,omitempty" json:"alternative_names,omitempty"`

	MinimumRequirements     string `bson:"minimum_requirements" json:"minimum_requirements"`
	RecommendedRequirements string `bson:"recommended_requirements" json:"recommended_requirements"`

	Tags         []primitive.ObjectID `bson:"tags" json:"tags"`
	Genres       []primitive.ObjectID `bson:"genres" json:"genres"`
	Platforms    []primitive.ObjectID `bson:"platforms" json:"platforms"`
	Publishers   []primitive.ObjectID `bson:"publishers" json:"publishers"`
	Developers   []primitive.ObjectID `bson:"developers" json:"developers"`
	Creators     []primitive.ObjectID `bson:"creators" json:"creators"`
	EsrbRating   *primitive.ObjectID  `bson:"esrb_rating" json:"esrb_rating"`
	Trailers     []primitive.ObjectID `bson:"trailers" json:"trailers"`
	Achievements []primitive.ObjectID `bson:"achievements" json:"achievements"`
	Screenshots  []primitive.ObjectID `bson:"screenshots" json:"screenshots"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
