package rawg

import "github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"

// page is the RAWG list envelope, every collection endpoint returns
// {count, next, previous, results}.
type page[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// EntityRef is a reference value embedded in a game payload (tag,
// genre, publisher, developer, esrb rating, or the inner platform
// object).
type EntityRef struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	GamesCount      int    `json:"games_count"`
	ImageBackground string `json:"image_background"`
}

type Requirements struct {
	Minimum     string `json:"minimum"`
	Recommended string `json:"recommended"`
}

// PlatformAssignment wraps a platform reference together with the
// per-platform system requirements block.
type PlatformAssignment struct {
	Platform     EntityRef     `json:"platform"`
	Requirements *Requirements `json:"requirements"`
}

// GameSummary is a row of GET /games, enough to know which games to
// pull in detail.
type GameSummary struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type GamesPage struct {
	Count   int           `json:"count"`
	Results []GameSummary `json:"results"`
}

// Game is the full GET /games/{id} payload, with references still in
// RAWG form (external ids).
type Game struct {
	ID                        int                   `json:"id"`
	Slug                      string                `json:"slug"`
	Name                      string                `json:"name"`
	NameOriginal              string                `json:"name_original"`
	DescriptionRaw            string                `json:"description_raw"`
	Metacritic                int                   `json:"metacritic"`
	Released                  string                `json:"released"`
	TBA                       bool                  `json:"tba"`
	Updated                   string                `json:"updated"`
	BackgroundImage           string                `json:"background_image"`
	BackgroundImageAdditional string                `json:"background_image_additional"`
	Rating                    float64               `json:"rating"`
	RatingTop                 int                   `json:"rating_top"`
	Ratings                   []models.RatingBucket `json:"ratings"`
	Added                     int                   `json:"added"`
	Playtime                  int                   `json:"playtime"`
	ScreenshotsCount          int                   `json:"screenshots_count"`
	MoviesCount               int                   `json:"movies_count"`
	CreatorsCount             int                   `json:"creators_count"`
	AchievementsCount         int                   `json:"achievements_count"`
	RatingsCount              int                   `json:"ratings_count"`
	SuggestionsCount          int                   `json:"suggestions_count"`
	ReviewsCount              int                   `json:"reviews_count"`
	AlternativeNames          []string              `json:"alternative_names"`
	Platforms                 []PlatformAssignment  `json:"platforms"`
	Tags                      []EntityRef           `json:"tags"`
	Publishers                []EntityRef           `json:"publishers"`
	Developers                []EntityRef           `json:"developers"`
	Genres                    []EntityRef           `json:"genres"`
	EsrbRating                *EntityRef            `json:"esrb_rating"`
}

// trailer is the raw GET /games/{id}/movies row, resolutions live
// inside the data object keyed by "480" and "max".
type trailer struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Preview string            `json:"preview"`
	Data    map[string]string `json:"data"`
}

type achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Percent     string `json:"percent"`
}

type screenshot struct {
	ID        int    `json:"id"`
	Image     string `json:"image"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	IsDeleted bool   `json:"is_deleted"`
}

// creator is the raw GET /games/{id}/development-team row.
type creator struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Image      string `json:"image"`
	GamesCount int    `json:"games_count"`
	Positions  []struct {
		Name string `json:"name"`
	} `json:"positions"`
}

// Creator is the normalized development-team record: positions reduced
// to their names, image renamed to image_background, tagged with the
// parent game.
type Creator struct {
	RawgID          int      `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	GamesCount      int      `json:"games_count"`
	ImageBackground string   `json:"image_background"`
	Positions       []string `json:"positions"`
	GameRawgID      int      `json:"game_id"`
}
