package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/rawg"
)

// refTable maps type-rawgId to the internal id assigned by the store.
// Built once per sync run from the just-upserted entity set, never
// cached across runs.
type refTable map[string]primitive.ObjectID

func buildRefTable(entities []models.Entity) refTable {
	rt := make(refTable, len(entities))
	for _, e := range entities {
		rt[models.RefKey(e.Type, e.RawgID)] = e.ID
	}
	return rt
}

// resolveRefs rewrites external references into internal ids, silently
// dropping any that fail to resolve.
func (rt refTable) resolveRefs(refs []rawg.EntityRef, t models.EntityType) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(refs))
	for _, ref := range refs {
		if id, ok := rt[models.RefKey(t, ref.ID)]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (rt refTable) resolveCreators(creators []rawg.Creator) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(creators))
	for _, c := range creators {
		if id, ok := rt[models.RefKey(models.EntityCreator, c.RawgID)]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// childRefs groups persisted child documents by the game they were
// fetched for.
type childRefs struct {
	trailers     map[int][]primitive.ObjectID
	achievements map[int][]primitive.ObjectID
	screenshots  map[int][]primitive.ObjectID
}

func groupChildren(trailers []models.Trailer, achievements []models.Achievement, screenshots []models.Screenshot) childRefs {
	refs := childRefs{
		trailers:     make(map[int][]primitive.ObjectID),
		achievements: make(map[int][]primitive.ObjectID),
		screenshots:  make(map[int][]primitive.ObjectID),
	}
	for _, t := range trailers {
		refs.trailers[t.GameRawgID] = append(refs.trailers[t.GameRawgID], t.ID)
	}
	for _, a := range achievements {
		refs.achievements[a.GameRawgID] = append(refs.achievements[a.GameRawgID], a.ID)
	}
	for _, s := range screenshots {
		refs.screenshots[s.GameRawgID] = append(refs.screenshots[s.GameRawgID], s.ID)
	}
	return refs
}

// requirementsFor scans the platform associations for the first entry
// exposing the given requirements field. Empty string when none does.
func requirementsFor(platforms []rawg.PlatformAssignment) (minimum, recommended string) {
	for _, pa := range platforms {
		if pa.Requirements != nil && pa.Requirements.Minimum != "" {
			minimum = pa.Requirements.Minimum
			break
		}
	}
	for _, pa := range platforms {
		if pa.Requirements != nil && pa.Requirements.Recommended != "" {
			recommended = pa.Requirements.Recommended
			break
		}
	}
	return minimum, recommended
}

// resolveGame turns a raw RAWG payload into the catalog document,
// every embedded reference rewritten to an internal id.
func resolveGame(game *rawg.Game, rt refTable, creators []rawg.Creator, children childRefs) models.Game {
	minimum, recommended := requirementsFor(game.Platforms)

	platformRefs := make([]rawg.EntityRef, 0, len(game.Platforms))
	for _, pa := range game.Platforms {
		platformRefs = append(platformRefs, pa.Platform)
	}

	var esrb *primitive.ObjectID
	if game.EsrbRating != nil {
		if id, ok := rt[models.RefKey(models.EntityEsrbRating, game.EsrbRating.ID)]; ok {
			esrb = &id
		}
	}

	emptyIfNil := func(ids []primitive.ObjectID) []primitive.ObjectID {
		if ids == nil {
			return []primitive.ObjectID{}
		}
		return ids
	}

	return models.Game{
		RawgID:                    game.ID,
		Slug:                      game.Slug,
		Name:                      game.Name,
		NameOriginal:              game.NameOriginal,
		DescriptionRaw:            game.DescriptionRaw,
		Metacritic:                game.Metacritic,
		Released:                  game.Released,
		TBA:                       game.TBA,
		Updated:                   game.Updated,
		BackgroundImage:           game.BackgroundImage,
		BackgroundImageAdditional: game.BackgroundImageAdditional,
		Rating:                    game.Rating,
		RatingTop:                 game.RatingTop,
		Ratings:                   game.Ratings,
		Added:                     game.Added,
		Playtime:                  game.Playtime,
		ScreenshotsCount:          game.ScreenshotsCount,
		MoviesCount:               game.MoviesCount,
		CreatorsCount:             game.CreatorsCount,
		AchievementsCount:         game.AchievementsCount,
		RatingsCount:              game.RatingsCount,
		SuggestionsCount:          game.SuggestionsCount,
		ReviewsCount:              game.ReviewsCount,
		AlternativeNames:          game.AlternativeNames,
		MinimumRequirements:       minimum,
		RecommendedRequirements:   recommended,
		Tags:                      rt.resolveRefs(game.Tags, models.EntityTag),
		Genres:                    rt.resolveRefs(game.Genres, models.EntityGenre),
		Platforms:                 rt.resolveRefs(platformRefs, models.EntityPlatform),
		Publishers:                rt.resolveRefs(game.Publishers, models.EntityPublisher),
		Developers:                rt.resolveRefs(game.Developers, models.EntityDeveloper),
		Creators:                  rt.resolveCreators(creators),
		EsrbRating:                esrb,
		Trailers:                  emptyIfNil(children.trailers[game.ID]),
		Achievements:              emptyIfNil(children.achievements[game.ID]),
		Screenshots:               emptyIfNil(children.screenshots[game.ID]),
	}
}
