package service

import (
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/rawg"
)

func entityFromRef(ref rawg.EntityRef, t models.EntityType) models.Entity {
	return models.Entity{
		RawgID:          ref.ID,
		Type:            t,
		Name:            ref.Name,
		Slug:            ref.Slug,
		GamesCount:      ref.GamesCount,
		ImageBackground: ref.ImageBackground,
	}
}

func entityFromCreator(c rawg.Creator) models.Entity {
	return models.Entity{
		RawgID:          c.RawgID,
		Type:            models.EntityCreator,
		Name:            c.Name,
		Slug:            c.Slug,
		GamesCount:      c.GamesCount,
		ImageBackground: c.ImageBackground,
		Positions:       c.Positions,
	}
}

// collectEntities gathers every lookup entity the game batch
// references, tags each with its category and deduplicates by
// (rawg id, category). Ties keep the first-seen representation.
func collectEntities(games []*rawg.Game, creatorsByGame map[int][]rawg.Creator) []models.Entity {
	var entities []models.Entity
	seen := make(map[string]struct{})

	add := func(e models.Entity) {
		if _, ok := seen[e.Key()]; ok {
			return
		}
		seen[e.Key()] = struct{}{}
		entities = append(entities, e)
	}

	for _, game := range games {
		if game == nil {
			continue
		}

		// platforms arrive wrapped in their association record
		for _, pa := range game.Platforms {
			add(entityFromRef(pa.Platform, models.EntityPlatform))
		}
		for _, ref := range game.Tags {
			add(entityFromRef(ref, models.EntityTag))
		}
		for _, ref := range game.Publishers {
			add(entityFromRef(ref, models.EntityPublisher))
		}
		for _, ref := range game.Developers {
			add(entityFromRef(ref, models.EntityDeveloper))
		}
		for _, ref := range game.Genres {
			add(entityFromRef(ref, models.EntityGenre))
		}
		if game.EsrbRating != nil {
			add(entityFromRef(*game.EsrbRating, models.EntityEsrbRating))
		}
		for _, c := range creatorsByGame[game.ID] {
			add(entityFromCreator(c))
		}
	}

	return entities
}
