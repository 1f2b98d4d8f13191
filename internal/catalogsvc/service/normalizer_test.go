package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/rawg"
)

func TestCollectEntitiesDeduplicatesByIdAndType(t *testing.T) {
	tag := rawg.EntityRef{ID: 7, Name: "Multiplayer", Slug: "multiplayer"}
	games := []*rawg.Game{
		{ID: 1, Tags: []rawg.EntityRef{tag}},
		{ID: 2, Tags: []rawg.EntityRef{tag}},
	}

	entities := collectEntities(games, nil)

	require.Len(t, entities, 1)
	assert.Equal(t, 7, entities[0].RawgID)
	assert.Equal(t, models.EntityTag, entities[0].Type)
}

func TestCollectEntitiesSameIdDifferentTypeBothSurvive(t *testing.T) {
	games := []*rawg.Game{
		{
			ID:     1,
			Tags:   []rawg.EntityRef{{ID: 7, Name: "Multiplayer"}},
			Genres: []rawg.EntityRef{{ID: 7, Name: "Action"}},
		},
	}

	entities := collectEntities(games, nil)

	require.Len(t, entities, 2)
	types := map[models.EntityType]string{}
	for _, e := range entities {
		types[e.Type] = e.Name
	}
	assert.Equal(t, "Multiplayer", types[models.EntityTag])
	assert.Equal(t, "Action", types[models.EntityGenre])
}

func TestCollectEntitiesFirstSeenWins(t *testing.T) {
	games := []*rawg.Game{
		{ID: 1, Tags: []rawg.EntityRef{{ID: 7, Name: "Multiplayer"}}},
		{ID: 2, Tags: []rawg.EntityRef{{ID: 7, Name: "multi-player (renamed)"}}},
	}

	entities := collectEntities(games, nil)

	require.Len(t, entities, 1)
	assert.Equal(t, "Multiplayer", entities[0].Name)
}

func TestCollectEntitiesCoversEveryCategory(t *testing.T) {
	games := []*rawg.Game{
		{
			ID: 3498,
			Platforms: []rawg.PlatformAssignment{
				{Platform: rawg.EntityRef{ID: 4, Name: "PC"}},
			},
			Tags:       []rawg.EntityRef{{ID: 1, Name: "Singleplayer"}},
			Genres:     []rawg.EntityRef{{ID: 2, Name: "Action"}},
			Publishers: []rawg.EntityRef{{ID: 3, Name: "Rockstar Games"}},
			Developers: []rawg.EntityRef{{ID: 5, Name: "Rockstar North"}},
			EsrbRating: &rawg.EntityRef{ID: 6, Name: "Mature"},
		},
	}
	creators := map[int][]rawg.Creator{
		3498: {{RawgID: 100, Name: "Sam Houser", Positions: []string{"producer"}, GameRawgID: 3498}},
	}

	entities := collectEntities(games, creators)

	require.Len(t, entities, 7)
	byType := map[models.EntityType]models.Entity{}
	for _, e := range entities {
		byType[e.Type] = e
	}
	assert.Equal(t, 4, byType[models.EntityPlatform].RawgID)
	assert.Equal(t, 6, byType[models.EntityEsrbRating].RawgID)
	assert.Equal(t, []string{"producer"}, byType[models.EntityCreator].Positions)
}

func TestCollectEntitiesSkipsNilGames(t *testing.T) {
	entities := collectEntities([]*rawg.Game{nil}, nil)
	assert.Empty(t, entities)
}
