package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/rawg"
)

func TestResolveRefsDropsUnresolved(t *testing.T) {
	known := primitive.NewObjectID()
	rt := buildRefTable([]models.Entity{
		{ID: known, RawgID: 1, Type: models.EntityTag},
	})

	ids := rt.resolveRefs([]rawg.EntityRef{{ID: 1}, {ID: 99}}, models.EntityTag)

	require.Len(t, ids, 1)
	assert.Equal(t, known, ids[0])
}

func TestResolveRefsIsTypeScoped(t *testing.T) {
	tagID := primitive.NewObjectID()
	genreID := primitive.NewObjectID()
	rt := buildRefTable([]models.Entity{
		{ID: tagID, RawgID: 7, Type: models.EntityTag},
		{ID: genreID, RawgID: 7, Type: models.EntityGenre},
	})

	assert.Equal(t, []primitive.ObjectID{tagID}, rt.resolveRefs([]rawg.EntityRef{{ID: 7}}, models.EntityTag))
	assert.Equal(t, []primitive.ObjectID{genreID}, rt.resolveRefs([]rawg.EntityRef{{ID: 7}}, models.EntityGenre))
}

func TestRequirementsForTakesFirstMatchIndependently(t *testing.T) {
	platforms := []rawg.PlatformAssignment{
		{Platform: rawg.EntityRef{ID: 1}},
		{Platform: rawg.EntityRef{ID: 2}, Requirements: &rawg.Requirements{Minimum: "OS: Windows 7"}},
		{Platform: rawg.EntityRef{ID: 3}, Requirements: &rawg.Requirements{Minimum: "OS: Windows 10", Recommended: "OS: Windows 11"}},
	}

	minimum, recommended := requirementsFor(platforms)

	assert.Equal(t, "OS: Windows 7", minimum)
	assert.Equal(t, "OS: Windows 11", recommended, "recommended comes from a later platform than minimum")
}

func TestRequirementsForEmptyWhenAbsent(t *testing.T) {
	minimum, recommended := requirementsFor([]rawg.PlatformAssignment{
		{Platform: rawg.EntityRef{ID: 1}},
	})
	assert.Empty(t, minimum)
	assert.Empty(t, recommended)
}

func TestGroupChildrenByParentGame(t *testing.T) {
	t1 := primitive.NewObjectID()
	t2 := primitive.NewObjectID()
	s1 := primitive.NewObjectID()

	refs := groupChildren(
		[]models.Trailer{
			{ID: t1, RawgID: 10, GameRawgID: 3498},
			{ID: t2, RawgID: 11, GameRawgID: 4200},
		},
		nil,
		[]models.Screenshot{{ID: s1, RawgID: 20, GameRawgID: 3498}},
	)

	assert.Equal(t, []primitive.ObjectID{t1}, refs.trailers[3498])
	assert.Equal(t, []primitive.ObjectID{t2}, refs.trailers[4200])
	assert.Equal(t, []primitive.ObjectID{s1}, refs.screenshots[3498])
	assert.Empty(t, refs.achievements)
}

func TestResolveGameRewritesEveryReference(t *testing.T) {
	platformID := primitive.NewObjectID()
	tagID := primitive.NewObjectID()
	creatorID := primitive.NewObjectID()
	rt := buildRefTable([]models.Entity{
		{ID: platformID, RawgID: 4, Type: models.EntityPlatform},
		{ID: tagID, RawgID: 1, Type: models.EntityTag},
		{ID: creatorID, RawgID: 100, Type: models.EntityCreator},
	})

	game := &rawg.Game{
		ID:   3498,
		Slug: "grand-theft-auto-v",
		Name: "Grand Theft Auto V",
		Platforms: []rawg.PlatformAssignment{
			{Platform: rawg.EntityRef{ID: 4}, Requirements: &rawg.Requirements{Minimum: "OS: Windows 7"}},
		},
		Tags: []rawg.EntityRef{{ID: 1}},
	}
	creators := []rawg.Creator{{RawgID: 100, GameRawgID: 3498}}

	doc := resolveGame(game, rt, creators, groupChildren(nil, nil, nil))

	assert.Equal(t, 3498, doc.RawgID)
	assert.Equal(t, []primitive.ObjectID{platformID}, doc.Platforms)
	assert.Equal(t, []primitive.ObjectID{tagID}, doc.Tags)
	assert.Equal(t, []primitive.ObjectID{creatorID}, doc.Creators)
	assert.Equal(t, "OS: Windows 7", doc.MinimumRequirements)
	assert.Empty(t, doc.RecommendedRequirements)
	assert.Nil(t, doc.EsrbRating)

	// child arrays are stored empty, not null
	assert.NotNil(t, doc.Trailers)
	assert.NotNil(t, doc.Achievements)
	assert.NotNil(t, doc.Screenshots)
	assert.Empty(t, doc.Trailers)
}

func TestResolveGameEsrbUnresolvedStaysNil(t *testing.T) {
	rt := buildRefTable(nil)
	game := &rawg.Game{
		ID:         3498,
		EsrbRating: &rawg.EntityRef{ID: 6},
	}

	doc := resolveGame(game, rt, nil, groupChildren(nil, nil, nil))

	assert.Nil(t, doc.EsrbRating)
}

func TestResolveGameEsrbResolved(t *testing.T) {
	esrbID := primitive.NewObjectID()
	rt := buildRefTable([]models.Entity{
		{ID: esrbID, RawgID: 6, Type: models.EntityEsrbRating},
	})
	game := &rawg.Game{
		ID:         3498,
		EsrbRating: &rawg.EntityRef{ID: 6},
	}

	doc := resolveGame(game, rt, nil, groupChildren(nil, nil, nil))

	require.NotNil(t, doc.EsrbRating)
	assert.Equal(t, esrbID, *doc.EsrbRating)
}
