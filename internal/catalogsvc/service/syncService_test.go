package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/lakshmanb-0/icantace-game/configs"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/rawg"
	"github.com/lakshmanb-0/icantace-game/internal/comm"
)

type fakeSource struct {
	index        *rawg.GamesPage
	games        map[int]*rawg.Game
	trailers     map[int][]models.Trailer
	achievements map[int][]models.Achievement
	screenshots  map[int][]models.Screenshot
	creators     map[int][]rawg.Creator

	gameErr error
}

func (f *fakeSource) GetGames(ctx context.Context, page, pageSize int) (*rawg.GamesPage, error) {
	return f.index, nil
}

func (f *fakeSource) GetGame(ctx context.Context, id int) (*rawg.Game, error) {
	if f.gameErr != nil {
		return nil, f.gameErr
	}
	return f.games[id], nil
}

func (f *fakeSource) GetTrailers(ctx context.Context, gameID int) ([]models.Trailer, error) {
	return f.trailers[gameID], nil
}

func (f *fakeSource) GetAchievements(ctx context.Context, gameID int) ([]models.Achievement, error) {
	return f.achievements[gameID], nil
}

func (f *fakeSource) GetScreenshots(ctx context.Context, gameID int) ([]models.Screenshot, error) {
	return f.screenshots[gameID], nil
}

func (f *fakeSource) GetCreators(ctx context.Context, gameID int) ([]rawg.Creator, error) {
	return f.creators[gameID], nil
}

// fakeEntityStore assigns deterministic ids on upsert the way the real
// store surfaces them after the bulk write.
type fakeEntityStore struct {
	assigned map[string]primitive.ObjectID
	calls    int
}

func (f *fakeEntityStore) UpsertMany(ctx context.Context, entities []models.Entity) ([]models.Entity, error) {
	f.calls++
	if f.assigned == nil {
		f.assigned = make(map[string]primitive.ObjectID)
	}
	out := make([]models.Entity, len(entities))
	for i, e := range entities {
		id, ok := f.assigned[e.Key()]
		if !ok {
			id = primitive.NewObjectID()
			f.assigned[e.Key()] = id
		}
		e.ID = id
		out[i] = e
	}
	return out, nil
}

type fakeTrailerStore struct{}

func (fakeTrailerStore) UpsertMany(ctx context.Context, trailers []models.Trailer) ([]models.Trailer, error) {
	out := make([]models.Trailer, len(trailers))
	for i, tr := range trailers {
		tr.ID = primitive.NewObjectID()
		out[i] = tr
	}
	return out, nil
}

type fakeAchievementStore struct{}

func (fakeAchievementStore) UpsertMany(ctx context.Context, achievements []models.Achievement) ([]models.Achievement, error) {
	out := make([]models.Achievement, len(achievements))
	for i, a := range achievements {
		a.ID = primitive.NewObjectID()
		out[i] = a
	}
	return out, nil
}

type fakeScreenshotStore struct{}

func (fakeScreenshotStore) UpsertMany(ctx context.Context, screenshots []models.Screenshot) ([]models.Screenshot, error) {
	out := make([]models.Screenshot, len(screenshots))
	for i, s := range screenshots {
		s.ID = primitive.NewObjectID()
		out[i] = s
	}
	return out, nil
}

type fakeGameStore struct {
	upserted [][]models.Game
	err      error
}

func (f *fakeGameStore) UpsertMany(ctx context.Context, games []models.Game) (*mongo.BulkWriteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upserted = append(f.upserted, games)
	return &mongo.BulkWriteResult{UpsertedCount: int64(len(games))}, nil
}

// fakeUnitOfWork records whether the transaction body succeeded. A
// returned error stands in for the rollback.
type fakeUnitOfWork struct {
	runs       int
	rolledBack bool
}

func (f *fakeUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	f.runs++
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fakeEvents struct {
	events []comm.SyncEvent
}

func (f *fakeEvents) PublishSyncEvent(event comm.SyncEvent) {
	f.events = append(f.events, event)
}

func (f *fakeEvents) types() []string {
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

func gtaFixture() *fakeSource {
	return &fakeSource{
		index: &rawg.GamesPage{Count: 1, Results: []rawg.GameSummary{
			{ID: 3498, Slug: "grand-theft-auto-v", Name: "Grand Theft Auto V"},
		}},
		games: map[int]*rawg.Game{
			3498: {
				ID:   3498,
				Slug: "grand-theft-auto-v",
				Name: "Grand Theft Auto V",
				Platforms: []rawg.PlatformAssignment{
					{Platform: rawg.EntityRef{ID: 4, Name: "PC", Slug: "pc"},
						Requirements: &rawg.Requirements{Minimum: "OS: Windows 7"}},
				},
				Tags: []rawg.EntityRef{{ID: 1, Name: "Singleplayer", Slug: "singleplayer"}},
			},
		},
		trailers: map[int][]models.Trailer{
			3498: {{RawgID: 10, Name: "launch trailer", GameRawgID: 3498}},
		},
	}
}

func newSyncFixture(src *fakeSource) (*SyncService, *fakeEntityStore, *fakeGameStore, *fakeUnitOfWork, *fakeEvents) {
	entities := &fakeEntityStore{}
	games := &fakeGameStore{}
	uow := &fakeUnitOfWork{}
	events := &fakeEvents{}
	svc := NewSyncService(src, entities, fakeTrailerStore{}, fakeAchievementStore{},
		fakeScreenshotStore{}, games, uow, events)
	return svc, entities, games, uow, events
}

func TestUpsertGamesEndToEnd(t *testing.T) {
	config.CreateUniqueInstance("catalog")
	svc, entities, games, uow, events := newSyncFixture(gtaFixture())

	summary, err := svc.UpsertGames(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Games)
	assert.Equal(t, 2, summary.Entities, "one platform plus one tag")
	assert.Equal(t, 1, summary.Trailers)
	assert.Equal(t, int64(1), summary.Upserted)
	assert.Equal(t, 1, uow.runs)
	assert.False(t, uow.rolledBack)

	require.Len(t, games.upserted, 1)
	require.Len(t, games.upserted[0], 1)
	doc := games.upserted[0][0]

	assert.Equal(t, 3498, doc.RawgID)
	assert.Equal(t, []primitive.ObjectID{entities.assigned[models.EntityKey(4, models.EntityPlatform)]}, doc.Platforms)
	assert.Equal(t, []primitive.ObjectID{entities.assigned[models.EntityKey(1, models.EntityTag)]}, doc.Tags)
	assert.Equal(t, "OS: Windows 7", doc.MinimumRequirements)
	assert.Empty(t, doc.RecommendedRequirements)
	assert.Nil(t, doc.EsrbRating)
	assert.Len(t, doc.Trailers, 1)

	assert.Equal(t, []string{comm.SyncStarted, comm.SyncCompleted}, events.types())
	for _, e := range events.events {
		assert.Equal(t, config.GetInstanceId(), e.InstanceId)
		assert.NotEmpty(t, e.InstanceId)
	}
}

func TestUpsertGamesIsIdempotentOnRerun(t *testing.T) {
	svc, entities, games, _, _ := newSyncFixture(gtaFixture())

	_, err := svc.UpsertGames(context.Background(), 1, 1)
	require.NoError(t, err)
	_, err = svc.UpsertGames(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, entities.calls)
	require.Len(t, games.upserted, 2)

	// the second run resolves against the same stored entities and
	// produces the same document
	first, second := games.upserted[0][0], games.upserted[1][0]
	assert.Equal(t, first.Platforms, second.Platforms)
	assert.Equal(t, first.Tags, second.Tags)
}

func TestUpsertGamesRollsBackWhenGameUpsertFails(t *testing.T) {
	svc, _, games, uow, events := newSyncFixture(gtaFixture())
	games.err = errors.New("bulk write failed")

	_, err := svc.UpsertGames(context.Background(), 1, 1)
	require.Error(t, err)

	assert.Equal(t, 1, uow.runs)
	assert.True(t, uow.rolledBack)
	assert.Equal(t, []string{comm.SyncStarted, comm.SyncFailed}, events.types())
}

func TestUpsertGamesFetchFailureSkipsTransaction(t *testing.T) {
	src := gtaFixture()
	src.gameErr = errors.New("upstream down")
	svc, _, _, uow, events := newSyncFixture(src)

	_, err := svc.UpsertGames(context.Background(), 1, 1)
	require.Error(t, err)

	assert.Zero(t, uow.runs, "no writes attempted when the fan-out fails")
	assert.Equal(t, []string{comm.SyncStarted, comm.SyncFailed}, events.types())
}

func TestUpsertGamesDefaultsPageParams(t *testing.T) {
	src := gtaFixture()
	svc, _, _, _, _ := newSyncFixture(src)

	summary, err := svc.UpsertGames(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Games)
}

func TestUpsertGamesSharedEntityResolvedOnBothGames(t *testing.T) {
	tag := rawg.EntityRef{ID: 1, Name: "Singleplayer"}
	src := &fakeSource{
		index: &rawg.GamesPage{Count: 2, Results: []rawg.GameSummary{
			{ID: 3498}, {ID: 4200},
		}},
		games: map[int]*rawg.Game{
			3498: {ID: 3498, Tags: []rawg.EntityRef{tag}},
			4200: {ID: 4200, Tags: []rawg.EntityRef{tag}},
		},
	}
	svc, entities, games, _, _ := newSyncFixture(src)

	summary, err := svc.UpsertGames(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Games)
	assert.Equal(t, 1, summary.Entities, "shared tag stored once")

	tagID := entities.assigned[models.EntityKey(1, models.EntityTag)]
	require.Len(t, games.upserted, 1)
	for _, doc := range games.upserted[0] {
		assert.Equal(t, []primitive.ObjectID{tagID}, doc.Tags)
	}
}
