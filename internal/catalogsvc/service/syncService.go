package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	config "github.com/lakshmanb-0/icantace-game/configs"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/rawg"
	"github.com/lakshmanb-0/icantace-game/internal/comm"
)

// sourceClient is the slice of the RAWG client the sync run needs.
type sourceClient interface {
	GetGames(ctx context.Context, page, pageSize int) (*rawg.GamesPage, error)
	GetGame(ctx context.Context, id int) (*rawg.Game, error)
	GetTrailers(ctx context.Context, gameID int) ([]models.Trailer, error)
	GetAchievements(ctx context.Context, gameID int) ([]models.Achievement, error)
	GetScreenshots(ctx context.Context, gameID int) ([]models.Screenshot, error)
	GetCreators(ctx context.Context, gameID int) ([]rawg.Creator, error)
}

type entityUpserter interface {
	UpsertMany(ctx context.Context, entities []models.Entity) ([]models.Entity, error)
}

type trailerUpserter interface {
	UpsertMany(ctx context.Context, trailers []models.Trailer) ([]models.Trailer, error)
}

type achievementUpserter interface {
	UpsertMany(ctx context.Context, achievements []models.Achievement) ([]models.Achievement, error)
}

type screenshotUpserter interface {
	UpsertMany(ctx context.Context, screenshots []models.Screenshot) ([]models.Screenshot, error)
}

type gameUpserter interface {
	UpsertMany(ctx context.Context, games []models.Game) (*mongo.BulkWriteResult, error)
}

// unitOfWork groups every store write of one run; commit and rollback
// belong to it alone.
type unitOfWork interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

type syncEventPublisher interface {
	PublishSyncEvent(event comm.SyncEvent)
}

// SyncSummary is the run result returned to the trigger endpoint.
type SyncSummary struct {
	Games        int   `json:"games"`
	Entities     int   `json:"entities"`
	Trailers     int   `json:"trailers"`
	Achievements int   `json:"achievements"`
	Screenshots  int   `json:"screenshots"`
	Matched      int64 `json:"matched"`
	Modified     int64 `json:"modified"`
	Upserted     int64 `json:"upserted"`
}

// SyncService mirrors game metadata from RAWG into the catalog. One
// run fetches a page of the games index, fans out over each game's
// sub-resources, deduplicates the shared lookup entities, and upserts
// everything inside a single transaction.
type SyncService struct {
	source       sourceClient
	entities     entityUpserter
	trailers     trailerUpserter
	achievements achievementUpserter
	screenshots  screenshotUpserter
	games        gameUpserter
	uow          unitOfWork
	events       syncEventPublisher
}

func NewSyncService(source sourceClient, entities entityUpserter, trailers trailerUpserter,
	achievements achievementUpserter, screenshots screenshotUpserter, games gameUpserter,
	uow unitOfWork, events syncEventPublisher) *SyncService {
	return &SyncService{
		source:       source,
		entities:     entities,
		trailers:     trailers,
		achievements: achievements,
		screenshots:  screenshots,
		games:        games,
		uow:          uow,
		events:       events,
	}
}

// batch holds everything fetched during the fan-out phase. Slices are
// written at distinct indexes by the fetch goroutines and only read
// after the join.
type batch struct {
	games        []*rawg.Game
	trailers     [][]models.Trailer
	achievements [][]models.Achievement
	screenshots  [][]models.Screenshot
	creators     [][]rawg.Creator
}

// UpsertGames runs one full synchronization over the given page of the
// RAWG games index. Re-running with identical upstream data is
// idempotent, every write targets a natural key.
func (s *SyncService) UpsertGames(ctx context.Context, page, pageSize int) (*SyncSummary, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 1
	}

	index, err := s.source.GetGames(ctx, page, pageSize)
	if err != nil {
		s.publish(comm.SyncFailed, nil, err)
		return nil, err
	}

	gameIDs := make([]int, 0, len(index.Results))
	for _, g := range index.Results {
		gameIDs = append(gameIDs, g.ID)
	}

	log.Infof("sync run started: page %d, %d game(s)", page, len(gameIDs))
	s.publish(comm.SyncStarted, &SyncSummary{Games: len(gameIDs)}, nil)

	b, err := s.fetchBatch(ctx, gameIDs)
	if err != nil {
		s.publish(comm.SyncFailed, nil, err)
		return nil, err
	}

	flatTrailers := flatten(b.trailers)
	flatAchievements := flatten(b.achievements)
	flatScreenshots := flatten(b.screenshots)

	creatorsByGame := make(map[int][]rawg.Creator)
	for _, creators := range b.creators {
		for _, c := range creators {
			creatorsByGame[c.GameRawgID] = append(creatorsByGame[c.GameRawgID], c)
		}
	}

	entities := collectEntities(b.games, creatorsByGame)

	summary := &SyncSummary{
		Games:        len(b.games),
		Entities:     len(entities),
		Trailers:     len(flatTrailers),
		Achievements: len(flatAchievements),
		Screenshots:  len(flatScreenshots),
	}

	err = s.uow.Run(ctx, func(txCtx context.Context) error {
		persistedEntities, err := s.entities.UpsertMany(txCtx, entities)
		if err != nil {
			return err
		}
		persistedTrailers, err := s.trailers.UpsertMany(txCtx, flatTrailers)
		if err != nil {
			return err
		}
		persistedScreenshots, err := s.screenshots.UpsertMany(txCtx, flatScreenshots)
		if err != nil {
			return err
		}
		persistedAchievements, err := s.achievements.UpsertMany(txCtx, flatAchievements)
		if err != nil {
			return err
		}

		rt := buildRefTable(persistedEntities)
		children := groupChildren(persistedTrailers, persistedAchievements, persistedScreenshots)

		resolved := make([]models.Game, 0, len(b.games))
		for _, game := range b.games {
			resolved = append(resolved, resolveGame(game, rt, creatorsByGame[game.ID], children))
		}

		result, err := s.games.UpsertMany(txCtx, resolved)
		if err != nil {
			return err
		}

		summary.Matched = result.MatchedCount
		summary.Modified = result.ModifiedCount
		summary.Upserted = result.UpsertedCount
		return nil
	})
	if err != nil {
		log.Errorf("sync run aborted, transaction rolled back: %v", err)
		s.publish(comm.SyncFailed, summary, err)
		return nil, err
	}

	log.Infof("sync run committed: %d game(s), %d entities, upserted %d modified %d",
		summary.Games, summary.Entities, summary.Upserted, summary.Modified)
	s.publish(comm.SyncCompleted, summary, nil)

	return summary, nil
}

// fetchBatch fans out the detail and sub-resource fetches for every
// game in the index page. Nothing shared is mutated until every fetch
// has joined.
func (s *SyncService) fetchBatch(ctx context.Context, gameIDs []int) (*batch, error) {
	n := len(gameIDs)
	b := &batch{
		games:        make([]*rawg.Game, n),
		trailers:     make([][]models.Trailer, n),
		achievements: make([][]models.Achievement, n),
		screenshots:  make([][]models.Screenshot, n),
		creators:     make([][]rawg.Creator, n),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range gameIDs {
		i, id := i, id
		g.Go(func() error {
			game, err := s.source.GetGame(gctx, id)
			if err != nil {
				return err
			}
			b.games[i] = game
			return nil
		})
		g.Go(func() error {
			trailers, err := s.source.GetTrailers(gctx, id)
			if err != nil {
				return err
			}
			b.trailers[i] = trailers
			return nil
		})
		g.Go(func() error {
			achievements, err := s.source.GetAchievements(gctx, id)
			if err != nil {
				return err
			}
			b.achievements[i] = achievements
			return nil
		})
		g.Go(func() error {
			screenshots, err := s.source.GetScreenshots(gctx, id)
			if err != nil {
				return err
			}
			b.screenshots[i] = screenshots
			return nil
		})
		g.Go(func() error {
			creators, err := s.source.GetCreators(gctx, id)
			if err != nil {
				return err
			}
			b.creators[i] = creators
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *SyncService) publish(eventType string, summary *SyncSummary, runErr error) {
	if s.events == nil {
		return
	}

	event := comm.SyncEvent{
		Type:       eventType,
		InstanceId: config.GetInstanceId(),
		Timestamp:  time.Now().UTC(),
	}
	if summary != nil {
		event.Games = summary.Games
		event.Entities = summary.Entities
		event.Upserted = int(summary.Upserted)
		event.Modified = int(summary.Modified)
	}
	if runErr != nil {
		event.Error = runErr.Error()
	}

	s.events.PublishSyncEvent(event)
}

func flatten[T any](groups [][]T) []T {
	var out []T
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
