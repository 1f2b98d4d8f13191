package rawg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
)

type envelope struct {
	Count   int         `json:"count"`
	Results interface{} `json:"results"`
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestGetTrailersPaginatesUntilCountExhausted(t *testing.T) {
	const total = 85 // 3 pages at the default page size of 40

	var mu sync.Mutex
	pagesSeen := map[int]int{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games/3498/movies", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, strconv.Itoa(DefaultPageSize), r.URL.Query().Get("page_size"))

		pageNo, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)

		mu.Lock()
		pagesSeen[pageNo]++
		mu.Unlock()

		start := (pageNo - 1) * DefaultPageSize
		n := DefaultPageSize
		if start+n > total {
			n = total - start
		}
		rows := make([]map[string]interface{}, 0, n)
		for i := 0; i < n; i++ {
			rows = append(rows, map[string]interface{}{
				"id":      start + i + 1,
				"name":    fmt.Sprintf("trailer %d", start+i+1),
				"preview": "preview.jpg",
				"data": map[string]string{
					"480": "480.mp4",
					"max": "max.mp4",
				},
			})
		}
		writeJSON(t, w, envelope{Count: total, Results: rows})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	trailers, err := c.GetTrailers(context.Background(), 3498)
	require.NoError(t, err)
	require.Len(t, trailers, total)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, pagesSeen, "each page fetched exactly once, no page 4")

	// page order survives the concurrent fetch
	for i, tr := range trailers {
		assert.Equal(t, i+1, tr.RawgID)
	}
	assert.Equal(t, "480.mp4", trailers[0].MinResolution)
	assert.Equal(t, "max.mp4", trailers[0].MaxResolution)
	assert.Equal(t, 3498, trailers[0].GameRawgID)
}

func TestGetTrailersNotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	trailers, err := c.GetTrailers(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, trailers)
}

func TestGetAchievementsServerErrorAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	_, err := c.GetAchievements(context.Background(), 42)
	require.Error(t, err)

	var fe *apperr.UpstreamFetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusBadGateway, fe.Status)
	assert.Equal(t, "achievements", fe.Resource)
}

func TestGetCreatorsFlattensPositionsAndImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games/3498/development-team", r.URL.Path)
		writeJSON(t, w, envelope{Count: 1, Results: []map[string]interface{}{
			{
				"id":          100,
				"name":        "Sam Houser",
				"slug":        "sam-houser",
				"image":       "sam.jpg",
				"games_count": 12,
				"positions": []map[string]string{
					{"name": "producer"},
					{"name": "writer"},
				},
			},
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	creators, err := c.GetCreators(context.Background(), 3498)
	require.NoError(t, err)
	require.Len(t, creators, 1)

	assert.Equal(t, 100, creators[0].RawgID)
	assert.Equal(t, []string{"producer", "writer"}, creators[0].Positions)
	assert.Equal(t, "sam.jpg", creators[0].ImageBackground)
	assert.Equal(t, 3498, creators[0].GameRawgID)
}

func TestGetGamesForwardsPageParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("page_size"))
		writeJSON(t, w, envelope{Count: 900, Results: []map[string]interface{}{
			{"id": 3498, "slug": "grand-theft-auto-v", "name": "Grand Theft Auto V"},
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	p, err := c.GetGames(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 900, p.Count)
	require.Len(t, p.Results, 1)
	assert.Equal(t, "grand-theft-auto-v", p.Results[0].Slug)
}

func TestGetGameDecodesDetailPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games/3498", r.URL.Path)
		writeJSON(t, w, map[string]interface{}{
			"id":   3498,
			"slug": "grand-theft-auto-v",
			"name": "Grand Theft Auto V",
			"platforms": []map[string]interface{}{
				{
					"platform":     map[string]interface{}{"id": 4, "name": "PC", "slug": "pc"},
					"requirements": map[string]string{"minimum": "OS: Windows 7"},
				},
			},
			"tags":        []map[string]interface{}{{"id": 1, "name": "Singleplayer", "slug": "singleplayer"}},
			"esrb_rating": nil,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	game, err := c.GetGame(context.Background(), 3498)
	require.NoError(t, err)

	assert.Equal(t, 3498, game.ID)
	require.Len(t, game.Platforms, 1)
	assert.Equal(t, 4, game.Platforms[0].Platform.ID)
	require.NotNil(t, game.Platforms[0].Requirements)
	assert.Equal(t, "OS: Windows 7", game.Platforms[0].Requirements.Minimum)
	assert.Empty(t, game.Platforms[0].Requirements.Recommended)
	assert.Nil(t, game.EsrbRating)
}
