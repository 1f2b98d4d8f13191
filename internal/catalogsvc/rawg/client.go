package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/apperr"
	"github.com/lakshmanb-0/icantace-game/internal/catalogsvc/models"
)

const DefaultPageSize = 40

// Client talks to the RAWG games API. It keeps no state between calls
// beyond the underlying http client.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	pageSize int
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
		pageSize: DefaultPageSize,
	}
}

// getPage fetches one page of a collection endpoint and decodes the
// {count, results} envelope. The raw body is decoded into T rows.
func getPage[T any](ctx context.Context, c *Client, path, resource string, pageNo, pageSize int) (*page[T], error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, &apperr.UpstreamFetchError{Resource: resource, Err: err}
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("page", strconv.Itoa(pageNo))
	q.Set("page_size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &apperr.UpstreamFetchError{Resource: resource, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apperr.UpstreamFetchError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apperr.UpstreamFetchError{Resource: resource, Status: resp.StatusCode}
	}

	p := &page[T]{}
	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		return nil, &apperr.UpstreamFetchError{Resource: resource, Err: fmt.Errorf("decode response: %w", err)}
	}

	return p, nil
}

// fetchAll walks a per-game sub-resource until the reported count is
// exhausted. Page 1 tells us the total, the remaining pages are fetched
// concurrently and concatenated in page order. A 404 means the game
// simply has none of this sub-resource and yields an empty list, any
// other failure aborts.
func fetchAll[T any](ctx context.Context, c *Client, path, resource string) ([]T, error) {
	first, err := getPage[T](ctx, c, path, resource, 1, c.pageSize)
	if err != nil {
		if fe, ok := err.(*apperr.UpstreamFetchError); ok && fe.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	pages := (first.Count + c.pageSize - 1) / c.pageSize
	if pages <= 1 {
		return first.Results, nil
	}

	rest := make([][]T, pages-1)
	g, gctx := errgroup.WithContext(ctx)
	for i := 2; i <= pages; i++ {
		i := i
		g.Go(func() error {
			p, err := getPage[T](gctx, c, path, resource, i, c.pageSize)
			if err != nil {
				return err
			}
			rest[i-2] = p.Results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := first.Results
	for _, r := range rest {
		results = append(results, r...)
	}
	return results, nil
}

// GetGames fetches one page of the games index.
func (c *Client) GetGames(ctx context.Context, pageNo, pageSize int) (*GamesPage, error) {
	if pageSize <= 0 {
		pageSize = c.pageSize
	}
	p, err := getPage[GameSummary](ctx, c, "/games", "games", pageNo, pageSize)
	if err != nil {
		return nil, err
	}
	return &GamesPage{Count: p.Count, Results: p.Results}, nil
}

// GetGame fetches the full detail payload for one game.
func (c *Client) GetGame(ctx context.Context, id int) (*Game, error) {
	u, err := url.Parse(fmt.Sprintf("%s/games/%d", c.baseURL, id))
	if err != nil {
		return nil, &apperr.UpstreamFetchError{Resource: "game", Err: err}
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &apperr.UpstreamFetchError{Resource: "game", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apperr.UpstreamFetchError{Resource: "game", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apperr.UpstreamFetchError{Resource: "game", Status: resp.StatusCode}
	}

	game := &Game{}
	if err := json.NewDecoder(resp.Body).Decode(game); err != nil {
		return nil, &apperr.UpstreamFetchError{Resource: "game", Err: fmt.Errorf("decode response: %w", err)}
	}

	return game, nil
}

// GetTrailers fetches every trailer of a game, mapping the resolution
// urls out of the data object and tagging the parent game id.
func (c *Client) GetTrailers(ctx context.Context, gameID int) ([]models.Trailer, error) {
	raw, err := fetchAll[trailer](ctx, c, fmt.Sprintf("/games/%d/movies", gameID), "trailers")
	if err != nil {
		return nil, err
	}

	trailers := make([]models.Trailer, 0, len(raw))
	for _, t := range raw {
		trailers = append(trailers, models.Trailer{
			RawgID:        t.ID,
			Name:          t.Name,
			Preview:       t.Preview,
			MinResolution: t.Data["480"],
			MaxResolution: t.Data["max"],
			GameRawgID:    gameID,
		})
	}
	return trailers, nil
}

// GetAchievements fetches every achievement of a game.
func (c *Client) GetAchievements(ctx context.Context, gameID int) ([]models.Achievement, error) {
	raw, err := fetchAll[achievement](ctx, c, fmt.Sprintf("/games/%d/achievements", gameID), "achievements")
	if err != nil {
		return nil, err
	}

	achievements := make([]models.Achievement, 0, len(raw))
	for _, a := range raw {
		achievements = append(achievements, models.Achievement{
			RawgID:      a.ID,
			Name:        a.Name,
			Description: a.Description,
			Image:       a.Image,
			Percent:     a.Percent,
			GameRawgID:  gameID,
		})
	}
	return achievements, nil
}

// GetScreenshots fetches every screenshot of a game.
func (c *Client) GetScreenshots(ctx context.Context, gameID int) ([]models.Screenshot, error) {
	raw, err := fetchAll[screenshot](ctx, c, fmt.Sprintf("/games/%d/screenshots", gameID), "screenshots")
	if err != nil {
		return nil, err
	}

	screenshots := make([]models.Screenshot, 0, len(raw))
	for _, s := range raw {
		screenshots = append(screenshots, models.Screenshot{
			RawgID:     s.ID,
			Image:      s.Image,
			Width:      s.Width,
			Height:     s.Height,
			IsDeleted:  s.IsDeleted,
			GameRawgID: gameID,
		})
	}
	return screenshots, nil
}

// GetCreators fetches the development team of a game. Positions are
// reduced to their names and image becomes image_background.
func (c *Client) GetCreators(ctx context.Context, gameID int) ([]Creator, error) {
	raw, err := fetchAll[creator](ctx, c, fmt.Sprintf("/games/%d/development-team", gameID), "creators")
	if err != nil {
		return nil, err
	}

	creators := make([]Creator, 0, len(raw))
	for _, cr := range raw {
		positions := make([]string, 0, len(cr.Positions))
		for _, p := range cr.Positions {
			positions = append(positions, p.Name)
		}
		creators = append(creators, Creator{
			RawgID:          cr.ID,
			Name:            cr.Name,
			Slug:            cr.Slug,
			GamesCount:      cr.GamesCount,
			ImageBackground: cr.Image,
			Positions:       positions,
			GameRawgID:      gameID,
		})
	}
	return creators, nil
}
