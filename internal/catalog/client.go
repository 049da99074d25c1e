// Package catalog is a read-only client for the RAWG game catalog API.
// It normalizes the heterogeneous upstream responses into GameRecord
// values. There is no caching and no retry: every call hits the network
// and non-success statuses surface as typed errors.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"videogamehub/backend/internal/config"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/errgroup"
)

const (
	// trendingBatchSize is how many recently released titles are fetched
	// before the per-title trailer fan-out.
	trendingBatchSize = 50

	// trailerConcurrency caps the parallel trailer lookups in Trending.
	trailerConcurrency = 8

	requestTimeout = 10 * time.Second
)

type Client struct {
	apiKey  string
	baseURL string
	http    *fasthttp.Client
	logger  zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:  cfg.RawgAPIKey,
		baseURL: cfg.RawgBaseURL,
		http: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         requestTimeout,
			WriteTimeout:        requestTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Search queries games by name. Only summary fields are populated.
func (c *Client) Search(ctx context.Context, term string) ([]GameRecord, error) {
	u := fmt.Sprintf("%s/games?key=%s&search=%s", c.baseURL, c.apiKey, url.QueryEscape(term))
	resp, err := doGet[gameListResponse](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return summaries(resp.Results), nil
}

// TopRated returns up to limit games ordered by upstream rating,
// descending. Only summary fields are populated.
func (c *Client) TopRated(ctx context.Context, limit int) ([]GameRecord, error) {
	u := fmt.Sprintf("%s/games?key=%s&ordering=-rating&page_size=%d", c.baseURL, c.apiKey, limit)
	resp, err := doGet[gameListResponse](ctx, c, u)
	if err != nil {
		return nil, err
	}
	records := summaries(resp.Results)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Trending fetches a batch of recently released titles, looks up each
// title's trailer concurrently, keeps only records accepted by keep, and
// returns at most max of them in batch order. A failed trailer lookup
// drops that title without failing the batch. This is an N+1 fan-out:
// one batch call plus one movies call per title.
func (c *Client) Trending(ctx context.Context, max int, keep func(GameRecord) bool) ([]GameRecord, error) {
	u := fmt.Sprintf("%s/games?key=%s&ordering=-released&page_size=%d", c.baseURL, c.apiKey, trendingBatchSize)
	resp, err := doGet[gameListResponse](ctx, c, u)
	if err != nil {
		return nil, err
	}

	records := make([]GameRecord, len(resp.Results))
	dropped := make([]bool, len(resp.Results))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(trailerConcurrency)
	for i, summary := range resp.Results {
		g.Go(func() error {
			trailer, err := c.trailerFor(gctx, summary.ID)
			if err != nil {
				c.logger.Debug().Err(err).Int64("game_id", summary.ID).Msg("trailer lookup failed, dropping title")
				dropped[i] = true
				return nil
			}
			rec := summary.record()
			rec.Trailer = trailer
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Batch order is preserved; fewer than max survivors are returned
	// as-is, never padded.
	out := make([]GameRecord, 0, max)
	for i, rec := range records {
		if dropped[i] || !keep(rec) {
			continue
		}
		out = append(out, rec)
		if len(out) == max {
			break
		}
	}
	return out, nil
}

// TrendingWithTrailer is Trending filtered to trailer-bearing titles, the
// shape the featured carousel consumes.
func (c *Client) TrendingWithTrailer(ctx context.Context, max int) ([]GameRecord, error) {
	return c.Trending(ctx, max, func(g GameRecord) bool { return g.Trailer != "" })
}

// Details returns the full record for one game: metadata and trailer are
// fetched concurrently and joined. A missing game is a NotFoundError; a
// failed trailer lookup only leaves the trailer absent.
func (c *Client) Details(ctx context.Context, id int64) (GameRecord, error) {
	var (
		detail  *gameDetailResponse
		trailer string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u := fmt.Sprintf("%s/games/%d?key=%s", c.baseURL, id, c.apiKey)
		d, err := doGet[gameDetailResponse](gctx, c, u)
		if err != nil {
			var upstream *UpstreamError
			if errors.As(err, &upstream) && upstream.StatusCode == fasthttp.StatusNotFound {
				return &NotFoundError{ID: id}
			}
			return err
		}
		detail = d
		return nil
	})
	g.Go(func() error {
		t, err := c.trailerFor(gctx, id)
		if err != nil {
			c.logger.Debug().Err(err).Int64("game_id", id).Msg("trailer lookup failed")
			return nil
		}
		trailer = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return GameRecord{}, err
	}

	return GameRecord{
		ID:              detail.ID,
		Slug:            detail.Slug,
		Name:            detail.Name,
		BackgroundImage: detail.BackgroundImage,
		Description:     detail.DescriptionRaw,
		Trailer:         trailer,
		Rating:          detail.Rating,
		Playtime:        detail.Playtime,
		Released:        detail.Released,
		RatingsCount:    detail.RatingsCount,
	}, nil
}

func (c *Client) trailerFor(ctx context.Context, id int64) (string, error) {
	u := fmt.Sprintf("%s/games/%d/movies?key=%s", c.baseURL, id, c.apiKey)
	resp, err := doGet[movieListResponse](ctx, c, u)
	if err != nil {
		return "", err
	}
	return resp.preview(), nil
}

func doGet[T any](ctx context.Context, client *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.http.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.http.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decoding catalog response: %w", err)
	}
	return &result, nil
}

func summaries(raw []gameSummary) []GameRecord {
	records := make([]GameRecord, len(raw))
	for i, g := range raw {
		records[i] = g.record()
	}
	return records
}
