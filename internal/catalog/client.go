// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/prashant-2204/glassstream/internal/platform/httpx"
	"github.com/prashant-2204/glassstream/pkg/pagination"
)

// Client issues read-only queries against the movie-catalog service.
type Client struct {
	http   *httpx.Client
	logger *slog.Logger
}

/*
New constructs a catalog client.

Parameters:
  - baseURL: Catalog API base URL.
  - bearerToken: Static read access token sent on every request.
  - timeout: Transport deadline per request. No retries are attempted.
  - requestsPerSecond: Outbound rate limit. Zero disables throttling.
  - logger: Structured logger. A nil logger falls back to slog.Default().
*/
func New(baseURL, bearerToken string, timeout time.Duration, requestsPerSecond float64, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	options := []httpx.Option{httpx.WithBearerToken(bearerToken)}
	if requestsPerSecond > 0 {
		options = append(options, httpx.WithLimiter(rate.NewLimiter(rate.Limit(requestsPerSecond), int(requestsPerSecond))))
	}

	return &Client{
		http:   httpx.New("catalog", baseURL, timeout, logger, options...),
		logger: logger,
	}
}

// # Movie Queries

// Trending returns the trending movies for the given window.
func (c *Client) Trending(ctx context.Context, window TimeWindow) (*MoviePage, error) {
	if window != WindowDay && window != WindowWeek {
		window = WindowWeek
	}
	return c.moviePage(ctx, "catalog_trending", "/trending/movie/"+string(window), nil)
}

// Popular returns one page of the popular listing.
func (c *Client) Popular(ctx context.Context, page int) (*MoviePage, error) {
	return c.moviePage(ctx, "catalog_popular", "/movie/popular", pageQuery(page))
}

// TopRated returns one page of the top-rated listing.
func (c *Client) TopRated(ctx context.Context, page int) (*MoviePage, error) {
	return c.moviePage(ctx, "catalog_top_rated", "/movie/top_rated", pageQuery(page))
}

// Upcoming returns one page of the upcoming listing.
func (c *Client) Upcoming(ctx context.Context, page int) (*MoviePage, error) {
	return c.moviePage(ctx, "catalog_upcoming", "/movie/upcoming", pageQuery(page))
}

// Details returns the full detail record with credits and videos appended.
func (c *Client) Details(ctx context.Context, movieID int) (*MovieDetails, error) {
	query := url.Values{}
	query.Set("append_to_response", "videos,credits")

	details := &MovieDetails{}
	path := fmt.Sprintf("/movie/%d", movieID)
	if err := c.http.GetJSON(ctx, "catalog_details", path, query, details); err != nil {
		return nil, err
	}
	return details, nil
}

// Similar returns movies similar to the given one.
func (c *Client) Similar(ctx context.Context, movieID int) (*MoviePage, error) {
	path := fmt.Sprintf("/movie/%d/similar", movieID)
	return c.moviePage(ctx, "catalog_similar", path, nil)
}

// Search returns one page of the text search results for query.
func (c *Client) Search(ctx context.Context, text string, page int) (*MoviePage, error) {
	query := pageQuery(page)
	query.Set("query", text)
	return c.moviePage(ctx, "catalog_search", "/search/movie", query)
}

// Genres returns the movie genre list.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	return c.genreList(ctx, "catalog_genres", "/genre/movie/list")
}

// # TV-Show Queries

// TrendingShows returns the trending TV shows for the given window.
func (c *Client) TrendingShows(ctx context.Context, window TimeWindow) (*ShowPage, error) {
	if window != WindowDay && window != WindowWeek {
		window = WindowWeek
	}

	result := &ShowPage{}
	if err := c.http.GetJSON(ctx, "catalog_trending_shows", "/trending/tv/"+string(window), nil, result); err != nil {
		return nil, err
	}
	result.TotalPages = pagination.ClampTotal(result.TotalPages)
	return result, nil
}

// PopularShows returns one page of the popular TV-show listing.
func (c *Client) PopularShows(ctx context.Context, page int) (*ShowPage, error) {
	result := &ShowPage{}
	if err := c.http.GetJSON(ctx, "catalog_popular_shows", "/tv/popular", pageQuery(page), result); err != nil {
		return nil, err
	}
	result.TotalPages = pagination.ClampTotal(result.TotalPages)
	return result, nil
}

// TVGenres returns the TV genre list.
func (c *Client) TVGenres(ctx context.Context) ([]Genre, error) {
	return c.genreList(ctx, "catalog_tv_genres", "/genre/tv/list")
}

// # Internals

// moviePage fetches one page and clamps the reported total at the boundary,
// so every consumer sees a bounded count.
func (c *Client) moviePage(ctx context.Context, operation, path string, query url.Values) (*MoviePage, error) {
	result := &MoviePage{}
	if err := c.http.GetJSON(ctx, operation, path, query, result); err != nil {
		return nil, err
	}
	result.TotalPages = pagination.ClampTotal(result.TotalPages)
	return result, nil
}

// genreList fetches and unwraps a {"genres":[...]} envelope.
func (c *Client) genreList(ctx context.Context, operation, path string) ([]Genre, error) {
	envelope := struct {
		Genres []Genre `json:"genres"`
	}{}
	if err := c.http.GetJSON(ctx, operation, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Genres, nil
}

// pageQuery builds the query values for a 1-based page request. Pages below
// one are normalized to the first page.
func pageQuery(page int) url.Values {
	if page < pagination.FirstPage {
		page = pagination.FirstPage
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return query
}
