// Package client is a typed HTTP client for the coolstream catalog endpoints.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coolstream/models"
)

// FetchError reports a failed catalog call. StatusCode is zero when no response arrived.
type FetchError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	b.WriteString("failed to ")
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client calls the catalog proxy of a coolstream server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:7777".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SearchMovies(ctx context.Context, query string) (models.Page[models.Movie], error) {
	var page models.Page[models.Movie]
	err := c.get(ctx, "search movies", "/api/movies/search", url.Values{"q": {query}}, &page)
	return page, err
}

func (c *Client) SearchTVShows(ctx context.Context, query string) (models.Page[models.TVShow], error) {
	var page models.Page[models.TVShow]
	err := c.get(ctx, "search TV shows", "/api/tv/search", url.Values{"q": {query}}, &page)
	return page, err
}

// TrendingMovies lists trending movies. An empty window means day.
func (c *Client) TrendingMovies(ctx context.Context, window models.TimeWindow) (models.Page[models.Movie], error) {
	var page models.Page[models.Movie]
	err := c.get(ctx, "get trending movies", "/api/movies/trending", windowParams(window), &page)
	return page, err
}

// TrendingTVShows lists trending shows. An empty window means day.
func (c *Client) TrendingTVShows(ctx context.Context, window models.TimeWindow) (models.Page[models.TVShow], error) {
	var page models.Page[models.TVShow]
	err := c.get(ctx, "get trending TV shows", "/api/tv/trending", windowParams(window), &page)
	return page, err
}

// PopularMovies lists popular movies. A page below 1 means the first page.
func (c *Client) PopularMovies(ctx context.Context, page int) (models.Page[models.Movie], error) {
	var out models.Page[models.Movie]
	err := c.get(ctx, "get popular movies", "/api/movies/popular", pageParams(page), &out)
	return out, err
}

// PopularTVShows lists popular shows. A page below 1 means the first page.
func (c *Client) PopularTVShows(ctx context.Context, page int) (models.Page[models.TVShow], error) {
	var out models.Page[models.TVShow]
	err := c.get(ctx, "get popular TV shows", "/api/tv/popular", pageParams(page), &out)
	return out, err
}

func (c *Client) MovieDetails(ctx context.Context, id int) (models.MovieDetails, error) {
	var details models.MovieDetails
	err := c.get(ctx, "get movie details", "/api/movies/"+strconv.Itoa(id), nil, &details)
	return details, err
}

func (c *Client) TVShowDetails(ctx context.Context, id int) (models.TVShowDetails, error) {
	var details models.TVShowDetails
	err := c.get(ctx, "get TV show details", "/api/tv/"+strconv.Itoa(id), nil, &details)
	return details, err
}

// Home fetches the dashboard rows in one call.
func (c *Client) Home(ctx context.Context) (models.Home, error) {
	var home models.Home
	err := c.get(ctx, "get home", "/api/home", nil, &home)
	return home, err
}

func (c *Client) Genres(ctx context.Context, kind models.ContentType) ([]models.Genre, error) {
	var genres []models.Genre
	err := c.get(ctx, "get genres", "/api/genres/"+url.PathEscape(string(kind)), nil, &genres)
	return genres, err
}

func windowParams(window models.TimeWindow) url.Values {
	if window == "" {
		window = models.TimeWindowDay
	}
	return url.Values{"time_window": {string(window)}}
}

func pageParams(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": {strconv.Itoa(page)}}
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, v any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage extracts the {"error": "..."} message of a failed response, if any.
func errorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
