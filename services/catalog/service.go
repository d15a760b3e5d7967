// Package catalog proxies the TMDB API and reshapes its responses into the public content model.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coolstream/models"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/text/language"
)

// MaxPopularPage is the highest page TMDB serves for list endpoints.
const MaxPopularPage = 500

// Options configures a Service. Zero values fall back to the public TMDB endpoints.
type Options struct {
	APIKey       string
	Language     string
	BaseURL      string
	ImageBaseURL string
	Timeout      time.Duration
	Streaming    StreamingHosts
	HTTPClient   *http.Client
}

// Service serves normalized catalog data.
type Service struct {
	client *tmdbClient
	norm   normalizer
}

// NewService builds a catalog service from opts.
func NewService(opts Options) *Service {
	imageBase := strings.TrimRight(strings.TrimSpace(opts.ImageBaseURL), "/")
	if imageBase == "" {
		imageBase = tmdbImageBaseURL
	}
	return &Service{
		client: newTMDBClient(opts.APIKey, CanonicalLanguage(opts.Language), opts.BaseURL, opts.HTTPClient, opts.Timeout),
		norm: normalizer{
			imageBase: imageBase,
			hosts:     opts.Streaming.withDefaults(),
		},
	}
}

// CanonicalLanguage normalises a BCP 47 tag such as "EN_us" to "en-US". Blank or
// unparseable input yields "en-US".
func CanonicalLanguage(tag string) string {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return "en-US"
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return "en-US"
	}
	return parsed.String()
}

// StreamingURLs returns the player URLs for a title using the configured hosts.
func (s *Service) StreamingURLs(kind models.ContentType, id int) models.StreamingURLs {
	return s.norm.hosts.URLs(kind, id)
}

// SearchMovies searches movies by title.
func (s *Service) SearchMovies(ctx context.Context, query string) (models.Page[models.Movie], error) {
	page, err := s.search(ctx, models.ContentMovie, query)
	if err != nil {
		return models.Page[models.Movie]{}, err
	}
	return normalizePage(page, s.norm.movie), nil
}

// SearchTV searches TV shows by name.
func (s *Service) SearchTV(ctx context.Context, query string) (models.Page[models.TVShow], error) {
	page, err := s.search(ctx, models.ContentTV, query)
	if err != nil {
		return models.Page[models.TVShow]{}, err
	}
	return normalizePage(page, s.norm.tvShow), nil
}

func (s *Service) search(ctx context.Context, kind models.ContentType, query string) (tmdbPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return tmdbPage{}, models.NewValidationError("q", "Query parameter is required")
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	var page tmdbPage
	err := s.client.get(ctx, fmt.Sprintf("/search/%s", kind), params, &page)
	return page, err
}

// TrendingMovies lists trending movies for window. A blank window means day.
func (s *Service) TrendingMovies(ctx context.Context, window models.TimeWindow) (models.Page[models.Movie], error) {
	page, err := s.trending(ctx, models.ContentMovie, window)
	if err != nil {
		return models.Page[models.Movie]{}, err
	}
	return normalizePage(page, s.norm.movie), nil
}

// TrendingTV lists trending TV shows for window. A blank window means day.
func (s *Service) TrendingTV(ctx context.Context, window models.TimeWindow) (models.Page[models.TVShow], error) {
	page, err := s.trending(ctx, models.ContentTV, window)
	if err != nil {
		return models.Page[models.TVShow]{}, err
	}
	return normalizePage(page, s.norm.tvShow), nil
}

func (s *Service) trending(ctx context.Context, kind models.ContentType, window models.TimeWindow) (tmdbPage, error) {
	window = models.TimeWindow(strings.ToLower(strings.TrimSpace(string(window))))
	if window == "" {
		window = models.TimeWindowDay
	}
	if !window.Valid() {
		return tmdbPage{}, models.NewValidationError("time_window", "must be day or week")
	}
	var page tmdbPage
	err := s.client.get(ctx, fmt.Sprintf("/trending/%s/%s", kind, window), nil, &page)
	return page, err
}

// PopularMovies lists popular movies. Page 0 means the first page.
func (s *Service) PopularMovies(ctx context.Context, page int) (models.Page[models.Movie], error) {
	raw, err := s.popular(ctx, models.ContentMovie, page)
	if err != nil {
		return models.Page[models.Movie]{}, err
	}
	return normalizePage(raw, s.norm.movie), nil
}

// PopularTV lists popular TV shows. Page 0 means the first page.
func (s *Service) PopularTV(ctx context.Context, page int) (models.Page[models.TVShow], error) {
	raw, err := s.popular(ctx, models.ContentTV, page)
	if err != nil {
		return models.Page[models.TVShow]{}, err
	}
	return normalizePage(raw, s.norm.tvShow), nil
}

func (s *Service) popular(ctx context.Context, kind models.ContentType, page int) (tmdbPage, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 || page > MaxPopularPage {
		return tmdbPage{}, models.NewValidationError("page", fmt.Sprintf("must be between 1 and %d", MaxPopularPage))
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	var raw tmdbPage
	err := s.client.get(ctx, fmt.Sprintf("/%s/popular", kind), params, &raw)
	return raw, err
}

// MovieDetails fetches one movie with credits, trailers and similar titles.
func (s *Service) MovieDetails(ctx context.Context, id int) (models.MovieDetails, error) {
	raw, err := s.details(ctx, models.ContentMovie, id)
	if err != nil {
		return models.MovieDetails{}, err
	}
	return s.norm.movieDetails(raw), nil
}

// TVDetails fetches one show with credits, trailers and similar titles.
func (s *Service) TVDetails(ctx context.Context, id int) (models.TVShowDetails, error) {
	raw, err := s.details(ctx, models.ContentTV, id)
	if err != nil {
		return models.TVShowDetails{}, err
	}
	return s.norm.tvDetails(raw), nil
}

func (s *Service) details(ctx context.Context, kind models.ContentType, id int) (tmdbDetails, error) {
	if id <= 0 {
		return tmdbDetails{}, models.NewValidationError("id", "must be a positive integer")
	}
	params := url.Values{}
	params.Set("append_to_response", "credits,videos,similar")
	var raw tmdbDetails
	if err := s.client.get(ctx, fmt.Sprintf("/%s/%d", kind, id), params, &raw); err != nil {
		return tmdbDetails{}, err
	}
	if raw.ID == 0 {
		raw.ID = id
	}
	return raw, nil
}

// Home fetches the daily trending movies and shows concurrently. Either failure fails the call.
func (s *Service) Home(ctx context.Context) (models.Home, error) {
	var home models.Home
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		movies, err := s.TrendingMovies(ctx, models.TimeWindowDay)
		if err != nil {
			return err
		}
		home.TrendingMovies = movies
		return nil
	})
	p.Go(func(ctx context.Context) error {
		shows, err := s.TrendingTV(ctx, models.TimeWindowDay)
		if err != nil {
			return err
		}
		home.TrendingTV = shows
		return nil
	})
	if err := p.Wait(); err != nil {
		return models.Home{}, err
	}
	return home, nil
}

// Genres returns the fixed genre table for kind, sorted by id.
func (s *Service) Genres(kind models.ContentType) ([]models.Genre, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("type", models.ErrInvalidContentType.Error())
	}
	return models.GenreList(kind), nil
}
