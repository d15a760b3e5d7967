package models

// StreamingURLs holds the embed URL for each supported player.
type StreamingURLs struct {
	Vidsrc      string `json:"vidsrc"`
	VikingEmbed string `json:"vikingEmbed"`
	Filmku      string `json:"filmku"`
}

// For returns the URL of provider, falling back to vidsrc for unknown names.
func (s StreamingURLs) For(provider StreamingProvider) string {
	switch provider {
	case ProviderVikingEmbed:
		return s.VikingEmbed
	case ProviderFilmku:
		return s.Filmku
	default:
		return s.Vidsrc
	}
}

// Movie is the normalised movie shape returned by list and search endpoints.
type Movie struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	Overview      string        `json:"overview"`
	PosterURL     *string       `json:"posterUrl"`
	BackdropURL   *string       `json:"backdropUrl"`
	ReleaseDate   string        `json:"releaseDate"`
	VoteAverage   float64       `json:"voteAverage"`
	VoteCount     int           `json:"voteCount"`
	GenreIDs      []int         `json:"genreIds,omitempty"`
	StreamingURLs StreamingURLs `json:"streamingUrls"`
}

// TVShow is the normalised TV shape returned by list and search endpoints.
type TVShow struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Overview      string        `json:"overview"`
	PosterURL     *string       `json:"posterUrl"`
	BackdropURL   *string       `json:"backdropUrl"`
	FirstAirDate  string        `json:"firstAirDate"`
	VoteAverage   float64       `json:"voteAverage"`
	VoteCount     int           `json:"voteCount"`
	GenreIDs      []int         `json:"genreIds,omitempty"`
	OriginCountry []string      `json:"originCountry"`
	StreamingURLs StreamingURLs `json:"streamingUrls"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ProductionCompany struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logoPath,omitempty"`
	OriginCountry string `json:"originCountry,omitempty"`
}

type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profilePath"`
}

type CrewMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Video is a trailer hosted on an external site.
type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// SimilarTitle is the compact summary used for "more like this" rows.
type SimilarTitle struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterURL   *string `json:"posterUrl"`
	VoteAverage float64 `json:"voteAverage"`
}

// MovieDetails is the enriched shape served by the movie detail endpoint.
type MovieDetails struct {
	Movie
	Runtime             int                 `json:"runtime"`
	Genres              []Genre             `json:"genres"`
	ProductionCompanies []ProductionCompany `json:"productionCompanies"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	Tagline             string              `json:"tagline"`
	Status              string              `json:"status"`
	Cast                []CastMember        `json:"cast"`
	Crew                []CrewMember        `json:"crew"`
	Videos              []Video             `json:"videos"`
	Similar             []SimilarTitle      `json:"similar"`
}

// TVShowDetails is the enriched shape served by the TV detail endpoint.
type TVShowDetails struct {
	TVShow
	Genres           []Genre        `json:"genres"`
	NumberOfSeasons  int            `json:"numberOfSeasons"`
	NumberOfEpisodes int            `json:"numberOfEpisodes"`
	Tagline          string         `json:"tagline"`
	Status           string         `json:"status"`
	Cast             []CastMember   `json:"cast"`
	Crew             []CrewMember   `json:"crew"`
	Videos           []Video        `json:"videos"`
	Similar          []SimilarTitle `json:"similar"`
}

// Page is one page of list or search results.
type Page[T any] struct {
	Results      []T `json:"results"`
	TotalResults int `json:"totalResults"`
	TotalPages   int `json:"totalPages"`
	Page         int `json:"page"`
}

// Home bundles the rows shown on the dashboard.
type Home struct {
	TrendingMovies Page[Movie]  `json:"trendingMovies"`
	TrendingTV     Page[TVShow] `json:"trendingTv"`
}

// TimeWindow selects the trending period.
type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

// Valid reports whether w is day or week.
func (w TimeWindow) Valid() bool {
	return w == TimeWindowDay || w == TimeWindowWeek
}
