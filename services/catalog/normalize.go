package catalog

import (
	"strings"

	"coolstream/models"
)

type tmdbListItem struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Name          string   `json:"name"`
	Overview      string   `json:"overview"`
	PosterPath    string   `json:"poster_path"`
	BackdropPath  string   `json:"backdrop_path"`
	ReleaseDate   string   `json:"release_date"`
	FirstAirDate  string   `json:"first_air_date"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
	GenreIDs      []int    `json:"genre_ids"`
	OriginCountry []string `json:"origin_country"`
}

type tmdbPage struct {
	Page         int            `json:"page"`
	Results      []tmdbListItem `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type tmdbCredits struct {
	Cast []struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Character   string `json:"character"`
		ProfilePath string `json:"profile_path"`
	} `json:"cast"`
	Crew []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Job  string `json:"job"`
	} `json:"crew"`
}

type tmdbVideos struct {
	Results []struct {
		ID   string `json:"id"`
		Key  string `json:"key"`
		Name string `json:"name"`
		Site string `json:"site"`
		Type string `json:"type"`
	} `json:"results"`
}

type tmdbDetails struct {
	tmdbListItem
	Runtime             int            `json:"runtime"`
	Genres              []models.Genre `json:"genres"`
	ProductionCompanies []struct {
		ID            int    `json:"id"`
		Name          string `json:"name"`
		LogoPath      string `json:"logo_path"`
		OriginCountry string `json:"origin_country"`
	} `json:"production_companies"`
	Budget           int64       `json:"budget"`
	Revenue          int64       `json:"revenue"`
	Tagline          string      `json:"tagline"`
	Status           string      `json:"status"`
	NumberOfSeasons  int         `json:"number_of_seasons"`
	NumberOfEpisodes int         `json:"number_of_episodes"`
	Credits          tmdbCredits `json:"credits"`
	Videos           tmdbVideos  `json:"videos"`
	Similar          tmdbPage    `json:"similar"`
}

const (
	maxCast    = 10
	maxSimilar = 6
)

var crewJobs = map[string]bool{"Director": true, "Producer": true, "Writer": true}

// normalizer rewrites TMDB payloads into the public content shapes.
type normalizer struct {
	imageBase string
	hosts     StreamingHosts
}

func (n normalizer) image(size, path string) *string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := n.imageBase + "/" + size + path
	return &u
}

func (n normalizer) movie(item tmdbListItem) models.Movie {
	return models.Movie{
		ID:            item.ID,
		Title:         item.Title,
		Overview:      item.Overview,
		PosterURL:     n.image(tmdbPosterSize, item.PosterPath),
		BackdropURL:   n.image(tmdbBackdropSize, item.BackdropPath),
		ReleaseDate:   item.ReleaseDate,
		VoteAverage:   item.VoteAverage,
		VoteCount:     item.VoteCount,
		GenreIDs:      item.GenreIDs,
		StreamingURLs: n.hosts.URLs(models.ContentMovie, item.ID),
	}
}

func (n normalizer) tvShow(item tmdbListItem) models.TVShow {
	origin := item.OriginCountry
	if origin == nil {
		origin = []string{}
	}
	return models.TVShow{
		ID:            item.ID,
		Name:          item.Name,
		Overview:      item.Overview,
		PosterURL:     n.image(tmdbPosterSize, item.PosterPath),
		BackdropURL:   n.image(tmdbBackdropSize, item.BackdropPath),
		FirstAirDate:  item.FirstAirDate,
		VoteAverage:   item.VoteAverage,
		VoteCount:     item.VoteCount,
		GenreIDs:      item.GenreIDs,
		OriginCountry: origin,
		StreamingURLs: n.hosts.URLs(models.ContentTV, item.ID),
	}
}

func normalizePage[T any](page tmdbPage, convert func(tmdbListItem) T) models.Page[T] {
	results := make([]T, 0, len(page.Results))
	for _, item := range page.Results {
		results = append(results, convert(item))
	}
	return models.Page[T]{
		Results:      results,
		TotalResults: page.TotalResults,
		TotalPages:   page.TotalPages,
		Page:         page.Page,
	}
}

func (n normalizer) movieDetails(d tmdbDetails) models.MovieDetails {
	companies := make([]models.ProductionCompany, 0, len(d.ProductionCompanies))
	for _, c := range d.ProductionCompanies {
		companies = append(companies, models.ProductionCompany{
			ID:            c.ID,
			Name:          c.Name,
			LogoPath:      c.LogoPath,
			OriginCountry: c.OriginCountry,
		})
	}
	return models.MovieDetails{
		Movie:               n.movie(d.tmdbListItem),
		Runtime:             d.Runtime,
		Genres:              nonNil(d.Genres),
		ProductionCompanies: companies,
		Budget:              d.Budget,
		Revenue:             d.Revenue,
		Tagline:             d.Tagline,
		Status:              d.Status,
		Cast:                n.cast(d.Credits),
		Crew:                crew(d.Credits),
		Videos:              trailers(d.Videos),
		Similar:             n.similar(d.Similar, func(item tmdbListItem) string { return item.Title }),
	}
}

func (n normalizer) tvDetails(d tmdbDetails) models.TVShowDetails {
	return models.TVShowDetails{
		TVShow:           n.tvShow(d.tmdbListItem),
		Genres:           nonNil(d.Genres),
		NumberOfSeasons:  d.NumberOfSeasons,
		NumberOfEpisodes: d.NumberOfEpisodes,
		Tagline:          d.Tagline,
		Status:           d.Status,
		Cast:             n.cast(d.Credits),
		Crew:             crew(d.Credits),
		Videos:           trailers(d.Videos),
		Similar:          n.similar(d.Similar, func(item tmdbListItem) string { return item.Name }),
	}
}

func (n normalizer) cast(credits tmdbCredits) []models.CastMember {
	members := credits.Cast
	if len(members) > maxCast {
		members = members[:maxCast]
	}
	out := make([]models.CastMember, 0, len(members))
	for _, m := range members {
		out = append(out, models.CastMember{
			ID:          m.ID,
			Name:        m.Name,
			Character:   m.Character,
			ProfilePath: n.image(tmdbProfileSize, m.ProfilePath),
		})
	}
	return out
}

func crew(credits tmdbCredits) []models.CrewMember {
	out := make([]models.CrewMember, 0)
	for _, m := range credits.Crew {
		if crewJobs[m.Job] {
			out = append(out, models.CrewMember{ID: m.ID, Name: m.Name, Job: m.Job})
		}
	}
	return out
}

func trailers(videos tmdbVideos) []models.Video {
	out := make([]models.Video, 0)
	for _, v := range videos.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			out = append(out, models.Video{ID: v.ID, Key: v.Key, Name: v.Name, Site: v.Site, Type: v.Type})
		}
	}
	return out
}

func (n normalizer) similar(page tmdbPage, title func(tmdbListItem) string) []models.SimilarTitle {
	items := page.Results
	if len(items) > maxSimilar {
		items = items[:maxSimilar]
	}
	out := make([]models.SimilarTitle, 0, len(items))
	for _, item := range items {
		out = append(out, models.SimilarTitle{
			ID:          item.ID,
			Title:       title(item),
			PosterURL:   n.image(tmdbSimilarSize, item.PosterPath),
			VoteAverage: item.VoteAverage,
		})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
