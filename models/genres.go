package models

import "sort"

// MovieGenres maps TMDB movie genre ids to display names.
var MovieGenres = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// TVGenres maps TMDB TV genre ids to display names.
var TVGenres = map[int]string{
	10759: "Action & Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	10762: "Kids",
	9648:  "Mystery",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	10768: "War & Politics",
	37:    "Western",
}

// GenresFor returns the genre table for a content type.
func GenresFor(contentType ContentType) map[int]string {
	if contentType == ContentTV {
		return TVGenres
	}
	return MovieGenres
}

// GenreNames resolves ids to names, skipping unknown ids.
func GenreNames(contentType ContentType, ids []int) []string {
	table := GenresFor(contentType)
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := table[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// GenreList returns the genre table for a content type ordered by id.
func GenreList(contentType ContentType) []Genre {
	table := GenresFor(contentType)
	out := make([]Genre, 0, len(table))
	for id, name := range table {
		out = append(out, Genre{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
