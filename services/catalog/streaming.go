package catalog

import (
	"strconv"
	"strings"

	"coolstream/models"
)

// Default embed hosts.
const (
	DefaultVidsrcBaseURL      = "https://vidsrc.wtf"
	DefaultVikingEmbedBaseURL = "https://vembed.stream"
	DefaultFilmkuBaseURL      = "https://filmku.stream"
)

// StreamingHosts holds the base URL of each embeddable player.
type StreamingHosts struct {
	Vidsrc      string
	VikingEmbed string
	Filmku      string
}

// DefaultStreamingHosts returns the public player hosts.
func DefaultStreamingHosts() StreamingHosts {
	return StreamingHosts{
		Vidsrc:      DefaultVidsrcBaseURL,
		VikingEmbed: DefaultVikingEmbedBaseURL,
		Filmku:      DefaultFilmkuBaseURL,
	}
}

func (h StreamingHosts) withDefaults() StreamingHosts {
	def := DefaultStreamingHosts()
	if strings.TrimSpace(h.Vidsrc) == "" {
		h.Vidsrc = def.Vidsrc
	}
	if strings.TrimSpace(h.VikingEmbed) == "" {
		h.VikingEmbed = def.VikingEmbed
	}
	if strings.TrimSpace(h.Filmku) == "" {
		h.Filmku = def.Filmku
	}
	h.Vidsrc = strings.TrimRight(h.Vidsrc, "/")
	h.VikingEmbed = strings.TrimRight(h.VikingEmbed, "/")
	h.Filmku = strings.TrimRight(h.Filmku, "/")
	return h
}

// URLs builds the player URLs for a title. Only vidsrc names the kind for movies;
// the other two hosts add a tv/ segment for shows and nothing for movies.
func (h StreamingHosts) URLs(kind models.ContentType, id int) models.StreamingURLs {
	h = h.withDefaults()
	sid := strconv.Itoa(id)
	if kind == models.ContentTV {
		return models.StreamingURLs{
			Vidsrc:      h.Vidsrc + "/embed/tv/" + sid,
			VikingEmbed: h.VikingEmbed + "/play/tv/" + sid,
			Filmku:      h.Filmku + "/embed/tv/" + sid,
		}
	}
	return models.StreamingURLs{
		Vidsrc:      h.Vidsrc + "/embed/movie/" + sid,
		VikingEmbed: h.VikingEmbed + "/play/" + sid,
		Filmku:      h.Filmku + "/embed/" + sid,
	}
}

// StreamingURLs builds the player URLs against the public hosts.
func StreamingURLs(kind models.ContentType, id int) models.StreamingURLs {
	return DefaultStreamingHosts().URLs(kind, id)
}
