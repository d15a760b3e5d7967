package models

// StreamingProvider names one of the embeddable players.
type StreamingProvider string

const (
	ProviderVidsrc      StreamingProvider = "vidsrc"
	ProviderVikingEmbed StreamingProvider = "vikingEmbed"
	ProviderFilmku      StreamingProvider = "filmku"
)

// Valid reports whether p is a known provider.
func (p StreamingProvider) Valid() bool {
	switch p {
	case ProviderVidsrc, ProviderVikingEmbed, ProviderFilmku:
		return true
	}
	return false
}

// Quality is the preferred playback quality.
type Quality string

const (
	QualityAuto  Quality = "auto"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"
)

// Valid reports whether q is a known quality.
func (q Quality) Valid() bool {
	switch q {
	case QualityAuto, Quality720p, Quality1080p:
		return true
	}
	return false
}

// Theme is the UI colour scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// UserPreferences contains the per-user playback and display settings.
// A value returned by the preference store is always fully populated.
type UserPreferences struct {
	PreferredProvider StreamingProvider `json:"preferredProvider"`
	Autoplay          bool              `json:"autoplay"`
	Volume            float64           `json:"volume"`
	Quality           Quality           `json:"quality"`
	Subtitles         bool              `json:"subtitles"`
	Theme             Theme             `json:"theme"`
}

// DefaultUserPreferences returns the settings for a user that never saved any.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		PreferredProvider: ProviderVidsrc,
		Autoplay:          true,
		Volume:            0.8,
		Quality:           QualityAuto,
		Subtitles:         false,
		Theme:             ThemeDark,
	}
}

// PreferencesPatch is a partial update. Nil fields leave the current value alone.
// Stored records are decoded into this shape too, so fields missing on disk
// fall back to defaults.
type PreferencesPatch struct {
	PreferredProvider *StreamingProvider `json:"preferredProvider,omitempty"`
	Autoplay          *bool              `json:"autoplay,omitempty"`
	Volume            *float64           `json:"volume,omitempty"`
	Quality           *Quality           `json:"quality,omitempty"`
	Subtitles         *bool              `json:"subtitles,omitempty"`
	Theme             *Theme             `json:"theme,omitempty"`
}

// IsEmpty reports whether the patch sets no field.
func (p PreferencesPatch) IsEmpty() bool {
	return p.PreferredProvider == nil && p.Autoplay == nil && p.Volume == nil &&
		p.Quality == nil && p.Subtitles == nil && p.Theme == nil
}

// Validate returns a ValidationError for the first out-of-range field.
func (p PreferencesPatch) Validate() error {
	if p.PreferredProvider != nil && !p.PreferredProvider.Valid() {
		return NewValidationError("preferredProvider", "must be one of vidsrc, vikingEmbed, filmku")
	}
	if p.Volume != nil && !validVolume(*p.Volume) {
		return NewValidationError("volume", "must be between 0 and 1")
	}
	if p.Quality != nil && !p.Quality.Valid() {
		return NewValidationError("quality", "must be one of auto, 720p, 1080p")
	}
	if p.Theme != nil && !p.Theme.Valid() {
		return NewValidationError("theme", "must be dark or light")
	}
	return nil
}

// Sanitized drops every field that would fail Validate.
func (p PreferencesPatch) Sanitized() PreferencesPatch {
	out := p
	if out.PreferredProvider != nil && !out.PreferredProvider.Valid() {
		out.PreferredProvider = nil
	}
	if out.Volume != nil && !validVolume(*out.Volume) {
		out.Volume = nil
	}
	if out.Quality != nil && !out.Quality.Valid() {
		out.Quality = nil
	}
	if out.Theme != nil && !out.Theme.Valid() {
		out.Theme = nil
	}
	return out
}

// MergePreferences applies patch over base. Set fields in the patch win.
func MergePreferences(base UserPreferences, patch PreferencesPatch) UserPreferences {
	merged := base
	if patch.PreferredProvider != nil {
		merged.PreferredProvider = *patch.PreferredProvider
	}
	if patch.Autoplay != nil {
		merged.Autoplay = *patch.Autoplay
	}
	if patch.Volume != nil {
		merged.Volume = *patch.Volume
	}
	if patch.Quality != nil {
		merged.Quality = *patch.Quality
	}
	if patch.Subtitles != nil {
		merged.Subtitles = *patch.Subtitles
	}
	if patch.Theme != nil {
		merged.Theme = *patch.Theme
	}
	return merged
}

func validVolume(v float64) bool {
	return v >= 0 && v <= 1
}
