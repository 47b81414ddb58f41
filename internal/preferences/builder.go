package preferences

import (
	"errors"

	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
)

var (
	ErrNoPreferences = errors.New("preferences need at least hobbies or music genres")
	ErrInvalidAges   = errors.New("age range must satisfy 18 <= min <= max <= 100")
	ErrStyleConflict = errors.New("behavior signals cannot be both direct and subtle")
)

// RawInput is the untyped preference payload as it arrives from the outside.
type RawInput struct {
	PersonalityTypes []string                  `json:"personality_types"`
	MusicGenres      []string                  `json:"music_genres"`
	Hobbies          []string                  `json:"hobbies"`
	BehaviorSignals  []string                  `json:"behavior_signals"`
	Lifestyle        []string                  `json:"lifestyle_preferences"`
	AgeRange         *matching.AgeRange        `json:"age_range,omitempty"`
	DealBreakers     []string                  `json:"deal_breakers"`
	MustHaves        []string                  `json:"must_haves"`
	Web3             *matching.Web3Preferences `json:"web3_preferences,omitempty"`
}

// BuildResult pairs the constructed profile with every label that did not
// parse, so callers can log or reject unknown input instead of losing it.
type BuildResult struct {
	Profile  matching.PreferenceProfile
	Unparsed []string
}

// Build converts raw string labels into a typed PreferenceProfile. Unknown
// enum labels are collected, not dropped silently; free-form dimensions
// (hobbies, lifestyle) are normalized and kept as-is.
func Build(input RawInput) BuildResult {
	var result BuildResult

	for _, raw := range input.PersonalityTypes {
		if p, ok := matching.ParsePersonalityType(raw); ok {
			result.Profile.PersonalityTypes = append(result.Profile.PersonalityTypes, p)
		} else {
			result.Unparsed = append(result.Unparsed, raw)
		}
	}

	for _, raw := range input.MusicGenres {
		if g, ok := matching.ParseMusicGenre(raw); ok {
			result.Profile.MusicGenres = append(result.Profile.MusicGenres, g)
		} else {
			result.Unparsed = append(result.Unparsed, raw)
		}
	}

	for _, raw := range input.BehaviorSignals {
		if b, ok := matching.ParseBehaviorSignal(raw); ok {
			result.Profile.BehaviorSignals = append(result.Profile.BehaviorSignals, b)
		} else {
			result.Unparsed = append(result.Unparsed, raw)
		}
	}

	result.Profile.Hobbies = normalizeAll(input.Hobbies)
	result.Profile.Lifestyle = normalizeAll(input.Lifestyle)
	result.Profile.DealBreakers = normalizeAll(input.DealBreakers)
	result.Profile.MustHaves = normalizeAll(input.MustHaves)
	result.Profile.AgeRange = input.AgeRange
	result.Profile.Web3 = input.Web3

	return result
}

// Validate rejects profiles too sparse or contradictory to score sensibly.
func Validate(profile *matching.PreferenceProfile) error {
	if len(profile.Hobbies) == 0 && len(profile.MusicGenres) == 0 {
		return ErrNoPreferences
	}

	if profile.AgeRange != nil {
		if profile.AgeRange.Min > profile.AgeRange.Max || profile.AgeRange.Min < 18 || profile.AgeRange.Max > 100 {
			return ErrInvalidAges
		}
	}

	var direct, subtle bool
	for _, signal := range profile.BehaviorSignals {
		switch signal {
		case matching.BehaviorDirect:
			direct = true
		case matching.BehaviorSubtle:
			subtle = true
		}
	}
	if direct && subtle {
		return ErrStyleConflict
	}

	return nil
}

// Summary is a display-oriented view of a preference profile.
type Summary struct {
	PersonalityTypes []string           `json:"personality_types"`
	MusicGenres      []string           `json:"music_genres"`
	Hobbies          []string           `json:"hobbies"`
	BehaviorSignals  []string           `json:"behavior_signals"`
	Lifestyle        []string           `json:"lifestyle_preferences"`
	AgeRange         *matching.AgeRange `json:"age_range,omitempty"`
	DealBreakers     []string           `json:"deal_breakers"`
	MustHaves        []string           `json:"must_haves"`
	TotalPreferences int                `json:"total_preferences"`
}

// Summarize flattens a profile back into plain strings for display.
func Summarize(profile *matching.PreferenceProfile) Summary {
	s := Summary{
		Hobbies:      profile.Hobbies,
		Lifestyle:    profile.Lifestyle,
		AgeRange:     profile.AgeRange,
		DealBreakers: profile.DealBreakers,
		MustHaves:    profile.MustHaves,
	}
	for _, p := range profile.PersonalityTypes {
		s.PersonalityTypes = append(s.PersonalityTypes, string(p))
	}
	for _, g := range profile.MusicGenres {
		s.MusicGenres = append(s.MusicGenres, string(g))
	}
	for _, b := range profile.BehaviorSignals {
		s.BehaviorSignals = append(s.BehaviorSignals, string(b))
	}
	s.TotalPreferences = len(profile.Hobbies) + len(profile.MusicGenres) + len(profile.PersonalityTypes)
	return s
}

func normalizeAll(labels []string) []string {
	var out []string
	for _, label := range labels {
		if norm := matching.NormalizeLabel(label); norm != "" {
			out = append(out, norm)
		}
	}
	return out
}
