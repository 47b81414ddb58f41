// internal/profile/models.go

package profile

import (
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

// Profile is a stored user profile with dating preferences.
type Profile struct {
	UserID           string         `db:"user_id" json:"user_id"`
	Name             string         `db:"name" json:"name"`
	Age              int            `db:"age" json:"age"`
	Location         string         `db:"location" json:"location"`
	Bio              string         `db:"bio" json:"bio"`
	Photos           pq.StringArray `db:"photos" json:"photos"`
	Hobbies          pq.StringArray `db:"hobbies" json:"hobbies"`
	MusicGenres      pq.StringArray `db:"music_genres" json:"music_genres"`
	PersonalityTypes pq.StringArray `db:"personality_types" json:"personality_types"`
	BehaviorSignals  pq.StringArray `db:"behavior_signals" json:"behavior_signals"`
	Lifestyle        pq.StringArray `db:"lifestyle" json:"lifestyle"`
	DealBreakers     pq.StringArray `db:"deal_breakers" json:"deal_breakers"`
	MustHaves        pq.StringArray `db:"must_haves" json:"must_haves"`
	AgeRangeMin      int            `db:"age_range_min" json:"age_range_min"`
	AgeRangeMax      int            `db:"age_range_max" json:"age_range_max"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// MatchingProfile converts the stored row into the form the matching
// engine scores against. Labels that don't parse into known enums are
// skipped; the scorers treat the missing data as neutral.
func (p *Profile) MatchingProfile() *matching.UserProfile {
	prefs := matching.PreferenceProfile{
		Hobbies:      p.Hobbies,
		Lifestyle:    p.Lifestyle,
		DealBreakers: p.DealBreakers,
		MustHaves:    p.MustHaves,
	}
	if p.AgeRangeMin > 0 || p.AgeRangeMax > 0 {
		prefs.AgeRange = &matching.AgeRange{Min: p.AgeRangeMin, Max: p.AgeRangeMax}
	}
	for _, genre := range p.MusicGenres {
		if g, ok := matching.ParseMusicGenre(genre); ok {
			prefs.MusicGenres = append(prefs.MusicGenres, g)
		}
	}
	for _, label := range p.PersonalityTypes {
		if t, ok := matching.ParsePersonalityType(label); ok {
			prefs.PersonalityTypes = append(prefs.PersonalityTypes, t)
		}
	}
	for _, label := range p.BehaviorSignals {
		if s, ok := matching.ParseBehaviorSignal(label); ok {
			prefs.BehaviorSignals = append(prefs.BehaviorSignals, s)
		}
	}

	return &matching.UserProfile{
		UserID:      p.UserID,
		Name:        p.Name,
		Age:         p.Age,
		Location:    p.Location,
		Bio:         p.Bio,
		Photos:      p.Photos,
		Preferences: prefs,
	}
}

// Candidate converts the stored row into a scoring candidate.
func (p *Profile) Candidate() matching.CandidateProfile {
	return matching.CandidateProfile{
		UserID:           p.UserID,
		Name:             p.Name,
		Age:              p.Age,
		Location:         p.Location,
		Bio:              p.Bio,
		Photos:           p.Photos,
		MusicGenres:      p.MusicGenres,
		Hobbies:          p.Hobbies,
		PersonalityTypes: p.PersonalityTypes,
		BehaviorSignals:  p.BehaviorSignals,
		Lifestyle:        p.Lifestyle,
	}
}
