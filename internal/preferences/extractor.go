package preferences

import (
	"strings"

	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
)

// Keyword-driven extraction of preference signals from free text. These feed
// the scoring dimensions when a user never filled in explicit preferences.

// Entries are ordered slices so extraction output is stable across runs.
var musicKeywords = []struct {
	genre    matching.MusicGenre
	keywords []string
}{
	{matching.GenrePop, []string{"pop music", "pop songs"}},
	{matching.GenreRock, []string{"rock music", "guitar", "concert", "rock"}},
	{matching.GenreHipHop, []string{"hip hop", "hip-hop", "rap", "rapper"}},
	{matching.GenreElectronic, []string{"edm", "electronic", "dance music", "techno", "house"}},
	{matching.GenreJazz, []string{"jazz", "saxophone", "blues"}},
	{matching.GenreClassical, []string{"classical", "orchestra", "piano", "violin"}},
	{matching.GenreCountry, []string{"country music", "nashville"}},
	{matching.GenreRAndB, []string{"r&b", "rnb", "soul"}},
	{matching.GenreAlternative, []string{"alternative", "underground"}},
	{matching.GenreIndie, []string{"indie", "independent", "local band"}},
}

var personalityKeywords = []struct {
	personality matching.PersonalityType
	keywords    []string
}{
	{matching.PersonalityExtrovert, []string{"outgoing", "social", "party", "friends"}},
	{matching.PersonalityIntrovert, []string{"quiet", "alone", "peaceful", "solitude"}},
	{matching.PersonalityAnalytical, []string{"logic", "analysis", "data", "science", "research"}},
	{matching.PersonalityCreative, []string{"creative", "art", "design", "imagination"}},
	{matching.PersonalityAdventurous, []string{"adventure", "explore", "experience"}},
	{matching.PersonalityConservative, []string{"traditional", "classic", "stable", "consistent"}},
}

var hobbyKeywords = []string{
	"reading", "books", "writing", "photography", "cooking", "baking",
	"fitness", "gym", "running", "hiking", "travel", "traveling",
	"movies", "films", "art", "painting", "drawing", "music", "singing",
	"gaming", "games", "sports", "football", "basketball", "soccer",
	"tennis", "swimming", "dancing", "yoga", "meditation", "gardening",
	"pets", "animals",
}

var lifestyleKeywords = []string{
	"vegan", "vegetarian", "organic", "healthy", "fitness", "night owl",
	"early bird", "workout", "meditation", "minimalist", "luxury",
	"budget", "travel", "homebody",
}

// Extracted holds preference labels inferred from a profile's free text.
type Extracted struct {
	MusicGenres      []matching.MusicGenre      `json:"music_genres"`
	Hobbies          []string                   `json:"hobbies"`
	PersonalityTypes []matching.PersonalityType `json:"personality_types"`
	Lifestyle        []string                   `json:"lifestyle_preferences"`
}

// ExtractFromProfile scans a bio and interest list for known preference
// keywords.
func ExtractFromProfile(bio string, interests []string) Extracted {
	bio = strings.ToLower(bio)
	interestSet := make(map[string]bool, len(interests))
	for _, i := range interests {
		interestSet[matching.NormalizeLabel(i)] = true
	}

	var out Extracted

	for _, entry := range musicKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(bio, kw) {
				out.MusicGenres = append(out.MusicGenres, entry.genre)
				break
			}
		}
	}

	for _, hobby := range hobbyKeywords {
		if strings.Contains(bio, hobby) || interestSet[hobby] {
			out.Hobbies = append(out.Hobbies, hobby)
		}
	}

	for _, entry := range personalityKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(bio, kw) {
				out.PersonalityTypes = append(out.PersonalityTypes, entry.personality)
				break
			}
		}
	}

	for _, lifestyle := range lifestyleKeywords {
		if strings.Contains(bio, lifestyle) {
			out.Lifestyle = append(out.Lifestyle, lifestyle)
		}
	}

	return out
}

// AnalyzeBehavior infers behavior signals from a user's message history and
// profile text.
func AnalyzeBehavior(messages []string, bio string) []matching.BehaviorSignal {
	seen := make(map[matching.BehaviorSignal]bool)
	add := func(signal matching.BehaviorSignal) {
		seen[signal] = true
	}

	if len(messages) > 0 {
		combined := strings.ToLower(strings.Join(messages, " "))

		if containsAny(combined, "lol", "haha", "funny", "joke") {
			add(matching.BehaviorHumorous)
		}
		if containsAny(combined, "why", "how", "what", "analyze", "think") {
			add(matching.BehaviorIntellectual)
		}
		if containsAny(combined, "feel", "emotion", "heart", "love") {
			add(matching.BehaviorEmotional)
		}
		if len(messages) > 5 {
			add(matching.BehaviorResponsive)
		}
		if containsAny(combined, "yes", "no", "definitely", "absolutely", "sure") {
			add(matching.BehaviorDirect)
		} else {
			add(matching.BehaviorSubtle)
		}
	}

	bio = strings.ToLower(bio)
	if containsAny(bio, "adventure", "travel", "explore") {
		add(matching.BehaviorPlayful)
	}
	if containsAny(bio, "serious", "focused", "career", "goals") {
		add(matching.BehaviorSerious)
	}

	// Stable output order regardless of map iteration.
	ordered := []matching.BehaviorSignal{
		matching.BehaviorResponsive, matching.BehaviorPlayful,
		matching.BehaviorIntellectual, matching.BehaviorEmotional,
		matching.BehaviorDirect, matching.BehaviorSubtle,
		matching.BehaviorHumorous, matching.BehaviorSerious,
	}
	var signals []matching.BehaviorSignal
	for _, signal := range ordered {
		if seen[signal] {
			signals = append(signals, signal)
		}
	}
	return signals
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
