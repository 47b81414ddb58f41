package matching

import (
	"strings"
)

// PersonalityType is a closed set of personality labels used for matching.
type PersonalityType string

const (
	PersonalityExtrovert    PersonalityType = "extrovert"
	PersonalityIntrovert    PersonalityType = "introvert"
	PersonalityAmbivert     PersonalityType = "ambivert"
	PersonalityAnalytical   PersonalityType = "analytical"
	PersonalityCreative     PersonalityType = "creative"
	PersonalityAdventurous  PersonalityType = "adventurous"
	PersonalityConservative PersonalityType = "conservative"
)

// MusicGenre is a closed set of music genre labels.
type MusicGenre string

const (
	GenrePop         MusicGenre = "pop"
	GenreRock        MusicGenre = "rock"
	GenreHipHop      MusicGenre = "hip_hop"
	GenreElectronic  MusicGenre = "electronic"
	GenreJazz        MusicGenre = "jazz"
	GenreClassical   MusicGenre = "classical"
	GenreCountry     MusicGenre = "country"
	GenreRAndB       MusicGenre = "r_and_b"
	GenreAlternative MusicGenre = "alternative"
	GenreIndie       MusicGenre = "indie"
)

// BehaviorSignal is a closed set of communication-style labels.
type BehaviorSignal string

const (
	BehaviorResponsive   BehaviorSignal = "responsive"
	BehaviorPlayful      BehaviorSignal = "playful"
	BehaviorIntellectual BehaviorSignal = "intellectual"
	BehaviorEmotional    BehaviorSignal = "emotional"
	BehaviorDirect       BehaviorSignal = "direct"
	BehaviorSubtle       BehaviorSignal = "subtle"
	BehaviorHumorous     BehaviorSignal = "humorous"
	BehaviorSerious      BehaviorSignal = "serious"
)

var personalityTypes = map[string]PersonalityType{
	"extrovert": PersonalityExtrovert, "introvert": PersonalityIntrovert,
	"ambivert": PersonalityAmbivert, "analytical": PersonalityAnalytical,
	"creative": PersonalityCreative, "adventurous": PersonalityAdventurous,
	"conservative": PersonalityConservative,
}

var musicGenres = map[string]MusicGenre{
	"pop": GenrePop, "rock": GenreRock, "hip_hop": GenreHipHop,
	"electronic": GenreElectronic, "jazz": GenreJazz, "classical": GenreClassical,
	"country": GenreCountry, "r_and_b": GenreRAndB,
	"alternative": GenreAlternative, "indie": GenreIndie,
}

var behaviorSignals = map[string]BehaviorSignal{
	"responsive": BehaviorResponsive, "playful": BehaviorPlayful,
	"intellectual": BehaviorIntellectual, "emotional": BehaviorEmotional,
	"direct": BehaviorDirect, "subtle": BehaviorSubtle,
	"humorous": BehaviorHumorous, "serious": BehaviorSerious,
}

// ParsePersonalityType maps a raw label to a known personality type.
// The boolean reports whether the label was recognized, so callers can
// collect unparsed input instead of dropping it silently.
func ParsePersonalityType(s string) (PersonalityType, bool) {
	p, ok := personalityTypes[NormalizeLabel(s)]
	return p, ok
}

// ParseMusicGenre maps a raw label to a known music genre.
func ParseMusicGenre(s string) (MusicGenre, bool) {
	g, ok := musicGenres[NormalizeLabel(s)]
	return g, ok
}

// ParseBehaviorSignal maps a raw label to a known behavior signal.
func ParseBehaviorSignal(s string) (BehaviorSignal, bool) {
	b, ok := behaviorSignals[NormalizeLabel(s)]
	return b, ok
}

// NormalizeLabel lowercases a label and collapses whitespace to underscores
// so "Hip Hop" and "hip_hop" compare equal.
func NormalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "_")
}

// AgeRange is an inclusive preferred age interval.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Web3Preferences is an optional nested preference block. A nil pointer means
// the user never filled it in; DefaultWeb3Preferences gives the zero-value
// record so callers check for presence exactly once at the boundary.
type Web3Preferences struct {
	FavoriteChains       []string `json:"favorite_chains"`
	ProgrammingLanguages []string `json:"programming_languages"`
	TradingStyle         string   `json:"trading_style"`
	DefiExperience       string   `json:"defi_experience"`
	NFTInterests         []string `json:"nft_interests"`
	Communities          []string `json:"communities"`
}

func DefaultWeb3Preferences() *Web3Preferences {
	return &Web3Preferences{}
}

// PreferenceProfile holds the requester's stated preferences. It is built
// once and treated as immutable for the duration of a scoring pass.
type PreferenceProfile struct {
	PersonalityTypes []PersonalityType `json:"personality_types"`
	MusicGenres      []MusicGenre      `json:"music_genres"`
	Hobbies          []string          `json:"hobbies"`
	BehaviorSignals  []BehaviorSignal  `json:"behavior_signals"`
	Lifestyle        []string          `json:"lifestyle_preferences"`
	AgeRange         *AgeRange         `json:"age_range,omitempty"`
	DealBreakers     []string          `json:"deal_breakers"`
	MustHaves        []string          `json:"must_haves"`
	Web3             *Web3Preferences  `json:"web3_preferences,omitempty"`
}

// CandidateProfile is the flat record scored against a PreferenceProfile.
// Every field is optional; absent data routes through neutral scores.
type CandidateProfile struct {
	UserID           string           `json:"user_id"`
	Name             string           `json:"name"`
	Age              int              `json:"age"`
	Location         string           `json:"location"`
	Bio              string           `json:"bio"`
	Photos           []string         `json:"photos"`
	MusicGenres      []string         `json:"music_genres"`
	Hobbies          []string         `json:"hobbies"`
	PersonalityTypes []string         `json:"personality_types"`
	BehaviorSignals  []string         `json:"behavior_signals"`
	Lifestyle        []string         `json:"lifestyle_preferences"`
	Web3             *Web3Preferences `json:"web3_preferences,omitempty"`
}

// DimensionScores carries the per-dimension sub-scores that feed the
// weighted overall score. Every value lies in [0,1].
type DimensionScores struct {
	Music       float64 `json:"music"`
	Hobbies     float64 `json:"hobbies"`
	Personality float64 `json:"personality"`
	Behavior    float64 `json:"behavior"`
	Lifestyle   float64 `json:"lifestyle"`
	Bio         float64 `json:"bio"`
	Tech        float64 `json:"tech,omitempty"`
}

// MatchAnalysis is the full compatibility judgment for one candidate.
// Created fresh per (requester, candidate) pair and never mutated after.
type MatchAnalysis struct {
	UserID              string          `json:"user_id,omitempty"`
	Name                string          `json:"name,omitempty"`
	CompatibilityScore  float64         `json:"compatibility_score"`
	Scores              DimensionScores `json:"scores"`
	SharedInterests     []string        `json:"shared_interests"`
	MatchReasons        []string        `json:"match_reasons"`
	PotentialIssues     []string        `json:"potential_issues"`
	Suggestions         []string        `json:"conversation_suggestions"`
	ConversationOpeners []string        `json:"conversation_starters,omitempty"`
	RecommendedApproach string          `json:"recommended_approach"`
}

// Bounded list caps keep presentation stable.
const (
	maxSharedInterests = 5
	maxMatchReasons    = 5
	maxSuggestions     = 5
	maxOpeners         = 3
)
