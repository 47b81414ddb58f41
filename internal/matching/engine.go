package matching

import (
	"context"
	"fmt"
	"strings"
)

// UserProfile is the requester side of a scoring pass: identity, free-text
// bio, and the stated preferences.
type UserProfile struct {
	UserID      string            `json:"user_id"`
	Name        string            `json:"name"`
	Age         int               `json:"age"`
	Location    string            `json:"location"`
	Bio         string            `json:"bio"`
	Photos      []string          `json:"photos"`
	Preferences PreferenceProfile `json:"preferences"`
}

// Weights control the contribution of each dimension to the overall score.
// Bio and Tech are bonus signals layered on top of the primary dimensions;
// the final score is clamped to [0,1].
type Weights struct {
	Music       float64
	Hobbies     float64
	Personality float64
	Behavior    float64
	Lifestyle   float64
	Bio         float64
	Tech        float64
}

// DefaultWeights returns the standard dimension weighting.
func DefaultWeights() Weights {
	return Weights{
		Music:       0.20,
		Hobbies:     0.25,
		Personality: 0.15,
		Behavior:    0.30,
		Lifestyle:   0.10,
		Bio:         0.10,
		Tech:        0.20,
	}
}

// Engine analyzes compatibility between a user and candidate profiles.
type Engine interface {
	AnalyzeCompatibility(ctx context.Context, user *UserProfile, candidate *CandidateProfile) *MatchAnalysis
	FindBestMatches(ctx context.Context, user *UserProfile, candidates []*CandidateProfile, limit int) []*MatchAnalysis
}

type engine struct {
	weights      Weights
	minScore     float64
	scoreWorkers int
}

// Option configures an Engine.
type Option func(*engine)

// WithWeights overrides the default dimension weights.
func WithWeights(w Weights) Option {
	return func(e *engine) { e.weights = w }
}

// WithMinScore overrides the minimum score a candidate needs to be ranked.
func WithMinScore(min float64) Option {
	return func(e *engine) { e.minScore = min }
}

// WithScoreWorkers bounds the scoring worker pool used by FindBestMatches.
func WithScoreWorkers(n int) Option {
	return func(e *engine) {
		if n > 0 {
			e.scoreWorkers = n
		}
	}
}

// NewEngine creates a matching engine with the default configuration.
func NewEngine(opts ...Option) Engine {
	e := &engine{
		weights:      DefaultWeights(),
		minScore:     0.3,
		scoreWorkers: 8,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnalyzeCompatibility scores one candidate against the user's preferences.
// It never fails: absent candidate fields route through neutral scores.
func (e *engine) AnalyzeCompatibility(ctx context.Context, user *UserProfile, candidate *CandidateProfile) *MatchAnalysis {
	prefs := &user.Preferences

	scores := DimensionScores{
		Music:       MusicScore(prefs.MusicGenres, candidate.MusicGenres),
		Hobbies:     HobbyScore(prefs.Hobbies, candidate.Hobbies),
		Personality: PersonalityScore(prefs.PersonalityTypes, candidate.PersonalityTypes),
		Behavior:    BehaviorScore(prefs.BehaviorSignals, candidate.BehaviorSignals),
		Lifestyle:   LifestyleScore(prefs.Lifestyle, candidate.Lifestyle),
		Bio:         BioSimilarity(user.Bio, candidate.Bio),
	}

	overall := scores.Music*e.weights.Music +
		scores.Hobbies*e.weights.Hobbies +
		scores.Personality*e.weights.Personality +
		scores.Behavior*e.weights.Behavior +
		scores.Lifestyle*e.weights.Lifestyle +
		scores.Bio*e.weights.Bio

	// Tech compatibility only participates when both sides filled in the
	// optional Web3 block.
	if prefs.Web3 != nil && candidate.Web3 != nil {
		scores.Tech = techCompatibility(prefs.Web3, candidate.Web3)
		overall += scores.Tech * e.weights.Tech
	}

	overall = clamp01(overall)

	shared := findSharedInterests(prefs, candidate)

	analysis := &MatchAnalysis{
		UserID:              candidate.UserID,
		Name:                candidate.Name,
		CompatibilityScore:  overall,
		Scores:              scores,
		SharedInterests:     shared,
		MatchReasons:        matchReasons(scores, shared),
		PotentialIssues:     potentialIssues(prefs, candidate),
		Suggestions:         conversationSuggestions(shared, candidate),
		ConversationOpeners: conversationOpeners(shared, candidate),
		RecommendedApproach: recommendApproach(overall, scores.Behavior, scores.Personality),
	}

	RecordCompatibilityScore(overall)
	return analysis
}

// findSharedInterests intersects user and candidate labels per dimension and
// formats each as a display sentence, capped at maxSharedInterests.
func findSharedInterests(prefs *PreferenceProfile, candidate *CandidateProfile) []string {
	var shared []string

	for _, genre := range sharedLabels(genreStrings(prefs.MusicGenres), candidate.MusicGenres) {
		shared = append(shared, fmt.Sprintf("Both love %s music", strings.ReplaceAll(genre, "_", " ")))
	}
	for _, hobby := range sharedLabels(prefs.Hobbies, candidate.Hobbies) {
		shared = append(shared, fmt.Sprintf("Both enjoy %s", strings.ReplaceAll(hobby, "_", " ")))
	}
	for _, trait := range sharedLabels(personalityStrings(prefs.PersonalityTypes), candidate.PersonalityTypes) {
		shared = append(shared, fmt.Sprintf("Both are %s", trait))
	}

	return truncate(shared, maxSharedInterests)
}

// matchReasons collects canned reasons for strongly scoring dimensions and
// tops them up with the leading shared interests.
func matchReasons(scores DimensionScores, shared []string) []string {
	const strong = 0.7

	var reasons []string
	if scores.Music > strong {
		reasons = append(reasons, "Great music taste compatibility")
	}
	if scores.Hobbies > strong {
		reasons = append(reasons, "Shared hobbies and interests")
	}
	if scores.Personality > strong {
		reasons = append(reasons, "Complementary personalities")
	}
	if scores.Behavior > strong {
		reasons = append(reasons, "Compatible communication styles")
	}
	if scores.Lifestyle > strong {
		reasons = append(reasons, "Similar lifestyle preferences")
	}

	reasons = append(reasons, truncate(shared, 2)...)
	return truncate(reasons, maxMatchReasons)
}

// potentialIssues flags deal breakers, communication-style conflicts, and an
// age outside the preferred range.
func potentialIssues(prefs *PreferenceProfile, candidate *CandidateProfile) []string {
	var issues []string

	attributes := normalizeSet(candidate.MusicGenres)
	for label := range normalizeSet(candidate.Hobbies) {
		attributes[label] = true
	}
	for label := range normalizeSet(candidate.Lifestyle) {
		attributes[label] = true
	}

	for _, dealBreaker := range prefs.DealBreakers {
		if attributes[NormalizeLabel(dealBreaker)] {
			issues = append(issues, fmt.Sprintf("Potential deal breaker: %s", dealBreaker))
		}
	}

	candidateBehaviors := normalizeSet(candidate.BehaviorSignals)
	for _, signal := range prefs.BehaviorSignals {
		if signal == BehaviorDirect && candidateBehaviors[string(BehaviorSubtle)] {
			issues = append(issues, "Different communication styles - direct vs subtle")
			break
		}
	}

	if prefs.AgeRange != nil && candidate.Age > 0 {
		if candidate.Age < prefs.AgeRange.Min || candidate.Age > prefs.AgeRange.Max {
			issues = append(issues, fmt.Sprintf("Age outside preferred range (%d-%d)", prefs.AgeRange.Min, prefs.AgeRange.Max))
		}
	}

	return issues
}

// conversationSuggestions proposes topics to raise, derived from shared
// interests and bio keywords.
func conversationSuggestions(shared []string, candidate *CandidateProfile) []string {
	var suggestions []string

	for _, interest := range truncate(shared, 3) {
		switch {
		case strings.Contains(interest, "music"):
			subject := strings.TrimSuffix(strings.TrimPrefix(interest, "Both love "), " music")
			suggestions = append(suggestions, fmt.Sprintf("Ask about their favorite %s artists", subject))
		case strings.Contains(interest, "enjoy"):
			hobby := strings.TrimPrefix(interest, "Both enjoy ")
			suggestions = append(suggestions, fmt.Sprintf("Share experiences about %s", hobby))
		case strings.Contains(interest, "are"):
			trait := strings.TrimPrefix(interest, "Both are ")
			suggestions = append(suggestions, fmt.Sprintf("Discuss what being %s means to them", trait))
		}
	}

	bio := strings.ToLower(candidate.Bio)
	if strings.Contains(bio, "travel") {
		suggestions = append(suggestions, "Ask about their favorite travel destination")
	}
	if strings.Contains(bio, "food") || strings.Contains(bio, "cook") {
		suggestions = append(suggestions, "Share favorite recipes or restaurants")
	}
	if strings.Contains(bio, "work") || strings.Contains(bio, "career") {
		suggestions = append(suggestions, "Ask about their professional interests")
	}

	return truncate(suggestions, maxSuggestions)
}

// conversationOpeners builds concrete first messages from shared interests
// and the candidate's bio.
func conversationOpeners(shared []string, candidate *CandidateProfile) []string {
	var openers []string

	for _, interest := range truncate(shared, 2) {
		switch {
		case strings.Contains(interest, "music"):
			subject := strings.TrimSuffix(strings.TrimPrefix(interest, "Both love "), " music")
			openers = append(openers, fmt.Sprintf("I noticed we both love %s music! Who's your favorite artist?", subject))
		case strings.Contains(interest, "enjoy"):
			hobby := strings.TrimPrefix(interest, "Both enjoy ")
			openers = append(openers, fmt.Sprintf("Hey! I saw you're into %s too. What got you into it?", hobby))
		}
	}

	name := firstName(candidate.Name)
	bio := strings.ToLower(candidate.Bio)
	switch {
	case strings.Contains(bio, "travel"):
		openers = append(openers, fmt.Sprintf("Hi %s! Your bio mentions travel - what's been your favorite adventure so far?", name))
	case strings.Contains(bio, "food"):
		openers = append(openers, fmt.Sprintf("Hey %s! I'm always looking for new food recommendations. What's your go-to dish?", name))
	default:
		openers = append(openers, fmt.Sprintf("Hi %s! Your profile caught my attention. What's something you're passionate about?", name))
	}

	return truncate(openers, maxOpeners)
}

// recommendApproach picks the suggested opening strategy. Checks run in this
// exact order; first match wins.
func recommendApproach(overall, behavior, personality float64) string {
	switch {
	case overall > 0.8:
		return "confident"
	case behavior > 0.7:
		return "playful"
	case personality > 0.7:
		return "genuine"
	case overall > 0.5:
		return "casual"
	default:
		return "cautious"
	}
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return "there"
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
