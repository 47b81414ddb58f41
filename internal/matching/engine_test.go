package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *UserProfile {
	return &UserProfile{
		UserID:   "user-1",
		Name:     "Ada",
		Age:      28,
		Location: "Lagos",
		Bio:      "I love hiking, indie music and cooking for friends",
		Preferences: PreferenceProfile{
			PersonalityTypes: []PersonalityType{PersonalityCreative},
			MusicGenres:      []MusicGenre{GenreIndie, GenreJazz},
			Hobbies:          []string{"hiking", "cooking"},
			BehaviorSignals:  []BehaviorSignal{BehaviorHumorous, BehaviorDirect},
			Lifestyle:        []string{"fitness"},
			AgeRange:         &AgeRange{Min: 25, Max: 35},
			DealBreakers:     []string{"smoking"},
		},
	}
}

func TestAnalyzeCompatibilityScoreInRange(t *testing.T) {
	e := NewEngine()

	candidates := []*CandidateProfile{
		{},
		{UserID: "c1", Name: "Bisi", Age: 30, Bio: "hiking and cooking", Hobbies: []string{"hiking", "cooking"}},
		{UserID: "c2", Age: 99, MusicGenres: []string{"metal"}, Lifestyle: []string{"smoking"}},
	}

	for _, candidate := range candidates {
		analysis := e.AnalyzeCompatibility(context.Background(), testUser(), candidate)
		require.NotNil(t, analysis)
		assert.GreaterOrEqual(t, analysis.CompatibilityScore, 0.0)
		assert.LessOrEqual(t, analysis.CompatibilityScore, 1.0)
	}
}

func TestAnalyzeCompatibilityEmptyCandidateIsNeutral(t *testing.T) {
	e := NewEngine()

	analysis := e.AnalyzeCompatibility(context.Background(), testUser(), &CandidateProfile{})

	// Every dimension neutral except bio (empty candidate bio is neutral too).
	assert.Equal(t, 0.5, analysis.Scores.Music)
	assert.Equal(t, 0.5, analysis.Scores.Hobbies)
	assert.Equal(t, 0.5, analysis.Scores.Personality)
	assert.Equal(t, 0.5, analysis.Scores.Behavior)
	assert.Equal(t, 0.5, analysis.Scores.Lifestyle)
	assert.Equal(t, 0.5, analysis.Scores.Bio)
	assert.Empty(t, analysis.SharedInterests)
}

func TestAnalyzeCompatibilityDealBreaker(t *testing.T) {
	e := NewEngine()

	withSmoking := &CandidateProfile{
		UserID:    "c1",
		Age:       30,
		Lifestyle: []string{"smoking", "fitness"},
	}
	analysis := e.AnalyzeCompatibility(context.Background(), testUser(), withSmoking)
	require.NotEmpty(t, analysis.PotentialIssues)
	assert.Contains(t, analysis.PotentialIssues[0], "smoking")

	withoutSmoking := &CandidateProfile{
		UserID:    "c2",
		Age:       30,
		Lifestyle: []string{"fitness"},
	}
	analysis = e.AnalyzeCompatibility(context.Background(), testUser(), withoutSmoking)
	for _, issue := range analysis.PotentialIssues {
		assert.NotContains(t, issue, "smoking")
	}
}

func TestAnalyzeCompatibilityAgeAndStyleIssues(t *testing.T) {
	e := NewEngine()

	candidate := &CandidateProfile{
		UserID:          "c1",
		Age:             45,
		BehaviorSignals: []string{"subtle"},
	}
	analysis := e.AnalyzeCompatibility(context.Background(), testUser(), candidate)

	assert.Contains(t, analysis.PotentialIssues, "Different communication styles - direct vs subtle")
	assert.Contains(t, analysis.PotentialIssues, "Age outside preferred range (25-35)")
}

func TestAnalyzeCompatibilitySharedInterests(t *testing.T) {
	e := NewEngine()

	candidate := &CandidateProfile{
		UserID:           "c1",
		Age:              29,
		MusicGenres:      []string{"Indie"},
		Hobbies:          []string{"Hiking"},
		PersonalityTypes: []string{"creative"},
	}
	analysis := e.AnalyzeCompatibility(context.Background(), testUser(), candidate)

	assert.Contains(t, analysis.SharedInterests, "Both love indie music")
	assert.Contains(t, analysis.SharedInterests, "Both enjoy hiking")
	assert.Contains(t, analysis.SharedInterests, "Both are creative")
	assert.LessOrEqual(t, len(analysis.SharedInterests), 5)
	assert.LessOrEqual(t, len(analysis.MatchReasons), 5)
	assert.LessOrEqual(t, len(analysis.Suggestions), 5)
}

func TestRecommendApproachOrder(t *testing.T) {
	tests := []struct {
		name        string
		overall     float64
		behavior    float64
		personality float64
		expected    string
	}{
		{"high overall wins", 0.85, 0.9, 0.9, "confident"},
		{"behavior next", 0.6, 0.75, 0.9, "playful"},
		{"personality next", 0.6, 0.5, 0.75, "genuine"},
		{"moderate overall", 0.6, 0.5, 0.5, "casual"},
		{"low everything", 0.2, 0.1, 0.1, "cautious"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recommendApproach(tt.overall, tt.behavior, tt.personality))
		})
	}
}

func TestAnalyzeCompatibilityWeb3Bonus(t *testing.T) {
	e := NewEngine()

	user := testUser()
	user.Preferences.Web3 = &Web3Preferences{
		FavoriteChains:       []string{"celo", "ethereum"},
		ProgrammingLanguages: []string{"typescript"},
		TradingStyle:         "builder",
	}

	candidate := &CandidateProfile{
		UserID: "c1",
		Age:    30,
		Web3: &Web3Preferences{
			FavoriteChains:       []string{"celo"},
			ProgrammingLanguages: []string{"solidity"},
			TradingStyle:         "builder",
		},
	}

	analysis := e.AnalyzeCompatibility(context.Background(), testUser(), candidate)
	assert.Zero(t, analysis.Scores.Tech, "tech score requires both sides")

	analysis = e.AnalyzeCompatibility(context.Background(), user, candidate)
	assert.Greater(t, analysis.Scores.Tech, 0.0)
	assert.LessOrEqual(t, analysis.CompatibilityScore, 1.0)
}
