package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMatchesSortedAndThresholded(t *testing.T) {
	e := NewEngine()
	user := testUser()

	candidates := []*CandidateProfile{
		// Strong: shared hobbies, music, behavior.
		{UserID: "strong", Age: 30, Hobbies: []string{"hiking", "cooking"}, MusicGenres: []string{"indie", "jazz"}, BehaviorSignals: []string{"humorous", "direct"}},
		// Weak: everything disjoint drags the weighted sum under the cutoff.
		{UserID: "weak", Age: 30, Hobbies: []string{"knitting"}, MusicGenres: []string{"metal"}, BehaviorSignals: []string{"serious"}, PersonalityTypes: []string{"conservative"}, Lifestyle: []string{"homebody"}, Bio: "completely different person"},
		// Medium: partial overlap.
		{UserID: "medium", Age: 30, Hobbies: []string{"hiking", "swimming", "chess"}, MusicGenres: []string{"indie"}},
	}

	results := e.FindBestMatches(context.Background(), user, candidates, 10)
	require.NotEmpty(t, results)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].CompatibilityScore, results[i].CompatibilityScore)
	}
	for _, r := range results {
		assert.GreaterOrEqual(t, r.CompatibilityScore, 0.3)
		assert.NotEqual(t, "weak", r.UserID)
	}
	assert.Equal(t, "strong", results[0].UserID)
}

func TestFindBestMatchesLimit(t *testing.T) {
	e := NewEngine()
	user := testUser()

	var candidates []*CandidateProfile
	for i := 0; i < 20; i++ {
		candidates = append(candidates, &CandidateProfile{
			UserID:  fmt.Sprintf("c%d", i),
			Age:     28,
			Hobbies: []string{"hiking", "cooking"},
		})
	}

	results := e.FindBestMatches(context.Background(), user, candidates, 5)
	assert.Len(t, results, 5)
}

func TestFindBestMatchesZeroLimit(t *testing.T) {
	e := NewEngine()
	candidates := []*CandidateProfile{{UserID: "c1", Hobbies: []string{"hiking"}}}

	assert.Empty(t, e.FindBestMatches(context.Background(), testUser(), candidates, 0))
	assert.Empty(t, e.FindBestMatches(context.Background(), testUser(), candidates, -1))
}

func TestFindBestMatchesStableForTies(t *testing.T) {
	e := NewEngine(WithScoreWorkers(4))
	user := testUser()

	// Identical candidates score identically; stable sort keeps input order.
	var candidates []*CandidateProfile
	for i := 0; i < 6; i++ {
		candidates = append(candidates, &CandidateProfile{
			UserID:  fmt.Sprintf("tie-%d", i),
			Age:     30,
			Hobbies: []string{"hiking", "cooking"},
		})
	}

	results := e.FindBestMatches(context.Background(), user, candidates, 10)
	require.Len(t, results, 6)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("tie-%d", i), r.UserID)
	}
}
