package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
)

func TestExtractFromProfile(t *testing.T) {
	bio := "Creative soul into indie music and photography, always planning the next adventure. Vegan, gym most mornings."

	extracted := ExtractFromProfile(bio, []string{"Hiking"})

	assert.Contains(t, extracted.MusicGenres, matching.GenreIndie)
	assert.Contains(t, extracted.Hobbies, "photography")
	assert.Contains(t, extracted.Hobbies, "hiking")
	assert.Contains(t, extracted.PersonalityTypes, matching.PersonalityCreative)
	assert.Contains(t, extracted.PersonalityTypes, matching.PersonalityAdventurous)
	assert.Contains(t, extracted.Lifestyle, "vegan")
}

func TestExtractFromProfileStableOrder(t *testing.T) {
	bio := "Pop music and rock on weekdays, jazz, classical, country music, r&b, indie and electronic on weekends. Quiet creative type, loves adventure and data science."

	first := ExtractFromProfile(bio, nil)
	assert.NotEmpty(t, first.MusicGenres)
	assert.NotEmpty(t, first.PersonalityTypes)

	for i := 0; i < 100; i++ {
		again := ExtractFromProfile(bio, nil)
		assert.Equal(t, first.MusicGenres, again.MusicGenres)
		assert.Equal(t, first.PersonalityTypes, again.PersonalityTypes)
	}
}

func TestExtractFromEmptyProfile(t *testing.T) {
	extracted := ExtractFromProfile("", nil)
	assert.Empty(t, extracted.MusicGenres)
	assert.Empty(t, extracted.Hobbies)
	assert.Empty(t, extracted.PersonalityTypes)
	assert.Empty(t, extracted.Lifestyle)
}

func TestAnalyzeBehavior(t *testing.T) {
	messages := []string{
		"haha that's hilarious",
		"why do you think that works?",
		"yes definitely",
	}

	signals := AnalyzeBehavior(messages, "focused on my career goals")

	assert.Contains(t, signals, matching.BehaviorHumorous)
	assert.Contains(t, signals, matching.BehaviorIntellectual)
	assert.Contains(t, signals, matching.BehaviorDirect)
	assert.Contains(t, signals, matching.BehaviorSerious)
	assert.NotContains(t, signals, matching.BehaviorSubtle)
}

func TestAnalyzeBehaviorSubtleDefault(t *testing.T) {
	signals := AnalyzeBehavior([]string{"maybe sometime"}, "")
	assert.Contains(t, signals, matching.BehaviorSubtle)
	assert.NotContains(t, signals, matching.BehaviorDirect)
}

func TestAnalyzeBehaviorResponsiveThreshold(t *testing.T) {
	few := AnalyzeBehavior([]string{"hi", "hey"}, "")
	assert.NotContains(t, few, matching.BehaviorResponsive)

	many := AnalyzeBehavior([]string{"a", "b", "c", "d", "e", "f"}, "")
	assert.Contains(t, many, matching.BehaviorResponsive)
}

func TestAnalyzeBehaviorNoInput(t *testing.T) {
	assert.Empty(t, AnalyzeBehavior(nil, ""))
}
