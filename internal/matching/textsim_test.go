package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBioSimilarityEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.5, BioSimilarity("", ""))
	assert.Equal(t, 0.5, BioSimilarity("", "I love hiking and cooking"))
	assert.Equal(t, 0.5, BioSimilarity("I love hiking and cooking", ""))
	assert.Equal(t, 0.5, BioSimilarity("   ", "something"))
}

func TestBioSimilarityIdenticalTexts(t *testing.T) {
	bio := "Passionate about hiking, photography and discovering new restaurants around the city"
	assert.InDelta(t, 1.0, BioSimilarity(bio, bio), 1e-9)
}

func TestBioSimilarityDisjointTexts(t *testing.T) {
	a := "Blockchain developer building smart contracts"
	b := "Yoga teacher growing tomatoes"
	assert.InDelta(t, 0.0, BioSimilarity(a, b), 1e-9)
}

func TestBioSimilarityRelatedTextsScoreHigherThanUnrelated(t *testing.T) {
	base := "I love hiking in the mountains and taking landscape photos"
	related := "Hiking the mountains every weekend, always with my camera for landscape photos"
	unrelated := "Professional chef obsessed with Italian pasta recipes"

	simRelated := BioSimilarity(base, related)
	simUnrelated := BioSimilarity(base, unrelated)

	assert.Greater(t, simRelated, simUnrelated)
	assert.GreaterOrEqual(t, simRelated, 0.0)
	assert.LessOrEqual(t, simRelated, 1.0)
}

func TestBioSimilarityStopWordsOnlyIsNeutral(t *testing.T) {
	// After stop-word removal there is nothing to compare.
	assert.Equal(t, 0.5, BioSimilarity("the and of to", "a an but or"))
}

func TestBioSimilarityAlwaysInRange(t *testing.T) {
	pairs := [][2]string{
		{"short", "a much longer biography about travel food and work in the tech industry"},
		{"emoji only ✨✨", "✨"},
		{"repeated repeated repeated repeated", "repeated"},
	}
	for _, pair := range pairs {
		sim := BioSimilarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}
