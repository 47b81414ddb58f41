package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradingAlignmentScore(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		candidate string
		expected  float64
	}{
		{"same style", "hodler", "hodler", 0.9},
		{"complementary pair", "hodler", "builder", 0.8},
		{"pair works both directions", "degen", "trader", 0.8},
		{"mismatched styles", "hodler", "degen", 0.3},
		{"missing style is neutral", "", "hodler", 0.5},
		{"case and spacing normalized", "Hodler", "BUILDER", 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &Web3Preferences{TradingStyle: tt.user}
			candidate := &Web3Preferences{TradingStyle: tt.candidate}
			assert.InDelta(t, tt.expected, tradingAlignmentScore(user, candidate), 0.0001)
		})
	}
}

func TestDevSynergyScore(t *testing.T) {
	t.Run("empty languages neutral", func(t *testing.T) {
		score := devSynergyScore(&Web3Preferences{}, &Web3Preferences{ProgrammingLanguages: []string{"rust"}})
		assert.InDelta(t, 0.5, score, 0.0001)
	})

	t.Run("frontend backend bonus", func(t *testing.T) {
		user := &Web3Preferences{ProgrammingLanguages: []string{"typescript"}}
		candidate := &Web3Preferences{ProgrammingLanguages: []string{"solidity"}}
		// No overlap, but complementary stack sides.
		assert.InDelta(t, 0.2, devSynergyScore(user, candidate), 0.0001)
	})

	t.Run("capped at one", func(t *testing.T) {
		user := &Web3Preferences{ProgrammingLanguages: []string{"typescript", "solidity"}}
		candidate := &Web3Preferences{ProgrammingLanguages: []string{"typescript", "solidity"}}
		assert.InDelta(t, 1.0, devSynergyScore(user, candidate), 0.0001)
	})
}

func TestTechCompatibilityAveragesSubScores(t *testing.T) {
	user := &Web3Preferences{
		FavoriteChains:       []string{"ethereum"},
		ProgrammingLanguages: []string{"rust"},
		TradingStyle:         "hodler",
		Communities:          []string{"daohaus"},
	}
	candidate := &Web3Preferences{
		FavoriteChains:       []string{"ethereum"},
		ProgrammingLanguages: []string{"rust"},
		TradingStyle:         "hodler",
		Communities:          []string{"daohaus"},
	}

	// chains 1.0, dev 1.0, trading 0.9, community 1.0
	assert.InDelta(t, 0.975, techCompatibility(user, candidate), 0.0001)
}

func TestSharedProtocols(t *testing.T) {
	user := &Web3Preferences{
		FavoriteChains:       []string{"ethereum", "solana"},
		ProgrammingLanguages: []string{"rust"},
	}
	candidate := &Web3Preferences{
		FavoriteChains:       []string{"ethereum"},
		ProgrammingLanguages: []string{"rust", "go"},
	}

	shared := SharedProtocols(user, candidate)
	assert.Contains(t, shared, "Both love ethereum ecosystem")
	assert.Contains(t, shared, "Both code in rust")
	assert.LessOrEqual(t, len(shared), 3)

	assert.Nil(t, SharedProtocols(nil, candidate))
}

func TestComplementarySkills(t *testing.T) {
	user := &Web3Preferences{ProgrammingLanguages: []string{"react"}, TradingStyle: "hodler"}
	candidate := &Web3Preferences{ProgrammingLanguages: []string{"go"}, TradingStyle: "builder"}

	skills := ComplementarySkills(user, candidate)
	assert.Contains(t, skills, "Perfect frontend/backend combination")
	assert.LessOrEqual(t, len(skills), 2)

	assert.Nil(t, ComplementarySkills(user, nil))
}
