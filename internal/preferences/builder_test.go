package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
)

func TestBuildCollectsUnparsedLabels(t *testing.T) {
	result := Build(RawInput{
		PersonalityTypes: []string{"Extrovert", "wizard"},
		MusicGenres:      []string{"Indie", "polka"},
		BehaviorSignals:  []string{"direct", "telepathic"},
		Hobbies:          []string{"Hiking", "  "},
		DealBreakers:     []string{"Smoking"},
	})

	assert.Equal(t, []matching.PersonalityType{matching.PersonalityExtrovert}, result.Profile.PersonalityTypes)
	assert.Equal(t, []matching.MusicGenre{matching.GenreIndie}, result.Profile.MusicGenres)
	assert.Equal(t, []matching.BehaviorSignal{matching.BehaviorDirect}, result.Profile.BehaviorSignals)
	assert.Equal(t, []string{"hiking"}, result.Profile.Hobbies)
	assert.Equal(t, []string{"smoking"}, result.Profile.DealBreakers)
	assert.ElementsMatch(t, []string{"wizard", "polka", "telepathic"}, result.Unparsed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile matching.PreferenceProfile
		wantErr error
	}{
		{
			name:    "no hobbies or genres",
			profile: matching.PreferenceProfile{},
			wantErr: ErrNoPreferences,
		},
		{
			name: "inverted age range",
			profile: matching.PreferenceProfile{
				Hobbies:  []string{"hiking"},
				AgeRange: &matching.AgeRange{Min: 40, Max: 30},
			},
			wantErr: ErrInvalidAges,
		},
		{
			name: "underage minimum",
			profile: matching.PreferenceProfile{
				Hobbies:  []string{"hiking"},
				AgeRange: &matching.AgeRange{Min: 16, Max: 30},
			},
			wantErr: ErrInvalidAges,
		},
		{
			name: "direct and subtle conflict",
			profile: matching.PreferenceProfile{
				Hobbies:         []string{"hiking"},
				BehaviorSignals: []matching.BehaviorSignal{matching.BehaviorDirect, matching.BehaviorSubtle},
			},
			wantErr: ErrStyleConflict,
		},
		{
			name: "valid profile",
			profile: matching.PreferenceProfile{
				Hobbies:  []string{"hiking"},
				AgeRange: &matching.AgeRange{Min: 25, Max: 35},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.profile)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	result := Build(RawInput{
		PersonalityTypes: []string{"creative"},
		MusicGenres:      []string{"jazz", "indie"},
		Hobbies:          []string{"hiking"},
	})
	require.Empty(t, result.Unparsed)

	summary := Summarize(&result.Profile)
	assert.Equal(t, []string{"creative"}, summary.PersonalityTypes)
	assert.Equal(t, []string{"jazz", "indie"}, summary.MusicGenres)
	assert.Equal(t, 4, summary.TotalPreferences)
}
