package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile(userID, name string) *Profile {
	return &Profile{
		UserID:           userID,
		Name:             name,
		Age:              28,
		Location:         "Lagos",
		Bio:              "Weekend hiker and live music regular",
		Hobbies:          []string{"hiking", "cooking"},
		MusicGenres:      []string{"indie", "jazz"},
		PersonalityTypes: []string{"creative"},
		BehaviorSignals:  []string{"humorous"},
		Lifestyle:        []string{"fitness"},
		AgeRangeMin:      24,
		AgeRangeMax:      36,
	}
}

func TestCreateAndGetProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	created, err := svc.CreateProfile(ctx, validProfile("", "Ada"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.UserID, "missing user id is generated")
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetProfile(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
}

func TestCreateProfileRejectsEmptyPreferences(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	p := validProfile("user-1", "Ada")
	p.Hobbies = nil
	p.MusicGenres = nil

	_, err := svc.CreateProfile(context.Background(), p)
	assert.Error(t, err)
}

func TestCreateProfileRejectsBadAgeRange(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	p := validProfile("user-1", "Ada")
	p.AgeRangeMin = 40
	p.AgeRangeMax = 25

	_, err := svc.CreateProfile(context.Background(), p)
	assert.Error(t, err)
}

func TestCreateProfileDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	_, err := svc.CreateProfile(ctx, validProfile("user-1", "Ada"))
	require.NoError(t, err)

	_, err = svc.CreateProfile(ctx, validProfile("user-1", "Ada again"))
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	created, err := svc.CreateProfile(ctx, validProfile("user-1", "Ada"))
	require.NoError(t, err)

	created.Bio = "New bio, same hiking habit"
	_, err = svc.UpdateProfile(ctx, created)
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "New bio, same hiking habit", got.Bio)

	_, err = svc.UpdateProfile(ctx, validProfile("missing", "Nobody"))
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	_, err := svc.CreateProfile(ctx, validProfile("user-1", "Ada"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(ctx, "user-1"))

	_, err = svc.GetProfile(ctx, "user-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.ErrorIs(t, svc.DeleteProfile(ctx, "user-1"), ErrProfileNotFound)
}

func TestCandidatesExcludesRequester(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	_, err := svc.CreateProfile(ctx, validProfile("user-1", "Ada"))
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, validProfile("user-2", "Bayo"))
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, validProfile("user-3", "Chi"))
	require.NoError(t, err)

	candidates, err := svc.Candidates(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.NotEqual(t, "user-1", c.UserID)
	}
}

func TestMatchingProfileConversion(t *testing.T) {
	p := validProfile("user-1", "Ada")
	p.PersonalityTypes = []string{"creative", "not-a-type"}

	up := p.MatchingProfile()
	assert.Equal(t, "user-1", up.UserID)
	require.Len(t, up.Preferences.PersonalityTypes, 1, "unknown labels are skipped")
	require.NotNil(t, up.Preferences.AgeRange)
	assert.Equal(t, 24, up.Preferences.AgeRange.Min)

	candidate := p.Candidate()
	assert.Equal(t, []string{"indie", "jazz"}, candidate.MusicGenres)
}
