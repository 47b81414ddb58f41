package agent

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tundeajayi/sparkmatch-backend/internal/conversation"
	"github.com/tundeajayi/sparkmatch-backend/internal/generation"
	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
	"github.com/tundeajayi/sparkmatch-backend/internal/profile"
)

func newTestService(t *testing.T) (Service, conversation.Store) {
	t.Helper()

	store := conversation.NewMemoryStore(20)
	svc := NewService(
		profile.NewService(profile.NewMemoryRepository()),
		matching.NewEngine(),
		store,
		conversation.NewAnalyzer(),
		nil, // no AI backend in tests
		generation.NewFallbackGenerator(rand.New(rand.NewSource(1))),
		10,
	)
	return svc, store
}

func createTestUser(t *testing.T, svc Service, name string) *profile.Profile {
	t.Helper()

	p, err := svc.CreateUser(context.Background(), &CreateUserDTO{
		Name:             name,
		Age:              28,
		Location:         "Lagos",
		Bio:              "Weekend hiker who never misses live jazz",
		Hobbies:          []string{"hiking", "cooking"},
		MusicGenres:      []string{"indie", "jazz"},
		PersonalityTypes: []string{"creative"},
		BehaviorSignals:  []string{"humorous"},
		Lifestyle:        []string{"fitness"},
		AgeRangeMin:      22,
		AgeRangeMax:      38,
	})
	require.NoError(t, err)
	return p
}

func TestCreateUserExtractsPreferencesFromBio(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.CreateUser(context.Background(), &CreateUserDTO{
		Name: "Ada",
		Age:  26,
		Bio:  "Big on hiking and jazz, always cooking something new",
	})
	require.NoError(t, err)
	assert.Contains(t, []string(p.Hobbies), "hiking")
	assert.Contains(t, []string(p.MusicGenres), "jazz")
}

func TestAnalyzeMatches(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "Ada")
	match := createTestUser(t, svc, "Bayo")
	createTestUser(t, svc, "Chi")

	resp, err := svc.AnalyzeMatches(ctx, &AnalyzeMatchesDTO{UserID: user.UserID, Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Matches)
	assert.Equal(t, resp.Total, len(resp.Matches))

	var ids []string
	for _, m := range resp.Matches {
		assert.NotEqual(t, user.UserID, m.UserID, "requester never matches themselves")
		assert.GreaterOrEqual(t, m.CompatibilityScore, 0.3)
		assert.LessOrEqual(t, m.CompatibilityScore, 1.0)
		ids = append(ids, m.UserID)
	}
	assert.Contains(t, ids, match.UserID)
}

func TestAnalyzeMatchesUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AnalyzeMatches(context.Background(), &AnalyzeMatchesDTO{UserID: "missing"})
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestStartConversationRequiresBothProfiles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "Ada")

	_, err := svc.StartConversation(ctx, &StartConversationDTO{UserID: user.UserID, MatchUserID: "missing"})
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)

	match := createTestUser(t, svc, "Bayo")
	state, err := svc.StartConversation(ctx, &StartConversationDTO{UserID: user.UserID, MatchUserID: match.UserID})
	require.NoError(t, err)
	assert.True(t, state.HasParticipant(user.UserID))
	assert.Equal(t, match.UserID, state.MatchUserID)
}

func TestChatAppendsBothSidesAndReplies(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "Ada")
	match := createTestUser(t, svc, "Bayo")

	state, err := svc.StartConversation(ctx, &StartConversationDTO{UserID: user.UserID, MatchUserID: match.UserID})
	require.NoError(t, err)

	resp, err := svc.Chat(ctx, &ChatDTO{
		ConversationID: state.ID,
		UserID:         user.UserID,
		Message:        "Hey! I saw you're into hiking too",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reply)
	assert.True(t, resp.UsedFallback, "no AI backend configured")
	require.NotNil(t, resp.Engagement)

	stored, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 2)
	assert.False(t, stored.Messages[0].IsAIGenerated)
	assert.True(t, stored.Messages[1].IsAIGenerated)
	assert.Equal(t, resp.Reply, stored.Messages[1].Content)
	assert.Equal(t, "warm", stored.Tone, "tone follows the shared-interest approach")
}

func TestChatEarlyConversationApproach(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "Ada")
	match := createTestUser(t, svc, "Bayo")

	state, err := svc.StartConversation(ctx, &StartConversationDTO{UserID: user.UserID, MatchUserID: match.UserID})
	require.NoError(t, err)

	resp, err := svc.Chat(ctx, &ChatDTO{
		ConversationID: state.ID,
		UserID:         user.UserID,
		Message:        "Hi there",
	})
	require.NoError(t, err)
	// Identical profiles share interests, so the opener leans on them.
	assert.Equal(t, conversation.ApproachSharedInterest, resp.Approach)
}

func TestChatRejectsOutsiders(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "Ada")
	match := createTestUser(t, svc, "Bayo")
	outsider := createTestUser(t, svc, "Zara")

	state, err := svc.StartConversation(ctx, &StartConversationDTO{UserID: user.UserID, MatchUserID: match.UserID})
	require.NoError(t, err)

	_, err = svc.Chat(ctx, &ChatDTO{
		ConversationID: state.ID,
		UserID:         outsider.UserID,
		Message:        "let me in",
	})
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = svc.Chat(ctx, &ChatDTO{
		ConversationID: "missing",
		UserID:         user.UserID,
		Message:        "anyone home?",
	})
	assert.ErrorIs(t, err, conversation.ErrConversationNotFound)
}

func TestStarters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "Ada")
	match := createTestUser(t, svc, "Bayo")

	state, err := svc.StartConversation(ctx, &StartConversationDTO{UserID: user.UserID, MatchUserID: match.UserID})
	require.NoError(t, err)

	resp, err := svc.Starters(ctx, state.ID, &StartersDTO{Count: 3})
	require.NoError(t, err)
	assert.Len(t, resp.Starters, 3)
	assert.True(t, resp.UsedFallback)
}

func TestGetConversationViews(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "Ada")
	match := createTestUser(t, svc, "Bayo")

	state, err := svc.StartConversation(ctx, &StartConversationDTO{UserID: user.UserID, MatchUserID: match.UserID})
	require.NoError(t, err)

	_, err = svc.Chat(ctx, &ChatDTO{
		ConversationID: state.ID,
		UserID:         user.UserID,
		Message:        "Found any good hiking trails lately?",
	})
	require.NoError(t, err)

	summary, err := svc.GetConversation(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, state.ID, summary.ConversationID)
	assert.Equal(t, 2, summary.TotalMessages)

	messages, err := svc.GetMessages(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, messages.Total)

	analysis, err := svc.GetAnalysis(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.EngagementLow, analysis.Engagement)
	assert.Contains(t, analysis.Topics, "hobbies")
}

func TestAnalyzeBehavior(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.AnalyzeBehavior(context.Background(), &AnalyzeBehaviorDTO{
		Messages: []string{"haha that's hilarious", "why do you think that works?", "yes definitely"},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.BehaviorSignals, "humorous")
}

func TestGetPreferences(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user := createTestUser(t, svc, "Ada")

	prefs, err := svc.GetPreferences(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"hiking", "cooking"}, prefs.Hobbies)
	require.NotNil(t, prefs.AgeRange)
	assert.Equal(t, 22, prefs.AgeRange.Min)
}
