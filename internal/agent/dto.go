// internal/agent/dto.go

package agent

import (
	"github.com/tundeajayi/sparkmatch-backend/internal/conversation"
	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
)

// CreateUserDTO is the payload for registering a user profile.
type CreateUserDTO struct {
	Name             string   `json:"name" validate:"required,min=2,max=100"`
	Age              int      `json:"age" validate:"required,min=18,max=100"`
	Location         string   `json:"location" validate:"max=200"`
	Bio              string   `json:"bio" validate:"max=2000"`
	Photos           []string `json:"photos" validate:"max=10"`
	Hobbies          []string `json:"hobbies"`
	MusicGenres      []string `json:"music_genres"`
	PersonalityTypes []string `json:"personality_types"`
	BehaviorSignals  []string `json:"behavior_signals"`
	Lifestyle        []string `json:"lifestyle_preferences"`
	DealBreakers     []string `json:"deal_breakers"`
	MustHaves        []string `json:"must_haves"`
	AgeRangeMin      int      `json:"age_range_min"`
	AgeRangeMax      int      `json:"age_range_max"`
}

// AnalyzeMatchesDTO requests a ranked match list for a user.
type AnalyzeMatchesDTO struct {
	UserID string `json:"user_id" validate:"required"`
	Limit  int    `json:"limit" validate:"min=0,max=100"`
}

// AnalyzeMatchesResponse carries the ranked analyses.
type AnalyzeMatchesResponse struct {
	UserID  string                    `json:"user_id"`
	Matches []*matching.MatchAnalysis `json:"matches"`
	Total   int                       `json:"total"`
}

// StartConversationDTO opens a conversation with a match.
type StartConversationDTO struct {
	UserID      string `json:"user_id" validate:"required"`
	MatchUserID string `json:"match_user_id" validate:"required"`
}

// ChatDTO is an incoming chat message to respond to.
type ChatDTO struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	UserID         string `json:"user_id" validate:"required"`
	Message        string `json:"message" validate:"required,max=2000"`
	FlirtingStyle  string `json:"flirting_style"`
}

// ChatResponse is the generated reply with its reasoning context.
type ChatResponse struct {
	ConversationID string                           `json:"conversation_id"`
	Reply          string                           `json:"reply"`
	Approach       conversation.Approach            `json:"approach"`
	UsedFallback   bool                             `json:"used_fallback"`
	Engagement     *conversation.EngagementSnapshot `json:"engagement"`
}

// StartersDTO requests conversation openers for a conversation.
type StartersDTO struct {
	FlirtingStyle string `json:"flirting_style"`
	Count         int    `json:"count" validate:"min=0,max=10"`
}

// StartersResponse carries generated openers.
type StartersResponse struct {
	ConversationID string   `json:"conversation_id"`
	Starters       []string `json:"starters"`
	UsedFallback   bool     `json:"used_fallback"`
}

// AnalyzeBehaviorDTO infers behavior signals from message samples.
type AnalyzeBehaviorDTO struct {
	UserID   string   `json:"user_id"`
	Messages []string `json:"messages" validate:"required,min=1"`
	Bio      string   `json:"bio"`
}

// AnalyzeBehaviorResponse lists the inferred signals.
type AnalyzeBehaviorResponse struct {
	UserID          string   `json:"user_id,omitempty"`
	BehaviorSignals []string `json:"behavior_signals"`
}

// MessagesResponse lists a conversation's recent messages.
type MessagesResponse struct {
	ConversationID string                 `json:"conversation_id"`
	Messages       []conversation.Message `json:"messages"`
	Total          int                    `json:"total"`
}
