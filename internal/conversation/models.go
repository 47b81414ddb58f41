package conversation

import (
	"time"
)

// Message is a single chat message inside a conversation.
type Message struct {
	ID            string    `json:"message_id"`
	SenderID      string    `json:"sender_id"`
	ReceiverID    string    `json:"receiver_id"`
	Content       string    `json:"content"`
	MessageType   string    `json:"message_type"`
	IsAIGenerated bool      `json:"is_ai_generated"`
	Timestamp     time.Time `json:"timestamp"`
}

// State is the full state of one conversation. It is owned by its store;
// callers receive copies and never share the backing slices.
type State struct {
	ID            string    `json:"conversation_id"`
	Participants  []string  `json:"participants"`
	Messages      []Message `json:"messages"`
	Tone          string    `json:"conversation_tone"`
	MatchUserID   string    `json:"match_user_id,omitempty"`
	LastActivity  time.Time `json:"last_activity"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasParticipant reports whether the given user takes part in the
// conversation.
func (s *State) HasParticipant(userID string) bool {
	for _, p := range s.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// EngagementSnapshot is the derived view of a conversation's activity,
// recomputed on demand and never persisted.
type EngagementSnapshot struct {
	Engagement         string   `json:"engagement"`
	ResponseTime       string   `json:"response_time"`
	Depth              string   `json:"conversation_depth"`
	Topics             []string `json:"topics_covered"`
	TotalMessages      int      `json:"total_messages"`
	AvgResponseMinutes float64  `json:"avg_response_time_minutes"`
	AvgMessageWords    float64  `json:"avg_message_length"`
	Suggestions        []string `json:"suggestions"`
}

// Summary is a condensed description of a conversation for listings.
type Summary struct {
	ConversationID string     `json:"conversation_id"`
	Participants   []string   `json:"participants"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	LastActivity   time.Time  `json:"last_activity"`
	TotalMessages  int        `json:"total_messages"`
	Tone           string     `json:"conversation_tone"`
	Engagement     string     `json:"engagement_level"`
	Topics         []string   `json:"topics_discussed"`
}

// Approach is a conversational strategy tag chosen by the selector.
type Approach string

const (
	ApproachQuestionBased  Approach = "question_based"
	ApproachComplimentBase Approach = "compliment_based"
	ApproachPlayfulTeasing Approach = "playful_teasing"
	ApproachSharedInterest Approach = "shared_interest"
	ApproachGeneral        Approach = "general"
)

// Engagement levels, response-time buckets, and depth labels.
const (
	EngagementLow    = "low"
	EngagementMedium = "medium"
	EngagementHigh   = "high"

	ResponseFast     = "fast"
	ResponseModerate = "moderate"
	ResponseSlow     = "slow"

	DepthShallow = "shallow"
	DepthDeep    = "deep"
)
