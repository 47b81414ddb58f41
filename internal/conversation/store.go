package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation id does not exist
// in the store. A conversation with no messages yet is not an error.
var ErrConversationNotFound = errors.New("conversation not found")

// DefaultHistoryLimit is the number of most recent messages kept per
// conversation when no explicit limit is configured.
const DefaultHistoryLimit = 20

// Store persists conversation state. Implementations must make Append
// atomic with respect to the history limit: a reader never observes more
// than the configured number of messages.
type Store interface {
	Create(ctx context.Context, participants []string, matchUserID string) (*State, error)
	Get(ctx context.Context, conversationID string) (*State, error)
	Append(ctx context.Context, conversationID string, msg Message) (*State, error)
	SetTone(ctx context.Context, conversationID string, tone string) error
	Archive(ctx context.Context, conversationID string) error
	ActiveForUser(ctx context.Context, userID string) ([]*State, error)
	CleanupInactive(ctx context.Context, cutoff time.Duration) (int, error)
}

// MemoryStore is an in-memory Store safe for concurrent use.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*State
	historyLimit  int
	now           func() time.Time
}

// NewMemoryStore creates an empty in-memory store. A historyLimit of zero
// or less falls back to DefaultHistoryLimit.
func NewMemoryStore(historyLimit int) *MemoryStore {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &MemoryStore{
		conversations: make(map[string]*State),
		historyLimit:  historyLimit,
		now:           time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, participants []string, matchUserID string) (*State, error) {
	if len(participants) == 0 {
		return nil, errors.New("conversation needs at least one participant")
	}

	now := s.now()
	state := &State{
		ID:           uuid.New().String(),
		Participants: append([]string(nil), participants...),
		Messages:     []Message{},
		Tone:         "neutral",
		MatchUserID:  matchUserID,
		LastActivity: now,
		CreatedAt:    now,
	}

	s.mu.Lock()
	s.conversations[state.ID] = state
	s.mu.Unlock()

	return copyState(state), nil
}

func (s *MemoryStore) Get(ctx context.Context, conversationID string) (*State, error) {
	s.mu.RLock()
	state, ok := s.conversations[conversationID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrConversationNotFound
	}
	return copyState(state), nil
}

// Append adds a message and trims the history to the configured limit in
// the same critical section, so concurrent readers never see an oversized
// history.
func (s *MemoryStore) Append(ctx context.Context, conversationID string, msg Message) (*State, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.conversations[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}

	state.Messages = append(state.Messages, msg)
	if overflow := len(state.Messages) - s.historyLimit; overflow > 0 {
		state.Messages = append([]Message(nil), state.Messages[overflow:]...)
	}
	state.LastActivity = msg.Timestamp

	return copyState(state), nil
}

func (s *MemoryStore) SetTone(ctx context.Context, conversationID string, tone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.conversations[conversationID]
	if !ok {
		return ErrConversationNotFound
	}
	state.Tone = tone
	return nil
}

func (s *MemoryStore) Archive(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[conversationID]; !ok {
		return ErrConversationNotFound
	}
	delete(s.conversations, conversationID)
	return nil
}

func (s *MemoryStore) ActiveForUser(ctx context.Context, userID string) ([]*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*State
	for _, state := range s.conversations {
		if state.HasParticipant(userID) {
			out = append(out, copyState(state))
		}
	}
	return out, nil
}

// CleanupInactive removes conversations whose last activity is older than
// the cutoff and reports how many were removed.
func (s *MemoryStore) CleanupInactive(ctx context.Context, cutoff time.Duration) (int, error) {
	deadline := s.now().Add(-cutoff)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, state := range s.conversations {
		if state.LastActivity.Before(deadline) {
			delete(s.conversations, id)
			removed++
		}
	}
	return removed, nil
}

func copyState(state *State) *State {
	cp := *state
	cp.Participants = append([]string(nil), state.Participants...)
	cp.Messages = append([]Message(nil), state.Messages...)
	return &cp
}
