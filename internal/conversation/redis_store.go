package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	conversationKeyPrefix = "conversation:"
	userIndexKeyPrefix    = "user_conversations:"
	lockStripes           = 32
)

// RedisStore persists conversation state as JSON blobs in Redis. A striped
// in-process mutex serializes Append per conversation so the
// read-modify-write stays atomic within a single instance.
type RedisStore struct {
	client       *redis.Client
	historyLimit int
	ttl          time.Duration
	locks        [lockStripes]sync.Mutex
}

// NewRedisStore creates a Redis-backed store. A historyLimit of zero or
// less falls back to DefaultHistoryLimit. ttl of zero means keys never
// expire.
func NewRedisStore(client *redis.Client, historyLimit int, ttl time.Duration) *RedisStore {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &RedisStore{
		client:       client,
		historyLimit: historyLimit,
		ttl:          ttl,
	}
}

func (s *RedisStore) lockFor(conversationID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(conversationID))
	return &s.locks[h.Sum32()%lockStripes]
}

func (s *RedisStore) Create(ctx context.Context, participants []string, matchUserID string) (*State, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("conversation needs at least one participant")
	}

	now := time.Now()
	state := &State{
		ID:           uuid.New().String(),
		Participants: append([]string(nil), participants...),
		Messages:     []Message{},
		Tone:         "neutral",
		MatchUserID:  matchUserID,
		LastActivity: now,
		CreatedAt:    now,
	}

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	for _, userID := range state.Participants {
		if err := s.client.SAdd(ctx, userIndexKeyPrefix+userID, state.ID).Err(); err != nil {
			return nil, fmt.Errorf("failed to index conversation for user %s: %w", userID, err)
		}
	}
	return state, nil
}

func (s *RedisStore) Get(ctx context.Context, conversationID string) (*State, error) {
	return s.load(ctx, conversationID)
}

func (s *RedisStore) Append(ctx context.Context, conversationID string, msg Message) (*State, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	lock := s.lockFor(conversationID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.load(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	state.Messages = append(state.Messages, msg)
	if overflow := len(state.Messages) - s.historyLimit; overflow > 0 {
		state.Messages = state.Messages[overflow:]
	}
	state.LastActivity = msg.Timestamp

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *RedisStore) SetTone(ctx context.Context, conversationID string, tone string) error {
	lock := s.lockFor(conversationID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.load(ctx, conversationID)
	if err != nil {
		return err
	}
	state.Tone = tone
	return s.save(ctx, state)
}

func (s *RedisStore) Archive(ctx context.Context, conversationID string) error {
	state, err := s.load(ctx, conversationID)
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, conversationKeyPrefix+conversationID).Err(); err != nil {
		return fmt.Errorf("failed to delete conversation %s: %w", conversationID, err)
	}
	for _, userID := range state.Participants {
		if err := s.client.SRem(ctx, userIndexKeyPrefix+userID, conversationID).Err(); err != nil {
			return fmt.Errorf("failed to unindex conversation for user %s: %w", userID, err)
		}
	}
	return nil
}

func (s *RedisStore) ActiveForUser(ctx context.Context, userID string) ([]*State, error) {
	ids, err := s.client.SMembers(ctx, userIndexKeyPrefix+userID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for user %s: %w", userID, err)
	}

	var out []*State
	for _, id := range ids {
		state, err := s.load(ctx, id)
		if err == ErrConversationNotFound {
			// Index entry outlived the conversation key; drop it.
			s.client.SRem(ctx, userIndexKeyPrefix+userID, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, state)
	}
	return out, nil
}

func (s *RedisStore) CleanupInactive(ctx context.Context, cutoff time.Duration) (int, error) {
	deadline := time.Now().Add(-cutoff)

	removed := 0
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, conversationKeyPrefix+"*", 100).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to scan conversations: %w", err)
		}
		for _, key := range keys {
			id := key[len(conversationKeyPrefix):]
			state, err := s.load(ctx, id)
			if err == ErrConversationNotFound {
				continue
			}
			if err != nil {
				return removed, err
			}
			if state.LastActivity.Before(deadline) {
				if err := s.Archive(ctx, id); err != nil && err != ErrConversationNotFound {
					return removed, err
				}
				removed++
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return removed, nil
}

func (s *RedisStore) save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation %s: %w", state.ID, err)
	}
	if err := s.client.Set(ctx, conversationKeyPrefix+state.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation %s: %w", state.ID, err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, conversationID string) (*State, error) {
	data, err := s.client.Get(ctx, conversationKeyPrefix+conversationID).Bytes()
	if err == redis.Nil {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation %s: %w", conversationID, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode conversation %s: %w", conversationID, err)
	}
	return &state, nil
}
