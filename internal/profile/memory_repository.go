// internal/profile/memory_repository.go

package profile

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryRepository is an in-memory Repository used when no database is
// configured, and in tests.
type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{profiles: make(map[string]*Profile)}
}

func (r *memoryRepository) CreateProfile(ctx context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[p.UserID]; ok {
		return ErrProfileExists
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *memoryRepository) GetProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memoryRepository) UpdateProfile(ctx context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[p.UserID]
	if !ok {
		return ErrProfileNotFound
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()

	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *memoryRepository) DeleteProfile(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[userID]; !ok {
		return ErrProfileNotFound
	}
	delete(r.profiles, userID)
	return nil
}

func (r *memoryRepository) ListCandidates(ctx context.Context, excludeUserID string, limit int) ([]*Profile, error) {
	if limit <= 0 {
		limit = 50
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Profile
	for id, p := range r.profiles {
		if id == excludeUserID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
