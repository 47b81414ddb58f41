package conversation

import (
	"context"
	"log"
	"time"
)

// Scheduler runs periodic conversation maintenance.
type Scheduler struct {
	store            Store
	cleanupInterval  time.Duration
	inactivityCutoff time.Duration
}

// NewScheduler creates a scheduler that archives conversations inactive
// past the cutoff.
func NewScheduler(store Store, cleanupInterval, inactivityCutoff time.Duration) *Scheduler {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Hour
	}
	if inactivityCutoff <= 0 {
		inactivityCutoff = 24 * time.Hour
	}
	return &Scheduler{
		store:            store,
		cleanupInterval:  cleanupInterval,
		inactivityCutoff: inactivityCutoff,
	}
}

// Start launches the cleanup loop. It returns immediately; the loop stops
// when the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.runCleanup(ctx)
}

func (s *Scheduler) runCleanup(ctx context.Context) {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := s.store.CleanupInactive(ctx, s.inactivityCutoff)
			if err != nil {
				log.Printf("Conversation cleanup failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("Cleaned up %d inactive conversations", removed)
			}
		case <-ctx.Done():
			return
		}
	}
}
