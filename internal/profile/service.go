// internal/profile/service.go

package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
	"github.com/tundeajayi/sparkmatch-backend/internal/preferences"
)

// Service defines profile business operations
type Service interface {
	CreateProfile(ctx context.Context, p *Profile) (*Profile, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) (*Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
	Candidates(ctx context.Context, excludeUserID string, limit int) ([]matching.CandidateProfile, error)
}

type service struct {
	repo Repository
}

// NewService creates a new profile service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	if p.UserID == "" {
		p.UserID = uuid.New().String()
	}
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetProfileByUserID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProfile(ctx context.Context, userID string) error {
	return s.repo.DeleteProfile(ctx, userID)
}

// Candidates loads other users' profiles in the shape the matching
// engine consumes.
func (s *service) Candidates(ctx context.Context, excludeUserID string, limit int) ([]matching.CandidateProfile, error) {
	profiles, err := s.repo.ListCandidates(ctx, excludeUserID, limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]matching.CandidateProfile, 0, len(profiles))
	for _, p := range profiles {
		candidates = append(candidates, p.Candidate())
	}
	return candidates, nil
}

// validateProfile reuses the preference builder's rules so stored rows
// always score cleanly.
func validateProfile(p *Profile) error {
	input := preferences.RawInput{
		Hobbies:          p.Hobbies,
		MusicGenres:      p.MusicGenres,
		PersonalityTypes: p.PersonalityTypes,
		BehaviorSignals:  p.BehaviorSignals,
		Lifestyle:        p.Lifestyle,
		DealBreakers:     p.DealBreakers,
		MustHaves:        p.MustHaves,
	}
	if p.AgeRangeMin > 0 || p.AgeRangeMax > 0 {
		input.AgeRange = &matching.AgeRange{Min: p.AgeRangeMin, Max: p.AgeRangeMax}
	}

	result := preferences.Build(input)
	if err := preferences.Validate(&result.Profile); err != nil {
		return fmt.Errorf("invalid profile preferences: %w", err)
	}
	return nil
}
