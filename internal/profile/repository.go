// internal/profile/repository.go

package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines the profile repository interface
type Repository interface {
	CreateProfile(ctx context.Context, p *Profile) error
	GetProfileByUserID(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) error
	DeleteProfile(ctx context.Context, userID string) error
	ListCandidates(ctx context.Context, excludeUserID string, limit int) ([]*Profile, error)
}

// postgresRepository implements Repository using PostgreSQL
type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateProfile(ctx context.Context, p *Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO profiles (
			user_id, name, age, location, bio, photos,
			hobbies, music_genres, personality_types, behavior_signals,
			lifestyle, deal_breakers, must_haves,
			age_range_min, age_range_max, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13,
			$14, $15, $16, $17
		)`

	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Age, p.Location, p.Bio, pq.Array(p.Photos),
		pq.Array(p.Hobbies), pq.Array(p.MusicGenres), pq.Array(p.PersonalityTypes), pq.Array(p.BehaviorSignals),
		pq.Array(p.Lifestyle), pq.Array(p.DealBreakers), pq.Array(p.MustHaves),
		p.AgeRangeMin, p.AgeRangeMax, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrProfileExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile
	query := `
		SELECT
			user_id, name, age, location, bio, photos,
			hobbies, music_genres, personality_types, behavior_signals,
			lifestyle, deal_breakers, must_haves,
			age_range_min, age_range_max, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, p *Profile) error {
	p.UpdatedAt = time.Now()

	query := `
		UPDATE profiles SET
			name = $2, age = $3, location = $4, bio = $5, photos = $6,
			hobbies = $7, music_genres = $8, personality_types = $9, behavior_signals = $10,
			lifestyle = $11, deal_breakers = $12, must_haves = $13,
			age_range_min = $14, age_range_max = $15, updated_at = $16
		WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Age, p.Location, p.Bio, pq.Array(p.Photos),
		pq.Array(p.Hobbies), pq.Array(p.MusicGenres), pq.Array(p.PersonalityTypes), pq.Array(p.BehaviorSignals),
		pq.Array(p.Lifestyle), pq.Array(p.DealBreakers), pq.Array(p.MustHaves),
		p.AgeRangeMin, p.AgeRangeMax, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *postgresRepository) DeleteProfile(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ListCandidates returns profiles other than the given user, most
// recently updated first.
func (r *postgresRepository) ListCandidates(ctx context.Context, excludeUserID string, limit int) ([]*Profile, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT
			user_id, name, age, location, bio, photos,
			hobbies, music_genres, personality_types, behavior_signals,
			lifestyle, deal_breakers, must_haves,
			age_range_min, age_range_max, created_at, updated_at
		FROM profiles
		WHERE user_id != $1
		ORDER BY updated_at DESC
		LIMIT $2`

	var profiles []*Profile
	if err := r.db.SelectContext(ctx, &profiles, query, excludeUserID, limit); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return profiles, nil
}
