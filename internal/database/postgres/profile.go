package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// ProfileRepository reads member profiles and task values
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) repository.Profile {
	return &ProfileRepository{db: db}
}

// GetProfile returns the member's profile, or nil if none exists
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var (
		p    domain.Profile
		role string
	)
	err := r.db.QueryRow(ctx, SQLGetProfile, userID).Scan(
		&p.UserID,
		&p.HouseholdID,
		&p.DisplayName,
		&p.AvatarEmoji,
		&p.TotalPoints,
		&role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(ErrMsgFailedToGetProfile, err)
	}
	p.Role = domain.Role(role)
	return &p, nil
}

// GetTaskPoints returns the task's point value and whether the task exists
func (r *ProfileRepository) GetTaskPoints(ctx context.Context, taskID string) (int, bool, error) {
	var points int
	err := r.db.QueryRow(ctx, SQLGetTaskPoints, taskID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, storeErr(ErrMsgFailedToGetTaskPoints, err)
	}
	return points, true, nil
}

// addPoints atomically increments the member's total and returns the new value
func addPoints(ctx context.Context, q querier, userID string, delta int) (int, error) {
	var total int
	err := q.QueryRow(ctx, SQLAddPoints, userID, delta).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProfileNotFound
		}
		return 0, storeErr(ErrMsgFailedToAddPoints, err)
	}
	return total, nil
}
