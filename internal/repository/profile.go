package repository

import (
	"context"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

// Profile reads household members and their tasks
type Profile interface {
	// GetProfile returns nil, nil when no profile exists
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	// GetTaskPoints returns the task's point value and whether the task exists
	GetTaskPoints(ctx context.Context, taskID string) (int, bool, error)
}
