package repository

import (
	"context"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

// Subscription reads household billing state
type Subscription interface {
	// GetHouseholdSubscription returns nil, nil when the household has no billing row
	GetHouseholdSubscription(ctx context.Context, householdID string) (*domain.HouseholdSubscription, error)
}
