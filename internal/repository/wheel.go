package repository

import (
	"context"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

// WheelConfig persists household wheel settings and custom rewards
type WheelConfig interface {
	// GetConfig returns nil, nil when the household has no configuration
	GetConfig(ctx context.Context, householdID string) (*domain.WheelConfig, error)
	// CreateDefaultConfig inserts cfg unless a row already exists, then returns the stored row
	CreateDefaultConfig(ctx context.Context, cfg domain.WheelConfig) (*domain.WheelConfig, error)
	SaveConfig(ctx context.Context, cfg domain.WheelConfig) (*domain.WheelConfig, error)

	// ListCustomRewards returns rewards ordered by creation time, then id
	ListCustomRewards(ctx context.Context, householdID string) ([]domain.CustomReward, error)
	// GetCustomReward returns nil, nil when the reward does not exist
	GetCustomReward(ctx context.Context, rewardID string) (*domain.CustomReward, error)
	CreateCustomReward(ctx context.Context, reward *domain.CustomReward) error
	UpdateCustomReward(ctx context.Context, reward domain.CustomReward) error
	DeleteCustomReward(ctx context.Context, householdID, rewardID string) error
}

// Spin persists spin history
type Spin interface {
	SpinCounter
	ListSpins(ctx context.Context, userID, householdID string, limit int) ([]domain.SpinRecord, error)
	// BeginSpinTx opens a transaction and takes the user's spin lock for its lifetime
	BeginSpinTx(ctx context.Context, userID string) (SpinTx, error)
}

