package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChoreWheel_Go/internal/database/postgres"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// Repositories holds the postgres implementations used by the wheel services
type Repositories struct {
	WheelConfig  repository.WheelConfig
	Spin         repository.Spin
	Profile      repository.Profile
	Subscription repository.Subscription
}

// InitializeRepositories creates all repository implementations over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		WheelConfig:  postgres.NewWheelConfigRepository(dbPool),
		Spin:         postgres.NewSpinRepository(dbPool),
		Profile:      postgres.NewProfileRepository(dbPool),
		Subscription: postgres.NewSubscriptionRepository(dbPool),
	}
}
