package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// SubscriptionRepository reads household billing rows written by the billing webhook
type SubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *pgxpool.Pool) repository.Subscription {
	return &SubscriptionRepository{db: db}
}

// GetHouseholdSubscription returns the household's plan and status, or nil if none is stored
func (r *SubscriptionRepository) GetHouseholdSubscription(ctx context.Context, householdID string) (*domain.HouseholdSubscription, error) {
	var (
		sub    domain.HouseholdSubscription
		plan   string
		status string
	)
	err := r.db.QueryRow(ctx, SQLGetHouseholdSubscription, householdID).Scan(&sub.HouseholdID, &plan, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(ErrMsgFailedToGetSubscription, err)
	}
	sub.Plan = domain.Plan(plan)
	sub.Status = domain.SubscriptionStatus(status)
	return &sub, nil
}
