package entitlement

import (
	"context"
	"fmt"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/logger"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// Service answers whether a household's plan unlocks the mystery wheel.
// Results are never cached: a downgrade takes effect on the next spin.
type Service interface {
	CheckEntitlement(ctx context.Context, householdID string) (domain.Entitlement, error)
	// Authorize returns nil when the household may spin, otherwise
	// domain.ErrNotEntitled or domain.ErrSubscriptionInactive.
	Authorize(ctx context.Context, householdID string) error
}

type service struct {
	repo repository.Subscription
}

// NewService creates an entitlement service
func NewService(repo repository.Subscription) Service {
	return &service{repo: repo}
}

func (s *service) CheckEntitlement(ctx context.Context, householdID string) (domain.Entitlement, error) {
	sub, err := s.repo.GetHouseholdSubscription(ctx, householdID)
	if err != nil {
		return domain.Entitlement{}, fmt.Errorf(ErrFmtLoadSubscription, err)
	}

	// No billing row means the household never upgraded
	if sub == nil {
		return domain.Entitlement{Plan: domain.PlanFree, Status: domain.StatusInactive, Active: false}, nil
	}

	return domain.Entitlement{
		Plan:   sub.Plan,
		Status: sub.Status,
		Active: sub.Status.IsActive(),
	}, nil
}

func (s *service) Authorize(ctx context.Context, householdID string) error {
	ent, err := s.CheckEntitlement(ctx, householdID)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx).With("household_id", householdID, "plan", ent.Plan, "status", ent.Status)

	if !ent.Plan.IsPaid() {
		log.Info(LogMsgEntitlementDenied)
		return fmt.Errorf("%w: plan %q", domain.ErrNotEntitled, ent.Plan)
	}
	if !ent.Active {
		log.Info(LogMsgEntitlementDenied)
		return fmt.Errorf("%w: status %q", domain.ErrSubscriptionInactive, ent.Status)
	}
	return nil
}
