package entitlement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

type fakeSubscriptionRepo struct {
	subs map[string]*domain.HouseholdSubscription
	err  error
}

func (f *fakeSubscriptionRepo) GetHouseholdSubscription(ctx context.Context, householdID string) (*domain.HouseholdSubscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subs[householdID], nil
}

func TestAuthorize(t *testing.T) {
	repo := &fakeSubscriptionRepo{subs: map[string]*domain.HouseholdSubscription{
		"pro-active":       {HouseholdID: "pro-active", Plan: domain.PlanPro, Status: domain.StatusActive},
		"premium-active":   {HouseholdID: "premium-active", Plan: domain.PlanPremium, Status: domain.StatusActive},
		"pro-past-due":     {HouseholdID: "pro-past-due", Plan: domain.PlanPro, Status: domain.StatusPastDue},
		"premium-canceled": {HouseholdID: "premium-canceled", Plan: domain.PlanPremium, Status: domain.StatusCanceled},
		"free-active":      {HouseholdID: "free-active", Plan: domain.PlanFree, Status: domain.StatusActive},
	}}
	svc := NewService(repo)

	tests := []struct {
		name      string
		household string
		wantErr   error
	}{
		{"active pro plan may spin", "pro-active", nil},
		{"active premium plan may spin", "premium-active", nil},
		{"past due pro plan is inactive", "pro-past-due", domain.ErrSubscriptionInactive},
		{"canceled premium plan is inactive", "premium-canceled", domain.ErrSubscriptionInactive},
		{"free plan is not entitled", "free-active", domain.ErrNotEntitled},
		{"missing billing row is free", "unknown", domain.ErrNotEntitled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authorize(context.Background(), tt.household)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckEntitlement_MissingRowIsFree(t *testing.T) {
	svc := NewService(&fakeSubscriptionRepo{})

	ent, err := svc.CheckEntitlement(context.Background(), "house-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PlanFree, ent.Plan)
	assert.False(t, ent.Active)
}

func TestCheckEntitlement_StoreError(t *testing.T) {
	storeErr := errors.Join(domain.ErrStoreUnavailable, errors.New("connection refused"))
	svc := NewService(&fakeSubscriptionRepo{err: storeErr})

	err := svc.Authorize(context.Background(), "house-1")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotEntitled)
}

func TestAuthorize_ReflectsDowngradeImmediately(t *testing.T) {
	repo := &fakeSubscriptionRepo{subs: map[string]*domain.HouseholdSubscription{
		"house-1": {HouseholdID: "house-1", Plan: domain.PlanPro, Status: domain.StatusActive},
	}}
	svc := NewService(repo)

	require.NoError(t, svc.Authorize(context.Background(), "house-1"))

	repo.subs["house-1"] = &domain.HouseholdSubscription{HouseholdID: "house-1", Plan: domain.PlanFree, Status: domain.StatusActive}

	assert.ErrorIs(t, svc.Authorize(context.Background(), "house-1"), domain.ErrNotEntitled)
}
