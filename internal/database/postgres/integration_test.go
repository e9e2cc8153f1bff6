package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

func TestHashUserAction(t *testing.T) {
	a := hashUserAction("user-1", SpinLockAction)
	b := hashUserAction("user-1", SpinLockAction)
	c := hashUserAction("user-2", SpinLockAction)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.GreaterOrEqual(t, a, int64(0))
	assert.GreaterOrEqual(t, c, int64(0))
}

func TestWheelConfigRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewWheelConfigRepository(pool)
	householdID := uuid.NewString()

	t.Run("missing config is nil", func(t *testing.T) {
		cfg, err := repo.GetConfig(ctx, householdID)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("concurrent default creation yields one row", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cfg, err := repo.CreateDefaultConfig(ctx, domain.DefaultWheelConfig(householdID))
				assert.NoError(t, err)
				if cfg != nil {
					assert.Equal(t, domain.DefaultDailyLimit, cfg.DailyLimit)
				}
			}()
		}
		wg.Wait()

		var rows int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM wheel_configs WHERE household_id = $1", householdID).Scan(&rows))
		assert.Equal(t, 1, rows)
	})

	t.Run("save overwrites", func(t *testing.T) {
		saved, err := repo.SaveConfig(ctx, domain.WheelConfig{
			HouseholdID:   householdID,
			Enabled:       false,
			DailyLimit:    5,
			Probabilities: domain.BaseProbabilities{DoublePoints: 40, Avatars: 20, Points: 20},
			CustomMirror:  20,
		})
		require.NoError(t, err)
		assert.False(t, saved.Enabled)
		assert.Equal(t, 5, saved.DailyLimit)
		assert.InDelta(t, 40.0, saved.Probabilities.DoublePoints, 1e-9)

		cfg, err := repo.GetConfig(ctx, householdID)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.DailyLimit)
	})

	t.Run("custom reward lifecycle", func(t *testing.T) {
		desc := "Pick the film"
		first := &domain.CustomReward{ID: uuid.NewString(), HouseholdID: householdID, Name: "Movie night", Description: &desc, Icon: "🎬", Probability: 12.5}
		second := &domain.CustomReward{ID: uuid.NewString(), HouseholdID: householdID, Name: "Extra pause", Icon: "☕", Probability: 7.5}
		require.NoError(t, repo.CreateCustomReward(ctx, first))
		require.NoError(t, repo.CreateCustomReward(ctx, second))
		assert.False(t, first.CreatedAt.IsZero())

		rewards, err := repo.ListCustomRewards(ctx, householdID)
		require.NoError(t, err)
		require.Len(t, rewards, 2)
		assert.Equal(t, first.ID, rewards[0].ID)
		require.NotNil(t, rewards[0].Description)
		assert.Equal(t, desc, *rewards[0].Description)
		assert.Nil(t, rewards[1].Description)

		second.Name = "Long pause"
		require.NoError(t, repo.UpdateCustomReward(ctx, *second))
		got, err := repo.GetCustomReward(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Long pause", got.Name)

		require.NoError(t, repo.DeleteCustomReward(ctx, householdID, first.ID))
		assert.ErrorIs(t, repo.DeleteCustomReward(ctx, householdID, first.ID), domain.ErrCustomRewardNotFound)
		assert.ErrorIs(t, repo.DeleteCustomReward(ctx, uuid.NewString(), second.ID), domain.ErrCustomRewardNotFound)

		missing, err := repo.GetCustomReward(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestSpinRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewSpinRepository(pool)
	householdID := uuid.NewString()
	userID := uuid.NewString()
	insertProfile(t, pool, userID, householdID, "member", 100)

	t.Run("commit records spin and applies reward", func(t *testing.T) {
		tx, err := repo.BeginSpinTx(ctx, userID)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		record := &domain.SpinRecord{
			UserID:      userID,
			HouseholdID: householdID,
			TaskID:      "task-1",
			RewardType:  domain.RewardPoints,
			RewardValue: domain.RewardValue{Points: 25},
			SpunAt:      time.Now(),
		}
		require.NoError(t, tx.RecordSpin(ctx, record))
		assert.NotZero(t, record.ID)

		total, err := tx.ApplyPointsDelta(ctx, userID, 25)
		require.NoError(t, err)
		assert.Equal(t, 125, total)
		require.NoError(t, tx.SetAvatar(ctx, userID, "🦊"))
		require.NoError(t, tx.Commit(ctx))

		spins, err := repo.ListSpins(ctx, userID, householdID, 10)
		require.NoError(t, err)
		require.Len(t, spins, 1)
		assert.Equal(t, domain.RewardPoints, spins[0].RewardType)
		assert.Equal(t, 25, spins[0].RewardValue.Points)

		profile, err := NewProfileRepository(pool).GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 125, profile.TotalPoints)
		assert.Equal(t, "🦊", profile.AvatarEmoji)
	})

	t.Run("rollback discards spin", func(t *testing.T) {
		before, err := repo.CountSpinsSince(ctx, userID, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		tx, err := repo.BeginSpinTx(ctx, userID)
		require.NoError(t, err)
		require.NoError(t, tx.RecordSpin(ctx, &domain.SpinRecord{
			UserID: userID, HouseholdID: householdID, RewardType: domain.RewardAvatar, SpunAt: time.Now(),
		}))
		_, err = tx.ApplyPointsDelta(ctx, uuid.NewString(), 10)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		require.NoError(t, tx.Rollback(ctx))

		after, err := repo.CountSpinsSince(ctx, userID, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("advisory lock serialises quota checks", func(t *testing.T) {
		racer := uuid.NewString()
		insertProfile(t, pool, racer, householdID, "member", 0)
		const limit = 3
		var (
			wg        sync.WaitGroup
			successes atomic.Int32
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tx, err := repo.BeginSpinTx(ctx, racer)
				if !assert.NoError(t, err) {
					return
				}
				defer repository.SafeRollback(ctx, tx)

				used, err := tx.CountSpinsSince(ctx, racer, time.Now().Add(-time.Hour))
				if !assert.NoError(t, err) || used >= limit {
					return
				}
				assert.NoError(t, tx.RecordSpin(ctx, &domain.SpinRecord{
					UserID: racer, HouseholdID: householdID, RewardType: domain.RewardCustom, SpunAt: time.Now(),
				}))
				if assert.NoError(t, tx.Commit(ctx)) {
					successes.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(limit), successes.Load())
		n, err := repo.CountSpinsSince(ctx, racer, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, limit, n)
	})

	t.Run("concurrent point deltas are not lost", func(t *testing.T) {
		target := uuid.NewString()
		const start = 50
		insertProfile(t, pool, target, householdID, "member", start)

		const writers = 24
		var wg sync.WaitGroup
		want := start
		for i := 0; i < writers; i++ {
			delta := i + 1
			want += delta
			wg.Add(1)
			go func(spinWriter bool) {
				defer wg.Done()
				if spinWriter {
					// A different lock key keeps spin transactions from queueing on each other
					tx, err := repo.BeginSpinTx(ctx, uuid.NewString())
					if !assert.NoError(t, err) {
						return
					}
					defer repository.SafeRollback(ctx, tx)
					_, err = tx.ApplyPointsDelta(ctx, target, delta)
					if assert.NoError(t, err) {
						assert.NoError(t, tx.Commit(ctx))
					}
					return
				}

				tx, err := pool.Begin(ctx)
				if !assert.NoError(t, err) {
					return
				}
				defer repository.SafeRollback(ctx, tx)
				_, err = addPoints(ctx, tx, target, delta)
				if assert.NoError(t, err) {
					assert.NoError(t, tx.Commit(ctx))
				}
			}(i%2 == 0)
		}
		wg.Wait()

		profile, err := NewProfileRepository(pool).GetProfile(ctx, target)
		require.NoError(t, err)
		assert.Equal(t, want, profile.TotalPoints)
	})
}

func TestProfileAndSubscriptionRepositories_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	householdID := uuid.NewString()
	adminID := uuid.NewString()
	insertProfile(t, pool, adminID, householdID, "admin", 0)

	profiles := NewProfileRepository(pool)
	p, err := profiles.GetProfile(ctx, adminID)
	require.NoError(t, err)
	assert.Equal(t, householdID, p.HouseholdID)
	assert.True(t, p.IsAdmin())

	missing, err := profiles.GetProfile(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = pool.Exec(ctx, "INSERT INTO tasks (task_id, household_id, points) VALUES ('task-dishes', $1, 15)", householdID)
	require.NoError(t, err)
	points, found, err := profiles.GetTaskPoints(ctx, "task-dishes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 15, points)
	_, found, err = profiles.GetTaskPoints(ctx, "task-unknown")
	require.NoError(t, err)
	assert.False(t, found)

	subs := NewSubscriptionRepository(pool)
	sub, err := subs.GetHouseholdSubscription(ctx, householdID)
	require.NoError(t, err)
	assert.Nil(t, sub)

	_, err = pool.Exec(ctx, "INSERT INTO household_subscriptions (household_id, plan, status) VALUES ($1, 'premium', 'active')", householdID)
	require.NoError(t, err)
	sub, err = subs.GetHouseholdSubscription(ctx, householdID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanPremium, sub.Plan)
	assert.True(t, sub.Status.IsActive())
}
