package wheel

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/event"
	"github.com/osse101/ChoreWheel_Go/internal/logger"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// EntitlementChecker gates spins on the household's plan
type EntitlementChecker interface {
	Authorize(ctx context.Context, householdID string) error
}

// Service runs spins and reports spin history
type Service interface {
	Spin(ctx context.Context, req domain.SpinRequest) (*domain.SpinResult, error)
	GetSpinHistory(ctx context.Context, userID, householdID string, limit int) (*domain.SpinHistory, error)
}

type service struct {
	entitlement EntitlementChecker
	configs     *ConfigStore
	spins       repository.Spin
	profiles    repository.Profile
	quota       *QuotaTracker
	selector    *Selector
	bus         event.Bus
}

// NewService wires the spin orchestrator. bus may be nil.
func NewService(
	entitlement EntitlementChecker,
	configs *ConfigStore,
	spins repository.Spin,
	profiles repository.Profile,
	quota *QuotaTracker,
	selector *Selector,
	bus event.Bus,
) Service {
	return &service{
		entitlement: entitlement,
		configs:     configs,
		spins:       spins,
		profiles:    profiles,
		quota:       quota,
		selector:    selector,
		bus:         bus,
	}
}

// Spin consumes one of the user's daily spins and applies the reward it lands on.
// The quota recount, spin insert and reward side effect share one transaction
// holding the user's spin lock, so concurrent requests cannot overspend the
// quota and a failed apply leaves no spin behind.
func (s *service) Spin(ctx context.Context, req domain.SpinRequest) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx).With("user_id", req.UserID, "household_id", req.HouseholdID, "task_id", req.TaskID)
	log.Debug(LogMsgSpinStarted)

	if err := s.entitlement.Authorize(ctx, req.HouseholdID); err != nil {
		return nil, err
	}

	snap, err := s.configs.Load(ctx, req.HouseholdID)
	if err != nil {
		return nil, err
	}
	cfg := snap.Config
	if !cfg.Enabled {
		log.Info(LogMsgSpinRejected, "reason", domain.ErrMsgConfigDisabled)
		return nil, domain.ErrConfigDisabled
	}

	// Unlocked pre-check so over-quota users skip selection work
	if _, err := s.quota.Check(ctx, req.UserID, cfg.DailyLimit); err != nil {
		if errors.Is(err, domain.ErrDailyLimitReached) {
			log.Info(LogMsgSpinRejected, "reason", domain.ErrMsgDailyLimitReached, "limit", cfg.DailyLimit)
		}
		return nil, err
	}

	categories := BuildCategories(cfg, snap.CustomRewards)
	segments := BuildSegments(categories)
	if len(segments) == 0 {
		return nil, domain.ErrConfigInvalid
	}

	sel, err := s.selector.Select(categories, segments, s.resolveTaskPoints(ctx, req))
	if err != nil {
		return nil, err
	}
	log.Debug(LogMsgRewardSelected, "reward_type", sel.Category.Type, "target_angle", sel.TargetAngle)

	tx, err := s.spins.BeginSpinTx(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtBeginSpin, err)
	}
	defer repository.SafeRollback(ctx, tx)

	used, err := s.quota.CheckWithin(ctx, tx, req.UserID, cfg.DailyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrDailyLimitReached) {
			log.Info(LogMsgSpinRejected, "reason", domain.ErrMsgDailyLimitReached, "limit", cfg.DailyLimit)
		}
		return nil, err
	}

	record := &domain.SpinRecord{
		UserID:      req.UserID,
		HouseholdID: req.HouseholdID,
		TaskID:      req.TaskID,
		RewardType:  sel.Category.Type,
		RewardValue: sel.Value,
		SpunAt:      s.quota.Now(),
	}
	if err := tx.RecordSpin(ctx, record); err != nil {
		return nil, fmt.Errorf(ErrFmtRecordSpin, err)
	}

	if err := ApplyReward(ctx, tx, req.UserID, record.RewardType, record.RewardValue); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrFmtCommitSpin, err)
	}

	remaining := cfg.DailyLimit - (used + 1)
	log.Info(LogMsgSpinCompleted, "reward_type", record.RewardType, "remaining_spins", remaining)

	s.publish(ctx, event.NewWheelSpinCompletedEvent(*record, remaining))

	return &domain.SpinResult{
		RewardType:     record.RewardType,
		RewardValue:    record.RewardValue,
		TargetAngle:    sel.TargetAngle,
		RemainingSpins: remaining,
	}, nil
}

// resolveTaskPoints prefers the caller's value, then the stored task, then the default.
// Lookup failures fall back rather than fail the spin.
func (s *service) resolveTaskPoints(ctx context.Context, req domain.SpinRequest) int {
	if req.TaskPoints != nil && *req.TaskPoints > 0 {
		return *req.TaskPoints
	}
	if s.profiles == nil || req.TaskID == "" {
		return domain.DefaultTaskPoints
	}

	points, found, err := s.profiles.GetTaskPoints(ctx, req.TaskID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgTaskLookupFailed, "task_id", req.TaskID, "error", err)
		return domain.DefaultTaskPoints
	}
	if !found || points <= 0 {
		return domain.DefaultTaskPoints
	}
	return points
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishError, "event_type", evt.Type, "error", err)
	}
}

// GetSpinHistory returns the caller's recent spins in a household and today's usage
func (s *service) GetSpinHistory(ctx context.Context, userID, householdID string, limit int) (*domain.SpinHistory, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	snap, err := s.configs.Peek(ctx, householdID)
	if err != nil {
		return nil, err
	}

	spins, err := s.spins.ListSpins(ctx, userID, householdID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListSpins, err)
	}

	used, err := s.quota.Used(ctx, s.spins, userID)
	if err != nil {
		return nil, err
	}

	if spins == nil {
		spins = []domain.SpinRecord{}
	}

	return &domain.SpinHistory{
		Spins:          spins,
		SpinsToday:     used,
		DailyLimit:     snap.Config.DailyLimit,
		RemainingSpins: Remaining(snap.Config.DailyLimit, used),
	}, nil
}
