package wheel

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/event"
	"github.com/osse101/ChoreWheel_Go/internal/logger"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
	"github.com/osse101/ChoreWheel_Go/internal/utils"
)

// ConfigService lets household members view the wheel and admins edit it
type ConfigService interface {
	GetWheel(ctx context.Context, userID, householdID string) (*domain.WheelOverview, error)
	SaveConfig(ctx context.Context, userID string, update domain.WheelConfigUpdate) (*domain.WheelConfig, error)
	CreateCustomReward(ctx context.Context, userID string, input domain.CustomRewardInput) (*domain.CustomReward, error)
	UpdateCustomReward(ctx context.Context, userID, rewardID string, input domain.CustomRewardInput) (*domain.CustomReward, error)
	DeleteCustomReward(ctx context.Context, userID, rewardID string) error
}

type configService struct {
	repo     repository.WheelConfig
	configs  *ConfigStore
	profiles repository.Profile
	bus      event.Bus
}

// NewConfigService creates the wheel admin service. bus may be nil.
func NewConfigService(repo repository.WheelConfig, configs *ConfigStore, profiles repository.Profile, bus event.Bus) ConfigService {
	return &configService{
		repo:     repo,
		configs:  configs,
		profiles: profiles,
		bus:      bus,
	}
}

func (s *configService) GetWheel(ctx context.Context, userID, householdID string) (*domain.WheelOverview, error) {
	if _, err := s.requireMember(ctx, userID, householdID); err != nil {
		return nil, err
	}

	snap, err := s.configs.Peek(ctx, householdID)
	if err != nil {
		return nil, err
	}

	categories := BuildCategories(snap.Config, snap.CustomRewards)
	customs := snap.CustomRewards
	if customs == nil {
		customs = []domain.CustomReward{}
	}

	return &domain.WheelOverview{
		Config:           snap.Config,
		CustomRewards:    customs,
		Segments:         BuildSegments(categories),
		TotalProbability: utils.RoundTo(TotalWeight(categories), 2),
	}, nil
}

// SaveConfig replaces the base settings. The base weights plus the current
// custom reward weights must total 100 within 0.01.
func (s *configService) SaveConfig(ctx context.Context, userID string, update domain.WheelConfigUpdate) (*domain.WheelConfig, error) {
	if _, err := s.requireAdmin(ctx, userID, update.HouseholdID); err != nil {
		return nil, err
	}

	if update.DailyLimit <= 0 {
		return nil, fmt.Errorf("%w: daily limit must be positive", domain.ErrInvalidInput)
	}
	p := update.Probabilities
	weights := []struct {
		name string
		w    float64
	}{
		{"double points", p.DoublePoints},
		{"avatar", p.Avatars},
		{"points", p.Points},
	}
	for _, bw := range weights {
		if err := validateWeight(bw.name, bw.w); err != nil {
			return nil, err
		}
	}

	customs, err := s.repo.ListCustomRewards(ctx, update.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListRewards, err)
	}
	customTotal := 0.0
	for _, c := range customs {
		customTotal += c.Probability
	}

	total := p.Total() + customTotal
	if math.Abs(total-domain.ProbabilityTotal) > domain.ProbabilityTotalTolerance {
		return nil, fmt.Errorf(ErrFmtProbabilityTotal, domain.ErrInvalidInput, domain.ProbabilityTotal, total)
	}

	saved, err := s.repo.SaveConfig(ctx, domain.WheelConfig{
		HouseholdID:   update.HouseholdID,
		Enabled:       update.Enabled,
		DailyLimit:    update.DailyLimit,
		Probabilities: p,
		CustomMirror:  utils.RoundTo(customTotal, 2),
	})
	if err != nil {
		return nil, fmt.Errorf(ErrFmtSaveConfig, err)
	}

	s.configs.Invalidate(update.HouseholdID)
	logger.FromContext(ctx).Info(LogMsgConfigSaved,
		"household_id", update.HouseholdID,
		"user_id", userID,
		"enabled", saved.Enabled,
		"daily_limit", saved.DailyLimit)
	s.publish(ctx, event.NewWheelConfigUpdatedEvent(update.HouseholdID, userID, event.ChangeConfigSaved))

	return saved, nil
}

func (s *configService) CreateCustomReward(ctx context.Context, userID string, input domain.CustomRewardInput) (*domain.CustomReward, error) {
	if _, err := s.requireAdmin(ctx, userID, input.HouseholdID); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListCustomRewards(ctx, input.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListRewards, err)
	}
	if len(existing) >= MaxCustomRewards {
		return nil, fmt.Errorf(ErrFmtTooManyRewards, domain.ErrInvalidInput, MaxCustomRewards)
	}

	reward := domain.CustomReward{
		ID:          uuid.NewString(),
		HouseholdID: input.HouseholdID,
		Probability: domain.DefaultCustomRewardWeight,
		CreatedBy:   userID,
	}
	if err := applyRewardInput(&reward, input); err != nil {
		return nil, err
	}
	if err := s.checkRewardTotal(ctx, reward, existing); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCustomReward(ctx, &reward); err != nil {
		return nil, fmt.Errorf(ErrFmtCustomRewardWrite, err)
	}

	s.configs.Invalidate(input.HouseholdID)
	logger.FromContext(ctx).Info(LogMsgRewardCreated, "household_id", input.HouseholdID, "reward_id", reward.ID, "user_id", userID)
	s.publish(ctx, event.NewWheelConfigUpdatedEvent(input.HouseholdID, userID, event.ChangeRewardCreated))

	return &reward, nil
}

func (s *configService) UpdateCustomReward(ctx context.Context, userID, rewardID string, input domain.CustomRewardInput) (*domain.CustomReward, error) {
	reward, err := s.loadReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if input.HouseholdID != "" && input.HouseholdID != reward.HouseholdID {
		return nil, fmt.Errorf(ErrFmtRewardWrongHouse, domain.ErrCustomRewardNotFound, rewardID)
	}
	if _, err := s.requireAdmin(ctx, userID, reward.HouseholdID); err != nil {
		return nil, err
	}

	updated := *reward
	if err := applyRewardInput(&updated, input); err != nil {
		return nil, err
	}
	if updated.Probability > reward.Probability {
		existing, err := s.repo.ListCustomRewards(ctx, reward.HouseholdID)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtListRewards, err)
		}
		if err := s.checkRewardTotal(ctx, updated, existing); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateCustomReward(ctx, updated); err != nil {
		return nil, fmt.Errorf(ErrFmtCustomRewardWrite, err)
	}

	s.configs.Invalidate(reward.HouseholdID)
	logger.FromContext(ctx).Info(LogMsgRewardUpdated, "household_id", reward.HouseholdID, "reward_id", rewardID, "user_id", userID)
	s.publish(ctx, event.NewWheelConfigUpdatedEvent(reward.HouseholdID, userID, event.ChangeRewardUpdated))

	return &updated, nil
}

func (s *configService) DeleteCustomReward(ctx context.Context, userID, rewardID string) error {
	reward, err := s.loadReward(ctx, rewardID)
	if err != nil {
		return err
	}
	if _, err := s.requireAdmin(ctx, userID, reward.HouseholdID); err != nil {
		return err
	}

	if err := s.repo.DeleteCustomReward(ctx, reward.HouseholdID, rewardID); err != nil {
		return fmt.Errorf(ErrFmtCustomRewardWrite, err)
	}

	s.configs.Invalidate(reward.HouseholdID)
	logger.FromContext(ctx).Info(LogMsgRewardDeleted, "household_id", reward.HouseholdID, "reward_id", rewardID, "user_id", userID)
	s.publish(ctx, event.NewWheelConfigUpdatedEvent(reward.HouseholdID, userID, event.ChangeRewardDeleted))

	return nil
}

// checkRewardTotal refuses a reward write that would push the household's
// weights above 100. Totals below 100 are allowed while admins rebalance.
func (s *configService) checkRewardTotal(ctx context.Context, reward domain.CustomReward, existing []domain.CustomReward) error {
	cfg, err := s.repo.GetConfig(ctx, reward.HouseholdID)
	if err != nil {
		return fmt.Errorf(ErrFmtLoadConfig, err)
	}
	if cfg == nil {
		def := domain.DefaultWheelConfig(reward.HouseholdID)
		cfg = &def
	}

	total := cfg.Probabilities.Total() + reward.Probability
	for _, c := range existing {
		if c.ID != reward.ID {
			total += c.Probability
		}
	}
	if total > domain.ProbabilityTotal+domain.ProbabilityTotalTolerance {
		return fmt.Errorf(ErrFmtRewardTotalAbove, domain.ErrInvalidInput, total, domain.ProbabilityTotal)
	}
	return nil
}

func (s *configService) loadReward(ctx context.Context, rewardID string) (*domain.CustomReward, error) {
	reward, err := s.repo.GetCustomReward(ctx, rewardID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListRewards, err)
	}
	if reward == nil {
		return nil, domain.ErrCustomRewardNotFound
	}
	return reward, nil
}

func (s *configService) requireMember(ctx context.Context, userID, householdID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadProfile, err)
	}
	if profile == nil || profile.HouseholdID != householdID {
		logger.FromContext(ctx).Info(LogMsgAdminDenied, "user_id", userID, "household_id", householdID, "reason", "not a member")
		return nil, fmt.Errorf("%w: not a member of household", domain.ErrForbidden)
	}
	return profile, nil
}

func (s *configService) requireAdmin(ctx context.Context, userID, householdID string) (*domain.Profile, error) {
	profile, err := s.requireMember(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	if !profile.IsAdmin() {
		logger.FromContext(ctx).Info(LogMsgAdminDenied, "user_id", userID, "household_id", householdID, "reason", "not an admin")
		return nil, fmt.Errorf("%w: household admin required", domain.ErrForbidden)
	}
	return profile, nil
}

func (s *configService) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishError, "event_type", evt.Type, "error", err)
	}
}

// applyRewardInput copies validated, NFC-normalised fields onto reward.
// Empty icon falls back to the default gift icon; a nil probability keeps the current value.
func applyRewardInput(reward *domain.CustomReward, input domain.CustomRewardInput) error {
	name := strings.TrimSpace(norm.NFC.String(input.Name))
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	reward.Name = name

	icon := strings.TrimSpace(norm.NFC.String(input.Icon))
	if icon == "" {
		icon = domain.DefaultCustomRewardIcon
	}
	reward.Icon = icon

	reward.Description = nil
	if input.Description != nil {
		if desc := strings.TrimSpace(norm.NFC.String(*input.Description)); desc != "" {
			reward.Description = &desc
		}
	}

	if input.Probability != nil {
		if err := validateWeight(name, *input.Probability); err != nil {
			return err
		}
		reward.Probability = *input.Probability
	}
	return nil
}

func validateWeight(name string, w float64) error {
	if math.IsNaN(w) || w < 0 || w > domain.ProbabilityTotal {
		return fmt.Errorf(ErrFmtWeightRange, domain.ErrInvalidInput, name, w)
	}
	return nil
}
