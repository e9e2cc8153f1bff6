package wheel

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/logger"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// Snapshot is a household's config and custom rewards as read together.
// Cached snapshots are shared between requests and must not be mutated.
type Snapshot struct {
	Config        domain.WheelConfig
	CustomRewards []domain.CustomReward
}

// ConfigStore loads wheel snapshots, creating the default config on first use,
// behind a short-lived LRU. Admin writes invalidate the household's entry.
type ConfigStore struct {
	repo  repository.WheelConfig
	cache *expirable.LRU[string, *Snapshot]
}

// NewConfigStore creates a store. A non-positive ttl disables caching.
func NewConfigStore(repo repository.WheelConfig, size int, ttl time.Duration) *ConfigStore {
	s := &ConfigStore{repo: repo}
	if ttl > 0 {
		if size <= 0 {
			size = DefaultConfigCacheSize
		}
		s.cache = expirable.NewLRU[string, *Snapshot](size, nil, ttl)
	}
	return s
}

// Load returns the household's snapshot, creating the default config if absent
func (s *ConfigStore) Load(ctx context.Context, householdID string) (*Snapshot, error) {
	return s.load(ctx, householdID, true)
}

// Peek returns the household's snapshot without writing. A household with no
// stored config gets the default in memory; that snapshot is not cached.
func (s *ConfigStore) Peek(ctx context.Context, householdID string) (*Snapshot, error) {
	return s.load(ctx, householdID, false)
}

func (s *ConfigStore) load(ctx context.Context, householdID string, create bool) (*Snapshot, error) {
	if s.cache != nil {
		if snap, ok := s.cache.Get(householdID); ok {
			return snap, nil
		}
	}

	log := logger.FromContext(ctx)

	cfg, err := s.repo.GetConfig(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadConfig, err)
	}
	stored := cfg != nil
	switch {
	case stored:
	case create:
		// Concurrent first loads converge on one row
		cfg, err = s.repo.CreateDefaultConfig(ctx, domain.DefaultWheelConfig(householdID))
		if err != nil {
			return nil, fmt.Errorf(ErrFmtCreateConfig, err)
		}
		stored = true
		log.Info(LogMsgDefaultCreated, "household_id", householdID)
	default:
		def := domain.DefaultWheelConfig(householdID)
		cfg = &def
	}

	customs, err := s.repo.ListCustomRewards(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListRewards, err)
	}

	snap := &Snapshot{Config: *cfg, CustomRewards: customs}
	if s.cache != nil && stored {
		s.cache.Add(householdID, snap)
	}

	log.Debug(LogMsgConfigLoaded,
		"household_id", householdID,
		"enabled", cfg.Enabled,
		"daily_limit", cfg.DailyLimit,
		"custom_rewards", len(customs),
		"stored", stored)

	return snap, nil
}

// Invalidate drops the cached snapshot for a household
func (s *ConfigStore) Invalidate(householdID string) {
	if s.cache != nil {
		s.cache.Remove(householdID)
	}
}
