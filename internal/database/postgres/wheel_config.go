package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// WheelConfigRepository stores wheel settings and custom rewards
type WheelConfigRepository struct {
	db *pgxpool.Pool
}

// NewWheelConfigRepository creates a new WheelConfigRepository
func NewWheelConfigRepository(db *pgxpool.Pool) repository.WheelConfig {
	return &WheelConfigRepository{db: db}
}

func scanWheelConfig(row pgx.Row) (*domain.WheelConfig, error) {
	var cfg domain.WheelConfig
	err := row.Scan(
		&cfg.HouseholdID,
		&cfg.Enabled,
		&cfg.DailyLimit,
		&cfg.Probabilities.DoublePoints,
		&cfg.Probabilities.Avatars,
		&cfg.Probabilities.Points,
		&cfg.CustomMirror,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetConfig returns the household's config, or nil if none has been created
func (r *WheelConfigRepository) GetConfig(ctx context.Context, householdID string) (*domain.WheelConfig, error) {
	cfg, err := scanWheelConfig(r.db.QueryRow(ctx, SQLGetWheelConfig, householdID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(ErrMsgFailedToGetWheelConfig, err)
	}
	return cfg, nil
}

// CreateDefaultConfig inserts cfg unless a row already exists, then returns the stored row.
// Concurrent callers all observe the same single row.
func (r *WheelConfigRepository) CreateDefaultConfig(ctx context.Context, cfg domain.WheelConfig) (*domain.WheelConfig, error) {
	_, err := r.db.Exec(ctx, SQLInsertDefaultWheelConfig,
		cfg.HouseholdID,
		cfg.Enabled,
		cfg.DailyLimit,
		cfg.Probabilities.DoublePoints,
		cfg.Probabilities.Avatars,
		cfg.Probabilities.Points,
		cfg.CustomMirror,
	)
	if err != nil {
		return nil, storeErr(ErrMsgFailedToInsertConfig, err)
	}

	stored, err := r.GetConfig(ctx, cfg.HouseholdID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: %s: row missing after insert", domain.ErrStoreUnavailable, ErrMsgFailedToInsertConfig)
	}
	return stored, nil
}

// SaveConfig upserts the household's settings
func (r *WheelConfigRepository) SaveConfig(ctx context.Context, cfg domain.WheelConfig) (*domain.WheelConfig, error) {
	saved, err := scanWheelConfig(r.db.QueryRow(ctx, SQLUpsertWheelConfig,
		cfg.HouseholdID,
		cfg.Enabled,
		cfg.DailyLimit,
		cfg.Probabilities.DoublePoints,
		cfg.Probabilities.Avatars,
		cfg.Probabilities.Points,
		cfg.CustomMirror,
	))
	if err != nil {
		return nil, storeErr(ErrMsgFailedToSaveConfig, err)
	}
	return saved, nil
}

func scanCustomReward(row pgx.Row) (*domain.CustomReward, error) {
	var cr domain.CustomReward
	err := row.Scan(
		&cr.ID,
		&cr.HouseholdID,
		&cr.Name,
		&cr.Description,
		&cr.Icon,
		&cr.Probability,
		&cr.CreatedBy,
		&cr.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

// ListCustomRewards returns the household's rewards in creation order
func (r *WheelConfigRepository) ListCustomRewards(ctx context.Context, householdID string) ([]domain.CustomReward, error) {
	rows, err := r.db.Query(ctx, SQLListCustomRewards, householdID)
	if err != nil {
		return nil, storeErr(ErrMsgFailedToListRewards, err)
	}
	defer rows.Close()

	rewards := make([]domain.CustomReward, 0)
	for rows.Next() {
		cr, err := scanCustomReward(rows)
		if err != nil {
			return nil, storeErr(ErrMsgFailedToListRewards, err)
		}
		rewards = append(rewards, *cr)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(ErrMsgFailedToListRewards, err)
	}
	return rewards, nil
}

// GetCustomReward returns a reward by id, or nil if it does not exist
func (r *WheelConfigRepository) GetCustomReward(ctx context.Context, rewardID string) (*domain.CustomReward, error) {
	cr, err := scanCustomReward(r.db.QueryRow(ctx, SQLGetCustomReward, rewardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(ErrMsgFailedToGetReward, err)
	}
	return cr, nil
}

// CreateCustomReward inserts reward and fills in its creation time
func (r *WheelConfigRepository) CreateCustomReward(ctx context.Context, reward *domain.CustomReward) error {
	err := r.db.QueryRow(ctx, SQLInsertCustomReward,
		reward.ID,
		reward.HouseholdID,
		reward.Name,
		reward.Description,
		reward.Icon,
		reward.Probability,
		reward.CreatedBy,
	).Scan(&reward.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reward %s already exists", domain.ErrInvalidInput, reward.ID)
		}
		return storeErr(ErrMsgFailedToInsertReward, err)
	}
	return nil
}

// UpdateCustomReward overwrites the editable fields of a reward
func (r *WheelConfigRepository) UpdateCustomReward(ctx context.Context, reward domain.CustomReward) error {
	tag, err := r.db.Exec(ctx, SQLUpdateCustomReward,
		reward.ID,
		reward.Name,
		reward.Description,
		reward.Icon,
		reward.Probability,
	)
	if err != nil {
		return storeErr(ErrMsgFailedToUpdateReward, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomRewardNotFound
	}
	return nil
}

// DeleteCustomReward removes a reward belonging to the household
func (r *WheelConfigRepository) DeleteCustomReward(ctx context.Context, householdID, rewardID string) error {
	tag, err := r.db.Exec(ctx, SQLDeleteCustomReward, householdID, rewardID)
	if err != nil {
		return storeErr(ErrMsgFailedToDeleteReward, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomRewardNotFound
	}
	return nil
}
