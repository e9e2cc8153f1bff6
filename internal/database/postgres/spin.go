package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SpinRepository stores spin history and runs spin transactions
type SpinRepository struct {
	db *pgxpool.Pool
}

// NewSpinRepository creates a new SpinRepository
func NewSpinRepository(db *pgxpool.Pool) repository.Spin {
	return &SpinRepository{db: db}
}

// CountSpinsSince counts the user's spins at or after since
func (r *SpinRepository) CountSpinsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	return countSpinsSince(ctx, r.db, userID, since)
}

func countSpinsSince(ctx context.Context, q querier, userID string, since time.Time) (int, error) {
	var n int
	if err := q.QueryRow(ctx, SQLCountSpinsSince, userID, since).Scan(&n); err != nil {
		return 0, storeErr(ErrMsgFailedToCountSpins, err)
	}
	return n, nil
}

// ListSpins returns the user's most recent spins in a household, newest first
func (r *SpinRepository) ListSpins(ctx context.Context, userID, householdID string, limit int) ([]domain.SpinRecord, error) {
	rows, err := r.db.Query(ctx, SQLListSpins, userID, householdID, limit)
	if err != nil {
		return nil, storeErr(ErrMsgFailedToListSpins, err)
	}
	defer rows.Close()

	spins := make([]domain.SpinRecord, 0, limit)
	for rows.Next() {
		var (
			rec   domain.SpinRecord
			value []byte
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.HouseholdID, &rec.TaskID, &rec.RewardType, &value, &rec.SpunAt); err != nil {
			return nil, storeErr(ErrMsgFailedToListSpins, err)
		}
		if err := json.Unmarshal(value, &rec.RewardValue); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalReward, err)
		}
		spins = append(spins, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(ErrMsgFailedToListSpins, err)
	}
	return spins, nil
}

// BeginSpinTx opens a transaction and takes the user's advisory spin lock.
// The lock is released when the transaction ends.
func (r *SpinRepository) BeginSpinTx(ctx context.Context, userID string) (repository.SpinTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, storeErr(ErrMsgFailedToBeginTransaction, err)
	}

	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashUserAction(userID, SpinLockAction)); err != nil {
		repository.SafeRollback(ctx, tx)
		return nil, storeErr(ErrMsgFailedToAcquireSpinLock, err)
	}

	return &spinTx{tx: tx}, nil
}

type spinTx struct {
	tx pgx.Tx
}

func (t *spinTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *spinTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *spinTx) CountSpinsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	return countSpinsSince(ctx, t.tx, userID, since)
}

func (t *spinTx) RecordSpin(ctx context.Context, record *domain.SpinRecord) error {
	value, err := json.Marshal(record.RewardValue)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalReward, err)
	}

	err = t.tx.QueryRow(ctx, SQLInsertSpin,
		record.UserID,
		record.HouseholdID,
		record.TaskID,
		string(record.RewardType),
		value,
		record.SpunAt,
	).Scan(&record.ID)
	if err != nil {
		return storeErr(ErrMsgFailedToInsertSpin, err)
	}
	return nil
}

func (t *spinTx) ApplyPointsDelta(ctx context.Context, userID string, delta int) (int, error) {
	return addPoints(ctx, t.tx, userID, delta)
}

func (t *spinTx) SetAvatar(ctx context.Context, userID, emoji string) error {
	tag, err := t.tx.Exec(ctx, SQLSetAvatar, userID, emoji)
	if err != nil {
		return storeErr(ErrMsgFailedToSetAvatar, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
