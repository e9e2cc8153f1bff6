package repository

import (
	"context"
	"time"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

// Tx is the common commit/rollback surface of a repository transaction
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SpinCounter counts a user's spins since an instant
type SpinCounter interface {
	CountSpinsSince(ctx context.Context, userID string, since time.Time) (int, error)
}

// RewardWriter applies reward side effects to a member's profile
type RewardWriter interface {
	// ApplyPointsDelta atomically adds delta to the member's total and returns the new total.
	// Returns domain.ErrProfileNotFound when the profile does not exist.
	ApplyPointsDelta(ctx context.Context, userID string, delta int) (int, error)
	// SetAvatar replaces the member's avatar. Returns domain.ErrProfileNotFound when missing.
	SetAvatar(ctx context.Context, userID, emoji string) error
}

// SpinTx is a transaction holding the user's spin lock. Quota recheck, spin
// insert and reward application all run inside it.
type SpinTx interface {
	Tx
	SpinCounter
	RewardWriter
	RecordSpin(ctx context.Context, record *domain.SpinRecord) error
}
