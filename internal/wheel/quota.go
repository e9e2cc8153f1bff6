package wheel

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// QuotaTracker counts spins against the daily limit. Days start at midnight in
// one configured location so resets do not drift with the server's zone.
type QuotaTracker struct {
	spins repository.SpinCounter
	clock Clock
	loc   *time.Location
}

// NewQuotaTracker creates a tracker. A nil loc means UTC; a nil clock uses wall time.
func NewQuotaTracker(spins repository.SpinCounter, clock Clock, loc *time.Location) *QuotaTracker {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = realClock{}
	}
	return &QuotaTracker{spins: spins, clock: clock, loc: loc}
}

// Now returns the tracker's current time
func (q *QuotaTracker) Now() time.Time {
	return q.clock.Now()
}

// StartOfDay returns local midnight of t's day in the tracker's location
func (q *QuotaTracker) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(q.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, q.loc)
}

// Check returns today's spin count, or domain.DailyLimitError when count >= limit
func (q *QuotaTracker) Check(ctx context.Context, userID string, limit int) (int, error) {
	return q.CheckWithin(ctx, q.spins, userID, limit)
}

// CheckWithin is Check against a specific counter, typically a locked transaction
func (q *QuotaTracker) CheckWithin(ctx context.Context, counter repository.SpinCounter, userID string, limit int) (int, error) {
	used, err := q.Used(ctx, counter, userID)
	if err != nil {
		return 0, err
	}
	if used >= limit {
		return used, domain.DailyLimitError{Limit: limit}
	}
	return used, nil
}

// Used counts the user's spins since local midnight
func (q *QuotaTracker) Used(ctx context.Context, counter repository.SpinCounter, userID string) (int, error) {
	since := q.StartOfDay(q.clock.Now())
	used, err := counter.CountSpinsSince(ctx, userID, since)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtCountSpins, err)
	}
	return used, nil
}

// Remaining is the number of spins left after used spins, never negative
func Remaining(limit, used int) int {
	if used >= limit {
		return 0
	}
	return limit - used
}
