package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Entitlement errors
	ErrMsgNotEntitled          = "household plan does not include the mystery wheel"
	ErrMsgSubscriptionInactive = "household subscription is not active"

	// Wheel configuration errors
	ErrMsgConfigDisabled = "mystery wheel is disabled for this household"
	ErrMsgConfigInvalid  = "wheel configuration has no selectable rewards"

	// Quota errors
	ErrMsgDailyLimitReached = "daily spin limit reached"

	// Store errors
	ErrMsgStoreUnavailable = "store unavailable"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Custom reward errors
	ErrMsgCustomRewardNotFound = "custom reward not found"

	// Access errors
	ErrMsgForbidden = "forbidden"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotEntitled          = errors.New(ErrMsgNotEntitled)
	ErrSubscriptionInactive = errors.New(ErrMsgSubscriptionInactive)

	ErrConfigDisabled = errors.New(ErrMsgConfigDisabled)
	ErrConfigInvalid  = errors.New(ErrMsgConfigInvalid)

	ErrDailyLimitReached = errors.New(ErrMsgDailyLimitReached)

	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	ErrProfileNotFound      = errors.New(ErrMsgProfileNotFound)
	ErrCustomRewardNotFound = errors.New(ErrMsgCustomRewardNotFound)

	ErrForbidden    = errors.New(ErrMsgForbidden)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

// DailyLimitError is returned when a user has used every spin for the current day.
type DailyLimitError struct {
	Limit int
}

func (e DailyLimitError) Error() string {
	return fmt.Sprintf("%s: %d spins per day", ErrMsgDailyLimitReached, e.Limit)
}

// Is allows errors.Is(err, ErrDailyLimitReached) to match
func (e DailyLimitError) Is(target error) bool {
	if target == ErrDailyLimitReached {
		return true
	}
	_, ok := target.(DailyLimitError)
	return ok
}
