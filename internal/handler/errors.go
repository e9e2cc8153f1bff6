package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidRewardID       = "Invalid custom reward id"
	ErrMsgInvalidHouseholdID    = "Invalid household id"
	ErrMsgUnauthenticated       = "Authentication required"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."
	ErrMsgNotEntitledError      = "The Mystery Wheel is a premium feature. Upgrade your household plan to spin."
	ErrMsgInactiveError         = "Your household subscription is not active."
	ErrMsgWheelDisabledError    = "The Mystery Wheel is turned off for this household."
	ErrMsgForbiddenError        = "Only household admins can do that."
	ErrMsgDailyLimitError       = "You've used all your spins for today. Come back tomorrow!"
	ErrFmtDailyLimitError       = "You've used all your spins for today. You can spin %d times per day. Come back tomorrow!"
	ErrMsgNoRewardsError        = "The wheel has no rewards to land on. Ask an admin to adjust the probabilities."
	ErrMsgProfileNotFoundError  = "Profile not found"
	ErrMsgRewardNotFoundError   = "Custom reward not found"
	ErrMsgInvalidInputFallback  = "Invalid input"
	ErrMsgValidationFailedField = "Invalid value"
)

// Success messages for API responses
const (
	MsgCustomRewardDeleted = "Custom reward deleted"
)

// Rejection reasons reported to metrics
const (
	ReasonNotEntitled  = "not_entitled"
	ReasonInactive     = "subscription_inactive"
	ReasonDisabled     = "disabled"
	ReasonDailyLimit   = "daily_limit"
	ReasonConfigBroken = "config_invalid"
	ReasonOther        = "error"
)

// Request parameter names
const (
	ParamHouseholdID = "household_id"
	ParamLimit       = "limit"
	ParamRewardID    = "id"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgMissingParam    = "Missing query parameter"
	LogMsgServiceError    = "Service call failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgMissingUserID   = "Request reached handler without an authenticated user"
)
