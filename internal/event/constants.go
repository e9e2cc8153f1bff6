package event

import "time"

// EventSchemaVersion is stamped on every published event
const EventSchemaVersion = "1.0"

// DeadLetterFilePermissions is the mode of a newly created dead-letter file
const DeadLetterFilePermissions = 0644

// Config change kinds carried by WheelConfigUpdated
const (
	ChangeConfigSaved   = "config_saved"
	ChangeRewardCreated = "custom_reward_created"
	ChangeRewardUpdated = "custom_reward_updated"
	ChangeRewardDeleted = "custom_reward_deleted"
)

// Errors
const (
	ErrFmtHandlersFailed = "%d handler(s) failed for event %s: %w"
)

// Log messages
const (
	LogMsgEventPublishFailed   = "Event publish failed, scheduling retry"
	LogMsgEventRetryExhausted  = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed     = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded  = "Event retry succeeded"
	LogMsgEventDroppedShutdown = "Event dropped during shutdown"
	LogMsgDeadLetterFailed     = "Failed to write to dead letter"
	LogMsgShutdownTimeout      = "Resilient publisher shutdown timed out"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay << (attempt - 1)
}
