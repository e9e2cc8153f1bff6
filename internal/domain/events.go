package domain

import "time"

// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeWheelSpinCompleted is published after a spin is recorded and its reward applied
	EventTypeWheelSpinCompleted = "wheel.spin_completed"

	// EventTypeWheelConfigUpdated is published when an admin changes a household's wheel
	EventTypeWheelConfigUpdated = "wheel.config_updated"
)

// WheelSpinCompletedPayload describes a finished spin
type WheelSpinCompletedPayload struct {
	UserID         string      `json:"user_id"`
	HouseholdID    string      `json:"household_id"`
	TaskID         string      `json:"task_id"`
	RewardType     RewardType  `json:"reward_type"`
	RewardValue    RewardValue `json:"reward_value"`
	RemainingSpins int         `json:"remaining_spins"`
	SpunAt         time.Time   `json:"spun_at"`
}

// WheelConfigUpdatedPayload describes an admin change to a wheel
type WheelConfigUpdatedPayload struct {
	HouseholdID string `json:"household_id"`
	UpdatedBy   string `json:"updated_by"`
	Change      string `json:"change"`
}
