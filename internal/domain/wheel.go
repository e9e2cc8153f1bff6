package domain

import "time"

// RewardType identifies the category a spin landed on
type RewardType string

const (
	RewardDoublePoints RewardType = "double_points"
	RewardAvatar       RewardType = "avatar"
	RewardCustom       RewardType = "custom"
	RewardPoints       RewardType = "points"
)

// Wheel defaults applied when a household has no stored configuration
const (
	DefaultDailyLimit         = 3
	DefaultDoublePointsWeight = 30.0
	DefaultAvatarWeight       = 25.0
	DefaultPointsWeight       = 25.0
	DefaultCustomWeight       = 20.0
	DefaultCustomRewardWeight = 5.0
	DefaultCustomRewardIcon   = "🎁"
	DefaultTaskPoints         = 10
	ProbabilityTotal          = 100.0
	ProbabilityTotalTolerance = 0.01
	MinBonusPoints            = 10
	MaxBonusPoints            = 50
	DoublePointsMultiplier    = 2
	FullCircleDegrees         = 360.0
	AvatarRewardNamePrefix    = "Avatar "
)

// BaseProbabilities are the weights of the three built-in categories
type BaseProbabilities struct {
	DoublePoints float64 `json:"double_points" db:"double_points_weight"`
	Avatars      float64 `json:"avatars" db:"avatar_weight"`
	Points       float64 `json:"points" db:"points_weight"`
}

// Total returns the sum of the built-in weights
func (p BaseProbabilities) Total() float64 {
	return p.DoublePoints + p.Avatars + p.Points
}

// WheelConfig is a household's wheel settings. CustomMirror is the last saved
// sum of custom reward weights and is display only; selection always uses the
// individual reward weights.
type WheelConfig struct {
	HouseholdID   string            `json:"household_id" db:"household_id"`
	Enabled       bool              `json:"enabled" db:"enabled"`
	DailyLimit    int               `json:"daily_limit" db:"daily_limit"`
	Probabilities BaseProbabilities `json:"probabilities"`
	CustomMirror  float64           `json:"custom" db:"custom_weight_mirror"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// DefaultWheelConfig returns the settings a household starts with
func DefaultWheelConfig(householdID string) WheelConfig {
	return WheelConfig{
		HouseholdID: householdID,
		Enabled:     true,
		DailyLimit:  DefaultDailyLimit,
		Probabilities: BaseProbabilities{
			DoublePoints: DefaultDoublePointsWeight,
			Avatars:      DefaultAvatarWeight,
			Points:       DefaultPointsWeight,
		},
		CustomMirror: DefaultCustomWeight,
	}
}

// CustomReward is a household-defined wheel slice
type CustomReward struct {
	ID          string    `json:"id" db:"reward_id"`
	HouseholdID string    `json:"household_id" db:"household_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	Probability float64   `json:"probability" db:"probability"`
	CreatedBy   string    `json:"created_by,omitempty" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RewardValue is the payload stored with a spin. Only the fields relevant to
// the reward type are populated.
type RewardValue struct {
	// points and double_points
	Points   int `json:"points,omitempty"`
	Original int `json:"original,omitempty"`

	// avatar
	Emoji string `json:"emoji,omitempty"`
	Name  string `json:"name,omitempty"`

	// custom
	ID          string  `json:"id,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
}

// Segment is an arc on the rendered wheel
type Segment struct {
	Type       RewardType `json:"type"`
	StartAngle float64    `json:"start_angle"`
	EndAngle   float64    `json:"end_angle"`
	RewardID   string     `json:"reward_id,omitempty"`
	Label      string     `json:"label,omitempty"`
	Icon       string     `json:"icon,omitempty"`
}

// Contains reports whether angle falls in [StartAngle, EndAngle)
func (s Segment) Contains(angle float64) bool {
	return angle >= s.StartAngle && angle < s.EndAngle
}

// SpinRequest is the caller's request to spin after completing a task.
// A positive TaskPoints overrides the stored task value.
type SpinRequest struct {
	UserID      string
	HouseholdID string
	TaskID      string
	TaskPoints  *int
}

// SpinRecord is one row of spin history
type SpinRecord struct {
	ID          int64       `json:"id" db:"spin_id"`
	UserID      string      `json:"user_id" db:"user_id"`
	HouseholdID string      `json:"household_id" db:"household_id"`
	TaskID      string      `json:"task_id" db:"task_id"`
	RewardType  RewardType  `json:"reward_type" db:"reward_type"`
	RewardValue RewardValue `json:"reward_value" db:"reward_value"`
	SpunAt      time.Time   `json:"spun_at" db:"spun_at"`
}

// SpinResult is returned to the client after a successful spin
type SpinResult struct {
	RewardType     RewardType  `json:"rewardType"`
	RewardValue    RewardValue `json:"rewardValue"`
	TargetAngle    float64     `json:"targetAngle"`
	RemainingSpins int         `json:"remainingSpins"`
}

// SpinHistory is a user's recent spins plus today's quota usage
type SpinHistory struct {
	Spins          []SpinRecord `json:"spins"`
	SpinsToday     int          `json:"spins_today"`
	DailyLimit     int          `json:"daily_limit"`
	RemainingSpins int          `json:"remaining_spins"`
}

// WheelOverview is everything a client needs to render a household's wheel
type WheelOverview struct {
	Config           WheelConfig    `json:"config"`
	CustomRewards    []CustomReward `json:"custom_rewards"`
	Segments         []Segment      `json:"segments"`
	TotalProbability float64        `json:"total_probability"`
}

// WheelConfigUpdate is an admin's replacement of the base settings
type WheelConfigUpdate struct {
	HouseholdID   string            `json:"household_id" validate:"required,uuid"`
	Enabled       bool              `json:"enabled"`
	DailyLimit    int               `json:"daily_limit" validate:"required,min=1,max=100"`
	Probabilities BaseProbabilities `json:"probabilities"`
}

// CustomRewardInput creates or edits a custom reward
type CustomRewardInput struct {
	HouseholdID string   `json:"household_id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required,notblank,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Icon        string   `json:"icon" validate:"omitempty,max=16"`
	Probability *float64 `json:"probability" validate:"omitempty,min=0,max=100"`
}
