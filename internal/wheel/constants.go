package wheel

// AvatarCatalog is the fixed set of emoji an avatar reward draws from
var AvatarCatalog = []string{
	"🦸", "🧙", "🧛", "🧜", "🧚", "👸", "🤴", "👮", "👷", "💂",
	"🕵️", "👨‍🚀", "👨‍🚒", "👨‍⚕️", "👨‍🎓", "👨‍🏫", "👨‍⚖️", "👨‍🌾", "👨‍🍳", "👨‍🔧",
	"👨‍🏭", "👨‍💼", "👨‍🔬", "👨‍💻", "👨‍🎤", "👨‍🎨", "🦁", "🐯", "🐻", "🐼",
	"🐨", "🐸", "🐵", "🐶", "🐱", "🦊", "🦄", "🐲", "🦕", "🦖",
	"🐉", "🦅", "🦉", "🦇", "🐺", "🐗",
}

// Built-in segment labels
const (
	LabelDoublePoints = "Double Points"
	LabelAvatar       = "New Avatar"
	LabelPoints       = "Bonus Points"

	IconDoublePoints = "✨"
	IconAvatar       = "🎭"
	IconPoints       = "⭐"
)

// Cache and history defaults
const (
	DefaultConfigCacheSize = 1024
	DefaultHistoryLimit    = 20
	MaxHistoryLimit        = 100
	MaxCustomRewards       = 50
)

// Error message format strings
const (
	ErrFmtLoadConfig        = "failed to load wheel config: %w"
	ErrFmtCreateConfig      = "failed to create default wheel config: %w"
	ErrFmtSaveConfig        = "failed to save wheel config: %w"
	ErrFmtListRewards       = "failed to list custom rewards: %w"
	ErrFmtCountSpins        = "failed to count spins: %w"
	ErrFmtBeginSpin         = "failed to begin spin transaction: %w"
	ErrFmtRecordSpin        = "failed to record spin: %w"
	ErrFmtApplyReward       = "failed to apply %s reward: %w"
	ErrFmtCommitSpin        = "failed to commit spin: %w"
	ErrFmtListSpins         = "failed to list spins: %w"
	ErrFmtLoadProfile       = "failed to load profile: %w"
	ErrFmtProbabilityTotal  = "%w: probabilities must total %.0f%%, got %.2f%%"
	ErrFmtWeightRange       = "%w: %s weight must be between 0 and 100, got %v"
	ErrFmtTooManyRewards    = "%w: a household may have at most %d custom rewards"
	ErrFmtRewardWrongHouse  = "%w: reward %s belongs to another household"
	ErrFmtCustomRewardWrite = "failed to write custom reward: %w"
	ErrFmtRewardTotalAbove  = "%w: probabilities would total %.2f%%, above %.0f%%"
)

// Log messages
const (
	LogMsgSpinStarted       = "Wheel spin started"
	LogMsgConfigLoaded      = "Wheel config loaded"
	LogMsgDefaultCreated    = "Default wheel config created"
	LogMsgRewardSelected    = "Wheel reward selected"
	LogMsgSpinCompleted     = "Wheel spin completed"
	LogMsgSpinRejected      = "Wheel spin rejected"
	LogMsgTaskLookupFailed  = "Task points lookup failed, using default"
	LogMsgEventPublishError = "Failed to publish wheel event"
	LogMsgConfigSaved       = "Wheel config saved"
	LogMsgRewardCreated     = "Custom reward created"
	LogMsgRewardUpdated     = "Custom reward updated"
	LogMsgRewardDeleted     = "Custom reward deleted"
	LogMsgAdminDenied       = "Wheel admin action denied"
)
