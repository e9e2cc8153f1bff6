package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Advisory lock key parts
const (
	SpinLockAction        = "wheel_spin"
	HashSeparator         = ":"
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL - locking
const (
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"
)

// SQL - wheel config
const (
	SQLGetWheelConfig = `
		SELECT household_id::text, enabled, daily_limit,
		       double_points_weight::float8, avatar_weight::float8, points_weight::float8,
		       custom_weight_mirror::float8, created_at, updated_at
		FROM wheel_configs
		WHERE household_id = $1`

	SQLInsertDefaultWheelConfig = `
		INSERT INTO wheel_configs (household_id, enabled, daily_limit, double_points_weight,
		                           avatar_weight, points_weight, custom_weight_mirror)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (household_id) DO NOTHING`

	SQLUpsertWheelConfig = `
		INSERT INTO wheel_configs (household_id, enabled, daily_limit, double_points_weight,
		                           avatar_weight, points_weight, custom_weight_mirror)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (household_id) DO UPDATE SET
		    enabled = EXCLUDED.enabled,
		    daily_limit = EXCLUDED.daily_limit,
		    double_points_weight = EXCLUDED.double_points_weight,
		    avatar_weight = EXCLUDED.avatar_weight,
		    points_weight = EXCLUDED.points_weight,
		    custom_weight_mirror = EXCLUDED.custom_weight_mirror,
		    updated_at = NOW()
		RETURNING household_id::text, enabled, daily_limit,
		          double_points_weight::float8, avatar_weight::float8, points_weight::float8,
		          custom_weight_mirror::float8, created_at, updated_at`
)

// SQL - custom rewards
const (
	sqlCustomRewardColumns = `reward_id::text, household_id::text, name, description, icon,
		       probability::float8, COALESCE(created_by::text, ''), created_at`

	SQLListCustomRewards = `
		SELECT ` + sqlCustomRewardColumns + `
		FROM custom_rewards
		WHERE household_id = $1
		ORDER BY created_at, reward_id`

	SQLGetCustomReward = `
		SELECT ` + sqlCustomRewardColumns + `
		FROM custom_rewards
		WHERE reward_id = $1`

	SQLInsertCustomReward = `
		INSERT INTO custom_rewards (reward_id, household_id, name, description, icon, probability, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid)
		RETURNING created_at`

	SQLUpdateCustomReward = `
		UPDATE custom_rewards
		SET name = $2, description = $3, icon = $4, probability = $5
		WHERE reward_id = $1`

	SQLDeleteCustomReward = `
		DELETE FROM custom_rewards
		WHERE household_id = $1 AND reward_id = $2`
)

// SQL - spins
const (
	SQLCountSpinsSince = `
		SELECT COUNT(*)
		FROM wheel_spins
		WHERE user_id = $1 AND spun_at >= $2`

	SQLInsertSpin = `
		INSERT INTO wheel_spins (user_id, household_id, task_id, reward_type, reward_value, spun_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING spin_id`

	SQLListSpins = `
		SELECT spin_id, user_id::text, household_id::text, task_id, reward_type, reward_value, spun_at
		FROM wheel_spins
		WHERE user_id = $1 AND household_id = $2
		ORDER BY spun_at DESC, spin_id DESC
		LIMIT $3`
)

// SQL - profiles, tasks and subscriptions
const (
	SQLGetProfile = `
		SELECT user_id::text, COALESCE(household_id::text, ''), display_name,
		       COALESCE(avatar_emoji, ''), total_points, role
		FROM profiles
		WHERE user_id = $1`

	SQLAddPoints = `
		UPDATE profiles
		SET total_points = total_points + $2
		WHERE user_id = $1
		RETURNING total_points`

	SQLSetAvatar = `
		UPDATE profiles
		SET avatar_emoji = $2
		WHERE user_id = $1`

	SQLGetTaskPoints = `
		SELECT points
		FROM tasks
		WHERE task_id = $1`

	SQLGetHouseholdSubscription = `
		SELECT household_id::text, plan, status
		FROM household_subscriptions
		WHERE household_id = $1`
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToAcquireSpinLock  = "failed to acquire spin lock"
	ErrMsgFailedToGetWheelConfig   = "failed to get wheel config"
	ErrMsgFailedToInsertConfig     = "failed to insert default wheel config"
	ErrMsgFailedToSaveConfig       = "failed to save wheel config"
	ErrMsgFailedToListRewards      = "failed to list custom rewards"
	ErrMsgFailedToGetReward        = "failed to get custom reward"
	ErrMsgFailedToInsertReward     = "failed to insert custom reward"
	ErrMsgFailedToUpdateReward     = "failed to update custom reward"
	ErrMsgFailedToDeleteReward     = "failed to delete custom reward"
	ErrMsgFailedToCountSpins       = "failed to count spins"
	ErrMsgFailedToInsertSpin       = "failed to insert spin"
	ErrMsgFailedToListSpins        = "failed to list spins"
	ErrMsgFailedToMarshalReward    = "failed to marshal reward value"
	ErrMsgFailedToUnmarshalReward  = "failed to unmarshal reward value"
	ErrMsgFailedToGetProfile       = "failed to get profile"
	ErrMsgFailedToAddPoints        = "failed to add points"
	ErrMsgFailedToSetAvatar        = "failed to set avatar"
	ErrMsgFailedToGetTaskPoints    = "failed to get task points"
	ErrMsgFailedToGetSubscription  = "failed to get household subscription"
)
