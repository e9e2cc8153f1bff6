package config

import "time"

// Defaults applied when the environment leaves a value unset
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "chore-wheel"
	DefaultVersion           = "dev"
	DefaultEnvironment       = "dev"
	DefaultDBName            = "chorewheel"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultWheelTimezone     = "UTC"
	DefaultConfigCacheTTL    = 30 * time.Second
	DefaultDeadLetterPath    = "logs/event_deadletter.jsonl"
	DefaultEventMaxRetries   = 3
	DefaultEventRetryDelay   = 2 * time.Second
)
