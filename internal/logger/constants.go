package logger

// ContextKeyRequestID keys the request id stored on a context
const ContextKeyRequestID = "request_id"

// Log level names accepted in LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log formats accepted in LOG_FORMAT
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// EnvironmentDev enables source locations in log records
const EnvironmentDev = "dev"

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// HeaderRequestID echoes the request id back to the client
const HeaderRequestID = "X-Request-ID"
