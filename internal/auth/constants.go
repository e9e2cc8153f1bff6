package auth

// Token format
const (
	BearerPrefix = "Bearer"
)

// Error messages
const (
	ErrMsgMissingToken     = "missing bearer token"
	ErrMsgMalformedHeader  = "authorization header must be: Bearer <token>"
	ErrMsgUnexpectedMethod = "unexpected signing method"
	ErrMsgInvalidToken     = "invalid or expired token"
	ErrMsgMissingSubject   = "token has no subject"
	ErrMsgEmptySecret      = "jwt secret must not be empty"
)
