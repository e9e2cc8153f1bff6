package postgres

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

// storeErr marks err as a store failure so callers can map it with errors.Is
func storeErr(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, msg, err)
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// hashUserAction creates a consistent int64 hash from userID + action for advisory locking
func hashUserAction(userID, action string) int64 {
	h := sha256.Sum256([]byte(userID + HashSeparator + action))
	// first 8 bytes, MSB masked so the key stays positive
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
