package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/logger"
)

// LogMsgRollbackFailed is logged when a deferred rollback fails for a reason
// other than the transaction having already finished
const LogMsgRollbackFailed = "Transaction rollback failed"

// SafeRollback is deferred right after a transaction opens. Once Commit has
// succeeded the rollback reports a closed transaction, which is not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || IsTxClosed(err) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
}

// IsTxClosed reports whether err means the transaction already committed or rolled back
func IsTxClosed(err error) bool {
	return errors.Is(err, domain.ErrTxClosed) || errors.Is(err, pgx.ErrTxClosed)
}
