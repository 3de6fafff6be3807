package pgsql

import (
	"errors"
	"net/http"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// classifyError maps driver errors onto the apperrors sentinels. notFoundMsg is used
// when the statement matched no row; conflictMsg when a unique index rejected it.
func (r *BaseRepository) classifyError(err error, op, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) && notFoundMsg != "" {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation { // unique_violation
		return apperrors.NewConflictError(conflictMsg)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to "+op, err)
}
