package timeclock

import (
	"errors"
	"net/http"
	"strings"

	"go-timeclock/internal/shared/apperror"
	timeclockerrors "go-timeclock/internal/timeclock/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapStoreError translates repository failures into the typed taxonomy.
// Business-rule rejections never pass through here; only store errors do,
// and anything unrecognized surfaces as a retryable store failure.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timeclockerrors.ErrRecordNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_shift_record_day" {
			return timeclockerrors.ErrConcurrentLogin
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_shift_record_day") {
		return timeclockerrors.ErrConcurrentLogin
	}

	return apperror.Wrap(err,
		apperror.CodeServiceUnavailable,
		"The record store is temporarily unavailable, please retry",
		http.StatusServiceUnavailable,
	)
}
