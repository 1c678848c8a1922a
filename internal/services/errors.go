package services

import (
	"errors"
	"strings"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrForbidden = errors.New("forbidden")

	ErrContentNotFound  = errors.New("content not found")
	ErrReportNotFound   = errors.New("report not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrSettingNotFound  = errors.New("setting not found")

	ErrCategoryInactive = errors.New("category is not accepting submissions")
	ErrDistrictRequired = errors.New("district is required")
	ErrEmptyReason      = errors.New("reason is required")
	ErrReasonTooLong    = errors.New("reason must be at most 500 characters")
	ErrInvalidStatus    = errors.New("invalid status: must be pending, approved, or rejected")
	ErrInvalidAction    = errors.New("invalid action: must be ignore or ban_content")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidSetting   = errors.New("invalid setting value")
	ErrUnknownSchema    = errors.New("unknown schema key")
	ErrCategoryName     = errors.New("category name is required")

	ErrInvalidTransition = errors.New("content cannot return to pending")
	ErrVersionConflict   = errors.New("content was changed by someone else")
	ErrCategoryExists    = errors.New("category already exists")
	ErrCategoryInUse     = errors.New("category still has listings")
)

// isUniqueViolation recognizes duplicate-key errors from postgres and from the
// sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// requireScope admits admins to district-filtered listings. A district admin without a
// district has no scope to filter by and is refused.
func requireScope(actor identity.Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if actor.IsDistrictAdmin() && strings.TrimSpace(actor.DistrictID) == "" {
		return ErrForbidden
	}
	return nil
}
