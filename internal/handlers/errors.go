package handlers

import (
	"errors"

	"github.com/amarjela/district-backend/internal/dto"
	"github.com/amarjela/district-backend/internal/form"
	"github.com/amarjela/district-backend/internal/identity"
	"github.com/amarjela/district-backend/internal/logging"
	"github.com/amarjela/district-backend/internal/services"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	unprocessable = []error{
		services.ErrEmptyReason, services.ErrReasonTooLong, services.ErrInvalidRating,
		services.ErrCategoryName, services.ErrDistrictRequired,
	}
	badRequest = []error{
		services.ErrInvalidStatus, services.ErrInvalidAction, services.ErrInvalidRole,
		services.ErrInvalidSetting, services.ErrUnknownSchema, services.ErrCategoryInactive,
	}
	notFound = []error{
		services.ErrContentNotFound, services.ErrReportNotFound, services.ErrCategoryNotFound,
		services.ErrProfileNotFound, services.ErrSettingNotFound,
	}
	conflict = []error{
		services.ErrVersionConflict, services.ErrInvalidTransition,
		services.ErrCategoryExists, services.ErrCategoryInUse,
	}
)

// handleError answers a failed service call. Unknown errors become an opaque 500 and
// are reported to Sentry.
func handleError(c *fiber.Ctx, err error) error {
	var missing *form.MissingRequiredFieldError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(), Field: missing.Key, Label: missing.Label,
		})
	}
	var tooLong *form.FieldTooLongError
	if errors.As(err, &tooLong) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(), Field: tooLong.Key, Label: tooLong.Label,
		})
	}

	switch {
	case isAny(err, unprocessable):
		return fail(c, fiber.StatusUnprocessableEntity, err.Error())
	case isAny(err, badRequest):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, err.Error())
	case isAny(err, notFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case isAny(err, conflict):
		return fail(c, fiber.StatusConflict, err.Error())
	}

	logging.RecordError(c, err)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func actorOf(c *fiber.Ctx) identity.Actor {
	actor, _ := identity.GetActor(c)
	return actor
}

func pagination(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
