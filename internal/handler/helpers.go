package handler

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/service"
	"github.com/gyruslabs/gyrus-api/internal/utils"
)

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value := c.Params(name)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil || parsed == 0 {
		return 0, service.ErrInvalidIdentity
	}
	return uint(parsed), nil
}

func unescapeParam(c *fiber.Ctx, name string) string {
	value := c.Params(name)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// sendServiceError maps service errors onto HTTP responses. Unrecognised
// errors are treated as dependency failures: logged and surfaced as 500.
func sendServiceError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var capacity *service.CapacityError
	var validation *service.ValidationError
	var validatorErrs validator.ValidationErrors

	switch {
	case errors.As(err, &capacity):
		return utils.SendErrorDetail(c, fiber.StatusBadRequest, capacity.Error(), fiber.Map{
			"maxAllowed": capacity.Limit,
			"attempted":  capacity.Attempted,
		})
	case errors.As(err, &validation):
		return utils.SendErrorDetail(c, fiber.StatusBadRequest, "validation failed", validation.Fields)
	case errors.As(err, &validatorErrs):
		return utils.SendError(c, fiber.StatusBadRequest, validatorErrs.Error())
	case errors.Is(err, service.ErrInvalidIdentity):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id format")
	case errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrTestNotFound),
		errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrStudentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrOTPInvalid),
		errors.Is(err, service.ErrInvalidPhone):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrTeacherNotApproved):
		return utils.SendError(c, fiber.StatusForbidden, err.Error())
	default:
		logger.Error().Err(err).Str("correlation_id", correlationID(c)).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func correlationID(c *fiber.Ctx) string {
	if v := c.Locals("correlation_id"); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
