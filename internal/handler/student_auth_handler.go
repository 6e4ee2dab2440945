package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/service"
	"github.com/gyruslabs/gyrus-api/internal/utils"
)

// StudentAuthHandler wires the student-facing authentication routes.
type StudentAuthHandler struct {
	sessions service.StudentSessionService
	logger   zerolog.Logger
}

// NewStudentAuthHandler constructs the handler.
func NewStudentAuthHandler(sessions service.StudentSessionService, logger zerolog.Logger) *StudentAuthHandler {
	return &StudentAuthHandler{
		sessions: sessions,
		logger:   logger.With().Str("component", "student_auth_handler").Logger(),
	}
}

// Register attaches student auth endpoints to the router group.
func (h *StudentAuthHandler) Register(router fiber.Router) {
	router.Post("/login", h.login)
	router.Get("/student-data/:name/:regNo", h.studentData)
}

func (h *StudentAuthHandler) login(c *fiber.Ctx) error {
	var payload dto.StudentLoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	view, err := h.sessions.Authenticate(c.Context(), payload)
	if err != nil {
		// A failed student lookup on login is an authentication failure,
		// not a missing resource.
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
		}
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "student authenticated", view)
}

func (h *StudentAuthHandler) studentData(c *fiber.Ctx) error {
	name := unescapeParam(c, "name")
	regNo := unescapeParam(c, "regNo")

	view, err := h.sessions.StudentData(c.Context(), name, regNo)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "student data retrieved", view)
}
