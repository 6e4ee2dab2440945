package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/service"
	"github.com/gyruslabs/gyrus-api/internal/utils"
)

// TestHandler wires test scheduling HTTP routes.
type TestHandler struct {
	service service.TestService
	logger  zerolog.Logger
}

// NewTestHandler constructs the handler.
func NewTestHandler(service service.TestService, logger zerolog.Logger) *TestHandler {
	return &TestHandler{
		service: service,
		logger:  logger.With().Str("component", "test_handler").Logger(),
	}
}

// Register attaches test endpoints to the router group.
func (h *TestHandler) Register(router fiber.Router) {
	router.Get("", h.listByGroup)
	router.Post("", h.create)
	router.Get("/student", h.listUpcoming)
}

func (h *TestHandler) create(c *fiber.Ctx) error {
	var payload dto.TestCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	test, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "test scheduled", test)
}

func (h *TestHandler) listByGroup(c *fiber.Ctx) error {
	groupID := c.QueryInt("groupId")
	if groupID <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "group id is required")
	}

	tests, err := h.service.ListByGroup(c.Context(), uint(groupID))
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "tests retrieved", tests)
}

func (h *TestHandler) listUpcoming(c *fiber.Ctx) error {
	groupID := c.QueryInt("groupId")
	if groupID <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "group id is required")
	}

	tests, err := h.service.ListUpcoming(c.Context(), uint(groupID))
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "upcoming tests retrieved", tests)
}
