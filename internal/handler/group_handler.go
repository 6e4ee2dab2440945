package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/service"
	"github.com/gyruslabs/gyrus-api/internal/utils"
)

// GroupHandler wires group HTTP routes.
type GroupHandler struct {
	service service.GroupService
	logger  zerolog.Logger
}

// NewGroupHandler constructs the handler.
func NewGroupHandler(service service.GroupService, logger zerolog.Logger) *GroupHandler {
	return &GroupHandler{
		service: service,
		logger:  logger.With().Str("component", "group_handler").Logger(),
	}
}

// Register attaches group endpoints to the router group.
func (h *GroupHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/teacher/:email", h.listByTeacher)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *GroupHandler) create(c *fiber.Ctx) error {
	var payload dto.GroupCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	group, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "group created", group)
}

func (h *GroupHandler) list(c *fiber.Ctx) error {
	groups, err := h.service.List(c.Context())
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "groups retrieved", groups)
}

func (h *GroupHandler) listByTeacher(c *fiber.Ctx) error {
	email := unescapeParam(c, "email")

	groups, err := h.service.ListByTeacher(c.Context(), email)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "groups retrieved", groups)
}

func (h *GroupHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid group id format")
	}

	group, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "group retrieved", group)
}

func (h *GroupHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid group id format")
	}

	var payload dto.GroupUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	group, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "group updated", group)
}

func (h *GroupHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid group id format")
	}

	group, err := h.service.Delete(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "group deleted", group)
}
