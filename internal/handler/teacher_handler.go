package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/service"
	"github.com/gyruslabs/gyrus-api/internal/utils"
)

// TeacherHandler wires teacher registration, approval and login routes.
type TeacherHandler struct {
	service service.TeacherService
	logger  zerolog.Logger
}

// NewTeacherHandler constructs the handler.
func NewTeacherHandler(service service.TeacherService, logger zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{
		service: service,
		logger:  logger.With().Str("component", "teacher_handler").Logger(),
	}
}

// Register attaches teacher endpoints to the router group.
func (h *TeacherHandler) Register(router fiber.Router) {
	router.Post("/join-request", h.joinRequest)
	router.Get("/join-requests/pending", h.listPending)
	router.Patch("/join-requests/:id", h.setStatus)
	router.Get("", h.list)
	router.Get("/email/:email", h.getByEmail)
	router.Get("/id/:id", h.get)
	router.Post("/login", h.login)
	router.Post("/verify-otp", h.verifyLogin)
}

func (h *TeacherHandler) joinRequest(c *fiber.Ctx) error {
	var payload dto.TeacherJoinRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	teacher, err := h.service.JoinRequest(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "join request created", teacher)
}

func (h *TeacherHandler) listPending(c *fiber.Ctx) error {
	teachers, err := h.service.ListPending(c.Context())
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "pending join requests retrieved", teachers)
}

func (h *TeacherHandler) setStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid teacher id format")
	}

	var payload dto.TeacherStatusRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	teacher, err := h.service.SetStatus(c.Context(), id, payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "join request resolved", teacher)
}

func (h *TeacherHandler) list(c *fiber.Ctx) error {
	teachers, err := h.service.List(c.Context())
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "teachers retrieved", teachers)
}

func (h *TeacherHandler) getByEmail(c *fiber.Ctx) error {
	email := unescapeParam(c, "email")

	teacher, err := h.service.GetByEmail(c.Context(), email)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "teacher retrieved", teacher)
}

func (h *TeacherHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid teacher id format")
	}

	teacher, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "teacher retrieved", teacher)
}

func (h *TeacherHandler) login(c *fiber.Ctx) error {
	var payload dto.TeacherLoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Login(c.Context(), payload); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "one-time passcode sent", fiber.Map{"email": payload.Email})
}

func (h *TeacherHandler) verifyLogin(c *fiber.Ctx) error {
	var payload dto.TeacherVerifyRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	token, err := h.service.VerifyLogin(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "login verified", token)
}
