package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/service"
	"github.com/gyruslabs/gyrus-api/internal/utils"
)

// ReportHandler wires attempt report HTTP routes.
type ReportHandler struct {
	reports    service.ReportService
	completion service.CompletionService
	logger     zerolog.Logger
}

// NewReportHandler constructs the handler.
func NewReportHandler(reports service.ReportService, completion service.CompletionService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		reports:    reports,
		completion: completion,
		logger:     logger.With().Str("component", "report_handler").Logger(),
	}
}

// Register attaches report endpoints to the router group.
func (h *ReportHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/teacher/:email", h.listByTeacher)
	router.Get("/id/:id", h.get)
	router.Patch("/id/:id", h.update)
	router.Delete("/id/:id", h.delete)
	router.Get("/group/:groupId/test/:testName/completion-status", h.completionStatus)
}

func (h *ReportHandler) list(c *fiber.Ctx) error {
	reports, err := h.reports.List(c.Context())
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "reports retrieved", reports)
}

func (h *ReportHandler) create(c *fiber.Ctx) error {
	var payload dto.ReportCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	report, err := h.reports.Create(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "report recorded", report)
}

func (h *ReportHandler) listByTeacher(c *fiber.Ctx) error {
	email := unescapeParam(c, "email")

	reports, err := h.reports.ListByTeacher(c.Context(), email)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "reports retrieved", reports)
}

func (h *ReportHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid report id format")
	}

	report, err := h.reports.Get(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "report retrieved", report)
}

func (h *ReportHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid report id format")
	}

	var payload dto.ReportUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	report, err := h.reports.Update(c.Context(), id, payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "report updated", report)
}

func (h *ReportHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid report id format")
	}

	if err := h.reports.Delete(c.Context(), id); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "report deleted", fiber.Map{"id": id})
}

func (h *ReportHandler) completionStatus(c *fiber.Ctx) error {
	groupID, err := parseUintParam(c, "groupId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid group id format")
	}

	testName := unescapeParam(c, "testName")

	status, err := h.completion.CompletionStatus(c.Context(), groupID, testName)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "completion status retrieved", status)
}
