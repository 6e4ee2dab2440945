package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/service"
	"github.com/gyruslabs/gyrus-api/internal/utils"
)

// QuestionHandler wires the question bank routes.
type QuestionHandler struct {
	service service.QuestionService
	logger  zerolog.Logger
}

// NewQuestionHandler constructs the handler.
func NewQuestionHandler(service service.QuestionService, logger zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		service: service,
		logger:  logger.With().Str("component", "question_handler").Logger(),
	}
}

// Register attaches question bank endpoints to the router group.
func (h *QuestionHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/filtered", h.listFiltered)
	router.Get("/sample", h.sample)
}

func (h *QuestionHandler) list(c *fiber.Ctx) error {
	questions, err := h.service.List(c.Context(), "", "", 0)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "questions retrieved", questions)
}

func (h *QuestionHandler) listFiltered(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}

	questions, err := h.service.List(c.Context(), c.Query("subject"), c.Query("standard"), limit)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "questions retrieved", questions)
}

func (h *QuestionHandler) sample(c *fiber.Ctx) error {
	count, err := parseQueryInt(c, "count")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid count")
	}

	questions, err := h.service.Sample(c.Context(), c.Query("subject"), c.Query("standard"), count)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "questions sampled", questions)
}
