package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/service"
	"github.com/gyruslabs/gyrus-api/internal/utils"
)

// OTPHandler wires the phone passcode routes.
type OTPHandler struct {
	otp    service.OTPService
	logger zerolog.Logger
}

// NewOTPHandler constructs the handler.
func NewOTPHandler(otp service.OTPService, logger zerolog.Logger) *OTPHandler {
	return &OTPHandler{
		otp:    otp,
		logger: logger.With().Str("component", "otp_handler").Logger(),
	}
}

// Register attaches OTP endpoints to the router group.
func (h *OTPHandler) Register(router fiber.Router) {
	router.Post("/send", h.send)
	router.Post("/verify", h.verify)
}

type otpSendRequest struct {
	Phone string `json:"phone"`
}

type otpVerifyRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

func (h *OTPHandler) send(c *fiber.Ctx) error {
	var payload otpSendRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.otp.IssuePhone(c.Context(), payload.Phone); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "otp sent", fiber.Map{"phone": payload.Phone})
}

func (h *OTPHandler) verify(c *fiber.Ctx) error {
	var payload otpVerifyRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Phone == "" || payload.OTP == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "phone number and otp are required")
	}

	if err := h.otp.Verify(c.Context(), payload.Phone, payload.OTP); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "otp verified", nil)
}
