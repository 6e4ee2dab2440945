package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// CodeSender delivers a one-time passcode to a destination (email address
// or phone number). Real SMS/SMTP providers live behind this interface.
type CodeSender interface {
	SendCode(ctx context.Context, destination, code string) error
}

// LogCodeSender is a delivery provider that only logs the passcode. Used in
// development and as a fallback when no provider is configured.
type LogCodeSender struct {
	logger zerolog.Logger
}

// NewLogCodeSender constructs a logging provider.
func NewLogCodeSender(logger zerolog.Logger) *LogCodeSender {
	return &LogCodeSender{logger: logger.With().Str("component", "code_sender").Logger()}
}

// SendCode logs the delivery and reports success.
func (l *LogCodeSender) SendCode(ctx context.Context, destination, code string) error {
	l.logger.Info().Str("destination", destination).Msg("one-time passcode issued")
	return nil
}

// OTPService issues and verifies short-lived one-time passcodes backed by
// redis. Codes are consumed on successful verification.
type OTPService interface {
	Issue(ctx context.Context, destination string) error
	IssuePhone(ctx context.Context, phone string) error
	Verify(ctx context.Context, destination, code string) error
}

type otpService struct {
	client *redis.Client
	sender CodeSender
	ttl    time.Duration
	logger zerolog.Logger
}

// NewOTPService builds a redis-backed OTP service.
func NewOTPService(client *redis.Client, sender CodeSender, ttl time.Duration, logger zerolog.Logger) OTPService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &otpService{
		client: client,
		sender: sender,
		ttl:    ttl,
		logger: logger.With().Str("component", "otp_service").Logger(),
	}
}

func (s *otpService) Issue(ctx context.Context, destination string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate passcode: %w", err)
	}

	if err := s.client.Set(ctx, otpKey(destination), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store passcode: %w", err)
	}

	if err := s.sender.SendCode(ctx, destination, code); err != nil {
		return fmt.Errorf("failed to deliver passcode: %w", err)
	}

	return nil
}

func (s *otpService) IssuePhone(ctx context.Context, phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	return s.Issue(ctx, phone)
}

func (s *otpService) Verify(ctx context.Context, destination, code string) error {
	stored, err := s.client.Get(ctx, otpKey(destination)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrOTPInvalid
		}
		return err
	}

	if stored != code {
		return ErrOTPInvalid
	}

	if err := s.client.Del(ctx, otpKey(destination)).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to consume verified passcode")
	}

	return nil
}

func otpKey(destination string) string {
	return "otp:" + destination
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
