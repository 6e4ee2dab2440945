package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/models"
	"github.com/gyruslabs/gyrus-api/internal/repository"
)

const testDateLayout = "2006-01-02"

// TestService exposes test scheduling use cases.
type TestService interface {
	Create(ctx context.Context, payload dto.TestCreateRequest) (dto.TestResponse, error)
	ListByGroup(ctx context.Context, groupID uint) ([]dto.TestResponse, error)
	ListUpcoming(ctx context.Context, groupID uint) ([]dto.TestResponse, error)
}

type testService struct {
	tests     repository.TestRepository
	groups    repository.GroupRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewTestService builds a new test service.
func NewTestService(tests repository.TestRepository, groups repository.GroupRepository, validate *validator.Validate, logger zerolog.Logger) TestService {
	return &testService{
		tests:     tests,
		groups:    groups,
		validator: validate,
		logger:    logger.With().Str("component", "test_service").Logger(),
		now:       time.Now,
	}
}

func (s *testService) Create(ctx context.Context, payload dto.TestCreateRequest) (dto.TestResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TestResponse{}, err
	}

	date, err := time.Parse(testDateLayout, payload.Date)
	if err != nil {
		return dto.TestResponse{}, NewValidationError("date", "date must be formatted as YYYY-MM-DD")
	}

	if _, err := s.groups.GetByID(ctx, payload.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TestResponse{}, ErrGroupNotFound
		}
		return dto.TestResponse{}, err
	}

	subject := payload.Subject
	if subject == "" {
		subject = models.DefaultTestSubject
	}

	test := models.Test{
		TestName:      payload.TestName,
		Date:          date,
		Time:          payload.Time,
		Subject:       subject,
		QuestionCount: payload.QuestionCount,
		Standard:      payload.Standard,
		GroupID:       payload.GroupID,
	}

	if err := s.tests.Create(ctx, &test); err != nil {
		return dto.TestResponse{}, err
	}

	s.logger.Info().Uint("test_id", test.ID).Uint("group_id", test.GroupID).Msg("test scheduled")

	return dto.NewTestResponse(test), nil
}

func (s *testService) ListByGroup(ctx context.Context, groupID uint) ([]dto.TestResponse, error) {
	if groupID == 0 {
		return nil, ErrInvalidIdentity
	}

	tests, err := s.tests.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return dto.NewTestResponseSlice(tests), nil
}

func (s *testService) ListUpcoming(ctx context.Context, groupID uint) ([]dto.TestResponse, error) {
	if groupID == 0 {
		return nil, ErrInvalidIdentity
	}

	tests, err := s.tests.ListUpcoming(ctx, groupID, s.now())
	if err != nil {
		return nil, err
	}

	return dto.NewTestResponseSlice(tests), nil
}
