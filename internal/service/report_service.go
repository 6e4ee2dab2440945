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

// ReportService exposes attempt report use cases.
type ReportService interface {
	Create(ctx context.Context, payload dto.ReportCreateRequest) (dto.ReportResponse, error)
	Get(ctx context.Context, id uint) (dto.ReportResponse, error)
	List(ctx context.Context) ([]dto.ReportResponse, error)
	ListByTeacher(ctx context.Context, email string) ([]dto.ReportResponse, error)
	Update(ctx context.Context, id uint, payload dto.ReportUpdateRequest) (dto.ReportResponse, error)
	Delete(ctx context.Context, id uint) error
}

type reportService struct {
	reports   repository.ReportRepository
	groups    repository.GroupRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewReportService builds a new report service.
func NewReportService(reports repository.ReportRepository, groups repository.GroupRepository, validate *validator.Validate, logger zerolog.Logger) ReportService {
	return &reportService{
		reports:   reports,
		groups:    groups,
		validator: validate,
		logger:    logger.With().Str("component", "report_service").Logger(),
		now:       time.Now,
	}
}

// Create records a submitted attempt. The owning group is resolved by id
// first, then by name; when it resolves, the group is authoritative over
// the denormalized teacher email and group name. An unresolved group never
// fails the write, the caller-supplied values are kept as fallbacks.
func (s *reportService) Create(ctx context.Context, payload dto.ReportCreateRequest) (dto.ReportResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ReportResponse{}, err
	}

	groupName := payload.GroupName
	if groupName == "" {
		groupName = payload.Group
	}

	studentName := payload.StudentName
	if studentName == "" {
		studentName = payload.Student
	}

	report := models.Report{
		TeacherEmail:   payload.TeacherEmail,
		StudentEmail:   payload.StudentEmail,
		StudentName:    studentName,
		GroupID:        payload.GroupID,
		GroupName:      groupName,
		TestName:       payload.TestName,
		Subject:        payload.Subject,
		Standard:       payload.Standard,
		Score:          payload.Score,
		TotalQuestions: payload.TotalQuestions,
		Answers:        payload.Answers,
		TimeTaken:      payload.TimeTaken,
		Date:           s.now(),
	}

	if payload.Date != "" {
		if date, err := time.Parse(time.RFC3339, payload.Date); err == nil {
			report.Date = date
		}
	}

	if group, ok := s.resolveGroup(ctx, payload.GroupID, groupName); ok {
		report.TeacherEmail = group.TeacherEmail
		report.GroupName = group.GroupName
		groupID := group.ID
		report.GroupID = &groupID
	} else if payload.GroupID != nil || groupName != "" {
		s.logger.Warn().
			Str("group_name", groupName).
			Str("test_name", payload.TestName).
			Msg("report references a group that does not resolve")
	}

	if err := s.reports.Create(ctx, &report); err != nil {
		return dto.ReportResponse{}, err
	}

	s.logger.Info().Uint("report_id", report.ID).Str("test_name", report.TestName).Msg("report recorded")

	return dto.NewReportResponse(report), nil
}

func (s *reportService) Get(ctx context.Context, id uint) (dto.ReportResponse, error) {
	if id == 0 {
		return dto.ReportResponse{}, ErrInvalidIdentity
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ReportResponse{}, ErrReportNotFound
		}
		return dto.ReportResponse{}, err
	}

	return dto.NewReportResponse(report), nil
}

func (s *reportService) List(ctx context.Context) ([]dto.ReportResponse, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewReportResponseSlice(reports), nil
}

func (s *reportService) ListByTeacher(ctx context.Context, email string) ([]dto.ReportResponse, error) {
	reports, err := s.reports.ListByTeacher(ctx, email)
	if err != nil {
		return nil, err
	}

	return dto.NewReportResponseSlice(reports), nil
}

func (s *reportService) Update(ctx context.Context, id uint, payload dto.ReportUpdateRequest) (dto.ReportResponse, error) {
	if id == 0 {
		return dto.ReportResponse{}, ErrInvalidIdentity
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.ReportResponse{}, err
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ReportResponse{}, ErrReportNotFound
		}
		return dto.ReportResponse{}, err
	}

	// Legacy clients patch the generic email field; it maps onto the
	// student email.
	if payload.Email != nil {
		report.StudentEmail = *payload.Email
	}

	if err := s.reports.Update(ctx, &report); err != nil {
		return dto.ReportResponse{}, err
	}

	return dto.NewReportResponse(report), nil
}

func (s *reportService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidIdentity
	}

	if err := s.reports.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}

	s.logger.Info().Uint("report_id", id).Msg("report deleted")
	return nil
}

func (s *reportService) resolveGroup(ctx context.Context, groupID *uint, groupName string) (models.Group, bool) {
	if groupID != nil && *groupID != 0 {
		group, err := s.groups.GetByID(ctx, *groupID)
		if err == nil {
			return group, true
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Err(err).Uint("group_id", *groupID).Msg("group lookup failed while recording report")
		}
	}

	if groupName != "" {
		group, err := s.groups.GetByName(ctx, groupName)
		if err == nil {
			return group, true
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Err(err).Str("group_name", groupName).Msg("group lookup failed while recording report")
		}
	}

	return models.Group{}, false
}
