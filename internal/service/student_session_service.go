package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/models"
	"github.com/gyruslabs/gyrus-api/internal/repository"
)

// StudentSessionService resolves a claimed student identity into the
// student's group, tests and teacher. It never creates or mutates anything
// and is safe to retry.
type StudentSessionService interface {
	Authenticate(ctx context.Context, payload dto.StudentLoginRequest) (dto.SessionView, error)
	StudentData(ctx context.Context, name, regNo string) (dto.SessionView, error)
}

type studentSessionService struct {
	groups    repository.GroupRepository
	tests     repository.TestRepository
	teachers  repository.TeacherRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentSessionService builds a new session resolver.
func NewStudentSessionService(groups repository.GroupRepository, tests repository.TestRepository, teachers repository.TeacherRepository, validate *validator.Validate, logger zerolog.Logger) StudentSessionService {
	return &studentSessionService{
		groups:    groups,
		tests:     tests,
		teachers:  teachers,
		validator: validate,
		logger:    logger.With().Str("component", "student_session_service").Logger(),
	}
}

// Authenticate echoes the claimed identity back as supplied; only the full
// StudentData variant resolves the roster entry's detail fields.
func (s *studentSessionService) Authenticate(ctx context.Context, payload dto.StudentLoginRequest) (dto.SessionView, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SessionView{}, err
	}

	view, _, err := s.resolve(ctx, payload.Name, payload.RegNo)
	if err != nil {
		return dto.SessionView{}, err
	}

	view.Student = dto.SessionStudent{Name: payload.Name, RegNo: payload.RegNo}
	return view, nil
}

// StudentData returns the same composition with the matched roster entry's
// email, gender and date of birth filled in.
func (s *studentSessionService) StudentData(ctx context.Context, name, regNo string) (dto.SessionView, error) {
	if name == "" || regNo == "" {
		return dto.SessionView{}, NewValidationError("name", "name and regNo are required")
	}

	view, group, err := s.resolve(ctx, name, regNo)
	if err != nil {
		return dto.SessionView{}, err
	}

	student, ok := group.FindStudent(name, regNo)
	if !ok {
		return dto.SessionView{}, ErrStudentNotFound
	}

	dob := student.DOB
	view.Student = dto.SessionStudent{
		Name:   student.Name,
		RegNo:  student.RegNo,
		Email:  student.Email,
		Gender: student.Gender,
		DOB:    &dob,
	}

	return view, nil
}

func (s *studentSessionService) resolve(ctx context.Context, name, regNo string) (dto.SessionView, models.Group, error) {
	group, err := s.groups.FindByStudent(ctx, name, regNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SessionView{}, models.Group{}, ErrStudentNotFound
		}
		return dto.SessionView{}, models.Group{}, err
	}

	tests, err := s.tests.ListByGroup(ctx, group.ID)
	if err != nil {
		return dto.SessionView{}, models.Group{}, err
	}

	teacher, err := s.teachers.GetByEmail(ctx, group.TeacherEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The teacher email on a group is a soft reference; the
			// teacher may have been removed after the group was created.
			s.logger.Warn().
				Uint("group_id", group.ID).
				Str("teacher_email", group.TeacherEmail).
				Msg("group references a teacher that no longer exists")
			return dto.SessionView{}, models.Group{}, ErrTeacherNotFound
		}
		return dto.SessionView{}, models.Group{}, err
	}

	view := dto.SessionView{
		Group: dto.NewSessionGroup(group),
		Tests: dto.NewTestResponseSlice(tests),
		Teacher: dto.SessionTeacher{
			Name:  teacher.Name,
			Email: teacher.Email,
		},
	}

	return view, group, nil
}
