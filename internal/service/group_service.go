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

// GroupService exposes group lifecycle use cases.
type GroupService interface {
	Create(ctx context.Context, payload dto.GroupCreateRequest) (dto.GroupResponse, error)
	Get(ctx context.Context, id uint) (dto.GroupResponse, error)
	List(ctx context.Context) ([]dto.GroupResponse, error)
	ListByTeacher(ctx context.Context, email string) ([]dto.GroupResponse, error)
	Update(ctx context.Context, id uint, payload dto.GroupUpdateRequest) (dto.GroupResponse, error)
	Delete(ctx context.Context, id uint) (dto.GroupResponse, error)
}

type groupService struct {
	groups    repository.GroupRepository
	teachers  repository.TeacherRepository
	tests     repository.TestRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewGroupService builds a new group service.
func NewGroupService(groups repository.GroupRepository, teachers repository.TeacherRepository, tests repository.TestRepository, validate *validator.Validate, logger zerolog.Logger) GroupService {
	return &groupService{
		groups:    groups,
		teachers:  teachers,
		tests:     tests,
		validator: validate,
		logger:    logger.With().Str("component", "group_service").Logger(),
	}
}

func (s *groupService) Create(ctx context.Context, payload dto.GroupCreateRequest) (dto.GroupResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GroupResponse{}, err
	}

	teacher, err := s.teachers.GetByEmail(ctx, payload.TeacherEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GroupResponse{}, ErrTeacherNotFound
		}
		return dto.GroupResponse{}, err
	}

	maxStudents := models.DefaultGroupCapacity
	if payload.MaxStudents != nil {
		maxStudents = *payload.MaxStudents
	}

	roster := payload.Students
	if roster == nil {
		roster = []models.Student{}
	}

	count, err := ValidateRoster(roster, maxStudents)
	if err != nil {
		return dto.GroupResponse{}, err
	}

	group := models.Group{
		GroupName:           payload.GroupName,
		Section:             payload.Section,
		TeacherEmail:        payload.TeacherEmail,
		Students:            roster,
		MaxStudents:         maxStudents,
		CurrentStudentCount: count,
	}

	if err := s.groups.Create(ctx, &group); err != nil {
		return dto.GroupResponse{}, err
	}

	// Second step of the two-step saga: the group exists even when the
	// teacher's group list cannot be updated. The inconsistency is logged
	// and repaired by the next successful write.
	s.attachToTeacher(ctx, teacher, group.ID)

	s.logger.Info().Uint("group_id", group.ID).Str("teacher_email", group.TeacherEmail).Msg("group created")

	return dto.NewGroupResponse(group), nil
}

func (s *groupService) Get(ctx context.Context, id uint) (dto.GroupResponse, error) {
	if id == 0 {
		return dto.GroupResponse{}, ErrInvalidIdentity
	}

	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GroupResponse{}, ErrGroupNotFound
		}
		return dto.GroupResponse{}, err
	}

	return dto.NewGroupResponse(group), nil
}

func (s *groupService) List(ctx context.Context) ([]dto.GroupResponse, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewGroupResponseSlice(groups), nil
}

func (s *groupService) ListByTeacher(ctx context.Context, email string) ([]dto.GroupResponse, error) {
	groups, err := s.groups.ListByTeacher(ctx, email)
	if err != nil {
		return nil, err
	}

	return dto.NewGroupResponseSlice(groups), nil
}

func (s *groupService) Update(ctx context.Context, id uint, payload dto.GroupUpdateRequest) (dto.GroupResponse, error) {
	if id == 0 {
		return dto.GroupResponse{}, ErrInvalidIdentity
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.GroupResponse{}, err
	}

	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GroupResponse{}, ErrGroupNotFound
		}
		return dto.GroupResponse{}, err
	}

	if payload.GroupName != nil {
		group.GroupName = *payload.GroupName
	}
	if payload.Section != nil {
		group.Section = *payload.Section
	}
	if payload.Students != nil {
		// Roster edits are validated against the group's existing
		// capacity; capacity itself is not mutable in the same call.
		if _, err := ValidateRoster(*payload.Students, group.MaxStudents); err != nil {
			return dto.GroupResponse{}, err
		}
		group.Students = *payload.Students
	}

	// The stored count is always derived from the roster, never trusted
	// from the caller.
	group.CurrentStudentCount = len(group.Students)

	if err := s.groups.Update(ctx, &group); err != nil {
		return dto.GroupResponse{}, err
	}

	s.logger.Info().Uint("group_id", group.ID).Msg("group updated")

	return dto.NewGroupResponse(group), nil
}

func (s *groupService) Delete(ctx context.Context, id uint) (dto.GroupResponse, error) {
	if id == 0 {
		return dto.GroupResponse{}, ErrInvalidIdentity
	}

	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GroupResponse{}, ErrGroupNotFound
		}
		return dto.GroupResponse{}, err
	}

	if err := s.groups.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GroupResponse{}, ErrGroupNotFound
		}
		return dto.GroupResponse{}, err
	}

	// Tests are scoped to the group and go with it. Reports keep their
	// denormalized group fields and become orphans; report reads already
	// tolerate unresolved groups.
	if err := s.tests.DeleteByGroup(ctx, id); err != nil {
		s.logger.Warn().Err(err).Uint("group_id", id).Msg("failed to cascade-delete group tests")
	}

	s.detachFromTeacher(ctx, group.TeacherEmail, group.ID)

	s.logger.Info().Uint("group_id", id).Msg("group deleted")

	return dto.NewGroupResponse(group), nil
}

func (s *groupService) attachToTeacher(ctx context.Context, teacher models.Teacher, groupID uint) {
	for _, existing := range teacher.GroupIDs {
		if existing == groupID {
			return
		}
	}

	teacher.GroupIDs = append(teacher.GroupIDs, groupID)
	if err := s.teachers.Update(ctx, &teacher); err != nil {
		s.logger.Warn().Err(err).
			Uint("group_id", groupID).
			Str("teacher_email", teacher.Email).
			Msg("group created but teacher group list update failed")
	}
}

func (s *groupService) detachFromTeacher(ctx context.Context, teacherEmail string, groupID uint) {
	teacher, err := s.teachers.GetByEmail(ctx, teacherEmail)
	if err != nil {
		s.logger.Warn().Err(err).
			Uint("group_id", groupID).
			Str("teacher_email", teacherEmail).
			Msg("group deleted but owning teacher could not be resolved")
		return
	}

	kept := teacher.GroupIDs[:0]
	for _, existing := range teacher.GroupIDs {
		if existing != groupID {
			kept = append(kept, existing)
		}
	}
	teacher.GroupIDs = kept

	if err := s.teachers.Update(ctx, &teacher); err != nil {
		s.logger.Warn().Err(err).
			Uint("group_id", groupID).
			Str("teacher_email", teacherEmail).
			Msg("group deleted but teacher group list update failed")
	}
}
