package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/models"
	"github.com/gyruslabs/gyrus-api/internal/repository"
)

// CompletionService classifies a group's roster by test completion.
type CompletionService interface {
	CompletionStatus(ctx context.Context, groupID uint, testName string) (dto.CompletionStatusResponse, error)
}

type completionService struct {
	groups  repository.GroupRepository
	reports repository.ReportRepository
	logger  zerolog.Logger
}

// NewCompletionService builds a new completion aggregator.
func NewCompletionService(groups repository.GroupRepository, reports repository.ReportRepository, logger zerolog.Logger) CompletionService {
	return &completionService{
		groups:  groups,
		reports: reports,
		logger:  logger.With().Str("component", "completion_service").Logger(),
	}
}

// CompletionStatus partitions the group's roster into members with and
// without a report for the named test. Matching is by email equality only:
// a report without a student email can never match a roster entry, so such
// attempts stay invisible here. There is no reliable identity fallback, so
// no name-based matching is attempted.
func (s *completionService) CompletionStatus(ctx context.Context, groupID uint, testName string) (dto.CompletionStatusResponse, error) {
	if groupID == 0 {
		return dto.CompletionStatusResponse{}, ErrInvalidIdentity
	}
	if testName == "" {
		return dto.CompletionStatusResponse{}, NewValidationError("testName", "test name is required")
	}

	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompletionStatusResponse{}, ErrGroupNotFound
		}
		return dto.CompletionStatusResponse{}, err
	}

	roster := normalizeRoster(group.Students)

	reports, err := s.reports.ListByGroupAndTest(ctx, groupID, testName)
	if err != nil {
		return dto.CompletionStatusResponse{}, err
	}

	finishedEmails := make(map[string]struct{}, len(reports))
	for _, report := range reports {
		if report.StudentEmail != "" {
			finishedEmails[report.StudentEmail] = struct{}{}
		}
	}

	finished := make([]dto.RosterMember, 0, len(roster))
	notFinished := make([]dto.RosterMember, 0, len(roster))
	for _, member := range roster {
		if _, ok := finishedEmails[member.Email]; ok && member.Email != "" {
			finished = append(finished, member)
		} else {
			notFinished = append(notFinished, member)
		}
	}

	return dto.CompletionStatusResponse{
		GroupID:          groupID,
		TestName:         testName,
		TotalStudents:    len(roster),
		FinishedCount:    len(finished),
		NotFinishedCount: len(notFinished),
		Finished:         finished,
		NotFinished:      notFinished,
	}, nil
}

// normalizeRoster flattens roster entries into name/email pairs. Rosters
// written by earlier schema revisions may hold bare email strings, which
// decode into entries with only the email set.
func normalizeRoster(roster models.StudentRoster) []dto.RosterMember {
	members := make([]dto.RosterMember, 0, len(roster))
	for _, student := range roster {
		members = append(members, dto.RosterMember{
			Name:  student.Name,
			Email: student.Email,
		})
	}

	return members
}
