package dto

import (
	"time"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// ReportCreateRequest describes a submitted attempt. Group and student may
// arrive under current or legacy field names; the service resolves them.
type ReportCreateRequest struct {
	GroupID        *uint                  `json:"groupId"`
	GroupName      string                 `json:"groupName"`
	Group          string                 `json:"group"`
	StudentName    string                 `json:"studentName"`
	Student        string                 `json:"student"`
	StudentEmail   string                 `json:"studentEmail" validate:"omitempty,email"`
	TeacherEmail   string                 `json:"teacherEmail" validate:"omitempty,email"`
	TestName       string                 `json:"testName" validate:"required"`
	Subject        string                 `json:"subject"`
	Standard       string                 `json:"standard"`
	Score          int                    `json:"score"`
	TotalQuestions int                    `json:"totalQuestions"`
	Answers        map[string]interface{} `json:"answers"`
	TimeTaken      int                    `json:"timeTaken"`
	Date           string                 `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ReportUpdateRequest carries the narrow backward-compatibility patch: the
// legacy email field updates the student email.
type ReportUpdateRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
}

// ReportResponse is the serialized representation returned to API clients.
type ReportResponse struct {
	ID             uint                   `json:"id"`
	TeacherEmail   string                 `json:"teacherEmail"`
	StudentEmail   string                 `json:"studentEmail"`
	StudentName    string                 `json:"studentName"`
	GroupID        *uint                  `json:"groupId"`
	GroupName      string                 `json:"groupName"`
	TestName       string                 `json:"testName"`
	Subject        string                 `json:"subject"`
	Standard       string                 `json:"standard"`
	Score          int                    `json:"score"`
	TotalQuestions int                    `json:"totalQuestions"`
	Answers        map[string]interface{} `json:"answers"`
	TimeTaken      int                    `json:"timeTaken"`
	Date           time.Time              `json:"date"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// NewReportResponse converts a model into a DTO.
func NewReportResponse(model models.Report) ReportResponse {
	return ReportResponse{
		ID:             model.ID,
		TeacherEmail:   model.TeacherEmail,
		StudentEmail:   model.StudentEmail,
		StudentName:    model.StudentName,
		GroupID:        model.GroupID,
		GroupName:      model.GroupName,
		TestName:       model.TestName,
		Subject:        model.Subject,
		Standard:       model.Standard,
		Score:          model.Score,
		TotalQuestions: model.TotalQuestions,
		Answers:        model.Answers,
		TimeTaken:      model.TimeTaken,
		Date:           model.Date,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// NewReportResponseSlice converts a slice of models into DTOs.
func NewReportResponseSlice(reports []models.Report) []ReportResponse {
	responses := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, NewReportResponse(report))
	}

	return responses
}

// RosterMember is a normalized roster entry used in completion results.
type RosterMember struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CompletionStatusResponse partitions a group's roster by whether each
// member has a matching report for the named test.
type CompletionStatusResponse struct {
	GroupID          uint           `json:"groupId"`
	TestName         string         `json:"testName"`
	TotalStudents    int            `json:"totalStudents"`
	FinishedCount    int            `json:"finishedCount"`
	NotFinishedCount int            `json:"notFinishedCount"`
	Finished         []RosterMember `json:"finished"`
	NotFinished      []RosterMember `json:"notFinished"`
}
