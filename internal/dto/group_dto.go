package dto

import (
	"time"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// GroupCreateRequest describes the payload for creating a new group.
type GroupCreateRequest struct {
	GroupName    string           `json:"groupName" validate:"required"`
	Section      string           `json:"section" validate:"required,oneof=11 12"`
	TeacherEmail string           `json:"teacherEmail" validate:"required,email"`
	Students     []models.Student `json:"students"`
	MaxStudents  *int             `json:"maxStudents" validate:"omitempty,min=1,max=100"`
}

// GroupUpdateRequest describes a partial group update. Only supplied fields
// are merged; capacity is not editable through this payload.
type GroupUpdateRequest struct {
	GroupName *string           `json:"groupName" validate:"omitempty,min=1"`
	Section   *string           `json:"section" validate:"omitempty,oneof=11 12"`
	Students  *[]models.Student `json:"students"`
}

// GroupResponse is the serialized representation returned to API clients.
type GroupResponse struct {
	ID                  uint             `json:"id"`
	GroupName           string           `json:"groupName"`
	Section             string           `json:"section"`
	TeacherEmail        string           `json:"teacherEmail"`
	Students            []models.Student `json:"students"`
	MaxStudents         int              `json:"maxStudents"`
	CurrentStudentCount int              `json:"currentStudentCount"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// NewGroupResponse converts a model into a DTO.
func NewGroupResponse(model models.Group) GroupResponse {
	students := model.Students
	if students == nil {
		students = models.StudentRoster{}
	}

	return GroupResponse{
		ID:                  model.ID,
		GroupName:           model.GroupName,
		Section:             model.Section,
		TeacherEmail:        model.TeacherEmail,
		Students:            students,
		MaxStudents:         model.MaxStudents,
		CurrentStudentCount: model.CurrentStudentCount,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

// NewGroupResponseSlice converts a slice of models into DTOs.
func NewGroupResponseSlice(groups []models.Group) []GroupResponse {
	responses := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, NewGroupResponse(group))
	}

	return responses
}
