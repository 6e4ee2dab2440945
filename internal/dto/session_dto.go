package dto

import (
	"time"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// StudentLoginRequest carries the claimed student credentials.
type StudentLoginRequest struct {
	Name  string `json:"name" validate:"required"`
	RegNo string `json:"regNo" validate:"required"`
}

// SessionStudent is the student identity echoed back in a session view.
// Detail fields are only present on the full student-data variant.
type SessionStudent struct {
	Name   string     `json:"name"`
	RegNo  string     `json:"regNo"`
	Email  string     `json:"email,omitempty"`
	Gender string     `json:"gender,omitempty"`
	DOB    *time.Time `json:"dob,omitempty"`
}

// SessionGroup is the group summary included in a session view.
type SessionGroup struct {
	ID                  uint      `json:"id"`
	GroupName           string    `json:"groupName"`
	Section             string    `json:"section"`
	MaxStudents         int       `json:"maxStudents"`
	CurrentStudentCount int       `json:"currentStudentCount"`
	CreatedAt           time.Time `json:"createdAt"`
}

// SessionTeacher is the minimal teacher projection exposed to students.
// It never carries credentials.
type SessionTeacher struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionView is the student-facing authentication result.
type SessionView struct {
	Student SessionStudent `json:"student"`
	Group   SessionGroup   `json:"group"`
	Tests   []TestResponse `json:"tests"`
	Teacher SessionTeacher `json:"teacher"`
}

// NewSessionGroup builds the group summary from a model.
func NewSessionGroup(group models.Group) SessionGroup {
	return SessionGroup{
		ID:                  group.ID,
		GroupName:           group.GroupName,
		Section:             group.Section,
		MaxStudents:         group.MaxStudents,
		CurrentStudentCount: group.CurrentStudentCount,
		CreatedAt:           group.CreatedAt,
	}
}
