package models

import (
	"time"

	"gorm.io/datatypes"
)

// Teacher join-request statuses.
const (
	TeacherStatusPending  = "pending"
	TeacherStatusApproved = "approved"
	TeacherStatusRejected = "rejected"
)

// Teacher is a registered (or registering) teacher account. Groups owned by
// the teacher are tracked as a list of group identifiers; the list is
// maintained best-effort alongside group writes and may lag behind.
type Teacher struct {
	ID           uint                      `gorm:"primaryKey" json:"id"`
	Name         string                    `gorm:"size:255;not null" json:"name"`
	Email        string                    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	DOB          time.Time                 `gorm:"not null" json:"dob"`
	Department   string                    `gorm:"size:255;not null" json:"department"`
	PasswordHash string                    `gorm:"size:255;not null" json:"-"`
	Phone        string                    `gorm:"size:32" json:"phone,omitempty"`
	School       string                    `gorm:"size:255" json:"school,omitempty"`
	ProfileImage string                    `gorm:"size:512" json:"profileImage,omitempty"`
	Status       string                    `gorm:"size:16;not null;default:pending" json:"status"`
	GroupIDs     datatypes.JSONSlice[uint] `gorm:"type:json" json:"groups"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

// IsApproved reports whether the teacher may sign in.
func (t Teacher) IsApproved() bool {
	return t.Status == TeacherStatusApproved
}
