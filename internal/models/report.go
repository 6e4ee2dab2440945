package models

import (
	"time"

	"gorm.io/datatypes"
)

// Report records one submitted attempt of one test by one student. The
// teacher email and group name are denormalized copies taken from the
// owning group at write time; the group remains authoritative over them.
// Nothing enforces one report per (student, test) pair.
type Report struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	TeacherEmail   string            `gorm:"size:255;index" json:"teacherEmail"`
	Email          string            `gorm:"size:255;index" json:"email,omitempty"`
	StudentEmail   string            `gorm:"size:255;index" json:"studentEmail"`
	StudentName    string            `gorm:"size:255" json:"studentName"`
	GroupID        *uint             `gorm:"index" json:"groupId"`
	GroupName      string            `gorm:"size:255" json:"groupName"`
	TestName       string            `gorm:"size:255;index" json:"testName"`
	Subject        string            `gorm:"size:64" json:"subject"`
	Standard       string            `gorm:"size:16" json:"standard"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"totalQuestions"`
	Answers        datatypes.JSONMap `gorm:"type:json" json:"answers"`
	TimeTaken      int               `json:"timeTaken"`
	Date           time.Time         `json:"date"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
