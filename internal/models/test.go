package models

import "time"

// DefaultTestSubject is used when a test is scheduled without a subject.
const DefaultTestSubject = "General"

// Test is a scheduled assessment event scoped to exactly one group.
type Test struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TestName      string    `gorm:"size:255;not null" json:"testName"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	Time          string    `gorm:"size:16;not null" json:"time"`
	Subject       string    `gorm:"size:64;not null;default:General" json:"subject"`
	QuestionCount int       `json:"questionCount"`
	Standard      string    `gorm:"size:16" json:"standard"`
	GroupID       uint      `gorm:"not null;index" json:"groupId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IsUpcoming reports whether the test is scheduled on or after the given day.
func (t Test) IsUpcoming(today time.Time) bool {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return !t.Date.Before(day)
}
