package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuestionOption is one selectable answer for a multiple-choice question.
type QuestionOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Question is a multiple-choice question served from the bank for quiz
// assembly. Removed questions are flagged rather than deleted so historic
// report answer keys keep resolving.
type Question struct {
	ID          uint                                `gorm:"primaryKey" json:"id"`
	Text        string                              `gorm:"type:text;not null" json:"question"`
	Options     datatypes.JSONSlice[QuestionOption] `gorm:"type:json" json:"options"`
	Answer      string                              `gorm:"size:16;not null" json:"answer"`
	Explanation string                              `gorm:"type:text" json:"explanation"`
	Subject     string                              `gorm:"size:64;index" json:"subject"`
	Standard    string                              `gorm:"size:16;index" json:"standard"`
	Deleted     bool                                `gorm:"not null;default:false;index" json:"-"`
	CreatedAt   time.Time                           `json:"createdAt"`
	UpdatedAt   time.Time                           `json:"updatedAt"`
}
