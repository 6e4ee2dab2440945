package dto

import (
	"time"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// TestCreateRequest describes the payload for scheduling a test.
type TestCreateRequest struct {
	TestName      string `json:"testName" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required"`
	Subject       string `json:"subject"`
	QuestionCount int    `json:"questionCount" validate:"omitempty,min=0"`
	Standard      string `json:"standard"`
	GroupID       uint   `json:"groupId" validate:"required"`
}

// TestResponse is the serialized representation returned to API clients.
type TestResponse struct {
	ID            uint      `json:"id"`
	TestName      string    `json:"testName"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Subject       string    `json:"subject"`
	QuestionCount int       `json:"questionCount"`
	Standard      string    `json:"standard"`
	GroupID       uint      `json:"groupId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewTestResponse converts a model into a DTO.
func NewTestResponse(model models.Test) TestResponse {
	return TestResponse{
		ID:            model.ID,
		TestName:      model.TestName,
		Date:          model.Date,
		Time:          model.Time,
		Subject:       model.Subject,
		QuestionCount: model.QuestionCount,
		Standard:      model.Standard,
		GroupID:       model.GroupID,
		CreatedAt:     model.CreatedAt,
	}
}

// NewTestResponseSlice converts a slice of models into DTOs.
func NewTestResponseSlice(tests []models.Test) []TestResponse {
	responses := make([]TestResponse, 0, len(tests))
	for _, test := range tests {
		responses = append(responses, NewTestResponse(test))
	}

	return responses
}
