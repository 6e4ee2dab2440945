package dto

import "github.com/gyruslabs/gyrus-api/internal/models"

// QuestionResponse is a bank question as served for quiz assembly.
type QuestionResponse struct {
	ID          uint                    `json:"id"`
	Question    string                  `json:"question"`
	Options     []models.QuestionOption `json:"options"`
	Answer      string                  `json:"answer"`
	Explanation string                  `json:"explanation,omitempty"`
	Subject     string                  `json:"subject"`
	Standard    string                  `json:"standard"`
}

// NewQuestionResponse converts a model into a DTO.
func NewQuestionResponse(model models.Question) QuestionResponse {
	options := []models.QuestionOption(model.Options)
	if options == nil {
		options = []models.QuestionOption{}
	}

	return QuestionResponse{
		ID:          model.ID,
		Question:    model.Text,
		Options:     options,
		Answer:      model.Answer,
		Explanation: model.Explanation,
		Subject:     model.Subject,
		Standard:    model.Standard,
	}
}

// NewQuestionResponseSlice converts a slice of models into DTOs.
func NewQuestionResponseSlice(questions []models.Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for _, question := range questions {
		responses = append(responses, NewQuestionResponse(question))
	}

	return responses
}
