package service

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/repository"
)

// QuestionService serves the question bank for quiz assembly.
type QuestionService interface {
	List(ctx context.Context, subject, standard string, limit int) ([]dto.QuestionResponse, error)
	Sample(ctx context.Context, subject, standard string, count int) ([]dto.QuestionResponse, error)
}

type questionService struct {
	questions repository.QuestionRepository
	logger    zerolog.Logger
	shuffle   func(n int, swap func(i, j int))
}

// NewQuestionService builds a new question bank service.
func NewQuestionService(questions repository.QuestionRepository, logger zerolog.Logger) QuestionService {
	return &questionService{
		questions: questions,
		logger:    logger.With().Str("component", "question_service").Logger(),
		shuffle:   rand.Shuffle,
	}
}

func (s *questionService) List(ctx context.Context, subject, standard string, limit int) ([]dto.QuestionResponse, error) {
	questions, err := s.questions.ListFiltered(ctx, repository.QuestionFilter{
		Subject:  subject,
		Standard: standard,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	return dto.NewQuestionResponseSlice(questions), nil
}

// Sample draws count questions uniformly at random without replacement from
// the filtered bank. Fewer questions than requested is not an error; the
// whole filtered set is returned shuffled in that case.
func (s *questionService) Sample(ctx context.Context, subject, standard string, count int) ([]dto.QuestionResponse, error) {
	if count <= 0 {
		return nil, NewValidationError("count", "count must be positive")
	}

	questions, err := s.questions.ListFiltered(ctx, repository.QuestionFilter{
		Subject:  subject,
		Standard: standard,
	})
	if err != nil {
		return nil, err
	}

	s.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	if count < len(questions) {
		questions = questions[:count]
	}

	return dto.NewQuestionResponseSlice(questions), nil
}
