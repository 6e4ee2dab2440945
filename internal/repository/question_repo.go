package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// QuestionFilter narrows question bank listings.
type QuestionFilter struct {
	Subject  string
	Standard string
	Limit    int
}

// QuestionRepository defines persistence operations for the question bank.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	ListFiltered(ctx context.Context, filter QuestionFilter) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository instantiates a GORM-backed repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) ListFiltered(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	query := r.db.WithContext(ctx).Where("deleted = ?", false)

	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Standard != "" {
		query = query.Where("standard = ?", filter.Standard)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}

	return questions, nil
}
