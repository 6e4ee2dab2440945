package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// TestRepository defines persistence operations for scheduled tests.
type TestRepository interface {
	Create(ctx context.Context, test *models.Test) error
	ListByGroup(ctx context.Context, groupID uint) ([]models.Test, error)
	ListUpcoming(ctx context.Context, groupID uint, from time.Time) ([]models.Test, error)
	DeleteByGroup(ctx context.Context, groupID uint) error
}

type testRepository struct {
	db *gorm.DB
}

// NewTestRepository instantiates a GORM-backed repository.
func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *models.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) ListByGroup(ctx context.Context, groupID uint) ([]models.Test, error) {
	var tests []models.Test
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("date DESC").Find(&tests).Error; err != nil {
		return nil, err
	}

	return tests, nil
}

// ListUpcoming returns tests scheduled on or after the start of the given
// day, earliest first. This is the student-facing ordering; teacher listings
// use ListByGroup which sorts newest first.
func (r *testRepository) ListUpcoming(ctx context.Context, groupID uint, from time.Time) ([]models.Test, error) {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	var tests []models.Test
	if err := r.db.WithContext(ctx).Where("group_id = ? AND date >= ?", groupID, day).Order("date ASC").Find(&tests).Error; err != nil {
		return nil, err
	}

	return tests, nil
}

func (r *testRepository) DeleteByGroup(ctx context.Context, groupID uint) error {
	return r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&models.Test{}).Error
}
