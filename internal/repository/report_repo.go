package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// ReportRepository defines persistence operations for attempt reports.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uint) (models.Report, error)
	List(ctx context.Context) ([]models.Report, error)
	ListByTeacher(ctx context.Context, email string) ([]models.Report, error)
	ListByGroupAndTest(ctx context.Context, groupID uint, testName string) ([]models.Report, error)
	Update(ctx context.Context, report *models.Report) error
	Delete(ctx context.Context, id uint) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository instantiates a GORM-backed repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetByID(ctx context.Context, id uint) (models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return models.Report{}, err
	}

	return report, nil
}

func (r *reportRepository) List(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}

	return reports, nil
}

// ListByTeacher matches the teacher email column as well as the legacy
// generic email column so reports written before the field rename stay
// visible.
func (r *reportRepository) ListByTeacher(ctx context.Context, email string) ([]models.Report, error) {
	var reports []models.Report
	if err := r.db.WithContext(ctx).
		Where("teacher_email = ? OR email = ?", email, email).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *reportRepository) ListByGroupAndTest(ctx context.Context, groupID uint, testName string) ([]models.Report, error) {
	var reports []models.Report
	if err := r.db.WithContext(ctx).
		Where("group_id = ? AND test_name = ?", groupID, testName).
		Find(&reports).Error; err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *reportRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Report{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
