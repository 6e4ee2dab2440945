package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// TeacherRepository defines persistence operations for teacher accounts.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id uint) (models.Teacher, error)
	GetByEmail(ctx context.Context, email string) (models.Teacher, error)
	List(ctx context.Context) ([]models.Teacher, error)
	ListByStatus(ctx context.Context, status string) ([]models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository instantiates a GORM-backed repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) GetByID(ctx context.Context, id uint) (models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, id).Error; err != nil {
		return models.Teacher{}, err
	}

	return teacher, nil
}

func (r *teacherRepository) GetByEmail(ctx context.Context, email string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&teacher).Error; err != nil {
		return models.Teacher{}, err
	}

	return teacher, nil
}

func (r *teacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&teachers).Error; err != nil {
		return nil, err
	}

	return teachers, nil
}

func (r *teacherRepository) ListByStatus(ctx context.Context, status string) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at DESC").Find(&teachers).Error; err != nil {
		return nil, err
	}

	return teachers, nil
}

func (r *teacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}
