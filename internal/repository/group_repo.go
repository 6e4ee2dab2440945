package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

// GroupRepository defines persistence operations for groups.
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uint) (models.Group, error)
	GetByName(ctx context.Context, name string) (models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	ListByTeacher(ctx context.Context, email string) ([]models.Group, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id uint) error
	FindByStudent(ctx context.Context, name, regNo string) (models.Group, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository instantiates a GORM-backed repository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return models.Group{}, err
	}

	return group, nil
}

func (r *groupRepository) GetByName(ctx context.Context, name string) (models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).Where("group_name = ?", name).First(&group).Error; err != nil {
		return models.Group{}, err
	}

	return group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepository) ListByTeacher(ctx context.Context, email string) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).Where("teacher_email = ?", email).Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepository) Update(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Group{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByStudent returns the first group whose roster contains a student
// matching the claimed name and registration number. The roster lives in a
// JSON column, so matching happens in memory over groups in ascending id
// order; when several groups contain the same name+regNo pair the earliest
// group wins.
func (r *groupRepository) FindByStudent(ctx context.Context, name, regNo string) (models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&groups).Error; err != nil {
		return models.Group{}, err
	}

	for _, group := range groups {
		if _, ok := group.FindStudent(name, regNo); ok {
			return group, nil
		}
	}

	return models.Group{}, gorm.ErrRecordNotFound
}
