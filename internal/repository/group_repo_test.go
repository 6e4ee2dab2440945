package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Teacher{}, &models.Group{}, &models.Test{}, &models.Report{}, &models.Question{}))
	return db
}

func rosterStudent(name, regNo, email string) models.Student {
	return models.Student{
		Name:   name,
		RegNo:  regNo,
		Email:  email,
		Gender: models.GenderMale,
		DOB:    time.Date(2008, time.April, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestGroupRepositoryRoundTripsRoster(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	group := models.Group{
		GroupName:    "Physics A",
		Section:      "12",
		TeacherEmail: "priya@example.com",
		Students: models.StudentRoster{
			rosterStudent("Asha Rao", "R001", "asha@example.com"),
			rosterStudent("Vikram Iyer", "R002", "vikram@example.com"),
		},
		MaxStudents:         50,
		CurrentStudentCount: 2,
	}
	require.NoError(t, repo.Create(context.Background(), &group))
	require.NotZero(t, group.ID)

	stored, err := repo.GetByID(context.Background(), group.ID)
	require.NoError(t, err)
	require.Len(t, stored.Students, 2)
	require.Equal(t, "Asha Rao", stored.Students[0].Name)
	require.Equal(t, "R002", stored.Students[1].RegNo)
}

func TestGroupRepositoryGetByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.Group{GroupName: "Physics A", Section: "12", TeacherEmail: "priya@example.com"}))

	group, err := repo.GetByName(context.Background(), "Physics A")
	require.NoError(t, err)
	require.Equal(t, "Physics A", group.GroupName)

	_, err = repo.GetByName(context.Background(), "Chemistry B")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGroupRepositoryListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	older := models.Group{GroupName: "Older", Section: "11", TeacherEmail: "priya@example.com", CreatedAt: time.Now().Add(-2 * time.Hour)}
	newer := models.Group{GroupName: "Newer", Section: "12", TeacherEmail: "priya@example.com", CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	groups, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "Newer", groups[0].GroupName, "expected newest group first")
}

func TestGroupRepositoryListByTeacher(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.Group{GroupName: "Mine", Section: "12", TeacherEmail: "priya@example.com"}))
	require.NoError(t, repo.Create(context.Background(), &models.Group{GroupName: "Theirs", Section: "12", TeacherEmail: "other@example.com"}))

	groups, err := repo.ListByTeacher(context.Background(), "priya@example.com")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, "Mine", groups[0].GroupName)
}

func TestGroupRepositoryDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	err := repo.Delete(context.Background(), 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGroupRepositoryFindByStudent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	first := models.Group{
		GroupName:    "Physics A",
		Section:      "12",
		TeacherEmail: "priya@example.com",
		Students:     models.StudentRoster{rosterStudent("Asha Rao", "R001", "asha@example.com")},
	}
	second := models.Group{
		GroupName:    "Physics B",
		Section:      "12",
		TeacherEmail: "priya@example.com",
		Students:     models.StudentRoster{rosterStudent("Asha Rao", "R001", "asha.b@example.com")},
	}
	require.NoError(t, repo.Create(context.Background(), &first))
	require.NoError(t, repo.Create(context.Background(), &second))

	group, err := repo.FindByStudent(context.Background(), "ASHA RAO", "r001")
	require.NoError(t, err, "lookup is case-insensitive on both fields")
	require.Equal(t, first.ID, group.ID, "the earliest matching group wins")

	_, err = repo.FindByStudent(context.Background(), "Nobody", "R999")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
