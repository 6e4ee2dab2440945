package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

func TestReportRepositoryListByTeacherMatchesLegacyColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)

	current := models.Report{TeacherEmail: "priya@example.com", TestName: "Unit 1"}
	legacy := models.Report{Email: "priya@example.com", TestName: "Unit 1"}
	other := models.Report{TeacherEmail: "other@example.com", TestName: "Unit 1"}
	require.NoError(t, repo.Create(context.Background(), &current))
	require.NoError(t, repo.Create(context.Background(), &legacy))
	require.NoError(t, repo.Create(context.Background(), &other))

	reports, err := repo.ListByTeacher(context.Background(), "priya@example.com")
	require.NoError(t, err)
	require.Len(t, reports, 2, "reports written before the field rename stay visible")
}

func TestReportRepositoryListByGroupAndTest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)

	groupID := uint(3)
	otherGroup := uint(9)
	require.NoError(t, repo.Create(context.Background(), &models.Report{GroupID: &groupID, TestName: "Unit 1", StudentEmail: "asha@example.com"}))
	require.NoError(t, repo.Create(context.Background(), &models.Report{GroupID: &groupID, TestName: "Unit 2", StudentEmail: "asha@example.com"}))
	require.NoError(t, repo.Create(context.Background(), &models.Report{GroupID: &otherGroup, TestName: "Unit 1", StudentEmail: "vikram@example.com"}))
	require.NoError(t, repo.Create(context.Background(), &models.Report{TestName: "Unit 1", StudentEmail: "orphan@example.com"}))

	reports, err := repo.ListByGroupAndTest(context.Background(), groupID, "Unit 1")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "asha@example.com", reports[0].StudentEmail)
}

func TestReportRepositoryAnswersRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)

	report := models.Report{
		TestName: "Unit 1",
		Answers:  map[string]interface{}{"q1": "a", "q2": "c"},
	}
	require.NoError(t, repo.Create(context.Background(), &report))

	stored, err := repo.GetByID(context.Background(), report.ID)
	require.NoError(t, err)
	require.Equal(t, "a", stored.Answers["q1"])
	require.Equal(t, "c", stored.Answers["q2"])
}

func TestReportRepositoryDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)

	err := repo.Delete(context.Background(), 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
