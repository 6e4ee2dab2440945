package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

func TestTestRepositoryListUpcoming(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestRepository(db)

	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC)
	yesterday := models.Test{TestName: "Yesterday", Date: now.AddDate(0, 0, -1), Time: "10:00", GroupID: 3}
	today := models.Test{TestName: "Today", Date: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), Time: "10:00", GroupID: 3}
	nextWeek := models.Test{TestName: "Next Week", Date: now.AddDate(0, 0, 7), Time: "10:00", GroupID: 3}
	otherGroup := models.Test{TestName: "Elsewhere", Date: now.AddDate(0, 0, 1), Time: "10:00", GroupID: 9}

	for _, test := range []*models.Test{&yesterday, &today, &nextWeek, &otherGroup} {
		require.NoError(t, repo.Create(context.Background(), test))
	}

	tests, err := repo.ListUpcoming(context.Background(), 3, now)
	require.NoError(t, err)
	require.Len(t, tests, 2)
	require.Equal(t, "Today", tests[0].TestName, "a test scheduled earlier today is still upcoming")
	require.Equal(t, "Next Week", tests[1].TestName)
}

func TestTestRepositoryListByGroupNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestRepository(db)

	early := models.Test{TestName: "Early", Date: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), Time: "10:00", GroupID: 3}
	late := models.Test{TestName: "Late", Date: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), Time: "10:00", GroupID: 3}
	require.NoError(t, repo.Create(context.Background(), &early))
	require.NoError(t, repo.Create(context.Background(), &late))

	tests, err := repo.ListByGroup(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, tests, 2)
	require.Equal(t, "Late", tests[0].TestName)
}

func TestTestRepositoryDeleteByGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTestRepository(db)

	date := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), &models.Test{TestName: "Doomed", Date: date, Time: "10:00", GroupID: 3}))
	require.NoError(t, repo.Create(context.Background(), &models.Test{TestName: "Safe", Date: date, Time: "10:00", GroupID: 9}))

	require.NoError(t, repo.DeleteByGroup(context.Background(), 3))

	gone, err := repo.ListByGroup(context.Background(), 3)
	require.NoError(t, err)
	require.Empty(t, gone)

	kept, err := repo.ListByGroup(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, kept, 1)
}
