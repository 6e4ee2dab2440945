package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/models"
)

func approvedTeacher(email string) models.Teacher {
	return models.Teacher{
		Name:       "Priya Sharma",
		Email:      email,
		DOB:        testDOB,
		Department: "Science",
		Status:     models.TeacherStatusApproved,
	}
}

func TestGroupServiceCreate(t *testing.T) {
	groups := newGroupRepoStub()
	teachers := newTeacherRepoStub(approvedTeacher("priya@example.com"))
	svc := NewGroupService(groups, teachers, &testRepoStub{}, validator.New(), testLogger())

	payload := dto.GroupCreateRequest{
		GroupName:    "Physics A",
		Section:      "12",
		TeacherEmail: "priya@example.com",
		Students: []models.Student{
			validStudent("Asha Rao", "R001", "asha@example.com"),
			validStudent("Vikram Iyer", "R002", "vikram@example.com"),
		},
	}

	resp, err := svc.Create(context.Background(), payload)
	require.NoError(t, err)
	require.NotZero(t, resp.ID)
	require.Equal(t, 2, resp.CurrentStudentCount)
	require.Equal(t, models.DefaultGroupCapacity, resp.MaxStudents)

	teacher, err := teachers.GetByEmail(context.Background(), "priya@example.com")
	require.NoError(t, err)
	require.Contains(t, []uint(teacher.GroupIDs), resp.ID)
}

func TestGroupServiceCreateCapacityExceeded(t *testing.T) {
	groups := newGroupRepoStub()
	teachers := newTeacherRepoStub(approvedTeacher("priya@example.com"))
	svc := NewGroupService(groups, teachers, &testRepoStub{}, validator.New(), testLogger())

	limit := 2
	payload := dto.GroupCreateRequest{
		GroupName:    "Physics A",
		Section:      "12",
		TeacherEmail: "priya@example.com",
		MaxStudents:  &limit,
		Students: []models.Student{
			validStudent("Asha Rao", "R001", "asha@example.com"),
			validStudent("Vikram Iyer", "R002", "vikram@example.com"),
			validStudent("Meera Nair", "R003", "meera@example.com"),
		},
	}

	_, err := svc.Create(context.Background(), payload)

	var capacity *CapacityError
	require.ErrorAs(t, err, &capacity)
	require.Equal(t, 2, capacity.Limit)
	require.Equal(t, 3, capacity.Attempted)
	require.Empty(t, groups.groups, "rejected create must not persist anything")
}

func TestGroupServiceCreateUnknownTeacher(t *testing.T) {
	svc := NewGroupService(newGroupRepoStub(), newTeacherRepoStub(), &testRepoStub{}, validator.New(), testLogger())

	payload := dto.GroupCreateRequest{
		GroupName:    "Physics A",
		Section:      "12",
		TeacherEmail: "ghost@example.com",
	}

	_, err := svc.Create(context.Background(), payload)
	require.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestGroupServiceCreateSurvivesTeacherListFailure(t *testing.T) {
	groups := newGroupRepoStub()
	teachers := newTeacherRepoStub(approvedTeacher("priya@example.com"))
	teachers.updateErr = errors.New("write conflict")
	svc := NewGroupService(groups, teachers, &testRepoStub{}, validator.New(), testLogger())

	payload := dto.GroupCreateRequest{
		GroupName:    "Physics A",
		Section:      "11",
		TeacherEmail: "priya@example.com",
	}

	resp, err := svc.Create(context.Background(), payload)
	require.NoError(t, err, "group creation must not fail on the teacher list write")
	require.NotZero(t, resp.ID)
	require.Len(t, groups.groups, 1)
}

func TestGroupServiceUpdateRecountsRoster(t *testing.T) {
	groups := newGroupRepoStub(models.Group{
		ID:                  7,
		GroupName:           "Physics A",
		Section:             "12",
		TeacherEmail:        "priya@example.com",
		Students:            models.StudentRoster{validStudent("Asha Rao", "R001", "asha@example.com")},
		MaxStudents:         10,
		CurrentStudentCount: 1,
	})
	svc := NewGroupService(groups, newTeacherRepoStub(), &testRepoStub{}, validator.New(), testLogger())

	roster := []models.Student{
		validStudent("Asha Rao", "R001", "asha@example.com"),
		validStudent("Vikram Iyer", "R002", "vikram@example.com"),
		validStudent("Meera Nair", "R003", "meera@example.com"),
	}
	resp, err := svc.Update(context.Background(), 7, dto.GroupUpdateRequest{Students: &roster})
	require.NoError(t, err)
	require.Equal(t, 3, resp.CurrentStudentCount)

	stored, err := groups.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 3, stored.CurrentStudentCount)
}

func TestGroupServiceUpdateKeepsExistingCapacity(t *testing.T) {
	groups := newGroupRepoStub(models.Group{
		ID:           7,
		GroupName:    "Physics A",
		Section:      "12",
		TeacherEmail: "priya@example.com",
		MaxStudents:  2,
	})
	svc := NewGroupService(groups, newTeacherRepoStub(), &testRepoStub{}, validator.New(), testLogger())

	roster := []models.Student{
		validStudent("Asha Rao", "R001", "asha@example.com"),
		validStudent("Vikram Iyer", "R002", "vikram@example.com"),
		validStudent("Meera Nair", "R003", "meera@example.com"),
	}
	_, err := svc.Update(context.Background(), 7, dto.GroupUpdateRequest{Students: &roster})

	var capacity *CapacityError
	require.ErrorAs(t, err, &capacity)
	require.Equal(t, 2, capacity.Limit)
}

func TestGroupServiceUpdateMissing(t *testing.T) {
	svc := NewGroupService(newGroupRepoStub(), newTeacherRepoStub(), &testRepoStub{}, validator.New(), testLogger())

	name := "Renamed"
	_, err := svc.Update(context.Background(), 42, dto.GroupUpdateRequest{GroupName: &name})
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGroupServiceDeleteCascadesTests(t *testing.T) {
	teachers := newTeacherRepoStub(models.Teacher{
		Name:       "Priya Sharma",
		Email:      "priya@example.com",
		DOB:        testDOB,
		Department: "Science",
		Status:     models.TeacherStatusApproved,
		GroupIDs:   []uint{7, 9},
	})
	groups := newGroupRepoStub(models.Group{ID: 7, GroupName: "Physics A", Section: "12", TeacherEmail: "priya@example.com"})
	tests := &testRepoStub{}
	require.NoError(t, tests.Create(context.Background(), &models.Test{TestName: "Unit 1", GroupID: 7}))
	require.NoError(t, tests.Create(context.Background(), &models.Test{TestName: "Unit 1", GroupID: 9}))

	svc := NewGroupService(groups, teachers, tests, validator.New(), testLogger())

	resp, err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Physics A", resp.GroupName)

	_, err = svc.Get(context.Background(), 7)
	require.ErrorIs(t, err, ErrGroupNotFound)

	remaining, err := tests.ListByGroup(context.Background(), 7)
	require.NoError(t, err)
	require.Empty(t, remaining)

	other, err := tests.ListByGroup(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, other, 1, "tests of other groups must survive")

	teacher, err := teachers.GetByEmail(context.Background(), "priya@example.com")
	require.NoError(t, err)
	require.Equal(t, []uint{9}, []uint(teacher.GroupIDs))
}

func TestGroupServiceGetInvalidID(t *testing.T) {
	svc := NewGroupService(newGroupRepoStub(), newTeacherRepoStub(), &testRepoStub{}, validator.New(), testLogger())

	_, err := svc.Get(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidIdentity)

	_, err = svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, ErrGroupNotFound)
}
