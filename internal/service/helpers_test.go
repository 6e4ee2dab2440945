package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// groupRepoStub is an in-memory GroupRepository.
type groupRepoStub struct {
	groups    map[uint]models.Group
	nextID    uint
	createErr error
	updateErr error
}

func newGroupRepoStub(groups ...models.Group) *groupRepoStub {
	stub := &groupRepoStub{groups: map[uint]models.Group{}}
	for _, group := range groups {
		if group.ID == 0 {
			group.ID = stub.nextID + 1
		}
		if group.ID > stub.nextID {
			stub.nextID = group.ID
		}
		stub.groups[group.ID] = group
	}
	return stub
}

func (g *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	if g.createErr != nil {
		return g.createErr
	}
	g.nextID++
	group.ID = g.nextID
	group.CreatedAt = time.Now()
	g.groups[group.ID] = *group
	return nil
}

func (g *groupRepoStub) GetByID(ctx context.Context, id uint) (models.Group, error) {
	group, ok := g.groups[id]
	if !ok {
		return models.Group{}, gorm.ErrRecordNotFound
	}
	return group, nil
}

func (g *groupRepoStub) GetByName(ctx context.Context, name string) (models.Group, error) {
	for _, id := range g.sortedIDs() {
		if g.groups[id].GroupName == name {
			return g.groups[id], nil
		}
	}
	return models.Group{}, gorm.ErrRecordNotFound
}

func (g *groupRepoStub) List(ctx context.Context) ([]models.Group, error) {
	groups := make([]models.Group, 0, len(g.groups))
	for _, id := range g.sortedIDs() {
		groups = append(groups, g.groups[id])
	}
	return groups, nil
}

func (g *groupRepoStub) ListByTeacher(ctx context.Context, email string) ([]models.Group, error) {
	var groups []models.Group
	for _, id := range g.sortedIDs() {
		if g.groups[id].TeacherEmail == email {
			groups = append(groups, g.groups[id])
		}
	}
	return groups, nil
}

func (g *groupRepoStub) Update(ctx context.Context, group *models.Group) error {
	if g.updateErr != nil {
		return g.updateErr
	}
	if _, ok := g.groups[group.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	g.groups[group.ID] = *group
	return nil
}

func (g *groupRepoStub) Delete(ctx context.Context, id uint) error {
	if _, ok := g.groups[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(g.groups, id)
	return nil
}

func (g *groupRepoStub) FindByStudent(ctx context.Context, name, regNo string) (models.Group, error) {
	for _, id := range g.sortedIDs() {
		if _, ok := g.groups[id].FindStudent(name, regNo); ok {
			return g.groups[id], nil
		}
	}
	return models.Group{}, gorm.ErrRecordNotFound
}

func (g *groupRepoStub) sortedIDs() []uint {
	ids := make([]uint, 0, len(g.groups))
	for id := range g.groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// teacherRepoStub is an in-memory TeacherRepository.
type teacherRepoStub struct {
	teachers  map[uint]models.Teacher
	nextID    uint
	updateErr error
}

func newTeacherRepoStub(teachers ...models.Teacher) *teacherRepoStub {
	stub := &teacherRepoStub{teachers: map[uint]models.Teacher{}}
	for _, teacher := range teachers {
		if teacher.ID == 0 {
			teacher.ID = stub.nextID + 1
		}
		if teacher.ID > stub.nextID {
			stub.nextID = teacher.ID
		}
		stub.teachers[teacher.ID] = teacher
	}
	return stub
}

func (t *teacherRepoStub) Create(ctx context.Context, teacher *models.Teacher) error {
	t.nextID++
	teacher.ID = t.nextID
	teacher.CreatedAt = time.Now()
	t.teachers[teacher.ID] = *teacher
	return nil
}

func (t *teacherRepoStub) GetByID(ctx context.Context, id uint) (models.Teacher, error) {
	teacher, ok := t.teachers[id]
	if !ok {
		return models.Teacher{}, gorm.ErrRecordNotFound
	}
	return teacher, nil
}

func (t *teacherRepoStub) GetByEmail(ctx context.Context, email string) (models.Teacher, error) {
	for _, teacher := range t.teachers {
		if teacher.Email == email {
			return teacher, nil
		}
	}
	return models.Teacher{}, gorm.ErrRecordNotFound
}

func (t *teacherRepoStub) List(ctx context.Context) ([]models.Teacher, error) {
	teachers := make([]models.Teacher, 0, len(t.teachers))
	for _, teacher := range t.teachers {
		teachers = append(teachers, teacher)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (t *teacherRepoStub) ListByStatus(ctx context.Context, status string) ([]models.Teacher, error) {
	var teachers []models.Teacher
	for _, teacher := range t.teachers {
		if teacher.Status == status {
			teachers = append(teachers, teacher)
		}
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (t *teacherRepoStub) Update(ctx context.Context, teacher *models.Teacher) error {
	if t.updateErr != nil {
		return t.updateErr
	}
	if _, ok := t.teachers[teacher.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	t.teachers[teacher.ID] = *teacher
	return nil
}

// testRepoStub is an in-memory TestRepository.
type testRepoStub struct {
	tests  []models.Test
	nextID uint
}

func (t *testRepoStub) Create(ctx context.Context, test *models.Test) error {
	t.nextID++
	test.ID = t.nextID
	test.CreatedAt = time.Now()
	t.tests = append(t.tests, *test)
	return nil
}

func (t *testRepoStub) ListByGroup(ctx context.Context, groupID uint) ([]models.Test, error) {
	var tests []models.Test
	for _, test := range t.tests {
		if test.GroupID == groupID {
			tests = append(tests, test)
		}
	}
	return tests, nil
}

func (t *testRepoStub) ListUpcoming(ctx context.Context, groupID uint, from time.Time) ([]models.Test, error) {
	var tests []models.Test
	for _, test := range t.tests {
		if test.GroupID == groupID && test.IsUpcoming(from) {
			tests = append(tests, test)
		}
	}
	sort.Slice(tests, func(i, j int) bool { return tests[i].Date.Before(tests[j].Date) })
	return tests, nil
}

func (t *testRepoStub) DeleteByGroup(ctx context.Context, groupID uint) error {
	kept := t.tests[:0]
	for _, test := range t.tests {
		if test.GroupID != groupID {
			kept = append(kept, test)
		}
	}
	t.tests = kept
	return nil
}

// reportRepoStub is an in-memory ReportRepository.
type reportRepoStub struct {
	reports map[uint]models.Report
	nextID  uint
}

func newReportRepoStub(reports ...models.Report) *reportRepoStub {
	stub := &reportRepoStub{reports: map[uint]models.Report{}}
	for _, report := range reports {
		if report.ID == 0 {
			report.ID = stub.nextID + 1
		}
		if report.ID > stub.nextID {
			stub.nextID = report.ID
		}
		stub.reports[report.ID] = report
	}
	return stub
}

func (r *reportRepoStub) Create(ctx context.Context, report *models.Report) error {
	r.nextID++
	report.ID = r.nextID
	report.CreatedAt = time.Now()
	r.reports[report.ID] = *report
	return nil
}

func (r *reportRepoStub) GetByID(ctx context.Context, id uint) (models.Report, error) {
	report, ok := r.reports[id]
	if !ok {
		return models.Report{}, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (r *reportRepoStub) List(ctx context.Context) ([]models.Report, error) {
	reports := make([]models.Report, 0, len(r.reports))
	for _, report := range r.reports {
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].ID < reports[j].ID })
	return reports, nil
}

func (r *reportRepoStub) ListByTeacher(ctx context.Context, email string) ([]models.Report, error) {
	var reports []models.Report
	for _, report := range r.reports {
		if report.TeacherEmail == email || report.Email == email {
			reports = append(reports, report)
		}
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].ID < reports[j].ID })
	return reports, nil
}

func (r *reportRepoStub) ListByGroupAndTest(ctx context.Context, groupID uint, testName string) ([]models.Report, error) {
	var reports []models.Report
	for _, report := range r.reports {
		if report.GroupID != nil && *report.GroupID == groupID && report.TestName == testName {
			reports = append(reports, report)
		}
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].ID < reports[j].ID })
	return reports, nil
}

func (r *reportRepoStub) Update(ctx context.Context, report *models.Report) error {
	if _, ok := r.reports[report.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.reports[report.ID] = *report
	return nil
}

func (r *reportRepoStub) Delete(ctx context.Context, id uint) error {
	if _, ok := r.reports[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.reports, id)
	return nil
}

var testDOB = time.Date(2008, time.April, 2, 0, 0, 0, 0, time.UTC)

func validStudent(name, regNo, email string) models.Student {
	return models.Student{
		Name:   name,
		RegNo:  regNo,
		Email:  email,
		Gender: models.GenderFemale,
		DOB:    testDOB,
	}
}
