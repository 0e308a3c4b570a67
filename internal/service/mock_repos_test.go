package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/calendarstore"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
	apperrors "github.com/gemini-dk/campus-calendar-web-sub000/pkg/errors"
)

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
	seq     int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == "" {
		m.seq++
		course.CourseID = fmt.Sprintf("course-%03d", m.seq)
	}
	if course.Version == 0 {
		course.Version = 1
	}
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		// 返回副本，模拟真实仓库的独立查询结果
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context, fiscalYear int, calendarID string, offset, limit int) ([]model.Course, int64, error) {
	var result []model.Course
	for _, c := range m.courses {
		if fiscalYear > 0 && c.FiscalYear != fiscalYear {
			continue
		}
		if calendarID != "" && c.CalendarID != calendarID {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	existing, ok := m.courses[course.CourseID]
	if !ok || existing.Version != course.Version {
		return apperrors.ErrOptimisticLock
	}
	course.Version++
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.courses, id)
	return nil
}

// ── Mock ClassOccurrenceRepository ──

type mockOccurrenceRepo struct {
	occurrences map[string][]model.ClassOccurrence // courseID → 授业回
	replaceErr  error                              // 注入事务失败
}

func newMockOccurrenceRepo() *mockOccurrenceRepo {
	return &mockOccurrenceRepo{occurrences: make(map[string][]model.ClassOccurrence)}
}

func (m *mockOccurrenceRepo) ReplaceByCourse(_ context.Context, courseID string, occurrences []model.ClassOccurrence) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.occurrences[courseID] = occurrences
	return nil
}

func (m *mockOccurrenceRepo) ListByCourse(_ context.Context, courseID string) ([]model.ClassOccurrence, error) {
	result := append([]model.ClassOccurrence(nil), m.occurrences[courseID]...)
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockOccurrenceRepo) CountByCourse(_ context.Context, courseID string) (int64, error) {
	return int64(len(m.occurrences[courseID])), nil
}

func (m *mockOccurrenceRepo) DeleteByCourse(_ context.Context, courseID string) error {
	delete(m.occurrences, courseID)
	return nil
}

// ── Mock 学年暦数据源 ──

type mockStore struct {
	snapshot *calendarstore.Snapshot
	err      error
	calls    int
}

func (m *mockStore) FetchSnapshot(_ context.Context, _ int, _ string) (*calendarstore.Snapshot, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

func (m *mockStore) Invalidate(_ context.Context, _ int, _ string) error {
	return nil
}
