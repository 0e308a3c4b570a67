package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/calendarstore"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/dto"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/repository"
)

// ── 测试辅助 ──

func testSnapshot() *calendarstore.Snapshot {
	return &calendarstore.Snapshot{
		FiscalYear: 2025,
		CalendarID: "cal-main",
		Terms:      testTerms,
		Days:       mondayDays("term-1", nil),
	}
}

func setupTestScheduleService(store *mockStore) (ScheduleService, *mockCourseRepo, *mockOccurrenceRepo) {
	courseRepo := newMockCourseRepo()
	occRepo := newMockOccurrenceRepo()
	repo := &repository.Repository{
		Course:          courseRepo,
		ClassOccurrence: occRepo,
	}
	svc := NewScheduleService(repo, store, zap.NewNop())
	return svc, courseRepo, occRepo
}

func seedCourse(courseRepo *mockCourseRepo) *model.Course {
	course := &model.Course{
		CourseID:      "course-001",
		Name:          "情報処理概論",
		FiscalYear:    2025,
		CalendarID:    "cal-main",
		TermIDs:       []string{"term-1"},
		WeeklySlots:   []model.WeeklySlot{{DayOfWeek: 1, Period: 1}},
		SpecialOption: model.SpecialOptionAll,
		AbsencePolicy: model.AbsencePolicyThreshold70,
	}
	course.Version = 1
	courseRepo.courses[course.CourseID] = course
	return course
}

// ── Preview 测试 ──

func TestScheduleService_Preview_Success(t *testing.T) {
	svc, _, _ := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})

	result, err := svc.Preview(context.Background(), &dto.GenerateScheduleRequest{
		FiscalYear:  2025,
		CalendarID:  "cal-main",
		TermIDs:     []string{"term-1"},
		WeeklySlots: []model.WeeklySlot{{DayOfWeek: 1, Period: 1}},
	})
	if err != nil {
		t.Fatalf("Preview 应成功: %v", err)
	}
	if result.TotalSessions != 3 {
		t.Errorf("期望 TotalSessions=3，实际=%d", result.TotalSessions)
	}
	if result.Empty {
		t.Error("有生成结果时 Empty 应为 false")
	}
	if result.Truncated {
		t.Error("未设截断上限时 Truncated 应为 false")
	}
}

func TestScheduleService_Preview_Truncation(t *testing.T) {
	svc, _, _ := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})

	result, err := svc.Preview(context.Background(), &dto.GenerateScheduleRequest{
		FiscalYear:   2025,
		CalendarID:   "cal-main",
		TermIDs:      []string{"term-1"},
		WeeklySlots:  []model.WeeklySlot{{DayOfWeek: 1, Period: 1}},
		PreviewLimit: 2,
	})
	if err != nil {
		t.Fatalf("Preview 应成功: %v", err)
	}
	if len(result.Dates) != 2 {
		t.Errorf("期望截断为 2 条，实际=%d", len(result.Dates))
	}
	if result.TotalSessions != 3 {
		t.Errorf("截断不应影响 TotalSessions，实际=%d", result.TotalSessions)
	}
	if !result.Truncated {
		t.Error("期望 Truncated=true")
	}
}

func TestScheduleService_Preview_EmptyIsNotError(t *testing.T) {
	svc, _, _ := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})

	// 选了无授业日的学期 → 空结果但不是错误
	result, err := svc.Preview(context.Background(), &dto.GenerateScheduleRequest{
		FiscalYear:  2025,
		CalendarID:  "cal-main",
		TermIDs:     []string{"term-2"},
		WeeklySlots: []model.WeeklySlot{{DayOfWeek: 1, Period: 1}},
	})
	if err != nil {
		t.Fatalf("空生成结果不应报错: %v", err)
	}
	if !result.Empty {
		t.Error("期望 Empty=true")
	}
	if result.RecommendedMaxAbsence != 0 {
		t.Errorf("空结果推荐欠席上限应为 0，实际=%d", result.RecommendedMaxAbsence)
	}
}

func TestScheduleService_Preview_NoSelection(t *testing.T) {
	svc, _, _ := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})

	_, err := svc.Preview(context.Background(), &dto.GenerateScheduleRequest{
		FiscalYear: 2025, CalendarID: "cal-main",
		WeeklySlots: []model.WeeklySlot{{DayOfWeek: 1, Period: 1}},
	})
	if !errors.Is(err, ErrScheduleNoTermsSelected) {
		t.Errorf("期望 ErrScheduleNoTermsSelected，实际: %v", err)
	}

	_, err = svc.Preview(context.Background(), &dto.GenerateScheduleRequest{
		FiscalYear: 2025, CalendarID: "cal-main", TermIDs: []string{"term-1"},
	})
	if !errors.Is(err, ErrScheduleNoSlotsSelected) {
		t.Errorf("期望 ErrScheduleNoSlotsSelected，实际: %v", err)
	}
}

func TestScheduleService_Preview_DataFetchError(t *testing.T) {
	svc, _, _ := setupTestScheduleService(&mockStore{err: calendarstore.ErrDataFetch})

	_, err := svc.Preview(context.Background(), &dto.GenerateScheduleRequest{
		FiscalYear:  2025,
		CalendarID:  "cal-main",
		TermIDs:     []string{"term-1"},
		WeeklySlots: []model.WeeklySlot{{DayOfWeek: 1, Period: 1}},
	})
	if !errors.Is(err, calendarstore.ErrDataFetch) {
		t.Errorf("期望 ErrDataFetch 透传，实际: %v", err)
	}
}

// ── SaveForCourse 测试 ──

func TestScheduleService_Save_Success(t *testing.T) {
	svc, courseRepo, occRepo := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})
	course := seedCourse(courseRepo)

	result, err := svc.SaveForCourse(context.Background(), course.CourseID)
	if err != nil {
		t.Fatalf("SaveForCourse 应成功: %v", err)
	}
	if result.SavedCount != 3 {
		t.Errorf("期望 SavedCount=3，实际=%d", result.SavedCount)
	}
	if len(occRepo.occurrences[course.CourseID]) != 3 {
		t.Errorf("期望落库 3 条授业回，实际=%d", len(occRepo.occurrences[course.CourseID]))
	}
}

func TestScheduleService_Save_DeterministicIDs(t *testing.T) {
	svc, courseRepo, occRepo := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})
	course := seedCourse(courseRepo)

	if _, err := svc.SaveForCourse(context.Background(), course.CourseID); err != nil {
		t.Fatalf("第一次保存失败: %v", err)
	}
	first := append([]model.ClassOccurrence(nil), occRepo.occurrences[course.CourseID]...)

	if _, err := svc.SaveForCourse(context.Background(), course.CourseID); err != nil {
		t.Fatalf("第二次保存失败: %v", err)
	}
	second := occRepo.occurrences[course.CourseID]

	if len(first) != len(second) {
		t.Fatalf("两次保存条数不一致: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].OccurrenceID != second[i].OccurrenceID {
			t.Errorf("第 %d 条授业回标识不稳定: %s vs %s",
				i, first[i].OccurrenceID, second[i].OccurrenceID)
		}
	}
}

func TestScheduleService_Save_DataFetchKeepsExisting(t *testing.T) {
	store := &mockStore{snapshot: testSnapshot()}
	svc, courseRepo, occRepo := setupTestScheduleService(store)
	course := seedCourse(courseRepo)

	if _, err := svc.SaveForCourse(context.Background(), course.CourseID); err != nil {
		t.Fatalf("首次保存失败: %v", err)
	}

	// 数据源故障后再保存：既有日程必须原样保留
	store.err = calendarstore.ErrDataFetch
	_, err := svc.SaveForCourse(context.Background(), course.CourseID)
	if !errors.Is(err, calendarstore.ErrDataFetch) {
		t.Errorf("期望 ErrDataFetch，实际: %v", err)
	}
	if len(occRepo.occurrences[course.CourseID]) != 3 {
		t.Errorf("数据源故障后既有日程应保留 3 条，实际=%d",
			len(occRepo.occurrences[course.CourseID]))
	}
}

func TestScheduleService_Save_CourseNotFound(t *testing.T) {
	svc, _, _ := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})

	_, err := svc.SaveForCourse(context.Background(), "nonexistent")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

func TestScheduleService_Save_MaxAbsenceOverride(t *testing.T) {
	svc, courseRepo, _ := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})
	course := seedCourse(courseRepo)
	course.MaxAbsence = intPtr(5)

	result, err := svc.SaveForCourse(context.Background(), course.CourseID)
	if err != nil {
		t.Fatalf("SaveForCourse 应成功: %v", err)
	}
	if result.RecommendedMaxAbsence != 5 {
		t.Errorf("手动覆盖值应优先，期望 5，实际=%d", result.RecommendedMaxAbsence)
	}
}

// ── ListOccurrences 测试 ──

func TestScheduleService_ListOccurrences(t *testing.T) {
	svc, courseRepo, _ := setupTestScheduleService(&mockStore{snapshot: testSnapshot()})
	course := seedCourse(courseRepo)

	if _, err := svc.SaveForCourse(context.Background(), course.CourseID); err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	list, err := svc.ListOccurrences(context.Background(), course.CourseID)
	if err != nil {
		t.Fatalf("ListOccurrences 应成功: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("期望 3 条，实际=%d", len(list))
	}
	if list[0].Date != "2025-04-07" {
		t.Errorf("期望按日期升序，首条=%s", list[0].Date)
	}
}
