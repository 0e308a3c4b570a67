package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/calendarstore"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/dto"
)

// ── MonthView 测试 ──

func TestCalendarService_MonthView(t *testing.T) {
	svc := NewCalendarService(&mockStore{snapshot: testSnapshot()}, zap.NewNop())

	result, err := svc.MonthView(context.Background(), &dto.MonthViewRequest{
		FiscalYear: 2025,
		CalendarID: "cal-main",
		Month:      "2025-04",
	})
	if err != nil {
		t.Fatalf("MonthView 应成功: %v", err)
	}
	if len(result.Days) != 30 {
		t.Fatalf("2025-04 期望 30 天，实际=%d", len(result.Days))
	}
	if result.Days[0].Date != "2025-04-01" {
		t.Errorf("首日期望 2025-04-01，实际=%s", result.Days[0].Date)
	}

	// 快照中的授业日（2025-04-07）应带学期标签
	var apr7 *dto.MonthViewDay
	for i := range result.Days {
		if result.Days[i].Date == "2025-04-07" {
			apr7 = &result.Days[i]
			break
		}
	}
	if apr7 == nil {
		t.Fatal("未找到 2025-04-07")
	}
	if apr7.Display.AcademicLabel == "" {
		t.Error("授业日应有学术标签")
	}
}

func TestCalendarService_MonthView_InvalidMonth(t *testing.T) {
	svc := NewCalendarService(&mockStore{snapshot: testSnapshot()}, zap.NewNop())

	_, err := svc.MonthView(context.Background(), &dto.MonthViewRequest{
		FiscalYear: 2025,
		CalendarID: "cal-main",
		Month:      "2025/04",
	})
	if !errors.Is(err, ErrCalendarInvalidMonth) {
		t.Errorf("期望 ErrCalendarInvalidMonth，实际: %v", err)
	}
}

func TestCalendarService_MonthView_DataFetchError(t *testing.T) {
	svc := NewCalendarService(&mockStore{err: calendarstore.ErrDataFetch}, zap.NewNop())

	_, err := svc.MonthView(context.Background(), &dto.MonthViewRequest{
		FiscalYear: 2025,
		CalendarID: "cal-main",
		Month:      "2025-04",
	})
	if !errors.Is(err, calendarstore.ErrDataFetch) {
		t.Errorf("期望 ErrDataFetch 透传，实际: %v", err)
	}
}

// ── ListTerms 测试 ──

func TestCalendarService_ListTerms(t *testing.T) {
	svc := NewCalendarService(&mockStore{snapshot: testSnapshot()}, zap.NewNop())

	terms, err := svc.ListTerms(context.Background(), 2025, "cal-main")
	if err != nil {
		t.Fatalf("ListTerms 应成功: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("期望 2 个学期，实际=%d", len(terms))
	}
	if !terms[0].IsInstructional {
		t.Error("前期应为授业学期")
	}
}
