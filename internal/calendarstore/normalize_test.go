package calendarstore

import (
	"sort"
	"testing"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
)

// ── 学期文档归一化 ──

func TestNormalizeTermDoc_CamelCase(t *testing.T) {
	term := NormalizeTermDoc("term-1", map[string]interface{}{
		"name":        "前期",
		"shortName":   "前",
		"order":       int64(1),
		"holidayFlag": int64(2),
	})

	if term.TermID != "term-1" || term.Name != "前期" {
		t.Errorf("基本字段归一化失败: %+v", term)
	}
	if term.ShortName == nil || *term.ShortName != "前" {
		t.Errorf("期望 ShortName=前，实际=%v", term.ShortName)
	}
	if !term.IsInstructional() {
		t.Error("holidayFlag=2 应为授业学期")
	}
}

func TestNormalizeTermDoc_SnakeCaseAndStringNumbers(t *testing.T) {
	// 旧数据：snake_case 字段名 + 数值存成字符串
	term := NormalizeTermDoc("term-2", map[string]interface{}{
		"name":         "夏休み",
		"short_name":   "夏",
		"order":        "3",
		"holiday_flag": "1",
	})

	if term.Order != 3 {
		t.Errorf("字符串数值应可解析，期望 Order=3，实际=%d", term.Order)
	}
	if term.IsInstructional() {
		t.Error("holiday_flag=1 应为休业期间")
	}
}

// ── 日文档归一化：四种键形态 ──

func TestNormalizeDayDoc_DateKey(t *testing.T) {
	days, err := NormalizeDayDoc("2025-04-07", map[string]interface{}{
		"type":   "class_day",
		"termId": "term-1",
	})
	if err != nil {
		t.Fatalf("单日文档应成功: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2025-04-07" {
		t.Fatalf("期望归一化为 1 条 2025-04-07，实际=%v", days)
	}
}

func TestNormalizeDayDoc_CompactDateKey(t *testing.T) {
	days, err := NormalizeDayDoc("20250407", map[string]interface{}{
		"type": "class_day",
	})
	if err != nil {
		t.Fatalf("无分隔符单日文档应成功: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2025-04-07" {
		t.Fatalf("期望 2025-04-07，实际=%v", days)
	}
}

func TestNormalizeDayDoc_MonthKey(t *testing.T) {
	days, err := NormalizeDayDoc("2025-04", map[string]interface{}{
		"7":         map[string]interface{}{"type": "class_day", "termId": "term-1"},
		"14":        map[string]interface{}{"type": "cancelled_day"},
		"updatedAt": "2025-04-01T00:00:00Z", // 元数据字段应被跳过
		"32":        map[string]interface{}{"type": "class_day"},
	})
	if err != nil {
		t.Fatalf("月文档应成功: %v", err)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	if len(days) != 2 {
		t.Fatalf("期望 2 条（跳过元数据与非法日番号），实际=%d", len(days))
	}
	if days[0].Date != "2025-04-07" || days[1].Date != "2025-04-14" {
		t.Errorf("日期展开错误: %v", days)
	}
}

func TestNormalizeDayDoc_CompactMonthKey(t *testing.T) {
	days, err := NormalizeDayDoc("202504", map[string]interface{}{
		"1": map[string]interface{}{"type": "class_day"},
	})
	if err != nil {
		t.Fatalf("无分隔符月文档应成功: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2025-04-01" {
		t.Fatalf("期望 2025-04-01，实际=%v", days)
	}
}

func TestNormalizeDayDoc_InvalidDayOfMonth(t *testing.T) {
	// 2 月 30 日不存在，应跳过
	days, err := NormalizeDayDoc("2025-02", map[string]interface{}{
		"30": map[string]interface{}{"type": "class_day"},
		"28": map[string]interface{}{"type": "class_day"},
	})
	if err != nil {
		t.Fatalf("月文档应成功: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2025-02-28" {
		t.Errorf("非法日番号应跳过，实际=%v", days)
	}
}

func TestNormalizeDayDoc_UnknownKey(t *testing.T) {
	if _, err := NormalizeDayDoc("metadata", map[string]interface{}{}); err == nil {
		t.Error("无法识别的文档 ID 应报错")
	}
}

// ── 字段归一化 ──

func TestDayFromRaw_WeekdayDerivedOnlyForClassDay(t *testing.T) {
	// 2025-04-07 是月曜
	days, _ := NormalizeDayDoc("2025-04-07", map[string]interface{}{
		"type": "class_day",
	})
	if days[0].ClassWeekday == nil || *days[0].ClassWeekday != model.ClassWeekdayMonday {
		t.Errorf("授业日无显式曜日时应由日期推导，实际=%v", days[0].ClassWeekday)
	}

	// 非授业日不推导
	days, _ = NormalizeDayDoc("2025-04-07", map[string]interface{}{
		"type": "cancelled_day",
	})
	if days[0].ClassWeekday != nil {
		t.Errorf("非授业日不应推导曜日，实际=%v", *days[0].ClassWeekday)
	}
}

func TestDayFromRaw_ExplicitWeekdayWins(t *testing.T) {
	// 曜日振替：2025-04-08（火曜）按月曜课表上课
	days, _ := NormalizeDayDoc("2025-04-08", map[string]interface{}{
		"type":         "class_day",
		"classWeekday": int64(1),
		"classOrder":   float64(2), // Firestore 数值常以 float64 返回
	})
	if days[0].ClassWeekday == nil || *days[0].ClassWeekday != model.ClassWeekdayMonday {
		t.Errorf("显式曜日应优先，实际=%v", days[0].ClassWeekday)
	}
	if days[0].ClassOrder == nil || *days[0].ClassOrder != 2 {
		t.Errorf("期望 ClassOrder=2，实际=%v", days[0].ClassOrder)
	}
}

func TestDayFromRaw_EmptyTypeIsUnspecified(t *testing.T) {
	days, _ := NormalizeDayDoc("2025-04-07", map[string]interface{}{
		"nationalHolidayName": "みどりの日",
	})
	if days[0].Type != model.DayTypeUnspecified {
		t.Errorf("空种别应归一化为 unspecified，实际=%s", days[0].Type)
	}
	if days[0].NationalHolidayName != "みどりの日" {
		t.Errorf("祝日名丢失: %+v", days[0])
	}
}

func TestDayFromRaw_FreeTextTypePreserved(t *testing.T) {
	// 自由文本种别原样保留，分类交给显示层
	days, _ := NormalizeDayDoc("2025-04-07", map[string]interface{}{
		"type": "期末試験",
	})
	if string(days[0].Type) != "期末試験" {
		t.Errorf("自由文本种别应保留，实际=%s", days[0].Type)
	}
}

func TestDayFromRaw_SnakeCaseAndMemo(t *testing.T) {
	days, _ := NormalizeDayDoc("2025-04-07", map[string]interface{}{
		"type":       "class_day",
		"term_name":  "前期",
		"is_holiday": true,
		"memo":       "特別授業",
	})
	if days[0].TermName != "前期" {
		t.Errorf("snake_case 字段归一化失败: %+v", days[0])
	}
	if days[0].IsHoliday == nil || !*days[0].IsHoliday {
		t.Errorf("期望 IsHoliday=true，实际=%v", days[0].IsHoliday)
	}
	if days[0].Description != "特別授業" {
		t.Errorf("memo 应映射为 Description，实际=%s", days[0].Description)
	}
}
