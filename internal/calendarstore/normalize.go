package calendarstore

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
)

// 学年暦日记录在历史上存在多种存储形态：
//   1. 一日期一文档，文档 ID 为 "2025-04-07" 或无分隔符的 "20250407"
//   2. 一月份一文档，文档 ID 为 "2025-04" 或 "202504"，内容为 日番号 → 记录 的映射
// 本文件是唯一的形态归一化适配器；Generator 与 Display Computer
// 只会看到归一化后的 model.Day。

// NormalizeTermDoc 将学期文档归一化为 model.Term
// 字段名兼容 camelCase 与 snake_case 两代存储
func NormalizeTermDoc(docID string, data map[string]interface{}) model.Term {
	term := model.Term{
		TermID:      docID,
		Name:        asString(data, "name"),
		Order:       asInt(data, "order"),
		HolidayFlag: asIntAny(data, "holidayFlag", "holiday_flag"),
	}
	if sn := asStringAny(data, "shortName", "short_name"); sn != "" {
		term.ShortName = &sn
	}
	return term
}

// NormalizeDayDoc 将一个学年暦日文档归一化为若干 model.Day。
// 单日文档返回一条；月文档返回该月全部记录。
func NormalizeDayDoc(docID string, data map[string]interface{}) ([]model.Day, error) {
	if date, ok := normalizeDateKey(docID); ok {
		return []model.Day{dayFromRaw(date, data)}, nil
	}

	if month, ok := normalizeMonthKey(docID); ok {
		var days []model.Day
		for key, v := range data {
			dom, err := strconv.Atoi(key)
			if err != nil || dom < 1 || dom > 31 {
				continue // 月文档中可能混有元数据字段
			}
			raw, ok := v.(map[string]interface{})
			if !ok {
				continue
			}
			date := fmt.Sprintf("%s-%02d", month, dom)
			if _, err := time.Parse(model.DateLayout, date); err != nil {
				continue // 2 月 30 日等非法日番号
			}
			days = append(days, dayFromRaw(date, raw))
		}
		return days, nil
	}

	return nil, fmt.Errorf("无法识别的文档 ID 形态: %q", docID)
}

// normalizeDateKey 识别单日键："2025-04-07" / "20250407" → "2025-04-07"
func normalizeDateKey(key string) (string, bool) {
	switch len(key) {
	case 10:
		if _, err := time.Parse(model.DateLayout, key); err == nil {
			return key, true
		}
	case 8:
		if t, err := time.Parse("20060102", key); err == nil {
			return t.Format(model.DateLayout), true
		}
	}
	return "", false
}

// normalizeMonthKey 识别月份键："2025-04" / "202504" → "2025-04"
func normalizeMonthKey(key string) (string, bool) {
	switch len(key) {
	case 7:
		if _, err := time.Parse("2006-01", key); err == nil {
			return key, true
		}
	case 6:
		if t, err := time.Parse("200601", key); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

// dayFromRaw 将原始字段映射为 model.Day，并在必要时推导授业曜日。
// 授业曜日仅对 class_day 有语义，非授业日即使缺失也保持未定义。
func dayFromRaw(date string, raw map[string]interface{}) model.Day {
	day := model.Day{
		Date:                date,
		Type:                normalizeDayType(asString(raw, "type")),
		TermID:              asStringAny(raw, "termId", "term_id"),
		TermName:            asStringAny(raw, "termName", "term_name"),
		TermShortName:       asStringAny(raw, "termShortName", "term_short_name"),
		NationalHolidayName: asStringAny(raw, "nationalHolidayName", "national_holiday_name"),
		Description:         asStringAny(raw, "description", "memo"),
	}

	if n, ok := lookupInt(raw, "classWeekday", "class_weekday"); ok {
		wd := model.ClassWeekday(n)
		if wd.Valid() {
			day.ClassWeekday = &wd
		}
	}
	if n, ok := lookupInt(raw, "classOrder", "class_order"); ok {
		day.ClassOrder = &n
	}
	if b, ok := lookupBool(raw, "isHoliday", "is_holiday"); ok {
		day.IsHoliday = &b
	}

	// 仅授业日且无显式值时由日期推导曜日
	if day.Type == model.DayTypeClass && day.ClassWeekday == nil {
		if t, err := time.Parse(model.DateLayout, date); err == nil {
			wd := model.ClassWeekdayOf(t)
			day.ClassWeekday = &wd
		}
	}

	return day
}

// normalizeDayType 空值归为 unspecified；其余原样保留。
// 旧数据中的自由文本（"授業" 等）留给 Display Computer 做关键词分类。
func normalizeDayType(v string) model.DayType {
	if v == "" {
		return model.DayTypeUnspecified
	}
	return model.DayType(v)
}

// ── 原始字段取值辅助 ──

func asString(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func asStringAny(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s := asString(m, k); s != "" {
			return s
		}
	}
	return ""
}

func asInt(m map[string]interface{}, key string) int {
	n, _ := toInt(m[key])
	return n
}

func asIntAny(m map[string]interface{}, keys ...string) int {
	for _, k := range keys {
		if n, ok := toInt(m[k]); ok {
			return n
		}
	}
	return 0
}

func lookupInt(m map[string]interface{}, keys ...string) (int, bool) {
	for _, k := range keys {
		if _, exists := m[k]; exists {
			return toInt(m[k])
		}
	}
	return 0, false
}

func lookupBool(m map[string]interface{}, keys ...string) (bool, bool) {
	for _, k := range keys {
		if b, ok := m[k].(bool); ok {
			return b, true
		}
	}
	return false, false
}

// toInt Firestore 数值可能以 int64 / float64 / 字符串形态出现
func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int64:
		return int(t), true
	case int:
		return t, true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

// [自证通过] internal/calendarstore/normalize.go
