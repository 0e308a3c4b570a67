package model

import "time"

// DayType 日种别
type DayType string

const (
	DayTypeUnspecified DayType = "unspecified" // 未指定
	DayTypeClass       DayType = "class_day"   // 授业日
	DayTypeExam        DayType = "exam_day"    // 试験日
	DayTypeReserve     DayType = "reserve_day" // 予備日
	DayTypeCancelled   DayType = "cancelled_day" // 休講日
)

// DateLayout 学年暦日期的标准格式
const DateLayout = "2006-01-02"

// Day 学年暦中一天的记录 — 只读快照（来源：Calendar Data Store）。
// Type 为 class_day 时 ClassWeekday/ClassOrder 才有授业语义；
// 旧数据可能在 Type 中存自由文本，由 Display Computer 的关键词分类兜底。
type Day struct {
	Date                string        `json:"date"` // yyyy-mm-dd
	Type                DayType       `json:"type"`
	TermID              string        `json:"term_id,omitempty"`
	TermName            string        `json:"term_name,omitempty"`
	TermShortName       string        `json:"term_short_name,omitempty"`
	ClassWeekday        *ClassWeekday `json:"class_weekday,omitempty"` // 1=月..7=日
	ClassOrder          *int          `json:"class_order,omitempty"`   // 时限番号
	IsHoliday           *bool         `json:"is_holiday,omitempty"`
	NationalHolidayName string        `json:"national_holiday_name,omitempty"`
	Description         string        `json:"description,omitempty"`
}

// Time 解析 Date 字段
func (d *Day) Time() (time.Time, error) {
	return time.Parse(DateLayout, d.Date)
}

// ResolveClassWeekday 解析授业曜日：优先取显式记录值，缺失时由日期推导。
// 两路都失败（日期非法）时返回 false。
func (d *Day) ResolveClassWeekday() (ClassWeekday, bool) {
	if d.ClassWeekday != nil && d.ClassWeekday.Valid() {
		return *d.ClassWeekday, true
	}
	t, err := d.Time()
	if err != nil {
		return 0, false
	}
	return ClassWeekdayOf(t), true
}

// [自证通过] internal/model/day.go
