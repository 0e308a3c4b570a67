package model

import "time"

// 曜日存在两套约定，属于领域本身的二重性，必须严格区分：
//   - 授业曜日 ClassWeekday：1=月 .. 7=日（学年暦记录中的"上课曜日"）
//   - 历法曜日 time.Weekday：0=日 .. 6=土（Go 标准库约定，用于日历渲染）
// 两者之间只允许通过 ClassWeekdayOf 做一次显式转换，禁止散落的加减运算。

// ClassWeekday 授业曜日（1=月曜 .. 7=日曜）
type ClassWeekday int

const (
	ClassWeekdayMonday    ClassWeekday = 1
	ClassWeekdayTuesday   ClassWeekday = 2
	ClassWeekdayWednesday ClassWeekday = 3
	ClassWeekdayThursday  ClassWeekday = 4
	ClassWeekdayFriday    ClassWeekday = 5
	ClassWeekdaySaturday  ClassWeekday = 6
	ClassWeekdaySunday    ClassWeekday = 7
)

// ClassWeekdayOf 历法曜日 → 授业曜日 的唯一转换入口
func ClassWeekdayOf(t time.Time) ClassWeekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return ClassWeekdaySunday
	}
	return ClassWeekday(wd)
}

// Valid 授业曜日取值范围校验
func (w ClassWeekday) Valid() bool {
	return w >= ClassWeekdayMonday && w <= ClassWeekdaySunday
}

var classWeekdayLabels = [...]string{"", "月", "火", "水", "木", "金", "土", "日"}

// Label 返回日文曜日简称（"月" 等）；越界时返回空串
func (w ClassWeekday) Label() string {
	if !w.Valid() {
		return ""
	}
	return classWeekdayLabels[w]
}

// WeekdayLabel 历法曜日的日文简称（0=日 .. 6=土）
func WeekdayLabel(wd time.Weekday) string {
	labels := [...]string{"日", "月", "火", "水", "木", "金", "土"}
	return labels[wd]
}
