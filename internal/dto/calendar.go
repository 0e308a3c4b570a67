package dto

// ── 日历显示模块 ──

// AccentColor 日期数字的强调色
type AccentColor string

const (
	AccentDefault  AccentColor = "default"
	AccentHoliday  AccentColor = "holiday"  // 祝日・日曜
	AccentSaturday AccentColor = "saturday" // 土曜（非祝日）
)

// BackgroundClass 日历格子的背景样式
type BackgroundClass string

const (
	BackgroundNone    BackgroundClass = "none"
	BackgroundSunday  BackgroundClass = "sunday" // 日曜，以及"不开土曜课"机构的土曜
	BackgroundHoliday BackgroundClass = "holiday"
	BackgroundExam    BackgroundClass = "exam"
	BackgroundReserve BackgroundClass = "reserve"
)

// DisplayDescriptor 单个日期的渲染描述
type DisplayDescriptor struct {
	DateLabel        string          `json:"date_label"`
	AccentColor      AccentColor     `json:"accent_color"`
	WeekdayLabel     string          `json:"weekday_label"`
	AcademicLabel    string          `json:"academic_label"`
	SubLabel         *string         `json:"sub_label,omitempty"`
	BackgroundClass  BackgroundClass `json:"background_class"`
	EffectiveWeekday *int            `json:"effective_weekday,omitempty"` // 授业曜日（1=月..7=日）
	EffectivePeriod  *int            `json:"effective_period,omitempty"`  // 时限番号
}

// MonthViewRequest 月历视图请求
type MonthViewRequest struct {
	FiscalYear         int    `form:"fiscal_year" binding:"required"`
	CalendarID         string `form:"calendar_id" binding:"required"`
	Month              string `form:"month"       binding:"required"` // yyyy-mm
	HasSaturdayClasses bool   `form:"has_saturday_classes"`
}

// MonthViewDay 月历中的一天
type MonthViewDay struct {
	Date    string            `json:"date"`
	Display DisplayDescriptor `json:"display"`
}

// MonthViewResponse 月历视图响应
type MonthViewResponse struct {
	Month string         `json:"month"`
	Days  []MonthViewDay `json:"days"`
}

// TermResponse 学期响应
type TermResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ShortName       *string `json:"short_name,omitempty"`
	Order           int     `json:"order"`
	HolidayFlag     int     `json:"holiday_flag"`
	IsInstructional bool    `json:"is_instructional"`
}
