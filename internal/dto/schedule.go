package dto

import "github.com/gemini-dk/campus-calendar-web-sub000/internal/model"

// ── 日程生成模块请求 ──

// GenerateScheduleRequest 临时预览用的日程生成请求（不落库）
type GenerateScheduleRequest struct {
	FiscalYear    int                `json:"fiscal_year"  binding:"required"`
	CalendarID    string             `json:"calendar_id"  binding:"required"`
	TermIDs       []string           `json:"term_ids"`
	WeeklySlots   []model.WeeklySlot `json:"weekly_slots"`
	SpecialOption string             `json:"special_option"`
	PreviewLimit  int                `json:"preview_limit"` // 0 = 不截断
}

// ── 日程生成模块响应 ──

// GeneratedDateResponse 单个生成日期
type GeneratedDateResponse struct {
	Date    string           `json:"date"`
	Periods model.PeriodList `json:"periods"`
}

// GenerateScheduleResponse 日程生成预览响应
// TotalSessions 为全量授业回数；Dates 可能被 PreviewLimit 截断
type GenerateScheduleResponse struct {
	Dates                 []GeneratedDateResponse `json:"dates"`
	TotalSessions         int                     `json:"total_sessions"`
	Truncated             bool                    `json:"truncated"`
	Empty                 bool                    `json:"empty"` // 生成结果为空（可修正的输入问题，而非错误）
	RecommendedMaxAbsence int                     `json:"recommended_max_absence"`
	AbsencePolicy         string                  `json:"absence_policy"`
}

// SaveScheduleResponse 保存课程日程响应
type SaveScheduleResponse struct {
	CourseID              string `json:"course_id"`
	SavedCount            int    `json:"saved_count"`
	TotalSessions         int    `json:"total_sessions"`
	Empty                 bool   `json:"empty"`
	RecommendedMaxAbsence int    `json:"recommended_max_absence"`
}

// OccurrenceResponse 已保存的授业回
type OccurrenceResponse struct {
	ID      string           `json:"id"`
	Date    string           `json:"date"`
	Periods model.PeriodList `json:"periods"`
}
