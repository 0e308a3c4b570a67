package dto

import "github.com/gemini-dk/campus-calendar-web-sub000/internal/model"

// ── 课程模块请求 ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Name               string             `json:"name"                 binding:"required,max=200"`
	FiscalYear         int                `json:"fiscal_year"          binding:"required"`
	CalendarID         string             `json:"calendar_id"          binding:"required"`
	TermIDs            []string           `json:"term_ids"`
	WeeklySlots        []model.WeeklySlot `json:"weekly_slots"`
	SpecialOption      string             `json:"special_option"`
	HasSaturdayClasses bool               `json:"has_saturday_classes"`
	AbsencePolicy      string             `json:"absence_policy"`
	MaxAbsence         *int               `json:"max_absence"`
}

// UpdateCourseRequest 更新课程请求（nil 字段不修改）
type UpdateCourseRequest struct {
	Name               *string             `json:"name"                 binding:"omitempty,max=200"`
	TermIDs            *[]string           `json:"term_ids"`
	WeeklySlots        *[]model.WeeklySlot `json:"weekly_slots"`
	SpecialOption      *string             `json:"special_option"`
	HasSaturdayClasses *bool               `json:"has_saturday_classes"`
	AbsencePolicy      *string             `json:"absence_policy"`
	MaxAbsence         *int                `json:"max_absence"`
	Version            int                 `json:"version" binding:"required,min=1"` // 乐观锁
}

// CourseListRequest 课程列表请求
type CourseListRequest struct {
	PaginationRequest
	FiscalYear int    `form:"fiscal_year"`
	CalendarID string `form:"calendar_id"`
}

// ── 课程模块响应 ──

// CourseResponse 课程响应
type CourseResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	FiscalYear         int                `json:"fiscal_year"`
	CalendarID         string             `json:"calendar_id"`
	TermIDs            []string           `json:"term_ids"`
	WeeklySlots        []model.WeeklySlot `json:"weekly_slots"`
	SpecialOption      string             `json:"special_option"`
	HasSaturdayClasses bool               `json:"has_saturday_classes"`
	AbsencePolicy      string             `json:"absence_policy"`
	MaxAbsence         *int               `json:"max_absence,omitempty"`
	Version            int                `json:"version"`
	CreatedAt          string             `json:"created_at"`
	UpdatedAt          string             `json:"updated_at"`
}
