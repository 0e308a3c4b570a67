package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/calendarstore"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/dto"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/service"
	"github.com/gemini-dk/campus-calendar-web-sub000/pkg/response"
)

// CalendarHandler 日历显示模块 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// MonthView 月历视图
// GET /api/v1/calendar/month
func (h *CalendarHandler) MonthView(c *gin.Context) {
	var req dto.MonthViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 13001, "参数校验失败")
		return
	}

	result, err := h.calendarSvc.MonthView(c.Request.Context(), &req)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, result)
}

// ListTerms 学期列表
// GET /api/v1/calendar/terms
func (h *CalendarHandler) ListTerms(c *gin.Context) {
	fiscalYear := QueryInt(c, "fiscal_year")
	calendarID := c.Query("calendar_id")
	if fiscalYear <= 0 || calendarID == "" {
		response.BadRequest(c, 13001, "fiscal_year 与 calendar_id 不能为空")
		return
	}

	terms, err := h.calendarSvc.ListTerms(c.Request.Context(), fiscalYear, calendarID)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, gin.H{"list": terms})
}

// InvalidateSnapshot 失效快照缓存
// POST /api/v1/calendar/invalidate
func (h *CalendarHandler) InvalidateSnapshot(c *gin.Context) {
	fiscalYear := QueryInt(c, "fiscal_year")
	calendarID := c.Query("calendar_id")
	if fiscalYear <= 0 || calendarID == "" {
		response.BadRequest(c, 13001, "fiscal_year 与 calendar_id 不能为空")
		return
	}

	if err := h.calendarSvc.InvalidateSnapshot(c.Request.Context(), fiscalYear, calendarID); err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCalendarError 统一处理日历模块业务错误
func (h *CalendarHandler) handleCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCalendarInvalidMonth):
		response.BadRequest(c, 13101, "月份格式不合法（yyyy-mm）")
	case errors.Is(err, calendarstore.ErrDataFetch):
		response.BadGateway(c, 13102, "学年暦数据获取失败，请稍后重试")
	default:
		response.InternalError(c)
	}
}
