package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/calendarstore"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/dto"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/service"
	"github.com/gemini-dk/campus-calendar-web-sub000/pkg/response"
)

// ScheduleHandler 日程生成模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Preview 日程生成预览（不落库）
// POST /api/v1/schedule/preview
func (h *ScheduleHandler) Preview(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	result, err := h.scheduleSvc.Preview(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// Save 按课程配置生成并保存日程
// POST /api/v1/courses/:id/schedule
func (h *ScheduleHandler) Save(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "课程ID不能为空")
		return
	}

	result, err := h.scheduleSvc.SaveForCourse(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// ListOccurrences 列出课程已保存的授业回
// GET /api/v1/courses/:id/schedule
func (h *ScheduleHandler) ListOccurrences(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "课程ID不能为空")
		return
	}

	occurrences, err := h.scheduleSvc.ListOccurrences(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": occurrences})
}

// handleScheduleError 统一处理日程模块业务错误
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 12101, "课程不存在")
	case errors.Is(err, service.ErrScheduleNoTermsSelected):
		response.BadRequest(c, 12102, "未选择任何学期")
	case errors.Is(err, service.ErrScheduleNoSlotsSelected):
		response.BadRequest(c, 12103, "未选择任何周次时段")
	case errors.Is(err, service.ErrScheduleInvalidOption):
		response.BadRequest(c, 12104, "特殊开讲方式不合法")
	case errors.Is(err, calendarstore.ErrDataFetch):
		response.BadGateway(c, 12105, "学年暦数据获取失败，请稍后重试")
	default:
		response.InternalError(c)
	}
}
