package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/dto"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/service"
	apperrors "github.com/gemini-dk/campus-calendar-web-sub000/pkg/errors"
	"github.com/gemini-dk/campus-calendar-web-sub000/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// Create 创建课程
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req, CallerID(c))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, course)
}

// Get 获取课程详情
// GET /api/v1/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 11001, "课程ID不能为空")
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// List 课程列表
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	var req dto.CourseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 11001, "参数校验失败")
		return
	}

	courses, total, err := h.courseSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OKPage(c, courses, total, req.GetPage(), req.GetPageSize())
}

// Update 更新课程（乐观锁）
// PUT /api/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 11001, "课程ID不能为空")
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, &req, CallerID(c))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// Delete 删除课程
// DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 11001, "课程ID不能为空")
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id, CallerID(c)); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCourseError 统一处理课程模块业务错误
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 11101, "课程不存在")
	case errors.Is(err, service.ErrCourseNameRequired):
		response.BadRequest(c, 11102, "课程名不能为空")
	case errors.Is(err, service.ErrCourseInvalidYear):
		response.BadRequest(c, 11103, "年度不合法")
	case errors.Is(err, service.ErrCourseInvalidOption):
		response.BadRequest(c, 11104, "特殊开讲方式不合法")
	case errors.Is(err, service.ErrCourseInvalidPolicy):
		response.BadRequest(c, 11105, "欠席策略不合法")
	case errors.Is(err, service.ErrCourseInvalidSlot):
		response.BadRequest(c, 11106, "周次时段不合法")
	case errors.Is(err, apperrors.ErrOptimisticLock):
		response.Conflict(c, 11107, "课程已被他处修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}
