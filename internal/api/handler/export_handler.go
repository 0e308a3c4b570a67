package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/service"
	"github.com/gemini-dk/campus-calendar-web-sub000/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportICS 导出课程日程为 iCalendar
// GET /api/v1/courses/:id/export/ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "课程ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportICS(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, buf.Bytes(), filename, "text/calendar; charset=utf-8")
}

// ExportExcel 导出课程日程为 Excel
// GET /api/v1/courses/:id/export/excel
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "课程ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportExcel(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, buf.Bytes(),
		filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// writeDownload 设置下载响应头并写入文件内容
func writeDownload(c *gin.Context, data []byte, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}

// handleExportError 统一处理导出模块业务错误
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 14101, "课程不存在")
	case errors.Is(err, service.ErrExportNoOccurrences):
		response.BadRequest(c, 14102, "该课程暂无已保存的授业日程，请先保存日程")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
