package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gemini-dk/campus-calendar-web-sub000/config"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/api/handler"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/api/middleware"
	"github.com/gemini-dk/campus-calendar-web-sub000/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1 MiB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 课程模块
		courses := v1.Group("/courses")
		{
			courses.POST("", h.Course.Create)
			courses.GET("", h.Course.List)
			courses.GET("/:id", h.Course.Get)
			courses.PUT("/:id", h.Course.Update)
			courses.DELETE("/:id", h.Course.Delete)

			// 课程日程（生成结果的保存与查询）
			courses.POST("/:id/schedule", h.Schedule.Save)
			courses.GET("/:id/schedule", h.Schedule.ListOccurrences)

			// 导出模块
			courses.GET("/:id/export/ics", h.Export.ExportICS)
			courses.GET("/:id/export/excel", h.Export.ExportExcel)
		}

		// 日程生成模块（预览不落库，限流防滥用）
		schedule := v1.Group("/schedule")
		schedule.Use(middleware.RateLimit(rdb, 60, time.Minute))
		{
			schedule.POST("/preview", h.Schedule.Preview)
		}

		// 日历显示模块
		calendar := v1.Group("/calendar")
		{
			calendar.GET("/month", h.Calendar.MonthView)
			calendar.GET("/terms", h.Calendar.ListTerms)
			calendar.POST("/invalidate", h.Calendar.InvalidateSnapshot)
		}
	}

	return r
}
