package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CallerID 从请求头提取调用方标识（无认证体系，仅用于审计字段）。
// 未携带时返回空串，审计字段保持 NULL。
func CallerID(c *gin.Context) string {
	return c.GetHeader("X-Client-ID")
}

// QueryInt 提取整数查询参数；缺失或非法时返回 0
func QueryInt(c *gin.Context, key string) int {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
