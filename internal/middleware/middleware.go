package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"unionsite/internal/constants"
	"unionsite/pkg/logger"
)

// Logger 访问日志中间件，健康检查不记录，5xx 以 Warn 级别记录
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if path == "/health" {
			c.Next()
			return
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"状态码", status,
			"延迟", time.Since(start),
			"客户端IP", c.ClientIP(),
			"方法", c.Request.Method,
			"路径", path,
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "错误", c.Errors.String())
		}
		if status >= http.StatusInternalServerError {
			log.Warn("访问日志", fields...)
			return
		}
		log.Info("访问日志", fields...)
	}
}

// Recovery 恢复中间件。接口请求返回统一的 500 响应，页面请求只返回状态码
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("服务器错误", "error", err, "路径", c.Request.URL.Path)
				if strings.HasPrefix(c.Request.URL.Path, "/api/") {
					c.AbortWithStatusJSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
					return
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// CORS 跨域中间件，allowOrigin 为空时允许任意来源但不携带凭据
func CORS(allowOrigin string) gin.HandlerFunc {
	credentials := allowOrigin != ""
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		if credentials {
			h.Set("Access-Control-Allow-Credentials", "true")
		}
		h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
