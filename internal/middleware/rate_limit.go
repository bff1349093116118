package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"unionsite/internal/constants"
	"unionsite/pkg/logger"
)

// RateLimit 按客户端IP的固定窗口限流，redis 不可用时放行
func RateLimit(redisClient *redis.Client, name string, limit int64, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", name, c.ClientIP())
		ctx := c.Request.Context()

		// 计数与过期时间在同一事务中写入，已存在但没有过期时间的键也会补上
		var incr *redis.IntCmd
		_, err := redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, window)
			return nil
		})
		if err != nil {
			log.Warn("限流计数失败", "key", key, "error", err)
			c.Next()
			return
		}
		count := incr.Val()

		if count > limit {
			c.JSON(http.StatusOK, gin.H{"code": 429, "msg": constants.ErrOperationTooFrequent})
			c.Abort()
			return
		}
		c.Next()
	}
}
