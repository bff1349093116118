package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"unionsite/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 50
)

// queryLimit 解析 limit 参数，非法或超出范围时使用默认值
func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 1 || limit > maxListLimit {
		return defaultListLimit
	}
	return limit
}

// queryBool 解析布尔参数，缺省或非法时返回 def
func queryBool(c *gin.Context, key string, def bool) bool {
	v, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// notFoundAsEmpty 详情不存在时视为空结果，让视图进入 empty 而不是 error
func notFoundAsEmpty[T any](item *T, err error) (*T, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return item, err
}
