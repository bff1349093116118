package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unionsite/internal/constants"
)

// requireID 更新请求必须带上 id
func requireID(c *gin.Context, id int64) bool {
	if id > 0 {
		return true
	}
	c.JSON(http.StatusOK, gin.H{
		"code":   400,
		"msg":    constants.ErrInvalidParams,
		"fields": gin.H{"id": "不能为空"},
	})
	return false
}
