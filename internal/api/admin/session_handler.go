package admin

import (
	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/middleware"
)

// Me 当前登录的管理员
// @Router /admin/me [get]
func Me(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		response.Error(c, 401, constants.ErrUnauthorized)
		return
	}
	response.Success(c, constants.SuccessGet, gin.H{
		"user":      claims.User(),
		"expiresAt": claims.ExpiresAt,
	})
}
