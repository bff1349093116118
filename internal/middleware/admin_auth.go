package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"unionsite/internal/auth"
	"unionsite/internal/constants"
)

// ClaimsKey 上下文中保存令牌声明的键
const ClaimsKey = "claims"

// AdminAuth 管理员认证中间件，接受 Bearer 令牌或登录时写入的会话 cookie
func AdminAuth(tokens *auth.TokenManager, store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && store != nil {
			token = auth.SessionToken(c.Request, store)
		}
		if token == "" {
			c.JSON(http.StatusOK, gin.H{"code": 401, "msg": constants.ErrUnauthorized})
			c.Abort()
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"code": 401, "msg": constants.ErrInvalidToken})
			c.Abort()
			return
		}

		// 只有登录用户角色拥有管理权限
		if !claims.IsAdmin() {
			c.JSON(http.StatusOK, gin.H{"code": 403, "msg": constants.ErrInsufficientPermission})
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set("user_id", claims.Subject)
		c.Next()
	}
}

// CurrentClaims 取出 AdminAuth 写入的声明
func CurrentClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// bearerToken 只接受 "Bearer <token>" 形式，其他格式视为未携带令牌
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
