package apis

import (
	"unionsite/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册登录、注册与重置密码路由
func RegisterAuthRoutes(router *gin.RouterGroup, authHandler *handler.AuthHandler, limited gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/sign-in", limited, authHandler.SignIn)
		auth.POST("/sign-up", limited, authHandler.SignUp)
		auth.POST("/reset-password/request", limited, authHandler.RequestPasswordReset)
		auth.POST("/reset-password/confirm", limited, authHandler.ConfirmPasswordReset)
		auth.POST("/sign-out", authHandler.SignOut)
	}
}

// RegisterComplaintRoutes 注册投诉提交与查询路由
func RegisterComplaintRoutes(router *gin.RouterGroup, complaintHandler *handler.ComplaintHandler, limited gin.HandlerFunc) {
	complaints := router.Group("/complaints")
	{
		complaints.POST("", limited, complaintHandler.Submit)
		complaints.GET("/:reference", limited, complaintHandler.Track)
	}
}
