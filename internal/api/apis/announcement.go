package apis

import (
	"unionsite/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// RegisterAnnouncementRoutes 注册公告相关路由
func RegisterAnnouncementRoutes(router *gin.RouterGroup, announcementHandler *handler.AnnouncementHandler) {
	router.GET("/announcements/active", announcementHandler.Active)
}
