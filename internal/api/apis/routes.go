package apis

import (
	"unionsite/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Handlers 公开页面与接口的处理器集合
type Handlers struct {
	Home         *handler.HomeHandler
	Executive    *handler.ExecutiveHandler
	News         *handler.NewsHandler
	Event        *handler.EventHandler
	Spotlight    *handler.SpotlightHandler
	Announcement *handler.AnnouncementHandler
	Services     *handler.ServicesHandler
	Complaint    *handler.ComplaintHandler
	Auth         *handler.AuthHandler
}

// RegisterPublicRoutes 注册不需要认证的JSON接口。limited 用于提交类接口的限流
func RegisterPublicRoutes(v1 *gin.RouterGroup, h Handlers, limited gin.HandlerFunc) {
	v1.GET("/home", h.Home.Home)

	RegisterContentRoutes(v1, h)
	RegisterAnnouncementRoutes(v1, h.Announcement)
	RegisterComplaintRoutes(v1, h.Complaint, limited)
	RegisterAuthRoutes(v1, h.Auth, limited)
}
