package apis

import (
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes 注册服务端渲染的公开页面
func RegisterPageRoutes(router *gin.Engine, h Handlers, limited gin.HandlerFunc) {
	router.GET("/", h.Home.Page)
	router.GET("/executives", h.Executive.Page)
	router.GET("/news", h.News.Page)
	router.GET("/news/:slug", h.News.DetailPage)
	router.GET("/events", h.Event.Page)
	router.GET("/events/:slug", h.Event.DetailPage)

	services := router.Group("/services")
	{
		services.GET("", h.Services.Page)
		services.GET("/complaints", h.Complaint.TrackPage)
		services.POST("/complaints", limited, h.Complaint.SubmitForm)
	}
}
