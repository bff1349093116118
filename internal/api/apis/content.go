package apis

import (
	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes 注册干部、新闻、活动、轮播与服务资料的只读接口
func RegisterContentRoutes(router *gin.RouterGroup, h Handlers) {
	router.GET("/executives", h.Executive.List)

	router.GET("/news", h.News.List)
	router.GET("/news/:slug", h.News.Detail)

	router.GET("/events", h.Event.List)
	router.GET("/events/:slug", h.Event.Detail)

	spotlights := router.Group("/spotlights")
	{
		spotlights.GET("", h.Spotlight.List)
		spotlights.GET("/rotation", h.Spotlight.Rotation)
	}

	router.GET("/documents", h.Services.Documents)
	router.GET("/opportunities", h.Services.Opportunities)
}
