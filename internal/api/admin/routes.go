package admin

import (
	"github.com/gin-gonic/gin"
)

// Handlers 管理后台处理器集合
type Handlers struct {
	Executive    *ExecutiveAdminHandler
	News         *NewsAdminHandler
	Event        *EventAdminHandler
	Spotlight    *SpotlightAdminHandler
	Announcement *AnnouncementAdminHandler
	Document     *DocumentAdminHandler
	Opportunity  *OpportunityAdminHandler
	Complaint    *ComplaintAdminHandler
	Upload       *UploadHandler
}

// crud 管理后台实体的统一路由：列表、详情与 create/update/delete
type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCRUD(router *gin.RouterGroup, path string, h crud) *gin.RouterGroup {
	group := router.Group(path)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("/create", h.Create)
		group.POST("/update", h.Update)
		group.POST("/delete", h.Delete)
	}
	return group
}

// RegisterAdminRoutes 注册管理员API路由，调用方负责挂载认证中间件
func RegisterAdminRoutes(router *gin.RouterGroup, h Handlers) {
	router.GET("/me", Me)

	registerCRUD(router, "/executives", h.Executive)
	registerCRUD(router, "/news", h.News)
	registerCRUD(router, "/events", h.Event)
	registerCRUD(router, "/spotlights", h.Spotlight)
	registerCRUD(router, "/documents", h.Document)
	registerCRUD(router, "/opportunities", h.Opportunity)

	// 公告管理路由
	announcements := registerCRUD(router, "/announcements", h.Announcement)
	announcements.POST("/activate", h.Announcement.Activate)
	announcements.POST("/deactivate", h.Announcement.Deactivate)

	// 投诉只能流转和删除，不能由管理员创建或编辑
	complaints := router.Group("/complaints")
	{
		complaints.GET("", h.Complaint.List)
		complaints.GET("/:id", h.Complaint.Get)
		complaints.POST("/transition", h.Complaint.Transition)
		complaints.POST("/delete", h.Complaint.Delete)
	}

	uploads := router.Group("/uploads")
	{
		uploads.POST("", h.Upload.Upload)
		uploads.POST("/delete", h.Upload.Delete)
	}
}
