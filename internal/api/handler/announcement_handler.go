package handler

import (
	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/service"
	"unionsite/internal/view"
	"unionsite/pkg/logger"
)

// AnnouncementHandler 全站公告处理器
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementHandler 创建公告处理器实例
func NewAnnouncementHandler(announcementService *service.AnnouncementService, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// Active 获取当前激活的公告，没有时返回 404
// @Summary 获取当前公告
// @Tags 公告
// @Produce json
// @Router /api/v1/announcements/active [get]
func (h *AnnouncementHandler) Active(c *gin.Context) {
	d := view.LoadDetail(c.Request.Context(), h.announcementService.Active)
	if d.State() == view.Error {
		h.logger.Error("获取当前公告失败", "error", d.Err())
	}
	response.Detail(c, d)
}
