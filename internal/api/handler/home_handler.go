package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/service"
	"unionsite/internal/view"
	"unionsite/internal/web"
	"unionsite/pkg/logger"
)

// HomeHandler 首页处理器
type HomeHandler struct {
	homeService *service.HomeService
	logger      *logger.Logger
}

// NewHomeHandler 创建首页处理器实例
func NewHomeHandler(homeService *service.HomeService, logger *logger.Logger) *HomeHandler {
	return &HomeHandler{homeService: homeService, logger: logger}
}

// Home 首页各区块
// @Router /api/v1/home [get]
func (h *HomeHandler) Home(c *gin.Context) {
	page := h.homeService.Load(c.Request.Context())
	h.logFailures(page)
	response.Success(c, constants.SuccessGet, page)
}

// Page 渲染首页
func (h *HomeHandler) Page(c *gin.Context) {
	page := h.homeService.Load(c.Request.Context())
	h.logFailures(page)
	c.HTML(http.StatusOK, "home", web.Page{Data: gin.H{
		"Announcement": page.Announcement,
		"Spotlights":   page.Spotlights,
		"News":         page.News,
		"Events":       page.Events,
	}})
}

// 各区块独立失败，只记录日志
func (h *HomeHandler) logFailures(page *service.HomePage) {
	if page.Announcement.State() == view.Error {
		h.logger.Warn("首页公告加载失败", "error", page.Announcement.Err())
	}
	if page.Spotlights.State() == view.Error {
		h.logger.Warn("首页轮播加载失败", "error", page.Spotlights.Err())
	}
	if page.News.State() == view.Error {
		h.logger.Warn("首页新闻加载失败", "error", page.News.Err())
	}
	if page.Events.State() == view.Error {
		h.logger.Warn("首页活动加载失败", "error", page.Events.Err())
	}
}
