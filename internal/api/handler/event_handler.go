package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/model"
	"unionsite/internal/service"
	"unionsite/internal/view"
	"unionsite/internal/web"
	"unionsite/pkg/logger"
)

// EventHandler 活动处理器
type EventHandler struct {
	eventService *service.EventService
	logger       *logger.Logger
}

// NewEventHandler 创建活动处理器实例
func NewEventHandler(eventService *service.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, logger: logger}
}

func (h *EventHandler) loadList(ctx context.Context, category string, upcoming bool) *view.List[model.Event] {
	l := view.LoadList(ctx, func(ctx context.Context) ([]model.Event, error) {
		return h.eventService.List(ctx, category, upcoming)
	})
	if l.State() == view.Error {
		h.logger.Error("获取活动列表失败", "category", category, "error", l.Err())
	}
	return l
}

func (h *EventHandler) loadDetail(ctx context.Context, slug string) *view.Detail[model.Event] {
	d := view.LoadDetail(ctx, func(ctx context.Context) (*model.Event, error) {
		item, err := h.eventService.GetBySlug(ctx, slug)
		return notFoundAsEmpty(item, err)
	})
	if d.State() == view.Error {
		h.logger.Error("获取活动详情失败", "slug", slug, "error", d.Err())
	}
	return d
}

// List 获取活动列表
// @Param category query string false "类别"
// @Param upcoming query bool false "只返回未结束的活动"
// @Router /api/v1/events [get]
func (h *EventHandler) List(c *gin.Context) {
	response.List(c, h.loadList(c.Request.Context(), c.Query("category"), queryBool(c, "upcoming", false)))
}

// Detail 获取活动详情
// @Router /api/v1/events/{slug} [get]
func (h *EventHandler) Detail(c *gin.Context) {
	response.Detail(c, h.loadDetail(c.Request.Context(), c.Param("slug")))
}

// Page 渲染活动列表页，默认只显示未结束的活动
func (h *EventHandler) Page(c *gin.Context) {
	category := c.Query("category")
	upcoming := queryBool(c, "upcoming", true)
	c.HTML(http.StatusOK, "events", web.Page{Title: "活动", Nav: "events", Data: gin.H{
		"Events":   h.loadList(c.Request.Context(), category, upcoming),
		"Category": category,
		"Upcoming": upcoming,
	}})
}

// DetailPage 渲染活动详情页
func (h *EventHandler) DetailPage(c *gin.Context) {
	d := h.loadDetail(c.Request.Context(), c.Param("slug"))
	status, title := http.StatusOK, "活动"
	switch d.State() {
	case view.Empty:
		status = http.StatusNotFound
	case view.Success:
		title = d.Item().Title
	}
	c.HTML(status, "event_detail", web.Page{Title: title, Nav: "events", Data: gin.H{"Event": d}})
}
