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

// NewsHandler 新闻处理器
type NewsHandler struct {
	newsService *service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler 创建新闻处理器实例
func NewNewsHandler(newsService *service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

func (h *NewsHandler) loadList(ctx context.Context, tag string, limit int) *view.List[model.News] {
	l := view.LoadList(ctx, func(ctx context.Context) ([]model.News, error) {
		return h.newsService.ListPublished(ctx, tag, limit)
	})
	if l.State() == view.Error {
		h.logger.Error("获取新闻列表失败", "tag", tag, "error", l.Err())
	}
	return l
}

func (h *NewsHandler) loadDetail(ctx context.Context, slug string) *view.Detail[model.News] {
	d := view.LoadDetail(ctx, func(ctx context.Context) (*model.News, error) {
		item, err := h.newsService.GetBySlug(ctx, slug)
		return notFoundAsEmpty(item, err)
	})
	if d.State() == view.Error {
		h.logger.Error("获取新闻详情失败", "slug", slug, "error", d.Err())
	}
	return d
}

// List 获取已发布新闻
// @Param tag query string false "标签"
// @Param limit query int false "条数，默认20，最多50"
// @Router /api/v1/news [get]
func (h *NewsHandler) List(c *gin.Context) {
	response.List(c, h.loadList(c.Request.Context(), c.Query("tag"), queryLimit(c)))
}

// Detail 获取新闻详情
// @Router /api/v1/news/{slug} [get]
func (h *NewsHandler) Detail(c *gin.Context) {
	response.Detail(c, h.loadDetail(c.Request.Context(), c.Param("slug")))
}

// Page 渲染新闻列表页
func (h *NewsHandler) Page(c *gin.Context) {
	tag := c.Query("tag")
	c.HTML(http.StatusOK, "news", web.Page{Title: "新闻", Nav: "news", Data: gin.H{
		"News": h.loadList(c.Request.Context(), tag, queryLimit(c)),
		"Tag":  tag,
	}})
}

// DetailPage 渲染新闻详情页
func (h *NewsHandler) DetailPage(c *gin.Context) {
	d := h.loadDetail(c.Request.Context(), c.Param("slug"))
	status, title := http.StatusOK, "新闻"
	switch d.State() {
	case view.Empty:
		status = http.StatusNotFound
	case view.Success:
		title = d.Item().Title
	}
	c.HTML(status, "news_detail", web.Page{Title: title, Nav: "news", Data: gin.H{"News": d}})
}
