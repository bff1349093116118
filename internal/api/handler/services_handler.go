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

// ServicesHandler 学生服务页：文件下载与实习机会
type ServicesHandler struct {
	documentService    *service.DocumentService
	opportunityService *service.OpportunityService
	logger             *logger.Logger
}

// NewServicesHandler 创建学生服务处理器实例
func NewServicesHandler(documentService *service.DocumentService, opportunityService *service.OpportunityService, logger *logger.Logger) *ServicesHandler {
	return &ServicesHandler{documentService: documentService, opportunityService: opportunityService, logger: logger}
}

func (h *ServicesHandler) loadDocuments(ctx context.Context, tag string) *view.List[model.Document] {
	l := view.LoadList(ctx, func(ctx context.Context) ([]model.Document, error) {
		return h.documentService.List(ctx, tag)
	})
	if l.State() == view.Error {
		h.logger.Error("获取文件列表失败", "tag", tag, "error", l.Err())
	}
	return l
}

func (h *ServicesHandler) loadOpportunities(ctx context.Context, tag string) *view.List[model.Opportunity] {
	l := view.LoadList(ctx, func(ctx context.Context) ([]model.Opportunity, error) {
		return h.opportunityService.List(ctx, tag)
	})
	if l.State() == view.Error {
		h.logger.Error("获取机会列表失败", "tag", tag, "error", l.Err())
	}
	return l
}

// Documents 获取文件列表
// @Router /api/v1/documents [get]
func (h *ServicesHandler) Documents(c *gin.Context) {
	response.List(c, h.loadDocuments(c.Request.Context(), c.Query("tag")))
}

// Opportunities 获取机会列表
// @Router /api/v1/opportunities [get]
func (h *ServicesHandler) Opportunities(c *gin.Context) {
	response.List(c, h.loadOpportunities(c.Request.Context(), c.Query("tag")))
}

// Page 渲染学生服务页
func (h *ServicesHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	c.HTML(http.StatusOK, "services", web.Page{Title: "学生服务", Nav: "services", Data: gin.H{
		"Documents":     h.loadDocuments(ctx, ""),
		"Opportunities": h.loadOpportunities(ctx, ""),
	}})
}
