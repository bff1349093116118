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

// ExecutiveHandler 干部处理器
type ExecutiveHandler struct {
	executiveService *service.ExecutiveService
	tiers            []string
	logger           *logger.Logger
}

// NewExecutiveHandler 创建干部处理器实例，tiers 为页面上可筛选的层级
func NewExecutiveHandler(executiveService *service.ExecutiveService, tiers []string, logger *logger.Logger) *ExecutiveHandler {
	return &ExecutiveHandler{executiveService: executiveService, tiers: tiers, logger: logger}
}

func (h *ExecutiveHandler) load(ctx context.Context, tier string) *view.List[model.Executive] {
	l := view.LoadList(ctx, func(ctx context.Context) ([]model.Executive, error) {
		return h.executiveService.List(ctx, tier)
	})
	if l.State() == view.Error {
		h.logger.Error("获取干部列表失败", "tier", tier, "error", l.Err())
	}
	return l
}

// List 获取干部列表
// @Param tier query string false "层级，例如 Central"
// @Router /api/v1/executives [get]
func (h *ExecutiveHandler) List(c *gin.Context) {
	response.List(c, h.load(c.Request.Context(), c.Query("tier")))
}

// Page 渲染干部页面
func (h *ExecutiveHandler) Page(c *gin.Context) {
	tier := c.Query("tier")
	c.HTML(http.StatusOK, "executives", web.Page{Title: "学生会干部", Nav: "executives", Data: gin.H{
		"Executives": h.load(c.Request.Context(), tier),
		"Tier":       tier,
		"Tiers":      h.tiers,
	}})
}
