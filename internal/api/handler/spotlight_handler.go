package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/carousel"
	"unionsite/internal/model"
	"unionsite/internal/service"
	"unionsite/internal/view"
	"unionsite/pkg/logger"
)

// SpotlightHandler 首页轮播处理器
type SpotlightHandler struct {
	spotlightService *service.SpotlightService
	newRotator       func(count int) *carousel.Rotator
	logger           *logger.Logger
}

// NewSpotlightHandler 创建轮播处理器实例
func NewSpotlightHandler(spotlightService *service.SpotlightService, logger *logger.Logger) *SpotlightHandler {
	return &SpotlightHandler{spotlightService: spotlightService, newRotator: carousel.New, logger: logger}
}

func (h *SpotlightHandler) load(ctx context.Context) *view.List[model.Spotlight] {
	l := view.LoadList(ctx, h.spotlightService.ListActive)
	if l.State() == view.Error {
		h.logger.Error("获取轮播列表失败", "error", l.Err())
	}
	return l
}

// List 获取启用中的轮播卡片
// @Router /api/v1/spotlights [get]
func (h *SpotlightHandler) List(c *gin.Context) {
	response.List(c, h.load(c.Request.Context()))
}

// rotationEvent 推送给页面的轮播状态
type rotationEvent struct {
	carousel.State
	SpotlightID int64 `json:"spotlightId"`
}

// Rotation 以 server-sent events 推送轮播状态，客户端断开时停止
// 先推送一次 state 事件（列表视图），成功且有卡片时再持续推送 rotation 事件
// @Router /api/v1/spotlights/rotation [get]
func (h *SpotlightHandler) Rotation(c *gin.Context) {
	ctx := c.Request.Context()
	l := h.load(ctx)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("state", l)
	c.Writer.Flush()

	if l.State() != view.Success {
		return
	}

	items := l.Items()
	states := make(chan carousel.State)
	go func() {
		defer close(states)
		_ = h.newRotator(len(items)).Run(ctx, func(s carousel.State) {
			select {
			case states <- s:
			case <-ctx.Done():
			}
		})
	}()

	for s := range states {
		c.SSEvent("rotation", rotationEvent{State: s, SpotlightID: items[s.Index].ID})
		c.Writer.Flush()
	}
}
