package admin

import (
	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// EventAdminHandler 活动管理处理器
type EventAdminHandler struct {
	eventService *service.EventService
	logger       *logger.Logger
}

// NewEventAdminHandler 创建活动管理处理器实例
func NewEventAdminHandler(eventService *service.EventService, logger *logger.Logger) *EventAdminHandler {
	return &EventAdminHandler{eventService: eventService, logger: logger}
}

// List 获取全部活动，包括已结束的
// @Router /admin/events [get]
func (h *EventAdminHandler) List(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context(), c.Query("category"), false)
	if err != nil {
		response.Error(c, 500, constants.ErrLoadFailed)
		return
	}
	response.Success(c, constants.SuccessGet, events)
}

// Get 获取活动详情
// @Router /admin/events/{id} [get]
func (h *EventAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err, constants.ErrLoadFailed, nil)
		return
	}
	response.Success(c, constants.SuccessGet, event)
}

// Create 创建活动
// @Router /admin/events/create [post]
func (h *EventAdminHandler) Create(c *gin.Context) {
	var req types.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	event := req.ToModel()
	event.ID = 0
	if err := h.eventService.Create(c.Request.Context(), event); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessCreate, event)
}

// Update 更新活动
// @Router /admin/events/update [post]
func (h *EventAdminHandler) Update(c *gin.Context) {
	var req types.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !requireID(c, req.ID) {
		return
	}

	event := req.ToModel()
	if err := h.eventService.Update(c.Request.Context(), event); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessUpdate, event)
}

// Delete 删除活动
// @Router /admin/events/delete [post]
func (h *EventAdminHandler) Delete(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.eventService.Delete(c.Request.Context(), req.ID); err != nil {
		response.StoreError(c, err, constants.ErrDeleteFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}
