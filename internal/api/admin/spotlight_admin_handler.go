package admin

import (
	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// SpotlightAdminHandler 轮播卡片管理处理器
type SpotlightAdminHandler struct {
	spotlightService *service.SpotlightService
	logger           *logger.Logger
}

// NewSpotlightAdminHandler 创建轮播卡片管理处理器实例
func NewSpotlightAdminHandler(spotlightService *service.SpotlightService, logger *logger.Logger) *SpotlightAdminHandler {
	return &SpotlightAdminHandler{spotlightService: spotlightService, logger: logger}
}

// List 获取全部轮播卡片
// @Router /admin/spotlights [get]
func (h *SpotlightAdminHandler) List(c *gin.Context) {
	items, err := h.spotlightService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, 500, constants.ErrLoadFailed)
		return
	}
	response.Success(c, constants.SuccessGet, items)
}

// Get 获取轮播卡片详情
// @Router /admin/spotlights/{id} [get]
func (h *SpotlightAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	spotlight, err := h.spotlightService.Get(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err, constants.ErrLoadFailed, nil)
		return
	}
	response.Success(c, constants.SuccessGet, spotlight)
}

// Create 创建轮播卡片
// @Router /admin/spotlights/create [post]
func (h *SpotlightAdminHandler) Create(c *gin.Context) {
	var req types.SpotlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	spotlight := req.ToModel()
	spotlight.ID = 0
	if err := h.spotlightService.Create(c.Request.Context(), spotlight); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessCreate, spotlight)
}

// Update 更新轮播卡片
// @Router /admin/spotlights/update [post]
func (h *SpotlightAdminHandler) Update(c *gin.Context) {
	var req types.SpotlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !requireID(c, req.ID) {
		return
	}

	spotlight := req.ToModel()
	if err := h.spotlightService.Update(c.Request.Context(), spotlight); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessUpdate, spotlight)
}

// Delete 删除轮播卡片
// @Router /admin/spotlights/delete [post]
func (h *SpotlightAdminHandler) Delete(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.spotlightService.Delete(c.Request.Context(), req.ID); err != nil {
		response.StoreError(c, err, constants.ErrDeleteFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}
