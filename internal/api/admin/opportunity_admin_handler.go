package admin

import (
	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// OpportunityAdminHandler 机会管理处理器
type OpportunityAdminHandler struct {
	opportunityService *service.OpportunityService
	logger             *logger.Logger
}

// NewOpportunityAdminHandler 创建机会管理处理器实例
func NewOpportunityAdminHandler(opportunityService *service.OpportunityService, logger *logger.Logger) *OpportunityAdminHandler {
	return &OpportunityAdminHandler{opportunityService: opportunityService, logger: logger}
}

// List 获取全部机会
// @Router /admin/opportunities [get]
func (h *OpportunityAdminHandler) List(c *gin.Context) {
	items, err := h.opportunityService.List(c.Request.Context(), c.Query("tag"))
	if err != nil {
		response.Error(c, 500, constants.ErrLoadFailed)
		return
	}
	response.Success(c, constants.SuccessGet, items)
}

// Get 获取机会详情
// @Router /admin/opportunities/{id} [get]
func (h *OpportunityAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	opportunity, err := h.opportunityService.Get(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err, constants.ErrLoadFailed, nil)
		return
	}
	response.Success(c, constants.SuccessGet, opportunity)
}

// Create 创建机会
// @Router /admin/opportunities/create [post]
func (h *OpportunityAdminHandler) Create(c *gin.Context) {
	var req types.OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	opportunity := req.ToModel()
	opportunity.ID = 0
	if err := h.opportunityService.Create(c.Request.Context(), opportunity); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessCreate, opportunity)
}

// Update 更新机会
// @Router /admin/opportunities/update [post]
func (h *OpportunityAdminHandler) Update(c *gin.Context) {
	var req types.OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !requireID(c, req.ID) {
		return
	}

	opportunity := req.ToModel()
	if err := h.opportunityService.Update(c.Request.Context(), opportunity); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessUpdate, opportunity)
}

// Delete 删除机会
// @Router /admin/opportunities/delete [post]
func (h *OpportunityAdminHandler) Delete(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.opportunityService.Delete(c.Request.Context(), req.ID); err != nil {
		response.StoreError(c, err, constants.ErrDeleteFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}
