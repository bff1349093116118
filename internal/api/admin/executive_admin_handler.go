package admin

import (
	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// ExecutiveAdminHandler 干部管理处理器
type ExecutiveAdminHandler struct {
	executiveService *service.ExecutiveService
	logger           *logger.Logger
}

// NewExecutiveAdminHandler 创建干部管理处理器实例
func NewExecutiveAdminHandler(executiveService *service.ExecutiveService, logger *logger.Logger) *ExecutiveAdminHandler {
	return &ExecutiveAdminHandler{executiveService: executiveService, logger: logger}
}

// List 获取干部列表
// @Router /admin/executives [get]
func (h *ExecutiveAdminHandler) List(c *gin.Context) {
	executives, err := h.executiveService.List(c.Request.Context(), c.Query("tier"))
	if err != nil {
		response.Error(c, 500, constants.ErrLoadFailed)
		return
	}
	response.Success(c, constants.SuccessGet, executives)
}

// Get 获取干部详情
// @Router /admin/executives/{id} [get]
func (h *ExecutiveAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	executive, err := h.executiveService.Get(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err, constants.ErrLoadFailed, nil)
		return
	}
	response.Success(c, constants.SuccessGet, executive)
}

// Create 创建干部
// @Router /admin/executives/create [post]
func (h *ExecutiveAdminHandler) Create(c *gin.Context) {
	var req types.ExecutiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	executive := req.ToModel()
	executive.ID = 0
	if err := h.executiveService.Create(c.Request.Context(), executive); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessCreate, executive)
}

// Update 更新干部，照片被替换时旧照片会被异步删除
// @Router /admin/executives/update [post]
func (h *ExecutiveAdminHandler) Update(c *gin.Context) {
	var req types.ExecutiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !requireID(c, req.ID) {
		return
	}

	executive := req.ToModel()
	if err := h.executiveService.Update(c.Request.Context(), executive); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessUpdate, executive)
}

// Delete 删除干部
// @Router /admin/executives/delete [post]
func (h *ExecutiveAdminHandler) Delete(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.executiveService.Delete(c.Request.Context(), req.ID); err != nil {
		response.StoreError(c, err, constants.ErrDeleteFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}
