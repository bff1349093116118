package admin

import (
	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// DocumentAdminHandler 文件管理处理器
type DocumentAdminHandler struct {
	documentService *service.DocumentService
	logger          *logger.Logger
}

// NewDocumentAdminHandler 创建文件管理处理器实例
func NewDocumentAdminHandler(documentService *service.DocumentService, logger *logger.Logger) *DocumentAdminHandler {
	return &DocumentAdminHandler{documentService: documentService, logger: logger}
}

// List 获取全部文件
// @Router /admin/documents [get]
func (h *DocumentAdminHandler) List(c *gin.Context) {
	items, err := h.documentService.List(c.Request.Context(), c.Query("tag"))
	if err != nil {
		response.Error(c, 500, constants.ErrLoadFailed)
		return
	}
	response.Success(c, constants.SuccessGet, items)
}

// Get 获取文件详情
// @Router /admin/documents/{id} [get]
func (h *DocumentAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	document, err := h.documentService.Get(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err, constants.ErrLoadFailed, nil)
		return
	}
	response.Success(c, constants.SuccessGet, document)
}

// Create 创建文件
// @Router /admin/documents/create [post]
func (h *DocumentAdminHandler) Create(c *gin.Context) {
	var req types.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	document := req.ToModel()
	document.ID = 0
	if err := h.documentService.Create(c.Request.Context(), document); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessCreate, document)
}

// Update 更新文件
// @Router /admin/documents/update [post]
func (h *DocumentAdminHandler) Update(c *gin.Context) {
	var req types.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !requireID(c, req.ID) {
		return
	}

	document := req.ToModel()
	if err := h.documentService.Update(c.Request.Context(), document); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessUpdate, document)
}

// Delete 删除文件
// @Router /admin/documents/delete [post]
func (h *DocumentAdminHandler) Delete(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.documentService.Delete(c.Request.Context(), req.ID); err != nil {
		response.StoreError(c, err, constants.ErrDeleteFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}
