package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/model"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// ComplaintAdminHandler 投诉处理
type ComplaintAdminHandler struct {
	complaintService *service.ComplaintService
	logger           *logger.Logger
}

// NewComplaintAdminHandler 创建投诉管理处理器实例
func NewComplaintAdminHandler(complaintService *service.ComplaintService, logger *logger.Logger) *ComplaintAdminHandler {
	return &ComplaintAdminHandler{complaintService: complaintService, logger: logger}
}

// List 获取投诉列表，可按状态筛选
// @Param status query string false "Queued / In Review / Resolved / Closed"
// @Router /admin/complaints [get]
func (h *ComplaintAdminHandler) List(c *gin.Context) {
	status := model.ComplaintStatus(c.Query("status"))
	complaints, err := h.complaintService.List(c.Request.Context(), status)
	if err != nil {
		h.logger.Error("获取投诉列表失败", "status", status, "error", err)
		response.Error(c, 500, constants.ErrLoadFailed)
		return
	}
	response.Success(c, constants.SuccessGet, complaints)
}

// Get 获取投诉详情，包含联系邮箱
// @Router /admin/complaints/{id} [get]
func (h *ComplaintAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	complaint, err := h.complaintService.Get(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err, constants.ErrLoadFailed, nil)
		return
	}
	response.Success(c, constants.SuccessGet, complaint)
}

// Transition 变更投诉状态并追加处理记录
// @Router /admin/complaints/transition [post]
func (h *ComplaintAdminHandler) Transition(c *gin.Context) {
	var req types.ComplaintTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	complaint, err := h.complaintService.Transition(c.Request.Context(), req.ID, model.ComplaintStatus(req.Status), req.Note)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			response.ErrorWithData(c, 409, constants.ErrInvalidTransition, req)
			return
		}
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessUpdate, complaint)
}

// Delete 删除投诉
// @Router /admin/complaints/delete [post]
func (h *ComplaintAdminHandler) Delete(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.complaintService.Delete(c.Request.Context(), req.ID); err != nil {
		response.StoreError(c, err, constants.ErrDeleteFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}
