package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// AnnouncementAdminHandler 全站公告管理处理器
type AnnouncementAdminHandler struct {
	announcementService *service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementAdminHandler 创建公告管理处理器实例
func NewAnnouncementAdminHandler(announcementService *service.AnnouncementService, logger *logger.Logger) *AnnouncementAdminHandler {
	return &AnnouncementAdminHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// List 获取全部公告
// @Summary 获取公告列表（管理员）
// @Tags 公告管理
// @Router /admin/announcements [get]
func (h *AnnouncementAdminHandler) List(c *gin.Context) {
	announcements, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("获取管理员公告列表失败", "error", err)
		response.Error(c, 500, constants.ErrLoadFailed)
		return
	}
	response.Success(c, constants.SuccessGet, announcements)
}

// Get 获取单个公告详情
// @Tags 公告管理
// @Router /admin/announcements/{id} [get]
func (h *AnnouncementAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	announcement, err := h.announcementService.Get(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err, constants.ErrLoadFailed, nil)
		return
	}
	response.Success(c, constants.SuccessGet, announcement)
}

// Create 创建公告，isActive 为 true 时立即激活并停用其他公告
// @Tags 公告管理
// @Router /admin/announcements/create [post]
func (h *AnnouncementAdminHandler) Create(c *gin.Context) {
	var req types.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	announcement := req.ToModel()
	announcement.ID = 0
	if err := h.announcementService.Create(c.Request.Context(), announcement); err != nil {
		h.activateError(c, err, req)
		return
	}
	response.Success(c, constants.SuccessCreate, announcement)
}

// Update 更新公告内容，激活状态只能通过 activate 和 deactivate 修改
// @Tags 公告管理
// @Router /admin/announcements/update [post]
func (h *AnnouncementAdminHandler) Update(c *gin.Context) {
	var req types.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !requireID(c, req.ID) {
		return
	}

	announcement := req.ToModel()
	if err := h.announcementService.Update(c.Request.Context(), announcement); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessUpdate, announcement)
}

// Delete 删除公告
// @Tags 公告管理
// @Router /admin/announcements/delete [post]
func (h *AnnouncementAdminHandler) Delete(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.announcementService.Delete(c.Request.Context(), req.ID); err != nil {
		h.logger.Error("删除公告失败", "id", req.ID, "error", err)
		response.StoreError(c, err, constants.ErrDeleteFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}

// Activate 激活公告，其他公告同时停用
// @Tags 公告管理
// @Router /admin/announcements/activate [post]
func (h *AnnouncementAdminHandler) Activate(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.announcementService.Activate(c.Request.Context(), req.ID); err != nil {
		h.activateError(c, err, req)
		return
	}
	response.Success(c, constants.SuccessActivate, nil)
}

// Deactivate 停用公告
// @Tags 公告管理
// @Router /admin/announcements/deactivate [post]
func (h *AnnouncementAdminHandler) Deactivate(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.announcementService.Deactivate(c.Request.Context(), req.ID); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDeactivate, nil)
}

func (h *AnnouncementAdminHandler) activateError(c *gin.Context, err error, req interface{}) {
	if errors.Is(err, service.ErrBusy) {
		response.ErrorWithData(c, 429, constants.ErrOperationBusy, req)
		return
	}
	response.StoreError(c, err, constants.ErrSaveFailed, req)
}
