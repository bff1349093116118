package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/model"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/internal/view"
	"unionsite/internal/web"
	"unionsite/pkg/logger"
)

// ComplaintHandler 学生投诉处理器
type ComplaintHandler struct {
	complaintService *service.ComplaintService
	logger           *logger.Logger
}

// NewComplaintHandler 创建投诉处理器实例
func NewComplaintHandler(complaintService *service.ComplaintService, logger *logger.Logger) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService, logger: logger}
}

func (h *ComplaintHandler) loadByReference(ctx context.Context, reference string) *view.Detail[model.Complaint] {
	d := view.LoadDetail(ctx, func(ctx context.Context) (*model.Complaint, error) {
		item, err := h.complaintService.GetByReference(ctx, reference)
		return notFoundAsEmpty(item, err)
	})
	if d.State() == view.Error {
		h.logger.Error("查询投诉进度失败", "reference", reference, "error", d.Err())
	}
	return d
}

// Submit 提交投诉，返回受理编号
// @Router /api/v1/complaints [post]
func (h *ComplaintHandler) Submit(c *gin.Context) {
	var req types.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	complaint, err := h.complaintService.Submit(c.Request.Context(), req.Category, req.Subject, req.Details, req.ContactEmail)
	if err != nil {
		response.ErrorWithData(c, 500, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessSubmit, complaint.Public())
}

// Track 按受理编号查询进度
// @Router /api/v1/complaints/{reference} [get]
func (h *ComplaintHandler) Track(c *gin.Context) {
	d := h.loadByReference(c.Request.Context(), c.Param("reference"))
	if d.State() == view.Empty {
		response.Error(c, 404, constants.ErrComplaintNotFound)
		return
	}
	response.Detail(c, d)
}

// SubmitForm 学生服务页上的投诉表单，成功后跳转到进度页
func (h *ComplaintHandler) SubmitForm(c *gin.Context) {
	var req types.ComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "complaint", web.Page{Title: "投诉进度", Nav: "services", Data: gin.H{
			"Fields": types.FieldErrors(err),
			"Notice": constants.ErrInvalidParams,
		}})
		return
	}

	complaint, err := h.complaintService.Submit(c.Request.Context(), req.Category, req.Subject, req.Details, req.ContactEmail)
	if err != nil {
		c.HTML(http.StatusOK, "complaint", web.Page{Title: "投诉进度", Nav: "services", Data: gin.H{
			"Notice": constants.ErrSaveFailed,
		}})
		return
	}
	c.Redirect(http.StatusSeeOther, "/services/complaints?reference="+url.QueryEscape(complaint.Reference))
}

// TrackPage 渲染投诉进度页
func (h *ComplaintHandler) TrackPage(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.Redirect(http.StatusSeeOther, "/services")
		return
	}
	d := h.loadByReference(c.Request.Context(), reference)
	status := http.StatusOK
	if d.State() == view.Empty {
		status = http.StatusNotFound
	}
	c.HTML(status, "complaint", web.Page{Title: "投诉进度", Nav: "services", Data: gin.H{"Complaint": d}})
}
