package admin

import (
	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// NewsAdminHandler 新闻管理处理器
type NewsAdminHandler struct {
	newsService *service.NewsService
	logger      *logger.Logger
}

// NewNewsAdminHandler 创建新闻管理处理器实例
func NewNewsAdminHandler(newsService *service.NewsService, logger *logger.Logger) *NewsAdminHandler {
	return &NewsAdminHandler{newsService: newsService, logger: logger}
}

// List 获取全部新闻，包含草稿
// @Router /admin/news [get]
func (h *NewsAdminHandler) List(c *gin.Context) {
	news, err := h.newsService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, 500, constants.ErrLoadFailed)
		return
	}
	response.Success(c, constants.SuccessGet, news)
}

// Get 获取新闻详情
// @Router /admin/news/{id} [get]
func (h *NewsAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	news, err := h.newsService.Get(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err, constants.ErrLoadFailed, nil)
		return
	}
	response.Success(c, constants.SuccessGet, news)
}

// Create 创建新闻，slug 由标题生成
// @Router /admin/news/create [post]
func (h *NewsAdminHandler) Create(c *gin.Context) {
	var req types.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	news := req.ToModel()
	news.ID = 0
	if err := h.newsService.Create(c.Request.Context(), news); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessCreate, news)
}

// Update 更新新闻，slug 与首次发布时间保持不变
// @Router /admin/news/update [post]
func (h *NewsAdminHandler) Update(c *gin.Context) {
	var req types.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !requireID(c, req.ID) {
		return
	}

	news := req.ToModel()
	if err := h.newsService.Update(c.Request.Context(), news); err != nil {
		response.StoreError(c, err, constants.ErrSaveFailed, req)
		return
	}
	response.Success(c, constants.SuccessUpdate, news)
}

// Delete 删除新闻
// @Router /admin/news/delete [post]
func (h *NewsAdminHandler) Delete(c *gin.Context) {
	var req types.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.newsService.Delete(c.Request.Context(), req.ID); err != nil {
		response.StoreError(c, err, constants.ErrDeleteFailed, nil)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}
