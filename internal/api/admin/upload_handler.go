package admin

import (
	"errors"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"unionsite/internal/api/response"
	"unionsite/internal/constants"
	"unionsite/internal/model"
	"unionsite/internal/service"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// MaxUploadSize 单个上传文件的大小上限
const MaxUploadSize = 10 << 20

// UploadHandler 图片与文件上传
type UploadHandler struct {
	assetService *service.AssetService
	logger       *logger.Logger
}

// NewUploadHandler 创建上传处理器实例
func NewUploadHandler(assetService *service.AssetService, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{assetService: assetService, logger: logger}
}

// UploadResult 上传结果，文件类型与大小用于填写文件记录
type UploadResult struct {
	URL       string `json:"url"`
	FileType  string `json:"fileType"`
	FileSize  int64  `json:"fileSize"`
	SizeLabel string `json:"sizeLabel"`
}

// Upload 上传文件到指定目录，失败时不返回地址
// @Accept multipart/form-data
// @Param folder formData string true "executives / news / events / spotlights / documents"
// @Param file formData file true "文件"
// @Router /admin/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	folder := c.PostForm("folder")
	if !service.ValidFolder(folder) {
		response.Error(c, 400, constants.ErrInvalidFolder)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, 400, constants.ErrFileMissing)
		return
	}
	if header.Size > MaxUploadSize {
		response.Error(c, 400, constants.ErrFileTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error("读取上传文件失败", "filename", header.Filename, "error", err)
		response.Error(c, 500, constants.ErrUploadFailed)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := h.assetService.Upload(c.Request.Context(), folder, header.Filename, contentType, file)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFolder) {
			response.Error(c, 400, constants.ErrInvalidFolder)
			return
		}
		response.Error(c, 500, constants.ErrUploadFailed)
		return
	}

	response.Success(c, constants.SuccessUpload, UploadResult{
		URL:       url,
		FileType:  strings.TrimPrefix(strings.ToLower(path.Ext(header.Filename)), "."),
		FileSize:  header.Size,
		SizeLabel: model.FormatFileSize(header.Size),
	})
}

// Delete 按公开地址删除文件
// @Router /admin/uploads/delete [post]
func (h *UploadHandler) Delete(c *gin.Context) {
	var req types.DeleteUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !h.assetService.Delete(c.Request.Context(), req.URL) {
		response.ErrorWithData(c, 500, constants.ErrDeleteFailed, req)
		return
	}
	response.Success(c, constants.SuccessDelete, nil)
}
