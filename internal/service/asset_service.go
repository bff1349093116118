package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"unionsite/pkg/logger"
)

// ErrInvalidFolder 不允许上传到该目录
var ErrInvalidFolder = errors.New("不支持的上传目录")

// 允许上传的目录，与实体一一对应
var assetFolders = map[string]bool{
	"executives": true,
	"news":       true,
	"events":     true,
	"spotlights": true,
	"documents":  true,
}

// AssetStore 对象存储后端，storage.Client 与 imagehost.Client 均实现该接口
type AssetStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// TaskSubmitter 异步任务队列，async.Worker 实现该接口
type TaskSubmitter interface {
	Submit(name string, handler func(ctx context.Context) error) bool
}

// AssetService 上传与删除图片、文件
type AssetService struct {
	store  AssetStore
	worker TaskSubmitter
	logger *logger.Logger
}

// NewAssetService 创建资源服务实例
func NewAssetService(store AssetStore, worker TaskSubmitter, logger *logger.Logger) *AssetService {
	return &AssetService{store: store, worker: worker, logger: logger}
}

// ValidFolder 目录是否允许上传
func ValidFolder(folder string) bool {
	return assetFolders[strings.Trim(folder, "/")]
}

// Upload 上传文件，成功返回非空公开地址，失败返回空字符串，不重试
func (s *AssetService) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	if !ValidFolder(folder) {
		return "", ErrInvalidFolder
	}

	url, err := s.store.Upload(ctx, strings.Trim(folder, "/"), filename, contentType, body)
	if err != nil {
		s.logger.Error("上传文件失败", "folder", folder, "filename", filename, "error", err)
		return "", err
	}
	if url == "" {
		s.logger.Error("上传文件未返回地址", "folder", folder, "filename", filename)
		return "", errors.New("上传文件未返回地址")
	}
	return url, nil
}

// Delete 根据公开地址删除文件，返回是否成功
func (s *AssetService) Delete(ctx context.Context, publicURL string) bool {
	if publicURL == "" {
		return false
	}
	if err := s.store.Delete(ctx, publicURL); err != nil {
		s.logger.Warn("删除文件失败", "url", publicURL, "error", err)
		return false
	}
	return true
}

// DeleteLater 把删除放入异步队列，用于记录删除或替换图片后清理旧文件
func (s *AssetService) DeleteLater(publicURL string) {
	if s == nil || publicURL == "" || s.worker == nil {
		return
	}
	s.worker.Submit("delete_asset", func(ctx context.Context) error {
		if !s.Delete(ctx, publicURL) {
			return errors.New("删除文件失败: " + publicURL)
		}
		return nil
	})
}

// replaced 旧地址被新地址替换时返回旧地址
func replaced(oldURL, newURL string) string {
	if oldURL != "" && oldURL != newURL {
		return oldURL
	}
	return ""
}
