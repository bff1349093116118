package service

import (
	"context"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

// DocumentService 公开文件服务
type DocumentService struct {
	repo   repository.DocumentRepository
	assets *AssetService
	logger *logger.Logger
}

// NewDocumentService 创建文件服务实例
func NewDocumentService(repo repository.DocumentRepository, assets *AssetService, logger *logger.Logger) *DocumentService {
	return &DocumentService{repo: repo, assets: assets, logger: logger}
}

// List 获取文件列表
func (s *DocumentService) List(ctx context.Context, tag string) ([]model.Document, error) {
	documents, err := s.repo.List(ctx, tag)
	if err != nil {
		s.logger.Error("获取文件列表失败", "tag", tag, "error", err)
		return nil, err
	}
	return documents, nil
}

// Get 根据ID获取文件
func (s *DocumentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	return s.repo.GetByID(ctx, id)
}

// Create 创建文件记录
func (s *DocumentService) Create(ctx context.Context, d *model.Document) error {
	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("创建文件失败", "title", d.Title, "error", err)
		return err
	}
	return nil
}

// Update 更新文件记录，文件被替换时异步删除旧文件
func (s *DocumentService) Update(ctx context.Context, d *model.Document) error {
	old, err := s.repo.GetByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error("更新文件失败", "id", d.ID, "error", err)
		return err
	}
	s.assets.DeleteLater(replaced(old.URL, d.URL))
	return nil
}

// Delete 删除文件记录，存储中的文件一并清理
func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("删除文件失败", "id", id, "error", err)
		return err
	}
	s.assets.DeleteLater(old.URL)
	return nil
}
