package service

import (
	"context"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

// ExecutiveService 干部服务
type ExecutiveService struct {
	repo   repository.ExecutiveRepository
	assets *AssetService
	logger *logger.Logger
}

// NewExecutiveService 创建干部服务实例
func NewExecutiveService(repo repository.ExecutiveRepository, assets *AssetService, logger *logger.Logger) *ExecutiveService {
	return &ExecutiveService{repo: repo, assets: assets, logger: logger}
}

// List 获取干部列表，tier 为空时返回全部届别
func (s *ExecutiveService) List(ctx context.Context, tier string) ([]model.Executive, error) {
	executives, err := s.repo.List(ctx, repository.ExecutiveFilter{Tier: tier})
	if err != nil {
		s.logger.Error("获取干部列表失败", "tier", tier, "error", err)
		return nil, err
	}
	return executives, nil
}

// Get 根据ID获取干部
func (s *ExecutiveService) Get(ctx context.Context, id int64) (*model.Executive, error) {
	return s.repo.GetByID(ctx, id)
}

// Create 创建干部
func (s *ExecutiveService) Create(ctx context.Context, e *model.Executive) error {
	if e.Slug == "" {
		e.Slug = slugify(e.Name)
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("创建干部失败", "name", e.Name, "error", err)
		return err
	}
	return nil
}

// Update 更新干部，照片被替换时异步删除旧照片
func (s *ExecutiveService) Update(ctx context.Context, e *model.Executive) error {
	old, err := s.repo.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	if e.Slug == "" {
		e.Slug = old.Slug
	}
	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("更新干部失败", "id", e.ID, "error", err)
		return err
	}
	s.assets.DeleteLater(replaced(old.PhotoURL, e.PhotoURL))
	return nil
}

// Delete 删除干部及其照片
func (s *ExecutiveService) Delete(ctx context.Context, id int64) error {
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("删除干部失败", "id", id, "error", err)
		return err
	}
	s.assets.DeleteLater(old.PhotoURL)
	return nil
}
