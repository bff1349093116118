package service

import (
	"context"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

// SpotlightService 首页轮播服务
type SpotlightService struct {
	repo   repository.SpotlightRepository
	assets *AssetService
	logger *logger.Logger
}

// NewSpotlightService 创建轮播服务实例
func NewSpotlightService(repo repository.SpotlightRepository, assets *AssetService, logger *logger.Logger) *SpotlightService {
	return &SpotlightService{repo: repo, assets: assets, logger: logger}
}

// ListActive 获取启用的轮播卡片
func (s *SpotlightService) ListActive(ctx context.Context) ([]model.Spotlight, error) {
	spotlights, err := s.repo.List(ctx, true)
	if err != nil {
		s.logger.Error("获取轮播列表失败", "error", err)
		return nil, err
	}
	return spotlights, nil
}

// ListAll 管理员获取全部轮播卡片
func (s *SpotlightService) ListAll(ctx context.Context) ([]model.Spotlight, error) {
	return s.repo.List(ctx, false)
}

// Get 根据ID获取轮播卡片
func (s *SpotlightService) Get(ctx context.Context, id int64) (*model.Spotlight, error) {
	return s.repo.GetByID(ctx, id)
}

// Create 创建轮播卡片
func (s *SpotlightService) Create(ctx context.Context, sp *model.Spotlight) error {
	if err := s.repo.Create(ctx, sp); err != nil {
		s.logger.Error("创建轮播失败", "title", sp.Title, "error", err)
		return err
	}
	return nil
}

// Update 更新轮播卡片，图片被替换时异步删除旧图片
func (s *SpotlightService) Update(ctx context.Context, sp *model.Spotlight) error {
	old, err := s.repo.GetByID(ctx, sp.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, sp); err != nil {
		s.logger.Error("更新轮播失败", "id", sp.ID, "error", err)
		return err
	}
	s.assets.DeleteLater(replaced(old.ImageURL, sp.ImageURL))
	return nil
}

// Delete 删除轮播卡片及其图片
func (s *SpotlightService) Delete(ctx context.Context, id int64) error {
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("删除轮播失败", "id", id, "error", err)
		return err
	}
	s.assets.DeleteLater(old.ImageURL)
	return nil
}
