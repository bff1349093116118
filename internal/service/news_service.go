package service

import (
	"context"
	"fmt"
	"time"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

// NewsService 新闻服务
type NewsService struct {
	repo   repository.NewsRepository
	assets *AssetService
	logger *logger.Logger
}

// NewNewsService 创建新闻服务实例
func NewNewsService(repo repository.NewsRepository, assets *AssetService, logger *logger.Logger) *NewsService {
	return &NewsService{repo: repo, assets: assets, logger: logger}
}

// ListPublished 获取已发布新闻，limit 为0时不限制
func (s *NewsService) ListPublished(ctx context.Context, tag string, limit int) ([]model.News, error) {
	news, err := s.repo.List(ctx, repository.NewsFilter{Tag: tag, Limit: limit})
	if err != nil {
		s.logger.Error("获取新闻列表失败", "tag", tag, "error", err)
		return nil, err
	}
	return news, nil
}

// ListAll 管理员获取全部新闻，包括草稿
func (s *NewsService) ListAll(ctx context.Context) ([]model.News, error) {
	return s.repo.List(ctx, repository.NewsFilter{IncludeDrafts: true})
}

// GetBySlug 获取已发布的新闻详情
func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*model.News, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Get 根据ID获取新闻
func (s *NewsService) Get(ctx context.Context, id int64) (*model.News, error) {
	return s.repo.GetByID(ctx, id)
}

// Create 创建新闻，未填写 slug 时由标题生成
func (s *NewsService) Create(ctx context.Context, n *model.News) error {
	if n.Slug == "" {
		n.Slug = slugify(n.Title)
	}
	if n.Slug == "" {
		n.Slug = fmt.Sprintf("news-%d", time.Now().UnixMilli())
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("创建新闻失败", "slug", n.Slug, "error", err)
		return err
	}
	return nil
}

// Update 更新新闻，封面被替换时异步删除旧封面
func (s *NewsService) Update(ctx context.Context, n *model.News) error {
	old, err := s.repo.GetByID(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.Slug == "" {
		n.Slug = old.Slug
	}
	// 保留首次发布时间
	if n.IsPublished && n.PublishedAt == nil {
		n.PublishedAt = old.PublishedAt
	}
	if err := s.repo.Update(ctx, n); err != nil {
		s.logger.Error("更新新闻失败", "id", n.ID, "error", err)
		return err
	}
	s.assets.DeleteLater(replaced(old.CoverURL, n.CoverURL))
	return nil
}

// Delete 删除新闻及其封面
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("删除新闻失败", "id", id, "error", err)
		return err
	}
	s.assets.DeleteLater(old.CoverURL)
	return nil
}
