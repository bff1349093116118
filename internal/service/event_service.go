package service

import (
	"context"
	"fmt"
	"time"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

// EventService 活动服务
type EventService struct {
	repo   repository.EventRepository
	assets *AssetService
	logger *logger.Logger
	now    func() time.Time
}

// NewEventService 创建活动服务实例
func NewEventService(repo repository.EventRepository, assets *AssetService, logger *logger.Logger) *EventService {
	return &EventService{repo: repo, assets: assets, logger: logger, now: time.Now}
}

// List 获取活动列表，upcoming 为 true 时只返回尚未结束的活动
func (s *EventService) List(ctx context.Context, category string, upcoming bool) ([]model.Event, error) {
	filter := repository.EventFilter{Category: category}
	if upcoming {
		filter.EndsAfter = s.now()
	}
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("获取活动列表失败", "category", category, "error", err)
		return nil, err
	}
	return events, nil
}

// Upcoming 首页展示的近期活动
func (s *EventService) Upcoming(ctx context.Context, limit int) ([]model.Event, error) {
	events, err := s.repo.List(ctx, repository.EventFilter{EndsAfter: s.now(), Limit: limit})
	if err != nil {
		s.logger.Error("获取近期活动失败", "error", err)
		return nil, err
	}
	return events, nil
}

// GetBySlug 获取活动详情
func (s *EventService) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Get 根据ID获取活动
func (s *EventService) Get(ctx context.Context, id int64) (*model.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// Create 创建活动
func (s *EventService) Create(ctx context.Context, e *model.Event) error {
	if e.Slug == "" {
		e.Slug = slugify(e.Title)
	}
	if e.Slug == "" {
		e.Slug = fmt.Sprintf("event-%d", s.now().UnixMilli())
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("创建活动失败", "slug", e.Slug, "error", err)
		return err
	}
	return nil
}

// Update 更新活动，封面被替换时异步删除旧封面
func (s *EventService) Update(ctx context.Context, e *model.Event) error {
	old, err := s.repo.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	if e.Slug == "" {
		e.Slug = old.Slug
	}
	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("更新活动失败", "id", e.ID, "error", err)
		return err
	}
	s.assets.DeleteLater(replaced(old.CoverURL, e.CoverURL))
	return nil
}

// Delete 删除活动及其封面
func (s *EventService) Delete(ctx context.Context, id int64) error {
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("删除活动失败", "id", id, "error", err)
		return err
	}
	s.assets.DeleteLater(old.CoverURL)
	return nil
}
