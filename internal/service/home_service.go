package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"unionsite/internal/model"
	"unionsite/internal/view"
)

const (
	homeNewsLimit   = 3
	homeEventsLimit = 3
)

// HomePage 首页各区块，每个区块独立加载，互不影响
type HomePage struct {
	Announcement *view.Detail[model.Announcement] `json:"announcement"`
	Spotlights   *view.List[model.Spotlight]      `json:"spotlights"`
	News         *view.List[model.News]           `json:"news"`
	Events       *view.List[model.Event]          `json:"events"`
}

// HomeService 组合首页内容
type HomeService struct {
	announcements *AnnouncementService
	spotlights    *SpotlightService
	news          *NewsService
	events        *EventService
}

// NewHomeService 创建首页服务实例
func NewHomeService(announcements *AnnouncementService, spotlights *SpotlightService, news *NewsService, events *EventService) *HomeService {
	return &HomeService{announcements: announcements, spotlights: spotlights, news: news, events: events}
}

// Load 并发加载首页各区块，每个区块各发起一次查询并各自解析状态
func (s *HomeService) Load(ctx context.Context) *HomePage {
	page := &HomePage{}
	var g errgroup.Group

	g.Go(func() error {
		page.Announcement = view.LoadDetail(ctx, s.announcements.Active)
		return nil
	})
	g.Go(func() error {
		page.Spotlights = view.LoadList(ctx, s.spotlights.ListActive)
		return nil
	})
	g.Go(func() error {
		page.News = view.LoadList(ctx, func(ctx context.Context) ([]model.News, error) {
			return s.news.ListPublished(ctx, "", homeNewsLimit)
		})
		return nil
	})
	g.Go(func() error {
		page.Events = view.LoadList(ctx, func(ctx context.Context) ([]model.Event, error) {
			return s.events.Upcoming(ctx, homeEventsLimit)
		})
		return nil
	})

	_ = g.Wait()
	return page
}
