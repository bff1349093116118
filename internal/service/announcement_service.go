package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

const (
	announcementLockKey = "announcements:activate:lock"
	announcementLockTTL = 10 * time.Second
)

// AnnouncementService 全站公告服务
type AnnouncementService struct {
	repo        repository.AnnouncementRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

// NewAnnouncementService 创建公告服务实例
func NewAnnouncementService(repo repository.AnnouncementRepository, redisClient *redis.Client, logger *logger.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, redisClient: redisClient, logger: logger}
}

// Active 获取当前激活的公告，没有激活公告时返回 (nil, nil)
func (s *AnnouncementService) Active(ctx context.Context) (*model.Announcement, error) {
	a, err := s.repo.Active(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("获取激活公告失败", "error", err)
		return nil, err
	}
	return a, nil
}

// List 管理员获取全部公告
func (s *AnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.List(ctx)
}

// Get 根据ID获取公告
func (s *AnnouncementService) Get(ctx context.Context, id int64) (*model.Announcement, error) {
	return s.repo.GetByID(ctx, id)
}

// Create 创建公告。IsActive 为 true 时先取得激活锁，再在同一事务中插入并停用其他公告
func (s *AnnouncementService) Create(ctx context.Context, a *model.Announcement) error {
	if !a.IsActive {
		if err := s.repo.Create(ctx, a); err != nil {
			s.logger.Error("创建公告失败", "title", a.Title, "error", err)
			return err
		}
		return nil
	}

	return s.withActivateLock(ctx, a.Title, func() error {
		if err := s.repo.CreateActive(ctx, a); err != nil {
			s.logger.Error("创建激活公告失败", "title", a.Title, "error", err)
			return err
		}
		s.logger.Info("公告已创建并激活", "id", a.ID)
		return nil
	})
}

// Update 更新公告内容
func (s *AnnouncementService) Update(ctx context.Context, a *model.Announcement) error {
	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("更新公告失败", "id", a.ID, "error", err)
		return err
	}
	return nil
}

// Delete 删除公告
func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Activate 激活公告并停用其他公告，同一时间只允许一个激活操作
func (s *AnnouncementService) Activate(ctx context.Context, id int64) error {
	return s.withActivateLock(ctx, id, func() error {
		if err := s.repo.Activate(ctx, id); err != nil {
			s.logger.Error("激活公告失败", "id", id, "error", err)
			return err
		}
		s.logger.Info("公告已激活", "id", id)
		return nil
	})
}

// withActivateLock 持有激活锁时执行 fn，锁被占用时返回 ErrBusy 且不执行 fn
func (s *AnnouncementService) withActivateLock(ctx context.Context, owner interface{}, fn func() error) error {
	ok, err := s.redisClient.SetNX(ctx, announcementLockKey, owner, announcementLockTTL).Result()
	if err != nil {
		s.logger.Error("获取公告激活锁失败", "error", err)
		return err
	}
	if !ok {
		return ErrBusy
	}
	defer s.redisClient.Del(context.Background(), announcementLockKey)
	return fn()
}

// Deactivate 停用公告
func (s *AnnouncementService) Deactivate(ctx context.Context, id int64) error {
	return s.repo.Deactivate(ctx, id)
}
