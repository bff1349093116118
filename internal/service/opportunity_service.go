package service

import (
	"context"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

// OpportunityService 机会服务
type OpportunityService struct {
	repo   repository.OpportunityRepository
	logger *logger.Logger
}

// NewOpportunityService 创建机会服务实例
func NewOpportunityService(repo repository.OpportunityRepository, logger *logger.Logger) *OpportunityService {
	return &OpportunityService{repo: repo, logger: logger}
}

// List 获取机会列表
func (s *OpportunityService) List(ctx context.Context, tag string) ([]model.Opportunity, error) {
	opportunities, err := s.repo.List(ctx, tag)
	if err != nil {
		s.logger.Error("获取机会列表失败", "tag", tag, "error", err)
		return nil, err
	}
	return opportunities, nil
}

// Get 根据ID获取机会
func (s *OpportunityService) Get(ctx context.Context, id int64) (*model.Opportunity, error) {
	return s.repo.GetByID(ctx, id)
}

// Create 创建机会
func (s *OpportunityService) Create(ctx context.Context, o *model.Opportunity) error {
	return s.repo.Create(ctx, o)
}

// Update 更新机会
func (s *OpportunityService) Update(ctx context.Context, o *model.Opportunity) error {
	return s.repo.Update(ctx, o)
}

// Delete 删除机会
func (s *OpportunityService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
