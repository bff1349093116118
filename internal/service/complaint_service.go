package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

// ComplaintMailer 发送投诉回执
type ComplaintMailer interface {
	SendComplaintReceipt(to, topic, reference, status string) error
}

// ComplaintService 投诉服务
type ComplaintService struct {
	repo   repository.ComplaintRepository
	mailer ComplaintMailer
	worker TaskSubmitter
	logger *logger.Logger
	now    func() time.Time
}

// NewComplaintService 创建投诉服务实例
func NewComplaintService(repo repository.ComplaintRepository, mailer ComplaintMailer, worker TaskSubmitter, logger *logger.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, mailer: mailer, worker: worker, logger: logger, now: time.Now}
}

// Submit 受理新投诉，生成受理编号与第一条处理记录
func (s *ComplaintService) Submit(ctx context.Context, category, subject, details, contactEmail string) (*model.Complaint, error) {
	c := &model.Complaint{
		Reference:    uuid.NewString(),
		Category:     category,
		Subject:      subject,
		Details:      details,
		ContactEmail: strings.TrimSpace(contactEmail),
		Status:       model.ComplaintQueued,
		Timeline: model.Timeline{
			{Status: model.ComplaintQueued, Note: "已受理", At: s.now().UTC()},
		},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("保存投诉失败", "category", category, "error", err)
		return nil, err
	}

	s.notify(c)
	return c, nil
}

// GetByReference 按受理编号查询进度，不返回联系方式
func (s *ComplaintService) GetByReference(ctx context.Context, reference string) (*model.Complaint, error) {
	if _, err := uuid.Parse(reference); err != nil {
		return nil, fmt.Errorf("受理编号格式错误: %w", repository.ErrNotFound)
	}
	c, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	public := c.Public()
	return &public, nil
}

// List 管理员获取投诉列表
func (s *ComplaintService) List(ctx context.Context, status model.ComplaintStatus) ([]model.Complaint, error) {
	return s.repo.List(ctx, status)
}

// Get 根据ID获取投诉
func (s *ComplaintService) Get(ctx context.Context, id int64) (*model.Complaint, error) {
	return s.repo.GetByID(ctx, id)
}

// Transition 流转投诉状态并追加一条处理记录
func (s *ComplaintService) Transition(ctx context.Context, id int64, to model.ComplaintStatus, note string) (*model.Complaint, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, to)
	}

	timeline := c.Timeline.Append(model.TimelineEntry{Status: to, Note: note, At: s.now().UTC()})
	if err := s.repo.Transition(ctx, id, c.Status, to, timeline); err != nil {
		s.logger.Error("更新投诉状态失败", "id", id, "from", c.Status, "to", to, "error", err)
		return nil, err
	}

	s.logger.Info("投诉状态已更新", "reference", c.Reference, "from", c.Status, "to", to)
	c.Status = to
	c.Timeline = timeline
	s.notify(c)
	return c, nil
}

// Delete 删除投诉
func (s *ComplaintService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// notify 留有联系邮箱时异步发送当前状态
func (s *ComplaintService) notify(c *model.Complaint) {
	if c.ContactEmail == "" || s.mailer == nil || s.worker == nil {
		return
	}
	to, subject, reference, status := c.ContactEmail, c.Subject, c.Reference, string(c.Status)
	s.worker.Submit("complaint_receipt", func(ctx context.Context) error {
		return s.mailer.SendComplaintReceipt(to, subject, reference, status)
	})
}
