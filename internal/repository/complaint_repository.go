package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const complaintColumns = `id, reference, category, subject, details, contact_email, status, timeline,
	created_at, updated_at`

// ComplaintRepository 投诉存储库接口
type ComplaintRepository interface {
	List(ctx context.Context, status model.ComplaintStatus) ([]model.Complaint, error)
	GetByID(ctx context.Context, id int64) (*model.Complaint, error)
	GetByReference(ctx context.Context, reference string) (*model.Complaint, error)
	Create(ctx context.Context, c *model.Complaint) error
	Transition(ctx context.Context, id int64, from, to model.ComplaintStatus, timeline model.Timeline) error
	Delete(ctx context.Context, id int64) error
}

type complaintRepository struct {
	db *sqlx.DB
}

// NewComplaintRepository 创建投诉存储库实例
func NewComplaintRepository(db *sqlx.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// List 获取投诉列表，status 为空时返回全部，最新提交的在前
func (r *complaintRepository) List(ctx context.Context, status model.ComplaintStatus) ([]model.Complaint, error) {
	query := "SELECT " + complaintColumns + " FROM complaints"
	var args []interface{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC, id DESC"

	var rows []model.ComplaintRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, wrapErr("查询投诉列表", err)
	}

	complaints := make([]model.Complaint, 0, len(rows))
	for _, row := range rows {
		complaints = append(complaints, model.ToComplaint(row))
	}
	return complaints, nil
}

// GetByID 根据ID获取投诉
func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	return r.get(ctx, "SELECT "+complaintColumns+" FROM complaints WHERE id = ?", id)
}

// GetByReference 根据受理编号获取投诉
func (r *complaintRepository) GetByReference(ctx context.Context, reference string) (*model.Complaint, error) {
	return r.get(ctx, "SELECT "+complaintColumns+" FROM complaints WHERE reference = ?", reference)
}

func (r *complaintRepository) get(ctx context.Context, query string, arg interface{}) (*model.Complaint, error) {
	var row model.ComplaintRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), arg); err != nil {
		return nil, wrapErr("查询投诉", err)
	}
	c := model.ToComplaint(row)
	return &c, nil
}

// Create 保存新投诉，受理编号与首条记录由调用方生成
func (r *complaintRepository) Create(ctx context.Context, c *model.Complaint) error {
	row := model.ToComplaintRow(*c)
	query := `INSERT INTO complaints (reference, category, subject, details, contact_email, status, timeline)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query,
		row.Reference, row.Category, row.Subject, row.Details, row.ContactEmail, row.Status, row.Timeline)
	if err != nil {
		return wrapErr("创建投诉", err)
	}
	c.ID = id
	return nil
}

// Transition 仅当当前状态仍为 from 时写入新状态与处理记录，否则返回 ErrStale
func (r *complaintRepository) Transition(ctx context.Context, id int64, from, to model.ComplaintStatus, timeline model.Timeline) error {
	query := `UPDATE complaints SET status = ?, timeline = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = ?`
	err := execAffectingOne(ctx, r.db, query, to, timeline, id, from)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("更新投诉状态: %w", ErrStale)
	}
	return wrapErr("更新投诉状态", err)
}

// Delete 删除投诉
func (r *complaintRepository) Delete(ctx context.Context, id int64) error {
	return wrapErr("删除投诉", execAffectingOne(ctx, r.db, "DELETE FROM complaints WHERE id = ?", id))
}
