package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const opportunityColumns = `id, title, organization, deadline, link, tags, created_at, updated_at`

// OpportunityRepository 机会存储库接口
type OpportunityRepository interface {
	List(ctx context.Context, tag string) ([]model.Opportunity, error)
	GetByID(ctx context.Context, id int64) (*model.Opportunity, error)
	Create(ctx context.Context, o *model.Opportunity) error
	Update(ctx context.Context, o *model.Opportunity) error
	Delete(ctx context.Context, id int64) error
}

type opportunityRepository struct {
	db *sqlx.DB
}

// NewOpportunityRepository 创建机会存储库实例
func NewOpportunityRepository(db *sqlx.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

// List 获取机会列表，截止时间近的在前，过期的也返回
func (r *opportunityRepository) List(ctx context.Context, tag string) ([]model.Opportunity, error) {
	query := "SELECT " + opportunityColumns + " FROM opportunities"
	var args []interface{}
	if tag != "" {
		query += " WHERE " + tagCondition(r.db)
		args = append(args, tag)
	}
	query += " ORDER BY deadline ASC"

	var rows []model.OpportunityRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, wrapErr("查询机会列表", err)
	}

	opportunities := make([]model.Opportunity, 0, len(rows))
	for _, row := range rows {
		opportunities = append(opportunities, model.ToOpportunity(row))
	}
	return opportunities, nil
}

// GetByID 根据ID获取机会
func (r *opportunityRepository) GetByID(ctx context.Context, id int64) (*model.Opportunity, error) {
	var row model.OpportunityRow
	query := "SELECT " + opportunityColumns + " FROM opportunities WHERE id = ?"
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), id); err != nil {
		return nil, wrapErr("查询机会", err)
	}
	o := model.ToOpportunity(row)
	return &o, nil
}

// Create 创建机会
func (r *opportunityRepository) Create(ctx context.Context, o *model.Opportunity) error {
	row := model.ToOpportunityRow(*o)
	query := `INSERT INTO opportunities (title, organization, deadline, link, tags) VALUES (?, ?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query, row.Title, row.Organization, row.Deadline, row.Link, row.Tags)
	if err != nil {
		return wrapErr("创建机会", err)
	}
	o.ID = id
	return nil
}

// Update 更新机会
func (r *opportunityRepository) Update(ctx context.Context, o *model.Opportunity) error {
	row := model.ToOpportunityRow(*o)
	query := `UPDATE opportunities SET title = ?, organization = ?, deadline = ?, link = ?, tags = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	err := execAffectingOne(ctx, r.db, query, row.Title, row.Organization, row.Deadline, row.Link, row.Tags, row.ID)
	return wrapErr("更新机会", err)
}

// Delete 删除机会
func (r *opportunityRepository) Delete(ctx context.Context, id int64) error {
	return wrapErr("删除机会", execAffectingOne(ctx, r.db, "DELETE FROM opportunities WHERE id = ?", id))
}
