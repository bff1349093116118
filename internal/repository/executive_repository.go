package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const executiveColumns = `id, slug, name, role, faculty, tier, tenure_start, tenure_end, contacts,
	photo_url, display_order, created_at, updated_at`

// ExecutiveFilter 干部列表过滤条件，零值表示不过滤
type ExecutiveFilter struct {
	Tier string
}

// ExecutiveRepository 干部存储库接口
type ExecutiveRepository interface {
	List(ctx context.Context, filter ExecutiveFilter) ([]model.Executive, error)
	GetByID(ctx context.Context, id int64) (*model.Executive, error)
	Create(ctx context.Context, e *model.Executive) error
	Update(ctx context.Context, e *model.Executive) error
	Delete(ctx context.Context, id int64) error
}

type executiveRepository struct {
	db *sqlx.DB
}

// NewExecutiveRepository 创建干部存储库实例
func NewExecutiveRepository(db *sqlx.DB) ExecutiveRepository {
	return &executiveRepository{db: db}
}

// List 按届别过滤，display_order 升序，同序按姓名
func (r *executiveRepository) List(ctx context.Context, filter ExecutiveFilter) ([]model.Executive, error) {
	var conds []string
	var args []interface{}
	if filter.Tier != "" {
		conds = append(conds, "tier = ?")
		args = append(args, filter.Tier)
	}

	query := "SELECT " + executiveColumns + " FROM executives" + whereClause(conds) +
		" ORDER BY display_order ASC, name ASC"

	var rows []model.ExecutiveRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, wrapErr("查询干部列表", err)
	}

	executives := make([]model.Executive, 0, len(rows))
	for _, row := range rows {
		executives = append(executives, model.ToExecutive(row))
	}
	return executives, nil
}

// GetByID 根据ID获取干部
func (r *executiveRepository) GetByID(ctx context.Context, id int64) (*model.Executive, error) {
	var row model.ExecutiveRow
	query := "SELECT " + executiveColumns + " FROM executives WHERE id = ?"
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), id); err != nil {
		return nil, wrapErr("查询干部", err)
	}
	e := model.ToExecutive(row)
	return &e, nil
}

// Create 创建干部
func (r *executiveRepository) Create(ctx context.Context, e *model.Executive) error {
	row := model.ToExecutiveRow(*e)
	query := `INSERT INTO executives (slug, name, role, faculty, tier, tenure_start, tenure_end, contacts, photo_url, display_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query,
		row.Slug, row.Name, row.Role, row.Faculty, row.Tier,
		row.TenureStart, row.TenureEnd, row.Contacts, row.PhotoURL, row.DisplayOrder)
	if err != nil {
		return wrapErr("创建干部", err)
	}
	e.ID = id
	return nil
}

// Update 更新干部，后写覆盖先写
func (r *executiveRepository) Update(ctx context.Context, e *model.Executive) error {
	row := model.ToExecutiveRow(*e)
	query := `UPDATE executives SET slug = ?, name = ?, role = ?, faculty = ?, tier = ?, tenure_start = ?,
		tenure_end = ?, contacts = ?, photo_url = ?, display_order = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	err := execAffectingOne(ctx, r.db, query,
		row.Slug, row.Name, row.Role, row.Faculty, row.Tier, row.TenureStart,
		row.TenureEnd, row.Contacts, row.PhotoURL, row.DisplayOrder, row.ID)
	return wrapErr("更新干部", err)
}

// Delete 删除干部
func (r *executiveRepository) Delete(ctx context.Context, id int64) error {
	return wrapErr("删除干部", execAffectingOne(ctx, r.db, "DELETE FROM executives WHERE id = ?", id))
}
