package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const spotlightColumns = `id, title, caption, image_url, link_url, display_order, is_active, created_at, updated_at`

// SpotlightRepository 首页轮播存储库接口
type SpotlightRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Spotlight, error)
	GetByID(ctx context.Context, id int64) (*model.Spotlight, error)
	Create(ctx context.Context, s *model.Spotlight) error
	Update(ctx context.Context, s *model.Spotlight) error
	Delete(ctx context.Context, id int64) error
}

type spotlightRepository struct {
	db *sqlx.DB
}

// NewSpotlightRepository 创建轮播存储库实例
func NewSpotlightRepository(db *sqlx.DB) SpotlightRepository {
	return &spotlightRepository{db: db}
}

// List 获取轮播卡片，display_order 升序
func (r *spotlightRepository) List(ctx context.Context, activeOnly bool) ([]model.Spotlight, error) {
	query := "SELECT " + spotlightColumns + " FROM spotlights"
	var args []interface{}
	if activeOnly {
		query += " WHERE is_active = ?"
		args = append(args, true)
	}
	query += " ORDER BY display_order ASC, id ASC"

	var rows []model.SpotlightRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, wrapErr("查询轮播列表", err)
	}

	spotlights := make([]model.Spotlight, 0, len(rows))
	for _, row := range rows {
		spotlights = append(spotlights, model.ToSpotlight(row))
	}
	return spotlights, nil
}

// GetByID 根据ID获取轮播卡片
func (r *spotlightRepository) GetByID(ctx context.Context, id int64) (*model.Spotlight, error) {
	var row model.SpotlightRow
	query := "SELECT " + spotlightColumns + " FROM spotlights WHERE id = ?"
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), id); err != nil {
		return nil, wrapErr("查询轮播", err)
	}
	s := model.ToSpotlight(row)
	return &s, nil
}

// Create 创建轮播卡片
func (r *spotlightRepository) Create(ctx context.Context, s *model.Spotlight) error {
	row := model.ToSpotlightRow(*s)
	query := `INSERT INTO spotlights (title, caption, image_url, link_url, display_order, is_active)
		VALUES (?, ?, ?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query,
		row.Title, row.Caption, row.ImageURL, row.LinkURL, row.DisplayOrder, row.IsActive)
	if err != nil {
		return wrapErr("创建轮播", err)
	}
	s.ID = id
	return nil
}

// Update 更新轮播卡片
func (r *spotlightRepository) Update(ctx context.Context, s *model.Spotlight) error {
	row := model.ToSpotlightRow(*s)
	query := `UPDATE spotlights SET title = ?, caption = ?, image_url = ?, link_url = ?, display_order = ?,
		is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	err := execAffectingOne(ctx, r.db, query,
		row.Title, row.Caption, row.ImageURL, row.LinkURL, row.DisplayOrder, row.IsActive, row.ID)
	return wrapErr("更新轮播", err)
}

// Delete 删除轮播卡片
func (r *spotlightRepository) Delete(ctx context.Context, id int64) error {
	return wrapErr("删除轮播", execAffectingOne(ctx, r.db, "DELETE FROM spotlights WHERE id = ?", id))
}
