package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const newsColumns = `id, slug, title, excerpt, body_md, tags, cover_url, is_published, published_at,
	created_at, updated_at`

// NewsFilter 新闻列表过滤条件
type NewsFilter struct {
	Tag           string
	Limit         int
	IncludeDrafts bool
}

// NewsRepository 新闻存储库接口
type NewsRepository interface {
	List(ctx context.Context, filter NewsFilter) ([]model.News, error)
	GetByID(ctx context.Context, id int64) (*model.News, error)
	GetBySlug(ctx context.Context, slug string) (*model.News, error)
	Create(ctx context.Context, n *model.News) error
	Update(ctx context.Context, n *model.News) error
	Delete(ctx context.Context, id int64) error
}

type newsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository 创建新闻存储库实例
func NewNewsRepository(db *sqlx.DB) NewsRepository {
	return &newsRepository{db: db}
}

// List 获取新闻列表，公开读取只返回已发布的，按发布时间倒序
func (r *newsRepository) List(ctx context.Context, filter NewsFilter) ([]model.News, error) {
	var conds []string
	var args []interface{}
	if !filter.IncludeDrafts {
		conds = append(conds, "is_published = ?")
		args = append(args, true)
	}
	if filter.Tag != "" {
		conds = append(conds, tagCondition(r.db))
		args = append(args, filter.Tag)
	}

	query := "SELECT " + newsColumns + " FROM news" + whereClause(conds) +
		" ORDER BY published_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var rows []model.NewsRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, wrapErr("查询新闻列表", err)
	}

	news := make([]model.News, 0, len(rows))
	for _, row := range rows {
		news = append(news, model.ToNews(row))
	}
	return news, nil
}

// GetByID 根据ID获取新闻，包括草稿
func (r *newsRepository) GetByID(ctx context.Context, id int64) (*model.News, error) {
	return r.get(ctx, "查询新闻", "SELECT "+newsColumns+" FROM news WHERE id = ?", id)
}

// GetBySlug 根据slug获取已发布的新闻
func (r *newsRepository) GetBySlug(ctx context.Context, slug string) (*model.News, error) {
	return r.get(ctx, "查询新闻", "SELECT "+newsColumns+" FROM news WHERE slug = ? AND is_published = ?", slug, true)
}

func (r *newsRepository) get(ctx context.Context, op, query string, args ...interface{}) (*model.News, error) {
	var row model.NewsRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		return nil, wrapErr(op, err)
	}
	n := model.ToNews(row)
	return &n, nil
}

// Create 创建新闻
func (r *newsRepository) Create(ctx context.Context, n *model.News) error {
	row := model.ToNewsRow(*n, timeNow())
	query := `INSERT INTO news (slug, title, excerpt, body_md, tags, cover_url, is_published, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query,
		row.Slug, row.Title, row.Excerpt, row.BodyMD, row.Tags, row.CoverURL, row.IsPublished, row.PublishedAt)
	if err != nil {
		return wrapErr("创建新闻", err)
	}
	n.ID = id
	n.PublishedAt = nil
	if row.PublishedAt.Valid {
		t := row.PublishedAt.Time
		n.PublishedAt = &t
	}
	return nil
}

// Update 更新新闻
func (r *newsRepository) Update(ctx context.Context, n *model.News) error {
	row := model.ToNewsRow(*n, timeNow())
	query := `UPDATE news SET slug = ?, title = ?, excerpt = ?, body_md = ?, tags = ?, cover_url = ?,
		is_published = ?, published_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	err := execAffectingOne(ctx, r.db, query,
		row.Slug, row.Title, row.Excerpt, row.BodyMD, row.Tags, row.CoverURL,
		row.IsPublished, row.PublishedAt, row.ID)
	return wrapErr("更新新闻", err)
}

// Delete 删除新闻
func (r *newsRepository) Delete(ctx context.Context, id int64) error {
	return wrapErr("删除新闻", execAffectingOne(ctx, r.db, "DELETE FROM news WHERE id = ?", id))
}
