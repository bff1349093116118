package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const eventColumns = `id, slug, title, description_md, start_at, end_at, venue, category, cover_url,
	rsvp_open, rsvp_link, created_at, updated_at`

// EventFilter 活动列表过滤条件，EndsAfter 非零时只返回该时间之后结束的活动
type EventFilter struct {
	Category  string
	EndsAfter time.Time
	Limit     int
}

// EventRepository 活动存储库接口
type EventRepository interface {
	List(ctx context.Context, filter EventFilter) ([]model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	Create(ctx context.Context, e *model.Event) error
	Update(ctx context.Context, e *model.Event) error
	Delete(ctx context.Context, id int64) error
}

type eventRepository struct {
	db *sqlx.DB
}

// NewEventRepository 创建活动存储库实例
func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

// List 获取活动列表，按开始时间升序
func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]model.Event, error) {
	var conds []string
	var args []interface{}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if !filter.EndsAfter.IsZero() {
		conds = append(conds, "end_at >= ?")
		args = append(args, filter.EndsAfter)
	}

	query := "SELECT " + eventColumns + " FROM events" + whereClause(conds) + " ORDER BY start_at ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var rows []model.EventRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, wrapErr("查询活动列表", err)
	}

	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, model.ToEvent(row))
	}
	return events, nil
}

// GetByID 根据ID获取活动
func (r *eventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	return r.get(ctx, "SELECT "+eventColumns+" FROM events WHERE id = ?", id)
}

// GetBySlug 根据slug获取活动
func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return r.get(ctx, "SELECT "+eventColumns+" FROM events WHERE slug = ?", slug)
}

func (r *eventRepository) get(ctx context.Context, query string, arg interface{}) (*model.Event, error) {
	var row model.EventRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), arg); err != nil {
		return nil, wrapErr("查询活动", err)
	}
	e := model.ToEvent(row)
	return &e, nil
}

// Create 创建活动
func (r *eventRepository) Create(ctx context.Context, e *model.Event) error {
	row := model.ToEventRow(*e)
	query := `INSERT INTO events (slug, title, description_md, start_at, end_at, venue, category, cover_url, rsvp_open, rsvp_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query,
		row.Slug, row.Title, row.DescriptionMD, row.StartAt, row.EndAt,
		row.Venue, row.Category, row.CoverURL, row.RSVPOpen, row.RSVPLink)
	if err != nil {
		return wrapErr("创建活动", err)
	}
	e.ID = id
	e.RSVPLink = row.RSVPLink
	return nil
}

// Update 更新活动
func (r *eventRepository) Update(ctx context.Context, e *model.Event) error {
	row := model.ToEventRow(*e)
	query := `UPDATE events SET slug = ?, title = ?, description_md = ?, start_at = ?, end_at = ?, venue = ?,
		category = ?, cover_url = ?, rsvp_open = ?, rsvp_link = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	err := execAffectingOne(ctx, r.db, query,
		row.Slug, row.Title, row.DescriptionMD, row.StartAt, row.EndAt, row.Venue,
		row.Category, row.CoverURL, row.RSVPOpen, row.RSVPLink, row.ID)
	return wrapErr("更新活动", err)
}

// Delete 删除活动
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	return wrapErr("删除活动", execAffectingOne(ctx, r.db, "DELETE FROM events WHERE id = ?", id))
}
