package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const announcementColumns = `id, title, message_md, type, is_active, created_at, updated_at`

// AnnouncementRepository 全站公告存储库接口
type AnnouncementRepository interface {
	List(ctx context.Context) ([]model.Announcement, error)
	GetByID(ctx context.Context, id int64) (*model.Announcement, error)
	Active(ctx context.Context) (*model.Announcement, error)
	Create(ctx context.Context, a *model.Announcement) error
	CreateActive(ctx context.Context, a *model.Announcement) error
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

type announcementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository 创建公告存储库实例
func NewAnnouncementRepository(db *sqlx.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// List 获取全部公告，最近更新的在前
func (r *announcementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	var rows []model.AnnouncementRow
	query := "SELECT " + announcementColumns + " FROM global_announcements ORDER BY updated_at DESC, id DESC"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, wrapErr("查询公告列表", err)
	}

	announcements := make([]model.Announcement, 0, len(rows))
	for _, row := range rows {
		announcements = append(announcements, model.ToAnnouncement(row))
	}
	return announcements, nil
}

// GetByID 根据ID获取公告
func (r *announcementRepository) GetByID(ctx context.Context, id int64) (*model.Announcement, error) {
	return r.get(ctx, "SELECT "+announcementColumns+" FROM global_announcements WHERE id = ?", id)
}

// Active 获取当前激活的公告，没有时返回 ErrNotFound
func (r *announcementRepository) Active(ctx context.Context) (*model.Announcement, error) {
	return r.get(ctx, "SELECT "+announcementColumns+
		" FROM global_announcements WHERE is_active = ? ORDER BY updated_at DESC LIMIT 1", true)
}

func (r *announcementRepository) get(ctx context.Context, query string, arg interface{}) (*model.Announcement, error) {
	var row model.AnnouncementRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), arg); err != nil {
		return nil, wrapErr("查询公告", err)
	}
	a := model.ToAnnouncement(row)
	return &a, nil
}

// Create 创建公告，新公告总是未激活，激活只能通过 Activate
func (r *announcementRepository) Create(ctx context.Context, a *model.Announcement) error {
	row := model.ToAnnouncementRow(*a)
	query := `INSERT INTO global_announcements (title, message_md, type, is_active) VALUES (?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query, row.Title, row.MessageMD, row.Type, false)
	if err != nil {
		return wrapErr("创建公告", err)
	}
	a.ID = id
	a.Type = row.Type
	a.IsActive = false
	return nil
}

// CreateActive 在一个事务中停用其他公告并插入一条激活的新公告，失败时不留下任何记录
func (r *announcementRepository) CreateActive(ctx context.Context, a *model.Announcement) error {
	row := model.ToAnnouncementRow(*a)
	var id int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			`UPDATE global_announcements SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE is_active = ?`),
			false, true); err != nil {
			return err
		}
		var err error
		id, err = insertReturningID(ctx, tx,
			`INSERT INTO global_announcements (title, message_md, type, is_active) VALUES (?, ?, ?, ?)`,
			row.Title, row.MessageMD, row.Type, true)
		return err
	})
	if err != nil {
		return wrapErr("创建激活公告", err)
	}
	a.ID = id
	a.Type = row.Type
	a.IsActive = true
	return nil
}

// Update 更新公告内容，不改变激活状态
func (r *announcementRepository) Update(ctx context.Context, a *model.Announcement) error {
	row := model.ToAnnouncementRow(*a)
	query := `UPDATE global_announcements SET title = ?, message_md = ?, type = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	err := execAffectingOne(ctx, r.db, query, row.Title, row.MessageMD, row.Type, row.ID)
	return wrapErr("更新公告", err)
}

// Delete 删除公告
func (r *announcementRepository) Delete(ctx context.Context, id int64) error {
	return wrapErr("删除公告", execAffectingOne(ctx, r.db, "DELETE FROM global_announcements WHERE id = ?", id))
}

// Activate 在一个事务中先停用其他公告再激活目标公告，保证任意时刻最多一条激活
func (r *announcementRepository) Activate(ctx context.Context, id int64) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			`UPDATE global_announcements SET is_active = ?, updated_at = CURRENT_TIMESTAMP
			WHERE is_active = ? AND id <> ?`), false, true, id); err != nil {
			return err
		}
		return execAffectingOne(ctx, tx,
			`UPDATE global_announcements SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, true, id)
	})
	return wrapErr("激活公告", err)
}

// Deactivate 停用公告
func (r *announcementRepository) Deactivate(ctx context.Context, id int64) error {
	err := execAffectingOne(ctx, r.db,
		`UPDATE global_announcements SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, false, id)
	return wrapErr("停用公告", err)
}
