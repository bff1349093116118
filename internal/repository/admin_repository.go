package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const adminColumns = `id, email, password_hash, full_name, faculty, created_at, updated_at`

// AdminRepository 管理员账号存储库接口，仅本地认证模式使用
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type adminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository 创建管理员存储库实例
func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

// GetByEmail 根据邮箱获取管理员
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	query := "SELECT " + adminColumns + " FROM admins WHERE email = ?"
	if err := r.db.GetContext(ctx, &admin, r.db.Rebind(query), email); err != nil {
		return nil, wrapErr("查询管理员", err)
	}
	return &admin, nil
}

// Create 创建管理员
func (r *adminRepository) Create(ctx context.Context, a *model.Admin) error {
	query := `INSERT INTO admins (email, password_hash, full_name, faculty) VALUES (?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query, a.Email, a.PasswordHash, a.FullName, a.Faculty)
	if err != nil {
		return wrapErr("创建管理员", err)
	}
	a.ID = id
	return nil
}

// UpdatePassword 更新密码哈希
func (r *adminRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE admins SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE email = ?`
	return wrapErr("更新管理员密码", execAffectingOne(ctx, r.db, query, passwordHash, email))
}
