package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"unionsite/internal/model"
)

const documentColumns = `id, title, url, tags, file_type, file_size, created_at, updated_at`

// DocumentRepository 公开文件存储库接口
type DocumentRepository interface {
	List(ctx context.Context, tag string) ([]model.Document, error)
	GetByID(ctx context.Context, id int64) (*model.Document, error)
	Create(ctx context.Context, d *model.Document) error
	Update(ctx context.Context, d *model.Document) error
	Delete(ctx context.Context, id int64) error
}

type documentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository 创建文件存储库实例
func NewDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// List 获取文件列表，按标题排序
func (r *documentRepository) List(ctx context.Context, tag string) ([]model.Document, error) {
	query := "SELECT " + documentColumns + " FROM documents"
	var args []interface{}
	if tag != "" {
		query += " WHERE " + tagCondition(r.db)
		args = append(args, tag)
	}
	query += " ORDER BY title ASC"

	var rows []model.DocumentRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, wrapErr("查询文件列表", err)
	}

	documents := make([]model.Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, model.ToDocument(row))
	}
	return documents, nil
}

// GetByID 根据ID获取文件
func (r *documentRepository) GetByID(ctx context.Context, id int64) (*model.Document, error) {
	var row model.DocumentRow
	query := "SELECT " + documentColumns + " FROM documents WHERE id = ?"
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), id); err != nil {
		return nil, wrapErr("查询文件", err)
	}
	d := model.ToDocument(row)
	return &d, nil
}

// Create 创建文件记录
func (r *documentRepository) Create(ctx context.Context, d *model.Document) error {
	row := model.ToDocumentRow(*d)
	query := `INSERT INTO documents (title, url, tags, file_type, file_size) VALUES (?, ?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query, row.Title, row.URL, row.Tags, row.FileType, row.FileSize)
	if err != nil {
		return wrapErr("创建文件", err)
	}
	d.ID = id
	d.FileType = row.FileType
	return nil
}

// Update 更新文件记录
func (r *documentRepository) Update(ctx context.Context, d *model.Document) error {
	row := model.ToDocumentRow(*d)
	query := `UPDATE documents SET title = ?, url = ?, tags = ?, file_type = ?, file_size = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	err := execAffectingOne(ctx, r.db, query, row.Title, row.URL, row.Tags, row.FileType, row.FileSize, row.ID)
	return wrapErr("更新文件", err)
}

// Delete 删除文件记录
func (r *documentRepository) Delete(ctx context.Context, id int64) error {
	return wrapErr("删除文件", execAffectingOne(ctx, r.db, "DELETE FROM documents WHERE id = ?", id))
}
