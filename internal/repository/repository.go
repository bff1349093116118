// Package repository 托管数据库的访问层，每个实体一个存储库，返回展示结构。
// 每次调用都是一次独立的数据库往返，不做缓存也不做重试。
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrRemote 数据服务请求失败，调用方只区分成功与失败
	ErrRemote = errors.New("数据服务请求失败")
	// ErrStale 记录在读取后已被修改
	ErrStale = errors.New("记录已被修改")
)

// timeNow 测试中可替换
var timeNow = time.Now

// wrapErr 把底层错误归类为 ErrNotFound 或 ErrRemote
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrRemote, err)
}

// isPostgres 当前连接是否为 Postgres
func isPostgres(db sqlx.ExtContext) bool {
	return db.DriverName() == "postgres"
}

// insertReturningID 执行 INSERT 并返回自增ID，Postgres 使用 RETURNING，MySQL 使用 LastInsertId
func insertReturningID(ctx context.Context, db sqlx.ExtContext, query string, args ...interface{}) (int64, error) {
	if isPostgres(db) {
		var id int64
		err := db.QueryRowxContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// execAffectingOne 执行 UPDATE/DELETE，未命中任何行时返回 sql.ErrNoRows
func execAffectingOne(ctx context.Context, db sqlx.ExtContext, query string, args ...interface{}) error {
	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// tagCondition JSON 标签数组包含指定标签的条件，占位符为一个 ?
func tagCondition(db sqlx.ExtContext) string {
	if isPostgres(db) {
		return "tags @> jsonb_build_array(CAST(? AS TEXT))"
	}
	return "JSON_CONTAINS(tags, JSON_QUOTE(?))"
}

// whereClause 用 AND 拼接条件
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// withTx 在事务中执行 fn，fn 返回错误时回滚
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
