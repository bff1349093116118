package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Statements 返回指定驱动的建表语句
func Statements(driver string) ([]string, error) {
	raw, err := schemaFS.ReadFile("schema/" + driver + ".sql")
	if err != nil {
		return nil, fmt.Errorf("no schema for driver %q: %w", driver, err)
	}

	var stmts []string
	for _, stmt := range strings.Split(string(raw), ";\n") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// Migrate 依次执行建表语句，语句均为幂等的 IF NOT EXISTS 形式
func Migrate(ctx context.Context, db *sqlx.DB) (int, error) {
	stmts, err := Statements(db.DriverName())
	if err != nil {
		return 0, err
	}
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return i, fmt.Errorf("执行第%d条建表语句失败: %w", i+1, err)
		}
	}
	return len(stmts), nil
}
