package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"unionsite/config"
	"unionsite/pkg/logger"
)

// 启动阶段等待托管数据库可用的最长时间
const connectMaxElapsed = 2 * time.Minute

// DSN 根据驱动构建连接串
func DSN(cfg config.DatabaseConfig) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
}

// NewSQLConnection 连接托管数据库，失败时按指数退避重试
func NewSQLConnection(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = connectMaxElapsed

	err := backoff.RetryNotify(func() error {
		conn, err := sqlx.ConnectContext(ctx, cfg.Driver, DSN(cfg))
		if err != nil {
			return err
		}
		db = conn
		return nil
	}, backoff.WithContext(bo, ctx), func(err error, next time.Duration) {
		log.Warn("数据库连接失败，稍后重试", "driver", cfg.Driver, "retry_in", next, "error", err)
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 配置连接池
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
