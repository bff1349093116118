package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"unionsite/config"
	"unionsite/internal/api"
	"unionsite/internal/auth"
	"unionsite/internal/repository"
	"unionsite/pkg/async"
	"unionsite/pkg/database"
	"unionsite/pkg/email"
	"unionsite/pkg/logger"
)

// 启动阶段连接数据库与Redis的总超时
const connectTimeout = 2 * time.Minute

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "学生会网站服务",
	Long:         "运行学生会网站：公开页面、JSON接口与管理后台。",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "按 DB_DRIVER 执行内置的建表语句",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin <email> <password>",
	Short: "直接在数据库中创建管理员账号，用于关闭注册时开设首个账号",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		faculty, _ := cmd.Flags().GetString("faculty")
		return runCreateAdmin(cmd.Context(), args[0], args[1], auth.Profile{FullName: name, Faculty: faculty})
	},
}

func init() {
	createAdminCmd.Flags().String("name", "", "管理员姓名")
	createAdminCmd.Flags().String("faculty", "", "所属学院")
	rootCmd.AddCommand(migrateCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer() error {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 初始化日志
	logger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	// 初始化数据库连接
	db, err := database.NewSQLConnection(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("无法链接到数据库", "error", err)
	}
	defer db.Close()

	// 初始化Redis连接
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("无法链接到Redis", "error", err)
	}
	defer redisClient.Close()

	// 创建异步工作器，负责发信和清理旧文件
	worker := async.NewWorker(100, logger)
	worker.Start(5)
	defer worker.Stop()

	// 初始化邮件服务
	emailService := email.NewService(email.Config{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
	}, logger)

	// 初始化路由
	router, err := api.SetupRouter(cfg, logger, db, redisClient, worker, emailService)
	if err != nil {
		logger.Fatal("初始化路由失败", "error", err)
	}

	// 创建HTTP服务器，请求上下文派生自 baseCtx
	baseCtx, stopStreams := context.WithCancel(context.Background())
	defer stopStreams()
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	// 启动服务器（非阻塞）
	go func() {
		logger.Info("服务器启动", "port", cfg.APIPort, "site", cfg.Site.URL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("启动服务器失败", "error", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// 先结束轮播等长连接，否则 Shutdown 会一直等待
	stopStreams()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器被强制关闭", "error", err)
		return err
	}

	logger.Info("服务器已正常退出")
	return nil
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	logger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := database.NewSQLConnection(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("无法链接到数据库: %w", err)
	}
	defer db.Close()

	n, err := database.Migrate(ctx, db)
	if err != nil {
		logger.Error("建表失败", "applied", n, "error", err)
		return err
	}
	logger.Info("建表完成", "driver", cfg.Database.Driver, "statements", n)
	return nil
}

func runCreateAdmin(ctx context.Context, email, password string, profile auth.Profile) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	logger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := database.NewSQLConnection(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("无法链接到数据库: %w", err)
	}
	defer db.Close()

	user, err := auth.CreateAdmin(ctx, repository.NewAdminRepository(db), email, password, profile)
	if err != nil {
		logger.Error("创建管理员失败", "email", email, "error", err)
		return err
	}
	logger.Info("管理员已创建", "id", user.ID, "email", user.Email)
	return nil
}
