package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"unionsite/config"
	"unionsite/internal/api/admin"
	"unionsite/internal/api/apis"
	"unionsite/internal/api/handler"
	"unionsite/internal/api/response"
	"unionsite/internal/auth"
	"unionsite/internal/constants"
	"unionsite/internal/middleware"
	"unionsite/internal/repository"
	"unionsite/internal/service"
	"unionsite/internal/web"
	"unionsite/pkg/async"
	"unionsite/pkg/email"
	"unionsite/pkg/imagehost"
	"unionsite/pkg/logger"
	"unionsite/pkg/markdown"
	"unionsite/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// 提交类接口的限流：每个IP每分钟
const (
	submitLimit  = 10
	submitWindow = time.Minute
)

// SetupRouter 设置页面与API路由。worker 由调用方启动和停止
func SetupRouter(cfg *config.Config, logger *logger.Logger, db *sqlx.DB, redisClient *redis.Client, worker *async.Worker, emailService *email.Service) (*gin.Engine, error) {
	// 创建Gin引擎
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 使用中间件
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.Site.CORSOrigin))
	router.MaxMultipartMemory = admin.MaxUploadSize

	// 页面模板
	renderer, err := web.New(markdown.NewRenderer(), web.Site{Name: cfg.Site.Name, URL: cfg.Site.URL})
	if err != nil {
		return nil, err
	}
	router.HTMLRender = renderer

	// 初始化存储库
	executiveRepo := repository.NewExecutiveRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	eventRepo := repository.NewEventRepository(db)
	spotlightRepo := repository.NewSpotlightRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// 初始化服务
	assetService := service.NewAssetService(newAssetStore(cfg), worker, logger)
	executiveService := service.NewExecutiveService(executiveRepo, assetService, logger)
	newsService := service.NewNewsService(newsRepo, assetService, logger)
	eventService := service.NewEventService(eventRepo, assetService, logger)
	spotlightService := service.NewSpotlightService(spotlightRepo, assetService, logger)
	announcementService := service.NewAnnouncementService(announcementRepo, redisClient, logger)
	documentService := service.NewDocumentService(documentRepo, assetService, logger)
	opportunityService := service.NewOpportunityService(opportunityRepo, logger)
	complaintService := service.NewComplaintService(complaintRepo, emailService, worker, logger)
	homeService := service.NewHomeService(announcementService, spotlightService, newsService, eventService)

	// 初始化认证
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	provider, err := newAuthProvider(cfg, adminRepo, redisClient, tokens, emailService, worker, logger)
	if err != nil {
		return nil, err
	}
	sessionSecret := cfg.Auth.SessionSecret
	if sessionSecret == "" {
		sessionSecret = cfg.Auth.JWTSecret
	}
	sessionStore := auth.NewSessionStore(sessionSecret, strings.HasPrefix(cfg.Site.URL, "https://"))

	// 初始化处理器
	handlers := apis.Handlers{
		Home:         handler.NewHomeHandler(homeService, logger),
		Executive:    handler.NewExecutiveHandler(executiveService, cfg.Site.ExecutiveTiers, logger),
		News:         handler.NewNewsHandler(newsService, logger),
		Event:        handler.NewEventHandler(eventService, logger),
		Spotlight:    handler.NewSpotlightHandler(spotlightService, logger),
		Announcement: handler.NewAnnouncementHandler(announcementService, logger),
		Services:     handler.NewServicesHandler(documentService, opportunityService, logger),
		Complaint:    handler.NewComplaintHandler(complaintService, logger),
		Auth:         handler.NewAuthHandler(provider, sessionStore, logger),
	}

	// 初始化管理员处理器
	adminHandlers := admin.Handlers{
		Executive:    admin.NewExecutiveAdminHandler(executiveService, logger),
		News:         admin.NewNewsAdminHandler(newsService, logger),
		Event:        admin.NewEventAdminHandler(eventService, logger),
		Spotlight:    admin.NewSpotlightAdminHandler(spotlightService, logger),
		Announcement: admin.NewAnnouncementAdminHandler(announcementService, logger),
		Document:     admin.NewDocumentAdminHandler(documentService, logger),
		Opportunity:  admin.NewOpportunityAdminHandler(opportunityService, logger),
		Complaint:    admin.NewComplaintAdminHandler(complaintService, logger),
		Upload:       admin.NewUploadHandler(assetService, logger),
	}

	limited := middleware.RateLimit(redisClient, "submit", submitLimit, submitWindow, logger)

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 公开页面
	apis.RegisterPageRoutes(router, handlers, limited)

	// API版本v1
	v1 := router.Group("/api/v1")
	apis.RegisterPublicRoutes(v1, handlers, limited)

	// 注册管理员API路由
	adminRouter := v1.Group("/admin")
	adminRouter.Use(middleware.AdminAuth(tokens, sessionStore))
	admin.RegisterAdminRoutes(adminRouter, adminHandlers)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Error(c, 404, constants.ErrNotFound)
			return
		}
		c.HTML(http.StatusNotFound, "not_found", web.Page{Title: "页面不存在"})
	})

	return router, nil
}

// newAssetStore 按 ASSET_BACKEND 选择对象存储或图床
func newAssetStore(cfg *config.Config) service.AssetStore {
	if cfg.Storage.Backend == "imagehost" {
		return imagehost.NewClient(cfg.ImageHost.URL, cfg.ImageHost.Token)
	}
	return storage.NewClient(cfg.Storage.URL, cfg.Storage.Bucket, cfg.Storage.ServiceKey)
}

// newAuthProvider 按 AUTH_PROVIDER 选择托管认证或本地管理员表
func newAuthProvider(
	cfg *config.Config,
	admins repository.AdminRepository,
	redisClient *redis.Client,
	tokens *auth.TokenManager,
	emailService *email.Service,
	worker *async.Worker,
	logger *logger.Logger,
) (auth.Provider, error) {
	switch cfg.Auth.Provider {
	case "remote":
		return auth.NewRemoteProvider(cfg.Auth.URL, cfg.Auth.AnonKey, cfg.Site.URL+"/admin", tokens), nil
	case "local":
		return auth.NewLocalProvider(admins, redisClient, tokens, emailService, worker, logger, cfg.Auth.AllowSignUp), nil
	default:
		return nil, fmt.Errorf("unsupported auth provider %q", cfg.Auth.Provider)
	}
}
