package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 应用程序配置
type Config struct {
	APIPort   int
	LogLevel  string
	LogFile   LogFileConfig
	Site      SiteConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Email     EmailConfig
	Storage   StorageConfig
	ImageHost ImageHostConfig
	Auth      AuthConfig
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int // 单个文件最大大小，单位MB
	MaxBackups int
	MaxAge     int // 保留天数
	Compress   bool
}

// SiteConfig 站点信息
type SiteConfig struct {
	Name           string   // 学生会名称，用于页面标题和邮件
	URL            string   // 站点对外地址
	ExecutiveTiers []string // 干部页面的层级筛选项
	CORSOrigin     string
}

// DatabaseConfig 数据库配置，支持 mysql 和 postgres
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string
	Port     int
	Password string
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Host     string // SMTP服务器地址
	Port     int    // SMTP服务器端口
	Username string // 邮箱账号
	Password string // 邮箱密码
	From     string // 发件人
	FromName string // 发件人名称
}

// StorageConfig 对象存储配置
type StorageConfig struct {
	Backend    string // storage 或 imagehost
	URL        string
	Bucket     string
	ServiceKey string
}

// ImageHostConfig 图床函数端点配置
type ImageHostConfig struct {
	URL   string
	Token string
}

// AuthConfig 认证配置
type AuthConfig struct {
	Provider      string // remote 或 local
	URL           string // 托管认证服务地址
	AnonKey       string
	JWTSecret     string
	SessionSecret string
	AllowSignUp   bool // 本地认证是否开放自助注册
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	// 加载.env文件，文件不存在时直接使用环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{
		APIPort:  getInt("API_PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile: LogFileConfig{
			Enabled:    getBool("LOG_FILE_ENABLED", false),
			Path:       getEnv("LOG_FILE_PATH", "logs/server.log"),
			MaxSize:    getInt("LOG_FILE_MAX_SIZE", 100),
			MaxBackups: getInt("LOG_FILE_MAX_BACKUPS", 7),
			MaxAge:     getInt("LOG_FILE_MAX_AGE", 30),
			Compress:   getBool("LOG_FILE_COMPRESS", true),
		},
		Site: SiteConfig{
			Name:           getEnv("SITE_NAME", "学生会"),
			URL:            strings.TrimRight(getEnv("SITE_URL", "http://localhost:8080"), "/"),
			ExecutiveTiers: getList("EXECUTIVE_TIERS", []string{"Central", "Faculty", "Residence"}),
			CORSOrigin:     os.Getenv("CORS_ORIGIN"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "mysql"),
			Host:     os.Getenv("DB_HOST"),
			Port:     getInt("DB_PORT", 0),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Email: EmailConfig{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     getInt("EMAIL_PORT", 465),
			Username: os.Getenv("EMAIL_USERNAME"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			From:     os.Getenv("EMAIL_FROM"),
			FromName: os.Getenv("EMAIL_FROM_NAME"),
		},
		Storage: StorageConfig{
			Backend:    getEnv("ASSET_BACKEND", "storage"),
			URL:        strings.TrimRight(os.Getenv("STORAGE_URL"), "/"),
			Bucket:     getEnv("STORAGE_BUCKET", "public-assets"),
			ServiceKey: os.Getenv("STORAGE_SERVICE_KEY"),
		},
		ImageHost: ImageHostConfig{
			URL:   os.Getenv("IMAGEHOST_URL"),
			Token: os.Getenv("IMAGEHOST_TOKEN"),
		},
		Auth: AuthConfig{
			Provider:      getEnv("AUTH_PROVIDER", "remote"),
			URL:           strings.TrimRight(os.Getenv("AUTH_URL"), "/"),
			AnonKey:       os.Getenv("AUTH_ANON_KEY"),
			JWTSecret:     os.Getenv("JWT_SECRET"),
			SessionSecret: os.Getenv("SESSION_SECRET"),
			AllowSignUp:   getBool("AUTH_ALLOW_SIGNUP", false),
		},
	}

	// 按驱动补齐默认端口
	if cfg.Database.Port == 0 {
		switch cfg.Database.Driver {
		case "postgres":
			cfg.Database.Port = 5432
		default:
			cfg.Database.Port = 3306
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验关键配置
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Storage.Backend {
	case "storage", "imagehost":
	default:
		return fmt.Errorf("unsupported ASSET_BACKEND %q", c.Storage.Backend)
	}
	switch c.Auth.Provider {
	case "remote":
		if c.Auth.URL == "" {
			return errors.New("AUTH_URL is required for the remote auth provider")
		}
	case "local":
	default:
		return fmt.Errorf("unsupported AUTH_PROVIDER %q", c.Auth.Provider)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}

// getList 读取逗号分隔的列表，忽略空项
func getList(key string, def []string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
