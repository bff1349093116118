package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"k8s.io/apimachinery/pkg/util/rand"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

const (
	// 重置验证码有效期
	resetCodeTTL = 15 * time.Minute
	// 同一邮箱两次申请验证码的最小间隔
	resetRequestInterval = time.Minute
	// 验证码允许输错的次数，用完后验证码作废
	maxResetAttempts = 5
)

// Mailer 发送认证相关邮件
type Mailer interface {
	SendPasswordResetCode(to, userName, code string, expireMinutes int) error
	SendWelcomeEmail(to, userName string) error
}

// TaskSubmitter 异步任务队列
type TaskSubmitter interface {
	Submit(name string, handler func(ctx context.Context) error) bool
}

// LocalProvider 使用 admins 表的本地认证
type LocalProvider struct {
	admins      repository.AdminRepository
	redisClient *redis.Client
	tokens      *TokenManager
	mailer      Mailer
	worker      TaskSubmitter
	logger      *logger.Logger
	allowSignUp bool
}

// NewLocalProvider 创建本地认证。allowSignUp 为 false 时只能由已有管理员或命令行创建账号
func NewLocalProvider(
	admins repository.AdminRepository,
	redisClient *redis.Client,
	tokens *TokenManager,
	mailer Mailer,
	worker TaskSubmitter,
	logger *logger.Logger,
	allowSignUp bool,
) *LocalProvider {
	return &LocalProvider{
		admins:      admins,
		redisClient: redisClient,
		tokens:      tokens,
		mailer:      mailer,
		worker:      worker,
		logger:      logger,
		allowSignUp: allowSignUp,
	}
}

func adminUser(a *model.Admin) User {
	return User{
		ID:       strconv.FormatInt(a.ID, 10),
		Email:    a.Email,
		FullName: a.FullName,
		Faculty:  a.Faculty,
		Role:     RoleAuthenticated,
	}
}

// SignIn 校验密码并签发令牌
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	admin, err := p.admins.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user := adminUser(admin)
	token, expiresAt, err := p.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

// SignUp 创建管理员账号并异步发送欢迎邮件，未开放注册时返回 ErrSignUpDisabled
func (p *LocalProvider) SignUp(ctx context.Context, email, password string, profile Profile) (*User, error) {
	if !p.allowSignUp {
		p.logger.Warn("拒绝注册请求，未开放注册", "email", email)
		return nil, ErrSignUpDisabled
	}

	user, err := CreateAdmin(ctx, p.admins, email, password, profile)
	if err != nil {
		return nil, err
	}

	p.worker.Submit("welcome_email", func(ctx context.Context) error {
		return p.mailer.SendWelcomeEmail(user.Email, user.FullName)
	})
	return user, nil
}

// CreateAdmin 写入一个管理员账号，密码以 bcrypt 保存。命令行创建首个管理员时也使用它
func CreateAdmin(ctx context.Context, admins repository.AdminRepository, email, password string, profile Profile) (*User, error) {
	if _, err := admins.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     profile.FullName,
		Faculty:      profile.Faculty,
	}
	if err := admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	user := adminUser(admin)
	return &user, nil
}

func resetCodeKey(email string) string { return "reset_password:code:" + email }
func resetLockKey(email string) string { return "reset_password:lock:" + email }
func resetAttemptsKey(email string) string { return "reset_password:attempts:" + email }

// RequestPasswordReset 生成6位验证码存入redis并异步发送邮件。
// 邮箱未注册时同样返回成功，不暴露账号是否存在。
func (p *LocalProvider) RequestPasswordReset(ctx context.Context, email string) error {
	ok, err := p.redisClient.SetNX(ctx, resetLockKey(email), "1", resetRequestInterval).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	if !ok {
		return ErrTooFrequent
	}

	admin, err := p.admins.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		p.logger.Info("找回密码的邮箱未注册", "email", email)
		return nil
	}
	if err != nil {
		return err
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	_, err = p.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resetCodeKey(email), code, resetCodeTTL)
		pipe.Del(ctx, resetAttemptsKey(email))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	minutes := int(resetCodeTTL / time.Minute)
	p.worker.Submit("reset_password_email", func(ctx context.Context) error {
		return p.mailer.SendPasswordResetCode(admin.Email, admin.FullName, code, minutes)
	})
	return nil
}

// ConfirmPasswordReset 校验验证码后更新密码。验证码只能使用一次，输错 maxResetAttempts 次后作废
func (p *LocalProvider) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	stored, err := p.redisClient.Get(ctx, resetCodeKey(email)).Result()
	if err == redis.Nil {
		return ErrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	if stored != code {
		return p.failResetAttempt(ctx, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := p.admins.UpdatePassword(ctx, email, string(hash)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCode
		}
		return err
	}

	p.redisClient.Del(ctx, resetCodeKey(email), resetAttemptsKey(email))
	return nil
}

// failResetAttempt 记录一次输错，次数用完时删除验证码
func (p *LocalProvider) failResetAttempt(ctx context.Context, email string) error {
	var incr *redis.IntCmd
	_, err := p.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, resetAttemptsKey(email))
		pipe.Expire(ctx, resetAttemptsKey(email), resetCodeTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	if incr.Val() >= maxResetAttempts {
		p.logger.Warn("验证码输错次数过多，已作废", "email", email)
		p.redisClient.Del(ctx, resetCodeKey(email), resetAttemptsKey(email))
	}
	return ErrInvalidCode
}
