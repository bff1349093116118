// Package auth 管理员登录、注册与找回密码。
//
// 两种实现：remote 把请求原样转发给托管认证服务，local 使用 admins 表与 bcrypt。
// 两者签发或接受的都是同一密钥签名的 HS256 令牌，中间件只需本地校验。
package auth

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	// ErrUnsupported 当前认证方式不支持该操作
	ErrUnsupported = errors.New("当前认证方式不支持该操作")
	// ErrEmailTaken 邮箱已注册
	ErrEmailTaken = errors.New("邮箱已注册")
	// ErrInvalidCode 验证码错误或已过期
	ErrInvalidCode = errors.New("验证码错误或已过期")
	// ErrTooFrequent 请求过于频繁
	ErrTooFrequent = errors.New("请求过于频繁")
	// ErrSignUpDisabled 未开放注册
	ErrSignUpDisabled = errors.New("未开放注册")
	// ErrRemote 认证服务请求失败
	ErrRemote = errors.New("认证服务请求失败")
)

// RoleAuthenticated 已登录用户的角色，拥有管理权限
const RoleAuthenticated = "authenticated"

// Profile 注册时填写的资料
type Profile struct {
	FullName string `json:"full_name,omitempty"`
	Faculty  string `json:"faculty,omitempty"`
}

// User 登录用户
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Faculty  string `json:"faculty"`
	Role     string `json:"role"`
}

// Session 登录成功后的会话
type Session struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        User      `json:"user"`
}

// Provider 认证提供者
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string, profile Profile) (*User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
}
