package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteProvider 托管认证服务客户端
type RemoteProvider struct {
	baseURL     string
	anonKey     string
	redirectURL string
	tokens      *TokenManager
	httpClient  *http.Client
}

// NewRemoteProvider 创建托管认证客户端，redirectURL 为重置密码邮件中的跳转地址
func NewRemoteProvider(baseURL, anonKey, redirectURL string, tokens *TokenManager) *RemoteProvider {
	return &RemoteProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		anonKey:     anonKey,
		redirectURL: redirectURL,
		tokens:      tokens,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

type remoteUser struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	UserMetadata Profile `json:"user_metadata"`
}

func (u remoteUser) toUser() User {
	return User{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.UserMetadata.FullName,
		Faculty:  u.UserMetadata.Faculty,
		Role:     u.Role,
	}
}

type remoteSession struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   int        `json:"expires_in"`
	User        remoteUser `json:"user"`
}

// remoteError 认证服务返回的非2xx响应
type remoteError struct {
	status  int
	code    string
	message string
}

func (e *remoteError) Error() string {
	return fmt.Sprintf("auth service responded %d: %s", e.status, e.message)
}

func (e *remoteError) Unwrap() error { return ErrRemote }

// SignIn 邮箱密码登录
func (p *RemoteProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp remoteSession
	err := p.post(ctx, "/auth/v1/token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		var re *remoteError
		if errors.As(err, &re) && (re.status == http.StatusBadRequest || re.status == http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	claims, err := p.tokens.Parse(resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: 无法校验返回的令牌: %v", ErrRemote, err)
	}

	expiresAt := time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return &Session{
		AccessToken: resp.AccessToken,
		ExpiresAt:   expiresAt,
		User:        resp.User.toUser(),
	}, nil
}

// SignUp 注册，资料写入 user_metadata
func (p *RemoteProvider) SignUp(ctx context.Context, email, password string, profile Profile) (*User, error) {
	var resp struct {
		remoteUser
		User *remoteUser `json:"user"`
	}
	err := p.post(ctx, "/auth/v1/signup", map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     profile,
	}, &resp)
	if err != nil {
		var re *remoteError
		if errors.As(err, &re) && (re.code == "user_already_exists" || strings.Contains(strings.ToLower(re.message), "already registered")) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	// 需要邮箱确认时直接返回用户，否则返回带 user 的会话
	u := resp.remoteUser
	if resp.User != nil {
		u = *resp.User
	}
	user := u.toUser()
	return &user, nil
}

// RequestPasswordReset 由认证服务发送重置邮件
func (p *RemoteProvider) RequestPasswordReset(ctx context.Context, email string) error {
	path := "/auth/v1/recover"
	if p.redirectURL != "" {
		path += "?redirect_to=" + url.QueryEscape(p.redirectURL)
	}
	return p.post(ctx, path, map[string]string{"email": email}, nil)
}

// ConfirmPasswordReset 托管服务通过邮件链接完成重置，不经过本服务
func (p *RemoteProvider) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	return ErrUnsupported
}

func (p *RemoteProvider) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.anonKey)
	req.Header.Set("Authorization", "Bearer "+p.anonKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseRemoteError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: invalid response: %v", ErrRemote, err)
	}
	return nil
}

// parseRemoteError 兼容新旧两种错误格式
func parseRemoteError(status int, raw []byte) error {
	var body struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		ErrorCode        string `json:"error_code"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
	}
	_ = json.Unmarshal(raw, &body)

	e := &remoteError{status: status, code: body.ErrorCode}
	if e.code == "" {
		e.code = body.Error
	}
	for _, m := range []string{body.Msg, body.ErrorDescription, body.Message, body.Error} {
		if m != "" {
			e.message = m
			break
		}
	}
	if e.message == "" {
		e.message = http.StatusText(status)
	}
	return e
}
