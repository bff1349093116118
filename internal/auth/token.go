package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 本地签发令牌的有效期
const tokenTTL = time.Hour

// Claims 访问令牌中的声明，字段与托管认证服务保持一致
type Claims struct {
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	UserMetadata Profile `json:"user_metadata"`
	jwt.RegisteredClaims
}

// User 从声明还原用户
func (c *Claims) User() User {
	return User{
		ID:       c.Subject,
		Email:    c.Email,
		FullName: c.UserMetadata.FullName,
		Faculty:  c.UserMetadata.Faculty,
		Role:     c.Role,
	}
}

// IsAdmin 令牌是否具有管理权限
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAuthenticated
}

// TokenManager 使用共享密钥签发和校验令牌
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager 创建令牌管理器
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// Issue 为用户签发访问令牌
func (m *TokenManager) Issue(user User) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(tokenTTL)

	claims := &Claims{
		Email: user.Email,
		Role:  RoleAuthenticated,
		UserMetadata: Profile{
			FullName: user.FullName,
			Faculty:  user.Faculty,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "unionsite",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse 校验令牌签名与有效期并返回声明
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
