package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

// SessionName 管理后台会话 cookie 名称
const SessionName = "union-admin-session"

const sessionTokenKey = "access_token"

// NewSessionStore 创建签名 cookie 会话存储
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(tokenTTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SaveSession 把访问令牌写入会话 cookie，有效期与令牌一致
func SaveSession(w http.ResponseWriter, r *http.Request, store sessions.Store, s *Session) error {
	session, _ := store.Get(r, SessionName)
	session.Values[sessionTokenKey] = s.AccessToken
	if ttl := time.Until(s.ExpiresAt); ttl > 0 {
		session.Options.MaxAge = int(ttl / time.Second)
	}
	return session.Save(r, w)
}

// SessionToken 读取会话中的访问令牌，没有时返回空字符串
func SessionToken(r *http.Request, store sessions.Store) string {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return ""
	}
	token, _ := session.Values[sessionTokenKey].(string)
	return token
}

// ClearSession 删除会话 cookie
func ClearSession(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, _ := store.Get(r, SessionName)
	delete(session.Values, sessionTokenKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
