package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"unionsite/internal/api/response"
	"unionsite/internal/auth"
	"unionsite/internal/constants"
	"unionsite/internal/types"
	"unionsite/pkg/logger"
)

// AuthHandler 管理后台登录、注册与找回密码
type AuthHandler struct {
	provider auth.Provider
	store    sessions.Store
	logger   *logger.Logger
}

// NewAuthHandler 创建认证处理器实例
func NewAuthHandler(provider auth.Provider, store sessions.Store, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{provider: provider, store: store, logger: logger}
}

// authError 认证失败时的响应码和提示
func authError(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return 401, constants.ErrAuthFailed
	case errors.Is(err, auth.ErrEmailTaken):
		return 409, constants.ErrEmailExists
	case errors.Is(err, auth.ErrInvalidCode):
		return 400, constants.ErrInvalidCode
	case errors.Is(err, auth.ErrTooFrequent):
		return 429, constants.ErrOperationTooFrequent
	case errors.Is(err, auth.ErrSignUpDisabled):
		return 403, constants.ErrSignUpDisabled
	case errors.Is(err, auth.ErrUnsupported):
		return 501, constants.ErrUnsupported
	}
	return 500, constants.ErrAuthUnavailable
}

// SignIn 登录，成功后写入会话 cookie 并返回访问令牌
// @Router /api/v1/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req types.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	session, err := h.provider.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("登录失败", "email", req.Email, "error", err)
		code, msg := authError(err)
		response.ErrorWithData(c, code, msg, gin.H{"email": req.Email})
		return
	}

	if err := auth.SaveSession(c.Writer, c.Request, h.store, session); err != nil {
		h.logger.Error("写入会话失败", "email", req.Email, "error", err)
	}
	h.logger.Info("管理员登录", "email", req.Email)
	response.Success(c, constants.SuccessLogin, session)
}

// SignUp 注册，姓名与学院作为资料一并提交
// @Router /api/v1/auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req types.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.provider.SignUp(c.Request.Context(), req.Email, req.Password, auth.Profile{
		FullName: req.FullName,
		Faculty:  req.Faculty,
	})
	if err != nil {
		h.logger.Warn("注册失败", "email", req.Email, "error", err)
		code, msg := authError(err)
		response.ErrorWithData(c, code, msg, gin.H{"email": req.Email, "fullName": req.FullName, "faculty": req.Faculty})
		return
	}
	response.Success(c, constants.SuccessRegister, user)
}

// RequestPasswordReset 申请重置密码，无论邮箱是否存在都返回相同提示
// @Router /api/v1/auth/reset-password/request [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req types.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.provider.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.logger.Warn("申请重置密码失败", "email", req.Email, "error", err)
		code, msg := authError(err)
		response.ErrorWithData(c, code, msg, req)
		return
	}
	response.Success(c, constants.SuccessResetSent, nil)
}

// ConfirmPasswordReset 使用邮件中的验证码设置新密码
// @Router /api/v1/auth/reset-password/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req types.ConfirmResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.provider.ConfirmPasswordReset(c.Request.Context(), req.Email, req.Code, req.Password); err != nil {
		h.logger.Warn("重置密码失败", "email", req.Email, "error", err)
		code, msg := authError(err)
		response.ErrorWithData(c, code, msg, gin.H{"email": req.Email})
		return
	}
	response.Success(c, constants.SuccessReset, nil)
}

// SignOut 清除会话 cookie
// @Router /api/v1/auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := auth.ClearSession(c.Writer, c.Request, h.store); err != nil {
		h.logger.Warn("清除会话失败", "error", err)
	}
	response.Success(c, constants.SuccessLogout, nil)
}
