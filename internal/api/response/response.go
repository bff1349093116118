// Package response 统一的 {code, msg, data} 响应。HTTP 状态码始终为 200，业务状态放在 code 中。
package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unionsite/internal/constants"
	"unionsite/internal/repository"
	"unionsite/internal/types"
	"unionsite/internal/view"
)

// Success 成功响应
func Success(c *gin.Context, msg string, data interface{}) {
	body := gin.H{"code": 200, "msg": msg}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// Error 失败响应
func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, gin.H{"code": code, "msg": msg})
}

// ErrorWithData 失败响应，同时原样带回提交的内容方便修改后重试
func ErrorWithData(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": code, "msg": msg, "data": data})
}

// BindError 参数绑定失败。校验错误按字段返回提示
func BindError(c *gin.Context, err error) {
	fields := types.FieldErrors(err)
	if fields == nil {
		Error(c, 400, constants.ErrInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams, "fields": fields})
}

// List 列表视图响应，读取失败时 code 为 500，空列表仍是成功
func List[T any](c *gin.Context, l *view.List[T]) {
	if l.State() == view.Error {
		ErrorWithData(c, 500, l.Message(), l)
		return
	}
	Success(c, constants.SuccessGet, l)
}

// Detail 详情视图响应，不存在时 code 为 404
func Detail[T any](c *gin.Context, d *view.Detail[T]) {
	switch d.State() {
	case view.Error:
		ErrorWithData(c, 500, d.Message(), d)
	case view.Empty:
		ErrorWithData(c, 404, constants.ErrNotFound, d)
	default:
		Success(c, constants.SuccessGet, d)
	}
}

// StoreError 写操作失败时按错误类型选择响应码
func StoreError(c *gin.Context, err error, msg string, data interface{}) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ErrorWithData(c, 404, constants.ErrNotFound, data)
	case errors.Is(err, repository.ErrStale):
		ErrorWithData(c, 409, constants.ErrStale, data)
	default:
		ErrorWithData(c, 500, msg, data)
	}
}

// ParamID 解析路径中的正整数ID，失败时已写入响应
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		Error(c, 400, constants.ErrInvalidID)
		return 0, false
	}
	return id, true
}
