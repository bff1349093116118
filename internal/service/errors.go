package service

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrInvalidTransition 投诉状态不允许这样流转
	ErrInvalidTransition = errors.New("投诉状态不允许这样流转")
	// ErrBusy 其他管理员正在执行同一操作
	ErrBusy = errors.New("操作进行中，请稍后重试")
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify 由标题生成 slug，标题中没有可用字符时返回空字符串
func slugify(title string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
}
