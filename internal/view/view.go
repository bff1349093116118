// Package view 列表与详情页面的加载状态。
//
// 每个视图只解析一次：loading 之后进入 success 或 error，成功但没有数据时
// 派生出 empty。之后的解析调用会被忽略。
package view

import (
	"context"
	"encoding/json"
	"sync"
)

// State 视图状态
type State string

const (
	Loading State = "loading"
	Success State = "success"
	Error   State = "error"
	Empty   State = "empty"
)

// DefaultErrorMessage 远程读取失败时展示给用户的提示
const DefaultErrorMessage = "加载失败，请稍后刷新重试"

// List 列表视图
type List[T any] struct {
	once  sync.Once
	state State
	items []T
	err   error
}

// NewList 创建处于 loading 状态的列表视图
func NewList[T any]() *List[T] {
	return &List[T]{state: Loading}
}

// LoadList 调用一次 fetch 并用结果解析视图
func LoadList[T any](ctx context.Context, fetch func(ctx context.Context) ([]T, error)) *List[T] {
	l := NewList[T]()
	l.Resolve(fetch(ctx))
	return l
}

// Resolve 用读取结果解析视图，返回本次调用是否生效
func (l *List[T]) Resolve(items []T, err error) bool {
	applied := false
	l.once.Do(func() {
		applied = true
		if err != nil {
			l.state = Error
			l.err = err
			return
		}
		l.state = Success
		l.items = items
		if l.items == nil {
			l.items = []T{}
		}
	})
	return applied
}

// State 当前状态，成功但为空时为 Empty
func (l *List[T]) State() State {
	if l.state == Success && len(l.items) == 0 {
		return Empty
	}
	return l.state
}

// Items 成功时的数据
func (l *List[T]) Items() []T { return l.items }

// Err 失败原因
func (l *List[T]) Err() error { return l.err }

// Message 失败时的用户提示
func (l *List[T]) Message() string {
	if l.state != Error {
		return ""
	}
	return DefaultErrorMessage
}

// MarshalJSON 输出 {state, items, error}
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		State State  `json:"state"`
		Items []T    `json:"items"`
		Error string `json:"error,omitempty"`
	}{l.State(), l.items, l.Message()})
}

// Detail 详情视图，找不到记录时为 Empty
type Detail[T any] struct {
	once  sync.Once
	state State
	item  *T
	err   error
}

// NewDetail 创建处于 loading 状态的详情视图
func NewDetail[T any]() *Detail[T] {
	return &Detail[T]{state: Loading}
}

// LoadDetail 调用一次 fetch 并用结果解析视图，fetch 返回 (nil, nil) 表示记录不存在
func LoadDetail[T any](ctx context.Context, fetch func(ctx context.Context) (*T, error)) *Detail[T] {
	d := NewDetail[T]()
	d.Resolve(fetch(ctx))
	return d
}

// Resolve 用读取结果解析视图，返回本次调用是否生效
func (d *Detail[T]) Resolve(item *T, err error) bool {
	applied := false
	d.once.Do(func() {
		applied = true
		if err != nil {
			d.state = Error
			d.err = err
			return
		}
		d.state = Success
		d.item = item
	})
	return applied
}

// State 当前状态
func (d *Detail[T]) State() State {
	if d.state == Success && d.item == nil {
		return Empty
	}
	return d.state
}

// Item 成功时的记录
func (d *Detail[T]) Item() *T { return d.item }

// Err 失败原因
func (d *Detail[T]) Err() error { return d.err }

// Message 失败时的用户提示
func (d *Detail[T]) Message() string {
	if d.state != Error {
		return ""
	}
	return DefaultErrorMessage
}

// MarshalJSON 输出 {state, item, error}
func (d *Detail[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		State State  `json:"state"`
		Item  *T     `json:"item"`
		Error string `json:"error,omitempty"`
	}{d.State(), d.item, d.Message()})
}
