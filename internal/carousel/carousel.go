// Package carousel 首页轮播的定时切换。
//
// 每个周期先隐藏当前卡片，淡出时间过后把下标加一（对卡片数取模）再显示。
// 固定周期轮换，不支持悬停暂停，ctx 取消时停止。
package carousel

import (
	"context"
	"time"
)

const (
	// DefaultPeriod 切换周期
	DefaultPeriod = 5000 * time.Millisecond
	// DefaultFade 隐藏到显示下一张之间的间隔
	DefaultFade = 500 * time.Millisecond
)

// State 轮播当前状态
type State struct {
	Index   int  `json:"index"`
	Visible bool `json:"visible"`
}

// Ticker 对 time.Ticker 的抽象
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock 时间来源，测试中可替换
type Clock interface {
	NewTicker(d time.Duration) Ticker
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// Rotator 轮播切换器
type Rotator struct {
	count  int
	period time.Duration
	fade   time.Duration
	clock  Clock
}

// New 使用默认周期创建切换器，count 为卡片数量
func New(count int) *Rotator {
	return NewWithClock(count, DefaultPeriod, DefaultFade, realClock{})
}

// NewWithClock 创建指定周期与时间来源的切换器
func NewWithClock(count int, period, fade time.Duration, clock Clock) *Rotator {
	return &Rotator{count: count, period: period, fade: fade, clock: clock}
}

// Run 先报告初始状态，之后每次状态变化调用 onChange，直到 ctx 取消。
// 卡片不超过一张时不切换，只等待取消。
func (r *Rotator) Run(ctx context.Context, onChange func(State)) error {
	state := State{Index: 0, Visible: true}

	if r.count <= 1 {
		onChange(state)
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := r.clock.NewTicker(r.period)
	defer ticker.Stop()
	onChange(state)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
		}

		fade := r.clock.After(r.fade)
		state.Visible = false
		onChange(state)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-fade:
		}

		state.Index = (state.Index + 1) % r.count
		state.Visible = true
		onChange(state)
	}
}
