package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"unionsite/pkg/logger"
)

func TestWorker_RunsSubmittedTasks(t *testing.T) {
	w := NewWorker(10, logger.NewNop())
	w.Start(2)

	var done atomic.Int32
	for i := 0; i < 5; i++ {
		ok := w.Submit("email", func(ctx context.Context) error {
			done.Add(1)
			return nil
		})
		assert.True(t, ok)
	}
	w.Submit("failing", func(ctx context.Context) error { return errors.New("smtp down") })
	w.Submit("panicking", func(ctx context.Context) error { panic("boom") })

	w.Stop()
	assert.Equal(t, int32(5), done.Load())
}

func TestWorker_SubmitAfterStop(t *testing.T) {
	w := NewWorker(1, logger.NewNop())
	w.Start(1)
	w.Stop()
	w.Stop()

	assert.False(t, w.Submit("late", func(ctx context.Context) error { return nil }))
}

func TestWorker_QueueFull(t *testing.T) {
	w := NewWorker(1, logger.NewNop())

	// 未启动消费者，第二个任务无处可放
	assert.True(t, w.Submit("first", func(ctx context.Context) error { return nil }))
	assert.False(t, w.Submit("second", func(ctx context.Context) error { return nil }))
}
