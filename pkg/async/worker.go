package async

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"unionsite/pkg/logger"
)

// 单个任务的默认超时
const defaultTaskTimeout = 30 * time.Second

// Task 表示一个异步任务，例如发送邮件或清理已删除记录的图片
type Task struct {
	ID      string
	Name    string
	Handler func(ctx context.Context) error
	Timeout time.Duration
}

// Worker 异步任务处理器
type Worker struct {
	taskQueue chan Task
	logger    *logger.Logger
	wg        sync.WaitGroup
	mu        sync.RWMutex
	stopped   bool
	seq       atomic.Uint64
}

// NewWorker 创建一个新的工作器
func NewWorker(queueSize int, logger *logger.Logger) *Worker {
	return &Worker{
		taskQueue: make(chan Task, queueSize),
		logger:    logger,
	}
}

// Start 启动工作器
func (w *Worker) Start(numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.processTask()
	}
}

// Stop 停止接收新任务，并等待队列中的任务执行完毕
func (w *Worker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.taskQueue)
	w.mu.Unlock()

	w.wg.Wait()
}

// Submit 将任务加入队列，队列已满或工作器已停止时返回false
func (w *Worker) Submit(name string, handler func(ctx context.Context) error) bool {
	task := Task{
		ID:      fmt.Sprintf("%s_%d", name, w.seq.Add(1)),
		Name:    name,
		Handler: handler,
		Timeout: defaultTaskTimeout,
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return false
	}

	select {
	case w.taskQueue <- task:
		return true
	default:
		w.logger.Warn("异步任务队列已满，任务被丢弃", "task_id", task.ID)
		return false
	}
}

// processTask 处理任务的工作循环
func (w *Worker) processTask() {
	defer w.wg.Done()

	for task := range w.taskQueue {
		w.executeTask(task)
	}
}

// executeTask 执行单个任务，失败只记录日志不重试
func (w *Worker) executeTask(task Task) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), task.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("异步任务崩溃", "task_id", task.ID, "panic", r)
		}
	}()

	if err := task.Handler(ctx); err != nil {
		w.logger.Error("异步任务执行失败", "task_id", task.ID, "error", err)
		return
	}

	w.logger.Debug("异步任务执行完成", "task_id", task.ID, "duration", time.Since(start))
}
