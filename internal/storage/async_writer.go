package storage

import (
	"sync"
	"sync/atomic"

	"github.com/julianstephens/dayboard/internal/logger"
	"github.com/julianstephens/dayboard/internal/models"
)

type writeOp struct {
	desc string
	id   string
	fn   func(Provider) error
	done chan struct{} // set for flush barriers
}

// AsyncWriter applies Provider writes on a single background goroutine in
// the order they were queued. Failures are logged and counted; nothing is
// retried or rolled back.
type AsyncWriter struct {
	store    Provider
	ops      chan writeOp
	wg       sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
	failures atomic.Int64
}

func NewAsyncWriter(store Provider, queueSize int) *AsyncWriter {
	if queueSize < 1 {
		queueSize = 1
	}
	w := &AsyncWriter{
		store: store,
		ops:   make(chan writeOp, queueSize),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *AsyncWriter) run() {
	defer w.wg.Done()
	for op := range w.ops {
		if op.done != nil {
			close(op.done)
			continue
		}
		if err := op.fn(w.store); err != nil {
			w.failures.Add(1)
			logger.Warn("Persistence write failed", "op", op.desc, "id", op.id, "error", err)
		}
	}
}

func (w *AsyncWriter) enqueue(op writeOp) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		logger.Warn("Write dropped after writer closed", "op", op.desc, "id", op.id)
		return false
	}
	w.ops <- op
	return true
}

func (w *AsyncWriter) SaveTask(task models.Task) {
	w.enqueue(writeOp{desc: "save task", id: task.ID, fn: func(p Provider) error {
		return p.SaveTask(task)
	}})
}

func (w *AsyncWriter) DeleteTask(id string) {
	w.enqueue(writeOp{desc: "delete task", id: id, fn: func(p Provider) error {
		return p.DeleteTask(id)
	}})
}

func (w *AsyncWriter) SaveHabit(habit models.Habit) {
	w.enqueue(writeOp{desc: "save habit", id: habit.ID, fn: func(p Provider) error {
		return p.SaveHabit(habit)
	}})
}

func (w *AsyncWriter) DeleteHabit(id string) {
	w.enqueue(writeOp{desc: "delete habit", id: id, fn: func(p Provider) error {
		return p.DeleteHabit(id)
	}})
}

func (w *AsyncWriter) SaveSettings(settings models.Settings) {
	w.enqueue(writeOp{desc: "save settings", fn: func(p Provider) error {
		return p.SaveSettings(settings)
	}})
}

// Flush blocks until every write queued before the call has been applied.
func (w *AsyncWriter) Flush() {
	done := make(chan struct{})
	if !w.enqueue(writeOp{desc: "flush", done: done}) {
		return
	}
	<-done
}

// Failures returns the number of writes that have failed so far.
func (w *AsyncWriter) Failures() int64 {
	return w.failures.Load()
}

// Close drains pending writes and stops the goroutine. It does not close the
// underlying Provider.
func (w *AsyncWriter) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.ops)
	w.mu.Unlock()
	w.wg.Wait()
}
