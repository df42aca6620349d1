package telegram

import (
	"sync"
	"time"
)

// LoopScheduler defers functions onto the handler loop. Timers fire on their
// own goroutines but only hand the function over; Run executes it.
type LoopScheduler struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
}

// AfterFunc queues fn for the loop once d has elapsed. Functions due after
// Stop are dropped.
func (s *LoopScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		select {
		case <-s.done:
			return
		default:
		}

		select {
		case s.tasks <- fn:
		case <-s.done:
		}
	})
}

// Tasks delivers due functions.
func (s *LoopScheduler) Tasks() <-chan func() {
	return s.tasks
}

func (s *LoopScheduler) Stop() {
	s.once.Do(func() { close(s.done) })
}
