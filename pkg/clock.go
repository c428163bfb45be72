package pkg

import (
	"sync"
	"time"
)

// Clock accumulates the time one side spends choosing moves.
type Clock struct {
	Elapsed time.Duration

	started time.Time
	running bool
	now     func() time.Time
	mu      sync.Mutex
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (cl *Clock) Start() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.running {
		return
	}
	cl.started = cl.now()
	cl.running = true
}

func (cl *Clock) Stop() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if !cl.running {
		return
	}
	cl.Elapsed += cl.now().Sub(cl.started)
	cl.running = false
}

// Total includes the running period, if any.
func (cl *Clock) Total() time.Duration {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.running {
		return cl.Elapsed + cl.now().Sub(cl.started)
	}
	return cl.Elapsed
}

func (cl *Clock) Reset() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.Elapsed = 0
	cl.running = false
}
