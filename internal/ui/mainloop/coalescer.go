package mainloop

import "sync"

// Coalescer merges bursts of same-key requests into a single main-loop task.
// A request posted while an earlier one with the same key is still queued
// replaces the queued callback instead of scheduling another turn.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	merged    map[string]int
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules work through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending: make(map[string]func()),
		merged:  make(map[string]int),
		post:    post,
	}
}

// Post schedules fn under key. Safe from any goroutine.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	if _, queued := c.pending[key]; queued {
		c.pending[key] = fn
		c.merged[key]++
		c.mu.Unlock()
		return
	}
	c.pending[key] = fn
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if fn != nil && !destroyed {
		fn()
	}
}

// Merged returns how many requests for key were folded into an already queued task.
func (c *Coalescer) Merged(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.merged[key]
}

// Destroy drops queued work and ignores later requests.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]func(){}
	c.mu.Unlock()
}
