package quote

import "sync"

// Counter mints quote numbers. One Counter is shared by every session in the
// process so a number is never issued twice while the process lives.
type Counter struct {
	mu   sync.Mutex
	next int
}

// NewCounter returns a counter whose first number is Q-DXB-00001.
func NewCounter() *Counter {
	return &Counter{next: 1}
}

// Next returns the current sequence as a quote number and advances the counter.
func (c *Counter) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.next
	c.next++
	return FormatNumber(n)
}

// Peek returns the sequence the next call to Next will use.
func (c *Counter) Peek() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.next
}

// Seed raises the counter to value. The counter never moves backwards.
func (c *Counter) Seed(value int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value > c.next {
		c.next = value
	}
}

// SeedValue computes max(stored, highest observed suffix + 1, 1).
func SeedValue(stored int, quoteNumbers []string) int {
	highest := 0
	for _, no := range quoteNumbers {
		if n, ok := NumberSuffix(no); ok && n > highest {
			highest = n
		}
	}
	return max(stored, highest+1, 1)
}
