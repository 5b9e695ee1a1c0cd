// Package toast holds the transient notification state shown by the view
// layer. The channel owns the notices; rendering and expiry timers belong
// to whoever displays them.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// DefaultDuration is how long a notice stays visible unless overridden.
const DefaultDuration = 5 * time.Second

// Notice is a single transient notification.
type Notice struct {
	ID        string
	Message   string
	Level     Level
	Duration  time.Duration
	CreatedAt time.Time
}

// Expired reports whether the notice's display window has elapsed.
func (n Notice) Expired(now time.Time) bool {
	return now.After(n.CreatedAt.Add(n.Duration))
}

// Channel is an ordered collection of notices, newest last.
type Channel struct {
	mu       sync.Mutex
	notices  []Notice
	duration time.Duration
}

// NewChannel creates a channel. A zero duration falls back to DefaultDuration.
func NewChannel(duration time.Duration) *Channel {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Channel{duration: duration}
}

// Add appends a notice and returns its id.
func (c *Channel) Add(message string, level Level) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notice{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		Duration:  c.duration,
		CreatedAt: time.Now(),
	}
	c.notices = append(c.notices, n)
	return n.ID
}

// Remove deletes a notice by id. Removing an unknown id is a no-op.
func (c *Channel) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.notices {
		if n.ID == id {
			c.notices = append(c.notices[:i], c.notices[i+1:]...)
			return
		}
	}
}

// Prune removes every notice whose display window has elapsed.
func (c *Channel) Prune(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.notices[:0]
	for _, n := range c.notices {
		if !n.Expired(now) {
			kept = append(kept, n)
		}
	}
	c.notices = kept
}

// Clear removes all notices.
func (c *Channel) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = nil
}

// Notices returns a copy of the current notices in emission order.
func (c *Channel) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Success emits a success notice.
func (c *Channel) Success(message string) { c.Add(message, LevelSuccess) }

// Error emits an error notice.
func (c *Channel) Error(message string) { c.Add(message, LevelError) }

// Warning emits a warning notice.
func (c *Channel) Warning(message string) { c.Add(message, LevelWarning) }

// Info emits an info notice.
func (c *Channel) Info(message string) { c.Add(message, LevelInfo) }
