// Package notify implements the transient status-message queue shown in
// the corner of the UI.
package notify

import (
	"sync"
	"time"
)

// Severity of a notification
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// DefaultDuration is applied when a caller passes 0 for a non-error
// notification.
const DefaultDuration = 3 * time.Second

// Notification is one visible, dismissible unit.
type Notification struct {
	ID       int
	Message  string
	Severity Severity

	// expiresAt is zero for sticky notifications (errors with an
	// explicit indefinite duration).
	expiresAt time.Time
}

// Sticky reports whether the notification stays until dismissed.
func (n Notification) Sticky() bool { return n.expiresAt.IsZero() }

// Sink collects notifications and drops them when their time is up.
// Multiple live notifications stack in arrival order.
type Sink struct {
	mu    sync.Mutex
	seq   int
	items []Notification
	now   func() time.Time
}

// NewSink creates an empty notification sink.
func NewSink() *Sink {
	return &Sink{now: time.Now}
}

// Push enqueues a message. duration 0 means DefaultDuration, except for
// Error severity where 0 keeps the message until manually dismissed.
func (s *Sink) Push(message string, severity Severity, duration time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	n := Notification{ID: s.seq, Message: message, Severity: severity}

	switch {
	case duration > 0:
		n.expiresAt = s.now().Add(duration)
	case severity == Error:
		// sticky
	default:
		n.expiresAt = s.now().Add(DefaultDuration)
	}

	s.items = append(s.items, n)
	return n.ID
}

// Dismiss removes a notification regardless of its remaining time.
func (s *Sink) Dismiss(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Active prunes expired notifications and returns the live ones in
// arrival order.
func (s *Sink) Active() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	live := s.items[:0]
	for _, n := range s.items {
		if n.Sticky() || n.expiresAt.After(now) {
			live = append(live, n)
		}
	}
	s.items = live

	out := make([]Notification, len(live))
	copy(out, live)
	return out
}
