// Package notify implements the single-slot transient notification surface.
// Exactly one notification is visible at a time; a new emit overwrites the
// slot without queuing, and visibility is recomputed from the expiry
// timestamp so the contract is testable without real timers.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/models"
)

// DefaultTTL matches the toast auto-dismiss duration of the dashboard.
const DefaultTTL = 3000 * time.Millisecond

// Sink receives every emitted notification, e.g. for ops-channel fan-out.
type Sink interface {
	Deliver(n models.Notification)
}

type Notifier struct {
	mu      sync.Mutex
	current *models.Notification
	ttl     time.Duration
	now     func() time.Time
	sinks   []Sink
}

func New(ttl time.Duration, sinks ...Sink) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl, now: time.Now, sinks: sinks}
}

// SetClock overrides the time source. Tests only.
func (n *Notifier) SetClock(now func() time.Time) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.now = now
}

// Notify always succeeds and replaces whatever is currently shown.
func (n *Notifier) Notify(kind models.NotificationKind, message string) string {
	n.mu.Lock()
	shown := n.now()
	notif := models.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		ShownAt:   shown,
		ExpiresAt: shown.Add(n.ttl),
	}
	n.current = &notif
	sinks := n.sinks
	n.mu.Unlock()

	for _, s := range sinks {
		go s.Deliver(notif)
	}
	return notif.ID
}

func (n *Notifier) Success(message string) string { return n.Notify(models.NotifySuccess, message) }
func (n *Notifier) Error(message string) string   { return n.Notify(models.NotifyError, message) }
func (n *Notifier) Info(message string) string    { return n.Notify(models.NotifyInfo, message) }

// Current returns the visible notification, or nil once the slot expired.
func (n *Notifier) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	if !n.now().Before(n.current.ExpiresAt) {
		n.current = nil
		return nil
	}
	out := *n.current
	return &out
}

// Dismiss clears the slot early. Dismissing a superseded id is a no-op so
// a late user click cannot kill a newer notification.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.ID == id {
		n.current = nil
	}
}
