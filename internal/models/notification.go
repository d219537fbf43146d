package models

import "time"

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is the single-slot transient toast. Visibility is derived
// from ExpiresAt against the current time, never from a UI timer.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	ShownAt   time.Time        `json:"shown_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}
