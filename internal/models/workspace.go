package models

import "time"

// OnboardingStep is one item of the client onboarding checklist.
type OnboardingStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Type        string `json:"type"` // video|form|upload|access|legal|payment
}

type ApprovalStatus string

const (
	ApprovalPending          ApprovalStatus = "Pending"
	ApprovalApproved         ApprovalStatus = "Approved"
	ApprovalChangesRequested ApprovalStatus = "Changes Requested"
)

// ApprovalItem is a creative pending client sign-off.
type ApprovalItem struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Type          string         `json:"type"` // Creative|Copy|Video
	ContentURL    string         `json:"content_url,omitempty"`
	ContentText   string         `json:"content_text,omitempty"`
	Status        ApprovalStatus `json:"status"`
	Version       int            `json:"version"`
	DateSubmitted time.Time      `json:"date_submitted"`
	Feedback      string         `json:"feedback,omitempty"`
}

// Resource is a training/reference entry in the resource library.
type Resource struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"` // Training|Script|Guide|FAQ
	Type      string `json:"type"`     // video|pdf|link
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}
