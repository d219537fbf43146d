package models

import "time"

// ClientStatus is the lifecycle stage of a client account.
type ClientStatus string

const (
	ClientActive     ClientStatus = "Active"
	ClientOnboarding ClientStatus = "Onboarding"
	ClientPaused     ClientStatus = "Paused"
	ClientChurned    ClientStatus = "Churned"
)

// Client is a company record. Tasks, invoices and assets reference it by
// name; renames cascade through the stores (see ClientService.Rename).
type Client struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Contact            string       `json:"contact"`
	Email              string       `json:"email"`
	Status             ClientStatus `json:"status"`
	ImageURL           string       `json:"image_url"`
	Spend              float64      `json:"spend"`
	Campaigns          int          `json:"campaigns"`
	LastContact        string       `json:"last_contact"`
	Health             int          `json:"health"`
	Industry           string       `json:"industry,omitempty"`
	Location           string       `json:"location,omitempty"`
	OnboardingProgress int          `json:"onboarding_progress"` // 0..100
	CreatedAt          time.Time    `json:"created_at"`
}
