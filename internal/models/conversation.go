package models

import "time"

type MessageSender string

const (
	SenderMe   MessageSender = "me"
	SenderThem MessageSender = "them"
)

type Message struct {
	ID        string        `json:"id"`
	Sender    MessageSender `json:"sender"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
	Type      string        `json:"type,omitempty"` // text|voice|file
	FileURL   string        `json:"file_url,omitempty"`
}

// Conversation is a message thread with one client contact.
type Conversation struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	Avatar      string    `json:"avatar"`
	LastMessage string    `json:"last_message"`
	UnreadCount int       `json:"unread_count"`
	IsOnline    bool      `json:"is_online"`
	Messages    []Message `json:"messages"`
	SharedFiles []Asset   `json:"shared_files"`
}
