package store

import (
	"sync"

	"agencyhub/internal/models"
)

type ConversationStore interface {
	All() []models.Conversation
	Get(id string) (models.Conversation, bool)
	AppendMessage(convID string, msg models.Message) bool
	MarkRead(convID string) bool
}

type conversationStore struct {
	mu    sync.RWMutex
	convs []models.Conversation
}

func NewConversationStore(seed []models.Conversation) ConversationStore {
	s := &conversationStore{}
	for _, c := range seed {
		s.convs = append(s.convs, cloneConversation(c))
	}
	return s
}

func (s *conversationStore) All() []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Conversation, 0, len(s.convs))
	for _, c := range s.convs {
		out = append(out, cloneConversation(c))
	}
	return out
}

func (s *conversationStore) Get(id string) (models.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.convs {
		if c.ID == id {
			return cloneConversation(c), true
		}
	}
	return models.Conversation{}, false
}

// AppendMessage extends the thread and refreshes the preview line. A
// missing conversation is a silent no-op so a stale delayed reply cannot
// fail loudly after the thread is gone.
func (s *conversationStore) AppendMessage(convID string, msg models.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.convs {
		if s.convs[i].ID == convID {
			s.convs[i].Messages = append(s.convs[i].Messages, msg)
			s.convs[i].LastMessage = msg.Text
			if msg.Sender == models.SenderMe {
				s.convs[i].UnreadCount = 0
			} else {
				s.convs[i].UnreadCount++
			}
			return true
		}
	}
	return false
}

func (s *conversationStore) MarkRead(convID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.convs {
		if s.convs[i].ID == convID {
			s.convs[i].UnreadCount = 0
			return true
		}
	}
	return false
}

func cloneConversation(c models.Conversation) models.Conversation {
	out := c
	out.Messages = make([]models.Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	out.SharedFiles = make([]models.Asset, len(c.SharedFiles))
	copy(out.SharedFiles, c.SharedFiles)
	return out
}
