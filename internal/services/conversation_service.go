package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/models"
	"agencyhub/internal/schedule"
	"agencyhub/internal/store"
)

const autoReplyText = "Got it! Thanks for sending that over."

type ConversationService interface {
	List() []models.Conversation
	Get(id string) (models.Conversation, error)
	Send(convID, text string) (models.Conversation, error)
	MarkRead(convID string) error
}

type conversationService struct {
	store      *store.Store
	scheduler  *schedule.Scheduler
	replyDelay time.Duration
}

func NewConversationService(st *store.Store, sched *schedule.Scheduler, replyDelay time.Duration) ConversationService {
	return &conversationService{store: st, scheduler: sched, replyDelay: replyDelay}
}

func (s *conversationService) List() []models.Conversation {
	return s.store.Conversations.All()
}

func (s *conversationService) Get(id string) (models.Conversation, error) {
	c, ok := s.store.Conversations.Get(id)
	if !ok {
		return models.Conversation{}, ErrNotFound
	}
	return c, nil
}

// Send appends the outgoing message and schedules the canned reply
// against the conversation id captured now. Switching threads before the
// reply fires cannot misroute it.
func (s *conversationService) Send(convID, text string) (models.Conversation, error) {
	if strings.TrimSpace(text) == "" {
		return models.Conversation{}, ErrTextRequired
	}
	msg := models.Message{
		ID:        uuid.NewString(),
		Sender:    models.SenderMe,
		Text:      strings.TrimSpace(text),
		Timestamp: time.Now(),
	}
	if ok := s.store.Conversations.AppendMessage(convID, msg); !ok {
		return models.Conversation{}, ErrNotFound
	}

	if s.scheduler != nil && s.replyDelay > 0 {
		s.scheduler.After(convID, s.replyDelay, func(id string) {
			s.store.Conversations.AppendMessage(id, models.Message{
				ID:        uuid.NewString(),
				Sender:    models.SenderThem,
				Text:      autoReplyText,
				Timestamp: time.Now(),
			})
		})
	}

	c, _ := s.store.Conversations.Get(convID)
	return c, nil
}

func (s *conversationService) MarkRead(convID string) error {
	if ok := s.store.Conversations.MarkRead(convID); !ok {
		return ErrNotFound
	}
	return nil
}
