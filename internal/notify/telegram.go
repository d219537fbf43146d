package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"agencyhub/internal/models"
)

// TelegramSink forwards emitted notifications to the agency ops chat.
// Purely advisory; failures are logged and never propagate.
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram sink: token and chat_id are required")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram sink: %w", err)
	}
	return &TelegramSink{bot: bot, chatID: chatID}, nil
}

func (s *TelegramSink) Deliver(n models.Notification) {
	if s == nil || s.bot == nil {
		return
	}
	text := fmt.Sprintf("[%s] %s", n.Kind, n.Message)
	msg := tgbotapi.NewMessage(s.chatID, text)
	if _, err := s.bot.Send(msg); err != nil {
		log.Printf("[notify][tg][err] deliver: %v", err)
	}
}
