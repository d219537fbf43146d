package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/models"
	"agencyhub/internal/schedule"
	"agencyhub/internal/store"
)

func TestSendAppendsAndClearsUnread(t *testing.T) {
	st := store.New()
	svc := NewConversationService(st, schedule.New(), 0)

	conv, err := svc.Send("c1", "Launching tomorrow at 9am")
	require.NoError(t, err)

	last := conv.Messages[len(conv.Messages)-1]
	assert.Equal(t, models.SenderMe, last.Sender)
	assert.Equal(t, "Launching tomorrow at 9am", last.Text)
	assert.Equal(t, "Launching tomorrow at 9am", conv.LastMessage)
	assert.Equal(t, 0, conv.UnreadCount)
}

func TestSendRejectsEmptyText(t *testing.T) {
	st := store.New()
	svc := NewConversationService(st, schedule.New(), 0)

	_, err := svc.Send("c1", "   ")
	assert.ErrorIs(t, err, ErrTextRequired)

	_, err = svc.Send("missing", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

// The canned reply is keyed by the conversation id at send time; it must
// arrive in that conversation even though the caller looked at another
// thread meanwhile.
func TestAutoReplyArrivesInSendingConversation(t *testing.T) {
	st := store.New()
	svc := NewConversationService(st, schedule.New(), 20*time.Millisecond)

	sent, err := svc.Send("c1", "Here is the final cut")
	require.NoError(t, err)
	countAfterSend := len(sent.Messages)

	_ = svc.List()

	require.Eventually(t, func() bool {
		conv, _ := st.Conversations.Get("c1")
		return len(conv.Messages) == countAfterSend+1
	}, time.Second, 5*time.Millisecond)

	conv, _ := st.Conversations.Get("c1")
	last := conv.Messages[len(conv.Messages)-1]
	assert.Equal(t, models.SenderThem, last.Sender)
	assert.Equal(t, "Got it! Thanks for sending that over.", last.Text)
	assert.Equal(t, 1, conv.UnreadCount)
}
