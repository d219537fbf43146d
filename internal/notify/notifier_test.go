package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/models"
)

func TestNotifyOverwritesWithoutQueuing(t *testing.T) {
	n := New(DefaultTTL)

	n.Success("first")
	id2 := n.Error("second")

	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, id2, cur.ID)
	assert.Equal(t, models.NotifyError, cur.Kind)
	assert.Equal(t, "second", cur.Message)
}

func TestCurrentExpiresByClockNotTimer(t *testing.T) {
	n := New(3 * time.Second)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	now := base
	n.SetClock(func() time.Time { return now })

	n.Info("deploy finished")
	require.NotNil(t, n.Current())

	now = base.Add(2999 * time.Millisecond)
	require.NotNil(t, n.Current())

	now = base.Add(3 * time.Second)
	assert.Nil(t, n.Current())
}

func TestDismissOnlyMatchesCurrentID(t *testing.T) {
	n := New(DefaultTTL)

	oldID := n.Success("first")
	n.Success("second")

	n.Dismiss(oldID)
	require.NotNil(t, n.Current(), "stale dismiss must not clear the newer notification")

	cur := n.Current()
	n.Dismiss(cur.ID)
	assert.Nil(t, n.Current())
}

type recordingSink struct {
	mu   sync.Mutex
	seen []models.Notification
}

func (r *recordingSink) Deliver(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, n)
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func TestSinksReceiveEveryEvent(t *testing.T) {
	sink := &recordingSink{}
	n := New(DefaultTTL, sink)

	n.Success("one")
	n.Error("two")

	require.Eventually(t, func() bool {
		return sink.count() == 2
	}, time.Second, 5*time.Millisecond)
}
