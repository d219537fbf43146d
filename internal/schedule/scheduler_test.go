package schedule

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresWithCapturedID(t *testing.T) {
	s := New()
	var mu sync.Mutex
	var fired []string

	s.After("task-1", 10*time.Millisecond, func(id string) {
		mu.Lock()
		defer mu.Unlock()
		fired = append(fired, id)
	})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fired) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "task-1", fired[0])
	assert.False(t, s.Pending("task-1"))
}

func TestReschedulingReplacesPendingAction(t *testing.T) {
	s := New()
	var mu sync.Mutex
	count := 0

	for i := 0; i < 5; i++ {
		s.After("conv-1", 20*time.Millisecond, func(string) {
			mu.Lock()
			defer mu.Unlock()
			count++
		})
	}

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestCancelStopsPendingAction(t *testing.T) {
	s := New()
	var mu sync.Mutex
	fired := false

	s.After("task-9", 30*time.Millisecond, func(string) {
		mu.Lock()
		defer mu.Unlock()
		fired = true
	})
	require.True(t, s.Pending("task-9"))

	s.Cancel("task-9")
	assert.False(t, s.Pending("task-9"))

	time.Sleep(80 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired)

	s.Cancel("never-scheduled")
}
