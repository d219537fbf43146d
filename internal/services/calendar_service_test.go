package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/schedule"
	"agencyhub/internal/store"
)

func newCalendarService() (CalendarService, *store.Store) {
	st := store.New()
	vis := NewVisibilityService(st)
	tasks := NewTaskService(st, vis, notify.New(notify.DefaultTTL), schedule.New(), 0)
	return NewCalendarService(tasks, vis), st
}

func TestMonthBucketsTasksByDueDate(t *testing.T) {
	svc, st := newCalendarService()

	due := time.Date(2026, time.September, 15, 10, 0, 0, 0, time.Local)
	st.Tasks.Create(models.Task{ID: "cal1", Title: "Launch review", Status: models.StatusTodo, ClientName: "Acme Corp", DueDate: due})

	days := svc.Month(agencyUser, 2026, time.September)
	require.Len(t, days, 30)
	assert.Equal(t, "2026-09-01", days[0].Date)

	found := false
	for _, day := range days {
		if day.Date == "2026-09-15" {
			require.Len(t, day.Tasks, 1)
			assert.Equal(t, "cal1", day.Tasks[0].ID)
			found = true
		} else {
			for _, task := range day.Tasks {
				assert.NotEqual(t, "cal1", task.ID)
			}
		}
	}
	assert.True(t, found)
}

func TestCreateEventIsGeneralBucketTask(t *testing.T) {
	svc, _ := newCalendarService()

	date := time.Date(2026, time.October, 3, 0, 0, 0, 0, time.Local)
	task, err := svc.CreateEvent(agencyUser, CreateEventInput{Title: "Quarterly planning", Date: date})
	require.NoError(t, err)

	assert.Equal(t, "General", task.ClientName)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, date, task.DueDate)
}

func TestCreateEventRequiresTitle(t *testing.T) {
	svc, _ := newCalendarService()

	_, err := svc.CreateEvent(agencyUser, CreateEventInput{})
	assert.ErrorIs(t, err, ErrTitleRequired)
}
