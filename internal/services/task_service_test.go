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

var (
	agencyUser = models.Principal{UserID: "u1", DisplayName: "Alex Mitchell", Role: models.RoleAgencyAdmin}
	clientUser = models.Principal{UserID: "u2", DisplayName: "Sarah Miller", Role: models.RoleClient, CompanyName: "Acme Corp"}
)

func newTaskService(replyDelay time.Duration) (TaskService, *store.Store) {
	st := store.New()
	vis := NewVisibilityService(st)
	n := notify.New(notify.DefaultTTL)
	return NewTaskService(st, vis, n, schedule.New(), replyDelay), st
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestClientSeesOnlyOwnCompanyTasks(t *testing.T) {
	svc, _ := newTaskService(0)

	assert.Equal(t, []string{"1", "2", "3"}, taskIDs(svc.List(agencyUser, models.TaskFilter{})))
	assert.Equal(t, []string{"2"}, taskIDs(svc.List(clientUser, models.TaskFilter{})))
}

func TestClientCannotReadForeignTask(t *testing.T) {
	svc, _ := newTaskService(0)

	_, err := svc.Get(clientUser, "1")
	assert.ErrorIs(t, err, ErrForbidden)

	task, err := svc.Get(clientUser, "2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", task.ClientName)
}

func TestFilterMatchesTitleOrClientNameCaseInsensitive(t *testing.T) {
	svc, _ := newTaskService(0)

	got := svc.List(agencyUser, models.TaskFilter{Query: "acm"})
	assert.Equal(t, []string{"2"}, taskIDs(got))

	got = svc.List(agencyUser, models.TaskFilter{Query: "STRATEGY"})
	assert.Equal(t, []string{"1"}, taskIDs(got))

	got = svc.List(agencyUser, models.TaskFilter{Query: "zzz"})
	assert.Empty(t, got)
}

func TestFilterByStatusPreservesOrder(t *testing.T) {
	svc, st := newTaskService(0)
	st.Tasks.Create(models.Task{ID: "4", Title: "Another todo", Status: models.StatusTodo, ClientName: "EcoFoods"})

	todo := models.StatusTodo
	got := svc.List(agencyUser, models.TaskFilter{Status: &todo})
	assert.Equal(t, []string{"2", "4"}, taskIDs(got))
}

func TestCreateIssueDefaults(t *testing.T) {
	svc, _ := newTaskService(0)

	before := time.Now()
	task, err := svc.CreateIssue(agencyUser, CreateIssueInput{Title: "New launch checklist"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, "General", task.ClientName)
	assert.WithinDuration(t, before.Add(72*time.Hour), task.DueDate, 5*time.Second)
	assert.NotEmpty(t, task.ID)
}

func TestCreateIssueRejectsEmptyTitle(t *testing.T) {
	svc, st := newTaskService(0)
	before := st.Tasks.Count()

	_, err := svc.CreateIssue(agencyUser, CreateIssueInput{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Equal(t, before, st.Tasks.Count())
}

func TestClientCreatedIssueLandsOnOwnCompany(t *testing.T) {
	svc, _ := newTaskService(0)

	task, err := svc.CreateIssue(clientUser, CreateIssueInput{Title: "Need a new banner", ClientName: "FashionNova"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", task.ClientName)
}

func TestUpdateStatusAcceptsAllLanePairs(t *testing.T) {
	svc, _ := newTaskService(0)

	statuses := []models.TaskStatus{
		models.StatusTodo, models.StatusInProgress, models.StatusClientReview, models.StatusDone,
	}
	for _, from := range statuses {
		_, err := svc.UpdateStatus(agencyUser, "1", from)
		require.NoError(t, err)
		for _, to := range statuses {
			task, err := svc.UpdateStatus(agencyUser, "1", to)
			require.NoError(t, err)
			assert.Equal(t, to, task.Status)
		}
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTaskService(0)

	_, err := svc.UpdateStatus(agencyUser, "1", models.TaskStatus("ARCHIVED"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBoardLaneCountsMatchContents(t *testing.T) {
	svc, _ := newTaskService(0)

	lanes := svc.Board(agencyUser)
	require.Len(t, lanes, 4)
	assert.Equal(t, models.StatusTodo, lanes[0].Status)
	assert.Equal(t, "To Do", lanes[0].Label)

	total := 0
	for _, lane := range lanes {
		assert.Equal(t, len(lane.Tasks), lane.Count)
		total += lane.Count
	}
	assert.Equal(t, 3, total)
}

func TestBoardIsScopedForClients(t *testing.T) {
	svc, _ := newTaskService(0)

	lanes := svc.Board(clientUser)
	total := 0
	for _, lane := range lanes {
		total += lane.Count
		for _, task := range lane.Tasks {
			assert.Equal(t, "Acme Corp", task.ClientName)
		}
	}
	assert.Equal(t, 1, total)
}

func TestPostCommentAppendsInOrder(t *testing.T) {
	svc, _ := newTaskService(0)

	_, err := svc.PostComment(agencyUser, "2", "comment A")
	require.NoError(t, err)
	task, err := svc.PostComment(clientUser, "2", "comment B")
	require.NoError(t, err)

	n := len(task.Comments)
	require.GreaterOrEqual(t, n, 2)
	a, b := task.Comments[n-2], task.Comments[n-1]
	assert.Equal(t, "comment A", a.Text)
	assert.Equal(t, "Alex Mitchell", a.Author)
	assert.False(t, a.IsClient)
	assert.Equal(t, "comment B", b.Text)
	assert.Equal(t, "Client", b.Author)
	assert.True(t, b.IsClient)
}

func TestPostCommentRejectsWhitespaceText(t *testing.T) {
	svc, _ := newTaskService(0)

	_, err := svc.PostComment(agencyUser, "2", "  \t ")
	assert.ErrorIs(t, err, ErrTextRequired)
}

// The delayed counterpart reply must land on the task it was scheduled
// for, regardless of which task the caller reads afterwards.
func TestCounterpartReplyLandsOnScheduledTask(t *testing.T) {
	svc, st := newTaskService(20 * time.Millisecond)

	task1Before, _ := st.Tasks.Get("1")
	_, err := svc.PostComment(clientUser, "2", "please tweak the colors")
	require.NoError(t, err)

	// Reading a different task while the timer is pending must not
	// redirect the reply.
	_, err = svc.Get(agencyUser, "1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		task2, _ := st.Tasks.Get("2")
		last := task2.Comments[len(task2.Comments)-1]
		return !last.IsClient && last.Author == "Alex Mitchell"
	}, time.Second, 5*time.Millisecond)

	task1After, _ := st.Tasks.Get("1")
	assert.Equal(t, len(task1Before.Comments), len(task1After.Comments))
}
