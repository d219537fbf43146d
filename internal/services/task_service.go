package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/authz"
	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/schedule"
	"agencyhub/internal/store"
)

// Issue creation defaults: three days of lead time, board entry lane.
const defaultDueIn = 72 * time.Hour

// CreateIssueInput carries the caller-supplied fields; everything else is
// defaulted here.
type CreateIssueInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority"`
	Assignee    string              `json:"assignee"`
	ClientName  string              `json:"client_name"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
}

type UpdateIssueInput struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Priority    *models.TaskPriority `json:"priority,omitempty"`
	Assignee    *string              `json:"assignee,omitempty"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
}

// TaskService is the issue-board core: creation, filtering, lanes, status
// moves and the comment thread.
type TaskService interface {
	List(p models.Principal, filter models.TaskFilter) []models.Task
	Get(p models.Principal, id string) (models.Task, error)
	CreateIssue(p models.Principal, in CreateIssueInput) (models.Task, error)
	Update(p models.Principal, id string, in UpdateIssueInput) (models.Task, error)
	UpdateStatus(p models.Principal, id string, to models.TaskStatus) (models.Task, error)
	Board(p models.Principal) []models.BoardLane
	PostComment(p models.Principal, taskID, text string) (models.Task, error)
}

type taskService struct {
	store      *store.Store
	visibility VisibilityService
	notifier   *notify.Notifier
	scheduler  *schedule.Scheduler
	replyDelay time.Duration
}

func NewTaskService(st *store.Store, vis VisibilityService, n *notify.Notifier, sched *schedule.Scheduler, replyDelay time.Duration) TaskService {
	return &taskService{
		store:      st,
		visibility: vis,
		notifier:   n,
		scheduler:  sched,
		replyDelay: replyDelay,
	}
}

var boardLanes = []struct {
	Status models.TaskStatus
	Label  string
}{
	{models.StatusTodo, "To Do"},
	{models.StatusInProgress, "In Progress"},
	{models.StatusClientReview, "Review"},
	{models.StatusDone, "Done"},
}

func isKnownStatus(s models.TaskStatus) bool {
	for _, lane := range boardLanes {
		if lane.Status == s {
			return true
		}
	}
	return false
}

// matchesFilter checks the query as a case-insensitive substring of the
// title or the client name, plus the optional status.
func matchesFilter(t models.Task, f models.TaskFilter) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		title := strings.ToLower(t.Title)
		client := strings.ToLower(t.ClientName)
		if !strings.Contains(title, q) && !strings.Contains(client, q) {
			return false
		}
	}
	return true
}

func (s *taskService) List(p models.Principal, filter models.TaskFilter) []models.Task {
	visible := s.visibility.VisibleTasks(p)
	out := make([]models.Task, 0, len(visible))
	for _, t := range visible {
		if matchesFilter(t, filter) {
			out = append(out, t)
		}
	}
	return out
}

func (s *taskService) Get(p models.Principal, id string) (models.Task, error) {
	t, ok := s.store.Tasks.Get(id)
	if !ok {
		return models.Task{}, ErrNotFound
	}
	if !authz.CanViewClientRecord(p, t.ClientName) {
		return models.Task{}, ErrForbidden
	}
	return t, nil
}

func (s *taskService) CreateIssue(p models.Principal, in CreateIssueInput) (models.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Task{}, ErrTitleRequired
	}
	now := time.Now()
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      models.StatusTodo,
		Priority:    in.Priority,
		Assignee:    in.Assignee,
		ClientName:  in.ClientName,
		DueDate:     now.Add(defaultDueIn),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.ClientName == "" {
		task.ClientName = "General"
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if p.IsClient() {
		// Client-created requests always land on their own company.
		task.ClientName = p.CompanyName
	}
	s.store.Tasks.Create(task)
	s.notifier.Success("Task created: " + task.Title)
	return task, nil
}

func (s *taskService) Update(p models.Principal, id string, in UpdateIssueInput) (models.Task, error) {
	if _, err := s.Get(p, id); err != nil {
		return models.Task{}, err
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return models.Task{}, ErrTitleRequired
	}
	s.store.Tasks.Update(id, func(t *models.Task) {
		if in.Title != nil {
			t.Title = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			t.Description = *in.Description
		}
		if in.Priority != nil {
			t.Priority = *in.Priority
		}
		if in.Assignee != nil {
			t.Assignee = *in.Assignee
		}
		if in.DueDate != nil {
			t.DueDate = *in.DueDate
		}
	})
	t, _ := s.store.Tasks.Get(id)
	return t, nil
}

// UpdateStatus moves a task to any of the four lanes. Every known pair is
// allowed, including moves back out of DONE; only unknown statuses are
// rejected.
func (s *taskService) UpdateStatus(p models.Principal, id string, to models.TaskStatus) (models.Task, error) {
	if !isKnownStatus(to) {
		return models.Task{}, ErrInvalidStatus
	}
	if _, err := s.Get(p, id); err != nil {
		return models.Task{}, err
	}
	s.store.Tasks.Update(id, func(t *models.Task) {
		t.Status = to
	})
	t, _ := s.store.Tasks.Get(id)
	return t, nil
}

// Board groups the principal's visible tasks into the four fixed lanes.
// Lane counts are derived from the grouped slices, never stored.
func (s *taskService) Board(p models.Principal) []models.BoardLane {
	visible := s.visibility.VisibleTasks(p)
	lanes := make([]models.BoardLane, 0, len(boardLanes))
	for _, def := range boardLanes {
		lane := models.BoardLane{Status: def.Status, Label: def.Label, Tasks: []models.Task{}}
		for _, t := range visible {
			if t.Status == def.Status {
				lane.Tasks = append(lane.Tasks, t)
			}
		}
		lane.Count = len(lane.Tasks)
		lanes = append(lanes, lane)
	}
	return lanes
}

// PostComment appends to the thread and schedules the counterpart's
// acknowledgment against this task's id. The delayed append resolves the
// id captured here, so it lands on the right thread no matter what the
// caller is looking at when it fires.
func (s *taskService) PostComment(p models.Principal, taskID, text string) (models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return models.Task{}, ErrTextRequired
	}
	if _, err := s.Get(p, taskID); err != nil {
		return models.Task{}, err
	}

	author := p.DisplayName
	if p.IsClient() {
		author = "Client"
	}
	comment := models.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      strings.TrimSpace(text),
		Timestamp: time.Now(),
		IsClient:  p.IsClient(),
	}
	s.store.Tasks.AppendComment(taskID, comment)

	s.scheduleCounterpartReply(taskID, p.IsClient())

	t, _ := s.store.Tasks.Get(taskID)
	return t, nil
}

func (s *taskService) scheduleCounterpartReply(taskID string, fromClient bool) {
	if s.scheduler == nil || s.replyDelay <= 0 {
		return
	}
	reply := models.Comment{
		Author:   "Client",
		Text:     "Looks good, thank you!",
		IsClient: true,
	}
	if fromClient {
		reply = models.Comment{
			Author: "Alex Mitchell",
			Text:   "Thanks for the feedback, we're on it.",
		}
	}
	s.scheduler.After(taskID, s.replyDelay, func(id string) {
		reply.ID = uuid.NewString()
		reply.Timestamp = time.Now()
		// No-op if the task is gone by the time the timer fires.
		s.store.Tasks.AppendComment(id, reply)
	})
}
