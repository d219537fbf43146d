package store

import (
	"sync"
	"time"

	"agencyhub/internal/models"
)

// TaskStore owns the task collection. All mutation goes through this
// interface under one lock, so a comment append can never clobber a
// concurrent field update. Accessors return copies, never internal slices.
type TaskStore interface {
	All() []models.Task
	Get(id string) (models.Task, bool)
	Create(task models.Task)
	Update(id string, apply func(*models.Task)) bool
	AppendComment(taskID string, c models.Comment) bool
	RenameClient(oldName, newName string) int
	Count() int
}

type taskStore struct {
	mu    sync.RWMutex
	tasks []models.Task
}

func NewTaskStore(seed []models.Task) TaskStore {
	s := &taskStore{}
	for _, t := range seed {
		s.tasks = append(s.tasks, cloneTask(t))
	}
	return s
}

func (s *taskStore) All() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, cloneTask(t))
	}
	return out
}

func (s *taskStore) Get(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return models.Task{}, false
}

// Create appends to the end of the collection. The store accepts any
// well-formed task; title validation is the caller's responsibility.
func (s *taskStore) Create(task models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, cloneTask(task))
}

// Update applies the patch to the task with the given id. A missing id is
// a silent no-op (false), never an error.
func (s *taskStore) Update(id string, apply func(*models.Task)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			apply(&s.tasks[i])
			s.tasks[i].UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// AppendComment extends the comment thread by exactly one element at the
// end. Insertion order is display order; nothing is ever inserted elsewhere.
func (s *taskStore) AppendComment(taskID string, c models.Comment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i].Comments = append(s.tasks[i].Comments, c)
			s.tasks[i].UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// RenameClient cascades a client rename through the denormalized
// client-name column. Returns the number of tasks touched.
func (s *taskStore) RenameClient(oldName, newName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.tasks {
		if s.tasks[i].ClientName == oldName {
			s.tasks[i].ClientName = newName
			n++
		}
	}
	return n
}

func (s *taskStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func cloneTask(t models.Task) models.Task {
	out := t
	out.Comments = make([]models.Comment, len(t.Comments))
	copy(out.Comments, t.Comments)
	return out
}
