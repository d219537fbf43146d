package services

import (
	"time"

	"agencyhub/internal/models"
)

// CalendarDay is one date cell with the tasks due on it.
type CalendarDay struct {
	Date  string        `json:"date"` // YYYY-MM-DD
	Tasks []models.Task `json:"tasks"`
}

type CreateEventInput struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// CalendarService projects the visible tasks onto a month grid. Events
// created here are ordinary tasks bound to the shared "General" bucket.
type CalendarService interface {
	Month(p models.Principal, year int, month time.Month) []CalendarDay
	CreateEvent(p models.Principal, in CreateEventInput) (models.Task, error)
}

type calendarService struct {
	tasks      TaskService
	visibility VisibilityService
}

func NewCalendarService(tasks TaskService, vis VisibilityService) CalendarService {
	return &calendarService{tasks: tasks, visibility: vis}
}

func (s *calendarService) Month(p models.Principal, year int, month time.Month) []CalendarDay {
	byDate := map[string][]models.Task{}
	for _, t := range s.visibility.VisibleTasks(p) {
		if t.DueDate.Year() == year && t.DueDate.Month() == month {
			key := t.DueDate.Format("2006-01-02")
			byDate[key] = append(byDate[key], t)
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		day := CalendarDay{Date: key, Tasks: byDate[key]}
		if day.Tasks == nil {
			day.Tasks = []models.Task{}
		}
		days = append(days, day)
	}
	return days
}

func (s *calendarService) CreateEvent(p models.Principal, in CreateEventInput) (models.Task, error) {
	due := in.Date
	if due.IsZero() {
		due = time.Now()
	}
	return s.tasks.CreateIssue(p, CreateIssueInput{
		Title:      in.Title,
		ClientName: "General",
		Priority:   models.PriorityLow,
		DueDate:    &due,
	})
}
