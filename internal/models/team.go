package models

// TeamMember is an agency staff record. Assignment on tasks is by display
// name; ActiveTasks is a derived count maintained by the team service.
type TeamMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	ActiveTasks int    `json:"active_tasks"`
}
