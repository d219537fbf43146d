package services

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

type InviteMemberInput struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

type TeamService interface {
	List() []models.TeamMember
	Invite(in InviteMemberInput) (models.TeamMember, error)
}

type teamService struct {
	store    *store.Store
	notifier *notify.Notifier
	email    EmailService
}

func NewTeamService(st *store.Store, n *notify.Notifier, email EmailService) TeamService {
	return &teamService{store: st, notifier: n, email: email}
}

// List refreshes ActiveTasks from the live board before returning, so the
// counter is derived, not maintained by hand.
func (s *teamService) List() []models.TeamMember {
	members := s.store.Team.All()
	tasks := s.store.Tasks.All()
	for i := range members {
		count := 0
		for _, t := range tasks {
			if t.Assignee == members[i].Name && t.Status != models.StatusDone {
				count++
			}
		}
		members[i].ActiveTasks = count
	}
	return members
}

func (s *teamService) Invite(in InviteMemberInput) (models.TeamMember, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.TeamMember{}, ErrNameRequired
	}
	member := models.TeamMember{
		ID:     uuid.NewString(),
		Name:   name,
		Role:   in.Role,
		Email:  in.Email,
		Avatar: fmt.Sprintf("https://ui-avatars.com/api/?name=%s", url.QueryEscape(name)),
	}
	s.store.Team.Create(member)

	if member.Email != "" {
		if err := s.email.SendWelcomeEmail(member.Email, "Nexus Agency"); err != nil {
			log.Printf("[team][invite][warn] welcome email %s: %v", member.Email, err)
		}
	}
	s.notifier.Success("Invitation sent to " + name)
	return member, nil
}
