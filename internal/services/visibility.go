package services

import (
	"agencyhub/internal/authz"
	"agencyhub/internal/models"
	"agencyhub/internal/store"
)

// VisibilityService narrows entity collections to what a principal may
// see. Agency roles see everything; client roles only records whose
// client name matches their company. Filtering is stable: it preserves
// store order and never reorders survivors.
type VisibilityService interface {
	VisibleTasks(p models.Principal) []models.Task
	VisibleInvoices(p models.Principal) []models.Invoice
	VisibleAssets(p models.Principal) []models.Asset
}

type visibilityService struct {
	store *store.Store
}

func NewVisibilityService(st *store.Store) VisibilityService {
	return &visibilityService{store: st}
}

func (s *visibilityService) VisibleTasks(p models.Principal) []models.Task {
	all := s.store.Tasks.All()
	if authz.IsAgency(p.Role) {
		return all
	}
	out := make([]models.Task, 0, len(all))
	for _, t := range all {
		if t.ClientName == p.CompanyName {
			out = append(out, t)
		}
	}
	return out
}

func (s *visibilityService) VisibleInvoices(p models.Principal) []models.Invoice {
	all := s.store.Invoices.All()
	if authz.IsAgency(p.Role) {
		return all
	}
	out := make([]models.Invoice, 0, len(all))
	for _, inv := range all {
		if inv.ClientName == p.CompanyName {
			out = append(out, inv)
		}
	}
	return out
}

func (s *visibilityService) VisibleAssets(p models.Principal) []models.Asset {
	all := s.store.Assets.All()
	if authz.IsAgency(p.Role) {
		return all
	}
	out := make([]models.Asset, 0, len(all))
	for _, a := range all {
		if a.ClientName == p.CompanyName {
			out = append(out, a)
		}
	}
	return out
}
