// Package store holds the authoritative in-memory collections. Nothing in
// here performs I/O; every collection is rebuilt from the seed on startup
// and mutated only through the typed store interfaces.
package store

// Store aggregates the entity collections threaded through the services.
type Store struct {
	Tasks         TaskStore
	Clients       ClientStore
	Invoices      InvoiceStore
	Assets        AssetStore
	Conversations ConversationStore
	Team          TeamStore
	Users         UserStore
	Workspace     WorkspaceStore
}

// New returns a store populated with the demo dataset.
func New() *Store {
	return &Store{
		Tasks:         NewTaskStore(seedTasks()),
		Clients:       NewClientStore(seedClients()),
		Invoices:      NewInvoiceStore(seedInvoices()),
		Assets:        NewAssetStore(seedAssets()),
		Conversations: NewConversationStore(seedConversations()),
		Team:          NewTeamStore(seedTeam()),
		Users:         NewUserStore(seedUsers()),
		Workspace:     NewWorkspaceStore(seedOnboarding(), seedApprovals(), seedResources()),
	}
}
