package store

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"agencyhub/internal/models"
)

// Demo credentials for the two seeded personas.
const (
	DemoAgencyEmail    = "alex@nexusagency.com"
	DemoAgencyPassword = "nexus2024"
	DemoClientEmail    = "sarah@acme.com"
	DemoClientPassword = "acme2024"
)

func mustHash(plain string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[seed] hash password: %v", err)
	}
	return string(h)
}

func seedUsers() []models.UserProfile {
	return []models.UserProfile{
		{
			ID:           "u1",
			AgencyName:   "Nexus Agency",
			UserName:     "Alex Mitchell",
			Email:        DemoAgencyEmail,
			AvatarURL:    "https://ui-avatars.com/api/?name=Alex+Mitchell&background=6366f1&color=fff",
			Role:         models.RoleAgencyAdmin,
			PasswordHash: mustHash(DemoAgencyPassword),
			Notifications: models.NotificationPrefs{
				Email: true,
				Push:  true,
			},
		},
		{
			ID:           "u2",
			AgencyName:   "Acme Corp",
			UserName:     "Sarah Miller",
			Email:        DemoClientEmail,
			AvatarURL:    "https://ui-avatars.com/api/?name=Sarah+Miller&background=10b981&color=fff",
			Role:         models.RoleClient,
			CompanyName:  "Acme Corp",
			PasswordHash: mustHash(DemoClientPassword),
			Notifications: models.NotificationPrefs{
				Email: true,
			},
		},
	}
}

func seedClients() []models.Client {
	now := time.Now()
	return []models.Client{
		{ID: "1", Name: "Acme Corp", Contact: "Sarah Miller", Email: "sarah@acme.com", Status: models.ClientActive, ImageURL: "https://picsum.photos/200?random=1", Spend: 12400, Campaigns: 4, LastContact: "2 days ago", Health: 92, Industry: "Retail", Location: "New York, USA", OnboardingProgress: 100, CreatedAt: now.AddDate(0, -8, 0)},
		{ID: "2", Name: "TechStart Inc", Contact: "Mike Ross", Email: "m.ross@techstart.io", Status: models.ClientOnboarding, ImageURL: "https://picsum.photos/200?random=2", Spend: 0, Campaigns: 0, LastContact: "Yesterday", Health: 100, Industry: "SaaS", Location: "San Francisco, USA", OnboardingProgress: 40, CreatedAt: now.AddDate(0, -1, 0)},
		{ID: "3", Name: "FashionNova", Contact: "Jessica Lee", Email: "jess@fashionnova.com", Status: models.ClientActive, ImageURL: "https://picsum.photos/200?random=3", Spend: 45200, Campaigns: 12, LastContact: "1 week ago", Health: 78, Industry: "E-commerce", Location: "Los Angeles, USA", OnboardingProgress: 100, CreatedAt: now.AddDate(-1, 0, 0)},
	}
}

func seedTasks() []models.Task {
	now := time.Now()
	return []models.Task{
		{
			ID: "1", Title: "Review Q3 Strategy",
			Description: "Finalize budget allocation for upcoming quarter.",
			Status:      models.StatusInProgress, Priority: models.PriorityHigh,
			Assignee: "Mike Ross", ClientName: "TechStart Inc",
			DueDate: now, CreatedAt: now.AddDate(0, 0, -5), UpdatedAt: now,
		},
		{
			ID: "2", Title: "FB Ad Creatives",
			Description: "Design 3 variations for the summer sale.",
			Status:      models.StatusTodo, Priority: models.PriorityMedium,
			Assignee: "Jessica Lee", ClientName: "Acme Corp",
			DueDate: now.Add(48 * time.Hour), CreatedAt: now.AddDate(0, 0, -2), UpdatedAt: now,
			Comments: []models.Comment{
				{ID: "c1", Author: "Sarah Miller (Client)", Text: "Can we use the blue brand color?", Timestamp: now.Add(-2 * time.Hour), IsClient: true},
				{ID: "c2", Author: "Alex Mitchell", Text: "Sure, updating the palette now.", Timestamp: now.Add(-1 * time.Hour)},
			},
		},
		{
			ID: "3", Title: "Setup Google Conversion Tracking",
			Description: "Ensure pixels are firing correctly on checkout.",
			Status:      models.StatusDone, Priority: models.PriorityHigh,
			Assignee: "Tech Team", ClientName: "EcoFoods",
			DueDate: now, CreatedAt: now.AddDate(0, 0, -10), UpdatedAt: now,
		},
	}
}

func seedInvoices() []models.Invoice {
	now := time.Now()
	return []models.Invoice{
		{
			ID: "INV-3021", ClientName: "Acme Corp",
			Items:       []models.InvoiceItem{{Description: "Q3 Retainer", Amount: 4500}},
			TotalAmount: 4500, Status: models.InvoicePaid,
			DateIssued: now.AddDate(0, 0, -10), DueDate: now.AddDate(0, 0, -3),
		},
		{
			ID: "INV-3022", ClientName: "TechStart Inc",
			Items:       []models.InvoiceItem{{Description: "Ad Spend Management", Amount: 1200}},
			TotalAmount: 1200, Status: models.InvoicePending,
			DateIssued: now.AddDate(0, 0, -2), DueDate: now.AddDate(0, 0, 12),
		},
	}
}

func seedAssets() []models.Asset {
	now := time.Now()
	return []models.Asset{
		{ID: "1", Name: "Summer_Campaign_Banner_v2.jpg", Type: models.AssetImage, URL: "https://picsum.photos/id/20/800/600", Size: "2.4 MB", Dimension: "1920x1080", UploadDate: now.AddDate(0, 0, -1), ClientName: "Acme Corp", UploadedBy: "Alex Mitchell"},
		{ID: "2", Name: "Product_Demo_Final_Cut.mp4", Type: models.AssetVideo, Size: "145 MB", UploadDate: now.AddDate(0, 0, -2), ClientName: "TechStart Inc", UploadedBy: "Sarah Johnson"},
		{ID: "3", Name: "Q3_Brand_Guidelines.pdf", Type: models.AssetDocument, Size: "4.2 MB", UploadDate: now.AddDate(0, 0, -3), ClientName: "FashionNova", UploadedBy: "Alex Mitchell"},
	}
}

func seedConversations() []models.Conversation {
	now := time.Now()
	return []models.Conversation{
		{
			ID: "c1", ClientName: "Sarah Miller (Acme Corp)",
			Avatar:      "https://picsum.photos/200?random=1",
			LastMessage: "Looks great, lets launch!",
			UnreadCount: 2, IsOnline: true,
			Messages: []models.Message{
				{ID: "m1", Sender: models.SenderThem, Text: "Hi Alex, have you seen the latest draft?", Timestamp: now.Add(-time.Hour)},
				{ID: "m2", Sender: models.SenderMe, Text: "Yes, reviewing it now.", Timestamp: now.Add(-58 * time.Minute)},
				{ID: "m3", Sender: models.SenderThem, Text: "Looks great, lets launch!", Timestamp: now},
			},
		},
	}
}

func seedTeam() []models.TeamMember {
	return []models.TeamMember{
		{ID: "1", Name: "Alex Mitchell", Role: "Owner / Admin", Email: "alex@nexusagency.com", Avatar: "https://ui-avatars.com/api/?name=Alex+Mitchell&background=6366f1&color=fff", ActiveTasks: 3},
		{ID: "2", Name: "Sarah Johnson", Role: "Creative Director", Email: "sarah.j@nexusagency.com", Avatar: "https://ui-avatars.com/api/?name=Sarah+Johnson&background=10b981&color=fff", ActiveTasks: 5},
	}
}

func seedOnboarding() []models.OnboardingStep {
	return []models.OnboardingStep{
		{ID: "ob1", Title: "Welcome Video", Description: "Watch the 5-minute intro to how we work together.", Type: "video", Completed: true},
		{ID: "ob2", Title: "Brand Questionnaire", Description: "Tell us about your voice, audience and goals.", Type: "form", Completed: true},
		{ID: "ob3", Title: "Upload Brand Assets", Description: "Logos, fonts and any existing creative.", Type: "upload"},
		{ID: "ob4", Title: "Grant Ad Account Access", Description: "Connect your Facebook and Google ad accounts.", Type: "access"},
		{ID: "ob5", Title: "Sign Service Agreement", Description: "Review and sign the engagement contract.", Type: "legal"},
		{ID: "ob6", Title: "Set Up Billing", Description: "Add a payment method for the monthly retainer.", Type: "payment"},
	}
}

func seedApprovals() []models.ApprovalItem {
	now := time.Now()
	return []models.ApprovalItem{
		{ID: "ap1", Title: "Summer Sale Hero Banner", Type: "Creative", ContentURL: "https://picsum.photos/seed/ap1/800/450", Status: models.ApprovalPending, Version: 2, DateSubmitted: now.AddDate(0, 0, -1)},
		{ID: "ap2", Title: "Retargeting Ad Copy", Type: "Copy", ContentText: "Still thinking it over? Your cart misses you.", Status: models.ApprovalApproved, Version: 1, DateSubmitted: now.AddDate(0, 0, -4)},
	}
}

func seedResources() []models.Resource {
	return []models.Resource{
		{ID: "r1", Title: "How To Read Your Weekly Report", Category: "Training", Type: "video", URL: "https://example.com/resources/weekly-report"},
		{ID: "r2", Title: "UGC Creator Brief Template", Category: "Script", Type: "pdf", URL: "https://example.com/resources/ugc-brief"},
		{ID: "r3", Title: "Landing Page Checklist", Category: "Guide", Type: "link", URL: "https://example.com/resources/lp-checklist"},
	}
}
