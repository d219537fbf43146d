package routes

import (
	"github.com/gin-gonic/gin"

	"agencyhub/internal/handlers"
	"agencyhub/internal/middleware"
	"agencyhub/internal/models"
)

func SetupRoutes(
	r *gin.Engine,
	secret []byte,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	clientHandler *handlers.ClientHandler,
	invoiceHandler *handlers.InvoiceHandler,
	reportHandler *handlers.ReportHandler,
	conversationHandler *handlers.ConversationHandler,
	adCenterHandler *handlers.AdCenterHandler,
	assetHandler *handlers.AssetHandler,
	teamHandler *handlers.TeamHandler,
	calendarHandler *handlers.CalendarHandler,
	notificationHandler *handlers.NotificationHandler,
	workspaceHandler *handlers.WorkspaceHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.GET("/session", authHandler.Session)

	// ---- protected
	r.Use(middleware.AuthMiddleware(secret))

	r.POST("/logout", authHandler.Logout)
	r.PUT("/profile", authHandler.UpdateProfile)

	// TASKS / BOARD
	tasks := r.Group("/tasks")
	{
		tasks.GET("/", taskHandler.List)
		tasks.GET("/board", taskHandler.Board)
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.PATCH("/:id/status", taskHandler.UpdateStatus)
		tasks.POST("/:id/comments", taskHandler.PostComment)
	}

	// CLIENTS (agency only)
	clients := r.Group("/clients", middleware.AgencyOnly())
	{
		clients.GET("/", clientHandler.List)
		clients.GET("/:id", clientHandler.Get)
		clients.POST("/", clientHandler.Create)
		clients.PATCH("/:id/name", clientHandler.Rename)
		clients.PATCH("/:id/status", clientHandler.UpdateStatus)
	}

	// INVOICES (mutations are admin-gated)
	invoices := r.Group("/invoices")
	{
		invoices.GET("/", invoiceHandler.List)
		invoices.GET("/summary", invoiceHandler.Summary)
		invoices.GET("/:id/pdf", invoiceHandler.PDF)
		invoices.POST("/", middleware.RequireRoles(models.RoleAgencyAdmin), invoiceHandler.Create)
		invoices.PATCH("/:id/status", middleware.RequireRoles(models.RoleAgencyAdmin), invoiceHandler.UpdateStatus)
		invoices.POST("/:id/issue", middleware.RequireRoles(models.RoleAgencyAdmin), invoiceHandler.Issue)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/:client_id", reportHandler.Report)
		reports.GET("/:client_id/pdf", reportHandler.PDF)
		reports.PUT("/:client_id/weekly", middleware.AgencyOnly(), reportHandler.SaveWeekly)
		reports.POST("/:client_id/sync", middleware.AgencyOnly(), reportHandler.Sync)
	}

	// MESSAGES
	conversations := r.Group("/conversations")
	{
		conversations.GET("/", conversationHandler.List)
		conversations.GET("/:id", conversationHandler.Get)
		conversations.POST("/:id/messages", conversationHandler.Send)
		conversations.POST("/:id/read", conversationHandler.MarkRead)
	}

	// AD CENTER (agency only)
	ads := r.Group("/ads", middleware.AgencyOnly())
	{
		ads.POST("/copy", adCenterHandler.GenerateCopy)
		ads.POST("/strategy", adCenterHandler.GenerateStrategy)
		ads.POST("/analyze", adCenterHandler.Analyze)
	}

	// ASSETS
	assets := r.Group("/assets")
	{
		assets.GET("/", assetHandler.List)
		assets.POST("/", assetHandler.Create)
	}

	// TEAM (agency only)
	team := r.Group("/team", middleware.AgencyOnly())
	{
		team.GET("/", teamHandler.List)
		team.POST("/", teamHandler.Invite)
	}

	// CALENDAR
	calendar := r.Group("/calendar")
	{
		calendar.GET("/", calendarHandler.Month)
		calendar.POST("/events", calendarHandler.CreateEvent)
	}

	// NOTIFICATIONS
	notifications := r.Group("/notifications")
	{
		notifications.GET("/current", notificationHandler.Current)
		notifications.DELETE("/:id", notificationHandler.Dismiss)
	}

	// CLIENT PORTAL
	r.GET("/onboarding", workspaceHandler.OnboardingSteps)
	r.PATCH("/onboarding/:id", workspaceHandler.CompleteStep)
	r.GET("/approvals", workspaceHandler.Approvals)
	r.POST("/approvals/:id/decision", workspaceHandler.Decide)
	r.GET("/resources", workspaceHandler.Resources)

	return r
}
