package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"agencyhub/internal/config"
	"agencyhub/internal/handlers"
	"agencyhub/internal/notify"
	"agencyhub/internal/pdf"
	"agencyhub/internal/routes"
	"agencyhub/internal/schedule"
	"agencyhub/internal/services"
	"agencyhub/internal/session"
	"agencyhub/internal/store"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "agencyhub/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === State ===
	st := store.New()
	sessions, err := session.NewFileStore(cfg.Session.Dir)
	if err != nil {
		log.Fatal("session store: ", err)
	}
	scheduler := schedule.New()

	// === Notifier (with optional ops-chat sink) ===
	var sinks []notify.Sink
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		sink, err := notify.NewTelegramSink(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("[app][warn] telegram sink disabled: %v", err)
		} else {
			sinks = append(sinks, sink)
		}
	}
	notifier := notify.New(time.Duration(cfg.Notifications.TTLMillis)*time.Millisecond, sinks...)

	// === Services ===
	secret := []byte(cfg.Auth.Secret)
	replyDelay := time.Duration(cfg.Messaging.AutoReplyDelayMillis) * time.Millisecond

	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	visibility := services.NewVisibilityService(st)
	authService := services.NewAuthService(st, sessions, secret, time.Duration(cfg.Auth.TTLHours)*time.Hour)
	taskService := services.NewTaskService(st, visibility, notifier, scheduler, replyDelay)
	clientService := services.NewClientService(st, notifier)
	invoiceService := services.NewInvoiceService(st, visibility, notifier, emailService)
	reportService := services.NewReportService(st, notifier)
	conversationService := services.NewConversationService(st, scheduler, replyDelay)
	teamService := services.NewTeamService(st, notifier, emailService)
	workspaceService := services.NewWorkspaceService(st, notifier)
	calendarService := services.NewCalendarService(taskService, visibility)

	adCopyService, err := services.NewAdCopyService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatal("ad copy service: ", err)
	}

	pdfGen := pdf.NewDocumentGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	clientHandler := handlers.NewClientHandler(clientService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, pdfGen)
	reportHandler := handlers.NewReportHandler(reportService, clientService, pdfGen)
	conversationHandler := handlers.NewConversationHandler(conversationService)
	adCenterHandler := handlers.NewAdCenterHandler(adCopyService)
	assetHandler := handlers.NewAssetHandler(visibility, st)
	teamHandler := handlers.NewTeamHandler(teamService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	notificationHandler := handlers.NewNotificationHandler(notifier)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "tasks": st.Tasks.Count()})
	})

	routes.SetupRoutes(
		router,
		secret,
		authHandler,
		taskHandler,
		clientHandler,
		invoiceHandler,
		reportHandler,
		conversationHandler,
		adCenterHandler,
		assetHandler,
		teamHandler,
		calendarHandler,
		notificationHandler,
		workspaceHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
