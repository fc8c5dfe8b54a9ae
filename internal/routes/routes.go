package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/cache"
	"github.com/northpeaklabs/marketing-ops/internal/config"
	"github.com/northpeaklabs/marketing-ops/internal/handlers"
	infraRepo "github.com/northpeaklabs/marketing-ops/internal/infra/repository"
	"github.com/northpeaklabs/marketing-ops/internal/mailer"
	"github.com/northpeaklabs/marketing-ops/internal/meeting"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/payment/stripe"
	"github.com/northpeaklabs/marketing-ops/internal/storage"
	ucBooking "github.com/northpeaklabs/marketing-ops/internal/usecase/booking"
	ucPayment "github.com/northpeaklabs/marketing-ops/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotCache := cache.New(cfg.RedisURL)
	uploader := storage.NewUploader(cfg)

	stripeClient := stripe.NewClient(cfg.StripeSecretKey)
	meetingGen := meeting.NewGenerator(cfg.BusinessPhone)
	mail := mailer.NewLogMailer()

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	noShowUC := ucBooking.NewMarkNoShow(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — PAYMENTS
	// ======================================================
	createIntentUC := ucPayment.NewCreateIntent(
		paymentRepo,
		stripeClient,
		auditDispatcher,
	)

	paymentProcessor := ucPayment.NewProcessor(
		paymentRepo,
		meetingGen,
		mail,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	leadHandler := handlers.NewLeadHandler(db, auditDispatcher)
	newsletterHandler := handlers.NewNewsletterHandler(db)
	slotHandler := handlers.NewSlotHandler(db, auditDispatcher, slotCache)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		noShowUC,
	)

	paymentHandler := handlers.NewPaymentHandler(createIntentUC, paymentProcessor)
	webhookHandler := handlers.NewWebhookHandler(cfg, paymentProcessor)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	blogPostHandler := handlers.NewBlogPostHandler(db, auditDispatcher)
	caseStudyHandler := handlers.NewCaseStudyHandler(db, auditDispatcher)
	mediaHandler := handlers.NewMediaHandler(db, auditDispatcher, uploader)
	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC SITE
		// ------------------------------
		api.POST("/leads", leadHandler.Create)
		api.POST("/contact", leadHandler.QuickContact)

		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		api.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

		api.GET("/slots", slotHandler.ListAvailable)
		api.POST("/bookings", bookingHandler.Create)

		api.POST("/payments/intent", paymentHandler.CreateIntent)
		api.POST("/payments/confirm", paymentHandler.Confirm)

		api.GET("/services", serviceHandler.ListPublic)
		api.GET("/services/:slug", serviceHandler.GetPublic)
		api.GET("/blog", blogPostHandler.ListPublic)
		api.GET("/blog/:slug", blogPostHandler.GetPublic)
		api.GET("/case-studies", caseStudyHandler.ListPublic)
		api.GET("/case-studies/:slug", caseStudyHandler.GetPublic)
		api.GET("/settings", settingsHandler.Get)

		// ------------------------------
		// PROVIDER WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/stripe", webhookHandler.HandleStripe)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			admin := secured.Group("/admin")
			{
				admin.GET("/leads", leadHandler.List)
				admin.GET("/leads/:id", leadHandler.Get)
				admin.PATCH("/leads/:id", leadHandler.Update)
				admin.PATCH("/leads/:id/status", leadHandler.UpdateStatus)

				admin.GET("/slots", slotHandler.List)
				admin.POST("/slots", slotHandler.Create)
				admin.PATCH("/slots/:id", slotHandler.Update)
				admin.DELETE("/slots/:id", slotHandler.Delete)

				admin.GET("/bookings", bookingHandler.List)
				admin.GET("/bookings/:id", bookingHandler.Get)
				admin.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
				admin.PATCH("/bookings/:id/complete", bookingHandler.Complete)
				admin.PATCH("/bookings/:id/no-show", bookingHandler.NoShow)

				admin.GET("/services", serviceHandler.ListPublic)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/blog", blogPostHandler.List)
				admin.POST("/blog", blogPostHandler.Create)
				admin.PATCH("/blog/:id", blogPostHandler.Update)
				admin.DELETE("/blog/:id", blogPostHandler.Delete)

				admin.GET("/case-studies", caseStudyHandler.List)
				admin.POST("/case-studies", caseStudyHandler.Create)
				admin.PATCH("/case-studies/:id", caseStudyHandler.Update)
				admin.DELETE("/case-studies/:id", caseStudyHandler.Delete)

				admin.GET("/media", mediaHandler.List)
				admin.POST("/media", mediaHandler.Upload)

				admin.PATCH("/settings", settingsHandler.Update)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
