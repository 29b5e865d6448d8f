package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beleza-studio/internal/handlers"
	"github.com/BruksfildServices01/beleza-studio/internal/metrics"
	"github.com/BruksfildServices01/beleza-studio/internal/middleware"
)

type Handlers struct {
	Catalog    *handlers.CatalogHandler
	Booking    *handlers.BookingHandler
	Dashboard  *handlers.DashboardHandler
	Schedule   *handlers.ScheduleHandler
	Specialist *handlers.SpecialistHandler
	Auth       *handlers.AuthHandler
	AuditLogs  *handlers.AuditLogsHandler
}

type Options struct {
	JWTSecret       string
	CORSOrigins     []string
	RateLimitPerMin int

	Log      *zap.Logger
	Metrics  *metrics.BookingMetrics
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(r *gin.Engine, h Handlers, opts Options) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(opts.Log, opts.Metrics))
	r.Use(middleware.CORSMiddleware(opts.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	limiter := middleware.NewRateLimiter(opts.RateLimitPerMin, opts.Log)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(limiter.Middleware())
		{
			publicAPI.GET("/services", h.Catalog.ListServices)
			publicAPI.GET("/categories", h.Catalog.ListCategories)
			publicAPI.GET("/services/:id/specialists", h.Catalog.EligibleSpecialists)
			publicAPI.GET("/specialists/:id/slots", h.Catalog.Slots)
			publicAPI.GET("/avatars/:id", h.Specialist.ServeAvatar)

			// assistente de agendamento
			sessions := publicAPI.Group("/sessions")
			{
				sessions.POST("", h.Booking.Start)
				sessions.GET("/:sid", h.Booking.Get)
				sessions.PATCH("/:sid/draft", h.Booking.UpdateDraft)
				sessions.PATCH("/:sid/customer", h.Booking.UpdateCustomer)
				sessions.POST("/:sid/next", h.Booking.Next)
				sessions.POST("/:sid/prev", h.Booking.Prev)
				sessions.POST("/:sid/step/:n", h.Booking.GoTo)
				sessions.POST("/:sid/finalize", h.Booking.Finalize)
				sessions.POST("/:sid/payment/complete", h.Booking.CompletePayment)
				sessions.DELETE("/:sid/payment", h.Booking.LeavePayment)
				sessions.POST("/:sid/reset", h.Booking.Reset)
			}
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(limiter.Middleware())
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
		}

		// ------------------------------
		// 🔐 API PRIVADA (painel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(opts.JWTSecret))
		{
			secured.GET("/me", h.Auth.Me)

			// APPOINTMENTS
			secured.GET("/me/appointments", h.Dashboard.List)
			secured.PATCH("/me/appointments/:id/confirm", h.Dashboard.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", h.Dashboard.Cancel)
			secured.GET("/me/stats/specialists", h.Dashboard.SpecialistStats)
			secured.GET("/me/dashboard/stream", h.Dashboard.Stream)

			// SCHEDULES
			secured.GET("/me/schedules", h.Schedule.Week)
			secured.PUT("/me/schedules/:specialist/:day", h.Schedule.ReplaceDay)
			secured.POST("/me/schedules/:specialist/:day/toggle", h.Schedule.ToggleSlot)

			// SPECIALISTS
			secured.GET("/me/specialists", h.Specialist.List)
			secured.POST("/me/specialists", h.Specialist.Create)
			secured.PATCH("/me/specialists/:id", h.Specialist.Update)
			secured.DELETE("/me/specialists/:id", h.Specialist.Delete)
			secured.PUT("/me/specialists/:id/avatar", h.Specialist.UploadAvatar)

			secured.GET("/me/audit-logs", h.AuditLogs.List)
		}
	}
}
