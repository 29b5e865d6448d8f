package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	"github.com/BruksfildServices01/beleza-studio/internal/avatar"
	"github.com/BruksfildServices01/beleza-studio/internal/config"
	dbpkg "github.com/BruksfildServices01/beleza-studio/internal/db"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/handlers"
	"github.com/BruksfildServices01/beleza-studio/internal/idgen"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
	"github.com/BruksfildServices01/beleza-studio/internal/logger"
	"github.com/BruksfildServices01/beleza-studio/internal/metrics"
	"github.com/BruksfildServices01/beleza-studio/internal/routes"
	"github.com/BruksfildServices01/beleza-studio/internal/timezone"
	ucappt "github.com/BruksfildServices01/beleza-studio/internal/usecase/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/availability"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/booking"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	var db *gorm.DB
	if d, err := dbpkg.NewDB(cfg.DBUrl, log); err == nil {
		db = d
	} else if cfg.StorageDriver == storage.DriverPostgres {
		return err
	} else {
		log.Warn("database unavailable, admin users and audit kept in memory", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.StorageDriver == storage.DriverRedis {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return err
		}
	}

	backing, err := storage.Open(storage.Options{
		Driver: cfg.StorageDriver,
		Dir:    cfg.StorageDir,
		Redis:  rdb,
		DB:     db,
		S3: storage.S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
		},
	})
	if err != nil {
		return err
	}
	log.Info("storage ready", zap.String("driver", cfg.StorageDriver))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBookingMetrics(registry)

	var (
		auditSink audit.Sink
		users     repository.UserRepository
	)
	if db != nil {
		auditSink = audit.NewGormSink(db)
		users = repository.NewUserGormRepository(db)
	} else {
		auditSink = audit.NewMemorySink(1000)
		users = repository.NewUserMemoryRepository()
	}
	dispatcher := audit.NewDispatcher(auditSink, log)
	defer dispatcher.Close()

	// ======================================================
	// 🗄️ STORES
	// ======================================================
	appointments := repository.NewAppointmentStore(backing, log)
	specialists := repository.NewSpecialistStore(backing, idgen.NewSpecialistIDs(), log)
	schedules := repository.NewScheduleStore(backing, log)
	avatars := avatar.NewStore(backing)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	statusDeps := ucappt.Deps{
		Repo:    appointments,
		Audit:   dispatcher,
		Metrics: bookingMetrics,
	}

	eligibleUC := availability.NewEligibleSpecialists(specialists)
	slotsUC := availability.NewAvailableSlots(
		schedules,
		appointments,
		domain.ParseBlockedSlotPolicy(cfg.BlockedSlotPolicy),
		loc,
	)

	wizard := booking.NewWizard(booking.Deps{
		Appointments: appointments,
		Specialists:  specialists,
		Slots:        slotsUC,
		Complete:     ucappt.NewCompletePayment(statusDeps),
		Expire:       ucappt.NewExpireAppointment(statusDeps),
		IDs:          idgen.NewAppointmentIDs(),
		Metrics:      bookingMetrics,
		Log:          log,
	}, booking.Options{
		PaymentWindow: cfg.PaymentWindow(),
		SessionTTL:    cfg.SessionTTL(),
		Location:      loc,
	})
	defer wizard.Close()
	go wizard.RunJanitor(ctx, time.Minute)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(users, cfg.JWTSecret, dispatcher)
	if cfg.IsProduction() {
		authHandler.WithEmailDomainCheck(net.DefaultResolver)
	}

	h := routes.Handlers{
		Catalog: handlers.NewCatalogHandler(eligibleUC, slotsUC, loc),
		Booking: handlers.NewBookingHandler(wizard),
		Dashboard: handlers.NewDashboardHandler(handlers.DashboardDeps{
			List:     ucappt.NewListAppointments(appointments),
			Stats:    ucappt.NewSpecialistStats(appointments, specialists),
			Confirm:  ucappt.NewConfirmAppointment(statusDeps),
			Cancel:   ucappt.NewCancelAppointment(statusDeps),
			Source:   appointments,
			Interval: cfg.DashboardPollInterval(),
			Location: loc,
			Log:      log,
		}),
		Schedule: handlers.NewScheduleHandler(staff.NewSchedules(schedules, specialists, dispatcher)),
		Specialist: handlers.NewSpecialistHandler(
			staff.NewSpecialists(specialists, schedules, avatars, dispatcher),
			avatars,
		),
		Auth:      authHandler,
		AuditLogs: handlers.NewAuditLogsHandler(dispatcher),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, h, routes.Options{
		JWTSecret:       cfg.JWTSecret,
		CORSOrigins:     cfg.AllowedOrigins(),
		RateLimitPerMin: cfg.RateLimitPerMin,
		Log:             log,
		Metrics:         bookingMetrics,
		Gatherer:        registry,
	})

	// ======================================================
	// 🚀 SERVER
	// ======================================================
	// streams SSE terminam quando o shutdown começa
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelBase)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
