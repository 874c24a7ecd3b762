package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/inbox-crm/internal/ai"
	"github.com/xavierca1/inbox-crm/internal/auth"
	"github.com/xavierca1/inbox-crm/internal/config"
	"github.com/xavierca1/inbox-crm/internal/entity"
	"github.com/xavierca1/inbox-crm/internal/infra/database"
	"github.com/xavierca1/inbox-crm/internal/infra/http/handlers"
	"github.com/xavierca1/inbox-crm/internal/infra/http/middleware"
	"github.com/xavierca1/inbox-crm/internal/infra/imap"
	"github.com/xavierca1/inbox-crm/internal/infra/mail"
	"github.com/xavierca1/inbox-crm/internal/infra/queue"
	"github.com/xavierca1/inbox-crm/internal/infra/worker"
	"github.com/xavierca1/inbox-crm/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories
	contactRepo := database.NewContactRepository(db)
	enquiryRepo := database.NewEnquiryRepository(db)
	ticketRepo := database.NewTicketRepository(db)
	userRepo := database.NewUserRepository(db)
	statsRepo := database.NewStatsRepository(db)
	txManager := database.NewSQLTxManager(db)

	// Processing core
	classifier := ai.NewDefaultClassifier()
	scorer := ai.NewScorer()
	drafter := ai.NewDrafter(rand.NewSource(time.Now().UnixNano()), cfg.SignatureTeam, cfg.SignatureOrg)

	// Queue producer + outbound worker
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	if cfg.SMTPConfigured() {
		sender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName)
		replyWorker := queue.NewWorker(rabbitMQ.Ch, sender, logger)
		go func() {
			if err := replyWorker.Start(queue.QueueName); err != nil {
				logger.Error("reply worker failed", "error", err)
			}
		}()
	} else {
		logger.Warn("SMTP not configured, replies stay in the queue")
	}

	// Use cases
	resolver := usecase.NewResolver()
	processUC := usecase.NewProcessEmailUseCase(txManager, resolver, classifier, scorer, drafter, logger)
	replyEnquiryUC := usecase.NewReplyEnquiryUseCase(enquiryRepo, contactRepo, producer, logger)
	enquiryStatusUC := usecase.NewUpdateEnquiryStatusUseCase(enquiryRepo, logger)
	replyTicketUC := usecase.NewReplyTicketUseCase(ticketRepo, producer, logger)
	ticketStatusUC := usecase.NewUpdateTicketStatusUseCase(ticketRepo, logger)

	// Auth
	tokenManager := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTokenTTL)

	// Handlers
	emailHandler := handlers.NewEmailHandler(processUC, classifier, scorer, drafter)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryRepo, replyEnquiryUC, enquiryStatusUC)
	ticketHandler := handlers.NewTicketHandler(ticketRepo, replyTicketUC, ticketStatusUC)
	contactHandler := handlers.NewContactHandler(contactRepo)
	authHandler := handlers.NewAuthHandler(userRepo, tokenManager, logger)
	statsHandler := handlers.NewStatsHandler(statsRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.SMTPHost, cfg.IMAPHost)

	// Background workers
	if cfg.IMAPEnabled && cfg.IMAPConfigured() {
		poller := imap.NewPoller(imap.PollerConfig{
			Host:        cfg.IMAPHost,
			Port:        cfg.IMAPPort,
			Username:    cfg.IMAPUser,
			Password:    cfg.IMAPPass,
			Mailbox:     cfg.IMAPMailbox,
			Interval:    cfg.IMAPPollInterval,
			DialTimeout: cfg.IMAPDialTimeout,
		}, processUC, logger)
		go poller.Start(ctx)
	}

	promotionWorker := worker.NewPromotionWorker(db, logger,
		cfg.PromotionMinResolvedTickets,
		cfg.PromotionMinEnquiries,
		cfg.PromotionMinCustomerAge,
		cfg.PromotionSweepInterval,
	)
	go promotionWorker.Start(ctx)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Public intake and auth
	r.Post("/api/emails/incoming", emailHandler.ProcessEmail)
	r.Post("/api/test/intent", emailHandler.TestIntent)
	r.Post("/api/test/reply", emailHandler.TestReply)
	r.Post("/api/auth/login", authHandler.Login)

	// Dashboards
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticator(tokenManager))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entity.RoleMarketing))
			r.Get("/api/enquiries", enquiryHandler.List)
			r.Get("/api/enquiries/{id}", enquiryHandler.Get)
			r.Post("/api/enquiries/{id}/reply", enquiryHandler.Reply)
			r.Patch("/api/enquiries/{id}/status", enquiryHandler.UpdateStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entity.RoleSupport))
			r.Get("/api/tickets", ticketHandler.List)
			r.Get("/api/tickets/{id}", ticketHandler.Get)
			r.Post("/api/tickets/{id}/reply", ticketHandler.Reply)
			r.Patch("/api/tickets/{id}/status", ticketHandler.UpdateStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entity.RoleMarketing))
			r.Get("/api/contacts", contactHandler.List)
			r.Get("/api/contacts/{id}", contactHandler.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole()) // admin only
			r.Get("/api/stats", statsHandler.Stats)
			r.Post("/api/auth/register", authHandler.Register)
		})
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
