package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventlane/config"
	_ "eventlane/docs"
	"eventlane/internal/adapters/email"
	"eventlane/internal/adapters/statsclient"
	delivery "eventlane/internal/delivery/http"
	"eventlane/internal/delivery/http/controllers"
	"eventlane/internal/delivery/http/middleware"
	"eventlane/internal/repository/postgres"
	"eventlane/internal/services"
)

// @title EventLane API
// @version 1.0
// @description Event publication, participation, and moderation platform.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger("main-service")

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	requestRepo := postgres.NewRequestRepository(db)
	compilationRepo := postgres.NewCompilationRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	tm := postgres.NewTxManager(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mail.SESRegion,
			AccessKeyID:     cfg.Mail.AccessKeyID,
			SecretAccessKey: cfg.Mail.SecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("init mailer", "err", err)
		os.Exit(1)
	}

	stats := statsclient.New(&http.Client{Timeout: 5 * time.Second}, cfg.StatsServerURL)
	views := services.NewViewCounter(stats, cfg.AppName, logger)

	eventSvc := services.NewEventService(eventRepo, userRepo, categoryRepo, requestRepo,
		views, mailer, tm, logger, cfg.ViewWriteThrough)
	requestSvc := services.NewRequestService(requestRepo, eventRepo, userRepo, tm)
	categorySvc := services.NewCategoryService(categoryRepo, eventRepo)
	userSvc := services.NewUserService(userRepo)
	compilationSvc := services.NewCompilationService(compilationRepo, eventRepo, tm)
	commentSvc := services.NewCommentService(commentRepo, eventRepo, userRepo)

	mux := delivery.NewRouter(delivery.Controllers{
		PublicEvents:  controllers.NewPublicEventController(logger, eventSvc),
		AdminEvents:   controllers.NewAdminEventController(logger, eventSvc),
		PrivateEvents: controllers.NewPrivateEventController(logger, eventSvc),
		Requests:      controllers.NewRequestController(logger, requestSvc),
		Categories:    controllers.NewCategoryController(logger, categorySvc),
		Users:         controllers.NewUserController(logger, userSvc),
		Compilations:  controllers.NewCompilationController(logger, compilationSvc),
		Comments:      controllers.NewCommentController(logger, commentSvc),
	})

	var handler http.Handler = middleware.LoggingMiddleware(logger, mux)
	if len(cfg.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.AllowedOrigins, handler)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
