package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/cosmoracle/booking-api/internal/config"
	"github.com/cosmoracle/booking-api/internal/handler"
	adminHandler "github.com/cosmoracle/booking-api/internal/handler/admin"
	bookingHandler "github.com/cosmoracle/booking-api/internal/handler/booking"
	notificationHandler "github.com/cosmoracle/booking-api/internal/handler/notification"
	reviewHandler "github.com/cosmoracle/booking-api/internal/handler/review"
	"github.com/cosmoracle/booking-api/internal/middleware"
	"github.com/cosmoracle/booking-api/internal/repository/postgres"
	"github.com/cosmoracle/booking-api/internal/router"
	bookingService "github.com/cosmoracle/booking-api/internal/service/booking"
	notificationService "github.com/cosmoracle/booking-api/internal/service/notification"
	reviewService "github.com/cosmoracle/booking-api/internal/service/review"
	"github.com/cosmoracle/booking-api/internal/storage"
	"github.com/cosmoracle/booking-api/pkg/logger"
	"github.com/cosmoracle/booking-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: "booking-api",
	})

	sentryEnabled := cfg.Monitoring.SentryDSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Monitoring.SentryDSN,
			Environment:      cfg.Monitoring.Environment,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize sentry")
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	store, err := storage.NewDiskStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize screenshot store")
	}

	m := metrics.New("cosmoracle")

	bookingRepo := postgres.NewBookingRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	notificationSvc := notificationService.NewService(cfg.Notification, m, log.Logger)
	bookingSvc := bookingService.NewService(bookingRepo, store, notificationSvc, m, log.Logger)
	reviewSvc := reviewService.NewService(reviewRepo, m, log.Logger)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	r := router.NewRouter(
		handler.NewHandler(db),
		router.Config{
			RateLimit:      rate.Limit(cfg.RateLimit.RPS),
			RateBurst:      cfg.RateLimit.Burst,
			CORSConfig:     corsConfig,
			MetricsPrefix:  "booking_api",
			UploadsDir:     cfg.Storage.Dir,
			UploadsBaseURL: cfg.Storage.BaseURL,
			SentryEnabled:  sentryEnabled,
		},
		bookingHandler.NewHandler(bookingSvc),
		reviewHandler.NewHandler(reviewSvc),
		notificationHandler.NewHandler(notificationSvc),
		adminHandler.NewHandler(bookingSvc, m),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
