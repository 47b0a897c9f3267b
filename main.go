package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/regi-nexus/config"
	"github.com/Eursukkul/regi-nexus/internal/handler"
	"github.com/Eursukkul/regi-nexus/internal/metrics"
	"github.com/Eursukkul/regi-nexus/internal/middleware"
	"github.com/Eursukkul/regi-nexus/internal/normalize"
	"github.com/Eursukkul/regi-nexus/internal/repository"
	"github.com/Eursukkul/regi-nexus/internal/service"
	"github.com/Eursukkul/regi-nexus/pkg/database"
	"github.com/Eursukkul/regi-nexus/pkg/logger"
	"github.com/Eursukkul/regi-nexus/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "json").WithError(err).Fatal("failed to load config")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.NewPostgresDB(cfg.DSN(), cfg.Pool())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("failed to get sql.DB")
	}
	defer sqlDB.Close()

	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to RabbitMQ")
		}
		defer p.Close()
		publisher = p
	} else {
		log.Warn("RABBITMQ_URL not set, notifications disabled")
	}

	backend := database.NewGormBackend(db)
	normalizer := normalize.New()

	eventRepo := repository.NewEventRepository(backend, repository.Table{
		Name:        cfg.EventsTable,
		OrderColumn: cfg.EventsOrderColumn,
	}, log)
	attendeeRepo := repository.NewAttendeeRepository(backend, repository.Table{
		Name:        cfg.AttendeesTable,
		OrderColumn: cfg.AttendeesOrderColumn,
	}, log)

	eventSvc := service.NewEventService(eventRepo, normalizer, publisher, service.EventOptions{
		Table:              cfg.EventsTable,
		AllowTableOverride: cfg.AllowTableOverride,
	}, log)
	attendeeSvc := service.NewAttendeeService(attendeeRepo, normalizer, publisher, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.Metrics())
	e.Use(echoMw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(echoMw.BodyLimit(cfg.MaxBodySize))
	e.Use(echoMw.ContextTimeout(cfg.ServerTimeout))

	e.GET("/health", func(c echo.Context) error {
		if err := sqlDB.PingContext(c.Request().Context()); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "regi-nexus"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	handler.NewEventHandler(eventSvc).RegisterRoutes(e)
	handler.NewAttendeeHandler(attendeeSvc).RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.ServerPort).Info("regi-nexus starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
