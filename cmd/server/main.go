package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"barberlink-backend/internal/config"
	"barberlink-backend/internal/db"
	"barberlink-backend/internal/handler"
	"barberlink-backend/internal/repository"
	"barberlink-backend/internal/server"
	"barberlink-backend/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	// repositories
	appointmentRepo := repository.AppointmentRepository{DB: pg}
	transactionRepo := repository.TransactionRepository{DB: pg}
	customerRepo := repository.CustomerRepository{DB: pg}
	bookingLinkRepo := repository.BookingLinkRepository{DB: pg}
	notificationRepo := repository.NotificationRepository{DB: pg}
	themeRepo := repository.ThemeRepository{DB: pg}

	// services
	reportSvc := service.ReportService{
		Appointments: appointmentRepo,
		Transactions: transactionRepo,
		Logger:       logger,
		Timeout:      cfg.ReportTimeout,
	}

	// handlers
	healthHandler := handler.HealthHandler{DB: pg}
	reportHandler := handler.ReportHandler{Service: reportSvc}
	appointmentHandler := handler.AppointmentHandler{Repo: appointmentRepo}
	transactionHandler := handler.TransactionHandler{Repo: transactionRepo, Appointments: appointmentRepo}
	customerHandler := handler.CustomerHandler{Repo: customerRepo}
	bookingLinkHandler := handler.BookingLinkHandler{Repo: bookingLinkRepo, PublicBaseURL: cfg.PublicBaseURL}
	notificationHandler := handler.NotificationHandler{Repo: notificationRepo}
	themeHandler := handler.ThemeHandler{Repo: themeRepo}

	router := server.NewRouter(cfg, logger, healthHandler, reportHandler, appointmentHandler, transactionHandler, customerHandler, bookingLinkHandler, notificationHandler, themeHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
