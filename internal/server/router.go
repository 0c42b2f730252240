package server

import (
	"net/http"
	"time"

	"barberlink-backend/internal/config"
	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	health handler.HealthHandler,
	reports handler.ReportHandler,
	appointments handler.AppointmentHandler,
	transactions handler.TransactionHandler,
	customers handler.CustomerHandler,
	bookingLinks handler.BookingLinkHandler,
	notifications handler.NotificationHandler,
	theme handler.ThemeHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())
	bookingLinks.RegisterPublicRoutes(r)

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(cfg.JWTSecret))
		pr.Use(RequireRole(domain.RoleAdmin, domain.RoleBarber))
		reports.RegisterRoutes(pr)
		appointments.RegisterRoutes(pr)
		transactions.RegisterRoutes(pr)
		customers.RegisterRoutes(pr)
		bookingLinks.RegisterRoutes(pr)
		notifications.RegisterRoutes(pr)
		theme.RegisterRoutes(pr)
	})

	return r
}
