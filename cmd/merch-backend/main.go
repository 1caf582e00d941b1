package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamerfleet/merch-backend/internal/api/handlers"
	"github.com/gamerfleet/merch-backend/internal/api/middleware"
	"github.com/gamerfleet/merch-backend/internal/config"
	"github.com/gamerfleet/merch-backend/internal/health"
	"github.com/gamerfleet/merch-backend/internal/metrics"
	repository "github.com/gamerfleet/merch-backend/internal/repositories"
	service "github.com/gamerfleet/merch-backend/internal/services"
	"github.com/gamerfleet/merch-backend/internal/telemetry"
	"github.com/gamerfleet/merch-backend/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.InitTracerProvider(context.Background(), "merch-backend", "1.0.0", cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		slog.Error("Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	identityService := service.NewIdentityService(repos.User)
	catalogService := service.NewCatalogService(repos.Product, repos.Review)
	productHandler := handlers.NewProductHandler(catalogService)
	cartService := service.NewCartService(identityService, repos.Cart)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(identityService, repos.Order, emailService)
	orderHandler := handlers.NewOrderHandler(orderService)
	session := middleware.NewSession([]byte(cfg.Session.Secret), cfg.Session.CookieName)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /products/{id}/reviews", productHandler.AddReview())
	routerMux.HandleFunc("GET /api/cart", session.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/cart", session.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/cart/{itemId}", session.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("POST /orders", session.Authenticate(orderHandler.PlaceOrder()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining. Metrics wraps the mux directly so it sees the
	// request the mux stamps the route pattern on.
	var handler http.Handler = metrics.Middleware(routerMux)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "merch-backend")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr), slog.String("baseURL", cfg.Session.BaseURL))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
