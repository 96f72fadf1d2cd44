package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/acsolutions-lk/energy-leads-api/internal/config"
	"github.com/acsolutions-lk/energy-leads-api/internal/infra/database"
	"github.com/acsolutions-lk/energy-leads-api/internal/infra/http/handlers"
	appmiddleware "github.com/acsolutions-lk/energy-leads-api/internal/infra/http/middleware"
	"github.com/acsolutions-lk/energy-leads-api/internal/infra/mail"
	"github.com/acsolutions-lk/energy-leads-api/internal/infra/observability"
	"github.com/acsolutions-lk/energy-leads-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		logger.Fatal("schema bootstrap failed", zap.Error(err))
	}
	cancel()

	leadRepo := database.NewLeadRepository(db)

	mailSender := mail.NewEmailSender(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom,
	)

	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, mailSender, cfg.MailTimeout, logger)

	leadHandler := handlers.NewLeadHandler(createLeadUC, leadRepo, logger)
	healthHandler := handlers.NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.RequestID)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/leads", func(r chi.Router) {
		// Public: the calculator posts here.
		r.Post("/", leadHandler.CreateLead)

		// Private: admin/sales surface.
		r.Get("/", leadHandler.ListLeads)
		r.Get("/stats", leadHandler.GetStats)
		r.Get("/{id}", leadHandler.GetLead)
		r.Put("/{id}", leadHandler.UpdateLead)
		r.Delete("/{id}", leadHandler.DeleteLead)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
