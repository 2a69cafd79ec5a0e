package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viraj5503/portfolio-api/internal/catalog"
	"github.com/viraj5503/portfolio-api/internal/config"
	"github.com/viraj5503/portfolio-api/internal/handler"
	"github.com/viraj5503/portfolio-api/internal/logging"
	"github.com/viraj5503/portfolio-api/internal/mailer"
	"github.com/viraj5503/portfolio-api/internal/repository"
	"github.com/viraj5503/portfolio-api/internal/service"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	// Static content is validated once here; it cannot fail at request time.
	cat, err := catalog.New()
	if err != nil {
		logging.Fatal("invalid portfolio content", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.Database.URL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	submissionService := service.NewSubmissionService(submissionRepo)
	notifier := mailer.New(cfg.SMTP)

	h := handler.New(submissionRepo, cfg.Server.AllowedOrigin)
	portfolioHandler := handler.NewPortfolioHandler(cat)
	contactHandler := handler.NewContactHandler(submissionService, notifier)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("GET /api/portfolio/personal", portfolioHandler.Personal)
	mux.HandleFunc("GET /api/portfolio/about", portfolioHandler.About)
	mux.HandleFunc("GET /api/portfolio/projects", portfolioHandler.Projects)
	mux.HandleFunc("GET /api/portfolio/projects/{id}", portfolioHandler.Project)
	mux.HandleFunc("GET /api/portfolio/skills", portfolioHandler.Skills)
	mux.HandleFunc("GET /api/portfolio/education", portfolioHandler.Education)
	mux.HandleFunc("GET /api/portfolio/certifications", portfolioHandler.Certifications)
	mux.HandleFunc("GET /api/portfolio/experience", portfolioHandler.Experience)
	mux.HandleFunc("GET /api/portfolio/languages", portfolioHandler.Languages)
	mux.HandleFunc("GET /api/portfolio/achievements", portfolioHandler.Achievements)

	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact/submissions", contactHandler.List)
	mux.HandleFunc("PUT /api/contact/submissions/{id}/status", contactHandler.UpdateStatus)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
