package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	generate_dashboard "attendance-dashboard/http-server/generate-report/generate-dashboard"
	generate_excel "attendance-dashboard/http-server/generate-report/generate-excel"
	"attendance-dashboard/http-server/health"
	"attendance-dashboard/internal/config"
	"attendance-dashboard/internal/middleware/auth"
)

func routes(cfg config.Config, log *slog.Logger, dashboardService generate_dashboard.DashboardGenerator, templateService generate_excel.TemplateGenerator) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", health.Health())

	router.Get("/api/download-template", generate_excel.DownloadTemplate(log, templateService))

	router.Post("/api/generate-dashboard", generate_dashboard.GenerateDashboard(log, dashboardService, cfg.MaxBodyBytes))

	// manual smoke test with the built-in payload
	router.With(auth.BasicAuth(cfg.SmokeLogin, cfg.SmokePass)).
		Get("/api/generate-dashboard/test", generate_dashboard.GenerateDashboardSmoke(log, dashboardService))

	return router
}
