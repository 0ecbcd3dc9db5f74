package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/kireinail/skillcheck/internal/api/http"
	auth "github.com/kireinail/skillcheck/internal/auth/middleware"
	"github.com/kireinail/skillcheck/internal/config"
	"github.com/kireinail/skillcheck/internal/csvimport"
	"github.com/kireinail/skillcheck/internal/customer"
	"github.com/kireinail/skillcheck/internal/db"
	"github.com/kireinail/skillcheck/internal/pdf"
	"github.com/kireinail/skillcheck/internal/rbac"
	"github.com/kireinail/skillcheck/internal/report"
	"github.com/kireinail/skillcheck/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := customer.NewSQLStore(dbh)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	builder := report.NewBuilder(store)
	importer := csvimport.New(store, bs)

	var renderer pdf.Renderer
	if cfg.PDFServiceURL != "" {
		renderer = pdf.NewSnapshotClient(cfg.PDFServiceURL)
	}

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh, auth.AdminFallback{
		User:     cfg.AdminUser,
		PassHash: cfg.AdminPassHash,
	}))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("customers:view")).
			Get("/customers", api.ListCustomersHandler(store))
		pr.With(rbac.Require("customers:view")).
			Get("/customers/{customerID}", api.GetCustomerHandler(store))
		pr.With(rbac.Require("customers:view")).
			Get("/customers/{customerID}/checks", api.ListChecksHandler(store))
		pr.With(rbac.Require("customers:view")).
			Post("/customers/{customerID}/notes", api.AddNoteHandler(store))

		pr.With(rbac.Require("report:view")).
			Get("/customers/{customerID}/report", api.CustomerReportHandler(builder))
		pr.With(rbac.Require("report:view")).
			Get("/customers/{customerID}/report/{discipline}", api.DisciplineReportHandler(builder))
		pr.With(rbac.Require("report:view")).
			Get("/customers/{customerID}/report.html", api.ReportHTMLHandler(builder))
		pr.With(rbac.Require("report:view")).
			Get("/customers/{customerID}/report.pdf", api.ReportPDFHandler(builder, renderer))

		pr.With(rbac.Require("csv:import")).
			Post("/import/csv", api.ImportCSVHandler(importer))

		// Admin-only account management
		pr.With(rbac.Require("users:create")).
			Post("/users", api.CreateUserHandler(dbh))
		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
	})

	log.Printf("skillcheck gateway listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
