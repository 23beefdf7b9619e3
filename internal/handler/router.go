package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/dangerclosesec/roofdesk/internal/auth"
	"github.com/dangerclosesec/roofdesk/internal/middleware"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the use cases the HTTP layer talks to.
type Services struct {
	Auth          *service.AuthService
	Organizations *service.OrganizationService
	Departments   *service.DepartmentService
	Users         *service.UserService
	Reports       *service.ReportService
	Quotes        *service.QuoteService
	Admin         *service.AdminService
	Dashboard     *service.DashboardService
	Mail          *service.MailService
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter mounts every route. authenticator resolves bearer tokens for the
// protected groups.
func NewRouter(svc Services, authenticator auth.Authenticator, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	authHandler := NewAuthHandler(svc.Auth)
	dashboardHandler := NewDashboardHandler(svc.Dashboard)
	orgHandler := NewOrganizationHandler(svc.Organizations, svc.Departments)
	userHandler := NewUserHandler(svc.Users)
	reportHandler := NewReportHandler(svc.Reports)
	quoteHandler := NewQuoteHandler(svc.Quotes)
	adminHandler := NewAdminHandler(svc.Admin)
	functionHandler := NewFunctionHandler(svc.Mail)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Metrics())
	r.Use(chimw.Timeout(timeout))
	// Without configured origins the API is same-origin only.
	if origins := opts.AllowedOrigins; len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: !slices.Contains(origins, "*"),
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.LoginHandler)
			r.Post("/logout", authHandler.LogoutHandler)
			r.With(middleware.Authenticate(authenticator)).Get("/me", authHandler.MeHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(authenticator))

			r.Get("/dashboard", dashboardHandler.Summary)

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", orgHandler.List)
				r.Post("/", orgHandler.Create)
				r.Route("/{orgID}", func(r chi.Router) {
					r.Get("/", orgHandler.Get)
					r.Patch("/", orgHandler.Update)
					r.Get("/departments", orgHandler.ListDepartments)
					r.Post("/departments", orgHandler.CreateDepartment)
					r.Get("/departments/{id}", orgHandler.GetDepartment)
					r.Patch("/departments/{id}", orgHandler.UpdateDepartment)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Patch("/{id}", userHandler.Update)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", reportHandler.List)
				r.Post("/", reportHandler.Create)
				r.Get("/{id}", reportHandler.Get)
				r.Patch("/{id}", reportHandler.Update)
			})

			r.Route("/quotes", func(r chi.Router) {
				r.Get("/", quoteHandler.List)
				r.Post("/", quoteHandler.Create)
				r.Get("/{id}", quoteHandler.Get)
				r.Patch("/{id}", quoteHandler.Update)
			})

			r.Route("/tokens", func(r chi.Router) {
				r.Get("/", adminHandler.ListTokens)
				r.Post("/", adminHandler.CreateToken)
				r.Delete("/{id}", adminHandler.RevokeToken)
			})

			r.Get("/email-logs", adminHandler.ListEmailLogs)

			r.Route("/functions", func(r chi.Router) {
				r.Post("/send-report-email", functionHandler.SendReportEmail)
				r.Post("/send-quote-email", functionHandler.SendQuoteEmail)
			})
		})
	})

	return r
}
