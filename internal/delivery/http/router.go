package http

import (
	"net/http"

	"github.com/laudohub/laudohub-api/internal/delivery/http/handler"
	"github.com/laudohub/laudohub-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	templateHandler    *handler.TemplateHandler
	reportHandler      *handler.ReportHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	planHandler        *handler.PlanHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	templateHandler *handler.TemplateHandler,
	reportHandler *handler.ReportHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	planHandler *handler.PlanHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		templateHandler:    templateHandler,
		reportHandler:      reportHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		planHandler:        planHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Payment webhook (public, called by the checkout provider)
	api.HandleFunc("/payments/webhook", r.reportHandler.Webhook).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentProfessional).Methods(http.MethodGet)

	// All remaining routes require an authenticated professional
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Report templates (read-only catalog)
	protected.HandleFunc("/templates", r.templateHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/templates/{id}", r.templateHandler.Get).Methods(http.MethodGet)

	// Reports
	protected.HandleFunc("/reports", r.reportHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/reports", r.reportHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/reports/{id}", r.reportHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/reports/{id}/download", r.reportHandler.Download).Methods(http.MethodGet)
	protected.HandleFunc("/reports/{id}/collect", r.reportHandler.Collect).Methods(http.MethodPost)

	// Appointments and calendar
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id}/remind", r.appointmentHandler.Remind).Methods(http.MethodPost)
	protected.HandleFunc("/calendar", r.appointmentHandler.Calendar).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/slots", r.appointmentHandler.Slots).Methods(http.MethodGet)

	// Dashboard
	protected.HandleFunc("/dashboard/stats", r.dashboardHandler.Stats).Methods(http.MethodGet)

	// Subscription plans
	protected.HandleFunc("/plans", r.planHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
