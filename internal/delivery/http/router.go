package http

import (
	"net/http"

	"go-healthcare-records/internal/delivery/http/handler"
	"go-healthcare-records/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	prescriptionHandler  *handler.PrescriptionHandler
	appointmentHandler   *handler.AppointmentHandler
	directoryHandler     *handler.DirectoryHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	appointmentHandler *handler.AppointmentHandler,
	directoryHandler *handler.DirectoryHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		medicalRecordHandler: medicalRecordHandler,
		prescriptionHandler:  prescriptionHandler,
		appointmentHandler:   appointmentHandler,
		directoryHandler:     directoryHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)

	// Protected routes (any authenticated role; usecases scope by caller)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/doctors", r.directoryHandler.ListDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs", r.auditLogHandler.ListOwn).Methods(http.MethodGet)

	protected.HandleFunc("/medical-records", r.medicalRecordHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/prescriptions", r.prescriptionHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)

	// Doctor-only routes
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/patients", r.directoryHandler.ListPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/patients", r.authHandler.CreatePatient).Methods(http.MethodPost)
	doctor.HandleFunc("/doctors", r.authHandler.CreateDoctor).Methods(http.MethodPost)

	doctor.HandleFunc("/medical-records", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.Update).Methods(http.MethodPut)
	doctor.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.Delete).Methods(http.MethodDelete)
	doctor.HandleFunc("/medical-records/{id}/test-results", r.medicalRecordHandler.AddTestResult).Methods(http.MethodPost)

	doctor.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Update).Methods(http.MethodPut)
	doctor.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Delete).Methods(http.MethodDelete)

	doctor.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	doctor.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
