// filepath: internal/api/router.go
package api

import (
	"dentahub/internal/api/handlers"
	"dentahub/internal/models"
	"dentahub/internal/services/auth"

	"github.com/gorilla/mux"
)

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware) *mux.Router {
	r := mux.NewRouter()

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")

	// Public Token Endpoints (not protected by AuthMiddleware)
	r.HandleFunc("/api/token", h.GetToken).Methods("POST")
	r.HandleFunc("/api/token/refresh", h.RefreshToken).Methods("POST")

	// Authenticated API Routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(am.AuthMiddleware) // Checks for JWT *or* Basic

	apiRouter.HandleFunc("/logout", h.Logout).Methods("POST")

	addSelfRoutes(apiRouter, h)
	addClinicRoutes(apiRouter, h, am)
	addAdminRoutes(apiRouter, h, am)

	return r
}

// addSelfRoutes configures routes every authenticated account may use.
func addSelfRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/me", h.GetUserMe).Methods("GET")
	r.HandleFunc("/me", h.UpdateUserMe).Methods("PATCH")
	r.HandleFunc("/patient/me", h.GetPatientMe).Methods("GET")
	r.HandleFunc("/services", h.GetServices).Methods("GET")
	r.HandleFunc("/doctors", h.GetDoctors).Methods("GET")
	r.HandleFunc("/doctor/{id:[0-9]+}", h.GetDoctor).Methods("GET")
	r.HandleFunc("/appointments", h.GetAppointments).Methods("GET")
	r.HandleFunc("/appointment/{id:[0-9]+}", h.GetAppointment).Methods("GET")
}

// addClinicRoutes configures routes restricted to clinic staff
// (admins, doctors and receptionists).
func addClinicRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	staffRouter := r.PathPrefix("").Subrouter()
	staffRouter.Use(am.RoleMiddleware(auth.RoleStaff))
	staffRouter.HandleFunc("/patients", h.GetPatients).Methods("GET")
	staffRouter.HandleFunc("/patient/{id:[0-9]+}", h.GetPatient).Methods("GET")
	staffRouter.HandleFunc("/patient/{id:[0-9]+}", h.UpdatePatient).Methods("PUT")
	staffRouter.HandleFunc("/appointment", h.CreateAppointment).Methods("POST")
	staffRouter.HandleFunc("/appointment/{id:[0-9]+}/status", h.UpdateAppointmentStatus).Methods("PATCH")
	staffRouter.HandleFunc("/appointment/{id:[0-9]+}", h.DeleteAppointment).Methods("DELETE")
	staffRouter.HandleFunc("/transaction", h.CreateTransaction).Methods("POST")
	staffRouter.HandleFunc("/transactions", h.GetTransactions).Methods("GET")
	staffRouter.HandleFunc("/transaction/{id:[0-9]+}", h.GetTransaction).Methods("GET")
	staffRouter.HandleFunc("/transaction/{id:[0-9]+}/status", h.UpdateTransactionStatus).Methods("PATCH")
}

// addAdminRoutes configures routes for administrative actions.
func addAdminRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	adminRouter := r.PathPrefix("/admin").Subrouter()
	adminRouter.Use(am.RoleMiddleware(models.RoleAdmin))
	adminRouter.HandleFunc("/users", h.GetUsers).Methods("GET")
	adminRouter.HandleFunc("/user", h.CreateUser).Methods("POST")
	adminRouter.HandleFunc("/user/{id:[0-9]+}", h.UpdateUser).Methods("PATCH")
	adminRouter.HandleFunc("/user/{id:[0-9]+}", h.DeleteUser).Methods("DELETE")
	adminRouter.HandleFunc("/doctor/{id:[0-9]+}", h.UpdateDoctor).Methods("PUT")
	adminRouter.HandleFunc("/stats", h.GetStats).Methods("GET")
	adminRouter.HandleFunc("/search", h.Search).Methods("GET")
	adminRouter.HandleFunc("/activity", h.GetActivities).Methods("GET")
	adminRouter.HandleFunc("/backup", h.CreateBackup).Methods("POST")
	adminRouter.HandleFunc("/backups", h.GetBackups).Methods("GET")
	adminRouter.HandleFunc("/backup/restore", h.RestoreBackup).Methods("POST")
	adminRouter.HandleFunc("/maintenance", h.TriggerMaintenance).Methods("POST")
}
