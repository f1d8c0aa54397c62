package http

import (
	"net/http"

	"patient-registry/internal/delivery/http/handler"
	"patient-registry/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	corsMiddleware    *middleware.CORSMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		corsMiddleware:    corsMiddleware,
		metricsMiddleware: metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Service routes
	r.router.HandleFunc("/about", r.about).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Patient record routes
	r.router.HandleFunc("/view", r.patientHandler.ViewPatients).Methods(http.MethodGet)
	r.router.HandleFunc("/sort", r.patientHandler.SortPatients).Methods(http.MethodGet)
	r.router.HandleFunc("/patient/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	r.router.HandleFunc("/create", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	r.router.HandleFunc("/edit/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	r.router.HandleFunc("/delete/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) about(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Fully functional API to manage your patient records"}`))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
