package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/itsatony/w4b_v3/server/stockkarte/api/resources"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
	"golang.org/x/text/language"
)

// Router serves the inspection API. It is an http.Handler to be mounted by
// the embedding platform and never listens by itself.
type Router struct {
	router    *mux.Router
	handler   http.Handler
	resources *resources.Resources
}

// NewRouter builds the routes. metrics may be nil, in which case
// /api/v1/metrics answers 404.
func NewRouter(svc *hubservice.HubService, metrics http.Handler, displayLang language.Tag) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc, displayLang),
	}
	if metrics != nil {
		r.resources.SetMetrics(metrics.ServeHTTP)
	}

	r.setupRoutes()
	r.handler = handlers.CompressHandler(
		handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(r.router),
	)
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)
	api.HandleFunc("/metrics", r.resources.Metrics).Methods(http.MethodGet)

	// Hive-scoped inspections
	hives := api.PathPrefix("/hives/{hiveId}").Subrouter()
	hives.HandleFunc("/inspections", r.resources.Hives.ListInspections).Methods(http.MethodGet)
	hives.HandleFunc("/inspections", r.resources.Hives.CreateInspection).Methods(http.MethodPost)
	hives.HandleFunc("/inspections", r.resources.Hives.DeleteInspections).Methods(http.MethodDelete)
	hives.HandleFunc("/inspections/latest", r.resources.Hives.LatestInspection).Methods(http.MethodGet)
	hives.HandleFunc("/status", r.resources.Hives.GetHiveStatus).Methods(http.MethodGet)

	// Single inspections
	inspections := api.PathPrefix("/inspections").Subrouter()
	inspections.HandleFunc("/{id}", r.resources.Inspections.GetInspection).Methods(http.MethodGet)
	inspections.HandleFunc("/{id}", r.resources.Inspections.DeleteInspection).Methods(http.MethodDelete)
	inspections.HandleFunc("/{id}/display", r.resources.Inspections.DisplayInspection).Methods(http.MethodGet)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	nuts.L.Errorf("[API] Recovered from panic: %s", fmt.Sprint(v...))
}
