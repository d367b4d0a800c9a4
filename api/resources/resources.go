// FilePath: server/stockkarte/api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
	"golang.org/x/text/language"
)

// maxBodyBytes caps an inspection upload. A full card serializes to well under 4 KiB.
const maxBodyBytes = 64 << 10

// Resources holds all HTTP resource handlers
type Resources struct {
	Hives       *HiveHandlers
	Inspections *InspectionHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
	Metrics     func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance. displayLang is used for the
// display endpoint when a request names no language.
func NewResources(svc *hubservice.HubService, displayLang language.Tag) *Resources {
	res := &Resources{
		Hives:       &HiveHandlers{hubservice: svc},
		Inspections: &InspectionHandlers{hubservice: svc, displayLang: displayLang},
	}
	res.HealthCheck = healthCheck(svc)
	res.Metrics = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "metrics are not configured", http.StatusNotFound)
	}
	return res
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// SetMetrics sets the metrics handler
func (r *Resources) SetMetrics(h func(w http.ResponseWriter, r *http.Request)) {
	r.Metrics = h
}

func healthCheck(svc *hubservice.HubService) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Inspections.Ping(r.Context()); err != nil {
			respondWithError(w, errors.FromError(err).WithRequestID(nuts.NID("req", 12)))
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": nuts.GetVersion(),
		})
	}
}

// Helper functions

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	if err.Code >= http.StatusInternalServerError {
		nuts.L.Errorf("[API] %s", err.Error())
	} else {
		nuts.L.Warnf("[API] %s", err.Error())
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
