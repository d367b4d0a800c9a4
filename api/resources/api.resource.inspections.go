// FilePath: server/stockkarte/api/resources/api.resource.inspections.go
package resources

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
	"golang.org/x/text/language"
)

// InspectionHandlers encapsulates the handlers addressing one inspection by ID
type InspectionHandlers struct {
	hubservice  *hubservice.HubService
	displayLang language.Tag
}

// @Summary Get an inspection by ID
// @Tags inspections
// @Produce json
// @Param id path string true "Inspection ID"
// @Success 200 {object} models.InspectionEntry
// @Failure 404 {object} errors.APIError
// @Router /inspections/{id} [get]
func (h *InspectionHandlers) GetInspection(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	entry, err := h.hubservice.GetInspection(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, entry)
}

// @Summary Delete an inspection
// @Tags inspections
// @Param id path string true "Inspection ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /inspections/{id} [delete]
func (h *InspectionHandlers) DeleteInspection(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	if err := h.hubservice.DeleteInspection(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Display an inspection
// @Description Render an inspection as a text card. The language comes from the lang query parameter, then Accept-Language.
// @Tags inspections
// @Produce plain
// @Param id path string true "Inspection ID"
// @Param lang query string false "BCP 47 language tag, e.g. de"
// @Success 200 {string} string
// @Failure 404 {object} errors.APIError
// @Router /inspections/{id}/display [get]
func (h *InspectionHandlers) DisplayInspection(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	lang, err := h.language(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid language", err).WithRequestID(requestID))
		return
	}

	entry, err := h.hubservice.GetInspection(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(entry.Record.Display(lang)))
}

func (h *InspectionHandlers) language(r *http.Request) (language.Tag, error) {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return language.Parse(lang)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			return tags[0], nil
		}
	}
	return h.displayLang, nil
}
