// FilePath: server/stockkarte/api/resources/api.resource.hives.go
package resources

import (
	"io"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/forms"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/hubservice"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// HiveHandlers encapsulates the hive-scoped inspection handlers
type HiveHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Record an inspection
// @Description Store an inspection card for a hive. Accepts the serialized JSON document or a form post with dotted field names.
// @Tags inspections
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Success 201 {object} models.InspectionEntry
// @Failure 400 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /hives/{hiveId}/inspections [post]
func (h *HiveHandlers) CreateInspection(w http.ResponseWriter, r *http.Request) {
	hiveID := mux.Vars(r)["hiveId"]
	requestID := nuts.NID("req", 12)

	record, err := readInspection(w, r)
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	entry, err := h.hubservice.RecordInspection(r.Context(), hiveID, record)
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

// @Summary List inspections of a hive
// @Description Get a paginated list of a hive's inspections, newest first
// @Tags inspections
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Param from query string false "Earliest inspection date (YYYY-MM-DD)"
// @Param to query string false "Latest inspection date (YYYY-MM-DD)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} hubservice.InspectionPage
// @Router /hives/{hiveId}/inspections [get]
func (h *HiveHandlers) ListInspections(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	query := r.URL.Query()

	filters, err := forms.DecodeFilters(mux.Vars(r)["hiveId"], query)
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}
	offset, limit := forms.Pagination(query)

	page, err := h.hubservice.ListInspections(r.Context(), filters, offset, limit)
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Delete all inspections of a hive
// @Tags inspections
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Success 200 {object} map[string]int64
// @Router /hives/{hiveId}/inspections [delete]
func (h *HiveHandlers) DeleteInspections(w http.ResponseWriter, r *http.Request) {
	hiveID := mux.Vars(r)["hiveId"]
	requestID := nuts.NID("req", 12)

	n, err := h.hubservice.Cleanup.DeleteHiveInspections(r.Context(), hiveID)
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// @Summary Get the latest inspection of a hive
// @Tags inspections
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Success 200 {object} models.InspectionEntry
// @Failure 404 {object} errors.APIError
// @Router /hives/{hiveId}/inspections/latest [get]
func (h *HiveHandlers) LatestInspection(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	entry, err := h.hubservice.LatestInspection(r.Context(), mux.Vars(r)["hiveId"])
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, entry)
}

// @Summary Get hive status
// @Description Summarize a hive from its recent inspections: varroa trend and alerts
// @Tags hives
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Success 200 {object} hubservice.HiveStatus
// @Failure 404 {object} errors.APIError
// @Router /hives/{hiveId}/status [get]
func (h *HiveHandlers) GetHiveStatus(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	status, err := h.hubservice.GetHiveStatus(r.Context(), mux.Vars(r)["hiveId"])
	if err != nil {
		respondWithError(w, errors.FromError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, status)
}

// readInspection decodes the request body by content type.
func readInspection(w http.ResponseWriter, r *http.Request) (models.Inspection, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return models.Inspection{}, errors.NewMalformedInputError("missing or invalid content type", err)
	}

	switch mediaType {
	case "application/json":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return models.Inspection{}, errors.NewMalformedInputError("failed to read request body", err)
		}
		return models.UnmarshalInspection(body)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && err != http.ErrNotMultipart {
			return models.Inspection{}, errors.NewMalformedInputError("failed to parse form", err)
		}
		return forms.DecodeInspection(r.PostForm)
	default:
		return models.Inspection{}, errors.NewMalformedInputError("unsupported content type "+mediaType, nil)
	}
}
