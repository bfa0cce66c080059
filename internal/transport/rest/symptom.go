package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/internal/service/symptom"
)

// symptomService defines the minimal interface needed by SymptomHandler.
type symptomService interface {
	Catalog(ctx context.Context) ([]*domain.Symptom, error)
	Log(ctx context.Context, input symptom.LogInput) (*domain.SymptomEntry, error)
	List(ctx context.Context, input symptom.ListInput) ([]domain.SymptomEntry, error)
}

// SymptomHandler serves symptom catalog and entry REST endpoints.
type SymptomHandler struct {
	svc symptomService
	log *slog.Logger
}

// NewSymptomHandler creates a SymptomHandler.
func NewSymptomHandler(svc symptomService, logger *slog.Logger) *SymptomHandler {
	return &SymptomHandler{svc: svc, log: logger.With("handler", "symptom")}
}

type logEntryRequest struct {
	SymptomID      *string `json:"symptomId,omitempty"`
	NewSymptomName string  `json:"newSymptomName,omitempty"`
	EntryDate      string  `json:"entryDate"`
	Intensity      int     `json:"intensity"`
}

type symptomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type entryResponse struct {
	ID          string  `json:"id"`
	SymptomID   string  `json:"symptomId"`
	SymptomName string  `json:"symptomName"`
	EntryDate   string  `json:"entryDate"`
	Intensity   int     `json:"intensity"`
	CycleID     *string `json:"cycleId,omitempty"`
}

// Catalog handles GET /api/symptoms.
func (h *SymptomHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.svc.Catalog(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]symptomResponse, 0, len(symptoms))
	for _, s := range symptoms {
		out = append(out, symptomResponse{
			ID:       s.ID.String(),
			Name:     s.Name,
			Category: s.Category,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Log handles POST /api/symptom-entries.
func (h *SymptomHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := symptom.LogInput{
		SymptomName: req.NewSymptomName,
		Intensity:   req.Intensity,
	}

	if req.SymptomID != nil {
		id, err := uuid.Parse(*req.SymptomID)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("symptomId", "must be a UUID"))
			return
		}
		input.SymptomID = &id
	}

	if req.EntryDate != "" {
		d, err := time.Parse(dateLayout, req.EntryDate)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("entryDate", "must be a YYYY-MM-DD date"))
			return
		}
		input.EntryDate = d
	}

	entry, err := h.svc.Log(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(*entry))
}

// List handles GET /api/symptom-entries?date=|from=&to=.
func (h *SymptomHandler) List(w http.ResponseWriter, r *http.Request) {
	var input symptom.ListInput

	date, err := queryDate(r, "date")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if date != nil {
		input.From = date
		input.To = date
	} else {
		if input.From, err = queryDate(r, "from"); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		if input.To, err = queryDate(r, "to"); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	if input.Limit, err = queryInt(r, "limit", 0); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func toEntryResponse(e domain.SymptomEntry) entryResponse {
	resp := entryResponse{
		ID:          e.ID.String(),
		SymptomID:   e.SymptomID.String(),
		SymptomName: e.SymptomName,
		EntryDate:   e.EntryDate.Format(dateLayout),
		Intensity:   e.Intensity,
	}
	if e.CycleID != nil {
		s := e.CycleID.String()
		resp.CycleID = &s
	}
	return resp
}
