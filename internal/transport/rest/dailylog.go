package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/internal/service/dailylog"
)

// dailyLogService defines the minimal interface needed by DailyLogHandler.
type dailyLogService interface {
	Upsert(ctx context.Context, input dailylog.UpsertInput) (*domain.DailyLog, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error)
	ListByRange(ctx context.Context, input dailylog.RangeInput) ([]*domain.DailyLog, error)
}

// DailyLogHandler serves daily log REST endpoints.
type DailyLogHandler struct {
	svc dailyLogService
	log *slog.Logger
}

// NewDailyLogHandler creates a DailyLogHandler.
func NewDailyLogHandler(svc dailyLogService, logger *slog.Logger) *DailyLogHandler {
	return &DailyLogHandler{svc: svc, log: logger.With("handler", "dailylog")}
}

type upsertLogRequest struct {
	LogDate          string   `json:"logDate"`
	CervicalMucus    *string  `json:"cervicalMucus,omitempty"`
	BasalTemperature *float64 `json:"basalTemperature,omitempty"`
	Note             *string  `json:"note,omitempty"`
}

type dailyLogResponse struct {
	ID               string          `json:"id"`
	CycleID          string          `json:"cycleId"`
	LogDate          string          `json:"logDate"`
	CervicalMucus    *string         `json:"cervicalMucus,omitempty"`
	BasalTemperature *float64        `json:"basalTemperature,omitempty"`
	Note             *string         `json:"note,omitempty"`
	Symptoms         []entryResponse `json:"symptoms,omitempty"`
}

// Upsert handles POST /api/daily-logs.
func (h *DailyLogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := dailylog.UpsertInput{
		BasalTemperature: req.BasalTemperature,
		Note:             req.Note,
	}

	if req.LogDate != "" {
		d, err := time.Parse(dateLayout, req.LogDate)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("logDate", "must be a YYYY-MM-DD date"))
			return
		}
		input.LogDate = d
	}

	if req.CervicalMucus != nil {
		m := domain.CervicalMucus(*req.CervicalMucus)
		input.CervicalMucus = &m
	}

	l, err := h.svc.Upsert(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDailyLogResponse(l))
}

// Get handles GET /api/daily-logs?date= and ?from=&to=.
func (h *DailyLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if date != nil {
		l, err := h.svc.GetByDate(r.Context(), *date)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toDailyLogResponse(l))
		return
	}

	from, err := queryDate(r, "from")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if from == nil || to == nil {
		handleError(w, r, h.log, domain.NewValidationError("date", "date or from/to is required"))
		return
	}

	logs, err := h.svc.ListByRange(r.Context(), dailylog.RangeInput{From: *from, To: *to})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]dailyLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toDailyLogResponse(l))
	}
	writeJSON(w, http.StatusOK, out)
}

func toDailyLogResponse(l *domain.DailyLog) dailyLogResponse {
	resp := dailyLogResponse{
		ID:               l.ID.String(),
		CycleID:          l.CycleID.String(),
		LogDate:          l.LogDate.Format(dateLayout),
		BasalTemperature: l.BasalTemperature,
		Note:             l.Note,
	}
	if l.CervicalMucus != nil {
		s := l.CervicalMucus.String()
		resp.CervicalMucus = &s
	}
	if len(l.Symptoms) > 0 {
		resp.Symptoms = make([]entryResponse, 0, len(l.Symptoms))
		for _, e := range l.Symptoms {
			resp.Symptoms = append(resp.Symptoms, toEntryResponse(e))
		}
	}
	return resp
}
