package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/internal/service/cycle"
	"github.com/lunara-app/lunara-backend/internal/service/cycle/projection"
)

// cycleService defines the minimal interface needed by CycleHandler.
type cycleService interface {
	Create(ctx context.Context, input cycle.CreateInput) (*domain.Cycle, error)
	List(ctx context.Context) ([]*domain.Cycle, error)
	Statistics(ctx context.Context) (projection.Stats, error)
	Calendar(ctx context.Context, input cycle.CalendarInput) (*cycle.CalendarView, error)
}

// CycleHandler serves cycle REST endpoints.
type CycleHandler struct {
	svc cycleService
	log *slog.Logger
}

// NewCycleHandler creates a CycleHandler.
func NewCycleHandler(svc cycleService, logger *slog.Logger) *CycleHandler {
	return &CycleHandler{svc: svc, log: logger.With("handler", "cycle")}
}

type createCycleRequest struct {
	StartDate       string `json:"startDate"`
	CycleLengthDays int    `json:"cycleLengthDays"`
	BleedLengthDays int    `json:"bleedLengthDays"`
}

type cycleResponse struct {
	ID              string `json:"id"`
	StartDate       string `json:"startDate"`
	CycleLengthDays int    `json:"cycleLengthDays"`
	BleedLengthDays int    `json:"bleedLengthDays"`
}

type statsResponse struct {
	AverageLengthDays   int `json:"averageLengthDays"`
	CurrentCycleDay     int `json:"currentCycleDay"`
	DaysUntilNextPeriod int `json:"daysUntilNextPeriod"`
}

type calendarEventResponse struct {
	Kind      string `json:"kind"`
	Title     string `json:"title,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Projected bool   `json:"projected"`
}

type calendarResponse struct {
	Configured bool                    `json:"configured"`
	Events     []calendarEventResponse `json:"events"`
}

// Create handles POST /api/cycles.
func (h *CycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("startDate", "must be a YYYY-MM-DD date"))
		return
	}

	c, err := h.svc.Create(r.Context(), cycle.CreateInput{
		StartDate:       start,
		CycleLengthDays: req.CycleLengthDays,
		BleedLengthDays: req.BleedLengthDays,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCycleResponse(c))
}

// List handles GET /api/cycles.
func (h *CycleHandler) List(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]cycleResponse, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, toCycleResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Statistics handles GET /api/cycles/statistics.
func (h *CycleHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		AverageLengthDays:   stats.AverageLengthDays,
		CurrentCycleDay:     stats.CurrentCycleDay,
		DaysUntilNextPeriod: stats.DaysUntilNextPeriod,
	})
}

// Calendar handles GET /api/calendar?from=&to=.
func (h *CycleHandler) Calendar(w http.ResponseWriter, r *http.Request) {
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
		handleError(w, r, h.log, domain.NewValidationError("from", "from and to are required"))
		return
	}

	view, err := h.svc.Calendar(r.Context(), cycle.CalendarInput{From: *from, To: *to})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	events := make([]calendarEventResponse, 0, len(view.Events))
	for _, ev := range view.Events {
		events = append(events, calendarEventResponse{
			Kind:      ev.Kind.String(),
			Title:     ev.Title,
			StartDate: ev.StartDate.Format(dateLayout),
			EndDate:   ev.EndDate.Format(dateLayout),
			Projected: ev.Projected,
		})
	}

	writeJSON(w, http.StatusOK, calendarResponse{
		Configured: view.Configured,
		Events:     events,
	})
}

func toCycleResponse(c *domain.Cycle) cycleResponse {
	return cycleResponse{
		ID:              c.ID.String(),
		StartDate:       c.StartDate.Format(dateLayout),
		CycleLengthDays: c.CycleLengthDays,
		BleedLengthDays: c.BleedLengthDays,
	}
}
