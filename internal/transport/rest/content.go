package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/domain"
	"github.com/lunara-app/lunara-backend/internal/service/content"
)

// contentService defines the minimal interface needed by ContentHandler.
type contentService interface {
	ListCards(ctx context.Context) ([]*domain.InfoCard, error)
	CreateCard(ctx context.Context, input content.CardInput) (*domain.InfoCard, error)
	UpdateCard(ctx context.Context, id uuid.UUID, input content.CardInput) (*domain.InfoCard, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	ListSections(ctx context.Context) ([]*domain.AccordionSection, error)
	CreateSection(ctx context.Context, input content.SectionInput) (*domain.AccordionSection, error)
	UpdateSection(ctx context.Context, id uuid.UUID, input content.SectionInput) (*domain.AccordionSection, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
	TipOfDay(now time.Time) content.Tip
}

// ContentHandler serves editorial content REST endpoints.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

type cardRequest struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type cardResponse struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type sectionRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

type sectionResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

type tipResponse struct {
	Tip string `json:"tip"`
}

// ListCards handles GET /api/info/cards.
func (h *ContentHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListCards(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListSections handles GET /api/info/accordion.
func (h *ContentHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.svc.ListSections(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]sectionResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, toSectionResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// Tip handles GET /api/info/tip.
func (h *ContentHandler) Tip(w http.ResponseWriter, r *http.Request) {
	tip := h.svc.TipOfDay(time.Now())
	writeJSON(w, http.StatusOK, tipResponse{Tip: tip.Text})
}

// CreateCard handles POST /admin/info/cards.
func (h *ContentHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.CreateCard(r.Context(), content.CardInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(card))
}

// UpdateCard handles PUT /admin/info/cards/{id}.
func (h *ContentHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), id, content.CardInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// DeleteCard handles DELETE /admin/info/cards/{id}.
func (h *ContentHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	if err := h.svc.DeleteCard(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateSection handles POST /admin/info/accordion.
func (h *ContentHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	section, err := h.svc.CreateSection(r.Context(), content.SectionInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSectionResponse(section))
}

// UpdateSection handles PUT /admin/info/accordion/{id}.
func (h *ContentHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	section, err := h.svc.UpdateSection(r.Context(), id, content.SectionInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSectionResponse(section))
}

// DeleteSection handles DELETE /admin/info/accordion/{id}.
func (h *ContentHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	if err := h.svc.DeleteSection(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCardResponse(c *domain.InfoCard) cardResponse {
	return cardResponse{
		ID:          c.ID.String(),
		Icon:        c.Icon,
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
	}
}

func toSectionResponse(s *domain.AccordionSection) sectionResponse {
	return sectionResponse{
		ID:       s.ID.String(),
		Title:    s.Title,
		Content:  s.Content,
		Position: s.Position,
	}
}
