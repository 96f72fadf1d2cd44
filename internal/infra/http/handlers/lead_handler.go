package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
	"github.com/acsolutions-lk/energy-leads-api/internal/infra/http/middleware"
	"github.com/acsolutions-lk/energy-leads-api/internal/usecase"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type LeadHandler struct {
	createLeadUC *usecase.CreateLeadUseCase
	leadRepo     entity.LeadRepositoryInterface
	rateLimiter  *RateLimiter
	logger       *zap.Logger
}

func NewLeadHandler(createLeadUC *usecase.CreateLeadUseCase, leadRepo entity.LeadRepositoryInterface, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		createLeadUC: createLeadUC,
		leadRepo:     leadRepo,
		rateLimiter:  NewRateLimiter(10, time.Minute), // 10 req/min per IP
		logger:       logger,
	}
}

// CreateLead handles POST /api/leads. The 201 goes out as soon as the lead
// is persisted; the savings report is dispatched in the background.
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.", "")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	output, err := h.createLeadUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			respondError(w, http.StatusBadRequest, "Failed to capture lead", err.Error())
			return
		}
		h.logger.Error("create lead failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to capture lead", err.Error())
		return
	}

	middleware.RecordLeadCaptured(output.Priority)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Lead captured successfully",
		Data:    output,
	})
}

// ListLeads handles GET /api/leads with optional priority/status filters
// and 1-indexed page/limit paging.
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := parsePositiveInt(q.Get("page"), defaultPage)
	limit := parsePositiveInt(q.Get("limit"), defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := entity.LeadFilter{
		Priority: q.Get("priority"),
		Status:   q.Get("status"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	leads, total, err := h.leadRepo.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list leads failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch leads", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ListResponse{
		Success:     true,
		Data:        leads,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		TotalLeads:  total,
	})
}

// GetLead handles GET /api/leads/{id}.
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	lead, err := h.leadRepo.FindByLeadID(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "Lead not found", "")
			return
		}
		h.logger.Error("get lead failed", zap.String("lead_id", leadID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch lead", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: lead})
}

// UpdateLead handles PUT /api/leads/{id}: status and notes only, and only
// the fields present in the body.
func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	if validationErrors := usecase.ValidateUpdateLeadInput(input); len(validationErrors) > 0 {
		respondError(w, http.StatusBadRequest, "Failed to update lead", validationErrors[0].Error())
		return
	}

	lead, err := h.leadRepo.UpdateStatusNotes(r.Context(), leadID, input.Status, input.Notes)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "Lead not found", "")
			return
		}
		h.logger.Error("update lead failed", zap.String("lead_id", leadID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to update lead", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Lead updated successfully",
		Data:    lead,
	})
}

// DeleteLead handles DELETE /api/leads/{id}. Hard delete, no tombstone.
func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	if err := h.leadRepo.Delete(r.Context(), leadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "Lead not found", "")
			return
		}
		h.logger.Error("delete lead failed", zap.String("lead_id", leadID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to delete lead", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Lead deleted successfully",
	})
}

// GetStats handles GET /api/leads/stats.
func (h *LeadHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leadRepo.Stats(r.Context())
	if err != nil {
		h.logger.Error("lead stats failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch statistics", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
