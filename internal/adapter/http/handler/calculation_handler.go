package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lfsc/juscalc/internal/adapter/http/dto"
	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/usecase"
)

// CorrectionService defines the behavior needed for monetary correction.
type CorrectionService interface {
	Correct(ctx context.Context, input usecase.CorrectionInput) (*usecase.CalculationOutput, error)
}

// LatePaymentService defines the behavior needed for late-payment interest.
type LatePaymentService interface {
	Apply(ctx context.Context, input usecase.LatePaymentInput) (*usecase.CalculationOutput, error)
}

// CalculationQueryService defines the behavior needed to read back
// stored calculations.
type CalculationQueryService interface {
	Get(ctx context.Context, id string) (*domain.CalculationRecord, error)
	List(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error)
}

// CalculationHandler handles calculation-related HTTP requests.
type CalculationHandler struct {
	correctionUC  CorrectionService
	latePaymentUC LatePaymentService
	queryUC       CalculationQueryService
}

// NewCalculationHandler creates a new CalculationHandler.
func NewCalculationHandler(correctionUC CorrectionService, latePaymentUC LatePaymentService, queryUC CalculationQueryService) *CalculationHandler {
	return &CalculationHandler{
		correctionUC:  correctionUC,
		latePaymentUC: latePaymentUC,
		queryUC:       queryUC,
	}
}

// Correct runs a monetary correction calculation.
func (h *CalculationHandler) Correct(w http.ResponseWriter, r *http.Request) {
	var req dto.CorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid correction request", err.Error())
		return
	}

	out, err := h.correctionUC.Correct(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to run correction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CalculationResponseFromOutput(out))
}

// LatePayment runs a late-payment interest calculation.
func (h *CalculationHandler) LatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.LatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid late-payment request", err.Error())
		return
	}

	out, err := h.latePaymentUC.Apply(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to apply late-payment interest", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CalculationResponseFromOutput(out))
}

// Get retrieves a stored calculation by ID.
func (h *CalculationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing calculation ID", "")
		return
	}

	rec, err := h.queryUC.Get(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get calculation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordResponseFromDomain(rec))
}

// List lists stored calculations, newest first.
func (h *CalculationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	recs, err := h.queryUC.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list calculations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordListResponseFromDomain(recs))
}
