package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lfsc/juscalc/internal/adapter/http/dto"
	"github.com/lfsc/juscalc/internal/usecase"
)

// SettlementService defines the behavior needed for settlements.
type SettlementService interface {
	Settle(ctx context.Context, input usecase.SettlementInput) (*usecase.SettlementOutput, error)
}

// FGTSService defines the behavior needed for FGTS projections.
type FGTSService interface {
	Project(ctx context.Context, input usecase.FGTSInput) (*usecase.SettlementOutput, error)
}

// SettlementHandler handles settlement and FGTS HTTP requests.
type SettlementHandler struct {
	settlementUC SettlementService
	fgtsUC       FGTSService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementUC SettlementService, fgtsUC FGTSService) *SettlementHandler {
	return &SettlementHandler{
		settlementUC: settlementUC,
		fgtsUC:       fgtsUC,
	}
}

// Settle runs a multi-item settlement calculation.
func (h *SettlementHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid settlement request", err.Error())
		return
	}

	out, err := h.settlementUC.Settle(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to settle", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SettlementResponseFromOutput(out))
}

// FGTS runs an FGTS balance projection.
func (h *SettlementHandler) FGTS(w http.ResponseWriter, r *http.Request) {
	var req dto.FGTSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	out, err := h.fgtsUC.Project(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to project FGTS balance", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SettlementResponseFromOutput(out))
}
