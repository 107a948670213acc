package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lfsc/juscalc/internal/adapter/http/dto"
	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/usecase"
)

// IndexService defines the behavior needed by IndexHandler.
type IndexService interface {
	Rates(ctx context.Context, code domain.IndexCode, from, to time.Time) ([]usecase.RatePoint, error)
}

// IndexHandler handles index series HTTP requests.
type IndexHandler struct {
	indexUC IndexService
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(indexUC IndexService) *IndexHandler {
	return &IndexHandler{indexUC: indexUC}
}

// Rates returns the monthly series for an index over ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *IndexHandler) Rates(w http.ResponseWriter, r *http.Request) {
	code, err := domain.ParseIndexCode(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, mapDomainError(err), "unknown index", err.Error())
		return
	}

	from, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	points, err := h.indexUC.Rates(r.Context(), code, from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to resolve rates", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RatesResponseFromPoints(code, points))
}

func parseDateQuery(r *http.Request, key string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.URL.Query().Get(key), time.UTC)
}
