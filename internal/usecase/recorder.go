package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lfsc/juscalc/internal/domain"
)

// recorder persists assembled results verbatim, shared by all
// calculator wrappers.
type recorder struct {
	repo   CalculationRepository
	idGen  IDGenerator
	logger zerolog.Logger
}

// record stores the request and result as received. The stored ledger
// is exactly the one returned to the caller.
func (r recorder) record(ctx context.Context, kind domain.CalculationKind, request, result any) (string, error) {
	reqJSON, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	resJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	rec := &domain.CalculationRecord{
		ID:        r.idGen.Generate(),
		Kind:      kind,
		Request:   reqJSON,
		Result:    resJSON,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.repo.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("save calculation: %w", err)
	}

	r.logger.Debug().Str("id", rec.ID).Str("kind", string(kind)).Msg("calculation stored")

	return rec.ID, nil
}
