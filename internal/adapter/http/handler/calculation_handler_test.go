package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/adapter/http/dto"
	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/usecase"
)

type correctionServiceStub struct {
	correctFn func(ctx context.Context, input usecase.CorrectionInput) (*usecase.CalculationOutput, error)
}

func (s *correctionServiceStub) Correct(ctx context.Context, input usecase.CorrectionInput) (*usecase.CalculationOutput, error) {
	return s.correctFn(ctx, input)
}

type latePaymentServiceStub struct {
	applyFn func(ctx context.Context, input usecase.LatePaymentInput) (*usecase.CalculationOutput, error)
}

func (s *latePaymentServiceStub) Apply(ctx context.Context, input usecase.LatePaymentInput) (*usecase.CalculationOutput, error) {
	return s.applyFn(ctx, input)
}

type queryServiceStub struct {
	getFn  func(ctx context.Context, id string) (*domain.CalculationRecord, error)
	listFn func(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error)
}

func (s *queryServiceStub) Get(ctx context.Context, id string) (*domain.CalculationRecord, error) {
	return s.getFn(ctx, id)
}

func (s *queryServiceStub) List(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error) {
	return s.listFn(ctx, limit, offset)
}

func sampleOutput(id string) *usecase.CalculationOutput {
	return &usecase.CalculationOutput{
		ID: id,
		Result: &domain.Result{
			Principal:         decimal.NewFromInt(1000),
			CorrectedValue:    decimal.RequireFromString("1050.125"),
			CorrectionAmount:  decimal.RequireFromString("50.125"),
			InterestAmount:    decimal.Zero,
			TotalAmount:       decimal.RequireFromString("1050.125"),
			AccumulatedFactor: decimal.RequireFromString("1.050125"),
		},
	}
}

func TestCalculationHandler_Correct_Success(t *testing.T) {
	var captured usecase.CorrectionInput
	handler := NewCalculationHandler(&correctionServiceStub{
		correctFn: func(ctx context.Context, input usecase.CorrectionInput) (*usecase.CalculationOutput, error) {
			captured = input
			return sampleOutput("calc-1"), nil
		},
	}, nil, nil)

	body := []byte(`{
		"principal": "1000",
		"start_date": "2023-01-15",
		"end_date": "2024-01-15",
		"index": "inpc"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/calculations/correction", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Correct(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Index != domain.IndexINPC {
		t.Fatalf("expected lowercase index to normalize to INPC, got %s", captured.Index)
	}
	if !captured.Start.Equal(time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected start date to parse, got %s", captured.Start)
	}

	var resp dto.CalculationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "calc-1" {
		t.Fatalf("expected calc-1, got %s", resp.ID)
	}
	// Monetary values come back rounded to centavos.
	if !resp.TotalAmount.Equal(decimal.RequireFromString("1050.13")) {
		t.Fatalf("expected rounded total 1050.13, got %s", resp.TotalAmount)
	}
}

func TestCalculationHandler_Correct_InvalidJSON(t *testing.T) {
	handler := NewCalculationHandler(&correctionServiceStub{
		correctFn: func(ctx context.Context, input usecase.CorrectionInput) (*usecase.CalculationOutput, error) {
			t.Fatal("Correct should not be called for invalid payload")
			return nil, nil
		},
	}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/calculations/correction", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Correct(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCalculationHandler_Correct_UnknownIndex(t *testing.T) {
	handler := NewCalculationHandler(&correctionServiceStub{
		correctFn: func(ctx context.Context, input usecase.CorrectionInput) (*usecase.CalculationOutput, error) {
			t.Fatal("Correct should not be called when the index fails to parse")
			return nil, nil
		},
	}, nil, nil)

	body := []byte(`{"principal": "1000", "start_date": "2023-01-15", "end_date": "2024-01-15", "index": "NASDAQ"}`)
	req := httptest.NewRequest(http.MethodPost, "/calculations/correction", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Correct(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCalculationHandler_Correct_ConflictingRate(t *testing.T) {
	handler := NewCalculationHandler(&correctionServiceStub{
		correctFn: func(ctx context.Context, input usecase.CorrectionInput) (*usecase.CalculationOutput, error) {
			return nil, domain.ErrConflictingRate
		},
	}, nil, nil)

	body := []byte(`{"principal": "1000", "start_date": "2023-01-15", "end_date": "2024-01-15", "index": "SELIC", "include_interest": true}`)
	req := httptest.NewRequest(http.MethodPost, "/calculations/correction", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Correct(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCalculationHandler_LatePayment_Success(t *testing.T) {
	var captured usecase.LatePaymentInput
	handler := NewCalculationHandler(nil, &latePaymentServiceStub{
		applyFn: func(ctx context.Context, input usecase.LatePaymentInput) (*usecase.CalculationOutput, error) {
			captured = input
			return sampleOutput("calc-2"), nil
		},
	}, nil)

	body := []byte(`{
		"principal": "5000",
		"start_date": "2024-01-01",
		"end_date": "2024-12-31",
		"interest_mode": "simple",
		"with_correction": true,
		"index": "IPCA-E"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/calculations/late-payment", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.LatePayment(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !captured.WithCorrection || captured.Index != domain.IndexIPCAE {
		t.Fatalf("expected correction with IPCA-E, got %+v", captured)
	}
}

func TestCalculationHandler_Get(t *testing.T) {
	handler := NewCalculationHandler(nil, nil, &queryServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.CalculationRecord, error) {
			if id != "calc-9" {
				t.Fatalf("expected id calc-9, got %s", id)
			}
			return &domain.CalculationRecord{ID: "calc-9", Kind: domain.KindCorrection}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/calculations/calc-9", nil)
	req = setChiURLParam(req, "id", "calc-9")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCalculationHandler_Get_NotFound(t *testing.T) {
	handler := NewCalculationHandler(nil, nil, &queryServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.CalculationRecord, error) {
			return nil, domain.ErrCalculationNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/calculations/calc-9", nil)
	req = setChiURLParam(req, "id", "calc-9")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCalculationHandler_List(t *testing.T) {
	handler := NewCalculationHandler(nil, nil, &queryServiceStub{
		listFn: func(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error) {
			if limit != 5 || offset != 2 {
				t.Fatalf("expected limit=5 offset=2, got %d/%d", limit, offset)
			}
			return []*domain.CalculationRecord{{ID: "a"}, {ID: "b"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/calculations?limit=5&offset=2", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.RecordListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Calculations) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp.Calculations))
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
