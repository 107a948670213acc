package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/usecase"
)

// LedgerEntryResponse is one month of the memória de cálculo.
type LedgerEntryResponse struct {
	Period    string          `json:"period"`
	Rate      decimal.Decimal `json:"rate"`
	Factor    decimal.Decimal `json:"factor"`
	Corrected decimal.Decimal `json:"corrected"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// CalculationResponse is the result of a single-principal calculation.
type CalculationResponse struct {
	ID                string                `json:"id"`
	Principal         decimal.Decimal       `json:"principal"`
	CorrectedValue    decimal.Decimal       `json:"corrected_value"`
	CorrectionAmount  decimal.Decimal       `json:"correction_amount"`
	InterestAmount    decimal.Decimal       `json:"interest_amount"`
	TotalAmount       decimal.Decimal       `json:"total_amount"`
	AccumulatedFactor decimal.Decimal       `json:"accumulated_factor"`
	Ledger            []LedgerEntryResponse `json:"ledger"`
}

// CalculationResponseFromOutput converts a use case output to a response.
// Monetary values are rounded to centavos; rates and factors keep full
// precision so the ledger stays auditable.
func CalculationResponseFromOutput(out *usecase.CalculationOutput) CalculationResponse {
	return CalculationResponse{
		ID:                out.ID,
		Principal:         out.Result.Principal.Round(2),
		CorrectedValue:    out.Result.CorrectedValue.Round(2),
		CorrectionAmount:  out.Result.CorrectionAmount.Round(2),
		InterestAmount:    out.Result.InterestAmount.Round(2),
		TotalAmount:       out.Result.TotalAmount.Round(2),
		AccumulatedFactor: out.Result.AccumulatedFactor,
		Ledger:            ledgerFromDomain(out.Result.Ledger),
	}
}

func ledgerFromDomain(entries []domain.LedgerEntry) []LedgerEntryResponse {
	ledger := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		ledger[i] = LedgerEntryResponse{
			Period:    e.Period.Label(),
			Rate:      e.Rate,
			Factor:    e.Factor,
			Corrected: e.Corrected.Round(2),
			Interest:  e.Interest.Round(2),
			Balance:   e.Balance.Round(2),
		}
	}
	return ledger
}

// SettlementItemResponse is one settled item with its full breakdown.
type SettlementItemResponse struct {
	Label             string                `json:"label"`
	Principal         decimal.Decimal       `json:"principal"`
	CorrectedValue    decimal.Decimal       `json:"corrected_value"`
	InterestAmount    decimal.Decimal       `json:"interest_amount"`
	TotalAmount       decimal.Decimal       `json:"total_amount"`
	AccumulatedFactor decimal.Decimal       `json:"accumulated_factor"`
	Ledger            []LedgerEntryResponse `json:"ledger"`
}

// SurchargeResponse is one applied surcharge.
type SurchargeResponse struct {
	Label   string          `json:"label"`
	Percent decimal.Decimal `json:"percent"`
	Base    decimal.Decimal `json:"base"`
	Amount  decimal.Decimal `json:"amount"`
}

// SettlementResponse is the aggregate settlement result.
type SettlementResponse struct {
	ID         string                   `json:"id"`
	Items      []SettlementItemResponse `json:"items"`
	Subtotal   decimal.Decimal          `json:"subtotal"`
	Surcharges []SurchargeResponse      `json:"surcharges"`
	GrandTotal decimal.Decimal          `json:"grand_total"`
}

// SettlementResponseFromOutput converts a use case output to a response.
func SettlementResponseFromOutput(out *usecase.SettlementOutput) SettlementResponse {
	items := make([]SettlementItemResponse, len(out.Result.Items))
	for i, item := range out.Result.Items {
		items[i] = SettlementItemResponse{
			Label:             item.Label,
			Principal:         item.Result.Principal.Round(2),
			CorrectedValue:    item.Result.CorrectedValue.Round(2),
			InterestAmount:    item.Result.InterestAmount.Round(2),
			TotalAmount:       item.Result.TotalAmount.Round(2),
			AccumulatedFactor: item.Result.AccumulatedFactor,
			Ledger:            ledgerFromDomain(item.Result.Ledger),
		}
	}

	surcharges := make([]SurchargeResponse, len(out.Result.Surcharges))
	for i, s := range out.Result.Surcharges {
		surcharges[i] = SurchargeResponse{
			Label:   s.Label,
			Percent: s.Percent,
			Base:    s.Base.Round(2),
			Amount:  s.Amount.Round(2),
		}
	}

	return SettlementResponse{
		ID:         out.ID,
		Items:      items,
		Subtotal:   out.Result.Subtotal.Round(2),
		Surcharges: surcharges,
		GrandTotal: out.Result.GrandTotal.Round(2),
	}
}

// RatePointResponse is one month of a resolved index series.
type RatePointResponse struct {
	Period string          `json:"period"`
	Rate   decimal.Decimal `json:"rate"`
}

// RatesResponse is a resolved index series.
type RatesResponse struct {
	Index string              `json:"index"`
	Rates []RatePointResponse `json:"rates"`
}

// RatesResponseFromPoints converts resolved points to a response.
func RatesResponseFromPoints(code domain.IndexCode, points []usecase.RatePoint) RatesResponse {
	rates := make([]RatePointResponse, len(points))
	for i, p := range points {
		rates[i] = RatePointResponse{Period: p.Period.Label(), Rate: p.Rate}
	}
	return RatesResponse{Index: string(code), Rates: rates}
}

// CalculationRecordResponse is a stored calculation read back by ID.
type CalculationRecordResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Request   json.RawMessage `json:"request"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// RecordResponseFromDomain converts a stored record to a response.
func RecordResponseFromDomain(rec *domain.CalculationRecord) CalculationRecordResponse {
	return CalculationRecordResponse{
		ID:        rec.ID,
		Kind:      string(rec.Kind),
		Request:   rec.Request,
		Result:    rec.Result,
		CreatedAt: rec.CreatedAt,
	}
}

// RecordListResponse is a page of stored calculations.
type RecordListResponse struct {
	Calculations []CalculationRecordResponse `json:"calculations"`
}

// RecordListResponseFromDomain converts stored records to a response.
func RecordListResponseFromDomain(recs []*domain.CalculationRecord) RecordListResponse {
	out := RecordListResponse{Calculations: make([]CalculationRecordResponse, len(recs))}
	for i, rec := range recs {
		out.Calculations[i] = RecordResponseFromDomain(rec)
	}
	return out
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
