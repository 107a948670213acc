package dto

import (
	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/usecase"
)

// CorrectionRequest represents a correção monetária request.
type CorrectionRequest struct {
	Principal       decimal.Decimal `json:"principal"`
	StartDate       Date            `json:"start_date"`
	EndDate         Date            `json:"end_date"`
	Index           string          `json:"index"`
	IncludeInterest bool            `json:"include_interest"`
	InterestMode    string          `json:"interest_mode,omitempty"`
	MonthlyRate     decimal.Decimal `json:"monthly_rate,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CorrectionRequest) ToUseCaseInput() (usecase.CorrectionInput, error) {
	index, err := domain.ParseIndexCode(r.Index)
	if err != nil {
		return usecase.CorrectionInput{}, err
	}

	mode, err := domain.ParseInterestMode(r.InterestMode)
	if err != nil {
		return usecase.CorrectionInput{}, err
	}

	return usecase.CorrectionInput{
		Principal:       r.Principal,
		Start:           r.StartDate.Time,
		End:             r.EndDate.Time,
		Index:           index,
		IncludeInterest: r.IncludeInterest,
		InterestMode:    mode,
		MonthlyRate:     r.MonthlyRate,
	}, nil
}

// LatePaymentRequest represents a juros moratórios request.
type LatePaymentRequest struct {
	Principal      decimal.Decimal `json:"principal"`
	StartDate      Date            `json:"start_date"`
	EndDate        Date            `json:"end_date"`
	InterestMode   string          `json:"interest_mode,omitempty"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate,omitempty"`
	WithCorrection bool            `json:"with_correction"`
	Index          string          `json:"index,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *LatePaymentRequest) ToUseCaseInput() (usecase.LatePaymentInput, error) {
	mode, err := domain.ParseInterestMode(r.InterestMode)
	if err != nil {
		return usecase.LatePaymentInput{}, err
	}

	in := usecase.LatePaymentInput{
		Principal:      r.Principal,
		Start:          r.StartDate.Time,
		End:            r.EndDate.Time,
		Mode:           mode,
		MonthlyRate:    r.MonthlyRate,
		WithCorrection: r.WithCorrection,
	}

	if r.WithCorrection {
		index, err := domain.ParseIndexCode(r.Index)
		if err != nil {
			return usecase.LatePaymentInput{}, err
		}
		in.Index = index
	}

	return in, nil
}

// SettlementItemRequest is one installment of a settlement request.
type SettlementItemRequest struct {
	Label           string          `json:"label"`
	Amount          decimal.Decimal `json:"amount"`
	DueDate         Date            `json:"due_date"`
	ApplyCorrection bool            `json:"apply_correction"`
	ApplyInterest   bool            `json:"apply_interest"`
}

// SurchargeRequest is one ordered surcharge percentage.
type SurchargeRequest struct {
	Label   string          `json:"label"`
	Percent decimal.Decimal `json:"percent"`
}

// SettlementRequest represents a liquidação de sentença request.
type SettlementRequest struct {
	Items           []SettlementItemRequest `json:"items"`
	CalculationDate Date                    `json:"calculation_date"`
	Index           string                  `json:"index"`
	InterestMode    string                  `json:"interest_mode,omitempty"`
	MonthlyRate     decimal.Decimal         `json:"monthly_rate,omitempty"`
	Surcharges      []SurchargeRequest      `json:"surcharges,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *SettlementRequest) ToUseCaseInput() (usecase.SettlementInput, error) {
	index, err := domain.ParseIndexCode(r.Index)
	if err != nil {
		return usecase.SettlementInput{}, err
	}

	mode, err := domain.ParseInterestMode(r.InterestMode)
	if err != nil {
		return usecase.SettlementInput{}, err
	}

	items := make([]usecase.SettlementItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = usecase.SettlementItemInput{
			Label:           item.Label,
			Amount:          item.Amount,
			DueDate:         item.DueDate.Time,
			ApplyCorrection: item.ApplyCorrection,
			ApplyInterest:   item.ApplyInterest,
		}
	}

	surcharges := make([]usecase.SurchargeInput, len(r.Surcharges))
	for i, s := range r.Surcharges {
		surcharges[i] = usecase.SurchargeInput{Label: s.Label, Percent: s.Percent}
	}

	return usecase.SettlementInput{
		Items:           items,
		CalculationDate: r.CalculationDate.Time,
		Index:           index,
		InterestMode:    mode,
		MonthlyRate:     r.MonthlyRate,
		Surcharges:      surcharges,
	}, nil
}

// FGTSRequest represents an FGTS balance projection request.
type FGTSRequest struct {
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	StartDate     Date            `json:"start_date"`
	EndDate       Date            `json:"end_date"`
}

// ToUseCaseInput converts to use case input.
func (r *FGTSRequest) ToUseCaseInput() usecase.FGTSInput {
	return usecase.FGTSInput{
		MonthlySalary: r.MonthlySalary,
		Start:         r.StartDate.Time,
		End:           r.EndDate.Time,
	}
}
