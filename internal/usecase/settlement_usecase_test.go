package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/usecase"
	"github.com/lfsc/juscalc/internal/usecase/mocks"
)

func TestSettlementUsecase_Settle(t *testing.T) {
	provider := mocks.NewMockIndexProvider()
	repo := mocks.NewMockCalculationRepository()
	uc := usecase.NewSettlementUsecase(provider, repo, fixedID("liq-01"), zerolog.Nop())

	out, err := uc.Settle(context.Background(), usecase.SettlementInput{
		Items: []usecase.SettlementItemInput{
			{Label: "parcela 1", Amount: decimal.NewFromInt(1000), DueDate: date(2024, time.January, 15), ApplyCorrection: true, ApplyInterest: true},
			{Label: "parcela 2", Amount: decimal.NewFromInt(2000), DueDate: date(2024, time.July, 15), ApplyCorrection: true, ApplyInterest: true},
		},
		CalculationDate: date(2025, time.January, 15),
		Index:           domain.IndexTR,
		InterestMode:    domain.InterestSimple,
		Surcharges: []usecase.SurchargeInput{
			{Label: "honorários", Percent: decimal.NewFromInt(10)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Neutral TR, statutory 1%/month: 1000+120 and 2000+120.
	if !out.Result.Subtotal.Equal(decimal.NewFromInt(3240)) {
		t.Errorf("expected subtotal 3240, got %s", out.Result.Subtotal)
	}

	if !out.Result.GrandTotal.Equal(decimal.NewFromInt(3564)) {
		t.Errorf("expected grand total 3564, got %s", out.Result.GrandTotal)
	}

	rec := repo.Stored("liq-01")
	if rec == nil || rec.Kind != domain.KindSettlement {
		t.Fatalf("expected stored settlement record, got %+v", rec)
	}
}

func TestSettlementUsecase_AllOrNothing(t *testing.T) {
	provider := mocks.NewMockIndexProvider()
	repo := mocks.NewMockCalculationRepository()
	uc := usecase.NewSettlementUsecase(provider, repo, fixedID("liq-02"), zerolog.Nop())

	_, err := uc.Settle(context.Background(), usecase.SettlementInput{
		Items: []usecase.SettlementItemInput{
			{Label: "ok", Amount: decimal.NewFromInt(1000), DueDate: date(2024, time.January, 15)},
			{Label: "future", Amount: decimal.NewFromInt(1000), DueDate: date(2026, time.January, 15)},
		},
		CalculationDate: date(2025, time.January, 15),
	})
	if !errors.Is(err, domain.ErrFutureDueDate) {
		t.Fatalf("expected ErrFutureDueDate, got %v", err)
	}

	if rec := repo.Stored("liq-02"); rec != nil {
		t.Error("failed settlement must not be persisted")
	}
}

func TestSettlementUsecase_EmptyItems(t *testing.T) {
	uc := usecase.NewSettlementUsecase(mocks.NewMockIndexProvider(), mocks.NewMockCalculationRepository(), fixedID("liq-03"), zerolog.Nop())

	_, err := uc.Settle(context.Background(), usecase.SettlementInput{
		CalculationDate: date(2025, time.January, 15),
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestFGTSUsecase_Project(t *testing.T) {
	provider := mocks.NewMockIndexProvider()
	repo := mocks.NewMockCalculationRepository()
	uc := usecase.NewFGTSUsecase(provider, repo, fixedID("fgts-01"), zerolog.Nop())

	out, err := uc.Project(context.Background(), usecase.FGTSInput{
		MonthlySalary: decimal.NewFromInt(3000),
		Start:         date(2024, time.January, 1),
		End:           date(2024, time.June, 30),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Six deposits of 240.00 each; with neutral TR the subtotal is at
	// least the nominal sum, plus the 3% p.a. credit on elapsed months.
	if len(out.Result.Items) != 6 {
		t.Fatalf("expected 6 deposits, got %d", len(out.Result.Items))
	}

	nominal := decimal.NewFromInt(1440)
	if out.Result.Subtotal.LessThan(nominal) {
		t.Errorf("subtotal %s below nominal deposits %s", out.Result.Subtotal, nominal)
	}

	rec := repo.Stored("fgts-01")
	if rec == nil || rec.Kind != domain.KindFGTS {
		t.Fatalf("expected stored fgts record, got %+v", rec)
	}
}

func TestFGTSUsecase_InvalidSalary(t *testing.T) {
	uc := usecase.NewFGTSUsecase(mocks.NewMockIndexProvider(), mocks.NewMockCalculationRepository(), fixedID("fgts-02"), zerolog.Nop())

	_, err := uc.Project(context.Background(), usecase.FGTSInput{
		MonthlySalary: decimal.Zero,
		Start:         date(2024, time.January, 1),
		End:           date(2024, time.June, 30),
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
