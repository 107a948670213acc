package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// RateCacheTTL is how long resolved index series stay cached.
	// Indices are published monthly, so hours-level staleness is safe.
	RateCacheTTL = 6 * time.Hour

	// MaxSettlementItems bounds a single settlement request.
	MaxSettlementItems = 500
)

var (
	// DefaultLatePaymentMonthlyRate is the statutory 1%/month for
	// juros moratórios when no contractual rate is given.
	DefaultLatePaymentMonthlyRate = decimal.RequireFromString("0.01")

	// FGTSDepositRate is the employer deposit of 8% of salary.
	FGTSDepositRate = decimal.RequireFromString("0.08")

	// FGTSAnnualInterest is the 3% per year credited on FGTS balances.
	FGTSAnnualInterest = decimal.RequireFromString("0.03")
)
