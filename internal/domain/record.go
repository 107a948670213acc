package domain

import (
	"encoding/json"
	"time"
)

// CalculationKind distinguishes the calculator a stored record came from.
type CalculationKind string

const (
	KindCorrection  CalculationKind = "correction"
	KindLatePayment CalculationKind = "late_payment"
	KindSettlement  CalculationKind = "settlement"
	KindFGTS        CalculationKind = "fgts"
)

// CalculationRecord is a persisted calculation: the request as received
// and the assembled result, stored verbatim so the stored ledger is
// exactly what the caller saw.
type CalculationRecord struct {
	ID        string
	Kind      CalculationKind
	Request   json.RawMessage
	Result    json.RawMessage
	CreatedAt time.Time
}
