package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeFull    PaymentType = "Full"
	PaymentTypePartial PaymentType = "Partial"
)

// PaymentStatus tracks whether the full amount was collected.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusReceived PaymentStatus = "Received"
)

// PaymentRecord is one entry of the append-only collection history.
type PaymentRecord struct {
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Method     string          `json:"method,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	RecordedBy string          `json:"recorded_by"`
}

// Payment is the monetary state of a converted sale.
//
// Invariants (kept by the accounting functions in the usecase layer):
//   - Amount == CollectedAmount + PendingAmount
//   - 0 <= CollectedAmount <= Amount
//   - sum(History[].Amount) == CollectedAmount
type Payment struct {
	Amount          decimal.Decimal `json:"amount"`
	CollectedAmount decimal.Decimal `json:"collected_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	PaymentType     PaymentType     `json:"payment_type"`
	Status          PaymentStatus   `json:"status"`
	History         []PaymentRecord `json:"history"`
}

// HistoryTotal sums the recorded collection entries.
func (p Payment) HistoryTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range p.History {
		total = total.Add(r.Amount)
	}
	return total
}

// Balanced reports whether all payment invariants hold.
func (p Payment) Balanced() bool {
	if p.CollectedAmount.IsNegative() || p.PendingAmount.IsNegative() {
		return false
	}
	if !p.Amount.Equal(p.CollectedAmount.Add(p.PendingAmount)) {
		return false
	}
	return p.HistoryTotal().Equal(p.CollectedAmount)
}
