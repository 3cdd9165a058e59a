package usecase

import (
	"time"

	"salesops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const initialPaymentNote = "Initial payment during conversion"

// NewPayment builds the payment recorded when a prospect converts. The
// history is seeded with the collected amount so that it always sums to
// CollectedAmount; nothing is seeded when nothing was collected.
func NewPayment(amount, collected decimal.Decimal, method, notes string, actor entities.Actor, now time.Time) (entities.Payment, error) {
	if !amount.IsPositive() {
		return entities.Payment{}, ErrPaymentAmountInvalid
	}
	if collected.IsNegative() {
		return entities.Payment{}, ErrCollectedAmountInvalid
	}
	if collected.GreaterThan(amount) {
		return entities.Payment{}, ErrCollectedExceedsAmount
	}

	p := entities.Payment{
		Amount:          amount,
		CollectedAmount: collected,
		PendingAmount:   amount.Sub(collected),
		History:         []entities.PaymentRecord{},
	}
	if collected.IsPositive() {
		if notes == "" {
			notes = initialPaymentNote
		}
		p.History = append(p.History, entities.PaymentRecord{
			Amount:     collected,
			Date:       now,
			Method:     method,
			Notes:      notes,
			RecordedBy: actor.ID,
		})
	}
	deriveStatus(&p)
	return p, nil
}

// ApplyPayment records an incremental collection. Amounts above the pending
// balance are rejected, never clamped. The input payment is not modified.
func ApplyPayment(p entities.Payment, amount decimal.Decimal, method, notes string, actor entities.Actor, now time.Time) (entities.Payment, error) {
	if !amount.IsPositive() {
		return entities.Payment{}, ErrPaymentAmountInvalid
	}
	if amount.GreaterThan(p.PendingAmount) {
		return entities.Payment{}, ErrPaymentExceedsPending
	}

	next := p
	next.CollectedAmount = p.CollectedAmount.Add(amount)
	next.PendingAmount = p.PendingAmount.Sub(amount)
	next.History = make([]entities.PaymentRecord, 0, len(p.History)+1)
	next.History = append(next.History, p.History...)
	next.History = append(next.History, entities.PaymentRecord{
		Amount:     amount,
		Date:       now,
		Method:     method,
		Notes:      notes,
		RecordedBy: actor.ID,
	})
	deriveStatus(&next)
	return next, nil
}

func deriveStatus(p *entities.Payment) {
	if p.PendingAmount.IsZero() {
		p.PaymentType = entities.PaymentTypeFull
		p.Status = entities.PaymentStatusReceived
		return
	}
	p.PaymentType = entities.PaymentTypePartial
	p.Status = entities.PaymentStatusPending
}
