package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus represents the position of a deal in the sales pipeline.
//
// Domain notes:
//   - Prospect -> Sale -> Handover -> Completed is monotonic.
//   - The only backwards edge is Sale -> Prospect (revert), allowed while unlocked.
type SaleStatus string

const (
	SaleStatusProspect  SaleStatus = "Prospect"
	SaleStatusSale      SaleStatus = "Sale"
	SaleStatusHandover  SaleStatus = "Handover"
	SaleStatusCompleted SaleStatus = "Completed"
)

// HandoverChecklist holds the four gates that must all be confirmed before a
// sale can be pushed to the backend team.
type HandoverChecklist struct {
	EmailSentToAccounts             bool `json:"email_sent_to_accounts"`
	EmailSentToBackend              bool `json:"email_sent_to_backend"`
	EmailSentForPaymentConfirmation bool `json:"email_sent_for_payment_confirmation"`
	WhatsappGroupCreated            bool `json:"whatsapp_group_created"`
}

// Complete reports whether every handover gate is confirmed.
func (c HandoverChecklist) Complete() bool {
	return c.EmailSentToAccounts &&
		c.EmailSentToBackend &&
		c.EmailSentForPaymentConfirmation &&
		c.WhatsappGroupCreated
}

// Sale is the prospect/deal record owned by the sales team.
//
// Storage model:
//   - PK: id
//   - Version is bumped on every write and used as the optimistic concurrency token.
type Sale struct {
	ID           string            `json:"id"`
	ClientName   string            `json:"client_name"`
	ClientPhone  string            `json:"client_phone"`
	CompanyName  string            `json:"company_name,omitempty"`
	Price        *decimal.Decimal  `json:"price,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Requirements string            `json:"requirements,omitempty"`
	Status       SaleStatus        `json:"status"`
	Payment      *Payment          `json:"payment,omitempty"`
	Checklist    HandoverChecklist `json:"checklist"`
	IsLocked     bool              `json:"is_locked"`
	CreatedBy    string            `json:"created_by"`
	AssignedTo   string            `json:"assigned_to"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Version      int64             `json:"version"`
}

// Editable reports whether the descriptive fields of the sale may still change.
func (s Sale) Editable() bool {
	if s.IsLocked {
		return false
	}
	return s.Status == SaleStatusProspect || s.Status == SaleStatusSale
}
