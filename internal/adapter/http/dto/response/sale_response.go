package response

import (
	"time"

	"salesops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentRecordResponse struct {
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Method     string          `json:"method,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	RecordedBy string          `json:"recorded_by"`
}

type PaymentResponse struct {
	Amount          decimal.Decimal         `json:"amount"`
	CollectedAmount decimal.Decimal         `json:"collected_amount"`
	PendingAmount   decimal.Decimal         `json:"pending_amount"`
	PaymentType     string                  `json:"payment_type"`
	Status          string                  `json:"status"`
	CollectedPct    string                  `json:"collected_pct"`
	History         []PaymentRecordResponse `json:"history"`
}

type SaleResponse struct {
	ID                string                     `json:"id"`
	ClientName        string                     `json:"client_name"`
	ClientPhone       string                     `json:"client_phone"`
	CompanyName       string                     `json:"company_name,omitempty"`
	Price             *decimal.Decimal           `json:"price,omitempty"`
	Notes             string                     `json:"notes,omitempty"`
	Requirements      string                     `json:"requirements,omitempty"`
	Status            string                     `json:"status"`
	Payment           *PaymentResponse           `json:"payment,omitempty"`
	Checklist         entities.HandoverChecklist `json:"checklist"`
	ChecklistComplete bool                       `json:"checklist_complete"`
	IsLocked          bool                       `json:"is_locked"`
	CreatedBy         string                     `json:"created_by"`
	AssignedTo        string                     `json:"assigned_to"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
	Version           int64                      `json:"version"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:                s.ID,
		ClientName:        s.ClientName,
		ClientPhone:       s.ClientPhone,
		CompanyName:       s.CompanyName,
		Price:             s.Price,
		Notes:             s.Notes,
		Requirements:      s.Requirements,
		Status:            string(s.Status),
		Payment:           fromPayment(s.Payment),
		Checklist:         s.Checklist,
		ChecklistComplete: s.Checklist.Complete(),
		IsLocked:          s.IsLocked,
		CreatedBy:         s.CreatedBy,
		AssignedTo:        s.AssignedTo,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		Version:           s.Version,
	}
}

func FromSales(sales []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}

func fromPayment(p *entities.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	pct := decimal.Zero
	if p.Amount.IsPositive() {
		pct = p.CollectedAmount.Div(p.Amount).Mul(decimal.NewFromInt(100))
	}
	out := &PaymentResponse{
		Amount:          p.Amount,
		CollectedAmount: p.CollectedAmount,
		PendingAmount:   p.PendingAmount,
		PaymentType:     string(p.PaymentType),
		Status:          string(p.Status),
		CollectedPct:    pct.StringFixed(2),
		History:         make([]PaymentRecordResponse, 0, len(p.History)),
	}
	for _, r := range p.History {
		out.History = append(out.History, PaymentRecordResponse(r))
	}
	return out
}
