package request

import (
	"strings"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	ClientName   string           `json:"client_name"`
	ClientPhone  string           `json:"client_phone"`
	CompanyName  string           `json:"company_name"`
	Price        *decimal.Decimal `json:"price"`
	Notes        string           `json:"notes"`
	Requirements string           `json:"requirements"`
}

func (r CreateSaleRequest) ToInput() usecase.CreateProspectInput {
	return usecase.CreateProspectInput{
		ClientName:   r.ClientName,
		ClientPhone:  r.ClientPhone,
		CompanyName:  r.CompanyName,
		Price:        r.Price,
		Notes:        r.Notes,
		Requirements: r.Requirements,
	}
}

// UpdateSaleRequest only carries editable fields. Status, payment and lock
// state are ignored if sent.
type UpdateSaleRequest struct {
	ClientName   *string          `json:"client_name"`
	ClientPhone  *string          `json:"client_phone"`
	CompanyName  *string          `json:"company_name"`
	Price        *decimal.Decimal `json:"price"`
	Notes        *string          `json:"notes"`
	Requirements *string          `json:"requirements"`
}

func (r UpdateSaleRequest) ToInput() usecase.UpdateSaleInput {
	return usecase.UpdateSaleInput(r)
}

type PaymentDetailsRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	CollectedAmount *decimal.Decimal `json:"collected_amount"`
	Method          string           `json:"method"`
	Notes           string           `json:"notes"`
}

type ConvertSaleRequest struct {
	Payment *PaymentDetailsRequest `json:"payment"`
}

func (r ConvertSaleRequest) ToInput() usecase.ConvertInput {
	if r.Payment == nil {
		return usecase.ConvertInput{}
	}
	return usecase.ConvertInput{
		Amount:          r.Payment.Amount,
		CollectedAmount: r.Payment.CollectedAmount,
		Method:          strings.TrimSpace(r.Payment.Method),
		Notes:           r.Payment.Notes,
	}
}

type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Notes  string          `json:"notes"`
}

func (r AddPaymentRequest) ToInput(idempotencyKey string) usecase.AddPaymentInput {
	return usecase.AddPaymentInput{
		Amount:         r.Amount,
		Method:         strings.TrimSpace(r.Method),
		Notes:          r.Notes,
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}
}

type HandoverChecklistRequest struct {
	EmailSentToAccounts             bool `json:"email_sent_to_accounts"`
	EmailSentToBackend              bool `json:"email_sent_to_backend"`
	EmailSentForPaymentConfirmation bool `json:"email_sent_for_payment_confirmation"`
	WhatsappGroupCreated            bool `json:"whatsapp_group_created"`
}

type PushSaleRequest struct {
	Checklist *HandoverChecklistRequest `json:"checklist"`
}

// ResolveChecklist returns nil when no checklist was sent.
func (r PushSaleRequest) ResolveChecklist() *entities.HandoverChecklist {
	if r.Checklist == nil {
		return nil
	}
	c := entities.HandoverChecklist(*r.Checklist)
	return &c
}

type ChecklistProgressRequest struct {
	Checklist struct {
		EmailSentToAccounts             *bool `json:"email_sent_to_accounts"`
		EmailSentToBackend              *bool `json:"email_sent_to_backend"`
		EmailSentForPaymentConfirmation *bool `json:"email_sent_for_payment_confirmation"`
		WhatsappGroupCreated            *bool `json:"whatsapp_group_created"`
	} `json:"checklist"`
}

func (r ChecklistProgressRequest) ToPatch() usecase.ChecklistPatch {
	return usecase.ChecklistPatch(r.Checklist)
}
