package usecase

import "salesops/internal/domain/entities"

// ChecklistPatch carries a partial handover checklist. Nil fields are left
// untouched when merged.
type ChecklistPatch struct {
	EmailSentToAccounts             *bool
	EmailSentToBackend              *bool
	EmailSentForPaymentConfirmation *bool
	WhatsappGroupCreated            *bool
}

// Merge applies the provided fields on top of c.
func (p ChecklistPatch) Merge(c entities.HandoverChecklist) entities.HandoverChecklist {
	if p.EmailSentToAccounts != nil {
		c.EmailSentToAccounts = *p.EmailSentToAccounts
	}
	if p.EmailSentToBackend != nil {
		c.EmailSentToBackend = *p.EmailSentToBackend
	}
	if p.EmailSentForPaymentConfirmation != nil {
		c.EmailSentForPaymentConfirmation = *p.EmailSentForPaymentConfirmation
	}
	if p.WhatsappGroupCreated != nil {
		c.WhatsappGroupCreated = *p.WhatsappGroupCreated
	}
	return c
}

// checkHandoverGate enforces that the submitted checklist, not the stored
// progress, has all four gates confirmed.
func checkHandoverGate(submitted *entities.HandoverChecklist) error {
	if submitted == nil || !submitted.Complete() {
		return ErrChecklistIncomplete
	}
	return nil
}
