package usecase

import "errors"

// ErrorKind classifies a usecase failure so the transport can pick a status.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindState         ErrorKind = "state"
	KindConflict      ErrorKind = "conflict"
	KindAuthorization ErrorKind = "authorization"
)

// Error is a structured usecase failure. Message names the violated rule
// and is shown to users as is.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	ErrClientNameRequired  = newError(KindValidation, "CLIENT_NAME_REQUIRED", "Client name is required")
	ErrClientPhoneRequired = newError(KindValidation, "CLIENT_PHONE_REQUIRED", "Client phone is required")
	ErrInvalidPrice        = newError(KindValidation, "INVALID_PRICE", "Price cannot be negative")
	ErrInvalidSaleID       = newError(KindValidation, "INVALID_SALE_ID", "Invalid sale id")
	ErrSaleNotFound        = newError(KindNotFound, "SALE_NOT_FOUND", "Sale not found")
	ErrRecordLocked        = newError(KindState, "RECORD_LOCKED", "Record is locked")
	ErrSaleNotEditable     = newError(KindState, "SALE_NOT_EDITABLE", "Only prospects and sales can be edited")

	ErrPaymentDetailsRequired = newError(KindValidation, "PAYMENT_DETAILS_REQUIRED", "Payment details required for conversion")
	ErrPaymentAmountInvalid   = newError(KindValidation, "PAYMENT_AMOUNT_INVALID", "Payment amount must be greater than zero")
	ErrCollectedAmountInvalid = newError(KindValidation, "COLLECTED_AMOUNT_INVALID", "Collected amount cannot be negative")
	ErrCollectedExceedsAmount = newError(KindValidation, "COLLECTED_EXCEEDS_AMOUNT", "Collected amount cannot exceed total amount")
	ErrNotProspect            = newError(KindState, "NOT_PROSPECT", "Only prospects can be converted to a sale")
	ErrPaymentNotInitialized  = newError(KindState, "PAYMENT_NOT_INITIALIZED", "Payment details not initialized. Convert to sale first.")
	ErrPaymentExceedsPending  = newError(KindValidation, "PAYMENT_EXCEEDS_PENDING", "Payment amount exceeds pending amount")
	ErrPaymentRequiresSale    = newError(KindState, "PAYMENT_REQUIRES_SALE", "Payments can only be recorded while in Sale status")

	ErrChecklistIncomplete = newError(KindValidation, "CHECKLIST_INCOMPLETE", "Incomplete checklist. All emails and WhatsApp group must be confirmed.")
	ErrNotSaleStatus       = newError(KindState, "NOT_SALE_STATUS", "Must be converted to Sale before pushing")
	ErrAlreadyPushed       = newError(KindState, "ALREADY_PUSHED", "Already pushed to backend")
	ErrRevertNotAllowed    = newError(KindState, "REVERT_NOT_ALLOWED", "Only sales can be reverted to prospect")

	ErrConcurrentModification = newError(KindConflict, "CONCURRENT_MODIFICATION", "Record was modified concurrently; reload and retry")
	ErrDuplicateRequest       = newError(KindConflict, "DUPLICATE_REQUEST", "Duplicate payment request")
	ErrNotAuthorized          = newError(KindAuthorization, "NOT_AUTHORIZED", "Not authorized to modify this sale")
	ErrAuditNotAuthorized     = newError(KindAuthorization, "NOT_AUTHORIZED", "Only admins can read audit logs")

	ErrInvalidProjectID     = newError(KindValidation, "INVALID_PROJECT_ID", "Invalid project id")
	ErrProjectNotFound      = newError(KindNotFound, "PROJECT_NOT_FOUND", "Project not found")
	ErrProjectPaused        = newError(KindState, "PROJECT_PAUSED", "Project is paused. Resume to edit.")
	ErrProjectPausedQC      = newError(KindState, "PROJECT_PAUSED", "Project is paused.")
	ErrProjectCompleted     = newError(KindState, "PROJECT_COMPLETED", "Project is completed")
	ErrInvalidChecklistStep = newError(KindValidation, "INVALID_CHECKLIST_STEP", "Invalid checklist step")
	ErrQCDetailsRequired    = newError(KindValidation, "QC_DETAILS_REQUIRED", "QC request details are required")
	ErrQCRequestNotFound    = newError(KindNotFound, "QC_REQUEST_NOT_FOUND", "QC request not found")
	ErrQCAlreadyResolved    = newError(KindState, "QC_ALREADY_RESOLVED", "QC request already resolved")
	ErrInvalidQCStatus      = newError(KindValidation, "INVALID_QC_STATUS", "QC status must be Approved or Redo")
	ErrInvalidProjectStatus = newError(KindValidation, "INVALID_PROJECT_STATUS", "Invalid project status")
)

// KindOf reports the kind of a usecase error, or "" for infrastructure errors.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ""
}
