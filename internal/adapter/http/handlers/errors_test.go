package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"salesops/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", usecase.ErrPaymentAmountInvalid, http.StatusBadRequest, "PAYMENT_AMOUNT_INVALID"},
		{"not found", usecase.ErrSaleNotFound, http.StatusNotFound, "SALE_NOT_FOUND"},
		{"state", usecase.ErrRecordLocked, http.StatusForbidden, "RECORD_LOCKED"},
		{"conflict", usecase.ErrConcurrentModification, http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"authorization", usecase.ErrNotAuthorized, http.StatusForbidden, "NOT_AUTHORIZED"},
		{"wrapped", fmt.Errorf("push: %w", usecase.ErrChecklistIncomplete), http.StatusBadRequest, "CHECKLIST_INCOMPLETE"},
		{"infrastructure", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapError(tc.err)
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, appErr.HTTPStatus)
			}
			if appErr.Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, appErr.Code)
			}
			if !errors.Is(appErr, tc.err) {
				t.Fatalf("expected app error to wrap %v", tc.err)
			}
		})
	}
}
