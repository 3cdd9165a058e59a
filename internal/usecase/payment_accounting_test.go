package usecase

import (
	"errors"
	"testing"
	"time"

	"salesops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	testNow   = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	testActor = entities.Actor{ID: "u-1", Name: "Maya", Role: entities.RoleSalesManager}
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewPayment(t *testing.T) {
	t.Run("rejects non positive amount", func(t *testing.T) {
		for _, amount := range []string{"0", "-5"} {
			_, err := NewPayment(d(amount), d("0"), "", "", testActor, testNow)
			if !errors.Is(err, ErrPaymentAmountInvalid) {
				t.Fatalf("amount %s: expected ErrPaymentAmountInvalid, got %v", amount, err)
			}
		}
	})

	t.Run("rejects negative collected", func(t *testing.T) {
		_, err := NewPayment(d("100"), d("-1"), "", "", testActor, testNow)
		if !errors.Is(err, ErrCollectedAmountInvalid) {
			t.Fatalf("expected ErrCollectedAmountInvalid, got %v", err)
		}
	})

	t.Run("rejects collected above amount", func(t *testing.T) {
		_, err := NewPayment(d("100"), d("150"), "", "", testActor, testNow)
		if !errors.Is(err, ErrCollectedExceedsAmount) {
			t.Fatalf("expected ErrCollectedExceedsAmount, got %v", err)
		}
	})

	t.Run("partial seeds history", func(t *testing.T) {
		p, err := NewPayment(d("1000"), d("400"), "pix", "", testActor, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.PendingAmount.Equal(d("600")) || p.PaymentType != entities.PaymentTypePartial || p.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if len(p.History) != 1 || !p.History[0].Amount.Equal(d("400")) || p.History[0].Notes != initialPaymentNote || p.History[0].RecordedBy != "u-1" {
			t.Fatalf("unexpected history: %+v", p.History)
		}
		if !p.Balanced() {
			t.Fatalf("expected balanced payment")
		}
	})

	t.Run("full payment", func(t *testing.T) {
		p, err := NewPayment(d("1000"), d("1000"), "", "paid upfront", testActor, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.PendingAmount.IsZero() || p.PaymentType != entities.PaymentTypeFull || p.Status != entities.PaymentStatusReceived {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.History[0].Notes != "paid upfront" {
			t.Fatalf("expected caller notes, got %q", p.History[0].Notes)
		}
	})

	t.Run("nothing collected leaves history empty", func(t *testing.T) {
		p, err := NewPayment(d("500"), d("0"), "", "", testActor, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.History == nil || len(p.History) != 0 {
			t.Fatalf("expected empty history, got %+v", p.History)
		}
		if !p.Balanced() {
			t.Fatalf("expected balanced payment")
		}
	})
}

func TestApplyPayment(t *testing.T) {
	base, err := NewPayment(d("1000"), d("400"), "pix", "", testActor, testNow)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	t.Run("rejects non positive", func(t *testing.T) {
		_, err := ApplyPayment(base, d("0"), "", "", testActor, testNow)
		if !errors.Is(err, ErrPaymentAmountInvalid) {
			t.Fatalf("expected ErrPaymentAmountInvalid, got %v", err)
		}
	})

	t.Run("rejects above pending without clamping", func(t *testing.T) {
		_, err := ApplyPayment(base, d("600.01"), "", "", testActor, testNow)
		if !errors.Is(err, ErrPaymentExceedsPending) {
			t.Fatalf("expected ErrPaymentExceedsPending, got %v", err)
		}
	})

	t.Run("settles exactly", func(t *testing.T) {
		later := testNow.Add(time.Hour)
		p, err := ApplyPayment(base, d("600"), "card", "final", testActor, later)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.CollectedAmount.Equal(d("1000")) || !p.PendingAmount.IsZero() || p.Status != entities.PaymentStatusReceived {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if len(p.History) != 2 || !p.History[1].Date.Equal(later) {
			t.Fatalf("unexpected history: %+v", p.History)
		}
		if !p.Balanced() {
			t.Fatalf("expected balanced payment")
		}
	})

	t.Run("does not modify input history", func(t *testing.T) {
		if _, err := ApplyPayment(base, d("100"), "", "", testActor, testNow); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(base.History) != 1 || !base.CollectedAmount.Equal(d("400")) {
			t.Fatalf("input payment was modified: %+v", base)
		}
	})

	t.Run("decimal cents do not drift", func(t *testing.T) {
		p, err := NewPayment(d("0.30"), d("0"), "", "", testActor, testNow)
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		for i := 0; i < 3; i++ {
			p, err = ApplyPayment(p, d("0.10"), "", "", testActor, testNow)
			if err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
		if !p.PendingAmount.IsZero() || p.Status != entities.PaymentStatusReceived || !p.Balanced() {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})
}

func TestChecklistGate(t *testing.T) {
	if err := checkHandoverGate(nil); !errors.Is(err, ErrChecklistIncomplete) {
		t.Fatalf("nil checklist: expected ErrChecklistIncomplete, got %v", err)
	}
	partial := &entities.HandoverChecklist{EmailSentToAccounts: true, EmailSentToBackend: true, EmailSentForPaymentConfirmation: true}
	if err := checkHandoverGate(partial); !errors.Is(err, ErrChecklistIncomplete) {
		t.Fatalf("partial checklist: expected ErrChecklistIncomplete, got %v", err)
	}
	full := *partial
	full.WhatsappGroupCreated = true
	if err := checkHandoverGate(&full); err != nil {
		t.Fatalf("complete checklist: unexpected error %v", err)
	}
}

func TestChecklistPatch_Merge(t *testing.T) {
	yes, no := true, false
	stored := entities.HandoverChecklist{EmailSentToAccounts: true, WhatsappGroupCreated: true}
	got := ChecklistPatch{EmailSentToBackend: &yes, WhatsappGroupCreated: &no}.Merge(stored)
	want := entities.HandoverChecklist{EmailSentToAccounts: true, EmailSentToBackend: true}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
