package response

import (
	"testing"
	"time"

	"salesops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromSale(t *testing.T) {
	now := time.Now().UTC()
	s := entities.Sale{
		ID:     "s-1",
		Status: entities.SaleStatusSale,
		Payment: &entities.Payment{
			Amount:          decimal.NewFromInt(1000),
			CollectedAmount: decimal.NewFromInt(400),
			PendingAmount:   decimal.NewFromInt(600),
			PaymentType:     entities.PaymentTypePartial,
			Status:          entities.PaymentStatusPending,
			History:         []entities.PaymentRecord{{Amount: decimal.NewFromInt(400), Date: now}},
		},
		Checklist: entities.HandoverChecklist{EmailSentToAccounts: true},
	}

	res := FromSale(s)
	if res.Payment == nil || res.Payment.CollectedPct != "40.00" {
		t.Fatalf("unexpected payment %+v", res.Payment)
	}
	if len(res.Payment.History) != 1 || !res.Payment.History[0].Amount.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected history %+v", res.Payment.History)
	}
	if res.ChecklistComplete {
		t.Fatalf("expected incomplete checklist")
	}
	if FromSale(entities.Sale{ID: "p"}).Payment != nil {
		t.Fatalf("expected nil payment for prospect")
	}
}

func TestFromProject(t *testing.T) {
	p := entities.NewProject("p-1", entities.Sale{ID: "s-1", ClientName: "Acme"}, "Alice", time.Now())
	p.Checklist.MeetingScheduled.Done = true
	p.Checklist.WorkStarted.Done = true
	p.QCRequests = []entities.QCRequest{{ID: "q1", Status: entities.QCStatusPending}, {ID: "q2", Status: entities.QCStatusApproved}}

	res := FromProject(p)
	if res.Progress != 18 {
		t.Fatalf("expected 18%% progress, got %d", res.Progress)
	}
	if res.PendingQC != 1 {
		t.Fatalf("expected 1 pending qc, got %d", res.PendingQC)
	}
	if res.SocialLinks == nil || res.Timeline == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}

func TestList(t *testing.T) {
	env := List[SaleResponse](nil)
	if !env.Success || env.Count == nil || *env.Count != 0 {
		t.Fatalf("unexpected envelope %+v", env)
	}
}
