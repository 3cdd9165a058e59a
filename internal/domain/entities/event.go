package entities

import "time"

const (
	EventProspectCreated  = "prospect_created"
	EventSaleUpdated      = "sale_updated"
	EventSaleConverted    = "sale_converted"
	EventPaymentAdded     = "payment_added"
	EventSaleHandover     = "sale_handover"
	EventNewProject       = "new_project"
	EventSaleReverted     = "sale_reverted"
	EventChecklistUpdated = "checklist_updated"
	EventProjectUpdated   = "project_updated"
)

// Event is a best-effort notification of a committed mutation. Seq is
// assigned by the broadcaster; clients that see a gap re-fetch state.
type Event struct {
	Seq       uint64    `json:"seq"`
	Name      string    `json:"name"`
	Entity    any       `json:"entity"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}
