package entities

import "time"

const AuditActionPushToBackend = "PUSH_TO_BACKEND"

// AuditDetails names the records an audited action touched.
type AuditDetails struct {
	SaleID    string `json:"sale_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// AuditLog is an append-only record of a privileged action. It is stored in
// the same atomic write as the change it describes and never updated.
type AuditLog struct {
	ID             string
	Action         string
	PerformedBy    string
	PerformerName  string
	PerformerRole  Role
	TargetResource string
	Details        AuditDetails
	CreatedAt      time.Time
}

// NewHandoverAudit records who pushed sale s to the backend as project p.
func NewHandoverAudit(id string, actor Actor, s Sale, p Project, now time.Time) AuditLog {
	return AuditLog{
		ID:             id,
		Action:         AuditActionPushToBackend,
		PerformedBy:    actor.ID,
		PerformerName:  actor.DisplayName(),
		PerformerRole:  actor.Role,
		TargetResource: "Sale: " + s.ClientName,
		Details:        AuditDetails{SaleID: s.ID, ProjectID: p.ID},
		CreatedAt:      now,
	}
}
