package response

import (
	"time"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase"
)

type AuditPerformerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type AuditLogResponse struct {
	ID             string                 `json:"id"`
	Action         string                 `json:"action"`
	PerformedBy    AuditPerformerResponse `json:"performed_by"`
	TargetResource string                 `json:"target_resource"`
	Details        entities.AuditDetails  `json:"details"`
	CreatedAt      time.Time              `json:"created_at"`
}

func FromAuditLog(a entities.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:     a.ID,
		Action: a.Action,
		PerformedBy: AuditPerformerResponse{
			ID:   a.PerformedBy,
			Name: a.PerformerName,
			Role: string(a.PerformerRole),
		},
		TargetResource: a.TargetResource,
		Details:        a.Details,
		CreatedAt:      a.CreatedAt,
	}
}

// AuditPage lists one page of the trail with its pagination block.
func AuditPage(page usecase.AuditLogPage) Envelope {
	out := make([]AuditLogResponse, 0, len(page.Logs))
	for _, a := range page.Logs {
		out = append(out, FromAuditLog(a))
	}
	env := List(out)
	env.Pagination = &Pagination{Total: page.Total, Pages: page.Pages, Current: page.Page}
	return env
}
