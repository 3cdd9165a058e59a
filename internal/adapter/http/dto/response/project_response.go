package response

import (
	"time"

	"salesops/internal/domain/entities"
)

type ProjectResponse struct {
	ID                  string                    `json:"id"`
	SaleID              string                    `json:"sale_id"`
	ClientName          string                    `json:"client_name"`
	CompanyName         string                    `json:"company_name,omitempty"`
	Status              string                    `json:"status"`
	Checklist           entities.ProjectChecklist `json:"checklist"`
	Progress            int                       `json:"progress"`
	SocialLinks         []entities.SocialLink     `json:"social_links"`
	ContentCalendarLink string                    `json:"content_calendar_link,omitempty"`
	QCRequests          []entities.QCRequest      `json:"qc_requests"`
	PendingQC           int                       `json:"pending_qc"`
	Timeline            []entities.TimelineEntry  `json:"timeline"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
	Version             int64                     `json:"version"`
}

// FromProject adds the completion percentage of the 11-step checklist.
func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                  p.ID,
		SaleID:              p.SaleID,
		ClientName:          p.ClientName,
		CompanyName:         p.CompanyName,
		Status:              string(p.Status),
		Checklist:           p.Checklist,
		Progress:            p.Checklist.DoneCount() * 100 / len(entities.ChecklistSteps),
		SocialLinks:         orEmpty(p.SocialLinks),
		ContentCalendarLink: p.ContentCalendarLink,
		QCRequests:          orEmpty(p.QCRequests),
		PendingQC:           p.PendingQC(),
		Timeline:            orEmpty(p.Timeline),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		Version:             p.Version,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

type HandoverResponse struct {
	Sale    SaleResponse    `json:"sale"`
	Project ProjectResponse `json:"project"`
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
