package request

import (
	"strings"
	"time"
	"unicode"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase"
)

type SocialLinkRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type ChecklistStepMeta struct {
	Links []SocialLinkRequest `json:"links"`
	Link  string              `json:"link"`
}

type ChecklistStepRequest struct {
	Step string             `json:"step"`
	Done bool               `json:"done"`
	Date *time.Time         `json:"date"`
	Meta *ChecklistStepMeta `json:"meta"`
}

// ResolveStep accepts both snake_case and camelCase step names.
func (r ChecklistStepRequest) ResolveStep() string {
	s := strings.TrimSpace(r.Step)
	var b strings.Builder
	for i, ch := range s {
		if unicode.IsUpper(ch) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(ch))
			continue
		}
		b.WriteRune(ch)
	}
	return strings.ReplaceAll(b.String(), "q_c_", "qc_")
}

func (r ChecklistStepRequest) ToInput() usecase.ChecklistStepInput {
	in := usecase.ChecklistStepInput{
		Step: r.ResolveStep(),
		Done: r.Done,
		Date: r.Date,
	}
	if r.Meta != nil {
		if r.Meta.Links != nil {
			in.Links = make([]entities.SocialLink, 0, len(r.Meta.Links))
			for _, l := range r.Meta.Links {
				in.Links = append(in.Links, entities.SocialLink{
					Platform: strings.TrimSpace(l.Platform),
					URL:      strings.TrimSpace(l.URL),
				})
			}
		}
		in.Link = r.Meta.Link
	}
	return in
}

type QCRequestCreate struct {
	Details string `json:"details"`
}

type QCRequestResolve struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

type ProjectStatusRequest struct {
	Status string `json:"status"`
}
