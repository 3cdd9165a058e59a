package usecase

//go:generate mockgen -source=project_usecase.go -destination=../adapter/http/handlers/mocks/mock_project_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IProjectUseCase covers the account-manager side after handover.

type IProjectUseCase interface {
	ListProjects(ctx context.Context, actor entities.Actor) ([]entities.Project, error)
	GetProject(ctx context.Context, actor entities.Actor, id string) (entities.Project, error)
	UpdateChecklistStep(ctx context.Context, actor entities.Actor, id string, in ChecklistStepInput) (entities.Project, error)
	CreateQCRequest(ctx context.Context, actor entities.Actor, id string, details string) (entities.Project, error)
	ResolveQCRequest(ctx context.Context, actor entities.Actor, id, qcID string, status entities.QCStatus, feedback string) (entities.Project, error)
	ToggleStatus(ctx context.Context, actor entities.Actor, id string, status entities.ProjectStatus) (entities.Project, error)
}

// ChecklistStepInput sets one project step. Links is stored when the step is
// social_media_links, Link when it is spreadsheet_link_added.
type ChecklistStepInput struct {
	Step  string
	Done  bool
	Date  *time.Time
	Links []entities.SocialLink
	Link  string
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	events   interfaces.IEventPublisher
	log      *zap.Logger
	now      func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

type ProjectOption func(*ProjectUseCase)

func WithProjectLogger(l *zap.Logger) ProjectOption {
	return func(u *ProjectUseCase) { u.log = l.Named("project.usecase") }
}

func WithProjectClock(now func() time.Time) ProjectOption {
	return func(u *ProjectUseCase) { u.now = now }
}

func NewProjectUseCase(projects interfaces.IProjectRepository, events interfaces.IEventPublisher, opts ...ProjectOption) *ProjectUseCase {
	u := &ProjectUseCase{
		projects: projects,
		events:   events,
		log:      zap.NewNop(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *ProjectUseCase) ListProjects(ctx context.Context, _ entities.Actor) ([]entities.Project, error) {
	projects, err := u.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool { return projects[i].CreatedAt.After(projects[j].CreatedAt) })
	return projects, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, _ entities.Actor, id string) (entities.Project, error) {
	return u.load(ctx, id)
}

func (u *ProjectUseCase) UpdateChecklistStep(ctx context.Context, actor entities.Actor, id string, in ChecklistStepInput) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status == entities.ProjectStatusPaused {
		return entities.Project{}, ErrProjectPaused
	}

	name := entities.ChecklistStep(strings.TrimSpace(in.Step))
	step := p.Checklist.Step(name)
	if step == nil {
		return entities.Project{}, ErrInvalidChecklistStep
	}

	now := u.now()
	date := now
	if in.Date != nil {
		date = in.Date.UTC()
	}
	step.Done = in.Done
	step.Date = &date

	switch {
	case name == entities.StepSocialMediaLinks && in.Links != nil:
		p.SocialLinks = append([]entities.SocialLink{}, in.Links...)
	case name == entities.StepSpreadsheetLinkAdded && strings.TrimSpace(in.Link) != "":
		p.ContentCalendarLink = strings.TrimSpace(in.Link)
	}
	p.AppendTimeline(fmt.Sprintf("Checklist step %s set to %t", name, in.Done), actor.DisplayName(), now)

	return u.saveAndPublish(ctx, p, actor)
}

func (u *ProjectUseCase) CreateQCRequest(ctx context.Context, actor entities.Actor, id string, details string) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status == entities.ProjectStatusPaused {
		return entities.Project{}, ErrProjectPausedQC
	}
	details = strings.TrimSpace(details)
	if details == "" {
		return entities.Project{}, ErrQCDetailsRequired
	}

	now := u.now()
	p.QCRequests = append(p.QCRequests, entities.QCRequest{
		ID:          uuid.NewString(),
		Details:     details,
		Status:      entities.QCStatusPending,
		RequestDate: now,
	})
	if !p.Checklist.QCRequestsCreated.Done {
		p.Checklist.QCRequestsCreated = entities.StepState{Done: true, Date: &now}
	}
	p.AppendTimeline("QC request created", actor.DisplayName(), now)

	return u.saveAndPublish(ctx, p, actor)
}

// ResolveQCRequest records a reviewer verdict. Requests keep their order and
// only Pending ones can be resolved.
func (u *ProjectUseCase) ResolveQCRequest(ctx context.Context, actor entities.Actor, id, qcID string, status entities.QCStatus, feedback string) (entities.Project, error) {
	if status != entities.QCStatusApproved && status != entities.QCStatusRedo {
		return entities.Project{}, ErrInvalidQCStatus
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status == entities.ProjectStatusPaused {
		return entities.Project{}, ErrProjectPausedQC
	}

	idx := -1
	for i := range p.QCRequests {
		if p.QCRequests[i].ID == qcID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Project{}, ErrQCRequestNotFound
	}
	if p.QCRequests[idx].Status != entities.QCStatusPending {
		return entities.Project{}, ErrQCAlreadyResolved
	}

	now := u.now()
	requests := append([]entities.QCRequest{}, p.QCRequests...)
	requests[idx].Status = status
	requests[idx].Feedback = strings.TrimSpace(feedback)
	requests[idx].ResolvedDate = &now
	p.QCRequests = requests
	p.AppendTimeline(fmt.Sprintf("QC request %s", strings.ToLower(string(status))), actor.DisplayName(), now)

	return u.saveAndPublish(ctx, p, actor)
}

// ToggleStatus moves between Active and Paused, or to Completed. Completed
// projects stay completed.
func (u *ProjectUseCase) ToggleStatus(ctx context.Context, actor entities.Actor, id string, status entities.ProjectStatus) (entities.Project, error) {
	switch status {
	case entities.ProjectStatusActive, entities.ProjectStatusPaused, entities.ProjectStatusCompleted:
	default:
		return entities.Project{}, ErrInvalidProjectStatus
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status == entities.ProjectStatusCompleted && status != entities.ProjectStatusCompleted {
		return entities.Project{}, ErrProjectCompleted
	}

	p.Status = status
	p.AppendTimeline(fmt.Sprintf("Status changed to %s", status), actor.DisplayName(), u.now())
	return u.saveAndPublish(ctx, p, actor)
}

func (u *ProjectUseCase) load(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) saveAndPublish(ctx context.Context, p entities.Project, actor entities.Actor) (entities.Project, error) {
	expected := p.Version
	p.Version = expected + 1
	p.UpdatedAt = u.now()

	updated, err := u.projects.Update(ctx, p, expected)
	if errors.Is(err, interfaces.ErrVersionConflict) {
		u.log.Warn("project write lost version race", zap.String("project_id", p.ID), zap.Int64("expected_version", expected))
		return entities.Project{}, ErrConcurrentModification
	}
	if err != nil {
		u.log.Error("project write failed", zap.String("project_id", p.ID), zap.Error(err))
		return entities.Project{}, err
	}

	if u.events != nil {
		u.events.Publish(ctx, entities.Event{
			Name:      entities.EventProjectUpdated,
			Entity:    updated,
			Actor:     actor.DisplayName(),
			Timestamp: u.now(),
		})
	}
	return updated, nil
}
