package usecase

//go:generate mockgen -source=sale_usecase.go -destination=../adapter/http/handlers/mocks/mock_sale_usecase.go -package=mocks

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ISaleUseCase drives a sale through the pipeline.
//
// Status graph:
//   - Prospect -> Sale (ConvertToSale)
//   - Sale -> Prospect (RevertToProspect, unlocked only)
//   - Sale -> Handover (PushToBackend, locks the sale and spawns its project)

type ISaleUseCase interface {
	CreateProspect(ctx context.Context, actor entities.Actor, in CreateProspectInput) (entities.Sale, error)
	ListSales(ctx context.Context, actor entities.Actor) ([]entities.Sale, error)
	GetSale(ctx context.Context, actor entities.Actor, id string) (entities.Sale, error)
	UpdateSale(ctx context.Context, actor entities.Actor, id string, in UpdateSaleInput) (entities.Sale, error)
	ConvertToSale(ctx context.Context, actor entities.Actor, id string, in ConvertInput) (entities.Sale, error)
	AddPayment(ctx context.Context, actor entities.Actor, id string, in AddPaymentInput) (entities.Sale, error)
	PushToBackend(ctx context.Context, actor entities.Actor, id string, checklist *entities.HandoverChecklist) (entities.Sale, entities.Project, error)
	RevertToProspect(ctx context.Context, actor entities.Actor, id string) (entities.Sale, error)
	UpdateChecklistProgress(ctx context.Context, actor entities.Actor, id string, patch ChecklistPatch) (entities.Sale, error)
	ReconcileHandovers(ctx context.Context) (int, error)
}

type CreateProspectInput struct {
	ClientName   string
	ClientPhone  string
	CompanyName  string
	Price        *decimal.Decimal
	Notes        string
	Requirements string
}

// UpdateSaleInput holds the editable descriptive fields. Nil means unchanged.
type UpdateSaleInput struct {
	ClientName   *string
	ClientPhone  *string
	CompanyName  *string
	Price        *decimal.Decimal
	Notes        *string
	Requirements *string
}

type ConvertInput struct {
	Amount          *decimal.Decimal
	CollectedAmount *decimal.Decimal
	Method          string
	Notes           string
}

type AddPaymentInput struct {
	Amount         decimal.Decimal
	Method         string
	Notes          string
	IdempotencyKey string
}

type SaleUseCase struct {
	sales       interfaces.ISaleRepository
	projects    interfaces.IProjectRepository
	events      interfaces.IEventPublisher
	idempotency interfaces.IIdempotencyStore
	log         *zap.Logger
	now         func() time.Time

	revertClearsPayment bool
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

type SaleOption func(*SaleUseCase)

// WithIdempotencyStore enables Idempotency-Key checks on AddPayment.
func WithIdempotencyStore(s interfaces.IIdempotencyStore) SaleOption {
	return func(u *SaleUseCase) { u.idempotency = s }
}

// WithRevertClearsPayment makes RevertToProspect drop the payment instead of
// keeping it for history.
func WithRevertClearsPayment(clear bool) SaleOption {
	return func(u *SaleUseCase) { u.revertClearsPayment = clear }
}

func WithSaleLogger(l *zap.Logger) SaleOption {
	return func(u *SaleUseCase) { u.log = l.Named("sale.usecase") }
}

func WithSaleClock(now func() time.Time) SaleOption {
	return func(u *SaleUseCase) { u.now = now }
}

func NewSaleUseCase(sales interfaces.ISaleRepository, projects interfaces.IProjectRepository, events interfaces.IEventPublisher, opts ...SaleOption) *SaleUseCase {
	u := &SaleUseCase{
		sales:    sales,
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

func (u *SaleUseCase) CreateProspect(ctx context.Context, actor entities.Actor, in CreateProspectInput) (entities.Sale, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	if in.ClientName == "" {
		return entities.Sale{}, ErrClientNameRequired
	}
	if in.ClientPhone == "" {
		return entities.Sale{}, ErrClientPhoneRequired
	}
	if in.Price != nil && in.Price.IsNegative() {
		return entities.Sale{}, ErrInvalidPrice
	}

	now := u.now()
	s := entities.Sale{
		ID:           uuid.NewString(),
		ClientName:   in.ClientName,
		ClientPhone:  in.ClientPhone,
		CompanyName:  strings.TrimSpace(in.CompanyName),
		Price:        in.Price,
		Notes:        in.Notes,
		Requirements: in.Requirements,
		Status:       entities.SaleStatusProspect,
		CreatedBy:    actor.ID,
		AssignedTo:   actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
	created, err := u.sales.Create(ctx, s)
	if err != nil {
		u.log.Error("create prospect failed", zap.String("sale_id", s.ID), zap.Error(err))
		return entities.Sale{}, err
	}
	u.log.Info("prospect created", zap.String("sale_id", created.ID), zap.String("actor_id", actor.ID))
	u.publish(ctx, entities.EventProspectCreated, created, actor)
	return created, nil
}

func (u *SaleUseCase) ListSales(ctx context.Context, actor entities.Actor) ([]entities.Sale, error) {
	filter := interfaces.SaleFilter{}
	if !actor.SeesAllSales() {
		filter.AssignedTo = actor.ID
	}
	sales, err := u.sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sales, func(i, j int) bool { return sales[i].CreatedAt.After(sales[j].CreatedAt) })
	return sales, nil
}

// GetSale applies the same visibility rule as ListSales.
func (u *SaleUseCase) GetSale(ctx context.Context, actor entities.Actor, id string) (entities.Sale, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if err := authorizeSale(actor, s); err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

func (u *SaleUseCase) UpdateSale(ctx context.Context, actor entities.Actor, id string, in UpdateSaleInput) (entities.Sale, error) {
	s, err := u.loadForWrite(ctx, actor, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if !s.Editable() {
		return entities.Sale{}, ErrSaleNotEditable
	}

	if in.ClientName != nil {
		v := strings.TrimSpace(*in.ClientName)
		if v == "" {
			return entities.Sale{}, ErrClientNameRequired
		}
		s.ClientName = v
	}
	if in.ClientPhone != nil {
		v := strings.TrimSpace(*in.ClientPhone)
		if v == "" {
			return entities.Sale{}, ErrClientPhoneRequired
		}
		s.ClientPhone = v
	}
	if in.CompanyName != nil {
		s.CompanyName = strings.TrimSpace(*in.CompanyName)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return entities.Sale{}, ErrInvalidPrice
		}
		s.Price = in.Price
	}
	if in.Notes != nil {
		s.Notes = *in.Notes
	}
	if in.Requirements != nil {
		s.Requirements = *in.Requirements
	}

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Sale{}, err
	}
	u.publish(ctx, entities.EventSaleUpdated, updated, actor)
	return updated, nil
}

func (u *SaleUseCase) ConvertToSale(ctx context.Context, actor entities.Actor, id string, in ConvertInput) (entities.Sale, error) {
	s, err := u.loadForWrite(ctx, actor, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.Status != entities.SaleStatusProspect {
		return entities.Sale{}, ErrNotProspect
	}
	if in.Amount == nil || in.CollectedAmount == nil {
		return entities.Sale{}, ErrPaymentDetailsRequired
	}

	payment, err := NewPayment(*in.Amount, *in.CollectedAmount, in.Method, in.Notes, actor, u.now())
	if err != nil {
		return entities.Sale{}, err
	}
	s.Status = entities.SaleStatusSale
	s.Payment = &payment

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Sale{}, err
	}
	u.log.Info("sale converted",
		zap.String("sale_id", updated.ID),
		zap.String("amount", payment.Amount.String()),
		zap.String("collected", payment.CollectedAmount.String()),
	)
	u.publish(ctx, entities.EventSaleConverted, updated, actor)
	return updated, nil
}

func (u *SaleUseCase) AddPayment(ctx context.Context, actor entities.Actor, id string, in AddPaymentInput) (result entities.Sale, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}

	if key := strings.TrimSpace(in.IdempotencyKey); key != "" && u.idempotency != nil {
		scoped := "add-payment:" + id + ":" + key
		ok, rerr := u.idempotency.Reserve(ctx, scoped)
		if rerr != nil {
			u.log.Error("idempotency reserve failed", zap.String("sale_id", id), zap.Error(rerr))
			return entities.Sale{}, rerr
		}
		if !ok {
			u.log.Warn("duplicate add-payment request", zap.String("sale_id", id), zap.String("idempotency_key", key))
			return entities.Sale{}, ErrDuplicateRequest
		}
		defer func() {
			if err == nil {
				return
			}
			if relErr := u.idempotency.Release(context.WithoutCancel(ctx), scoped); relErr != nil {
				u.log.Warn("idempotency release failed", zap.String("sale_id", id), zap.Error(relErr))
			}
		}()
	}

	s, err := u.loadForWrite(ctx, actor, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.Payment == nil || !s.Payment.Amount.IsPositive() {
		return entities.Sale{}, ErrPaymentNotInitialized
	}
	// A reverted prospect keeps its payment but takes no new entries.
	if s.Status != entities.SaleStatusSale {
		return entities.Sale{}, ErrPaymentRequiresSale
	}

	payment, err := ApplyPayment(*s.Payment, in.Amount, in.Method, in.Notes, actor, u.now())
	if err != nil {
		return entities.Sale{}, err
	}
	s.Payment = &payment

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Sale{}, err
	}
	u.log.Info("payment added",
		zap.String("sale_id", updated.ID),
		zap.String("amount", in.Amount.String()),
		zap.String("pending", payment.PendingAmount.String()),
	)
	u.publish(ctx, entities.EventPaymentAdded, updated, actor)
	return updated, nil
}

func (u *SaleUseCase) PushToBackend(ctx context.Context, actor entities.Actor, id string, checklist *entities.HandoverChecklist) (entities.Sale, entities.Project, error) {
	u.log.Info("push start", zap.String("sale_id", id), zap.String("actor_id", actor.ID))
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Sale{}, entities.Project{}, err
	}
	if err := authorizeSale(actor, s); err != nil {
		return entities.Sale{}, entities.Project{}, err
	}
	if s.IsLocked {
		return entities.Sale{}, entities.Project{}, ErrAlreadyPushed
	}
	if err := checkHandoverGate(checklist); err != nil {
		return entities.Sale{}, entities.Project{}, err
	}
	if s.Status != entities.SaleStatusSale {
		return entities.Sale{}, entities.Project{}, ErrNotSaleStatus
	}

	now := u.now()
	expected := s.Version
	s.Status = entities.SaleStatusHandover
	s.Checklist = *checklist
	s.IsLocked = true
	s.UpdatedAt = now
	s.Version = expected + 1
	p := entities.NewProject(uuid.NewString(), s, actor.DisplayName(), now)
	audit := entities.NewHandoverAudit(uuid.NewString(), actor, s, p, now)

	sale, project, err := u.sales.CommitHandover(ctx, s, expected, p, audit)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrVersionConflict):
			u.log.Warn("push lost version race", zap.String("sale_id", id), zap.Int64("expected_version", expected))
			return entities.Sale{}, entities.Project{}, ErrConcurrentModification
		case errors.Is(err, interfaces.ErrDuplicateProject):
			return entities.Sale{}, entities.Project{}, ErrAlreadyPushed
		}
		u.log.Error("push commit failed", zap.String("sale_id", id), zap.Error(err))
		return entities.Sale{}, entities.Project{}, err
	}
	u.log.Info("push success", zap.String("sale_id", sale.ID), zap.String("project_id", project.ID))
	u.publish(ctx, entities.EventSaleHandover, sale, actor)
	u.publish(ctx, entities.EventNewProject, project, actor)
	return sale, project, nil
}

func (u *SaleUseCase) RevertToProspect(ctx context.Context, actor entities.Actor, id string) (entities.Sale, error) {
	s, err := u.loadForWrite(ctx, actor, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.Status != entities.SaleStatusSale {
		return entities.Sale{}, ErrRevertNotAllowed
	}
	s.Status = entities.SaleStatusProspect
	if u.revertClearsPayment {
		s.Payment = nil
	}

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Sale{}, err
	}
	u.log.Info("sale reverted", zap.String("sale_id", updated.ID), zap.Bool("payment_cleared", u.revertClearsPayment))
	u.publish(ctx, entities.EventSaleReverted, updated, actor)
	return updated, nil
}

func (u *SaleUseCase) UpdateChecklistProgress(ctx context.Context, actor entities.Actor, id string, patch ChecklistPatch) (entities.Sale, error) {
	s, err := u.loadForWrite(ctx, actor, id)
	if err != nil {
		return entities.Sale{}, err
	}
	s.Checklist = patch.Merge(s.Checklist)

	updated, err := u.save(ctx, s)
	if err != nil {
		return entities.Sale{}, err
	}
	u.publish(ctx, entities.EventChecklistUpdated, updated, actor)
	return updated, nil
}

// ReconcileHandovers creates the missing project of every Handover sale.
// Running it again creates nothing.
func (u *SaleUseCase) ReconcileHandovers(ctx context.Context) (int, error) {
	sales, err := u.sales.List(ctx, interfaces.SaleFilter{Status: entities.SaleStatusHandover})
	if err != nil {
		return 0, err
	}

	created := 0
	for _, s := range sales {
		existing, err := u.projects.GetBySaleID(ctx, s.ID)
		if err != nil {
			return created, err
		}
		if existing.ID != "" {
			continue
		}

		p := entities.NewProject(uuid.NewString(), s, entities.SystemActor.DisplayName(), u.now())
		p, err = u.projects.Create(ctx, p)
		if errors.Is(err, interfaces.ErrDuplicateProject) {
			continue
		}
		if err != nil {
			u.log.Error("reconcile create project failed", zap.String("sale_id", s.ID), zap.Error(err))
			return created, err
		}
		created++
		u.log.Info("reconciled missing project", zap.String("sale_id", s.ID), zap.String("project_id", p.ID))
		u.publish(ctx, entities.EventNewProject, p, entities.SystemActor)
	}
	return created, nil
}

func (u *SaleUseCase) load(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	s, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

// loadForWrite returns the sale only if actor may mutate it and it is not
// locked.
func (u *SaleUseCase) loadForWrite(ctx context.Context, actor entities.Actor, id string) (entities.Sale, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if err := authorizeSale(actor, s); err != nil {
		return entities.Sale{}, err
	}
	if s.IsLocked {
		return entities.Sale{}, ErrRecordLocked
	}
	return s, nil
}

func (u *SaleUseCase) save(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	expected := s.Version
	s.Version = expected + 1
	s.UpdatedAt = u.now()
	updated, err := u.sales.Update(ctx, s, expected)
	if errors.Is(err, interfaces.ErrVersionConflict) {
		u.log.Warn("sale write lost version race", zap.String("sale_id", s.ID), zap.Int64("expected_version", expected))
		return entities.Sale{}, ErrConcurrentModification
	}
	if err != nil {
		u.log.Error("sale write failed", zap.String("sale_id", s.ID), zap.Error(err))
		return entities.Sale{}, err
	}
	return updated, nil
}

func (u *SaleUseCase) publish(ctx context.Context, name string, entity any, actor entities.Actor) {
	if u.events == nil {
		return
	}
	u.events.Publish(ctx, entities.Event{
		Name:      name,
		Entity:    entity,
		Actor:     actor.DisplayName(),
		Timestamp: u.now(),
	})
}

func authorizeSale(actor entities.Actor, s entities.Sale) error {
	if actor.SeesAllSales() || s.AssignedTo == actor.ID {
		return nil
	}
	return ErrNotAuthorized
}
