package interfaces

//go:generate mockgen -source=sale_repository_interface.go -destination=mocks/mock_sale_repository.go -package=mock_interfaces

import (
	"context"
	"errors"

	"salesops/internal/domain/entities"
)

var (
	// ErrVersionConflict is returned by conditional writes when the stored
	// version no longer matches the expected one.
	ErrVersionConflict = errors.New("version conflict")
	// ErrDuplicateProject is returned when a project already exists for a sale.
	ErrDuplicateProject = errors.New("project already exists for sale")
	// ErrUnbalancedPayment is returned when a stored payment fails
	// amount = collected + pending or collected = sum(history).
	ErrUnbalancedPayment = errors.New("stored payment is unbalanced")
)

// SaleFilter narrows List results. Empty fields match everything.
type SaleFilter struct {
	AssignedTo string
	Status     entities.SaleStatus
}

// ISaleRepository abstracts persistence for Sale.
//
// Every write is conditional on the version the caller loaded:
//   - Update stores s only if the stored version equals expectedVersion
//   - CommitHandover stores the locked sale, inserts its project and appends
//     the audit entry in one atomic write; none is visible without the others

type ISaleRepository interface {
	Create(ctx context.Context, s entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]entities.Sale, error)
	Update(ctx context.Context, s entities.Sale, expectedVersion int64) (entities.Sale, error)
	CommitHandover(ctx context.Context, s entities.Sale, expectedVersion int64, p entities.Project, audit entities.AuditLog) (entities.Sale, entities.Project, error)
}
