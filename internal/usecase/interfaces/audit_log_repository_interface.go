package interfaces

//go:generate mockgen -source=audit_log_repository_interface.go -destination=mocks/mock_audit_log_repository.go -package=mock_interfaces

import (
	"context"

	"salesops/internal/domain/entities"
)

// IAuditLogRepository reads audit entries. Entries are only written by
// ISaleRepository.CommitHandover, inside the handover transaction.
//
// List returns the entries newest first, skipping offset and returning at
// most limit, plus the total number stored.
type IAuditLogRepository interface {
	List(ctx context.Context, offset, limit int) ([]entities.AuditLog, int, error)
}
