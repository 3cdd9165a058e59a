package usecase

//go:generate mockgen -source=audit_usecase.go -destination=../adapter/http/handlers/mocks/mock_audit_usecase.go -package=mocks

import (
	"context"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultAuditPageSize = 20
	MaxAuditPageSize     = 100
)

type IAuditUseCase interface {
	ListAuditLogs(ctx context.Context, actor entities.Actor, page, limit int) (AuditLogPage, error)
}

// AuditLogPage is one page of the audit trail, newest first. Page is
// 1-based.
type AuditLogPage struct {
	Logs  []entities.AuditLog
	Total int
	Page  int
	Pages int
}

type AuditUseCase struct {
	audit interfaces.IAuditLogRepository
	log   *zap.Logger
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

type AuditOption func(*AuditUseCase)

func WithAuditLogger(l *zap.Logger) AuditOption {
	return func(u *AuditUseCase) { u.log = l.Named("audit.usecase") }
}

func NewAuditUseCase(audit interfaces.IAuditLogRepository, opts ...AuditOption) *AuditUseCase {
	u := &AuditUseCase{audit: audit, log: zap.NewNop()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ListAuditLogs returns one page of the trail. A page below 1 reads the
// first page; a limit below 1 uses the default and is capped at
// MaxAuditPageSize.
func (u *AuditUseCase) ListAuditLogs(ctx context.Context, actor entities.Actor, page, limit int) (AuditLogPage, error) {
	if !actor.ReadsAuditLogs() {
		return AuditLogPage{}, ErrAuditNotAuthorized
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultAuditPageSize
	}
	limit = min(limit, MaxAuditPageSize)

	logs, total, err := u.audit.List(ctx, (page-1)*limit, limit)
	if err != nil {
		u.log.Error("list audit logs failed", zap.Error(err))
		return AuditLogPage{}, err
	}
	return AuditLogPage{
		Logs:  logs,
		Total: total,
		Page:  page,
		Pages: (total + limit - 1) / limit,
	}, nil
}
