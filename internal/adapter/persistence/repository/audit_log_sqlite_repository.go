package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"
)

const auditColumns = `id, action, performed_by, performer_name, performer_role, target_resource, details, created_at`

type AuditLogSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IAuditLogRepository = (*AuditLogSQLiteRepository)(nil)

func NewAuditLogSQLiteRepository(db *sql.DB) *AuditLogSQLiteRepository {
	return &AuditLogSQLiteRepository{db: db}
}

func (r *AuditLogSQLiteRepository) List(ctx context.Context, offset, limit int) ([]entities.AuditLog, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+auditColumns+` FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []entities.AuditLog
	for rows.Next() {
		var (
			a                 entities.AuditLog
			role, details, ts string
		)
		if err := rows.Scan(&a.ID, &a.Action, &a.PerformedBy, &a.PerformerName, &role, &a.TargetResource, &details, &ts); err != nil {
			return nil, 0, err
		}
		a.PerformerRole = entities.Role(role)
		a.CreatedAt = parseTime(ts)
		if err := json.Unmarshal([]byte(details), &a.Details); err != nil {
			return nil, 0, fmt.Errorf("decode details of audit log %s: %w", a.ID, err)
		}
		logs = append(logs, a)
	}
	return logs, total, rows.Err()
}

func insertAudit(ctx context.Context, db execer, a entities.AuditLog) error {
	details, err := json.Marshal(a.Details)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO audit_logs (`+auditColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Action, a.PerformedBy, a.PerformerName, string(a.PerformerRole), a.TargetResource,
		string(details), formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
