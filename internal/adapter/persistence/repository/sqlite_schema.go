package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// sqliteMigrations returns the DDL statements for the embedded store.
// Nested values (payment, checklists, QC requests, timeline) are JSON text.
func sqliteMigrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS sales (
			id            TEXT PRIMARY KEY,
			client_name   TEXT NOT NULL,
			client_phone  TEXT NOT NULL,
			company_name  TEXT NOT NULL DEFAULT '',
			price         TEXT,
			notes         TEXT NOT NULL DEFAULT '',
			requirements  TEXT NOT NULL DEFAULT '',
			status        TEXT NOT NULL,
			payment       TEXT,
			checklist     TEXT NOT NULL DEFAULT '{}',
			is_locked     INTEGER NOT NULL DEFAULT 0,
			created_by    TEXT NOT NULL,
			assigned_to   TEXT NOT NULL,
			created_at    TEXT NOT NULL,
			updated_at    TEXT NOT NULL,
			version       INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_assigned_to ON sales(assigned_to)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_status ON sales(status)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id                    TEXT PRIMARY KEY,
			sale_id               TEXT NOT NULL UNIQUE REFERENCES sales(id),
			client_name           TEXT NOT NULL,
			company_name          TEXT NOT NULL DEFAULT '',
			status                TEXT NOT NULL,
			checklist             TEXT NOT NULL,
			social_links          TEXT NOT NULL DEFAULT '[]',
			content_calendar_link TEXT NOT NULL DEFAULT '',
			qc_requests           TEXT NOT NULL DEFAULT '[]',
			timeline              TEXT NOT NULL DEFAULT '[]',
			created_at            TEXT NOT NULL,
			updated_at            TEXT NOT NULL,
			version               INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS audit_logs (
			id              TEXT PRIMARY KEY,
			action          TEXT NOT NULL,
			performed_by    TEXT NOT NULL,
			performer_name  TEXT NOT NULL DEFAULT '',
			performer_role  TEXT NOT NULL DEFAULT '',
			target_resource TEXT NOT NULL DEFAULT '',
			details         TEXT NOT NULL DEFAULT '{}',
			created_at      TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)`,
	}
}

// EnsureSQLiteSchema applies every migration. Statements are idempotent.
func EnsureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range sqliteMigrations() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite migrate: %w", err)
		}
	}
	return nil
}
