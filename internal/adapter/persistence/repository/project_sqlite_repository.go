package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"
)

const projectColumns = `id, sale_id, client_name, company_name, status, checklist, social_links,
	content_calendar_link, qc_requests, timeline, created_at, updated_at, version`

type ProjectSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IProjectRepository = (*ProjectSQLiteRepository)(nil)

func NewProjectSQLiteRepository(db *sql.DB) *ProjectSQLiteRepository {
	return &ProjectSQLiteRepository{db: db}
}

func (r *ProjectSQLiteRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := insertProject(ctx, r.db, p); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return r.getOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
}

func (r *ProjectSQLiteRepository) GetBySaleID(ctx context.Context, saleID string) (entities.Project, error) {
	return r.getOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE sale_id = ?`, saleID)
}

func (r *ProjectSQLiteRepository) getOne(ctx context.Context, query string, arg string) (entities.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Project{}, nil
	}
	return p, err
}

func (r *ProjectSQLiteRepository) List(ctx context.Context) ([]entities.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []entities.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectSQLiteRepository) Update(ctx context.Context, p entities.Project, expectedVersion int64) (entities.Project, error) {
	args, err := projectArgs(p)
	if err != nil {
		return entities.Project{}, err
	}
	// id and sale_id are immutable; they only select the row.
	args = append(args[2:], p.ID, expectedVersion)
	res, err := r.db.ExecContext(ctx, `UPDATE projects SET
		client_name = ?, company_name = ?, status = ?, checklist = ?, social_links = ?,
		content_calendar_link = ?, qc_requests = ?, timeline = ?, created_at = ?, updated_at = ?, version = ?
		WHERE id = ? AND version = ?`, args...)
	if err != nil {
		return entities.Project{}, fmt.Errorf("update project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Project{}, err
	}
	if n == 0 {
		return entities.Project{}, interfaces.ErrVersionConflict
	}
	return p, nil
}

func insertProject(ctx context.Context, db execer, p entities.Project) error {
	args, err := projectArgs(p)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...,
	)
	if isUniqueViolation(err) {
		return interfaces.ErrDuplicateProject
	}
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func projectArgs(p entities.Project) ([]any, error) {
	encoded := make([]string, 0, 4)
	for _, v := range []any{p.Checklist, nonNil(p.SocialLinks), nonNil(p.QCRequests), nonNil(p.Timeline)} {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, string(b))
	}
	return []any{
		p.ID, p.SaleID, p.ClientName, p.CompanyName, string(p.Status), encoded[0], encoded[1],
		p.ContentCalendarLink, encoded[2], encoded[3], formatTime(p.CreatedAt), formatTime(p.UpdatedAt), p.Version,
	}, nil
}

func scanProject(row rowScanner) (entities.Project, error) {
	var (
		p                                      entities.Project
		status, checklist, links, qc, timeline string
		createdAt, updatedAt                   string
	)
	err := row.Scan(&p.ID, &p.SaleID, &p.ClientName, &p.CompanyName, &status, &checklist, &links,
		&p.ContentCalendarLink, &qc, &timeline, &createdAt, &updatedAt, &p.Version)
	if err != nil {
		return entities.Project{}, err
	}
	p.Status = entities.ProjectStatus(status)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	for _, f := range []struct {
		raw string
		dst any
	}{
		{checklist, &p.Checklist},
		{links, &p.SocialLinks},
		{qc, &p.QCRequests},
		{timeline, &p.Timeline},
	} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return entities.Project{}, fmt.Errorf("decode project %s: %w", p.ID, err)
		}
	}
	return p, nil
}

// nonNil keeps empty collections encoded as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
