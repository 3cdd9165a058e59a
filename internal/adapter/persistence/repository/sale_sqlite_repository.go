package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const saleColumns = `id, client_name, client_phone, company_name, price, notes, requirements,
	status, payment, checklist, is_locked, created_by, assigned_to, created_at, updated_at, version`

// SaleSQLiteRepository persists Sale entities in the embedded store.
type SaleSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ISaleRepository = (*SaleSQLiteRepository)(nil)

func NewSaleSQLiteRepository(db *sql.DB) *SaleSQLiteRepository {
	return &SaleSQLiteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SaleSQLiteRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	args, err := saleArgs(s)
	if err != nil {
		return entities.Sale{}, err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sales (`+saleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...,
	)
	if err != nil {
		return entities.Sale{}, fmt.Errorf("insert sale: %w", err)
	}
	return s, nil
}

func (r *SaleSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id)
	s, err := scanSale(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Sale{}, nil
	}
	return s, err
}

func (r *SaleSQLiteRepository) List(ctx context.Context, filter interfaces.SaleFilter) ([]entities.Sale, error) {
	var (
		where []string
		args  []any
	)
	if filter.AssignedTo != "" {
		where = append(where, "assigned_to = ?")
		args = append(args, filter.AssignedTo)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []entities.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *SaleSQLiteRepository) Update(ctx context.Context, s entities.Sale, expectedVersion int64) (entities.Sale, error) {
	if err := updateSale(ctx, r.db, s, expectedVersion); err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

// CommitHandover runs the sale update, the project insert and the audit
// insert in one transaction. The UNIQUE(sale_id) constraint rejects a second
// project.
func (r *SaleSQLiteRepository) CommitHandover(ctx context.Context, s entities.Sale, expectedVersion int64, p entities.Project, audit entities.AuditLog) (entities.Sale, entities.Project, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Sale{}, entities.Project{}, fmt.Errorf("begin handover: %w", err)
	}
	defer tx.Rollback()

	if err := updateSale(ctx, tx, s, expectedVersion); err != nil {
		return entities.Sale{}, entities.Project{}, err
	}
	if err := insertProject(ctx, tx, p); err != nil {
		return entities.Sale{}, entities.Project{}, err
	}
	if err := insertAudit(ctx, tx, audit); err != nil {
		return entities.Sale{}, entities.Project{}, err
	}
	if err := tx.Commit(); err != nil {
		return entities.Sale{}, entities.Project{}, fmt.Errorf("commit handover: %w", err)
	}
	return s, p, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func updateSale(ctx context.Context, db execer, s entities.Sale, expectedVersion int64) error {
	args, err := saleArgs(s)
	if err != nil {
		return err
	}
	// id goes last for the WHERE clause.
	args = append(args[1:], s.ID, expectedVersion)
	res, err := db.ExecContext(ctx, `UPDATE sales SET
		client_name = ?, client_phone = ?, company_name = ?, price = ?, notes = ?, requirements = ?,
		status = ?, payment = ?, checklist = ?, is_locked = ?, created_by = ?, assigned_to = ?,
		created_at = ?, updated_at = ?, version = ?
		WHERE id = ? AND version = ?`, args...)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return interfaces.ErrVersionConflict
	}
	return nil
}

func saleArgs(s entities.Sale) ([]any, error) {
	var price, payment sql.NullString
	if s.Price != nil {
		price = sql.NullString{String: s.Price.String(), Valid: true}
	}
	if s.Payment != nil {
		b, err := json.Marshal(s.Payment)
		if err != nil {
			return nil, err
		}
		payment = sql.NullString{String: string(b), Valid: true}
	}
	checklist, err := json.Marshal(s.Checklist)
	if err != nil {
		return nil, err
	}
	return []any{
		s.ID, s.ClientName, s.ClientPhone, s.CompanyName, price, s.Notes, s.Requirements,
		string(s.Status), payment, string(checklist), s.IsLocked, s.CreatedBy, s.AssignedTo,
		formatTime(s.CreatedAt), formatTime(s.UpdatedAt), s.Version,
	}, nil
}

func scanSale(row rowScanner) (entities.Sale, error) {
	var (
		s                    entities.Sale
		status, checklist    string
		createdAt, updatedAt string
		price, payment       sql.NullString
	)
	err := row.Scan(&s.ID, &s.ClientName, &s.ClientPhone, &s.CompanyName, &price, &s.Notes, &s.Requirements,
		&status, &payment, &checklist, &s.IsLocked, &s.CreatedBy, &s.AssignedTo, &createdAt, &updatedAt, &s.Version)
	if err != nil {
		return entities.Sale{}, err
	}
	s.Status = entities.SaleStatus(status)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	if price.Valid {
		d := parseDecimal(price.String)
		s.Price = &d
	}
	if payment.Valid {
		var p entities.Payment
		if err := json.Unmarshal([]byte(payment.String), &p); err != nil {
			return entities.Sale{}, fmt.Errorf("decode payment of sale %s: %w", s.ID, err)
		}
		s.Payment = &p
	}
	if err := json.Unmarshal([]byte(checklist), &s.Checklist); err != nil {
		return entities.Sale{}, fmt.Errorf("decode checklist of sale %s: %w", s.ID, err)
	}
	if err := checkPayment(s); err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
