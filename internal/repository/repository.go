package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

var billColumns = []string{
	"id",
	"email",
	"type",
	"name",
	"amount",
	"COALESCE(to_char(date, 'YYYY-MM-DD'), '')",
	"vat",
	"pct",
	"commentary",
	"file_url",
	"file_name",
	"status",
	"file_key",
	"created_at",
	"submitted_at",
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBill(row scanner) (entity.StoredBill, error) {
	var (
		bill entity.StoredBill
		id   uuid.UUID
	)

	err := row.Scan(
		&id,
		&bill.Email,
		&bill.Type,
		&bill.Name,
		&bill.Amount,
		&bill.Date,
		&bill.VATAmount,
		&bill.Percentage,
		&bill.Commentary,
		&bill.FileURL,
		&bill.FileName,
		&bill.Status,
		&bill.FileKey,
		&bill.CreatedAt,
		&bill.SubmittedAt,
	)
	if err != nil {
		return entity.StoredBill{}, err
	}

	bill.ID = id.String()

	return bill, nil
}

func (r *Repository) CreateBill(ctx context.Context, bill entity.StoredBill) error {
	sqlQuery :=
		`INSERT INTO bills
			(id, email, type, name, amount, date, vat, pct, commentary, file_url, file_name, file_key, status, created_at, submitted_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	id, err := uuid.FromString(bill.ID)
	if err != nil {
		return fmt.Errorf("parse bill id: %w", err)
	}

	_, err = r.db.Exec(ctx, sqlQuery,
		id,
		bill.Email,
		bill.Type,
		bill.Name,
		bill.Amount,
		nullableDate(bill.Date),
		bill.VATAmount,
		bill.Percentage,
		bill.Commentary,
		bill.FileURL,
		bill.FileName,
		bill.FileKey,
		bill.Status,
		bill.CreatedAt,
		bill.SubmittedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) BillByID(ctx context.Context, id uuid.UUID) (entity.StoredBill, error) {
	sqlQuery, args, err := sq.Select(billColumns...).
		From("bills").
		Where(sq.Eq{"id": id.String()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.StoredBill{}, err
	}

	bill, err := scanBill(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.StoredBill{}, entity.ErrNotFound
		}

		return entity.StoredBill{}, err
	}

	return bill, nil
}

// SubmitBill writes the user supplied fields of a bill that is still pending.
// File and owner columns are left untouched.
func (r *Repository) SubmitBill(ctx context.Context, bill entity.Bill, submittedAt time.Time) error {
	sqlQuery :=
		`UPDATE bills
		SET type = $1, name = $2, amount = $3, date = $4, vat = $5, pct = $6, commentary = $7,
			status = $8, submitted_at = $9
		WHERE id = $10 AND status = 'pending'`

	id, err := uuid.FromString(bill.ID)
	if err != nil {
		return fmt.Errorf("%w: bill %q", entity.ErrNotFound, bill.ID)
	}

	tag, err := r.db.Exec(ctx, sqlQuery,
		bill.Type,
		bill.Name,
		bill.Amount,
		nullableDate(bill.Date),
		bill.VATAmount,
		bill.Percentage,
		bill.Commentary,
		bill.Status,
		submittedAt,
		id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool

	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bills WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("%w: bill %s", entity.ErrBillProcessed, id)
	}

	return entity.ErrNotFound
}

// BillsList returns submitted bills, most recent bill date first.
func (r *Repository) BillsList(ctx context.Context, filter entity.BillsFilter) ([]entity.StoredBill, error) {
	stmt := sq.Select(billColumns...).
		From("bills").
		Where(sq.NotEq{"submitted_at": nil}).
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if !filter.All {
		stmt = stmt.Where(sq.Eq{"email": filter.Email})
	}

	return r.queryBills(ctx, stmt)
}

func (r *Repository) UpdateBillStatus(ctx context.Context, id uuid.UUID, status entity.BillStatus) error {
	sqlQuery := `UPDATE bills SET status = $1 WHERE id = $2 AND submitted_at IS NOT NULL`

	tag, err := r.db.Exec(ctx, sqlQuery, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DraftsCreatedBefore(ctx context.Context, before time.Time) ([]entity.StoredBill, error) {
	stmt := sq.Select(billColumns...).
		From("bills").
		Where(sq.Eq{"submitted_at": nil}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("created_at").
		PlaceholderFormat(sq.Dollar)

	return r.queryBills(ctx, stmt)
}

// DeleteDrafts removes the given bills that are still drafts and returns the
// file keys of the removed rows. Bills submitted meanwhile are kept.
func (r *Repository) DeleteDrafts(ctx context.Context, ids ...uuid.UUID) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))

	for _, id := range ids {
		keys = append(keys, id.String())
	}

	sqlQuery, args, err := sq.Delete("bills").
		Where(sq.Eq{"id": keys}).
		Where(sq.Eq{"submitted_at": nil}).
		Suffix("RETURNING file_key").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	fileKeys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	return fileKeys, nil
}

func (r *Repository) queryBills(ctx context.Context, stmt sq.SelectBuilder) ([]entity.StoredBill, error) {
	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	bills := make([]entity.StoredBill, 0)

	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}

		bills = append(bills, bill)
	}

	return bills, rows.Err()
}

func nullableDate(date string) any {
	if date == "" {
		return nil
	}

	return date
}
