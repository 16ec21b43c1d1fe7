package postgres

import (
	"context"
	"database/sql"
	"errors"
	"cmp"
	"fmt"
	"slices"

	"github.com/lib/pq"

	"github.com/adeilh/go-httpstatus/status"
)

var (
	ErrStatusNotFound = errors.New("postgres: status code not found")
	ErrSchemaMissing  = errors.New("postgres: http_status_codes table missing")
	ErrInvalidStatus  = errors.New("postgres: status row violates table constraints")
	ErrStatusConflict = errors.New("postgres: status code already stored")
)

// StatusRecord is one row of http_status_codes.
type StatusRecord struct {
	Code         int
	Message      string
	Class        status.Class
	WebDAV       bool
	Experimental bool
}

// Canonical returns the registry entry for the row's code.
func (r StatusRecord) Canonical() (status.Code, bool) {
	return status.Lookup(r.Code)
}

func recordOf(c status.Code) StatusRecord {
	return StatusRecord{
		Code:         c.Int(),
		Message:      c.Message(),
		Class:        c.Class(),
		WebDAV:       status.IsWebDAV(c),
		Experimental: status.IsExperimental(c),
	}
}

// SyncResult reports what Sync changed.
type SyncResult struct {
	Upserted int
	Removed  int
}

// Drift describes a row that disagrees with the registry.
type Drift struct {
	Code     int
	Stored   string
	Expected string
	// Missing is set when the registry defines the code but the table lacks it.
	Missing bool
	// Unknown is set when the table holds a code the registry does not define.
	Unknown bool
}

// StatusRepository mirrors the status registry into PostgreSQL.
type StatusRepository struct {
	db *sql.DB
}

// NewStatusRepository wraps an existing *sql.DB connection.
func NewStatusRepository(db *sql.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Sync upserts every registry code and removes rows the registry does not
// define, all in one transaction.
func (r *StatusRepository) Sync(ctx context.Context) (SyncResult, error) {
	const upsert = `INSERT INTO http_status_codes (code, message, class, webdav, experimental)
                    VALUES ($1, $2, $3, $4, $5)
                    ON CONFLICT (code) DO UPDATE SET message = EXCLUDED.message, class = EXCLUDED.class,
                    webdav = EXCLUDED.webdav, experimental = EXCLUDED.experimental`
	const prune = `DELETE FROM http_status_codes WHERE NOT (code = ANY($1))`

	if r.db == nil {
		return SyncResult{}, ErrNilDB
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return SyncResult{}, fmt.Errorf("postgres: sync: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsert)
	if err != nil {
		return SyncResult{}, fmt.Errorf("postgres: sync: %w", translateStatusError(err))
	}
	defer stmt.Close()

	all := status.All()
	codes := make([]int64, 0, len(all))
	var res SyncResult
	for _, c := range all {
		rec := recordOf(c)
		if _, err := stmt.ExecContext(ctx, rec.Code, rec.Message, rec.Class.String(), rec.WebDAV, rec.Experimental); err != nil {
			return SyncResult{}, fmt.Errorf("postgres: sync %d: %w", rec.Code, translateStatusError(err))
		}
		codes = append(codes, int64(rec.Code))
		res.Upserted++
	}

	out, err := tx.ExecContext(ctx, prune, pq.Array(codes))
	if err != nil {
		return SyncResult{}, fmt.Errorf("postgres: sync prune: %w", translateStatusError(err))
	}
	if n, err := out.RowsAffected(); err == nil {
		res.Removed = int(n)
	}

	if err := tx.Commit(); err != nil {
		return SyncResult{}, fmt.Errorf("postgres: sync commit: %w", err)
	}
	return res, nil
}

// Get loads a single row.
func (r *StatusRepository) Get(ctx context.Context, code int) (StatusRecord, error) {
	const query = `SELECT code, message, class, webdav, experimental FROM http_status_codes WHERE code = $1`
	if r.db == nil {
		return StatusRecord{}, ErrNilDB
	}
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StatusRecord{}, ErrStatusNotFound
		}
		return StatusRecord{}, translateStatusError(err)
	}
	return rec, nil
}

// ListByClass returns the rows of one class ordered by code.
func (r *StatusRepository) ListByClass(ctx context.Context, class status.Class) ([]StatusRecord, error) {
	const query = `SELECT code, message, class, webdav, experimental FROM http_status_codes WHERE class = $1 ORDER BY code`
	return r.list(ctx, query, class.String())
}

// List returns every row ordered by code.
func (r *StatusRepository) List(ctx context.Context) ([]StatusRecord, error) {
	const query = `SELECT code, message, class, webdav, experimental FROM http_status_codes ORDER BY code`
	return r.list(ctx, query)
}

// Drift compares the table with the registry and reports every mismatch in
// ascending code order.
func (r *StatusRepository) Drift(ctx context.Context) ([]Drift, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	stored := make(map[int]StatusRecord, len(rows))
	for _, rec := range rows {
		stored[rec.Code] = rec
	}

	var out []Drift
	for _, c := range status.All() {
		rec, ok := stored[c.Int()]
		switch {
		case !ok:
			out = append(out, Drift{Code: c.Int(), Expected: c.Message(), Missing: true})
		case rec.Message != c.Message():
			out = append(out, Drift{Code: c.Int(), Stored: rec.Message, Expected: c.Message()})
		}
		delete(stored, c.Int())
	}
	for _, rec := range rows {
		if _, extra := stored[rec.Code]; extra {
			out = append(out, Drift{Code: rec.Code, Stored: rec.Message, Unknown: true})
		}
	}
	slices.SortFunc(out, func(a, b Drift) int { return cmp.Compare(a.Code, b.Code) })
	return out, nil
}

func (r *StatusRepository) list(ctx context.Context, query string, args ...any) ([]StatusRecord, error) {
	if r.db == nil {
		return nil, ErrNilDB
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateStatusError(err)
	}
	defer rows.Close()

	var out []StatusRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (StatusRecord, error) {
	var (
		rec   StatusRecord
		class string
	)
	if err := s.Scan(&rec.Code, &rec.Message, &class, &rec.WebDAV, &rec.Experimental); err != nil {
		return StatusRecord{}, err
	}
	parsed, ok := status.ParseClass(class)
	if !ok {
		return StatusRecord{}, fmt.Errorf("postgres: row %d has unknown class %q", rec.Code, class)
	}
	rec.Class = parsed
	return rec, nil
}

func translateStatusError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "42P01":
			return ErrSchemaMissing
		case "23505":
			return ErrStatusConflict
		case "23514", "23502":
			return ErrInvalidStatus
		}
	}
	return err
}
