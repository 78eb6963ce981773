package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates the Postgres-backed extract repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const extractCols = `id, provider_id, record_group, coverage_start, coverage_end,
	extracted_on, file_name, status, submitted_at`

// Create inserts the extract and all of its records in one transaction. The
// aggregate is never persisted partially.
func (r *repoPG) Create(ctx context.Context, e *Extract) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin extract insert: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO extracts (id, provider_id, record_group, coverage_start, coverage_end,
			extracted_on, file_name, status, submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.ProviderID, e.RecordGroup, e.CoverageStart, e.CoverageEnd,
		e.ExtractedOn, e.FileName, e.Status, e.SubmittedAt)
	if err != nil {
		return fmt.Errorf("insert extract: %w", err)
	}

	for _, rec := range e.Records {
		payload, err := json.Marshal(rec.Payload)
		if err != nil {
			return fmt.Errorf("marshal record payload: %w", err)
		}
		warnings, err := json.Marshal(rec.Warnings)
		if err != nil {
			return fmt.Errorf("marshal record warnings: %w", err)
		}
		failures, err := json.Marshal(rec.Failures)
		if err != nil {
			return fmt.Errorf("marshal record failures: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO extract_records (id, extract_id, position, payload, status, warnings, failures, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			rec.ID, rec.ExtractID, rec.Position, payload, rec.Status, warnings, failures, rec.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", rec.Position, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit extract insert: %w", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Extract, error) {
	var e Extract
	err := r.pool.QueryRow(ctx, `SELECT `+extractCols+` FROM extracts WHERE id = $1`, id).
		Scan(&e.ID, &e.ProviderID, &e.RecordGroup, &e.CoverageStart, &e.CoverageEnd,
			&e.ExtractedOn, &e.FileName, &e.Status, &e.SubmittedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, extract_id, position, payload, status, warnings, failures, created_at
		FROM extract_records WHERE extract_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		e.Records = append(e.Records, rec)
	}
	return &e, rows.Err()
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	var payload, warnings, failures []byte
	err := row.Scan(&rec.ID, &rec.ExtractID, &rec.Position, &payload, &rec.Status,
		&warnings, &failures, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &rec.Payload); err != nil {
		return nil, fmt.Errorf("unmarshal record payload: %w", err)
	}
	if err := json.Unmarshal(warnings, &rec.Warnings); err != nil {
		return nil, fmt.Errorf("unmarshal record warnings: %w", err)
	}
	if err := json.Unmarshal(failures, &rec.Failures); err != nil {
		return nil, fmt.Errorf("unmarshal record failures: %w", err)
	}
	return &rec, nil
}

// List returns extract summaries ordered most recent submission first,
// optionally filtered by provider.
func (r *repoPG) List(ctx context.Context, providerID string, limit, offset int) ([]*Summary, int, error) {
	where := ``
	args := []interface{}{}
	if providerID != "" {
		where = `WHERE e.provider_id = $1`
		args = append(args, providerID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM extracts e ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.provider_id, e.record_group, e.coverage_start, e.coverage_end,
			e.extracted_on, e.status, e.submitted_at,
			COUNT(r.id),
			COUNT(r.id) FILTER (WHERE r.status = 'pass'),
			COUNT(r.id) FILTER (WHERE r.status = 'fail'),
			COUNT(r.id) FILTER (WHERE jsonb_array_length(r.warnings) > 0),
			COALESCE(SUM(jsonb_array_length(r.failures)), 0),
			COALESCE(SUM(jsonb_array_length(r.warnings)), 0)
		FROM extracts e
		LEFT JOIN extract_records r ON r.extract_id = e.id
		%s
		GROUP BY e.id
		ORDER BY e.submitted_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Summary
	for rows.Next() {
		var s Summary
		err := rows.Scan(&s.ID, &s.ProviderID, &s.RecordGroup, &s.CoverageStart, &s.CoverageEnd,
			&s.ExtractedOn, &s.Status, &s.SubmittedAt,
			&s.RecordCount, &s.PassedCount, &s.FailedCount, &s.WarnedCount,
			&s.FailureCount, &s.WarningCount)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, &s)
	}
	return items, total, rows.Err()
}
