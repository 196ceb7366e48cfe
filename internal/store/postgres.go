package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	// Note: In production, use dedicated migration tools (e.g.,
	// golang-migrate/migrate) that run as a separate deployment step.
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS summaries (
			id UUID PRIMARY KEY,
			original_filename TEXT NOT NULL,
			file_size BIGINT NOT NULL,
			page_count INT,
			extracted_text TEXT NOT NULL,
			summary TEXT NOT NULL,
			summary_length TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS summaries_created_at_idx
			ON summaries (created_at DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) CreateSummary(ctx context.Context, rec SummaryRecord) (SummaryRecord, error) {
	rec.ID = uuid.New()
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO summaries(id, original_filename, file_size, page_count, extracted_text, summary, summary_length)
		VALUES($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		rec.ID, rec.OriginalFilename, rec.FileSize, pageCountArg(rec.PageCount),
		rec.ExtractedText, rec.Summary, rec.SummaryLength)
	if err := row.Scan(&rec.CreatedAt); err != nil {
		return SummaryRecord{}, fmt.Errorf("failed to insert summary: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) ListSummaries(ctx context.Context) ([]SummaryRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, original_filename, file_size, page_count, summary, summary_length, created_at
		FROM summaries
		ORDER BY created_at DESC
		LIMIT $1`, HistoryLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SummaryRecord
	for rows.Next() {
		var rec SummaryRecord
		var pageCount sql.NullInt32
		if err := rows.Scan(&rec.ID, &rec.OriginalFilename, &rec.FileSize, &pageCount,
			&rec.Summary, &rec.SummaryLength, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.PageCount = pageCountValue(pageCount)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetSummary(ctx context.Context, id uuid.UUID) (SummaryRecord, error) {
	var rec SummaryRecord
	var pageCount sql.NullInt32
	row := s.db.QueryRowContext(ctx, `
		SELECT id, original_filename, file_size, page_count, extracted_text, summary, summary_length, created_at
		FROM summaries
		WHERE id=$1`, id)
	err := row.Scan(&rec.ID, &rec.OriginalFilename, &rec.FileSize, &pageCount,
		&rec.ExtractedText, &rec.Summary, &rec.SummaryLength, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SummaryRecord{}, ErrNotFound
		}
		return SummaryRecord{}, fmt.Errorf("failed to get summary %s: %w", id, err)
	}
	rec.PageCount = pageCountValue(pageCount)
	return rec, nil
}

func (s *PostgresStore) DeleteSummary(ctx context.Context, id uuid.UUID) error {
	// Deleting a nonexistent id is deliberately not an error.
	_, err := s.db.ExecContext(ctx, `DELETE FROM summaries WHERE id=$1`, id)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func pageCountArg(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func pageCountValue(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int32)
	return &v
}
