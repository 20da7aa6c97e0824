package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"polisched/internal/domain"
	"polisched/internal/port"
)

type parseRecordRepo struct {
	db *sqlx.DB
}

// NewParseRecordRepo creates a new PostgreSQL-backed ParseRecordRepository.
func NewParseRecordRepo(db *sqlx.DB) port.ParseRecordRepository {
	return &parseRecordRepo{db: db}
}

func (r *parseRecordRepo) Create(ctx context.Context, record *domain.ParseRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now().UTC()

	query := `INSERT INTO parse_records
		(id, document_name, insurer, source_type, source_name, status,
		 page_count, duration_ms, archive_key, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.DocumentName, record.Insurer, record.SourceType,
		record.SourceName, record.Status, record.PageCount, record.DurationMS,
		record.ArchiveKey, record.Result, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("parseRecordRepo.Create: %w", err)
	}
	return nil
}

func (r *parseRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseRecord, error) {
	var record domain.ParseRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM parse_records WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("parseRecordRepo.GetByID: %w", err)
	}
	return &record, nil
}

func (r *parseRecordRepo) List(ctx context.Context, filter domain.RecordFilter, offset, limit int) ([]domain.ParseRecord, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	idx := 1

	if filter.Insurer != "" {
		where += fmt.Sprintf(" AND insurer = $%d", idx)
		args = append(args, filter.Insurer)
		idx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM parse_records "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("parseRecordRepo.List count: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM parse_records %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, idx, idx+1)
	args = append(args, limit, offset)

	var records []domain.ParseRecord
	err = r.db.SelectContext(ctx, &records, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("parseRecordRepo.List: %w", err)
	}
	return records, total, nil
}

func (r *parseRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM parse_records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("parseRecordRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
