package service

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/google/uuid"

	"polisched/internal/config"
	"polisched/internal/domain"
	"polisched/internal/export"
	"polisched/internal/port"
)

// exportPageSize bounds each repository fetch while exporting.
const exportPageSize = 500

// RecordService defines the parse history contract.
type RecordService interface {
	List(ctx context.Context, filter domain.RecordFilter, offset, limit int) ([]domain.ParseRecord, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ArchiveURL(ctx context.Context, record *domain.ParseRecord) string
	ExportXLSX(ctx context.Context, filter domain.RecordFilter, w io.Writer) error
}

type recordService struct {
	repo    port.ParseRecordRepository
	storage port.ObjectStorage
	s3Cfg   *config.S3Config
}

// NewRecordService creates a new RecordService implementation. Object storage
// is optional; pass nil when document archival is disabled.
func NewRecordService(repo port.ParseRecordRepository, storage port.ObjectStorage, s3Cfg *config.S3Config) RecordService {
	return &recordService{repo: repo, storage: storage, s3Cfg: s3Cfg}
}

func (s *recordService) List(ctx context.Context, filter domain.RecordFilter, offset, limit int) ([]domain.ParseRecord, int, error) {
	return s.repo.List(ctx, filter, offset, limit)
}

func (s *recordService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// ArchiveURL returns a presigned download link for the record's archived
// source document, or "" when archival is disabled or the record has no
// archive key. Presign failures are logged and treated as no link.
func (s *recordService) ArchiveURL(ctx context.Context, record *domain.ParseRecord) string {
	if s.storage == nil || record == nil || record.ArchiveKey == "" {
		return ""
	}
	url, err := s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket, record.ArchiveKey, s.s3Cfg.PresignExpiry)
	if err != nil {
		log.Printf("recordService.ArchiveURL: presign failed for %s: %v", record.ArchiveKey, err)
		return ""
	}
	return url
}

func (s *recordService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("recordService.Delete: deleting parse record %s", id)
	return s.repo.Delete(ctx, id)
}

// ExportXLSX streams all records matching filter into a spreadsheet.
func (s *recordService) ExportXLSX(ctx context.Context, filter domain.RecordFilter, w io.Writer) error {
	var summaries []domain.RecordSummary

	for offset := 0; ; offset += exportPageSize {
		records, total, err := s.repo.List(ctx, filter, offset, exportPageSize)
		if err != nil {
			return err
		}
		for _, record := range records {
			summaries = append(summaries, summarize(record))
		}
		if offset+len(records) >= total || len(records) == 0 {
			break
		}
	}

	return export.WriteXLSX(w, summaries)
}

// summarize flattens a persisted record into the export row shape, probing
// the stored policy JSON for the fields the insurers name differently.
func summarize(record domain.ParseRecord) domain.RecordSummary {
	summary := domain.RecordSummary{
		ParsedAt:     record.CreatedAt,
		Insurer:      record.Insurer,
		DocumentName: record.DocumentName,
		SourceType:   record.SourceType,
		SourceName:   record.SourceName,
		Status:       record.Status,
		PageCount:    record.PageCount,
		DurationMS:   record.DurationMS,
	}

	if len(record.Result) == 0 {
		return summary
	}
	var stored struct {
		Policy json.RawMessage `json:"policy"`
	}
	if err := json.Unmarshal(record.Result, &stored); err != nil || len(stored.Policy) == 0 {
		return summary
	}

	var policy map[string]any
	if err := json.Unmarshal(stored.Policy, &policy); err != nil {
		return summary
	}

	summary.PolicyNumber = stringField(policy, "planNumber", "quoteNumber", "policyNumber")
	summary.MonthlyPremium = floatField(policy, "currentMonthlyPremium", "grandTotal", "totalPremium")
	return summary
}

func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func floatField(m map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		if f, ok := m[key].(float64); ok {
			return &f
		}
	}
	return nil
}
