package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path"
	"time"

	"github.com/google/uuid"

	"polisched/internal/config"
	"polisched/internal/doctype"
	"polisched/internal/domain"
	"polisched/internal/fetch"
	"polisched/internal/insurer"
	"polisched/internal/pdftext"
	"polisched/internal/port"
)

// ParseOptions carries the source-independent options of a parse request.
type ParseOptions struct {
	DocumentType string
	RequestID    string
}

// ParseService defines the document parsing contract across all sources.
type ParseService interface {
	ParseUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader, opts ParseOptions) (*domain.ParseResult, error)
	ParseURL(ctx context.Context, rawURL string, opts ParseOptions) (*domain.ParseResult, error)
	ParseBase64(ctx context.Context, content, fileName string, opts ParseOptions) (*domain.ParseResult, error)
	ParsePath(ctx context.Context, filePath string, opts ParseOptions) (*domain.ParseResult, error)
	ParseS3(ctx context.Context, bucket, key string, opts ParseOptions) (*domain.ParseResult, error)
}

type parseService struct {
	fetcher  *fetch.Fetcher
	parseCfg *config.ParseConfig
	records  port.ParseRecordRepository
	storage  port.ObjectStorage
	s3Cfg    *config.S3Config
}

// NewParseService creates a new ParseService implementation. The record
// repository and object storage are optional; pass nil to run stateless.
func NewParseService(
	fetcher *fetch.Fetcher,
	parseCfg *config.ParseConfig,
	records port.ParseRecordRepository,
	storage port.ObjectStorage,
	s3Cfg *config.S3Config,
) ParseService {
	return &parseService{
		fetcher:  fetcher,
		parseCfg: parseCfg,
		records:  records,
		storage:  storage,
		s3Cfg:    s3Cfg,
	}
}

// bound applies the configured per-parse deadline to ctx.
func (s *parseService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.parseCfg == nil || s.parseCfg.TimeoutSecs <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, time.Duration(s.parseCfg.TimeoutSecs)*time.Second)
}

func (s *parseService) ParseUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader, opts ParseOptions) (*domain.ParseResult, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("parseService.ParseUpload: reading upload: %w", err)
	}
	return s.parse(ctx, data, header.Filename, domain.SourceUpload, opts)
}

func (s *parseService) ParseURL(ctx context.Context, rawURL string, opts ParseOptions) (*domain.ParseResult, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	data, name, err := s.fetcher.FromURL(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return s.parse(ctx, data, name, domain.SourceURL, opts)
}

func (s *parseService) ParseBase64(ctx context.Context, content, fileName string, opts ParseOptions) (*domain.ParseResult, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	data, err := s.fetcher.FromBase64(content)
	if err != nil {
		return nil, err
	}
	if fileName == "" {
		fileName = "document.pdf"
	}
	return s.parse(ctx, data, fileName, domain.SourceBase64, opts)
}

func (s *parseService) ParsePath(ctx context.Context, filePath string, opts ParseOptions) (*domain.ParseResult, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	data, err := s.fetcher.FromPath(filePath)
	if err != nil {
		return nil, err
	}
	return s.parse(ctx, data, path.Base(filePath), domain.SourcePath, opts)
}

func (s *parseService) ParseS3(ctx context.Context, bucket, key string, opts ParseOptions) (*domain.ParseResult, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageDisabled
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	if bucket == "" {
		bucket = s.s3Cfg.Bucket
	}
	data, err := s.storage.Download(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("parseService.ParseS3: %v: %w", err, domain.ErrFileNotFound)
	}
	return s.parse(ctx, data, path.Base(key), domain.SourceS3, opts)
}

// parse runs the shared pipeline: validate, extract, resolve a parser, parse,
// then archive and record as side effects.
func (s *parseService) parse(ctx context.Context, data []byte, name string, source domain.SourceType, opts ParseOptions) (*domain.ParseResult, error) {
	started := time.Now()

	if !fetch.IsPDF(data) {
		return nil, domain.ErrUnsupportedFileType
	}

	doc, err := pdftext.Extract(data)
	if err != nil {
		s.record(ctx, nil, name, "", source, domain.ParseStatusFailed, 0, started)
		return nil, err
	}
	if s.parseCfg != nil {
		doc.Limit(s.parseCfg.MaxPages)
	}

	parser, parserName, err := s.resolveParser(doc, opts.DocumentType)
	if err != nil {
		return nil, err
	}

	log.Printf("parseService: parsing %s (%d pages, source %s) with %s",
		name, doc.PageCount(), source, parserName)

	record, err := parser.Parse(doc)
	if err != nil {
		s.record(ctx, nil, name, parserName, source, domain.ParseStatusFailed, doc.PageCount(), started)
		return nil, fmt.Errorf("parseService: %s failed on %s: %w", parserName, name, err)
	}

	policy, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("parseService: marshaling %s output: %w", parserName, err)
	}

	result := &domain.ParseResult{
		Policy: policy,
		Metadata: domain.ParseMetadata{
			DocumentType: opts.DocumentType,
			Parser:       parserName,
			Insurer:      insurerOf(policy),
			SourceType:   source,
			SourceName:   name,
			PageCount:    doc.PageCount(),
			DurationMS:   time.Since(started).Milliseconds(),
			RequestID:    opts.RequestID,
		},
	}

	result.Metadata.ArchiveKey = s.archive(ctx, data, result.Metadata.Insurer, name)
	s.record(ctx, result, name, parserName, source, domain.ParseStatusCompleted, doc.PageCount(), started)

	return result, nil
}

// resolveParser maps a document type GUID to its registered parser, or
// auto-detects when no GUID (or the auto-detect GUID) is given.
func (s *parseService) resolveParser(doc *pdftext.Document, documentType string) (insurer.Parser, string, error) {
	if documentType == "" || documentType == doctype.AutoDetect {
		parser, name := insurer.Detect(doc)
		if parser == nil {
			return nil, "", fmt.Errorf("parseService: no parsers registered: %w", domain.ErrUnknownDocumentType)
		}
		return parser, name, nil
	}

	info, ok := doctype.Lookup(documentType)
	if !ok {
		return nil, "", fmt.Errorf("parseService: %q: %w", documentType, domain.ErrUnknownDocumentType)
	}
	parser, err := insurer.New(info.ParserName)
	if err != nil {
		return nil, "", fmt.Errorf("parseService: %q: %w", documentType, domain.ErrUnknownDocumentType)
	}
	return parser, info.ParserName, nil
}

// archive stores the original document bytes when storage is configured.
// Archival failures are logged, never surfaced; the parse result stands on
// its own.
func (s *parseService) archive(ctx context.Context, data []byte, insurerName, name string) string {
	if s.storage == nil || s.s3Cfg == nil || !s.s3Cfg.Enabled {
		return ""
	}

	key := fmt.Sprintf("%s%s/%s/%s", s.s3Cfg.ArchivePrefix, insurerName, uuid.New(), name)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: "application/pdf",
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("parseService.archive: upload of %s failed: %v", name, err)
		return ""
	}
	return key
}

// record persists a parse history row when the repository is configured.
// Persistence failures are logged, never surfaced.
func (s *parseService) record(ctx context.Context, result *domain.ParseResult, name, parserName string, source domain.SourceType, status domain.ParseStatus, pages int, started time.Time) {
	if s.records == nil {
		return
	}

	row := &domain.ParseRecord{
		DocumentName: name,
		Insurer:      insurer.DisplayName(parserName),
		SourceType:   source,
		SourceName:   name,
		Status:       status,
		PageCount:    pages,
		DurationMS:   time.Since(started).Milliseconds(),
	}
	if result != nil {
		row.Insurer = result.Metadata.Insurer
		row.ArchiveKey = result.Metadata.ArchiveKey
		if encoded, err := json.Marshal(result); err == nil {
			row.Result = encoded
		}
	}

	if err := s.records.Create(ctx, row); err != nil {
		log.Printf("parseService.record: persisting record for %s failed: %v", name, err)
	}
}

// insurerOf probes the parsed policy for its insurer field.
func insurerOf(policy json.RawMessage) string {
	var probe struct {
		Insurer string `json:"insurer"`
	}
	if err := json.Unmarshal(policy, &probe); err != nil || probe.Insurer == "" {
		return "Unknown"
	}
	return probe.Insurer
}
