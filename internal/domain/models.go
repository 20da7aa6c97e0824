package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SourceType describes how the document bytes reached the service.
type SourceType string

const (
	SourceUpload SourceType = "upload"
	SourceURL    SourceType = "url"
	SourceBase64 SourceType = "base64"
	SourcePath   SourceType = "path"
	SourceS3     SourceType = "s3"
)

// ParseStatus represents the outcome recorded for a parse invocation.
type ParseStatus string

const (
	ParseStatusCompleted ParseStatus = "completed"
	ParseStatusFailed    ParseStatus = "failed"
)

// ParseMetadata tags every parse response with provenance details.
type ParseMetadata struct {
	DocumentType string     `json:"documentType,omitempty"`
	Parser       string     `json:"parser"`
	Insurer      string     `json:"insurer"`
	SourceType   SourceType `json:"sourceType"`
	SourceName   string     `json:"sourceName,omitempty"`
	PageCount    int        `json:"pageCount"`
	DurationMS   int64      `json:"durationMs"`
	RequestID    string     `json:"requestId,omitempty"`
	ArchiveKey   string     `json:"archiveKey,omitempty"`
}

// ParseResult is the full response body for a parse call: the insurer-specific
// record plus a metadata block.
type ParseResult struct {
	Policy   json.RawMessage `json:"policy"`
	Metadata ParseMetadata   `json:"metadata"`
}

// ParseRecord is the persisted history row for a parse invocation.
type ParseRecord struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	DocumentName string          `db:"document_name" json:"document_name"`
	Insurer      string          `db:"insurer" json:"insurer"`
	SourceType   SourceType      `db:"source_type" json:"source_type"`
	SourceName   string          `db:"source_name" json:"source_name"`
	Status       ParseStatus     `db:"status" json:"status"`
	PageCount    int             `db:"page_count" json:"page_count"`
	DurationMS   int64           `db:"duration_ms" json:"duration_ms"`
	ArchiveKey   string          `db:"archive_key" json:"archive_key,omitempty"`
	Result       json.RawMessage `db:"result" json:"result"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// RecordFilter narrows record listings.
type RecordFilter struct {
	Insurer string
	Status  ParseStatus
}

// RecordSummary is the flattened view of a ParseRecord used for exports.
type RecordSummary struct {
	ParsedAt       time.Time
	Insurer        string
	DocumentName   string
	PolicyNumber   string
	MonthlyPremium *float64
	SourceType     SourceType
	SourceName     string
	Status         ParseStatus
	PageCount      int
	DurationMS     int64
}
