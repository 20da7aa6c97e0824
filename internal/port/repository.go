package port

import (
	"context"

	"github.com/google/uuid"

	"polisched/internal/domain"
)

// ParseRecordRepository defines the contract for parse record persistence.
type ParseRecordRepository interface {
	Create(ctx context.Context, record *domain.ParseRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseRecord, error)
	List(ctx context.Context, filter domain.RecordFilter, offset, limit int) ([]domain.ParseRecord, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
