package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"polisched/internal/domain"
)

// MockParseRecordRepo is a mock implementation of port.ParseRecordRepository.
type MockParseRecordRepo struct {
	mock.Mock
}

func (m *MockParseRecordRepo) Create(ctx context.Context, record *domain.ParseRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockParseRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseRecord), args.Error(1)
}

func (m *MockParseRecordRepo) List(ctx context.Context, filter domain.RecordFilter, offset, limit int) ([]domain.ParseRecord, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ParseRecord), args.Int(1), args.Error(2)
}

func (m *MockParseRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
