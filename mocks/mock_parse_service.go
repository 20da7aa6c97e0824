package mocks

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"polisched/internal/domain"
	"polisched/internal/service"
)

// MockParseService is a mock implementation of service.ParseService.
type MockParseService struct {
	mock.Mock
}

func (m *MockParseService) ParseUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader, opts service.ParseOptions) (*domain.ParseResult, error) {
	args := m.Called(ctx, file, header, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}

func (m *MockParseService) ParseURL(ctx context.Context, rawURL string, opts service.ParseOptions) (*domain.ParseResult, error) {
	args := m.Called(ctx, rawURL, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}

func (m *MockParseService) ParseBase64(ctx context.Context, content, fileName string, opts service.ParseOptions) (*domain.ParseResult, error) {
	args := m.Called(ctx, content, fileName, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}

func (m *MockParseService) ParsePath(ctx context.Context, filePath string, opts service.ParseOptions) (*domain.ParseResult, error) {
	args := m.Called(ctx, filePath, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}

func (m *MockParseService) ParseS3(ctx context.Context, bucket, key string, opts service.ParseOptions) (*domain.ParseResult, error) {
	args := m.Called(ctx, bucket, key, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}
