package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"polisched/internal/domain"
	"polisched/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrInvalidBase64, http.StatusBadRequest, "INVALID_BASE64"},
		{domain.ErrFetchFailed, http.StatusBadGateway, "FETCH_FAILED"},
		{domain.ErrFileNotFound, http.StatusNotFound, "FILE_NOT_FOUND"},
		{domain.ErrUnreadableDocument, http.StatusUnprocessableEntity, "UNREADABLE_DOCUMENT"},
		{domain.ErrUnknownDocumentType, http.StatusBadRequest, "UNKNOWN_DOCUMENT_TYPE"},
		{domain.ErrRecordsDisabled, http.StatusServiceUnavailable, "RECORDS_DISABLED"},
		{domain.ErrStorageDisabled, http.StatusServiceUnavailable, "STORAGE_DISABLED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("fetch.FromURL: connection refused: %w", domain.ErrFetchFailed)
	status, code, _ := handler.MapDomainError(wrapped)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "FETCH_FAILED", code)
}
