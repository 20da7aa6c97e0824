package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"polisched/internal/domain"
	"polisched/internal/handler"
	"polisched/internal/service"
	"polisched/mocks"
)

func setupParseRouter(svc *mocks.MockParseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewParseHandler(svc)

	r := gin.New()
	r.POST("/api/v1/parse", h.Upload)
	r.POST("/api/v1/parse/url", h.FromURL)
	r.POST("/api/v1/parse/base64", h.FromBase64)
	r.POST("/api/v1/parse/path", h.FromPath)
	r.POST("/api/v1/parse/s3", h.FromS3)
	return r
}

func sampleResult() *domain.ParseResult {
	return &domain.ParseResult{
		Policy: json.RawMessage(`{"insurer":"Discovery Insure"}`),
		Metadata: domain.ParseMetadata{
			Parser:     "discovery",
			Insurer:    "Discovery Insure",
			SourceType: domain.SourceUpload,
			PageCount:  9,
		},
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestParseHandler_Upload(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("ParseUpload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(sampleResult(), nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "policy.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("document_type", "auto-d3t3-ct00-0000"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	svc.AssertExpectations(t)
}

func TestParseHandler_Upload_QueryDocumentType(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("ParseUpload", mock.Anything, mock.Anything, mock.Anything,
		mock.MatchedBy(func(opts service.ParseOptions) bool {
			return opts.DocumentType == "d1s0-p0l1-sch3-v001"
		})).Return(sampleResult(), nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "policy.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse?document_type=d1s0-p0l1-sch3-v001", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestParseHandler_Upload_MissingFile(t *testing.T) {
	svc := new(mocks.MockParseService)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("document_type", "auto-d3t3-ct00-0000"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
	svc.AssertNotCalled(t, "ParseUpload")
}

func TestParseHandler_FromURL(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("ParseURL", mock.Anything, "https://example.com/policy.pdf", mock.Anything).
		Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/url",
		strings.NewReader(`{"url":"https://example.com/policy.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
	svc.AssertExpectations(t)
}

func TestParseHandler_FromURL_MissingURL(t *testing.T) {
	svc := new(mocks.MockParseService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/url", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestParseHandler_FromURL_FetchFailed(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("ParseURL", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrFetchFailed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/url",
		strings.NewReader(`{"url":"https://example.com/missing.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FETCH_FAILED", resp.Error.Code)
}

func TestParseHandler_FromBase64_Invalid(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("ParseBase64", mock.Anything, "!!!", "", mock.Anything).
		Return(nil, domain.ErrInvalidBase64)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/base64",
		strings.NewReader(`{"content":"!!!"}`))
	req.Header.Set("Content-Type", "application/json")
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_BASE64", resp.Error.Code)
}

func TestParseHandler_FromPath_NotFound(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("ParsePath", mock.Anything, "/tmp/nope.pdf", mock.Anything).
		Return(nil, domain.ErrFileNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/path",
		strings.NewReader(`{"path":"/tmp/nope.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FILE_NOT_FOUND", resp.Error.Code)
}

func TestParseHandler_FromS3(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("ParseS3", mock.Anything, "my-bucket", "inbox/policy.pdf", mock.Anything).
		Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/s3",
		strings.NewReader(`{"bucket":"my-bucket","key":"inbox/policy.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestParseHandler_FromS3_StorageDisabled(t *testing.T) {
	svc := new(mocks.MockParseService)
	svc.On("ParseS3", mock.Anything, "", "inbox/policy.pdf", mock.Anything).
		Return(nil, domain.ErrStorageDisabled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/s3",
		strings.NewReader(`{"key":"inbox/policy.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	setupParseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "STORAGE_DISABLED", resp.Error.Code)
}
