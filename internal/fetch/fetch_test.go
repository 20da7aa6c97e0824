package fetch_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polisched/internal/config"
	"polisched/internal/domain"
	"polisched/internal/fetch"
)

func newFetcher(allowedPaths ...string) *fetch.Fetcher {
	return fetch.New(config.FetchConfig{
		TimeoutSecs:   5,
		MaxFileSizeMB: 1,
		AllowedPaths:  allowedPaths,
	})
}

func TestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 test content"))
	}))
	defer srv.Close()

	data, name, err := newFetcher().FromURL(context.Background(), srv.URL+"/docs/policy.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test content", string(data))
	assert.Equal(t, "policy.pdf", name)
}

func TestFromURL_DefaultName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	_, name, err := newFetcher().FromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "document.pdf", name)
}

func TestFromURL_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, _, err := newFetcher().FromURL(context.Background(), srv.URL+"/missing.pdf")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFromURL_RejectsNonHTTPScheme(t *testing.T) {
	_, _, err := newFetcher().FromURL(context.Background(), "ftp://example.com/doc.pdf")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFromURL_TooLarge(t *testing.T) {
	big := strings.Repeat("a", 2<<20)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(big))
	}))
	defer srv.Close()

	_, _, err := newFetcher().FromURL(context.Background(), srv.URL+"/big.pdf")
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestFromBase64(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 content"))

	data, err := newFetcher().FromBase64(payload)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 content", string(data))
}

func TestFromBase64_DataURI(t *testing.T) {
	payload := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))

	data, err := newFetcher().FromBase64(payload)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestFromBase64_Invalid(t *testing.T) {
	_, err := newFetcher().FromBase64("not!!valid!!base64")
	assert.ErrorIs(t, err, domain.ErrInvalidBase64)
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "policy.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF-1.4 on disk"), 0o600))

	data, err := newFetcher().FromPath(file)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 on disk", string(data))
}

func TestFromPath_Missing(t *testing.T) {
	_, err := newFetcher().FromPath(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestFromPath_Directory(t *testing.T) {
	_, err := newFetcher().FromPath(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestFromPath_OutsideAllowedPaths(t *testing.T) {
	allowed := t.TempDir()
	other := t.TempDir()
	file := filepath.Join(other, "policy.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF-1.4"), 0o600))

	_, err := newFetcher(allowed).FromPath(file)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestFromPath_InsideAllowedPaths(t *testing.T) {
	allowed := t.TempDir()
	file := filepath.Join(allowed, "policy.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF-1.4"), 0o600))

	data, err := newFetcher(allowed).FromPath(file)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestIsPDF(t *testing.T) {
	assert.True(t, fetch.IsPDF([]byte("%PDF-1.7 rest")))
	assert.False(t, fetch.IsPDF([]byte("PK\x03\x04 zip")))
	assert.False(t, fetch.IsPDF([]byte("%P")))
}
