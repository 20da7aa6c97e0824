// Package fetch acquires document bytes from the supported sources: remote
// URLs, base64 payloads and server-local paths.
package fetch

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"polisched/internal/config"
	"polisched/internal/domain"
)

// Fetcher pulls document bytes with a size cap and timeout applied to every
// remote source.
type Fetcher struct {
	client       *http.Client
	maxSize      int64
	allowedPaths []string
}

func New(cfg config.FetchConfig) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		},
		maxSize:      cfg.MaxFileSizeBytes(),
		allowedPaths: cfg.AllowedPaths,
	}
}

// FromURL downloads the document at rawURL. The returned name is the last
// path segment of the URL.
func (f *Fetcher) FromURL(ctx context.Context, rawURL string) ([]byte, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, "", fmt.Errorf("fetch.FromURL: %q: %w", rawURL, domain.ErrFetchFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("fetch.FromURL: %w", domain.ErrFetchFailed)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch.FromURL: %v: %w", err, domain.ErrFetchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch.FromURL: status %d: %w", resp.StatusCode, domain.ErrFetchFailed)
	}
	if resp.ContentLength > f.maxSize {
		return nil, "", fmt.Errorf("fetch.FromURL: %d bytes: %w", resp.ContentLength, domain.ErrFileTooLarge)
	}

	data, err := readCapped(resp.Body, f.maxSize)
	if err != nil {
		return nil, "", fmt.Errorf("fetch.FromURL: %w", err)
	}

	name := path.Base(parsed.Path)
	if name == "/" || name == "." {
		name = "document.pdf"
	}
	return data, name, nil
}

// FromBase64 decodes a base64 document payload, with or without a data URI
// prefix.
func (f *Fetcher) FromBase64(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}
	encoded = strings.TrimSpace(encoded)

	if int64(len(encoded)) > f.maxSize*4/3+4 {
		return nil, fmt.Errorf("fetch.FromBase64: %w", domain.ErrFileTooLarge)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("fetch.FromBase64: %v: %w", err, domain.ErrInvalidBase64)
	}
	return data, nil
}

// FromPath reads a document from the server filesystem. When allowed path
// prefixes are configured, reads outside them are rejected.
func (f *Fetcher) FromPath(filePath string) ([]byte, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("fetch.FromPath: %v: %w", err, domain.ErrFileNotFound)
	}

	if len(f.allowedPaths) > 0 && !f.pathAllowed(abs) {
		return nil, fmt.Errorf("fetch.FromPath: %q outside allowed paths: %w", filePath, domain.ErrUnauthorized)
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("fetch.FromPath: %q: %w", filePath, domain.ErrFileNotFound)
	}
	if info.Size() > f.maxSize {
		return nil, fmt.Errorf("fetch.FromPath: %d bytes: %w", info.Size(), domain.ErrFileTooLarge)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("fetch.FromPath: %q: %w", filePath, domain.ErrFileNotFound)
	}
	return data, nil
}

func (f *Fetcher) pathAllowed(abs string) bool {
	for _, prefix := range f.allowedPaths {
		prefixAbs, err := filepath.Abs(prefix)
		if err != nil {
			continue
		}
		if abs == prefixAbs || strings.HasPrefix(abs, prefixAbs+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func readCapped(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrFetchFailed)
	}
	if int64(len(data)) > max {
		return nil, domain.ErrFileTooLarge
	}
	return data, nil
}

// IsPDF sniffs the magic bytes of data.
func IsPDF(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == "%PDF"
}
