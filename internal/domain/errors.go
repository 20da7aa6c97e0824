package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInvalidBase64       = errors.New("content is not valid base64")
	ErrFetchFailed         = errors.New("fetching document from URL failed")
	ErrFileNotFound        = errors.New("file not found at the given path")
	ErrUnreadableDocument  = errors.New("document could not be opened as a PDF")
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrRecordsDisabled     = errors.New("parse record persistence is disabled")
	ErrStorageDisabled     = errors.New("object storage is disabled")
)
