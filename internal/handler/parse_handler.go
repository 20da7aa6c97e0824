package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polisched/internal/service"
)

// ParseHandler handles document parsing endpoints.
type ParseHandler struct {
	parseService service.ParseService
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parseService service.ParseService) *ParseHandler {
	return &ParseHandler{parseService: parseService}
}

type urlParseRequest struct {
	URL          string `json:"url" binding:"required"`
	DocumentType string `json:"document_type"`
}

type base64ParseRequest struct {
	Content      string `json:"content" binding:"required"`
	Filename     string `json:"filename"`
	DocumentType string `json:"document_type"`
}

type pathParseRequest struct {
	Path         string `json:"path" binding:"required"`
	DocumentType string `json:"document_type"`
}

type s3ParseRequest struct {
	Bucket       string `json:"bucket"`
	Key          string `json:"key" binding:"required"`
	DocumentType string `json:"document_type"`
}

// options assembles the shared parse options from the request context.
func options(c *gin.Context, documentType string) service.ParseOptions {
	requestID, _ := c.Get("request_id")
	id, _ := requestID.(string)
	return service.ParseOptions{DocumentType: documentType, RequestID: id}
}

// Upload handles POST /api/v1/parse
func (h *ParseHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	documentType := c.PostForm("document_type")
	if documentType == "" {
		documentType = c.Query("document_type")
	}

	result, err := h.parseService.ParseUpload(c.Request.Context(), file, header,
		options(c, documentType))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// FromURL handles POST /api/v1/parse/url
func (h *ParseHandler) FromURL(c *gin.Context) {
	var req urlParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "url field is required")
		return
	}

	result, err := h.parseService.ParseURL(c.Request.Context(), req.URL, options(c, req.DocumentType))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// FromBase64 handles POST /api/v1/parse/base64
func (h *ParseHandler) FromBase64(c *gin.Context) {
	var req base64ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "content field is required")
		return
	}

	result, err := h.parseService.ParseBase64(c.Request.Context(), req.Content, req.Filename,
		options(c, req.DocumentType))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// FromPath handles POST /api/v1/parse/path
func (h *ParseHandler) FromPath(c *gin.Context) {
	var req pathParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "path field is required")
		return
	}

	result, err := h.parseService.ParsePath(c.Request.Context(), req.Path, options(c, req.DocumentType))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// FromS3 handles POST /api/v1/parse/s3
func (h *ParseHandler) FromS3(c *gin.Context) {
	var req s3ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "key field is required")
		return
	}

	result, err := h.parseService.ParseS3(c.Request.Context(), req.Bucket, req.Key,
		options(c, req.DocumentType))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
