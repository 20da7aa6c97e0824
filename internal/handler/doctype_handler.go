package handler

import (
	"github.com/gin-gonic/gin"

	"polisched/internal/doctype"
)

// DocTypeHandler handles document type registry endpoints.
type DocTypeHandler struct{}

// NewDocTypeHandler creates a new DocTypeHandler.
func NewDocTypeHandler() *DocTypeHandler {
	return &DocTypeHandler{}
}

// List handles GET /api/v1/document-types
func (h *DocTypeHandler) List(c *gin.Context) {
	RespondOK(c, gin.H{
		"documentTypes": doctype.All(),
		"autoDetect":    doctype.AutoDetect,
	})
}

// Insurers handles GET /api/v1/insurers
func (h *DocTypeHandler) Insurers(c *gin.Context) {
	RespondOK(c, gin.H{
		"supported":  doctype.Insurers(),
		"autoDetect": true,
	})
}
