package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"polisched/internal/domain"
	"polisched/internal/service"
)

// RecordHandler handles parse history endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

func recordFilter(c *gin.Context) domain.RecordFilter {
	return domain.RecordFilter{
		Insurer: c.Query("insurer"),
		Status:  domain.ParseStatus(c.Query("status")),
	}
}

// List handles GET /api/v1/records
func (h *RecordHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	records, total, err := h.recordService.List(c.Request.Context(), recordFilter(c), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/records/:id
func (h *RecordHandler) GetByID(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), recordID)
	if err != nil {
		HandleError(c, err)
		return
	}

	resp := gin.H{"record": record}
	if url := h.recordService.ArchiveURL(c.Request.Context(), record); url != "" {
		resp["archiveUrl"] = url
	}
	RespondOK(c, resp)
}

// Delete handles DELETE /api/v1/records/:id
func (h *RecordHandler) Delete(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), recordID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "record deleted"})
}

// Export handles GET /api/v1/records/export
func (h *RecordHandler) Export(c *gin.Context) {
	filename := fmt.Sprintf("parse-records-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.recordService.ExportXLSX(c.Request.Context(), recordFilter(c), c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}
