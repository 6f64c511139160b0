package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
	"github.com/prepmate/prepmate-backend/internal/spreadsheet"
)

type ExportHandler struct {
	log        *logger.Logger
	mcqService services.MCQService
}

func NewExportHandler(log *logger.Logger, mcqService services.MCQService) *ExportHandler {
	return &ExportHandler{
		log:        log.With("handler", "ExportHandler"),
		mcqService: mcqService,
	}
}

// ExportMCQs streams an xlsx workbook with one sheet per subject. An
// optional subject_id query narrows the export to one subject.
func (h *ExportHandler) ExportMCQs(c *gin.Context) {
	subjectID := uuid.Nil
	if raw := c.Query("subject_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_subject_id", err)
			return
		}
		subjectID = parsed
	}

	groups, err := h.mcqService.ExportGroups(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("ExportMCQs failed", "error", err, "subject_id", subjectID)
		RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	if len(groups) == 0 {
		RespondError(c, http.StatusNotFound, "nothing_to_export", fmt.Errorf("no subjects to export"))
		return
	}

	workbook, err := spreadsheet.MCQWorkbook(groups)
	if err != nil {
		h.log.Error("Building export workbook failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		h.log.Error("Writing export workbook failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="mcq-export.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
