package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/importer"
	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
	"github.com/prepmate/prepmate-backend/internal/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ImportHandler struct {
	log           *logger.Logger
	importService services.ImportService
}

func NewImportHandler(log *logger.Logger, importService services.ImportService) *ImportHandler {
	return &ImportHandler{
		log:           log.With("handler", "ImportHandler"),
		importService: importService,
	}
}

// readUpload extracts rows and import options from a multipart request.
// The spreadsheet rides in the "file" field; "fold_case" and "job_id"
// are optional form fields.
func (h *ImportHandler) readUpload(c *gin.Context) ([]importer.Row, services.ImportOptions, error) {
	var opts services.ImportOptions

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, opts, fmt.Errorf("missing file upload: %w", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, opts, fmt.Errorf("opening upload: %w", err)
	}
	defer file.Close()

	rows, err := spreadsheet.ReadRows(file, fileHeader.Filename)
	if err != nil {
		return nil, opts, err
	}

	opts.FoldCase = c.PostForm("fold_case") == "true"
	if jobID := c.PostForm("job_id"); jobID != "" {
		parsed, err := uuid.Parse(jobID)
		if err != nil {
			return nil, opts, fmt.Errorf("invalid job_id: %w", err)
		}
		opts.JobID = parsed
	}
	return rows, opts, nil
}

func (h *ImportHandler) runImport(
	c *gin.Context,
	kind string,
	run func(c *gin.Context, rows []importer.Row, opts services.ImportOptions) (*services.ImportSummary, error),
) {
	rows, opts, err := h.readUpload(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_upload", err)
		return
	}

	summary, err := run(c, rows, opts)
	if err != nil {
		h.log.Error("Import failed", "kind", kind, "error", err)
		RespondError(c, http.StatusInternalServerError, "import_failed", err)
		return
	}
	if len(summary.Rejected) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"summary": summary})
		return
	}
	RespondOK(c, gin.H{"summary": summary})
}

func (h *ImportHandler) ImportMCQs(c *gin.Context) {
	h.runImport(c, "mcqs", func(c *gin.Context, rows []importer.Row, opts services.ImportOptions) (*services.ImportSummary, error) {
		return h.importService.ImportMCQs(c.Request.Context(), rows, opts)
	})
}

func (h *ImportHandler) ImportFlashcards(c *gin.Context) {
	h.runImport(c, "flashcards", func(c *gin.Context, rows []importer.Row, opts services.ImportOptions) (*services.ImportSummary, error) {
		return h.importService.ImportFlashcards(c.Request.Context(), rows, opts)
	})
}

func (h *ImportHandler) ImportSyllabus(c *gin.Context) {
	h.runImport(c, "syllabus", func(c *gin.Context, rows []importer.Row, opts services.ImportOptions) (*services.ImportSummary, error) {
		return h.importService.ImportSyllabus(c.Request.Context(), rows, opts)
	})
}

// Template streams the xlsx upload template for an import type.
func (h *ImportHandler) Template(c *gin.Context) {
	importType := c.Param("type")
	workbook, err := spreadsheet.Template(importType)
	if err != nil {
		RespondError(c, http.StatusNotFound, "unknown_template", err)
		return
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		h.log.Error("Writing template failed", "type", importType, "error", err)
		RespondError(c, http.StatusInternalServerError, "template_failed", err)
		return
	}
	filename := fmt.Sprintf("%s-template.xlsx", importType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

type parseTextRequest struct {
	Questions string `json:"questions" binding:"required"`
	AnswerKey string `json:"answer_key"`
}

// ParseText converts pasted question text (numbered-block grammar plus an
// optional answer key) into structured questions.
func (h *ImportHandler) ParseText(c *gin.Context) {
	var req parseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	questions := services.ParseMCQBlocks(req.Questions)
	var badLines []string
	if req.AnswerKey != "" {
		key, bad := services.ParseAnswerKey(req.AnswerKey)
		services.ApplyAnswerKey(questions, key)
		badLines = bad
	}
	RespondOK(c, gin.H{"questions": questions, "bad_answer_lines": badLines})
}

type textWorkbookRequest struct {
	Subject string `json:"subject" binding:"required"`
	Chapter string `json:"chapter" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

// TextWorkbook converts answer-inline question text into an xlsx file in
// the MCQ import column layout, ready for re-upload.
func (h *ImportHandler) TextWorkbook(c *gin.Context) {
	var req textWorkbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	questions := services.ParseInlineMCQs(req.Text)
	if len(questions) == 0 {
		RespondError(c, http.StatusUnprocessableEntity, "no_questions", fmt.Errorf("no complete questions found in text"))
		return
	}

	workbook, err := spreadsheet.MCQImportWorkbook(req.Subject, req.Chapter, questionsToImportRows(questions))
	if err != nil {
		h.log.Error("Building text workbook failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "workbook_failed", err)
		return
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		h.log.Error("Writing text workbook failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "workbook_failed", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="mcq-import.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func questionsToImportRows(questions []services.ParsedMCQ) []spreadsheet.MCQImportRow {
	rows := make([]spreadsheet.MCQImportRow, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, spreadsheet.MCQImportRow{
			Question:    q.Question,
			Option1:     q.Options[0],
			Option2:     q.Options[1],
			Option3:     q.Options[2],
			Option4:     q.Options[3],
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	return rows
}
