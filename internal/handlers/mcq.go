package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type MCQHandler struct {
	log        *logger.Logger
	mcqService services.MCQService
}

func NewMCQHandler(log *logger.Logger, mcqService services.MCQService) *MCQHandler {
	return &MCQHandler{
		log:        log.With("handler", "MCQHandler"),
		mcqService: mcqService,
	}
}

func (h *MCQHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.mcqService.GetSubjects(c.Request.Context())
	if err != nil {
		h.log.Error("List MCQ subjects failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_subjects_failed", err)
		return
	}
	RespondOK(c, gin.H{"subjects": subjects})
}

func (h *MCQHandler) ListChapters(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	chapters, err := h.mcqService.GetChapters(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("List MCQ chapters failed", "error", err, "subject_id", subjectID)
		RespondError(c, http.StatusInternalServerError, "load_chapters_failed", err)
		return
	}
	RespondOK(c, gin.H{"chapters": chapters})
}

func (h *MCQHandler) ListQuestions(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	questions, err := h.mcqService.GetQuestions(c.Request.Context(), chapterID)
	if err != nil {
		h.log.Error("List questions failed", "error", err, "chapter_id", chapterID)
		RespondError(c, http.StatusInternalServerError, "load_questions_failed", err)
		return
	}
	RespondOK(c, gin.H{"questions": questions})
}

func (h *MCQHandler) UpdateQuestion(c *gin.Context) {
	mcqID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input services.MCQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	question, err := h.mcqService.UpdateQuestion(c.Request.Context(), mcqID, input)
	if err != nil {
		h.log.Error("Update question failed", "error", err, "mcq_id", mcqID)
		RespondError(c, http.StatusInternalServerError, "update_question_failed", err)
		return
	}
	RespondOK(c, gin.H{"question": question})
}

func (h *MCQHandler) DeleteSubject(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.mcqService.DeleteSubject(c.Request.Context(), subjectID); err != nil {
		h.log.Error("Delete MCQ subject failed", "error", err, "subject_id", subjectID)
		RespondError(c, http.StatusInternalServerError, "delete_subject_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *MCQHandler) DeleteChapter(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.mcqService.DeleteChapter(c.Request.Context(), chapterID); err != nil {
		h.log.Error("Delete MCQ chapter failed", "error", err, "chapter_id", chapterID)
		RespondError(c, http.StatusInternalServerError, "delete_chapter_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *MCQHandler) DeleteQuestion(c *gin.Context) {
	mcqID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.mcqService.DeleteQuestion(c.Request.Context(), mcqID); err != nil {
		h.log.Error("Delete question failed", "error", err, "mcq_id", mcqID)
		RespondError(c, http.StatusInternalServerError, "delete_question_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
