package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type SyllabusHandler struct {
	log             *logger.Logger
	syllabusService services.SyllabusService
}

func NewSyllabusHandler(log *logger.Logger, syllabusService services.SyllabusService) *SyllabusHandler {
	return &SyllabusHandler{
		log:             log.With("handler", "SyllabusHandler"),
		syllabusService: syllabusService,
	}
}

func (h *SyllabusHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.syllabusService.GetSubjects(c.Request.Context())
	if err != nil {
		h.log.Error("List syllabus subjects failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_subjects_failed", err)
		return
	}
	RespondOK(c, gin.H{"subjects": subjects})
}

func (h *SyllabusHandler) ListTopics(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	topics, err := h.syllabusService.GetTopics(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("List topics failed", "error", err, "subject_id", subjectID)
		RespondError(c, http.StatusInternalServerError, "load_topics_failed", err)
		return
	}
	RespondOK(c, gin.H{"topics": topics})
}

func (h *SyllabusHandler) ListItems(c *gin.Context) {
	topicID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	items, err := h.syllabusService.GetItems(c.Request.Context(), topicID)
	if err != nil {
		h.log.Error("List items failed", "error", err, "topic_id", topicID)
		RespondError(c, http.StatusInternalServerError, "load_items_failed", err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *SyllabusHandler) ToggleItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.syllabusService.ToggleItem(c.Request.Context(), itemID)
	if err != nil {
		h.log.Error("Toggle item failed", "error", err, "item_id", itemID)
		RespondError(c, http.StatusInternalServerError, "toggle_item_failed", err)
		return
	}
	RespondOK(c, gin.H{"item": item})
}

func (h *SyllabusHandler) SubjectProgress(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	progress, err := h.syllabusService.GetSubjectProgress(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("Subject progress failed", "error", err, "subject_id", subjectID)
		RespondError(c, http.StatusInternalServerError, "progress_failed", err)
		return
	}
	RespondOK(c, gin.H{"progress": progress})
}

func (h *SyllabusHandler) DeleteSubject(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.syllabusService.DeleteSubject(c.Request.Context(), subjectID); err != nil {
		h.log.Error("Delete syllabus subject failed", "error", err, "subject_id", subjectID)
		RespondError(c, http.StatusInternalServerError, "delete_subject_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *SyllabusHandler) DeleteTopic(c *gin.Context) {
	topicID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.syllabusService.DeleteTopic(c.Request.Context(), topicID); err != nil {
		h.log.Error("Delete topic failed", "error", err, "topic_id", topicID)
		RespondError(c, http.StatusInternalServerError, "delete_topic_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *SyllabusHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.syllabusService.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.log.Error("Delete item failed", "error", err, "item_id", itemID)
		RespondError(c, http.StatusInternalServerError, "delete_item_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
