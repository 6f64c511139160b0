package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type ReminderHandler struct {
	log             *logger.Logger
	reminderService services.ReminderService
}

func NewReminderHandler(log *logger.Logger, reminderService services.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		log:             log.With("handler", "ReminderHandler"),
		reminderService: reminderService,
	}
}

func (h *ReminderHandler) Create(c *gin.Context) {
	var input services.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	reminder, err := h.reminderService.Create(c.Request.Context(), input)
	if err != nil {
		h.log.Error("Create reminder failed", "error", err)
		RespondError(c, http.StatusBadRequest, "create_reminder_failed", err)
		return
	}
	RespondOK(c, gin.H{"reminder": reminder})
}

func (h *ReminderHandler) List(c *gin.Context) {
	reminders, err := h.reminderService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("List reminders failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_reminders_failed", err)
		return
	}
	RespondOK(c, gin.H{"reminders": reminders})
}

func (h *ReminderHandler) Update(c *gin.Context) {
	reminderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input services.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	reminder, err := h.reminderService.Update(c.Request.Context(), reminderID, input)
	if err != nil {
		h.log.Error("Update reminder failed", "error", err, "reminder_id", reminderID)
		RespondError(c, http.StatusInternalServerError, "update_reminder_failed", err)
		return
	}
	RespondOK(c, gin.H{"reminder": reminder})
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	reminderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.reminderService.Delete(c.Request.Context(), reminderID); err != nil {
		h.log.Error("Delete reminder failed", "error", err, "reminder_id", reminderID)
		RespondError(c, http.StatusInternalServerError, "delete_reminder_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
