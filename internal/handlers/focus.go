package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type FocusHandler struct {
	log          *logger.Logger
	focusService services.FocusService
}

func NewFocusHandler(log *logger.Logger, focusService services.FocusService) *FocusHandler {
	return &FocusHandler{
		log:          log.With("handler", "FocusHandler"),
		focusService: focusService,
	}
}

func (h *FocusHandler) Record(c *gin.Context) {
	var input services.FocusSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	session, err := h.focusService.Record(c.Request.Context(), input)
	if err != nil {
		h.log.Error("Record focus session failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "record_session_failed", err)
		return
	}
	RespondOK(c, gin.H{"session": session})
}

func (h *FocusHandler) List(c *gin.Context) {
	sessions, err := h.focusService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("List focus sessions failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_sessions_failed", err)
		return
	}
	RespondOK(c, gin.H{"sessions": sessions})
}

func (h *FocusHandler) History(c *gin.Context) {
	totals, err := h.focusService.History(c.Request.Context())
	if err != nil {
		h.log.Error("Focus history failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_history_failed", err)
		return
	}
	RespondOK(c, gin.H{"history": totals})
}

func (h *FocusHandler) Delete(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.focusService.Delete(c.Request.Context(), sessionID); err != nil {
		h.log.Error("Delete focus session failed", "error", err, "session_id", sessionID)
		RespondError(c, http.StatusInternalServerError, "delete_session_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
