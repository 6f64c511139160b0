package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type NoteHandler struct {
	log         *logger.Logger
	noteService services.NoteService
}

func NewNoteHandler(log *logger.Logger, noteService services.NoteService) *NoteHandler {
	return &NoteHandler{
		log:         log.With("handler", "NoteHandler"),
		noteService: noteService,
	}
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	note, err := h.noteService.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		h.log.Error("Create note failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "create_note_failed", err)
		return
	}
	RespondOK(c, gin.H{"note": note})
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.noteService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("List notes failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_notes_failed", err)
		return
	}
	RespondOK(c, gin.H{"notes": notes})
}

func (h *NoteHandler) Update(c *gin.Context) {
	noteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	note, err := h.noteService.Update(c.Request.Context(), noteID, req.Title, req.Content)
	if err != nil {
		h.log.Error("Update note failed", "error", err, "note_id", noteID)
		RespondError(c, http.StatusInternalServerError, "update_note_failed", err)
		return
	}
	RespondOK(c, gin.H{"note": note})
}

func (h *NoteHandler) Delete(c *gin.Context) {
	noteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.noteService.Delete(c.Request.Context(), noteID); err != nil {
		h.log.Error("Delete note failed", "error", err, "note_id", noteID)
		RespondError(c, http.StatusInternalServerError, "delete_note_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
