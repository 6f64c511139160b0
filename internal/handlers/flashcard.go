package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type FlashcardHandler struct {
	log              *logger.Logger
	flashcardService services.FlashcardService
}

func NewFlashcardHandler(log *logger.Logger, flashcardService services.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{
		log:              log.With("handler", "FlashcardHandler"),
		flashcardService: flashcardService,
	}
}

func (h *FlashcardHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.flashcardService.GetSubjects(c.Request.Context())
	if err != nil {
		h.log.Error("List flashcard subjects failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_subjects_failed", err)
		return
	}
	RespondOK(c, gin.H{"subjects": subjects})
}

func (h *FlashcardHandler) ListChapters(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	chapters, err := h.flashcardService.GetChapters(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("List chapters failed", "error", err, "subject_id", subjectID)
		RespondError(c, http.StatusInternalServerError, "load_chapters_failed", err)
		return
	}
	RespondOK(c, gin.H{"chapters": chapters})
}

func (h *FlashcardHandler) ListCards(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cards, err := h.flashcardService.GetCards(c.Request.Context(), chapterID)
	if err != nil {
		h.log.Error("List cards failed", "error", err, "chapter_id", chapterID)
		RespondError(c, http.StatusInternalServerError, "load_cards_failed", err)
		return
	}
	RespondOK(c, gin.H{"cards": cards})
}

func (h *FlashcardHandler) ListFavorites(c *gin.Context) {
	cards, err := h.flashcardService.GetFavorites(c.Request.Context())
	if err != nil {
		h.log.Error("List favorites failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_favorites_failed", err)
		return
	}
	RespondOK(c, gin.H{"cards": cards})
}

func (h *FlashcardHandler) ToggleFavorite(c *gin.Context) {
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	card, err := h.flashcardService.ToggleFavorite(c.Request.Context(), cardID)
	if err != nil {
		h.log.Error("Toggle favorite failed", "error", err, "card_id", cardID)
		RespondError(c, http.StatusInternalServerError, "toggle_favorite_failed", err)
		return
	}
	RespondOK(c, gin.H{"card": card})
}

type flashcardUpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (h *FlashcardHandler) UpdateCard(c *gin.Context) {
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req flashcardUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	card, err := h.flashcardService.UpdateCard(c.Request.Context(), cardID, req.Title, req.Description)
	if err != nil {
		h.log.Error("Update card failed", "error", err, "card_id", cardID)
		RespondError(c, http.StatusInternalServerError, "update_card_failed", err)
		return
	}
	RespondOK(c, gin.H{"card": card})
}

func (h *FlashcardHandler) DeleteSubject(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.flashcardService.DeleteSubject(c.Request.Context(), subjectID); err != nil {
		h.log.Error("Delete subject failed", "error", err, "subject_id", subjectID)
		RespondError(c, http.StatusInternalServerError, "delete_subject_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *FlashcardHandler) DeleteChapter(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.flashcardService.DeleteChapter(c.Request.Context(), chapterID); err != nil {
		h.log.Error("Delete chapter failed", "error", err, "chapter_id", chapterID)
		RespondError(c, http.StatusInternalServerError, "delete_chapter_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *FlashcardHandler) DeleteCard(c *gin.Context) {
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.flashcardService.DeleteCard(c.Request.Context(), cardID); err != nil {
		h.log.Error("Delete card failed", "error", err, "card_id", cardID)
		RespondError(c, http.StatusInternalServerError, "delete_card_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
