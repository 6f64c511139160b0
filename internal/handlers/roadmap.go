package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type RoadmapHandler struct {
	log            *logger.Logger
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(log *logger.Logger, roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		log:            log.With("handler", "RoadmapHandler"),
		roadmapService: roadmapService,
	}
}

func (h *RoadmapHandler) Create(c *gin.Context) {
	var input services.RoadmapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	roadmap, err := h.roadmapService.Create(c.Request.Context(), input)
	if err != nil {
		h.log.Error("Create roadmap failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "create_roadmap_failed", err)
		return
	}
	RespondOK(c, gin.H{"roadmap": roadmap})
}

func (h *RoadmapHandler) List(c *gin.Context) {
	roadmaps, err := h.roadmapService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("List roadmaps failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_roadmaps_failed", err)
		return
	}
	RespondOK(c, gin.H{"roadmaps": roadmaps})
}

func (h *RoadmapHandler) Update(c *gin.Context) {
	roadmapID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input services.RoadmapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	roadmap, err := h.roadmapService.Update(c.Request.Context(), roadmapID, input)
	if err != nil {
		h.log.Error("Update roadmap failed", "error", err, "roadmap_id", roadmapID)
		RespondError(c, http.StatusInternalServerError, "update_roadmap_failed", err)
		return
	}
	RespondOK(c, gin.H{"roadmap": roadmap})
}

func (h *RoadmapHandler) Delete(c *gin.Context) {
	roadmapID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.roadmapService.Delete(c.Request.Context(), roadmapID); err != nil {
		h.log.Error("Delete roadmap failed", "error", err, "roadmap_id", roadmapID)
		RespondError(c, http.StatusInternalServerError, "delete_roadmap_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *RoadmapHandler) AddMilestone(c *gin.Context) {
	roadmapID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input services.MilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	milestone, err := h.roadmapService.AddMilestone(c.Request.Context(), roadmapID, input)
	if err != nil {
		h.log.Error("Add milestone failed", "error", err, "roadmap_id", roadmapID)
		RespondError(c, http.StatusInternalServerError, "add_milestone_failed", err)
		return
	}
	RespondOK(c, gin.H{"milestone": milestone})
}

func (h *RoadmapHandler) ListMilestones(c *gin.Context) {
	roadmapID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	milestones, err := h.roadmapService.GetMilestones(c.Request.Context(), roadmapID)
	if err != nil {
		h.log.Error("List milestones failed", "error", err, "roadmap_id", roadmapID)
		RespondError(c, http.StatusInternalServerError, "load_milestones_failed", err)
		return
	}
	RespondOK(c, gin.H{"milestones": milestones})
}

func (h *RoadmapHandler) UpdateMilestone(c *gin.Context) {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input services.MilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	milestone, err := h.roadmapService.UpdateMilestone(c.Request.Context(), milestoneID, input)
	if err != nil {
		h.log.Error("Update milestone failed", "error", err, "milestone_id", milestoneID)
		RespondError(c, http.StatusInternalServerError, "update_milestone_failed", err)
		return
	}
	RespondOK(c, gin.H{"milestone": milestone})
}

func (h *RoadmapHandler) DeleteMilestone(c *gin.Context) {
	milestoneID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.roadmapService.DeleteMilestone(c.Request.Context(), milestoneID); err != nil {
		h.log.Error("Delete milestone failed", "error", err, "milestone_id", milestoneID)
		RespondError(c, http.StatusInternalServerError, "delete_milestone_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

type roadmapNoteRequest struct {
	Content string `json:"content" binding:"required"`
	Date    string `json:"date"`
}

func (h *RoadmapHandler) AddNote(c *gin.Context) {
	roadmapID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req roadmapNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	note, err := h.roadmapService.AddNote(c.Request.Context(), roadmapID, req.Content, req.Date)
	if err != nil {
		h.log.Error("Add roadmap note failed", "error", err, "roadmap_id", roadmapID)
		RespondError(c, http.StatusInternalServerError, "add_note_failed", err)
		return
	}
	RespondOK(c, gin.H{"note": note})
}

func (h *RoadmapHandler) ListNotes(c *gin.Context) {
	roadmapID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	notes, err := h.roadmapService.GetNotes(c.Request.Context(), roadmapID)
	if err != nil {
		h.log.Error("List roadmap notes failed", "error", err, "roadmap_id", roadmapID)
		RespondError(c, http.StatusInternalServerError, "load_notes_failed", err)
		return
	}
	RespondOK(c, gin.H{"notes": notes})
}

func (h *RoadmapHandler) DeleteNote(c *gin.Context) {
	noteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.roadmapService.DeleteNote(c.Request.Context(), noteID); err != nil {
		h.log.Error("Delete roadmap note failed", "error", err, "note_id", noteID)
		RespondError(c, http.StatusInternalServerError, "delete_note_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
