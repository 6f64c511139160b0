package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type ManifestHandler struct {
	log             *logger.Logger
	manifestService services.ManifestService
}

func NewManifestHandler(log *logger.Logger, manifestService services.ManifestService) *ManifestHandler {
	return &ManifestHandler{
		log:             log.With("handler", "ManifestHandler"),
		manifestService: manifestService,
	}
}

type manifestRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *ManifestHandler) Create(c *gin.Context) {
	var req manifestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	manifest, err := h.manifestService.Create(c.Request.Context(), req.Text)
	if err != nil {
		h.log.Error("Create manifest failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "create_manifest_failed", err)
		return
	}
	RespondOK(c, gin.H{"manifest": manifest})
}

func (h *ManifestHandler) List(c *gin.Context) {
	manifests, err := h.manifestService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("List manifests failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_manifests_failed", err)
		return
	}
	RespondOK(c, gin.H{"manifests": manifests})
}

func (h *ManifestHandler) Update(c *gin.Context) {
	manifestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req manifestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	manifest, err := h.manifestService.Update(c.Request.Context(), manifestID, req.Text)
	if err != nil {
		h.log.Error("Update manifest failed", "error", err, "manifest_id", manifestID)
		RespondError(c, http.StatusInternalServerError, "update_manifest_failed", err)
		return
	}
	RespondOK(c, gin.H{"manifest": manifest})
}

func (h *ManifestHandler) MarkTodayDone(c *gin.Context) {
	manifestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	manifest, err := h.manifestService.MarkTodayDone(c.Request.Context(), manifestID)
	if err != nil {
		h.log.Error("Mark today done failed", "error", err, "manifest_id", manifestID)
		RespondError(c, http.StatusInternalServerError, "mark_done_failed", err)
		return
	}
	RespondOK(c, gin.H{"manifest": manifest})
}

func (h *ManifestHandler) ResetTodayDone(c *gin.Context) {
	if err := h.manifestService.ResetTodayDone(c.Request.Context()); err != nil {
		h.log.Error("Reset today done failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "reset_failed", err)
		return
	}
	RespondOK(c, gin.H{"reset": true})
}

func (h *ManifestHandler) Delete(c *gin.Context) {
	manifestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.manifestService.Delete(c.Request.Context(), manifestID); err != nil {
		h.log.Error("Delete manifest failed", "error", err, "manifest_id", manifestID)
		RespondError(c, http.StatusInternalServerError, "delete_manifest_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
