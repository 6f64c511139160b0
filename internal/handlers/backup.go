package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type BackupHandler struct {
	log           *logger.Logger
	backupService services.BackupService
}

func NewBackupHandler(log *logger.Logger, backupService services.BackupService) *BackupHandler {
	return &BackupHandler{
		log:           log.With("handler", "BackupHandler"),
		backupService: backupService,
	}
}

func (h *BackupHandler) Backup(c *gin.Context) {
	result, err := h.backupService.Backup(c.Request.Context())
	if err != nil {
		h.log.Error("Backup failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "backup_failed", err)
		return
	}
	RespondOK(c, gin.H{"result": result})
}

func (h *BackupHandler) Restore(c *gin.Context) {
	result, err := h.backupService.Restore(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoBackup) {
			RespondError(c, http.StatusNotFound, "no_backup", err)
			return
		}
		h.log.Error("Restore failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "restore_failed", err)
		return
	}
	RespondOK(c, gin.H{"result": result})
}

func (h *BackupHandler) Status(c *gin.Context) {
	status, err := h.backupService.Status(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoBackup) {
			RespondError(c, http.StatusNotFound, "no_backup", err)
			return
		}
		h.log.Error("Backup status failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "status_failed", err)
		return
	}
	RespondOK(c, gin.H{"status": status})
}
