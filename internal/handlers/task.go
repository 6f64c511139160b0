package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type TaskHandler struct {
	log         *logger.Logger
	taskService services.TaskService
}

func NewTaskHandler(log *logger.Logger, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		log:         log.With("handler", "TaskHandler"),
		taskService: taskService,
	}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var input services.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		h.log.Error("Create task failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "create_task_failed", err)
		return
	}
	RespondOK(c, gin.H{"task": task})
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("List tasks failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_tasks_failed", err)
		return
	}
	RespondOK(c, gin.H{"tasks": tasks})
}

func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input services.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	task, err := h.taskService.Update(c.Request.Context(), taskID, input)
	if err != nil {
		h.log.Error("Update task failed", "error", err, "task_id", taskID)
		RespondError(c, http.StatusInternalServerError, "update_task_failed", err)
		return
	}
	RespondOK(c, gin.H{"task": task})
}

func (h *TaskHandler) Complete(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	task, err := h.taskService.Complete(c.Request.Context(), taskID)
	if err != nil {
		h.log.Error("Complete task failed", "error", err, "task_id", taskID)
		RespondError(c, http.StatusInternalServerError, "complete_task_failed", err)
		return
	}
	RespondOK(c, gin.H{"task": task})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.taskService.Delete(c.Request.Context(), taskID); err != nil {
		h.log.Error("Delete task failed", "error", err, "task_id", taskID)
		RespondError(c, http.StatusInternalServerError, "delete_task_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
