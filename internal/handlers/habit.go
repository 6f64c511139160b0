package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/services"
)

type HabitHandler struct {
	log          *logger.Logger
	habitService services.HabitService
}

func NewHabitHandler(log *logger.Logger, habitService services.HabitService) *HabitHandler {
	return &HabitHandler{
		log:          log.With("handler", "HabitHandler"),
		habitService: habitService,
	}
}

func (h *HabitHandler) Create(c *gin.Context) {
	var input services.HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	habit, err := h.habitService.Create(c.Request.Context(), input)
	if err != nil {
		h.log.Error("Create habit failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "create_habit_failed", err)
		return
	}
	RespondOK(c, gin.H{"habit": habit})
}

func (h *HabitHandler) List(c *gin.Context) {
	habits, err := h.habitService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("List habits failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_habits_failed", err)
		return
	}
	RespondOK(c, gin.H{"habits": habits})
}

func (h *HabitHandler) Update(c *gin.Context) {
	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input services.HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	habit, err := h.habitService.Update(c.Request.Context(), habitID, input)
	if err != nil {
		h.log.Error("Update habit failed", "error", err, "habit_id", habitID)
		RespondError(c, http.StatusInternalServerError, "update_habit_failed", err)
		return
	}
	RespondOK(c, gin.H{"habit": habit})
}

func (h *HabitHandler) CheckIn(c *gin.Context) {
	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	habit, err := h.habitService.CheckIn(c.Request.Context(), habitID)
	if err != nil {
		h.log.Error("Habit check-in failed", "error", err, "habit_id", habitID)
		RespondError(c, http.StatusInternalServerError, "checkin_failed", err)
		return
	}
	RespondOK(c, gin.H{"habit": habit})
}

func (h *HabitHandler) Delete(c *gin.Context) {
	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.habitService.Delete(c.Request.Context(), habitID); err != nil {
		h.log.Error("Delete habit failed", "error", err, "habit_id", habitID)
		RespondError(c, http.StatusInternalServerError, "delete_habit_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
