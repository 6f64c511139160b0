package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/prepmate/prepmate-backend/internal/handlers"
	"github.com/prepmate/prepmate-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware     *middleware.AuthMiddleware
	HealthcheckHandler *handlers.HealthcheckHandler
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	SSEHandler         *handlers.SSEHandler
	ImportHandler      *handlers.ImportHandler
	ExportHandler      *handlers.ExportHandler
	BackupHandler      *handlers.BackupHandler
	FlashcardHandler   *handlers.FlashcardHandler
	MCQHandler         *handlers.MCQHandler
	SyllabusHandler    *handlers.SyllabusHandler
	TaskHandler        *handlers.TaskHandler
	HabitHandler       *handlers.HabitHandler
	RoadmapHandler     *handlers.RoadmapHandler
	ManifestHandler    *handlers.ManifestHandler
	NoteHandler        *handlers.NoteHandler
	ReminderHandler    *handlers.ReminderHandler
	FocusHandler       *handlers.FocusHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	protected.GET("/user", cfg.UserHandler.GetUser)

	// SSE
	protected.GET("/sse/stream", cfg.SSEHandler.Stream)
	protected.POST("/sse/subscribe", cfg.SSEHandler.Subscribe)
	protected.POST("/sse/unsubscribe", cfg.SSEHandler.Unsubscribe)

	// Import / export
	protected.POST("/import/mcqs", cfg.ImportHandler.ImportMCQs)
	protected.POST("/import/flashcards", cfg.ImportHandler.ImportFlashcards)
	protected.POST("/import/syllabus", cfg.ImportHandler.ImportSyllabus)
	protected.GET("/import/template/:type", cfg.ImportHandler.Template)
	protected.POST("/mcqs/parse-text", cfg.ImportHandler.ParseText)
	protected.POST("/mcqs/text-workbook", cfg.ImportHandler.TextWorkbook)
	protected.GET("/export/mcqs", cfg.ExportHandler.ExportMCQs)

	// Backup
	protected.POST("/backup", cfg.BackupHandler.Backup)
	protected.POST("/restore", cfg.BackupHandler.Restore)
	protected.GET("/backup/status", cfg.BackupHandler.Status)

	// Flashcards
	protected.GET("/flashcards/subjects", cfg.FlashcardHandler.ListSubjects)
	protected.GET("/flashcards/subjects/:id/chapters", cfg.FlashcardHandler.ListChapters)
	protected.GET("/flashcards/chapters/:id/cards", cfg.FlashcardHandler.ListCards)
	protected.GET("/flashcards/favorites", cfg.FlashcardHandler.ListFavorites)
	protected.POST("/flashcards/cards/:id/favorite", cfg.FlashcardHandler.ToggleFavorite)
	protected.PUT("/flashcards/cards/:id", cfg.FlashcardHandler.UpdateCard)
	protected.DELETE("/flashcards/subjects/:id", cfg.FlashcardHandler.DeleteSubject)
	protected.DELETE("/flashcards/chapters/:id", cfg.FlashcardHandler.DeleteChapter)
	protected.DELETE("/flashcards/cards/:id", cfg.FlashcardHandler.DeleteCard)

	// MCQs
	protected.GET("/mcqs/subjects", cfg.MCQHandler.ListSubjects)
	protected.GET("/mcqs/subjects/:id/chapters", cfg.MCQHandler.ListChapters)
	protected.GET("/mcqs/chapters/:id/questions", cfg.MCQHandler.ListQuestions)
	protected.PUT("/mcqs/questions/:id", cfg.MCQHandler.UpdateQuestion)
	protected.DELETE("/mcqs/subjects/:id", cfg.MCQHandler.DeleteSubject)
	protected.DELETE("/mcqs/chapters/:id", cfg.MCQHandler.DeleteChapter)
	protected.DELETE("/mcqs/questions/:id", cfg.MCQHandler.DeleteQuestion)

	// Syllabus
	protected.GET("/syllabus/subjects", cfg.SyllabusHandler.ListSubjects)
	protected.GET("/syllabus/subjects/:id/topics", cfg.SyllabusHandler.ListTopics)
	protected.GET("/syllabus/subjects/:id/progress", cfg.SyllabusHandler.SubjectProgress)
	protected.GET("/syllabus/topics/:id/items", cfg.SyllabusHandler.ListItems)
	protected.POST("/syllabus/items/:id/toggle", cfg.SyllabusHandler.ToggleItem)
	protected.DELETE("/syllabus/subjects/:id", cfg.SyllabusHandler.DeleteSubject)
	protected.DELETE("/syllabus/topics/:id", cfg.SyllabusHandler.DeleteTopic)
	protected.DELETE("/syllabus/items/:id", cfg.SyllabusHandler.DeleteItem)

	// Tasks
	protected.POST("/tasks", cfg.TaskHandler.Create)
	protected.GET("/tasks", cfg.TaskHandler.List)
	protected.PUT("/tasks/:id", cfg.TaskHandler.Update)
	protected.POST("/tasks/:id/complete", cfg.TaskHandler.Complete)
	protected.DELETE("/tasks/:id", cfg.TaskHandler.Delete)

	// Habits
	protected.POST("/habits", cfg.HabitHandler.Create)
	protected.GET("/habits", cfg.HabitHandler.List)
	protected.PUT("/habits/:id", cfg.HabitHandler.Update)
	protected.POST("/habits/:id/checkin", cfg.HabitHandler.CheckIn)
	protected.DELETE("/habits/:id", cfg.HabitHandler.Delete)

	// Roadmaps
	protected.POST("/roadmaps", cfg.RoadmapHandler.Create)
	protected.GET("/roadmaps", cfg.RoadmapHandler.List)
	protected.PUT("/roadmaps/:id", cfg.RoadmapHandler.Update)
	protected.DELETE("/roadmaps/:id", cfg.RoadmapHandler.Delete)
	protected.POST("/roadmaps/:id/milestones", cfg.RoadmapHandler.AddMilestone)
	protected.GET("/roadmaps/:id/milestones", cfg.RoadmapHandler.ListMilestones)
	protected.PUT("/milestones/:id", cfg.RoadmapHandler.UpdateMilestone)
	protected.DELETE("/milestones/:id", cfg.RoadmapHandler.DeleteMilestone)
	protected.POST("/roadmaps/:id/notes", cfg.RoadmapHandler.AddNote)
	protected.GET("/roadmaps/:id/notes", cfg.RoadmapHandler.ListNotes)
	protected.DELETE("/roadmap-notes/:id", cfg.RoadmapHandler.DeleteNote)

	// Manifests
	protected.POST("/manifests", cfg.ManifestHandler.Create)
	protected.GET("/manifests", cfg.ManifestHandler.List)
	protected.PUT("/manifests/:id", cfg.ManifestHandler.Update)
	protected.POST("/manifests/:id/done", cfg.ManifestHandler.MarkTodayDone)
	protected.POST("/manifests/reset", cfg.ManifestHandler.ResetTodayDone)
	protected.DELETE("/manifests/:id", cfg.ManifestHandler.Delete)

	// Notes
	protected.POST("/notes", cfg.NoteHandler.Create)
	protected.GET("/notes", cfg.NoteHandler.List)
	protected.PUT("/notes/:id", cfg.NoteHandler.Update)
	protected.DELETE("/notes/:id", cfg.NoteHandler.Delete)

	// Reminders
	protected.POST("/reminders", cfg.ReminderHandler.Create)
	protected.GET("/reminders", cfg.ReminderHandler.List)
	protected.PUT("/reminders/:id", cfg.ReminderHandler.Update)
	protected.DELETE("/reminders/:id", cfg.ReminderHandler.Delete)

	// Focus sessions
	protected.POST("/focus/sessions", cfg.FocusHandler.Record)
	protected.GET("/focus/sessions", cfg.FocusHandler.List)
	protected.GET("/focus/history", cfg.FocusHandler.History)
	protected.DELETE("/focus/sessions/:id", cfg.FocusHandler.Delete)

	return router
}
