package main

import (
	"fmt"
	"os"

	"github.com/prepmate/prepmate-backend/internal/db"
	"github.com/prepmate/prepmate-backend/internal/handlers"
	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/middleware"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/server"
	"github.com/prepmate/prepmate-backend/internal/services"
	"github.com/prepmate/prepmate-backend/internal/sse"
	"github.com/prepmate/prepmate-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Local SQLite backup store
	sqliteService, err := db.NewSQLiteService(log)
	if err != nil {
		log.Error("SQLite init failed", "error", err)
		os.Exit(1)
	}
	if err = sqliteService.AutoMigrateAll(); err != nil {
		log.Warn("SQLite auto migration failed", "error", err)
	}
	theLocal := sqliteService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	subjectRepo := repos.NewSubjectRepo(thePG, log)
	chapterRepo := repos.NewChapterRepo(thePG, log)
	flashcardRepo := repos.NewFlashcardRepo(thePG, log)
	mcqSubjectRepo := repos.NewMCQSubjectRepo(thePG, log)
	mcqChapterRepo := repos.NewMCQChapterRepo(thePG, log)
	mcqRepo := repos.NewMCQRepo(thePG, log)
	syllabusSubjectRepo := repos.NewSyllabusSubjectRepo(thePG, log)
	syllabusTopicRepo := repos.NewSyllabusTopicRepo(thePG, log)
	syllabusItemRepo := repos.NewSyllabusItemRepo(thePG, log)
	taskRepo := repos.NewTaskRepo(thePG, log)
	habitRepo := repos.NewHabitRepo(thePG, log)
	roadmapRepo := repos.NewRoadmapRepo(thePG, log)
	milestoneRepo := repos.NewMilestoneRepo(thePG, log)
	roadmapNoteRepo := repos.NewRoadmapNoteRepo(thePG, log)
	manifestRepo := repos.NewManifestRepo(thePG, log)
	noteRepo := repos.NewNoteRepo(thePG, log)
	reminderRepo := repos.NewReminderRepo(thePG, log)
	focusSessionRepo := repos.NewFocusSessionRepo(thePG, log)

	// SSE
	log.Info("Setting up SSE hub now...")
	sseHub := sse.NewSSEHub(log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(userRepo, userTokenRepo, log)
	userService := services.NewUserService(userRepo, log)
	importService := services.NewImportService(thePG, sseHub, log)
	backupService := services.NewBackupService(thePG, theLocal, sseHub, log)
	flashcardService := services.NewFlashcardService(subjectRepo, chapterRepo, flashcardRepo, log)
	mcqService := services.NewMCQService(mcqSubjectRepo, mcqChapterRepo, mcqRepo, log)
	syllabusService := services.NewSyllabusService(syllabusSubjectRepo, syllabusTopicRepo, syllabusItemRepo, log)
	taskService := services.NewTaskService(taskRepo, log)
	habitService := services.NewHabitService(habitRepo, log)
	roadmapService := services.NewRoadmapService(roadmapRepo, milestoneRepo, roadmapNoteRepo, log)
	manifestService := services.NewManifestService(manifestRepo, log)
	noteService := services.NewNoteService(noteRepo, log)
	reminderService := services.NewReminderService(reminderRepo, log)
	focusService := services.NewFocusService(focusSessionRepo, log)

	// Handlers
	log.Info("Setting up handlers from main...")
	healthcheckHandler := handlers.NewHealthcheckHandler()
	authHandler := handlers.NewAuthHandler(log, authService)
	userHandler := handlers.NewUserHandler(log, userService)
	sseHandler := handlers.NewSSEHandler(log, sseHub)
	importHandler := handlers.NewImportHandler(log, importService)
	exportHandler := handlers.NewExportHandler(log, mcqService)
	backupHandler := handlers.NewBackupHandler(log, backupService)
	flashcardHandler := handlers.NewFlashcardHandler(log, flashcardService)
	mcqHandler := handlers.NewMCQHandler(log, mcqService)
	syllabusHandler := handlers.NewSyllabusHandler(log, syllabusService)
	taskHandler := handlers.NewTaskHandler(log, taskService)
	habitHandler := handlers.NewHabitHandler(log, habitService)
	roadmapHandler := handlers.NewRoadmapHandler(log, roadmapService)
	manifestHandler := handlers.NewManifestHandler(log, manifestService)
	noteHandler := handlers.NewNoteHandler(log, noteService)
	reminderHandler := handlers.NewReminderHandler(log, reminderService)
	focusHandler := handlers.NewFocusHandler(log, focusService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware:     authMiddleware,
		HealthcheckHandler: healthcheckHandler,
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		SSEHandler:         sseHandler,
		ImportHandler:      importHandler,
		ExportHandler:      exportHandler,
		BackupHandler:      backupHandler,
		FlashcardHandler:   flashcardHandler,
		MCQHandler:         mcqHandler,
		SyllabusHandler:    syllabusHandler,
		TaskHandler:        taskHandler,
		HabitHandler:       habitHandler,
		RoadmapHandler:     roadmapHandler,
		ManifestHandler:    manifestHandler,
		NoteHandler:        noteHandler,
		ReminderHandler:    reminderHandler,
		FocusHandler:       focusHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
