package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
	"github.com/prepmate/prepmate-backend/internal/utils"
)

// SQLiteService is the embedded local store holding backup snapshots of
// the personal-data tables.
type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(log *logger.Logger) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	localPath := utils.GetEnv("LOCAL_DB_PATH", "mainapp.db", log)

	log.Info("Opening local SQLite store...", "path", localPath)
	gdb, err := gorm.Open(sqlite.Open(localPath), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to open local SQLite store", "error", err)
		return nil, fmt.Errorf("failed to open local SQLite store: %w", err)
	}

	return &SQLiteService{db: gdb, log: serviceLog}, nil
}

// AutoMigrateAll creates the snapshot tables. The set mirrors the tables
// covered by backup/restore, plus the backup metadata table.
func (s *SQLiteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating local sqlite tables...")
	err := s.db.AutoMigrate(
		&types.Task{},
		&types.Habit{},
		&types.Roadmap{},
		&types.Milestone{},
		&types.RoadmapNote{},
		&types.Manifest{},
		&types.Note{},
		&types.Reminder{},
		&types.FocusSession{},
		&types.BackupMeta{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for local sqlite tables", "error", err)
		return err
	}
	return nil
}

func (s *SQLiteService) DB() *gorm.DB {
	return s.db
}
