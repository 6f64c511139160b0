package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/sse"
	"github.com/prepmate/prepmate-backend/internal/types"
)

// ErrNoBackup is returned by Restore and Status when the local store
// holds no snapshot.
var ErrNoBackup = errors.New("no backup found")

const overallMetaName = "_overall"

// BackupResult summarizes one backup or restore run. The batch is
// best-effort: a table that fails is counted and the rest proceed.
type BackupResult struct {
	SuccessCount int       `json:"success_count"`
	FailedCount  int       `json:"failed_count"`
	SkippedCount int       `json:"skipped_count,omitempty"`
	TotalRows    int       `json:"total_rows"`
	Timestamp    time.Time `json:"timestamp"`
}

// BackupStatus reports the snapshot currently held in the local store.
type BackupStatus struct {
	Timestamp time.Time           `json:"timestamp"`
	TotalRows int                 `json:"total_rows"`
	Tables    []*types.BackupMeta `json:"tables"`
}

type BackupService interface {
	Backup(ctx context.Context) (*BackupResult, error)
	Restore(ctx context.Context) (*BackupResult, error)
	Status(ctx context.Context) (*BackupStatus, error)
}

type backupService struct {
	primary *gorm.DB
	local   *gorm.DB
	hub     *sse.SSEHub
	log     *logger.Logger
}

func NewBackupService(primary, local *gorm.DB, hub *sse.SSEHub, baseLog *logger.Logger) BackupService {
	return &backupService{
		primary: primary,
		local:   local,
		hub:     hub,
		log:     baseLog.With("service", "BackupService"),
	}
}

// tableSnapshot binds a table name to a typed copy function so the fixed
// table set stays declarative.
type tableSnapshot struct {
	name string
	copy func(ctx context.Context, src, dst *gorm.DB) (int, error)
}

func snapshotTables() []tableSnapshot {
	return []tableSnapshot{
		{"task", copyTable[types.Task]},
		{"habit", copyTable[types.Habit]},
		{"roadmap", copyTable[types.Roadmap]},
		{"milestone", copyTable[types.Milestone]},
		{"roadmap_note", copyTable[types.RoadmapNote]},
		{"manifest", copyTable[types.Manifest]},
		{"note", copyTable[types.Note]},
		{"reminder", copyTable[types.Reminder]},
		{"focus_session", copyTable[types.FocusSession]},
	}
}

// copyTable replaces dst's rows with src's, transactionally on the dst
// side so a failed copy leaves the destination table untouched.
func copyTable[T any](ctx context.Context, src, dst *gorm.DB) (int, error) {
	var rows []T
	if err := src.WithContext(ctx).Find(&rows).Error; err != nil {
		return 0, fmt.Errorf("reading source rows: %w", err)
	}

	err := dst.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error; err != nil {
			return fmt.Errorf("clearing destination rows: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("writing rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *backupService) Backup(ctx context.Context) (*BackupResult, error) {
	result := &BackupResult{Timestamp: time.Now()}

	for _, table := range snapshotTables() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		rowCount, err := table.copy(ctx, s.primary, s.local)
		if err != nil {
			s.log.Error("Table backup failed", "table", table.name, "error", err)
			result.FailedCount++
			continue
		}
		if err := s.writeMeta(ctx, table.name, rowCount, result.Timestamp); err != nil {
			s.log.Error("Writing backup metadata failed", "table", table.name, "error", err)
			result.FailedCount++
			continue
		}
		result.SuccessCount++
		result.TotalRows += rowCount
	}

	if err := s.writeMeta(ctx, overallMetaName, result.TotalRows, result.Timestamp); err != nil {
		return nil, fmt.Errorf("writing overall backup metadata: %w", err)
	}

	s.log.Info("Backup finished", "tables", result.SuccessCount, "failed", result.FailedCount, "rows", result.TotalRows)
	s.hub.Broadcast(sse.SSEMessage{Channel: "backup", Event: sse.SSEEventBackupCompleted, Data: result})
	return result, nil
}

func (s *backupService) Restore(ctx context.Context) (*BackupResult, error) {
	overall, err := s.readMeta(ctx, overallMetaName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoBackup
		}
		return nil, fmt.Errorf("reading backup metadata: %w", err)
	}

	result := &BackupResult{Timestamp: overall.Timestamp}
	for _, table := range snapshotTables() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if _, err := s.readMeta(ctx, table.name); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.Warn("No snapshot for table; skipping", "table", table.name)
				result.SkippedCount++
				continue
			}
			result.FailedCount++
			continue
		}
		rowCount, err := table.copy(ctx, s.local, s.primary)
		if err != nil {
			s.log.Error("Table restore failed", "table", table.name, "error", err)
			result.FailedCount++
			continue
		}
		result.SuccessCount++
		result.TotalRows += rowCount
	}

	s.log.Info("Restore finished", "tables", result.SuccessCount, "failed", result.FailedCount, "skipped", result.SkippedCount)
	s.hub.Broadcast(sse.SSEMessage{Channel: "backup", Event: sse.SSEEventRestoreCompleted, Data: result})
	return result, nil
}

func (s *backupService) Status(ctx context.Context) (*BackupStatus, error) {
	overall, err := s.readMeta(ctx, overallMetaName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoBackup
		}
		return nil, err
	}

	var tables []*types.BackupMeta
	if err := s.local.WithContext(ctx).
		Where("table_name <> ?", overallMetaName).
		Order("table_name ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return &BackupStatus{Timestamp: overall.Timestamp, TotalRows: overall.TotalRows, Tables: tables}, nil
}

func (s *backupService) writeMeta(ctx context.Context, tableName string, rowCount int, timestamp time.Time) error {
	return s.local.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("table_name = ?", tableName).Delete(&types.BackupMeta{}).Error; err != nil {
			return err
		}
		return tx.Create(&types.BackupMeta{
			Table:     tableName,
			TotalRows: rowCount,
			Timestamp: timestamp,
		}).Error
	})
}

func (s *backupService) readMeta(ctx context.Context, tableName string) (*types.BackupMeta, error) {
	var meta types.BackupMeta
	if err := s.local.WithContext(ctx).
		Where("table_name = ?", tableName).
		First(&meta).Error; err != nil {
		return nil, err
	}
	return &meta, nil
}
