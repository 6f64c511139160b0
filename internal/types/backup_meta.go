package types

import (
	"time"
)

// BackupMeta lives in the local snapshot store, one row per backed-up
// table plus the overall record under the table name "_overall".
type BackupMeta struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Table     string    `gorm:"column:table_name;uniqueIndex;not null" json:"table_name"`
	TotalRows int       `gorm:"column:total_rows;not null;default:0" json:"total_rows"`
	Timestamp time.Time `gorm:"column:backup_timestamp;not null" json:"backup_timestamp"`
}

func (BackupMeta) TableName() string { return "backup_meta" }
