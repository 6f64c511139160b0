package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/importer"
)

// gormStore adapts a gorm handle to the importer.Store contract. Records
// travel as maps keyed by column name so one adapter serves every
// taxonomy and leaf table; ids are app-assigned UUIDs, which keeps the
// same code valid against both the Postgres and SQLite stores.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) importer.Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindOne(ctx context.Context, collection string, filters map[string]any) (map[string]any, error) {
	query := s.db.WithContext(ctx).Table(collection)
	for field, value := range filters {
		query = query.Where(fmt.Sprintf("%s = ?", field), value)
	}

	record := map[string]any{}
	if err := query.Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, importer.ErrNotFound
		}
		return nil, err
	}
	if raw, ok := record["id"].([]byte); ok {
		record["id"] = string(raw)
	}
	return record, nil
}

func (s *gormStore) FindMax(ctx context.Context, collection string, field string) (int, error) {
	var max int
	err := s.db.WithContext(ctx).
		Table(collection).
		Select(fmt.Sprintf("COALESCE(MAX(%s), 0)", field)).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (s *gormStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	record := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		record[k] = v
	}
	id := uuid.New().String()
	record["id"] = id

	if err := s.db.WithContext(ctx).Table(collection).Create(record).Error; err != nil {
		return "", err
	}
	return id, nil
}
