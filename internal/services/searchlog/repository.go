// Package searchlog persists one metadata row per executed search.
package searchlog

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/killallgit/jobscout-api/internal/models"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Repository defines the data access interface for search logs
type Repository interface {
	Record(ctx context.Context, entry *models.SearchLog) error
	Recent(ctx context.Context, limit int) ([]models.SearchLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed search log repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Record inserts one search log row
func (r *repository) Record(ctx context.Context, entry *models.SearchLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("recording search log: %w", err)
	}
	return nil
}

// Recent returns the newest rows first. limit is clamped to 1..100 with a default of 20.
func (r *repository) Recent(ctx context.Context, limit int) ([]models.SearchLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	var logs []models.SearchLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("listing search logs: %w", err)
	}
	return logs, nil
}

// DeleteOlderThan removes rows created before cutoff and returns how many were deleted
func (r *repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.SearchLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("pruning search logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
