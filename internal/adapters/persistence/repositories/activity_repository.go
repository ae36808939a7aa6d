package repositories

import (
	"context"
	"database/sql"
	"errors"

	"main-gestdoc/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ActivityLogCapacity is the number of entries the activity ring retains
const ActivityLogCapacity = 50

// activityRepository implements ActivityRepository interface
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Record inserts an entry and evicts everything older than the most
// recent ActivityLogCapacity entries
func (r *activityRepository) Record(ctx context.Context, entry *models.ActivityLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return err
	}
	return r.prune(ctx)
}

// List returns the most recent entries, newest first
func (r *activityRepository) List(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	if limit <= 0 || limit > ActivityLogCapacity {
		limit = ActivityLogCapacity
	}
	var entries []*models.ActivityLog
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// prune keeps only the newest ActivityLogCapacity rows
func (r *activityRepository) prune(ctx context.Context) error {
	var threshold uint
	row := r.db.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Select("id").
		Order("id DESC").
		Offset(ActivityLogCapacity - 1).
		Limit(1).
		Row()
	if err := row.Scan(&threshold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Fewer rows than the capacity, nothing to evict
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).
		Where("id < ?", threshold).
		Delete(&models.ActivityLog{}).Error
}
