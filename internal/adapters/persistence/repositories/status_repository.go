package repositories

import (
	"context"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// statusConfigRepository implements StatusConfigRepository interface
type statusConfigRepository struct {
	db *gorm.DB
}

// NewStatusConfigRepository creates a new status config repository
func NewStatusConfigRepository(db *gorm.DB) StatusConfigRepository {
	return &statusConfigRepository{db: db}
}

// Get gets the whitelist config for one document type
func (r *statusConfigRepository) Get(ctx context.Context, docType domain.DocumentType) (*models.ManagedStatusConfig, error) {
	var config models.ManagedStatusConfig
	err := r.db.WithContext(ctx).Where("document_type = ?", docType).First(&config).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// List lists all configured whitelists
func (r *statusConfigRepository) List(ctx context.Context) ([]*models.ManagedStatusConfig, error) {
	var configs []*models.ManagedStatusConfig
	err := r.db.WithContext(ctx).Find(&configs).Error
	return configs, err
}

// Upsert replaces the whitelist for exactly one document type
func (r *statusConfigRepository) Upsert(ctx context.Context, config *models.ManagedStatusConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "document_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"statuses", "updated_at"}),
		}).
		Create(config).Error
}

// statusHistoryRepository implements StatusHistoryRepository interface
type statusHistoryRepository struct {
	db *gorm.DB
}

// NewStatusHistoryRepository creates a new status history repository
func NewStatusHistoryRepository(db *gorm.DB) StatusHistoryRepository {
	return &statusHistoryRepository{db: db}
}

// Create records a status transition
func (r *statusHistoryRepository) Create(ctx context.Context, entry *models.StatusHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByDocument lists the transitions of one document, newest first
func (r *statusHistoryRepository) ListByDocument(ctx context.Context, docType domain.DocumentType, docID string) ([]*models.StatusHistory, error) {
	var entries []*models.StatusHistory
	err := r.db.WithContext(ctx).
		Where("document_type = ? AND document_id = ?", docType, docID).
		Order("id DESC").
		Find(&entries).Error
	return entries, err
}
