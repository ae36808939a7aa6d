package repositories

import (
	"context"

	"main-gestdoc/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// clientRepository implements ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create creates a new client
func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// GetByID gets a client by ID
func (r *clientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Update updates a client
func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete hard-removes a client. Documents referencing it are left untouched.
func (r *clientRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Client{})
	return res.RowsAffected > 0, res.Error
}

// List lists clients with pagination, newest first
func (r *clientRepository) List(ctx context.Context, offset, limit int) ([]*models.Client, int64, error) {
	var clients []*models.Client
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// ListAll lists all clients, newest first
func (r *clientRepository) ListAll(ctx context.Context) ([]*models.Client, error) {
	var clients []*models.Client
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&clients).Error
	return clients, err
}

// Count counts all clients
func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&count).Error
	return count, err
}
