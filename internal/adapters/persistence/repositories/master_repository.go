package repositories

import (
	"context"

	"main-gestdoc/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ProfileRepository defines profile (perfil) master data access
type ProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
}

// GroupRepository defines group (grupo) master data access
type GroupRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByID gets a profile by ID
func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List lists all profiles
func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.WithContext(ctx).Order("id ASC").Find(&profiles).Error
	return profiles, err
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// GetByID gets a group by ID
func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List lists all groups
func (r *groupRepository) List(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	err := r.db.WithContext(ctx).Order("id ASC").Find(&groups).Error
	return groups, err
}
