package services

import (
	"context"
	"errors"
	"fmt"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/adapters/persistence/repositories"
	"main-gestdoc/internal/core/domain"

	"gorm.io/gorm"
)

// StatusConfigService manages the per-type status whitelists
type StatusConfigService struct {
	configRepo repositories.StatusConfigRepository
	activity   repositories.ActivityRepository
}

// NewStatusConfigService creates a new status config service
func NewStatusConfigService(configRepo repositories.StatusConfigRepository, activity repositories.ActivityRepository) *StatusConfigService {
	return &StatusConfigService{configRepo: configRepo, activity: activity}
}

// List returns the stored whitelist per document type. Types without a
// stored row report the full enumeration.
func (s *StatusConfigService) List(ctx context.Context) (map[domain.DocumentType][]domain.DocumentStatus, error) {
	configs, err := s.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[domain.DocumentType][]domain.DocumentStatus, len(domain.AllDocumentTypes()))
	for _, docType := range domain.AllDocumentTypes() {
		result[docType] = domain.AllStatuses()
	}
	for _, config := range configs {
		if len(config.Statuses) > 0 {
			result[config.DocumentType] = []domain.DocumentStatus(config.Statuses)
		}
	}
	return result, nil
}

// Get returns one type's whitelist, falling back to the full enumeration
func (s *StatusConfigService) Get(ctx context.Context, docType domain.DocumentType) ([]domain.DocumentStatus, error) {
	config, err := s.configRepo.Get(ctx, docType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AllStatuses(), nil
		}
		return nil, err
	}
	if len(config.Statuses) == 0 {
		return domain.AllStatuses(), nil
	}
	return []domain.DocumentStatus(config.Statuses), nil
}

// Update replaces a type's whitelist. An empty set is rejected so the
// fail-open fallback never hides an accidental wipe; unknown statuses are
// rejected outright.
func (s *StatusConfigService) Update(ctx context.Context, docType domain.DocumentType, statuses []domain.DocumentStatus, actorName string) ([]domain.DocumentStatus, error) {
	if !docType.IsValid() {
		return nil, domain.ErrInvalidDocType
	}
	if len(statuses) == 0 {
		return nil, &ValidationError{Message: "Debe seleccionar al menos un estado."}
	}

	deduped := make([]domain.DocumentStatus, 0, len(statuses))
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		if !statusIn(deduped, status) {
			deduped = append(deduped, status)
		}
	}

	config := &models.ManagedStatusConfig{
		DocumentType: docType,
		Statuses:     models.StatusList(deduped),
	}
	if err := s.configRepo.Upsert(ctx, config); err != nil {
		return nil, err
	}

	if actorName == "" {
		actorName = domain.SystemActor
	}
	_ = s.activity.Record(ctx, &models.ActivityLog{
		Type:        domain.ActivityUpdated,
		Description: fmt.Sprintf("Estados disponibles actualizados para %s", docType.Label()),
		UserName:    actorName,
	})

	return deduped, nil
}
