package services

import (
	"context"
	"testing"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusConfigUpdateRejectsEmptySet(t *testing.T) {
	svc := NewStatusConfigService(newFakeStatusConfigRepo(), newFakeActivityRepo())

	_, err := svc.Update(context.Background(), domain.TypeBudget, nil, "Jaime Valtierra")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Debe seleccionar al menos un estado.", validationErr.Message)
}

func TestStatusConfigUpdateRejectsUnknownStatus(t *testing.T) {
	svc := NewStatusConfigService(newFakeStatusConfigRepo(), newFakeActivityRepo())

	_, err := svc.Update(context.Background(), domain.TypeBudget,
		[]domain.DocumentStatus{"Desconocido"}, "Jaime Valtierra")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestStatusConfigUpdateDeduplicatesAndRecords(t *testing.T) {
	configRepo := newFakeStatusConfigRepo()
	activity := newFakeActivityRepo()
	svc := NewStatusConfigService(configRepo, activity)
	ctx := context.Background()

	statuses, err := svc.Update(ctx, domain.TypeBudget, []domain.DocumentStatus{
		domain.StatusPending, domain.StatusApproved, domain.StatusPending,
	}, "Jaime Valtierra")
	require.NoError(t, err)
	assert.Equal(t, []domain.DocumentStatus{domain.StatusPending, domain.StatusApproved}, statuses)

	got, err := svc.Get(ctx, domain.TypeBudget)
	require.NoError(t, err)
	assert.Equal(t, statuses, got)

	entries := activity.byType(domain.ActivityUpdated)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Description, "Presupuesto")
}

func TestStatusConfigGetFallsBackToAllStatuses(t *testing.T) {
	configRepo := newFakeStatusConfigRepo()
	svc := NewStatusConfigService(configRepo, newFakeActivityRepo())
	ctx := context.Background()

	got, err := svc.Get(ctx, domain.TypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, domain.AllStatuses(), got)

	// An empty stored row behaves like a missing one
	configRepo.configs[domain.TypeInvoice] = &models.ManagedStatusConfig{
		DocumentType: domain.TypeInvoice,
		Statuses:     models.StatusList{},
	}
	got, err = svc.Get(ctx, domain.TypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, domain.AllStatuses(), got)
}

func TestStatusConfigListCoversEveryType(t *testing.T) {
	configRepo := newFakeStatusConfigRepo()
	svc := NewStatusConfigService(configRepo, newFakeActivityRepo())
	ctx := context.Background()

	_, err := svc.Update(ctx, domain.TypeBudget,
		[]domain.DocumentStatus{domain.StatusPending}, "Jaime Valtierra")
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(domain.AllDocumentTypes()))
	assert.Equal(t, []domain.DocumentStatus{domain.StatusPending}, all[domain.TypeBudget])
	assert.Equal(t, domain.AllStatuses(), all[domain.TypeWorkOrder])
}
