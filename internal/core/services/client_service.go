package services

import (
	"context"
	"errors"
	"fmt"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/adapters/persistence/repositories"
	"main-gestdoc/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientService handles client business logic
type ClientService struct {
	clientRepo repositories.ClientRepository
	activity   repositories.ActivityRepository
	validate   *validator.Validate
}

// NewClientService creates a new client service
func NewClientService(clientRepo repositories.ClientRepository, activity repositories.ActivityRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		activity:   activity,
		validate:   validator.New(),
	}
}

// ClientInput carries the editable client fields
type ClientInput struct {
	Nombre    string `json:"nombre" validate:"required"`
	Planta    string `json:"planta"`
	Rut       string `json:"rut"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo" validate:"omitempty,email"`
	Contacto  string `json:"contacto"`
}

// List returns all clients, most recently created first
func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.clientRepo.ListAll(ctx)
}

// ListPage returns one page of clients plus the total count
func (s *ClientService) ListPage(ctx context.Context, offset, limit int) ([]*models.Client, int64, error) {
	return s.clientRepo.List(ctx, offset, limit)
}

// Get gets a client by ID
func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// Create creates a client with a fresh identifier
func (s *ClientService) Create(ctx context.Context, input ClientInput, actorName string) (*models.Client, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Message: "El nombre del cliente es obligatorio."}
	}

	client := &models.Client{
		ID:        uuid.New().String(),
		Nombre:    input.Nombre,
		Planta:    input.Planta,
		Rut:       input.Rut,
		Direccion: input.Direccion,
		Telefono:  input.Telefono,
		Correo:    input.Correo,
		Contacto:  input.Contacto,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActivityCreated, fmt.Sprintf("Nuevo cliente creado: %s", client.Nombre), actorName)
	return client, nil
}

// Update replaces a client's editable fields
func (s *ClientService) Update(ctx context.Context, id string, input ClientInput, actorName string) (*models.Client, error) {
	client, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Message: "El nombre del cliente es obligatorio."}
	}

	client.Nombre = input.Nombre
	client.Planta = input.Planta
	client.Rut = input.Rut
	client.Direccion = input.Direccion
	client.Telefono = input.Telefono
	client.Correo = input.Correo
	client.Contacto = input.Contacto

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActivityUpdated, fmt.Sprintf("Cliente actualizado: %s", client.Nombre), actorName)
	return client, nil
}

// Delete removes a client. Documents referencing it keep their name
// snapshots; only future lookups degrade to N/A. Deleting an absent
// identifier is a silent no-op.
func (s *ClientService) Delete(ctx context.Context, id string, actorName string) (bool, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	name := id
	if err == nil {
		name = client.Nombre
	}

	removed, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.record(ctx, domain.ActivityDeleted, fmt.Sprintf("Cliente eliminado: %s", name), actorName)
	}
	return removed, nil
}

func (s *ClientService) record(ctx context.Context, activityType domain.ActivityType, description, actorName string) {
	if actorName == "" {
		actorName = domain.SystemActor
	}
	_ = s.activity.Record(ctx, &models.ActivityLog{
		Type:        activityType,
		Description: description,
		UserName:    actorName,
	})
}
