package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/adapters/persistence/repositories"
	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/pkg/password"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DefaultUserPassword is assigned to accounts created through the admin
// panel; the user is expected to change it on first login.
const DefaultUserPassword = "contraseña123"

// UserService handles user administration logic
type UserService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	groupRepo   repositories.GroupRepository
	activity    repositories.ActivityRepository
	validate    *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	groupRepo repositories.GroupRepository,
	activity repositories.ActivityRepository,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		groupRepo:   groupRepo,
		activity:    activity,
		validate:    validator.New(),
	}
}

// UserInput carries the editable user fields
type UserInput struct {
	Nombre    string `json:"nombre" validate:"required"`
	Rut       string `json:"rut" validate:"required"`
	Correo    string `json:"correo" validate:"required,email"`
	Telefono  string `json:"telefono"`
	ProfileID uint   `json:"profileId" validate:"required"`
	GroupID   *uint  `json:"groupId"`
	Password  string `json:"password"`
}

// List lists all users, newest first
func (s *UserService) List(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}
	return responses, nil
}

// Get gets a user by ID
func (s *UserService) Get(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// Create creates a user. An omitted password falls back to the default
// one; the referenced profile and group only need to exist as ids, an
// unknown group is simply dropped.
func (s *UserService) Create(ctx context.Context, input UserInput, actorName string) (*models.UserResponse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Message: "Por favor, complete todos los campos obligatorios: Nombre, RUT, Correo, Perfil."}
	}

	exists, err := s.userRepo.ExistsByCorreo(ctx, input.Correo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	plain := input.Password
	if plain == "" {
		plain = DefaultUserPassword
	}
	hashed, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Nombre:    input.Nombre,
		Rut:       input.Rut,
		Correo:    input.Correo,
		Telefono:  input.Telefono,
		ProfileID: input.ProfileID,
		GroupID:   s.resolveGroup(ctx, input.GroupID),
		Password:  hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	created, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User created: %s (%s)", created.Nombre, created.Correo)
	s.record(ctx, domain.ActivityCreated, fmt.Sprintf("Nuevo usuario creado: %s", created.Nombre), actorName)
	return created.ToResponse(), nil
}

// Update replaces a user's editable fields; an empty password keeps the
// current credential
func (s *UserService) Update(ctx context.Context, id uint, input UserInput, actorName string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Message: "Por favor, complete todos los campos obligatorios: Nombre, RUT, Correo, Perfil."}
	}

	if input.Correo != user.Correo {
		exists, err := s.userRepo.ExistsByCorreo(ctx, input.Correo)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrUserAlreadyExists
		}
	}

	user.Nombre = input.Nombre
	user.Rut = input.Rut
	user.Correo = input.Correo
	user.Telefono = input.Telefono
	user.ProfileID = input.ProfileID
	user.GroupID = s.resolveGroup(ctx, input.GroupID)

	if input.Password != "" {
		hashed, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActivityUpdated, fmt.Sprintf("Usuario actualizado: %s", updated.Nombre), actorName)
	return updated.ToResponse(), nil
}

// Delete refuses to remove administrator accounts and is otherwise not
// offered yet
func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if user.Role() == domain.RoleAdmin {
		return domain.ErrCannotDeleteAdmin
	}
	return domain.ErrNotImplemented
}

// resolveGroup drops a group reference whose id does not exist
func (s *UserService) resolveGroup(ctx context.Context, groupID *uint) *uint {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		return nil
	}
	return groupID
}

func (s *UserService) record(ctx context.Context, activityType domain.ActivityType, description, actorName string) {
	if actorName == "" {
		actorName = domain.SystemActor
	}
	_ = s.activity.Record(ctx, &models.ActivityLog{
		Type:        activityType,
		Description: description,
		UserName:    actorName,
	})
}
