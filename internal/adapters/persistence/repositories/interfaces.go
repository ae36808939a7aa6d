package repositories

import (
	"context"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByCorreo(ctx context.Context, correo string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
	ExistsByCorreo(ctx context.Context, correo string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// ClientRepository defines client repository interface
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	// Delete hard-removes the client and reports whether a row existed.
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Client, int64, error)
	ListAll(ctx context.Context) ([]*models.Client, error)
	Count(ctx context.Context) (int64, error)
}

// DocumentStore defines the generic repository contract shared by the four
// document variants. Listing is always most-recent-first.
type DocumentStore[T any] interface {
	Create(ctx context.Context, doc *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	Save(ctx context.Context, doc *T) error
	// Delete removes by id and reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*T, error)
	Count(ctx context.Context) (int64, error)
	// ListDueBetween returns documents with a due date inside [from, to]
	// whose status is not in excluded, ascending by due date.
	ListDueBetween(ctx context.Context, from, to time.Time, excluded []domain.DocumentStatus) ([]*T, error)
}

// ActivityRepository defines the bounded activity log interface
type ActivityRepository interface {
	// Record inserts an entry and evicts everything beyond the ring capacity.
	Record(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, limit int) ([]*models.ActivityLog, error)
}

// StatusConfigRepository defines the per-type status whitelist interface
type StatusConfigRepository interface {
	Get(ctx context.Context, docType domain.DocumentType) (*models.ManagedStatusConfig, error)
	List(ctx context.Context) ([]*models.ManagedStatusConfig, error)
	Upsert(ctx context.Context, config *models.ManagedStatusConfig) error
}

// StatusHistoryRepository defines the status history interface
type StatusHistoryRepository interface {
	Create(ctx context.Context, entry *models.StatusHistory) error
	ListByDocument(ctx context.Context, docType domain.DocumentType, docID string) ([]*models.StatusHistory, error)
}
