package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/adapters/persistence/repositories"
	"main-gestdoc/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// requiredFieldsMessage is the aggregate validation message for the base
// document fields; variant-specific violations get appended to it.
const requiredFieldsMessage = "Por favor, complete todos los campos obligatorios: Número Documento (Interno), Cliente, Responsable, Monto Total."

// DocPtr constrains PT to a pointer to a document variant model
type DocPtr[T any] interface {
	*T
	models.AppDocument
}

// DocumentService handles one document variant's business logic.
// The same service type drives all four variants; the variant trait
// (models.AppDocument) supplies the type tag, the extra required-field
// checks and the extra search fields.
type DocumentService[T any, PT DocPtr[T]] struct {
	docs      repositories.DocumentStore[T]
	clients   repositories.ClientRepository
	users     repositories.UserRepository
	statusCfg repositories.StatusConfigRepository
	history   repositories.StatusHistoryRepository
	activity  repositories.ActivityRepository
	validate  *validator.Validate
	docType   domain.DocumentType
}

// NewDocumentService creates a document service for one variant
func NewDocumentService[T any, PT DocPtr[T]](
	docs repositories.DocumentStore[T],
	clients repositories.ClientRepository,
	users repositories.UserRepository,
	statusCfg repositories.StatusConfigRepository,
	history repositories.StatusHistoryRepository,
	activity repositories.ActivityRepository,
) *DocumentService[T, PT] {
	var zero T
	return &DocumentService[T, PT]{
		docs:      docs,
		clients:   clients,
		users:     users,
		statusCfg: statusCfg,
		history:   history,
		activity:  activity,
		validate:  validator.New(),
		docType:   PT(&zero).DocType(),
	}
}

// DocType returns the variant this service manages
func (s *DocumentService[T, PT]) DocType() domain.DocumentType {
	return s.docType
}

// AvailableStatuses returns the variant's status whitelist; an absent or
// empty config falls back to the full enumeration (fail-open).
func (s *DocumentService[T, PT]) AvailableStatuses(ctx context.Context) ([]domain.DocumentStatus, error) {
	config, err := s.statusCfg.Get(ctx, s.docType)
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

// List returns the variant's documents, most recent first, filtered by the
// free-text search term and an exact status match. Search is case-
// insensitive over the internal number, the denormalized client and
// responsible names, and the variant's extra search fields.
func (s *DocumentService[T, PT]) List(ctx context.Context, search string, status domain.DocumentStatus) ([]*T, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" && status == "" {
		return docs, nil
	}

	term := strings.ToLower(search)
	filtered := make([]*T, 0, len(docs))
	for _, doc := range docs {
		pd := PT(doc)
		base := pd.Base()

		if status != "" && base.Status != status {
			continue
		}
		if term != "" && !matchesSearch(pd, term) {
			continue
		}
		filtered = append(filtered, doc)
	}
	return filtered, nil
}

func matchesSearch(doc models.AppDocument, term string) bool {
	base := doc.Base()
	fields := []string{base.DocumentNumber, base.ClientName, base.ResponsibleUserName}
	fields = append(fields, doc.ExtraSearchText()...)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Get gets one document by ID
func (s *DocumentService[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Create validates and persists a new document. Identifier, creation date
// and the denormalized name snapshots are always system-assigned here,
// whatever the payload carried.
func (s *DocumentService[T, PT]) Create(ctx context.Context, doc *T, actorName string) (*T, error) {
	base := PT(doc).Base()

	base.ID = ""
	base.CreationDate = time.Time{}
	base.ClientName = ""
	base.ResponsibleUserName = ""

	if err := s.applyStatus(ctx, base); err != nil {
		return nil, err
	}
	if err := s.validateDoc(PT(doc)); err != nil {
		return nil, err
	}

	s.resolveSnapshots(ctx, base)
	base.ID = uuid.New().String()

	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActivityCreated,
		fmt.Sprintf("Nuevo documento creado: %s %s", s.docType, base.DocumentNumber), actorName)

	return doc, nil
}

// Update validates and replaces an existing document, preserving its
// identifier and creation date and re-resolving the name snapshots for
// this one document. A missing identifier mutates nothing and records
// nothing.
func (s *DocumentService[T, PT]) Update(ctx context.Context, id string, doc *T, actorName string) (*T, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	base := PT(doc).Base()
	base.ID = id
	base.CreationDate = PT(existing).Base().CreationDate

	if err := s.applyStatus(ctx, base); err != nil {
		return nil, err
	}
	if err := s.validateDoc(PT(doc)); err != nil {
		return nil, err
	}

	s.resolveSnapshots(ctx, base)

	if err := s.docs.Save(ctx, doc); err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActivityUpdated,
		fmt.Sprintf("Documento actualizado: %s %s", s.docType, base.DocumentNumber), actorName)

	return doc, nil
}

// ChangeStatus moves a document to a new whitelisted status, recording the
// transition in the status history. Setting the current status again is a
// no-op.
func (s *DocumentService[T, PT]) ChangeStatus(ctx context.Context, id string, newStatus domain.DocumentStatus, actorID uint, actorName string) (*T, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	available, err := s.AvailableStatuses(ctx)
	if err != nil {
		return nil, err
	}
	if !statusIn(available, newStatus) {
		return nil, domain.ErrStatusNotAvailable
	}

	base := PT(doc).Base()
	if base.Status == newStatus {
		return doc, nil
	}

	oldStatus := base.Status
	base.Status = newStatus

	if err := s.docs.Save(ctx, doc); err != nil {
		return nil, err
	}

	entry := &models.StatusHistory{
		DocumentType:    s.docType,
		DocumentID:      base.ID,
		OldStatus:       &oldStatus,
		NewStatus:       newStatus,
		ChangedByUserID: actorID,
		ChangedByName:   actorName,
	}
	if err := s.history.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActivityStatusChanged,
		fmt.Sprintf("Estado de %s %s cambiado a %s", s.docType.Label(), base.DocumentNumber, newStatus), actorName)

	return doc, nil
}

// History lists a document's status transitions, newest first
func (s *DocumentService[T, PT]) History(ctx context.Context, id string) ([]*models.StatusHistory, error) {
	return s.history.ListByDocument(ctx, s.docType, id)
}

// Delete removes a document. Deleting an absent identifier is a silent
// no-op: nothing is mutated and no activity entry is recorded.
func (s *DocumentService[T, PT]) Delete(ctx context.Context, id string, actorName string) (bool, error) {
	removed, err := s.docs.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.record(ctx, domain.ActivityDeleted,
			fmt.Sprintf("Documento eliminado: %s %s", s.docType, id), actorName)
	}
	return removed, nil
}

// applyStatus defaults an empty status to the whitelist's first entry and
// rejects a status outside the whitelist
func (s *DocumentService[T, PT]) applyStatus(ctx context.Context, base *models.DocumentBase) error {
	available, err := s.AvailableStatuses(ctx)
	if err != nil {
		return err
	}
	if base.Status == "" {
		base.Status = available[0]
		return nil
	}
	if !statusIn(available, base.Status) {
		return domain.ErrStatusNotAvailable
	}
	return nil
}

// validateDoc checks the base required fields and the variant extras,
// collapsing every violation into one aggregate message
func (s *DocumentService[T, PT]) validateDoc(doc models.AppDocument) error {
	base := doc.Base()

	violated := s.validate.Struct(base) != nil || base.TotalAmount.IsNegative()
	extras := doc.ExtraViolations()

	if !violated && len(extras) == 0 {
		return nil
	}

	msg := requiredFieldsMessage
	for _, extra := range extras {
		msg += " " + extra
	}
	return &ValidationError{Message: msg}
}

// resolveSnapshots copies the referenced client and user names onto the
// document. A dangling reference is not an error: the snapshot degrades
// to the N/A sentinel.
func (s *DocumentService[T, PT]) resolveSnapshots(ctx context.Context, base *models.DocumentBase) {
	base.ClientName = domain.NotAvailable
	if client, err := s.clients.GetByID(ctx, base.ClientID); err == nil {
		base.ClientName = client.Nombre
	}

	base.ResponsibleUserName = domain.NotAvailable
	if user, err := s.users.GetByID(ctx, base.ResponsibleUserID); err == nil {
		base.ResponsibleUserName = user.Nombre
	}
}

func (s *DocumentService[T, PT]) record(ctx context.Context, activityType domain.ActivityType, description, actorName string) {
	if actorName == "" {
		actorName = domain.SystemActor
	}
	_ = s.activity.Record(ctx, &models.ActivityLog{
		Type:        activityType,
		Description: description,
		UserName:    actorName,
	})
}

func statusIn(statuses []domain.DocumentStatus, status domain.DocumentStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
