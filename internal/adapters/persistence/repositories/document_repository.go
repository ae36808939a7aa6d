package repositories

import (
	"context"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/core/domain"

	"gorm.io/gorm"
)

// documentStore implements DocumentStore for one document variant.
// T is the concrete model (models.Budget, models.PurchaseOrder, ...).
type documentStore[T any] struct {
	db      *gorm.DB
	docType domain.DocumentType
}

// NewDocumentStore creates a document store for one variant
func NewDocumentStore[T any](db *gorm.DB, docType domain.DocumentType) DocumentStore[T] {
	return &documentStore[T]{db: db, docType: docType}
}

// NewBudgetStore creates the budget store
func NewBudgetStore(db *gorm.DB) DocumentStore[models.Budget] {
	return NewDocumentStore[models.Budget](db, domain.TypeBudget)
}

// NewPurchaseOrderStore creates the purchase order store
func NewPurchaseOrderStore(db *gorm.DB) DocumentStore[models.PurchaseOrder] {
	return NewDocumentStore[models.PurchaseOrder](db, domain.TypePurchaseOrder)
}

// NewWorkOrderStore creates the work order store
func NewWorkOrderStore(db *gorm.DB) DocumentStore[models.WorkOrder] {
	return NewDocumentStore[models.WorkOrder](db, domain.TypeWorkOrder)
}

// NewInvoiceStore creates the invoice store
func NewInvoiceStore(db *gorm.DB) DocumentStore[models.Invoice] {
	return NewDocumentStore[models.Invoice](db, domain.TypeInvoice)
}

func (r *documentStore[T]) base(doc *T) *models.DocumentBase {
	if d, ok := any(doc).(models.AppDocument); ok {
		return d.Base()
	}
	return nil
}

// Create creates a document and its line items
func (r *documentStore[T]) Create(ctx context.Context, doc *T) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return err
	}
	if base := r.base(doc); base != nil && len(base.Items) > 0 {
		return r.saveItems(ctx, base)
	}
	return nil
}

// GetByID gets a document by ID, with its line items
func (r *documentStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var doc T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		return nil, err
	}
	if base := r.base(&doc); base != nil {
		if err := r.loadItems(ctx, base); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

// Save replaces the stored document by identifier. A nil Items slice leaves
// existing line items untouched; a non-nil slice replaces them.
func (r *documentStore[T]) Save(ctx context.Context, doc *T) error {
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return err
	}
	if base := r.base(doc); base != nil && base.Items != nil {
		if err := r.deleteItems(ctx, base.ID); err != nil {
			return err
		}
		if len(base.Items) > 0 {
			return r.saveItems(ctx, base)
		}
	}
	return nil
}

// Delete removes a document and its line items, reporting whether a row
// was removed. Status history is retained.
func (r *documentStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	var doc T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&doc)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, r.deleteItems(ctx, id)
}

// List lists all documents of the variant, most recent first
func (r *documentStore[T]) List(ctx context.Context) ([]*T, error) {
	var docs []*T
	err := r.db.WithContext(ctx).
		Order("creation_date DESC, id DESC").
		Find(&docs).Error
	return docs, err
}

// Count counts all documents of the variant
func (r *documentStore[T]) Count(ctx context.Context) (int64, error) {
	var doc T
	var count int64
	err := r.db.WithContext(ctx).Model(&doc).Count(&count).Error
	return count, err
}

// ListDueBetween returns documents due inside [from, to] whose status is
// not excluded, ascending by due date
func (r *documentStore[T]) ListDueBetween(ctx context.Context, from, to time.Time, excluded []domain.DocumentStatus) ([]*T, error) {
	var docs []*T
	q := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL").
		Where("due_date >= ? AND due_date <= ?", from, to)
	if len(excluded) > 0 {
		q = q.Where("status NOT IN ?", excluded)
	}
	err := q.Order("due_date ASC").Find(&docs).Error
	return docs, err
}

func (r *documentStore[T]) saveItems(ctx context.Context, base *models.DocumentBase) error {
	for i := range base.Items {
		base.Items[i].ID = 0
		base.Items[i].DocumentType = r.docType
		base.Items[i].DocumentID = base.ID
	}
	return r.db.WithContext(ctx).Create(&base.Items).Error
}

func (r *documentStore[T]) loadItems(ctx context.Context, base *models.DocumentBase) error {
	return r.db.WithContext(ctx).
		Where("document_type = ? AND document_id = ?", r.docType, base.ID).
		Order("id ASC").
		Find(&base.Items).Error
}

func (r *documentStore[T]) deleteItems(ctx context.Context, docID string) error {
	return r.db.WithContext(ctx).
		Where("document_type = ? AND document_id = ?", r.docType, docID).
		Delete(&models.DocumentItem{}).Error
}
