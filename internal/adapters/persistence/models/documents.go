package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"main-gestdoc/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ============================================================
// Documents (Budget / PurchaseOrder / WorkOrder / Invoice)
// ============================================================

// DocumentBase holds the fields shared by the four document variants.
// ClientName and ResponsibleUserName are point-in-time snapshots resolved
// at create/update time; they are NOT kept in sync with later edits to the
// referenced client or user.
type DocumentBase struct {
	ID                  string                `gorm:"primaryKey;size:36" json:"id"`
	DocumentNumber      string                `gorm:"size:50;not null;index" json:"documentNumber" validate:"required"`
	CreationDate        time.Time             `gorm:"autoCreateTime" json:"creationDate"`
	DueDate             *time.Time            `json:"dueDate,omitempty"`
	Status              domain.DocumentStatus `gorm:"size:20;not null;index" json:"status"`
	ResponsibleUserID   uint                  `gorm:"not null" json:"responsibleUserId" validate:"required"`
	ClientID            string                `gorm:"size:36;not null;index" json:"clientId" validate:"required"`
	ClientName          string                `gorm:"size:100" json:"clientName,omitempty"`
	ResponsibleUserName string                `gorm:"size:100" json:"responsibleUserName,omitempty"`
	TotalAmount         decimal.Decimal       `gorm:"type:decimal(15,2);not null" json:"totalAmount"`
	Notes               string                `gorm:"type:text" json:"notes,omitempty"`

	// Line items are persisted separately keyed by document type+id.
	Items []DocumentItem `gorm:"-" json:"items,omitempty"`
}

// Base returns the shared document fields
func (b *DocumentBase) Base() *DocumentBase {
	return b
}

// AppDocument is the closed variant trait: each of the four document models
// implements it, exposing its type tag, its extra required-field checks and
// its extra free-text search fields.
type AppDocument interface {
	Base() *DocumentBase
	DocType() domain.DocumentType
	ExtraViolations() []string
	ExtraSearchText() []string
}

// Budget adds a validity period in days
type Budget struct {
	DocumentBase
	ValidityDays int `gorm:"default:30" json:"validityDays"`
}

func (Budget) TableName() string {
	return "presupuestos"
}

func (Budget) DocType() domain.DocumentType {
	return domain.TypeBudget
}

func (Budget) ExtraViolations() []string {
	return nil
}

func (Budget) ExtraSearchText() []string {
	return nil
}

// PurchaseOrder adds the client-supplied PO number, distinct from the
// internal document number
type PurchaseOrder struct {
	DocumentBase
	ClientPurchaseOrderNumber string `gorm:"size:50" json:"clientPurchaseOrderNumber"`
}

func (PurchaseOrder) TableName() string {
	return "ordenes_compra"
}

func (PurchaseOrder) DocType() domain.DocumentType {
	return domain.TypePurchaseOrder
}

func (po PurchaseOrder) ExtraViolations() []string {
	if po.ClientPurchaseOrderNumber == "" {
		return []string{"Adicionalmente, para Órdenes de Compra, el 'Nº OC Cliente' es obligatorio."}
	}
	return nil
}

func (po PurchaseOrder) ExtraSearchText() []string {
	return []string{po.ClientPurchaseOrderNumber}
}

// WorkOrder adds a required work description
type WorkOrder struct {
	DocumentBase
	Description string `gorm:"type:text" json:"description"`
}

func (WorkOrder) TableName() string {
	return "ordenes_trabajo"
}

func (WorkOrder) DocType() domain.DocumentType {
	return domain.TypeWorkOrder
}

func (wo WorkOrder) ExtraViolations() []string {
	if wo.Description == "" {
		return []string{"Adicionalmente, para Órdenes de Trabajo, la 'Descripción Trabajo' es obligatoria."}
	}
	return nil
}

func (WorkOrder) ExtraSearchText() []string {
	return nil
}

// Invoice adds an optional payment date (unpaid → paid sub-lifecycle,
// independent of the general status)
type Invoice struct {
	DocumentBase
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

func (Invoice) TableName() string {
	return "facturas"
}

func (Invoice) DocType() domain.DocumentType {
	return domain.TypeInvoice
}

func (Invoice) ExtraViolations() []string {
	return nil
}

func (Invoice) ExtraSearchText() []string {
	return nil
}

// DocumentItem represents items_documento table (line items)
type DocumentItem struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	DocumentType domain.DocumentType `gorm:"size:20;not null;index:idx_item_doc" json:"-"`
	DocumentID   string              `gorm:"size:36;not null;index:idx_item_doc" json:"-"`
	Description  string              `gorm:"size:200;not null" json:"description"`
	Quantity     int                 `gorm:"not null" json:"quantity"`
	UnitPrice    decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"unitPrice"`
	Total        decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"total"`
}

func (DocumentItem) TableName() string {
	return "items_documento"
}

// StatusHistory represents historial_estados table
type StatusHistory struct {
	ID              uint                   `gorm:"primaryKey" json:"id"`
	DocumentType    domain.DocumentType    `gorm:"size:20;not null;index:idx_hist_doc" json:"documentType"`
	DocumentID      string                 `gorm:"size:36;not null;index:idx_hist_doc" json:"documentId"`
	OldStatus       *domain.DocumentStatus `gorm:"size:20" json:"oldStatus,omitempty"`
	NewStatus       domain.DocumentStatus  `gorm:"size:20;not null" json:"newStatus"`
	ChangedByUserID uint                   `json:"changedByUserId"`
	ChangedByName   string                 `gorm:"size:100" json:"changedByName,omitempty"`
	CreatedAt       time.Time              `gorm:"autoCreateTime" json:"changedAt"`
}

func (StatusHistory) TableName() string {
	return "historial_estados"
}

// ============================================================
// Status whitelist config
// ============================================================

// StatusList stores an ordered status subset as JSON
type StatusList []domain.DocumentStatus

// Value implements driver.Valuer
func (sl StatusList) Value() (driver.Value, error) {
	return json.Marshal(sl)
}

// Scan implements sql.Scanner
func (sl *StatusList) Scan(value interface{}) error {
	if value == nil {
		*sl = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, sl)
	case string:
		return json.Unmarshal([]byte(v), sl)
	}
	return fmt.Errorf("cannot scan %T into StatusList", value)
}

// Contains reports whether the list includes the given status
func (sl StatusList) Contains(status domain.DocumentStatus) bool {
	for _, s := range sl {
		if s == status {
			return true
		}
	}
	return false
}

// ManagedStatusConfig represents config_estados table: the per-type subset
// of statuses selectable in forms and filters. A missing row for a type
// means all statuses are available (fail-open).
type ManagedStatusConfig struct {
	DocumentType domain.DocumentType `gorm:"primaryKey;size:20" json:"documentTypeKey"`
	Statuses     StatusList          `gorm:"type:text;not null" json:"availableStatusNames"`
	UpdatedAt    time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ManagedStatusConfig) TableName() string {
	return "config_estados"
}

// Label returns the Spanish label of the configured document type
func (c *ManagedStatusConfig) Label() string {
	return c.DocumentType.Label()
}
