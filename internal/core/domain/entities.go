package domain

import "strings"

// Role represents user role in the system
// Roles are a closed enumeration; the Spanish profile names are display labels only.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleOperator Role = "OPERATOR"
)

// Role display labels (profile names)
const (
	RoleLabelAdmin    = "Administrador"
	RoleLabelManager  = "Gerente"
	RoleLabelOperator = "Operador"
)

// Label returns the profile display name for a role
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return RoleLabelAdmin
	case RoleManager:
		return RoleLabelManager
	case RoleOperator:
		return RoleLabelOperator
	}
	return string(r)
}

// IsValid checks if the role belongs to the closed enumeration
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator:
		return true
	}
	return false
}

// ParseRole resolves a profile display name to a role.
// Case-insensitive matching happens only here, at the edge.
func ParseRole(profileName string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(profileName)) {
	case strings.ToLower(RoleLabelAdmin), strings.ToLower(string(RoleAdmin)):
		return RoleAdmin, true
	case strings.ToLower(RoleLabelManager), strings.ToLower(string(RoleManager)):
		return RoleManager, true
	case strings.ToLower(RoleLabelOperator), strings.ToLower(string(RoleOperator)):
		return RoleOperator, true
	}
	return "", false
}

// DocumentStatus represents a document lifecycle status
type DocumentStatus string

const (
	StatusPending    DocumentStatus = "Pendiente"
	StatusApproved   DocumentStatus = "Aprobado"
	StatusRejected   DocumentStatus = "Rechazado"
	StatusInProgress DocumentStatus = "En Proceso"
	StatusCompleted  DocumentStatus = "Completado"
	StatusPaid       DocumentStatus = "Pagado"
	StatusCancelled  DocumentStatus = "Anulado"
)

// AllStatuses returns the full status enumeration in display order
func AllStatuses() []DocumentStatus {
	return []DocumentStatus{
		StatusPending,
		StatusApproved,
		StatusRejected,
		StatusInProgress,
		StatusCompleted,
		StatusPaid,
		StatusCancelled,
	}
}

// IsValid checks if the status belongs to the fixed enumeration
func (s DocumentStatus) IsValid() bool {
	for _, st := range AllStatuses() {
		if s == st {
			return true
		}
	}
	return false
}

// DocumentType identifies one of the four document variants
type DocumentType string

const (
	TypeBudget        DocumentType = "Budget"
	TypePurchaseOrder DocumentType = "PurchaseOrder"
	TypeWorkOrder     DocumentType = "WorkOrder"
	TypeInvoice       DocumentType = "Invoice"
)

// AllDocumentTypes returns the document type keys in display order
func AllDocumentTypes() []DocumentType {
	return []DocumentType{TypeBudget, TypePurchaseOrder, TypeWorkOrder, TypeInvoice}
}

// Label returns the Spanish display label for a document type
func (t DocumentType) Label() string {
	switch t {
	case TypeBudget:
		return "Presupuesto"
	case TypePurchaseOrder:
		return "Orden de Compra"
	case TypeWorkOrder:
		return "Orden de Trabajo"
	case TypeInvoice:
		return "Factura"
	}
	return string(t)
}

// IsValid checks if the type belongs to the closed set of variants
func (t DocumentType) IsValid() bool {
	switch t {
	case TypeBudget, TypePurchaseOrder, TypeWorkOrder, TypeInvoice:
		return true
	}
	return false
}

// ParseDocumentType resolves a route segment or type key to a document type
func ParseDocumentType(key string) (DocumentType, bool) {
	switch key {
	case string(TypeBudget), "budgets":
		return TypeBudget, true
	case string(TypePurchaseOrder), "purchase-orders":
		return TypePurchaseOrder, true
	case string(TypeWorkOrder), "work-orders":
		return TypeWorkOrder, true
	case string(TypeInvoice), "invoices":
		return TypeInvoice, true
	}
	return "", false
}

// ActivityType classifies an activity log entry
type ActivityType string

const (
	ActivityCreated       ActivityType = "CREATED"
	ActivityUpdated       ActivityType = "UPDATED"
	ActivityDeleted       ActivityType = "DELETED"
	ActivityStatusChanged ActivityType = "STATUS_CHANGED"
)

// SystemActor is recorded when no user is in session
const SystemActor = "Sistema"

// NotAvailable is the sentinel for denormalized names whose reference is missing
const NotAvailable = "N/A"
