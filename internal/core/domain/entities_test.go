package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoleAcceptsLabelsAndKeys(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"Administrador", RoleAdmin, true},
		{"administrador", RoleAdmin, true},
		{"  ADMIN  ", RoleAdmin, true},
		{"Gerente", RoleManager, true},
		{"manager", RoleManager, true},
		{"Operador", RoleOperator, true},
		{"operator", RoleOperator, true},
		{"Supervisor", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestRoleLabels(t *testing.T) {
	assert.Equal(t, "Administrador", RoleAdmin.Label())
	assert.Equal(t, "Gerente", RoleManager.Label())
	assert.Equal(t, "Operador", RoleOperator.Label())

	assert.True(t, RoleManager.IsValid())
	assert.False(t, Role("SUPERVISOR").IsValid())
}

func TestStatusEnumerationIsClosed(t *testing.T) {
	statuses := AllStatuses()
	assert.Len(t, statuses, 7)
	assert.Equal(t, StatusPending, statuses[0])

	for _, status := range statuses {
		assert.True(t, status.IsValid(), "status %q", status)
	}
	assert.False(t, DocumentStatus("Archivado").IsValid())
	// Statuses compare case-sensitively
	assert.False(t, DocumentStatus("pendiente").IsValid())
}

func TestParseDocumentTypeAcceptsKeysAndRouteSegments(t *testing.T) {
	cases := []struct {
		in   string
		want DocumentType
		ok   bool
	}{
		{"Budget", TypeBudget, true},
		{"budgets", TypeBudget, true},
		{"PurchaseOrder", TypePurchaseOrder, true},
		{"purchase-orders", TypePurchaseOrder, true},
		{"WorkOrder", TypeWorkOrder, true},
		{"work-orders", TypeWorkOrder, true},
		{"Invoice", TypeInvoice, true},
		{"invoices", TypeInvoice, true},
		{"budget", "", false},
		{"Receipt", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDocumentType(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestDocumentTypeLabels(t *testing.T) {
	assert.Equal(t, "Presupuesto", TypeBudget.Label())
	assert.Equal(t, "Orden de Compra", TypePurchaseOrder.Label())
	assert.Equal(t, "Orden de Trabajo", TypeWorkOrder.Label())
	assert.Equal(t, "Factura", TypeInvoice.Label())

	for _, docType := range AllDocumentTypes() {
		assert.True(t, docType.IsValid(), "type %q", docType)
	}
	assert.False(t, DocumentType("Receipt").IsValid())
}
