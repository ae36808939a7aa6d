package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardTestEnv struct {
	clients        *fakeClientRepo
	budgets        *fakeDocStore[models.Budget]
	purchaseOrders *fakeDocStore[models.PurchaseOrder]
	workOrders     *fakeDocStore[models.WorkOrder]
	invoices       *fakeDocStore[models.Invoice]
	activity       *fakeActivityRepo
	svc            *DashboardService
}

func newDashboardTestEnv() *dashboardTestEnv {
	env := &dashboardTestEnv{
		clients:        newFakeClientRepo(),
		budgets:        newFakeDocStore[models.Budget](),
		purchaseOrders: newFakeDocStore[models.PurchaseOrder](),
		workOrders:     newFakeDocStore[models.WorkOrder](),
		invoices:       newFakeDocStore[models.Invoice](),
		activity:       newFakeActivityRepo(),
	}
	env.svc = NewDashboardService(env.clients, env.budgets, env.purchaseOrders, env.workOrders, env.invoices, env.activity)
	return env
}

func dueIn(days int) *time.Time {
	due := time.Now().AddDate(0, 0, days)
	return &due
}

func testBase(id, number string, status domain.DocumentStatus, due *time.Time) models.DocumentBase {
	return models.DocumentBase{
		ID:                  id,
		DocumentNumber:      number,
		Status:              status,
		ResponsibleUserID:   1,
		ClientID:            "client-1",
		ClientName:          "Tech Solutions Inc.",
		ResponsibleUserName: "Jaime Valtierra",
		TotalAmount:         decimal.NewFromInt(1500000),
		DueDate:             due,
	}
}

func TestDashboardCountsAndPending(t *testing.T) {
	env := newDashboardTestEnv()
	ctx := context.Background()

	require.NoError(t, env.clients.Create(ctx, &models.Client{ID: "client-1", Nombre: "Tech Solutions Inc."}))
	require.NoError(t, env.clients.Create(ctx, &models.Client{ID: "client-2", Nombre: "Global Corp."}))

	require.NoError(t, env.budgets.Create(ctx, &models.Budget{DocumentBase: testBase("b-1", "PN-1001", domain.StatusPending, nil)}))
	require.NoError(t, env.budgets.Create(ctx, &models.Budget{DocumentBase: testBase("b-2", "PN-1002", domain.StatusInProgress, nil)}))
	require.NoError(t, env.budgets.Create(ctx, &models.Budget{DocumentBase: testBase("b-3", "PN-1003", domain.StatusApproved, nil)}))

	require.NoError(t, env.purchaseOrders.Create(ctx, &models.PurchaseOrder{DocumentBase: testBase("po-1", "ON-2001", domain.StatusRejected, nil)}))

	require.NoError(t, env.invoices.Create(ctx, &models.Invoice{DocumentBase: testBase("f-1", "FN-3001", domain.StatusApproved, nil)}))
	require.NoError(t, env.invoices.Create(ctx, &models.Invoice{DocumentBase: testBase("f-2", "FN-3002", domain.StatusPaid, nil)}))
	require.NoError(t, env.invoices.Create(ctx, &models.Invoice{DocumentBase: testBase("f-3", "FN-3003", domain.StatusCancelled, nil)}))

	stats, err := env.svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Clients)
	assert.Equal(t, CollectionStat{Total: 3, Pending: 2}, stats.Budgets)
	assert.Equal(t, CollectionStat{Total: 1, Pending: 0}, stats.PurchaseOrders)
	assert.Equal(t, CollectionStat{Total: 0, Pending: 0}, stats.WorkOrders)
	// Invoices stay pending until paid or voided
	assert.Equal(t, CollectionStat{Total: 3, Pending: 1}, stats.Invoices)
}

func TestUpcomingDueDatesSortedAscendingAndCapped(t *testing.T) {
	env := newDashboardTestEnv()
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		base := testBase(fmt.Sprintf("b-%d", i), fmt.Sprintf("PN-%d", i), domain.StatusPending, dueIn(20-i*2))
		require.NoError(t, env.budgets.Create(ctx, &models.Budget{DocumentBase: base}))
	}
	require.NoError(t, env.workOrders.Create(ctx, &models.WorkOrder{
		DocumentBase: testBase("ot-1", "OTN-1", domain.StatusInProgress, dueIn(3)),
	}))
	require.NoError(t, env.invoices.Create(ctx, &models.Invoice{
		DocumentBase: testBase("f-1", "FN-1", domain.StatusApproved, dueIn(1)),
	}))

	items, err := env.svc.UpcomingDueDates(ctx)
	require.NoError(t, err)

	require.Len(t, items, UpcomingLimit)
	assert.Equal(t, "FN-1", items[0].DocumentNumber)
	assert.Equal(t, domain.TypeInvoice, items[0].DocumentType)
	assert.Equal(t, "OTN-1", items[1].DocumentNumber)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].DueDate.Before(items[i-1].DueDate))
	}
}

func TestUpcomingDueDatesExcludesSettledAndOutOfWindow(t *testing.T) {
	env := newDashboardTestEnv()
	ctx := context.Background()

	require.NoError(t, env.budgets.Create(ctx, &models.Budget{
		DocumentBase: testBase("b-done", "PN-1", domain.StatusCompleted, dueIn(5)),
	}))
	require.NoError(t, env.invoices.Create(ctx, &models.Invoice{
		DocumentBase: testBase("f-paid", "FN-1", domain.StatusPaid, dueIn(5)),
	}))
	require.NoError(t, env.workOrders.Create(ctx, &models.WorkOrder{
		DocumentBase: testBase("ot-void", "OTN-1", domain.StatusCancelled, dueIn(5)),
	}))
	require.NoError(t, env.budgets.Create(ctx, &models.Budget{
		DocumentBase: testBase("b-far", "PN-2", domain.StatusPending, dueIn(45)),
	}))
	require.NoError(t, env.budgets.Create(ctx, &models.Budget{
		DocumentBase: testBase("b-past", "PN-3", domain.StatusPending, dueIn(-2)),
	}))
	require.NoError(t, env.budgets.Create(ctx, &models.Budget{
		DocumentBase: testBase("b-none", "PN-4", domain.StatusPending, nil),
	}))
	require.NoError(t, env.budgets.Create(ctx, &models.Budget{
		DocumentBase: testBase("b-ok", "PN-5", domain.StatusApproved, dueIn(10)),
	}))

	items, err := env.svc.UpcomingDueDates(ctx)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "PN-5", items[0].DocumentNumber)
}

func TestUpcomingDueDatesIgnorePurchaseOrders(t *testing.T) {
	env := newDashboardTestEnv()
	ctx := context.Background()

	require.NoError(t, env.purchaseOrders.Create(ctx, &models.PurchaseOrder{
		DocumentBase:              testBase("po-1", "ON-1", domain.StatusPending, dueIn(2)),
		ClientPurchaseOrderNumber: "CPO-4001",
	}))

	items, err := env.svc.UpcomingDueDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDashboardIncludesRecentActivity(t *testing.T) {
	env := newDashboardTestEnv()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, env.activity.Record(ctx, &models.ActivityLog{
			Type:        domain.ActivityCreated,
			Description: fmt.Sprintf("Nuevo cliente creado: Cliente %d", i),
			UserName:    "Jaime Valtierra",
		}))
	}

	stats, err := env.svc.GetStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.RecentActivity, 3)
	// Newest entry first
	assert.Equal(t, "Nuevo cliente creado: Cliente 2", stats.RecentActivity[0].Description)
}
