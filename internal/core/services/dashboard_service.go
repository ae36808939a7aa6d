package services

import (
	"context"
	"sort"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/adapters/persistence/repositories"
	"main-gestdoc/internal/core/domain"

	"github.com/shopspring/decimal"
)

const (
	// UpcomingWindowDays bounds the due-date projection window
	UpcomingWindowDays = 30
	// UpcomingLimit caps how many upcoming items the dashboard shows
	UpcomingLimit = 5
)

// excludedDueStatuses are terminal states that drop a document out of the
// due-date projection
var excludedDueStatuses = []domain.DocumentStatus{
	domain.StatusCompleted,
	domain.StatusPaid,
	domain.StatusCancelled,
}

// DashboardStats aggregates the dashboard KPI payload
type DashboardStats struct {
	Clients        int64                 `json:"clients"`
	Budgets        CollectionStat        `json:"budgets"`
	PurchaseOrders CollectionStat        `json:"purchaseOrders"`
	WorkOrders     CollectionStat        `json:"workOrders"`
	Invoices       CollectionStat        `json:"invoices"`
	RecentActivity []*models.ActivityLog `json:"recentActivity"`
	UpcomingDue    []DueDateItem         `json:"upcomingDueDates"`
}

// CollectionStat is one document collection's KPI pair
type CollectionStat struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}

// DueDateItem is one entry of the upcoming-due-date projection
type DueDateItem struct {
	ID             string                `json:"id"`
	DocumentType   domain.DocumentType   `json:"documentType"`
	DocumentNumber string                `json:"documentNumber"`
	ClientName     string                `json:"clientName"`
	DueDate        time.Time             `json:"dueDate"`
	Status         domain.DocumentStatus `json:"status"`
	TotalAmount    decimal.Decimal       `json:"totalAmount"`
}

// DashboardService builds the dashboard aggregates. Every read recomputes
// the due-date projection from current data instead of caching it.
type DashboardService struct {
	clients        repositories.ClientRepository
	budgets        repositories.DocumentStore[models.Budget]
	purchaseOrders repositories.DocumentStore[models.PurchaseOrder]
	workOrders     repositories.DocumentStore[models.WorkOrder]
	invoices       repositories.DocumentStore[models.Invoice]
	activity       repositories.ActivityRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	clients repositories.ClientRepository,
	budgets repositories.DocumentStore[models.Budget],
	purchaseOrders repositories.DocumentStore[models.PurchaseOrder],
	workOrders repositories.DocumentStore[models.WorkOrder],
	invoices repositories.DocumentStore[models.Invoice],
	activity repositories.ActivityRepository,
) *DashboardService {
	return &DashboardService{
		clients:        clients,
		budgets:        budgets,
		purchaseOrders: purchaseOrders,
		workOrders:     workOrders,
		invoices:       invoices,
		activity:       activity,
	}
}

// GetStats assembles the full dashboard payload
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	clientCount, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.Clients = clientCount

	pendingLike := []domain.DocumentStatus{domain.StatusPending, domain.StatusInProgress}

	if stats.Budgets, err = collectionStat(ctx, s.budgets, pendingLike); err != nil {
		return nil, err
	}
	if stats.PurchaseOrders, err = collectionStat(ctx, s.purchaseOrders, pendingLike); err != nil {
		return nil, err
	}
	if stats.WorkOrders, err = collectionStat(ctx, s.workOrders, pendingLike); err != nil {
		return nil, err
	}
	// An invoice counts as pending until it is paid or voided
	if stats.Invoices, err = unpaidInvoiceStat(ctx, s.invoices); err != nil {
		return nil, err
	}

	activity, err := s.activity.List(ctx, repositories.ActivityLogCapacity)
	if err != nil {
		return nil, err
	}
	stats.RecentActivity = activity

	upcoming, err := s.UpcomingDueDates(ctx)
	if err != nil {
		return nil, err
	}
	stats.UpcomingDue = upcoming

	return stats, nil
}

// UpcomingDueDates projects budgets, work orders and invoices that are due
// within the next 30 days and not yet settled, ascending by due date and
// capped to the first 5
func (s *DashboardService) UpcomingDueDates(ctx context.Context) ([]DueDateItem, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, UpcomingWindowDays).Add(24*time.Hour - time.Nanosecond)

	items := make([]DueDateItem, 0, UpcomingLimit*3)

	budgets, err := s.budgets.ListDueBetween(ctx, from, to, excludedDueStatuses)
	if err != nil {
		return nil, err
	}
	for _, doc := range budgets {
		items = append(items, dueItem(&doc.DocumentBase, domain.TypeBudget))
	}

	workOrders, err := s.workOrders.ListDueBetween(ctx, from, to, excludedDueStatuses)
	if err != nil {
		return nil, err
	}
	for _, doc := range workOrders {
		items = append(items, dueItem(&doc.DocumentBase, domain.TypeWorkOrder))
	}

	invoices, err := s.invoices.ListDueBetween(ctx, from, to, excludedDueStatuses)
	if err != nil {
		return nil, err
	}
	for _, doc := range invoices {
		items = append(items, dueItem(&doc.DocumentBase, domain.TypeInvoice))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})
	if len(items) > UpcomingLimit {
		items = items[:UpcomingLimit]
	}
	return items, nil
}

func dueItem(base *models.DocumentBase, docType domain.DocumentType) DueDateItem {
	return DueDateItem{
		ID:             base.ID,
		DocumentType:   docType,
		DocumentNumber: base.DocumentNumber,
		ClientName:     base.ClientName,
		DueDate:        *base.DueDate,
		Status:         base.Status,
		TotalAmount:    base.TotalAmount,
	}
}

func collectionStat[T any](ctx context.Context, store repositories.DocumentStore[T], pending []domain.DocumentStatus) (CollectionStat, error) {
	docs, err := store.List(ctx)
	if err != nil {
		return CollectionStat{}, err
	}
	stat := CollectionStat{Total: int64(len(docs))}
	for _, doc := range docs {
		base := any(doc).(models.AppDocument).Base()
		if statusIn(pending, base.Status) {
			stat.Pending++
		}
	}
	return stat, nil
}

func unpaidInvoiceStat(ctx context.Context, store repositories.DocumentStore[models.Invoice]) (CollectionStat, error) {
	docs, err := store.List(ctx)
	if err != nil {
		return CollectionStat{}, err
	}
	stat := CollectionStat{Total: int64(len(docs))}
	for _, doc := range docs {
		if doc.Status != domain.StatusPaid && doc.Status != domain.StatusCancelled {
			stat.Pending++
		}
	}
	return stat, nil
}
