package services

import (
	"strings"

	"main-gestdoc/internal/core/domain"
)

// DefaultTitle is shown for the dashboard and for any unmatched path
const DefaultTitle = "Panel de Control"

// NavItem is one sidebar entry. An empty AllowedRoles set means any
// authenticated role may see it.
type NavItem struct {
	Name         string        `json:"name"`
	Path         string        `json:"path"`
	Section      string        `json:"section"`
	AllowedRoles []domain.Role `json:"allowedRoles,omitempty"`
}

// navigationItems is the full sidebar in display order
var navigationItems = []NavItem{
	{Name: "Panel de Control", Path: "/", Section: "PRINCIPAL"},
	{Name: "Presupuestos", Path: "/budgets", Section: "GESTIÓN"},
	{Name: "Órdenes de Compra", Path: "/purchase-orders", Section: "GESTIÓN"},
	{Name: "Órdenes de Trabajo", Path: "/work-orders", Section: "GESTIÓN"},
	{Name: "Facturas", Path: "/invoices", Section: "GESTIÓN"},
	{Name: "Generar Reportes", Path: "/reports", Section: "REPORTES", AllowedRoles: []domain.Role{domain.RoleAdmin, domain.RoleManager}},
	{Name: "Clientes", Path: "/clients", Section: "ADMINISTRACIÓN", AllowedRoles: []domain.Role{domain.RoleAdmin, domain.RoleManager}},
	{Name: "Usuarios", Path: "/admin/users", Section: "ADMINISTRACIÓN", AllowedRoles: []domain.Role{domain.RoleAdmin}},
	{Name: "Gestión de Estados", Path: "/admin/statuses", Section: "ADMINISTRACIÓN", AllowedRoles: []domain.Role{domain.RoleAdmin}},
}

// adminSectionTitles overrides the sidebar names for the admin header
var adminSectionTitles = map[string]string{
	"/admin/users":    "Administración de Usuarios",
	"/admin/statuses": "Gestión de Estados",
}

// NavigationService resolves the sidebar and header titles for a role
type NavigationService struct{}

// NewNavigationService creates a new navigation service
func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

// ItemsFor returns the sidebar entries the given role may see
func (s *NavigationService) ItemsFor(role domain.Role) []NavItem {
	items := make([]NavItem, 0, len(navigationItems))
	for _, item := range navigationItems {
		if item.visibleTo(role) {
			items = append(items, item)
		}
	}
	return items
}

func (i NavItem) visibleTo(role domain.Role) bool {
	if len(i.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range i.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// TitleFor derives the header title for a path: admin sub-sections first,
// then an exact sidebar match, then the longest sidebar prefix so detail
// and creation routes inherit their section's title. Anything else falls
// back to the dashboard title.
func (s *NavigationService) TitleFor(path string) string {
	path = normalizePath(path)

	if title, ok := adminSectionTitles[path]; ok {
		return title
	}

	var best *NavItem
	for idx, item := range navigationItems {
		if item.Path == path {
			return item.Name
		}
		if item.Path == "/" {
			continue
		}
		if strings.HasPrefix(path, item.Path+"/") {
			if best == nil || len(item.Path) > len(best.Path) {
				best = &navigationItems[idx]
			}
		}
	}
	if best != nil {
		if title, ok := adminSectionTitles[best.Path]; ok {
			return title
		}
		return best.Name
	}
	return DefaultTitle
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
