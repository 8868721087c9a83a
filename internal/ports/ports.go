package ports

import (
	"context"

	"contactrouter/internal/domain"
)

// Router resolves an issue to the contact responsible for it.
type Router interface {
	RouteBank(ctx context.Context, req domain.BankRouteRequest) (domain.RoutingResult, error)
	RouteSEBI(ctx context.Context, req domain.SEBIRouteRequest) (domain.SEBIRoutingResult, error)
}

// EntityFilter narrows SEBI listings. Empty fields do not filter.
type EntityFilter struct {
	Search string
	State  string
	City   string
}

// Directory lists and searches the reference datasets.
type Directory interface {
	ListEntities(ctx context.Context, f EntityFilter) ([]domain.SEBIEntity, error)
	ListStates(ctx context.Context) ([]string, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListContacts(ctx context.Context, role string) ([]domain.ContactEntry, error)
}

// Status reports which reference datasets are currently published.
type Status struct {
	BankLoaded   bool
	SEBILoaded   bool
	RoutingModel bool
}

type StatusReporter interface {
	Status() Status
}
