package routing

import (
	"context"
	"log/slog"

	"contactrouter/internal/domain"
	"contactrouter/internal/logging"
	"contactrouter/internal/metrics"
	"contactrouter/internal/ports"
)

// Service resolves routing requests against the reference store.
type Service struct {
	store ports.ReferenceStore
	log   *slog.Logger
}

func New(store ports.ReferenceStore) *Service {
	return &Service{store: store, log: logging.New("routing")}
}

func (s *Service) RouteBank(ctx context.Context, req domain.BankRouteRequest) (domain.RoutingResult, error) {
	category, err := domain.ParseIssueCategory(req.Category)
	if err != nil {
		return domain.RoutingResult{}, err
	}
	severity, err := domain.ParseSeverity(req.Severity)
	if err != nil {
		return domain.RoutingResult{}, err
	}

	data, err := s.store.Bank(ctx)
	if err != nil {
		return domain.RoutingResult{}, err
	}
	bank, err := data.ByID(req.BankID)
	if err != nil {
		return domain.RoutingResult{}, err
	}

	level := ResolveBankLevel(category, severity)
	res := domain.RoutingResult{
		Bank:       bank.Name,
		Level:      level,
		Contact:    ProjectBankContact(bank, level),
		Confidence: BankConfidence(severity),
	}
	metrics.RoutingDecision("bank", level.String())
	s.log.InfoContext(ctx, "bank issue routed",
		"bank_id", int(req.BankID), "category", string(category), "severity", string(severity), "level", level.String())
	return res, nil
}

// RouteSEBI validates severity like the bank path even though the SEBI
// table does not consult it.
func (s *Service) RouteSEBI(ctx context.Context, req domain.SEBIRouteRequest) (domain.SEBIRoutingResult, error) {
	category, err := domain.ParseSEBICategory(req.Category)
	if err != nil {
		return domain.SEBIRoutingResult{}, err
	}
	if _, err := domain.ParseSeverity(req.Severity); err != nil {
		return domain.SEBIRoutingResult{}, err
	}

	data, err := s.store.SEBI(ctx)
	if err != nil {
		return domain.SEBIRoutingResult{}, err
	}
	entity, err := data.ByID(req.SEBIID)
	if err != nil {
		return domain.SEBIRoutingResult{}, err
	}

	route, name := ResolveSEBIRoute(category, entity.ContactPerson)
	email, phone := SEBIReachability(entity)
	res := domain.SEBIRoutingResult{
		EntityName:     entity.Name,
		RegistrationNo: entity.RegistrationNo,
		RouteType:      route,
		ContactName:    name,
		ContactEmail:   orNotAvailable(email),
		ContactPhone:   orNotAvailable(phone),
		Confidence:     SEBIConfidence(entity.ContactPerson, email),
	}
	metrics.RoutingDecision("sebi", route.String())
	s.log.InfoContext(ctx, "SEBI issue routed",
		"sebi_id", int(req.SEBIID), "category", string(category), "route_type", route.String())
	return res, nil
}
