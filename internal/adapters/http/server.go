package httpadapter

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	api "contactrouter/internal/api"
	"contactrouter/internal/domain"
	"contactrouter/internal/logging"
	"contactrouter/internal/metrics"
	"contactrouter/internal/ports"
)

// BasePath prefixes every API operation.
const BasePath = "/api"

const (
	apiVersion    = "1.0.0"
	healthMessage = "Bank Clearance API is running"
	testMessage   = "Backend API is working!"
)

// Server implements the generated StrictServerInterface.
type Server struct {
	router    ports.Router
	directory ports.Directory
	status    ports.StatusReporter
	log       *slog.Logger
}

func New(router ports.Router, directory ports.Directory, status ports.StatusReporter) *Server {
	return &Server{router: router, directory: directory, status: status, log: logging.New("http")}
}

// Routes returns a chi.Router mounting the generated handlers under BasePath
// and the Prometheus endpoint at /metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.instrument, middleware.Recoverer)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)
	r.Handle("/metrics", metrics.Handler())

	handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{s.logOperation}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseURL:          BasePath,
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
	return r
}

// Strict handler methods

func (s *Server) GetHealth(ctx context.Context, _ api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	return api.GetHealth200JSONResponse{
		Status:   "healthy",
		Message:  healthMessage,
		Services: s.services(),
		Version:  apiVersion,
	}, nil
}

func (s *Server) GetTest(ctx context.Context, _ api.GetTestRequestObject) (api.GetTestResponseObject, error) {
	return api.GetTest200JSONResponse{Success: true, Message: testMessage, Services: s.services()}, nil
}

func (s *Server) services() api.ServiceStatus {
	st := s.status.Status()
	return api.ServiceStatus{BankData: st.BankLoaded, SebiData: st.SEBILoaded, RoutingModel: st.RoutingModel}
}

func (s *Server) RouteIssue(ctx context.Context, req api.RouteIssueRequestObject) (api.RouteIssueResponseObject, error) {
	if req.Body == nil {
		return nil, domain.Invalidf("request body is required")
	}
	id, ok := req.Body.BankId.Get()
	if !ok {
		return nil, domain.Invalidf("bank_id is required")
	}
	res, err := s.router.RouteBank(ctx, domain.BankRouteRequest{
		BankID:   domain.EntityID(id),
		Category: req.Body.IssueCategory,
		Severity: req.Body.Severity,
	})
	if err != nil {
		return nil, err
	}
	return api.RouteIssue200JSONResponse{Success: true, Result: api.BankRoutingResult{
		Bank:         res.Bank,
		LevelName:    res.Level.String(),
		ContactName:  res.Contact.Name,
		ContactPhone: res.Contact.Phone,
		ContactEmail: res.Contact.Email,
		Confidence:   res.Confidence,
	}}, nil
}

func (s *Server) RouteSebiIssue(ctx context.Context, req api.RouteSebiIssueRequestObject) (api.RouteSebiIssueResponseObject, error) {
	if req.Body == nil {
		return nil, domain.Invalidf("request body is required")
	}
	id, ok := req.Body.SebiId.Get()
	if !ok {
		return nil, domain.Invalidf("sebi_id is required")
	}
	res, err := s.router.RouteSEBI(ctx, domain.SEBIRouteRequest{
		SEBIID:   domain.EntityID(id),
		Category: req.Body.IssueCategory,
		Severity: req.Body.Severity,
	})
	if err != nil {
		return nil, err
	}
	return api.RouteSebiIssue200JSONResponse{Success: true, Result: api.SebiRoutingResult{
		EntityName:     res.EntityName,
		RegistrationNo: res.RegistrationNo,
		RouteType:      res.RouteType.String(),
		ContactName:    res.ContactName,
		ContactEmail:   res.ContactEmail,
		ContactPhone:   res.ContactPhone,
		Confidence:     res.Confidence,
	}}, nil
}

func (s *Server) ListContacts(ctx context.Context, req api.ListContactsRequestObject) (api.ListContactsResponseObject, error) {
	role := domain.AllRoles
	if req.Params.Position != nil {
		role = *req.Params.Position
	}
	entries, err := s.directory.ListContacts(ctx, role)
	if err != nil {
		return nil, err
	}
	contacts := make([]api.ContactListing, 0, len(entries))
	for _, e := range entries {
		contacts = append(contacts, api.ContactListing{
			BankId:       int(e.BankID),
			BankName:     e.BankName,
			Name:         e.Name,
			Position:     e.Role.Display,
			PositionType: e.Role.Key,
			Email:        e.Email,
			Phone:        e.Phone,
			EmailDomain:  e.EmailDomain,
			EmailType:    string(e.EmailType),
		})
	}
	return api.ListContacts200JSONResponse{Success: true, Contacts: contacts}, nil
}

func (s *Server) ListBanks(ctx context.Context, _ api.ListBanksRequestObject) (api.ListBanksResponseObject, error) {
	orgs, err := s.directory.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	banks := make([]api.Bank, 0, len(orgs))
	for _, o := range orgs {
		banks = append(banks, api.Bank{BankID: int(o.ID), BankName: o.Name})
	}
	return api.ListBanks200JSONResponse{Success: true, Banks: banks}, nil
}

func (s *Server) ListCategories(ctx context.Context, _ api.ListCategoriesRequestObject) (api.ListCategoriesResponseObject, error) {
	return api.ListCategories200JSONResponse{Success: true, Categories: choices(domain.IssueCategories)}, nil
}

func (s *Server) ListSeverities(ctx context.Context, _ api.ListSeveritiesRequestObject) (api.ListSeveritiesResponseObject, error) {
	return api.ListSeverities200JSONResponse{Success: true, Severities: choices(domain.Severities)}, nil
}

func (s *Server) ListSebiCategories(ctx context.Context, _ api.ListSebiCategoriesRequestObject) (api.ListSebiCategoriesResponseObject, error) {
	return api.ListSebiCategories200JSONResponse{Success: true, Categories: choices(domain.SEBICategories)}, nil
}

func choices[T ~string](values []T) []api.Choice {
	out := make([]api.Choice, 0, len(values))
	for _, v := range values {
		out = append(out, api.Choice{Id: string(v), Name: domain.DisplayName(v)})
	}
	return out
}

func (s *Server) ListSebiEntities(ctx context.Context, req api.ListSebiEntitiesRequestObject) (api.ListSebiEntitiesResponseObject, error) {
	entities, err := s.directory.ListEntities(ctx, ports.EntityFilter{
		Search: deref(req.Params.Search),
		State:  deref(req.Params.State),
		City:   deref(req.Params.City),
	})
	if err != nil {
		return nil, err
	}
	out := make([]api.SebiEntity, 0, len(entities))
	for _, e := range entities {
		item := api.SebiEntity{
			SebiId:         int(e.ID),
			Name:           e.Name,
			RegistrationNo: e.RegistrationNo,
			ContactPerson:  e.ContactPerson,
			PrimaryContact: contactBlock(e.Primary),
			FromDate:       e.FromDate,
			ToDate:         e.ToDate,
		}
		if e.Secondary != nil {
			b := contactBlock(*e.Secondary)
			item.SecondaryContact = &b
		}
		out = append(out, item)
	}
	return api.ListSebiEntities200JSONResponse{Success: true, Entities: out, Total: len(out)}, nil
}

func (s *Server) ListSebiStates(ctx context.Context, _ api.ListSebiStatesRequestObject) (api.ListSebiStatesResponseObject, error) {
	states, err := s.directory.ListStates(ctx)
	if err != nil {
		return nil, err
	}
	return api.ListSebiStates200JSONResponse{Success: true, States: states}, nil
}

func contactBlock(b domain.ContactBlock) api.ContactBlock {
	return api.ContactBlock{
		Address:   b.Address,
		Email:     b.Email,
		Telephone: b.Telephone,
		City:      b.City,
		State:     b.State,
		Pincode:   b.Pincode,
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
