package directory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"contactrouter/internal/domain"
	"contactrouter/internal/ports"
)

// Service answers listing and search queries over the published snapshots.
// Every call scans the snapshot it was handed; nothing is cached.
type Service struct {
	store ports.ReferenceStore
}

func New(store ports.ReferenceStore) *Service {
	return &Service{store: store}
}

// ListEntities filters SEBI intermediaries. Search matches name or
// registration number case-insensitively; state and city match either
// address block exactly, ignoring case. Non-empty filters are ANDed.
func (s *Service) ListEntities(ctx context.Context, f ports.EntityFilter) ([]domain.SEBIEntity, error) {
	data, err := s.store.SEBI(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	state := strings.ToUpper(strings.TrimSpace(f.State))
	city := strings.ToUpper(strings.TrimSpace(f.City))
	if !data.Schema.NamesRegions() {
		state, city = "", ""
	}

	out := make([]domain.SEBIEntity, 0, len(data.Entities))
	for _, e := range data.Entities {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.RegistrationNo), search) {
			continue
		}
		if state != "" && !blockMatches(e, state, func(b domain.ContactBlock) string { return b.State }) {
			continue
		}
		if city != "" && !blockMatches(e, city, func(b domain.ContactBlock) string { return b.City }) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func blockMatches(e domain.SEBIEntity, want string, field func(domain.ContactBlock) string) bool {
	if strings.ToUpper(field(e.Primary)) == want {
		return true
	}
	return e.Secondary != nil && strings.ToUpper(field(*e.Secondary)) == want
}

// ListStates returns the sorted distinct states across both address blocks.
func (s *Service) ListStates(ctx context.Context) ([]string, error) {
	data, err := s.store.SEBI(ctx)
	if err != nil {
		return nil, err
	}
	states := []string{}
	if !data.Schema.NamesRegions() {
		return states, nil
	}
	seen := make(map[string]struct{})
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" || v == "nan" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		states = append(states, v)
	}
	for _, e := range data.Entities {
		add(e.Primary.State)
		if e.Secondary != nil {
			add(e.Secondary.State)
		}
	}
	slices.Sort(states)
	return states, nil
}

// ListOrganizations returns distinct banks from the feature table for pickers.
func (s *Service) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	data, err := s.store.Bank(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[domain.Organization]struct{}, len(data.Organizations))
	orgs := make([]domain.Organization, 0, len(data.Organizations))
	for _, o := range data.Organizations {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		orgs = append(orgs, o)
	}
	slices.SortStableFunc(orgs, func(a, b domain.Organization) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return orgs, nil
}

// ListContacts flattens named officials for one role, or for every role
// when role is "all" or not recognised.
func (s *Service) ListContacts(ctx context.Context, role string) ([]domain.ContactEntry, error) {
	data, err := s.store.Bank(ctx)
	if err != nil {
		return nil, err
	}
	roles := domain.ContactRoles
	if r, ok := domain.RoleByKey(strings.TrimSpace(role)); ok {
		roles = []domain.ContactRole{r}
	}

	entries := []domain.ContactEntry{}
	for _, r := range roles {
		for _, e := range data.Entities {
			c := e.Contact(r.Level)
			if strings.TrimSpace(c.Name) == "" {
				continue
			}
			entries = append(entries, domain.ContactEntry{
				BankID:      e.ID,
				BankName:    e.Name,
				Name:        c.Name,
				Role:        r,
				Email:       c.Email,
				Phone:       c.Phone,
				EmailDomain: EmailDomain(c.Email),
				EmailType:   ClassifyEmail(c.Email),
			})
		}
	}
	return entries, nil
}
