package files

import (
	"context"
	"path/filepath"

	"contactrouter/internal/domain"
)

const (
	colSlNo     = "Sl No"
	colBankName = "Bank Name"
	colBankID   = "Bank_ID"
	colFeatName = "Bank_Name"
)

// levelColumns names the matrix columns holding each escalation slot.
var levelColumns = []struct {
	level              domain.EscalationLevel
	name, phone, email string
}{
	{domain.Level1, "Official Name (1st Level)", "Mobile Number", "Mail Id"},
	{domain.Level2, "Official Name (2nd Level)", "Mobile Number2", "Mail Id2"},
	{domain.Level3, "Official Name (3rd Level)", "Mobile Number3", "Mail Id3"},
	{domain.TechLevel1, "Official Name from Technology (1st Level )", "Mobile Number4", "Mail Id4"},
	{domain.TechLevel2, "Official Name from Technology (2nd Level )", "Mobile Number5", "Mail Id5"},
	{domain.HeadGM, "Official Name (Head or GM)", "Mobile Number6", "Mail Id6"},
}

// LoadBank reads the escalation matrix and feature table. Every artifact of
// the bundle must be present; a missing one fails the whole load.
func (s *Source) LoadBank(ctx context.Context) (*domain.BankDataset, error) {
	paths := make(map[string]string, len(BankArtifacts))
	var missing []string
	for _, a := range BankArtifacts {
		p, ok := s.locateArtifact(a)
		if !ok {
			missing = append(missing, a.Key)
			continue
		}
		paths[a.Key] = p
	}
	if len(missing) > 0 {
		return nil, domain.LoadErrorf("missing bank data files: %v", missing)
	}

	entities, err := s.readMatrix(paths["escalation_matrix"])
	if err != nil {
		return nil, err
	}
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	orgs, err := s.readFeatures(paths["routing_features"])
	if err != nil {
		return nil, err
	}
	return domain.NewBankDataset(entities, orgs, true), nil
}

func (s *Source) readMatrix(path string) ([]domain.BankEntity, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, domain.LoadErrorf("escalation matrix %s: %v", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, domain.LoadErrorf("escalation matrix %s is empty", filepath.Base(path))
	}
	h := newHeader(rows[0])
	if m := h.missing(colSlNo, colBankName); len(m) > 0 {
		return nil, domain.LoadErrorf("escalation matrix %s lacks columns %v", filepath.Base(path), m)
	}

	entities := make([]domain.BankEntity, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		id, ok := parseID(h.get(row, colSlNo))
		if !ok {
			skipped++
			continue
		}
		e := domain.BankEntity{
			ID:       domain.EntityID(id),
			Name:     h.get(row, colBankName),
			Contacts: make(map[domain.EscalationLevel]domain.Contact, len(levelColumns)),
		}
		for _, lc := range levelColumns {
			c := domain.Contact{
				Name:  h.get(row, lc.name),
				Phone: normalizePhone(h.get(row, lc.phone)),
				Email: normalizeEmail(h.get(row, lc.email)),
			}
			if c != (domain.Contact{}) {
				e.Contacts[lc.level] = c
			}
		}
		entities = append(entities, e)
	}
	if skipped > 0 {
		s.log.Warn("skipped escalation matrix rows without a numeric Sl No", "rows", skipped)
	}
	return entities, nil
}

func (s *Source) readFeatures(path string) ([]domain.Organization, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, domain.LoadErrorf("routing features %s: %v", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, domain.LoadErrorf("routing features %s is empty", filepath.Base(path))
	}
	h := newHeader(rows[0])
	if m := h.missing(colBankID, colFeatName); len(m) > 0 {
		return nil, domain.LoadErrorf("routing features %s lacks columns %v", filepath.Base(path), m)
	}
	orgs := make([]domain.Organization, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, ok := parseID(h.get(row, colBankID))
		if !ok {
			continue
		}
		orgs = append(orgs, domain.Organization{ID: domain.EntityID(id), Name: h.get(row, colFeatName)})
	}
	return orgs, nil
}
