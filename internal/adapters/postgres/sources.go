package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"contactrouter/internal/domain"
)

// Source serves the reference datasets from Postgres. It implements
// ports.BankSource and ports.SEBISource. The routing model artifacts live
// only in the file bundle, so they are reported absent.
type Source struct {
	db *DB
}

func NewSource(db *DB) *Source {
	return &Source{db: db}
}

// bankContactsQuery selects id, bank_name and a name/phone/email triple per
// role, in domain.ContactRoles order.
func bankContactsQuery() string {
	cols := []string{"id", "COALESCE(bank_name, '')"}
	for _, r := range domain.ContactRoles {
		for _, f := range []string{"name", "phone", "email"} {
			cols = append(cols, fmt.Sprintf("COALESCE(%s_%s, '')", r.Key, f))
		}
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM bank_contacts ORDER BY id"
}

func sebiEntitiesQuery() string {
	cols := make([]string, len(domain.SEBIColumns))
	for i, c := range domain.SEBIColumns {
		cols[i] = fmt.Sprintf("COALESCE(%s, '')", strings.ToLower(c))
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM sebi_entities ORDER BY row_order"
}

func (s *Source) LoadBank(ctx context.Context) (*domain.BankDataset, error) {
	rows, err := s.db.Pool.Query(ctx, bankContactsQuery())
	if err != nil {
		return nil, domain.LoadErrorf("query bank_contacts: %v", err)
	}
	defer rows.Close()

	var entities []domain.BankEntity
	for rows.Next() {
		var id int
		cells := make([]string, 1+3*len(domain.ContactRoles))
		dest := []any{&id}
		for i := range cells {
			dest = append(dest, &cells[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.LoadErrorf("scan bank_contacts: %v", err)
		}
		entities = append(entities, bankEntityFromCells(id, cells))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.LoadErrorf("read bank_contacts: %v", err)
	}

	orgRows, err := s.db.Pool.Query(ctx, `SELECT id, name FROM bank_organizations ORDER BY id`)
	if err != nil {
		return nil, domain.LoadErrorf("query bank_organizations: %v", err)
	}
	orgs, err := pgx.CollectRows(orgRows, func(r pgx.CollectableRow) (domain.Organization, error) {
		var o domain.Organization
		var id int
		err := r.Scan(&id, &o.Name)
		o.ID = domain.EntityID(id)
		return o, err
	})
	if err != nil {
		return nil, domain.LoadErrorf("read bank_organizations: %v", err)
	}
	return domain.NewBankDataset(entities, orgs, false), nil
}

// bankEntityFromCells maps bank_name followed by the role triples.
func bankEntityFromCells(id int, cells []string) domain.BankEntity {
	e := domain.BankEntity{
		ID:       domain.EntityID(id),
		Name:     strings.TrimSpace(cells[0]),
		Contacts: make(map[domain.EscalationLevel]domain.Contact, len(domain.ContactRoles)),
	}
	for i, r := range domain.ContactRoles {
		base := 1 + 3*i
		c := domain.Contact{
			Name:  strings.TrimSpace(cells[base]),
			Phone: strings.TrimSpace(cells[base+1]),
			Email: strings.TrimSpace(cells[base+2]),
		}
		if c != (domain.Contact{}) {
			e.Contacts[r.Level] = c
		}
	}
	return e
}

// LoadSEBI reads the register in row order. The table always carries every
// column, so the strict schema applies.
func (s *Source) LoadSEBI(ctx context.Context) (*domain.SEBIDataset, error) {
	rows, err := s.db.Pool.Query(ctx, sebiEntitiesQuery())
	if err != nil {
		return nil, domain.LoadErrorf("query sebi_entities: %v", err)
	}
	defer rows.Close()

	var entities []domain.SEBIEntity
	for rows.Next() {
		cells := make([]string, len(domain.SEBIColumns))
		dest := make([]any, len(cells))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.LoadErrorf("scan sebi_entities: %v", err)
		}
		if !domain.IsSEBIDataRow(cells[0]) {
			continue
		}
		id := domain.EntityID(len(entities) + 1)
		entities = append(entities, domain.SEBIRecordFromRow(domain.SchemaStrict, id, cells))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.LoadErrorf("read sebi_entities: %v", err)
	}
	return domain.NewSEBIDataset(domain.SchemaStrict, entities), nil
}
